package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Timwi/KtaneVoronoiMaze/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "voronoimaze",
		Short: "Voronoi maze generator for the puzzle module",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Run the full generation pipeline and print the maze as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0], seed)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed (0 = config seed, or time-based)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a generation config without running the pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with JSON and websocket endpoints",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
