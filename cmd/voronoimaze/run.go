package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/config"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/maze"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/voronoi"
)

// loadAndValidate loads the config and runs its checks.
func loadAndValidate(projectPath string) (*config.Config, error) {
	cfg, err := config.LoadProject(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	report := cfg.Validate()
	if !report.Valid {
		printValidationReport(report)
		return nil, fmt.Errorf("config has validation errors")
	}
	if len(report.Warnings) > 0 {
		printValidationReport(report)
	}
	return cfg, nil
}

func runValidate(projectPath string) error {
	cfg, err := config.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	report := cfg.Validate()
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath string, seed int64) error {
	cfg, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = cfg.Seed
	}

	rnd, effective := maze.NewRand(seed)
	result, report, err := maze.Generate(cfg, voronoi.New(), rnd, effective)
	if err != nil {
		return fmt.Errorf("generating maze: %w", err)
	}

	output := map[string]any{
		"config":     cfg,
		"validation": report,
		"maze":       result,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
