// Package server is the local development server: it generates mazes on
// demand, serves the latest result as JSON, and pushes regenerated results
// to connected renderer clients over a websocket.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/config"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/maze"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/voronoi"
)

// Server serves a single project directory.
type Server struct {
	projectPath string
	port        int

	mu      sync.Mutex
	cfg     *config.Config
	result  *maze.Result
	clients map[*websocket.Conn]struct{}
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		clients:     make(map[*websocket.Conn]struct{}),
	}
}

// Start loads the project configuration and launches the HTTP server.
func (s *Server) Start() error {
	cfg, err := config.LoadProject(s.projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	if report := cfg.Validate(); !report.Valid {
		return fmt.Errorf("invalid config: %s", report.Summary)
	}
	s.cfg = cfg

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/maze", s.handleMaze)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/config", s.handleConfig)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("VoronoiMaze server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

// generate runs the pipeline and stores the result. seed 0 means time-based.
func (s *Server) generate(seed int64) (*maze.Result, error) {
	rnd, effective := maze.NewRand(seed)
	result, report, err := maze.Generate(s.cfg, voronoi.New(), rnd, effective)
	if err != nil {
		return nil, err
	}
	for _, info := range report.Info {
		log.Printf("generation: %s", info.Message)
	}

	s.mu.Lock()
	s.result = result
	s.mu.Unlock()
	return result, nil
}

// current returns the latest result, generating one on first use.
func (s *Server) current() (*maze.Result, error) {
	s.mu.Lock()
	result := s.result
	s.mu.Unlock()
	if result != nil {
		return result, nil
	}
	return s.generate(s.cfg.Seed)
}

func (s *Server) handleMaze(w http.ResponseWriter, _ *http.Request) {
	result, err := s.current()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	seed := s.cfg.Seed
	if q := r.URL.Query().Get("seed"); q != "" {
		parsed, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			http.Error(w, "invalid seed", http.StatusBadRequest)
			return
		}
		seed = parsed
	}

	result, err := s.generate(seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.broadcast(result)
	writeJSON(w, result)
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.cfg)
}

// handleWS subscribes a renderer client. The current result is sent
// immediately; regenerations are pushed as they happen.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	result, err := s.current()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}

	payload, _ := json.Marshal(result)
	if err := conn.Write(r.Context(), websocket.MessageText, payload); err != nil {
		_ = conn.Close(websocket.StatusInternalError, "write failed")
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Drain reads until the client goes away.
	go func(c *websocket.Conn) {
		defer func() {
			s.mu.Lock()
			delete(s.clients, c)
			s.mu.Unlock()
			_ = c.Close(websocket.StatusNormalClosure, "")
		}()
		for {
			if _, _, err := c.Read(context.Background()); err != nil {
				return
			}
		}
	}(conn)
}

// broadcast pushes a result to every connected client, dropping clients
// whose writes fail.
func (s *Server) broadcast(result *maze.Result) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	s.mu.Lock()
	for conn := range s.clients {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := conn.Write(ctx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(s.clients, conn)
		}
	}
	s.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>VoronoiMaze</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>VoronoiMaze</h1>
<p>Renderer not embedded. Fetch <code>/api/maze</code> or subscribe to <code>/ws</code>.</p>
</div>
</body></html>`)
}
