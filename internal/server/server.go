// Package server provides the HTTP REST API for the career coach.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-coach/internal/coaching"
	"github.com/jonathan/career-coach/internal/jobs"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/redact"
	"github.com/jonathan/career-coach/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *store.Store
	engine     *coaching.Engine
	matcher    *jobs.Matcher
	redactor   *redact.Redactor
}

// Config holds server configuration
type Config struct {
	Port        int
	APIKey      string
	DataDir     string
	Model       string
	Temperature float32
}

// New creates a new server instance. A missing API key is not fatal here:
// coaching and job matching degrade per request instead of refusing to
// start, since résumé parsing and artifact listing still work without it.
func New(cfg Config) (*Server, error) {
	var client llm.Client
	if cfg.APIKey != "" {
		llmCfg := llm.DefaultConfig()
		if cfg.Model != "" {
			llmCfg.Model = cfg.Model
		}
		if cfg.Temperature != 0 {
			llmCfg.Temperature = cfg.Temperature
		}
		c, err := llm.NewGeminiClient(context.Background(), llmCfg, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		client = c
	} else {
		log.Println("No API key configured; coaching and job matching are degraded")
	}

	return newServer(cfg, client), nil
}

// newServer wires the server with an explicit LLM client, which lets tests
// inject a deterministic stub.
func newServer(cfg Config, client llm.Client) *Server {
	s := &Server{
		store:    store.New(cfg.DataDir),
		engine:   coaching.NewEngine(client),
		matcher:  jobs.NewMatcher(client),
		redactor: redact.New(redact.NewRegexRecognizer()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload_resume", s.handleUploadResume)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /find_jobs", s.handleFindJobs)
	mux.HandleFunc("GET /questions", s.handleQuestions)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Artifact listings; filenames are the only index
	mux.HandleFunc("GET /sessions", s.handleListSessions)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /reports", s.handleListReports)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // LLM calls have no caller-side timeout
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withLogging logs each request with a short correlation ID
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()[:8]
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s (%s)", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// jsonResponse writes a JSON response with the given status code
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// errorResponse writes a JSON error response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
