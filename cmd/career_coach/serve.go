package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-coach/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort    int
	serveDataDir string
	serveModel   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for résumé upload, coaching analysis, and job matching.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", ".", "Directory for session, resume, and report artifacts")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Override the default LLM model")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// A missing API key degrades coaching and matching rather than blocking
	// startup; résumé parsing and artifact browsing still work without one.
	apiKey := os.Getenv("GEMINI_API_KEY")

	cfg := server.Config{
		Port:    servePort,
		APIKey:  apiKey,
		DataDir: serveDataDir,
		Model:   serveModel,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
