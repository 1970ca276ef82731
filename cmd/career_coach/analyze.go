package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/career-coach/internal/coaching"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/profile"
	"github.com/jonathan/career-coach/internal/store"
	"github.com/spf13/cobra"
)

var (
	analyzeResume  string
	analyzeQA      string
	analyzeDataDir string
	analyzeAPIKey  string
	analyzeModel   string
	analyzeNoSave  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a coaching analysis over a saved résumé and Q&A session",
	Long:  "Merge a saved résumé document and Q&A session into a candidate profile, run the coaching analysis, print the human-readable summary, and save the report.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Resume artifact filename (defaults to the most recent)")
	analyzeCmd.Flags().StringVar(&analyzeQA, "qa", "", "Session artifact filename (defaults to the most recent)")
	analyzeCmd.Flags().StringVar(&analyzeDataDir, "data-dir", ".", "Directory holding the artifacts")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Override the default LLM model")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "Print the summary without saving a report artifact")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	// One-shot commands fail fast without a credential, unlike the server
	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	st := store.New(analyzeDataDir)

	resumeName, err := pickArtifact(analyzeResume, st.ListResumes, "resume")
	if err != nil {
		return err
	}
	qaName, err := pickArtifact(analyzeQA, st.ListSessions, "session")
	if err != nil {
		return err
	}

	resumeDoc, err := st.LoadResume(resumeName)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	qaDoc, err := st.LoadQA(qaName)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	ctx := context.Background()

	cfg := llm.DefaultConfig()
	if analyzeModel != "" {
		cfg.Model = analyzeModel
	}
	client, err := llm.NewGeminiClient(ctx, cfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	candidate := profile.Merge(resumeDoc, qaDoc)
	report := coaching.NewEngine(client).Analyze(ctx, candidate)

	if report.Failed() {
		fmt.Fprintf(os.Stderr, "Analysis failed: %s\n", report.Error)
		if report.RawResponse != "" {
			fmt.Fprintf(os.Stderr, "Raw response:\n%s\n", report.RawResponse)
		}
		return fmt.Errorf("analysis did not produce a valid report")
	}

	summary := coaching.HumanSummary(report)
	fmt.Println(summary)

	if analyzeNoSave {
		return nil
	}

	name, err := st.SaveReport(report, summary)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	fmt.Printf("Saved report: %s\n", name)

	return nil
}

// pickArtifact resolves an explicit artifact filename, or falls back to the
// most recent one. Timestamped names sort chronologically, so the last list
// entry is the newest.
func pickArtifact(explicit string, list func() ([]string, error), kind string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	names, err := list()
	if err != nil {
		return "", fmt.Errorf("failed to list %s artifacts: %w", kind, err)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no %s artifacts found", kind)
	}
	return names[len(names)-1], nil
}
