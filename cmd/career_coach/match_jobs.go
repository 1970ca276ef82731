package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/career-coach/internal/jobs"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/store"
	"github.com/spf13/cobra"
)

var (
	matchReport  string
	matchCount   int
	matchDataDir string
	matchAPIKey  string
)

var matchJobsCmd = &cobra.Command{
	Use:   "match-jobs",
	Short: "Find job matches for a saved coaching report",
	Long:  "Load a saved coaching report and ask the LLM for a list of matching job opportunities with skill overlap and development suggestions.",
	RunE:  runMatchJobs,
}

func init() {
	matchJobsCmd.Flags().StringVar(&matchReport, "report", "", "Report artifact filename (defaults to the most recent)")
	matchJobsCmd.Flags().IntVar(&matchCount, "count", jobs.DefaultCount, "Number of job matches to request")
	matchJobsCmd.Flags().StringVar(&matchDataDir, "data-dir", ".", "Directory holding the artifacts")
	matchJobsCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(matchJobsCmd)
}

func runMatchJobs(_ *cobra.Command, _ []string) error {
	apiKey := matchAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	st := store.New(matchDataDir)

	reportName, err := pickArtifact(matchReport, st.ListReports, "report")
	if err != nil {
		return err
	}
	report, err := st.LoadReport(reportName)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}

	ctx := context.Background()

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	matches, err := jobs.NewMatcher(client).Find(ctx, report, matchCount)
	if err != nil {
		return fmt.Errorf("job matching failed: %w", err)
	}

	if len(matches) == 0 {
		fmt.Println("No job matches returned.")
		return nil
	}

	for i, m := range matches {
		fmt.Printf("%d. %s\n", i+1, m.Title)
		fmt.Printf("   %s\n", m.Description)
		fmt.Printf("   Why: %s\n", m.MatchReasons)
		fmt.Printf("   Matching skills: %s\n", strings.Join(m.MatchingSkills, ", "))
		fmt.Printf("   Skills to develop: %s\n", strings.Join(m.SkillsToDevelop, ", "))
	}

	return nil
}
