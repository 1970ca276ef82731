package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-coach/internal/ingestion"
	"github.com/jonathan/career-coach/internal/redact"
	"github.com/jonathan/career-coach/internal/store"
	"github.com/spf13/cobra"
)

var (
	parseInputFile  string
	parseOutputFile string
	parseDataDir    string
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a PDF résumé into a sectioned, redacted document",
	Long:  "Extract text from a PDF résumé, split it into education, experience, and skills sections, redact PII, and save the result as a timestamped JSON artifact.",
	RunE:  runParseResume,
}

func init() {
	parseResumeCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to PDF résumé (required)")
	parseResumeCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Also write the document JSON to this path")
	parseResumeCmd.Flags().StringVar(&parseDataDir, "data-dir", ".", "Directory for resume artifacts")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	redactor := redact.New(redact.NewRegexRecognizer())

	doc, err := ingestion.ParseDocument(context.Background(), parseInputFile, redactor)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	name, err := store.New(parseDataDir).SaveResume(doc)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}

	if parseOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	fmt.Printf("Parsed %d education, %d experience, %d skills sections\n",
		len(doc.Parsed.Education), len(doc.Parsed.Experience), len(doc.Parsed.Skills))
	fmt.Printf("Saved resume: %s\n", name)

	return nil
}
