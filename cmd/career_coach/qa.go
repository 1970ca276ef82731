package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-coach/internal/qa"
	"github.com/jonathan/career-coach/internal/redact"
	"github.com/jonathan/career-coach/internal/store"
	"github.com/spf13/cobra"
)

var (
	qaDataDir string
	qaRedact  bool
	qaNoSave  bool
)

var qaCmd = &cobra.Command{
	Use:   "qa",
	Short: "Run an interactive career Q&A session",
	Long:  `Ask the fixed set of career questions on the terminal, collect the answers, and save the session as a timestamped JSON artifact.`,
	RunE:  runQA,
}

func init() {
	qaCmd.Flags().StringVar(&qaDataDir, "data-dir", ".", "Directory for session artifacts")
	qaCmd.Flags().BoolVar(&qaRedact, "redact", false, "Redact PII from answers before saving")
	qaCmd.Flags().BoolVar(&qaNoSave, "no-save", false, "Print answers without saving a session artifact")
	rootCmd.AddCommand(qaCmd)
}

func runQA(_ *cobra.Command, _ []string) error {
	var redactor *redact.Redactor
	if qaRedact {
		redactor = redact.New(redact.NewRegexRecognizer())
	}

	answers, err := qa.Collect(os.Stdin, os.Stdout, redactor)
	if err != nil {
		return fmt.Errorf("failed to collect answers: %w", err)
	}

	if qaNoSave {
		for _, q := range qa.Questions() {
			fmt.Printf("%s: %s\n", q.Key, answers[q.Key])
		}
		return nil
	}

	name, err := store.New(qaDataDir).SaveQA(answers)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("Saved session: %s\n", name)
	return nil
}
