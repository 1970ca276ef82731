package ingestion

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-coach/internal/redact"
	"github.com/jonathan/career-coach/internal/types"
)

// ParseDocument extracts text from a résumé PDF and produces the full
// résumé document: structured sections plus the redacted text. Section
// extraction and redaction are independent of each other, so they run as
// parallel branches. A redaction failure fails the whole parse; the
// document never carries silently-unredacted text in the anonymized slot.
func ParseDocument(ctx context.Context, path string, redactor *redact.Redactor) (types.ResumeDocument, error) {
	text, err := ExtractText(path)
	if err != nil {
		return types.ResumeDocument{}, err
	}
	return BuildDocument(ctx, text, redactor)
}

// BuildDocument parses already-extracted résumé text into a document
func BuildDocument(ctx context.Context, text string, redactor *redact.Redactor) (types.ResumeDocument, error) {
	g, _ := errgroup.WithContext(ctx)

	var parsed types.ParsedResume
	var anonymized string

	g.Go(func() error {
		parsed = ParseResume(text)
		return nil
	})
	g.Go(func() error {
		out, err := redactor.Redact(text)
		if err != nil {
			return err
		}
		anonymized = out
		return nil
	})

	if err := g.Wait(); err != nil {
		return types.ResumeDocument{}, err
	}

	return types.ResumeDocument{
		Parsed:         parsed,
		RawText:        text,
		AnonymizedText: anonymized,
	}, nil
}
