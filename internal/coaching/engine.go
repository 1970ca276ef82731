// Package coaching builds a candidate profile prompt, invokes the LLM, and
// repairs its response into a canonical coaching report.
package coaching

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/schemas"
	"github.com/jonathan/career-coach/internal/types"
)

//go:embed coaching_report.schema.json
var reportSchema string

// Engine runs coaching analysis over merged candidate profiles.
// The LLM client is injected so tests run against a deterministic stub.
type Engine struct {
	client llm.Client
}

// NewEngine creates a coaching engine. A nil client is allowed: analysis
// then degrades to an error-variant report instead of crashing the host.
func NewEngine(client llm.Client) *Engine {
	return &Engine{client: client}
}

// Analyze sends the candidate profile to the LLM and returns the coaching
// report. Transport and semantic failures are reported through the error
// variant of the report, never as a panic or returned error: in a server
// context this call must not take the process down.
func (e *Engine) Analyze(ctx context.Context, p types.CandidateProfile) types.CoachingReport {
	if e == nil || e.client == nil {
		return types.CoachingReport{Error: "no LLM credential configured"}
	}

	raw, err := e.client.Complete(ctx, prompts.MustGet("coaching.json", "system"), buildPrompt(p))
	if err != nil {
		return types.CoachingReport{Error: "LLM request failed: " + err.Error()}
	}

	return ParseReport(raw)
}

// buildPrompt renders the analysis prompt from the merged profile. Only the
// anonymized résumé text is ever sent to the provider; the raw text stays
// local.
func buildPrompt(p types.CandidateProfile) string {
	sections, err := json.MarshalIndent(p.Resume, "", "  ")
	if err != nil {
		sections = []byte("{}")
	}
	qa, err := json.MarshalIndent(p.QAResponses, "", "  ")
	if err != nil {
		qa = []byte("{}")
	}

	template := prompts.MustGet("coaching.json", "analyze-profile")
	return prompts.Format(template, map[string]string{
		"ResumeSections": string(sections),
		"ResumeText":     p.AnonymizedResumeText,
		"QAResponses":    string(qa),
	})
}

// ParseReport repairs and parses a raw LLM response into a coaching report.
// The response is trimmed, stripped of markdown fences, parsed as JSON,
// checked against the report schema, and normalized. Any failure yields the
// error variant carrying the raw text for diagnosis.
func ParseReport(raw string) types.CoachingReport {
	trimmed := strings.TrimSpace(raw)
	cleaned := llm.CleanJSONBlock(trimmed)

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return types.CoachingReport{
			Error:       "Response was not valid JSON",
			RawResponse: trimmed,
		}
	}

	if err := schemas.ValidateJSONString(reportSchema, cleaned); err != nil {
		return types.CoachingReport{
			Error:       "Response was missing expected report fields",
			RawResponse: trimmed,
		}
	}

	return NormalizeReport(doc)
}
