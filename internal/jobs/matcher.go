// Package jobs asks the LLM for concrete job matches based on a coaching
// report.
package jobs

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/types"
)

// DefaultCount is the number of job matches requested when the caller does
// not specify one
const DefaultCount = 5

// Matcher finds job matches for coaching reports
type Matcher struct {
	client llm.Client
}

// NewMatcher creates a job matcher. A nil client is allowed: matching then
// reports no results, a degraded-but-non-fatal mode, since job matching is
// an optional enrichment step.
func NewMatcher(client llm.Client) *Matcher {
	return &Matcher{client: client}
}

// Find requests count job matches for the given coaching report.
// Transport failures propagate as *llm.TransportError so callers can tell
// "matching failed" apart from "no matches"; a malformed response shape
// yields an empty result instead.
func (m *Matcher) Find(ctx context.Context, report types.CoachingReport, count int) ([]types.JobMatch, error) {
	if m == nil || m.client == nil {
		return []types.JobMatch{}, nil
	}
	if count <= 0 {
		count = DefaultCount
	}

	raw, err := m.client.Complete(ctx, prompts.MustGet("jobs.json", "system"), buildPrompt(report, count))
	if err != nil {
		return nil, err
	}

	return parseMatches(raw), nil
}

func buildPrompt(report types.CoachingReport, count int) string {
	template := prompts.MustGet("jobs.json", "find-matches")
	return prompts.Format(template, map[string]string{
		"ProfileType":     report.ProfileType,
		"Summary":         report.Summary,
		"Strengths":       jsonList(report.Strengths),
		"Gaps":            jsonList(report.Gaps),
		"Recommendations": jsonList(report.Recommendations),
		"SuggestedJobs":   jsonList(report.SuggestedJobs),
		"Count":           strconv.Itoa(count),
	})
}

// parseMatches checks the response shape: anything that is not an object
// carrying a jobs array comes back as an empty list
func parseMatches(raw string) []types.JobMatch {
	cleaned := llm.CleanJSONBlock(raw)

	var list types.JobMatchList
	if err := json.Unmarshal([]byte(cleaned), &list); err != nil {
		return []types.JobMatch{}
	}
	if list.Jobs == nil {
		return []types.JobMatch{}
	}
	return list.Jobs
}

func jsonList(items []string) string {
	if items == nil {
		items = []string{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
