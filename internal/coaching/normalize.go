package coaching

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-coach/internal/types"
)

// charSplitThreshold is the list length above which a list whose every
// element is a single character is treated as a character-split string.
// Some LLM/serialization paths emit "Foo" as ["F","o","o"]; short lists of
// genuine one-character items stay untouched.
const charSplitThreshold = 10

// NormalizeReport converts a parsed response document into the canonical
// report shape: summary is a single trimmed string, the four list fields
// are string slices.
func NormalizeReport(doc map[string]any) types.CoachingReport {
	return types.CoachingReport{
		ProfileType:     stringValue(doc["profile_type"]),
		Summary:         normalizeSummary(doc["summary"]),
		Strengths:       NormalizeStringList(doc["strengths"]),
		Gaps:            NormalizeStringList(doc["gaps"]),
		Recommendations: NormalizeStringList(doc["recommendations"]),
		SuggestedJobs:   NormalizeStringList(doc["suggested_jobs"]),
	}
}

// NormalizeStringList coerces a report field into a string slice:
// a character-split list collapses to one joined string, a plain string
// wraps into a one-element slice.
func NormalizeStringList(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{strings.TrimSpace(val)}
	case []any:
		if joined, ok := fixCharacterSplit(val); ok {
			return []string{joined}
		}
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else if item != nil {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	default:
		return nil
	}
}

// fixCharacterSplit collapses ["F","o","o"] back into "Foo" when the list
// is long enough to be a split string rather than genuine items
func fixCharacterSplit(items []any) (string, bool) {
	if len(items) <= charSplitThreshold {
		return "", false
	}
	var sb strings.Builder
	for _, item := range items {
		s, ok := item.(string)
		if !ok || utf8.RuneCountInString(s) != 1 {
			return "", false
		}
		sb.WriteString(s)
	}
	return strings.TrimSpace(sb.String()), true
}

func normalizeSummary(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []any:
		if joined, ok := fixCharacterSplit(val); ok {
			return joined
		}
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.TrimSpace(strings.Join(parts, "\n"))
	default:
		return ""
	}
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
