package coaching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStringList(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{
			name:     "Character-split list collapses to joined string",
			input:    []any{"F", "o", "o", " ", "b", "a", "r", "1", "2", "3", "4"},
			expected: []string{"Foo bar1234"},
		},
		{
			name:     "Plain string wraps into one-element slice",
			input:    "Leadership",
			expected: []string{"Leadership"},
		},
		{
			name:     "Normal list passes through",
			input:    []any{"Leadership", "Mentoring"},
			expected: []string{"Leadership", "Mentoring"},
		},
		{
			name:     "Short single-char list is not collapsed",
			input:    []any{"a", "b", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "Eleven single-char elements is past the threshold",
			input:    []any{"x", "x", "x", "x", "x", "x", "x", "x", "x", "x", "x"},
			expected: []string{"xxxxxxxxxxx"},
		},
		{
			name:     "Ten single-char elements is not",
			input:    []any{"x", "x", "x", "x", "x", "x", "x", "x", "x", "x"},
			expected: []string{"x", "x", "x", "x", "x", "x", "x", "x", "x", "x"},
		},
		{
			name:     "String with whitespace is trimmed",
			input:    "  Leadership  ",
			expected: []string{"Leadership"},
		},
		{
			name:     "Nil yields nil",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeStringList(tt.input))
		})
	}
}

func TestNormalizeReport(t *testing.T) {
	doc := map[string]any{
		"profile_type":    "Pivot",
		"summary":         "  A concise paragraph.  ",
		"strengths":       "Leadership",
		"gaps":            []any{"Public speaking"},
		"recommendations": []any{"F", "o", "o", " ", "b", "a", "r", "1", "2", "3", "4"},
		"suggested_jobs":  []any{"Engineering Manager", "Tech Lead"},
	}

	report := NormalizeReport(doc)

	assert.Equal(t, "Pivot", report.ProfileType)
	assert.Equal(t, "A concise paragraph.", report.Summary)
	assert.Equal(t, []string{"Leadership"}, report.Strengths)
	assert.Equal(t, []string{"Public speaking"}, report.Gaps)
	assert.Equal(t, []string{"Foo bar1234"}, report.Recommendations)
	assert.Equal(t, []string{"Engineering Manager", "Tech Lead"}, report.SuggestedJobs)
}

func TestNormalizeReport_SummaryAsList(t *testing.T) {
	doc := map[string]any{
		"summary": []any{"First part.", "Second part."},
	}

	report := NormalizeReport(doc)
	assert.Equal(t, "First part.\nSecond part.", report.Summary)
}

func TestHumanSummary(t *testing.T) {
	report := NormalizeReport(map[string]any{
		"profile_type": "Grow in place",
		"summary":      "Happy where they are, needs scope.",
		"strengths":    []any{"Deep domain knowledge"},
	})

	out := HumanSummary(report)
	assert.Contains(t, out, "Profile Type: Grow in place")
	assert.Contains(t, out, "  - Deep domain knowledge")
	assert.Contains(t, out, "Skill Gaps: (none)")
}

func TestHumanSummary_ErrorVariant(t *testing.T) {
	out := HumanSummary(NormalizeReport(nil))
	// An all-empty report still renders
	assert.Contains(t, out, "Profile Type: N/A")

	failed := ParseReport("not json at all")
	assert.Equal(t, "", HumanSummary(failed))
}
