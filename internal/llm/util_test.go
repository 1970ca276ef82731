package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain JSON untouched",
			input:    `{"profile_type": "Pivot"}`,
			expected: `{"profile_type": "Pivot"}`,
		},
		{
			name:     "JSON wrapped in json fence",
			input:    "```json\n{\"profile_type\": \"Pivot\"}\n```",
			expected: `{"profile_type": "Pivot"}`,
		},
		{
			name:     "JSON wrapped in bare fence",
			input:    "```\n{\"summary\": \"ok\"}\n```",
			expected: `{"summary": "ok"}`,
		},
		{
			name:     "Leading and trailing whitespace",
			input:    "  \n```json\n{\"a\": 1}\n```  \n",
			expected: `{"a": 1}`,
		},
		{
			name:     "Fence with language identifier on first line",
			input:    "```JSON\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "Not JSON at all",
			input:    "I cannot help with that.",
			expected: "I cannot help with that.",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_ParsesIdentically(t *testing.T) {
	unwrapped := `{"strengths": ["Leadership"], "gaps": []}`
	wrapped := "```json\n" + unwrapped + "\n```"

	assert.Equal(t, CleanJSONBlock(unwrapped), CleanJSONBlock(wrapped))
}
