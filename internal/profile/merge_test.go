package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_WrappedResume(t *testing.T) {
	resume := map[string]any{
		"parsed": map[string]any{
			"skills": []any{map[string]any{"heading": "SKILLS", "body": "Go"}},
		},
		"anonymized_text": "redacted text",
		"raw_text":        "raw text",
	}
	qa := map[string]any{"motivations": "autonomy"}

	p := Merge(resume, qa)

	parsed, ok := p.Resume.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, parsed, "skills")
	assert.Equal(t, "redacted text", p.AnonymizedResumeText)
	assert.Equal(t, "raw text", p.RawResumeText)
	assert.Equal(t, qa, p.QAResponses)
}

func TestMerge_RawResumeShape(t *testing.T) {
	resume := map[string]any{
		"education": []any{},
		"skills":    []any{},
	}
	qa := map[string]any{"ideal_role": "staff engineer"}

	p := Merge(resume, qa)

	// Raw shape: the whole record stands in for the parsed sections
	parsed, ok := p.Resume.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, parsed, "education")
	assert.Equal(t, "", p.AnonymizedResumeText)
	assert.Equal(t, "", p.RawResumeText)
}

func TestMerge_WrappedQA(t *testing.T) {
	qa := map[string]any{
		"raw_answers": map[string]any{"motivations": "impact"},
		"motivations": "<REDACTED>",
	}

	p := Merge(map[string]any{}, qa)

	assert.Equal(t, "impact", p.RawQAResponses["motivations"])
	assert.Equal(t, "<REDACTED>", p.QAResponses["motivations"])
}

func TestMerge_NilInputs(t *testing.T) {
	p := Merge(nil, nil)
	assert.Equal(t, "", p.AnonymizedResumeText)
	assert.Nil(t, p.QAResponses)
}
