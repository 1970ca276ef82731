package ingestion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/redact"
)

func TestExtractSections(t *testing.T) {
	t.Run("Body excludes next heading content", func(t *testing.T) {
		text := "EXPERIENCE\nEngineer at a startup, shipped things\nSKILLS AND TOOLS\nGo, SQL"
		sections := ExtractSections(text, []string{"Experience"})
		require.Len(t, sections, 1)
		assert.Equal(t, "EXPERIENCE", sections[0].Heading)
		assert.Contains(t, sections[0].Body, "Engineer at a startup")
		assert.NotContains(t, sections[0].Body, "Go, SQL")
	})

	t.Run("Body runs to end of text without boundary", func(t *testing.T) {
		text := "Skills\ndistributed systems, mentoring"
		sections := ExtractSections(text, []string{"Skills"})
		require.Len(t, sections, 1)
		assert.Equal(t, "\ndistributed systems, mentoring", sections[0].Body)
	})

	t.Run("Case-insensitive heading match", func(t *testing.T) {
		sections := ExtractSections("education\nnone to speak of", []string{"Education"})
		require.Len(t, sections, 1)
		assert.Equal(t, "education", sections[0].Heading)
	})

	t.Run("Empty text yields empty sections", func(t *testing.T) {
		assert.Empty(t, ExtractSections("", []string{"Education"}))
	})

	t.Run("No keyword present yields empty sections", func(t *testing.T) {
		assert.Empty(t, ExtractSections("just some prose", []string{"Education"}))
	})

	t.Run("Multiple occurrences are all found", func(t *testing.T) {
		text := "Experience\nfirst stint\nMORE BELOW\nExperience\nsecond stint"
		sections := ExtractSections(text, []string{"Experience"})
		assert.Len(t, sections, 2)
	})
}

func TestParseResume_EndToEnd(t *testing.T) {
	text := "EDUCATION\nBS CS, State U\nEXPERIENCE\nEngineer at Acme\nSKILLS\nPython, SQL"

	parsed := ParseResume(text)

	require.NotEmpty(t, parsed.Education)
	require.NotEmpty(t, parsed.Experience)
	require.NotEmpty(t, parsed.Skills)
	assert.Equal(t, "EDUCATION", parsed.Education[0].Heading)
	assert.Equal(t, "EXPERIENCE", parsed.Experience[0].Heading)
	assert.Equal(t, "SKILLS", parsed.Skills[0].Heading)
	assert.Contains(t, parsed.RawTextPreview, "EDUCATION")
}

func TestParseResume_EmptyInput(t *testing.T) {
	parsed := ParseResume("")
	assert.Empty(t, parsed.Education)
	assert.Empty(t, parsed.Experience)
	assert.Empty(t, parsed.Skills)
}

func TestBuildDocument(t *testing.T) {
	text := "EXPERIENCE\nWorked with Jane Doe at Initech Inc.\nSKILLS AND TOOLS\nGo"
	redactor := redact.New(redact.NewRegexRecognizer())

	doc, err := BuildDocument(context.Background(), text, redactor)
	require.NoError(t, err)

	assert.Equal(t, text, doc.RawText)
	assert.NotContains(t, doc.AnonymizedText, "Jane Doe")
	assert.NotEmpty(t, doc.Parsed.Experience)
}

func TestBuildDocument_FailsClosedOnRedaction(t *testing.T) {
	redactor := redact.New(nil)

	_, err := BuildDocument(context.Background(), "EXPERIENCE\nsomething", redactor)

	var unavailErr *redact.UnavailableError
	require.ErrorAs(t, err, &unavailErr)
}
