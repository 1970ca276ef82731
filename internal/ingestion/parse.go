package ingestion

import (
	"github.com/jonathan/career-coach/internal/types"
)

// previewLen is how much raw text is kept on the parsed record for display
const previewLen = 1000

// Heading keyword sets for the fixed résumé sections
var (
	educationKeywords  = []string{"Education", "EDUCATION"}
	experienceKeywords = []string{"Experience", "EXPERIENCE", "Work History"}
	skillsKeywords     = []string{"Skills", "SKILLS", "Technologies"}
)

// ParseResume splits résumé text into the fixed section groups
func ParseResume(text string) types.ParsedResume {
	return types.ParsedResume{
		Education:      ExtractSections(text, educationKeywords),
		Experience:     ExtractSections(text, experienceKeywords),
		Skills:         ExtractSections(text, skillsKeywords),
		RawTextPreview: preview(text),
	}
}

func preview(text string) string {
	if len(text) > previewLen {
		return text[:previewLen] + "..."
	}
	return text + "..."
}
