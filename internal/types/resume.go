// Package types provides type definitions for structured data used throughout the career-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Section represents a résumé section located by heading keyword matching
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// ParsedResume represents the structured sections extracted from résumé text
type ParsedResume struct {
	Education      []Section `json:"education"`
	Experience     []Section `json:"experience"`
	Skills         []Section `json:"skills"`
	RawTextPreview string    `json:"raw_text_preview,omitempty"`
}

// ResumeDocument is the persisted form of a parsed résumé: the structured
// sections plus the full extracted text and its redacted counterpart
type ResumeDocument struct {
	Parsed         ParsedResume `json:"parsed"`
	RawText        string       `json:"raw_text,omitempty"`
	AnonymizedText string       `json:"anonymized_text,omitempty"`
}
