// Package types provides type definitions for structured data used throughout the career-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile is the merged view of a parsed résumé and a Q&A session
// that is sent to the LLM for coaching analysis. It is transient: built
// fresh for each analysis request and never persisted as its own artifact.
type CandidateProfile struct {
	Resume               any            `json:"resume"`
	AnonymizedResumeText string         `json:"anonymized_resume_text,omitempty"`
	RawResumeText        string         `json:"raw_resume_text,omitempty"`
	QAResponses          map[string]any `json:"qa_responses"`
	RawQAResponses       map[string]any `json:"raw_qa_responses,omitempty"`
}
