// Package profile merges a parsed résumé record and a Q&A record into a
// single candidate profile for coaching analysis.
package profile

import (
	"github.com/jonathan/career-coach/internal/types"
)

// Merge combines a résumé document and a Q&A document into a candidate
// profile. Pure function: no network or disk I/O.
//
// Both inputs may arrive in a "wrapped" shape ({"parsed": ...,
// "raw_text"/"anonymized_text": ...} for résumés, {"raw_answers": ...}
// for Q&A) or a "raw" shape with the fields at top level. Missing text
// fields default to an empty string rather than failing.
func Merge(resumeDoc, qaDoc map[string]any) types.CandidateProfile {
	p := types.CandidateProfile{
		AnonymizedResumeText: stringField(resumeDoc, "anonymized_text"),
		RawResumeText:        stringField(resumeDoc, "raw_text"),
		QAResponses:          qaDoc,
		RawQAResponses:       qaDoc,
	}

	if parsed, ok := resumeDoc["parsed"].(map[string]any); ok {
		p.Resume = parsed
	} else {
		p.Resume = resumeDoc
	}

	if raw, ok := qaDoc["raw_answers"].(map[string]any); ok {
		p.RawQAResponses = raw
	}

	return p
}

func stringField(doc map[string]any, key string) string {
	if doc == nil {
		return ""
	}
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}
