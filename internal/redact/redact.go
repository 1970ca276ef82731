// Package redact strips personally identifying spans from free text before
// it is sent to the LLM provider.
package redact

import (
	"fmt"
	"sort"
	"strings"
)

// Entities in the redaction allow-list. Only these are ever redacted.
const (
	EntityPerson = "PERSON"
	EntityOrg    = "ORG"
	EntityEmail  = "EMAIL_ADDRESS"
	EntityPhone  = "PHONE_NUMBER"
	EntityURL    = "URL"
	EntityLoc    = "LOCATION"
)

// Span marks a personally identifying range of text
type Span struct {
	Entity string
	Start  int
	End    int
}

// Recognizer locates personally identifying spans in text
type Recognizer interface {
	Analyze(text string) []Span
}

// UnavailableError indicates the underlying recognizer is not available.
// Redaction fails closed: no recognizer means no text is emitted.
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("redaction unavailable: %s", e.Message)
}

// Redactor replaces recognized spans with entity placeholders
type Redactor struct {
	rec Recognizer
}

// New creates a Redactor backed by the given recognizer. A nil recognizer
// is allowed at construction time; Redact then fails closed.
func New(rec Recognizer) *Redactor {
	return &Redactor{rec: rec}
}

// Redact returns text with every recognized span replaced by an
// <ENTITY> placeholder. Re-redacting already-redacted text is a no-op:
// placeholders are never treated as new spans.
func (r *Redactor) Redact(text string) (string, error) {
	if r == nil || r.rec == nil {
		return "", &UnavailableError{Message: "no recognizer configured"}
	}

	spans := r.rec.Analyze(text)
	if len(spans) == 0 {
		return text, nil
	}

	// Replace from the end so earlier offsets stay valid, dropping
	// spans that overlap one already applied.
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start > spans[j].Start
		}
		return spans[i].End > spans[j].End
	})

	out := text
	lastStart := len(text) + 1
	for _, s := range spans {
		if s.Start < 0 || s.End > len(text) || s.End <= s.Start {
			continue
		}
		if s.End > lastStart {
			continue
		}
		out = out[:s.Start] + placeholder(s.Entity) + out[s.End:]
		lastStart = s.Start
	}
	return out, nil
}

func placeholder(entity string) string {
	return "<" + strings.ToUpper(entity) + ">"
}
