package redact

import (
	"regexp"
	"sort"
)

// RegexRecognizer is the heuristic fallback recognizer. It is lossy:
// capitalized-bigram matching produces false positives on ordinary proper
// nouns and misses single-word names. It exists so redaction still has a
// working path when no stronger recognizer is wired in, and it is better
// than emitting unredacted text.
type RegexRecognizer struct{}

// NewRegexRecognizer creates the regex-based fallback recognizer
func NewRegexRecognizer() *RegexRecognizer {
	return &RegexRecognizer{}
}

var entityPatterns = []struct {
	entity string
	re     *regexp.Regexp
}{
	{EntityEmail, regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)},
	{EntityURL, regexp.MustCompile(`(?:https?://|www\.)[^\s<>]+`)},
	{EntityPhone, regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)},
	{EntityOrg, regexp.MustCompile(`\b[A-Z][a-z]+ (?:Inc|LLC|Ltd|Corp)\.?(?:\s|$|[,;])`)},
	{EntityLoc, regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)?, [A-Z]{2}\b`)},
	{EntityPerson, regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)},
}

// placeholderRe matches spans already redacted, so re-analysis skips them
var placeholderRe = regexp.MustCompile(`<(?:PERSON|ORG|EMAIL_ADDRESS|PHONE_NUMBER|URL|LOCATION)>`)

// Analyze locates personally identifying spans using the entity allow-list
// patterns. Earlier patterns win on overlap, and anything inside an existing
// redaction placeholder is left alone, which makes redaction idempotent.
func (r *RegexRecognizer) Analyze(text string) []Span {
	taken := placeholderRe.FindAllStringIndex(text, -1)
	var spans []Span

	for _, p := range entityPatterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			// The org pattern may capture a trailing separator
			for end > start && isSeparator(text[end-1]) {
				end--
			}
			if overlapsAny(start, end, taken) {
				continue
			}
			if overlapsSpans(start, end, spans) {
				continue
			}
			spans = append(spans, Span{Entity: p.entity, Start: start, End: end})
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', ',', ';':
		return true
	}
	return false
}

func overlapsAny(start, end int, regions [][]int) bool {
	for _, reg := range regions {
		if start < reg[1] && end > reg[0] {
			return true
		}
	}
	return false
}

func overlapsSpans(start, end int, spans []Span) bool {
	for _, s := range spans {
		if start < s.End && end > s.Start {
			return true
		}
	}
	return false
}
