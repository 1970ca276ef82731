package ingestion

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

// sectionBoundary marks the start of the next section: a newline followed
// by at least two uppercase letters or spaces.
var sectionBoundary = regexp.MustCompile(`\n[A-Z\s]{2,}`)

// ExtractSections finds all non-overlapping (heading, body) pairs for the
// given heading keywords. Matching is case-insensitive; a body runs from
// right after a matched heading up to the next section boundary or end of
// text. Because the scan is greedy across the whole text, a body may span
// multiple intended sections when no clean uppercase heading line
// intervenes; that is an accepted heuristic limitation. No match yields an
// empty slice, never an error.
func ExtractSections(text string, keywords []string) []types.Section {
	if text == "" || len(keywords) == 0 {
		return nil
	}

	escaped := make([]string, len(keywords))
	for i, kw := range keywords {
		escaped[i] = regexp.QuoteMeta(kw)
	}
	headingRe := regexp.MustCompile(`(?i)` + strings.Join(escaped, "|"))

	var sections []types.Section
	pos := 0
	for pos < len(text) {
		loc := headingRe.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		headStart, headEnd := pos+loc[0], pos+loc[1]

		bodyEnd := len(text)
		if b := sectionBoundary.FindStringIndex(text[headEnd:]); b != nil {
			bodyEnd = headEnd + b[0]
		}

		sections = append(sections, types.Section{
			Heading: text[headStart:headEnd],
			Body:    text[headEnd:bodyEnd],
		})
		pos = bodyEnd
	}

	return sections
}
