// Package ingestion turns an uploaded résumé PDF into a structured,
// redacted résumé document.
package ingestion

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText extracts plain text from a PDF file, page by page.
// Invalid, missing, or corrupt input surfaces as an *ExtractionError.
func ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not lose the rest
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
