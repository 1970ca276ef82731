package qa

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-coach/internal/redact"
)

// Collect asks each question on w and reads one free-text answer per
// question from r. When a redactor is supplied, every answer is redacted
// before it is recorded; a redaction failure aborts collection rather than
// recording unredacted text.
func Collect(r io.Reader, w io.Writer, redactor *redact.Redactor) (map[string]string, error) {
	scanner := bufio.NewScanner(r)
	answers := make(map[string]string, len(questions))

	for _, q := range questions {
		fmt.Fprintf(w, "\n%s\n", q.Question)
		fmt.Fprint(w, "Your answer: ")

		answer := ""
		if scanner.Scan() {
			answer = strings.TrimSpace(scanner.Text())
		} else if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read answer: %w", err)
		}

		if redactor != nil {
			redacted, err := redactor.Redact(answer)
			if err != nil {
				return nil, err
			}
			answer = redacted
		}
		answers[q.Key] = answer
	}

	return answers, nil
}
