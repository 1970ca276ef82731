package coaching

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

// HumanSummary renders a coaching report as the plain-text summary that is
// saved next to the JSON artifact. Returns "" for the error variant.
func HumanSummary(r types.CoachingReport) string {
	if r.Failed() {
		return ""
	}

	var sb strings.Builder
	profileType := r.ProfileType
	if profileType == "" {
		profileType = "N/A"
	}
	fmt.Fprintf(&sb, "Profile Type: %s\n\n", profileType)
	fmt.Fprintf(&sb, "Summary:\n%s\n\n", r.Summary)

	writeList(&sb, "Strengths", r.Strengths)
	writeList(&sb, "Skill Gaps", r.Gaps)
	writeList(&sb, "Recommendations", r.Recommendations)
	writeList(&sb, "Suggested Jobs", r.SuggestedJobs)

	return sb.String()
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(sb, "%s: (none)\n\n", label)
		return
	}
	fmt.Fprintf(sb, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(sb, "  - %s\n", item)
	}
	sb.WriteString("\n")
}
