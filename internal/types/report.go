// Package types provides type definitions for structured data used throughout the career-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CoachingReport represents the structured result of a profile analysis.
// When the LLM response could not be parsed into the expected shape, the
// Error and RawResponse fields are set instead of the report fields.
type CoachingReport struct {
	ProfileType     string   `json:"profile_type,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	Strengths       []string `json:"strengths,omitempty"`
	Gaps            []string `json:"gaps,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	SuggestedJobs   []string `json:"suggested_jobs,omitempty"`

	Error       string `json:"error,omitempty"`
	RawResponse string `json:"raw_response,omitempty"`
}

// Failed reports whether this is the error variant of a coaching report
func (r *CoachingReport) Failed() bool {
	return r.Error != ""
}

// JobMatch represents a single job opportunity proposed for a candidate
type JobMatch struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MatchReasons    string   `json:"match_reasons"`
	MatchingSkills  []string `json:"matching_skills"`
	SkillsToDevelop []string `json:"skills_to_develop"`
}

// JobMatchList is the wrapper shape the job matcher expects from the LLM
type JobMatchList struct {
	Jobs []JobMatch `json:"jobs"`
}
