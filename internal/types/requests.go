// Package types provides type definitions for structured data used throughout the career-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest represents the request to run a coaching analysis over a
// parsed résumé document and a Q&A session
type AnalyzeRequest struct {
	Resume      json.RawMessage `json:"resume" validate:"required"`
	QA          json.RawMessage `json:"qa" validate:"required"`
	SessionName string          `json:"session_name,omitempty"`
}

// JobMatchRequest represents the request to find job matches for a coaching report
type JobMatchRequest struct {
	CoachingSummary json.RawMessage `json:"coaching_summary" validate:"required"`
	NumJobs         int             `json:"num_jobs,omitempty" validate:"omitempty,min=1,max=20"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the JobMatchRequest using the validator.
func (r *JobMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
