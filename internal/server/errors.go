package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/career-coach/internal/ingestion"
	"github.com/jonathan/career-coach/internal/llm"
)

// httpStatus maps pipeline errors to HTTP status codes. Upstream LLM
// failures are the gateway's fault, not the client's; everything else
// untyped is a server error.
func httpStatus(err error) int {
	var transportErr *llm.TransportError
	if errors.As(err, &transportErr) {
		return http.StatusBadGateway
	}
	var extractionErr *ingestion.ExtractionError
	if errors.As(err, &extractionErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
