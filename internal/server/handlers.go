package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-coach/internal/coaching"
	"github.com/jonathan/career-coach/internal/ingestion"
	"github.com/jonathan/career-coach/internal/profile"
	"github.com/jonathan/career-coach/internal/qa"
	"github.com/jonathan/career-coach/internal/types"
)

const maxUploadBytes = 10 << 20

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleQuestions returns the fixed career question set in order
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"questions": qa.Questions()})
}

// handleUploadResume accepts a PDF upload, extracts and sections its text,
// redacts it, and persists the resulting document
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		s.errorResponse(w, http.StatusBadRequest, "Only PDF files are accepted")
		return
	}

	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	tmp.Close()

	doc, err := ingestion.ParseDocument(r.Context(), tmp.Name(), s.redactor)
	if err != nil {
		s.errorResponse(w, httpStatus(err), "Failed to process resume: "+err.Error())
		return
	}

	name, err := s.store.SaveResume(doc)
	if err != nil {
		log.Printf("Failed to persist resume: %v", err)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume":   doc,
		"saved_as": name,
	})
}

// handleAnalyze merges résumé and Q&A documents into a candidate profile and
// runs the coaching engine over it. Analysis failures are reported inside the
// report body rather than as an HTTP error, so the client always gets the raw
// response back for inspection.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var resumeDoc, qaDoc map[string]any
	if err := json.Unmarshal(req.Resume, &resumeDoc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume must be a JSON object")
		return
	}
	if err := json.Unmarshal(req.QA, &qaDoc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "qa must be a JSON object")
		return
	}

	candidate := profile.Merge(resumeDoc, qaDoc)
	report := s.engine.Analyze(r.Context(), candidate)

	summary := coaching.HumanSummary(report)
	if report.Failed() {
		summary = "Analysis did not produce a valid report: " + report.Error
	} else {
		if name, err := s.store.SaveReport(report, summary); err != nil {
			log.Printf("Failed to persist report: %v", err)
		} else {
			log.Printf("Saved coaching report %s", name)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"report":  report,
		"summary": summary,
	})
}

// handleFindJobs generates job matches for a previously produced coaching
// report. The report payload is normalized first so clients may send either
// string or list values for the list-shaped fields.
func (s *Server) handleFindJobs(w http.ResponseWriter, r *http.Request) {
	var req types.JobMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var reportDoc map[string]any
	if err := json.Unmarshal(req.CoachingSummary, &reportDoc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "coaching_summary must be a JSON object")
		return
	}
	report := coaching.NormalizeReport(reportDoc)

	matches, err := s.matcher.Find(r.Context(), report, req.NumJobs)
	if err != nil {
		s.errorResponse(w, httpStatus(err), "Job matching failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": matches})
}

// handleListSessions lists saved Q&A session artifacts
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	s.listArtifacts(w, "sessions", s.store.ListSessions)
}

// handleListResumes lists saved résumé artifacts
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	s.listArtifacts(w, "resumes", s.store.ListResumes)
}

// handleListReports lists saved coaching report artifacts
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	s.listArtifacts(w, "reports", s.store.ListReports)
}

func (s *Server) listArtifacts(w http.ResponseWriter, key string, list func() ([]string, error)) {
	names, err := list()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list "+key+": "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{key: names})
}
