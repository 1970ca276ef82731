// Package store persists session artifacts as flat, human-inspectable JSON
// files. Filenames are the only index: timestamp-named, immutable once
// written, enumerable by prefix. There is no deletion or expiry.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/career-coach/internal/types"
)

// Directory and filename layout for session artifacts
const (
	sessionsDir = "sessions"
	resumesDir  = "resumes"
	reportsDir  = "reports"

	qaPrefix      = "qa_"
	resumePrefix  = "resume_"
	reportPrefix  = "coaching_report_"
	summaryPrefix = "coaching_summary_"

	timestampLayout = "20060102_150405"
)

// Store persists and enumerates session artifacts under a root directory
type Store struct {
	root string
	now  func() time.Time
}

// New creates a Store rooted at the given directory. Subdirectories are
// created lazily on first write.
func New(root string) *Store {
	return &Store{root: root, now: time.Now}
}

// SaveQA writes a Q&A session to sessions/qa_<timestamp>.json and returns
// the filename.
func (s *Store) SaveQA(answers map[string]string) (string, error) {
	name := qaPrefix + s.timestamp() + ".json"
	return name, s.writeJSON(sessionsDir, name, answers)
}

// SaveResume writes a parsed résumé document to
// resumes/resume_<timestamp>.json and returns the filename.
func (s *Store) SaveResume(doc types.ResumeDocument) (string, error) {
	name := resumePrefix + s.timestamp() + ".json"
	return name, s.writeJSON(resumesDir, name, doc)
}

// SaveReport writes a coaching report to
// reports/coaching_report_<timestamp>.json, plus a sibling
// coaching_summary_<timestamp>.txt when summary is non-empty.
// Returns the report filename.
func (s *Store) SaveReport(report types.CoachingReport, summary string) (string, error) {
	ts := s.timestamp()
	name := reportPrefix + ts + ".json"
	if err := s.writeJSON(reportsDir, name, report); err != nil {
		return "", err
	}
	if summary != "" {
		txtName := summaryPrefix + ts + ".txt"
		if err := s.writeFile(reportsDir, txtName, []byte(summary)); err != nil {
			return "", err
		}
	}
	return name, nil
}

// ListSessions returns saved Q&A session filenames, sorted by name
// (and therefore by timestamp).
func (s *Store) ListSessions() ([]string, error) {
	return s.list(sessionsDir, qaPrefix, ".json")
}

// ListResumes returns saved résumé filenames, sorted by name.
func (s *Store) ListResumes() ([]string, error) {
	return s.list(resumesDir, resumePrefix, ".json")
}

// ListReports returns saved coaching report filenames, sorted by name.
func (s *Store) ListReports() ([]string, error) {
	return s.list(reportsDir, reportPrefix, ".json")
}

// LoadQA loads a Q&A session by filename into a generic document
func (s *Store) LoadQA(name string) (map[string]any, error) {
	return s.loadDoc(sessionsDir, name)
}

// LoadResume loads a résumé document by filename into a generic document.
// The generic shape lets the profile merger tolerate both wrapped and raw
// résumé records.
func (s *Store) LoadResume(name string) (map[string]any, error) {
	return s.loadDoc(resumesDir, name)
}

// LoadReport loads a coaching report by filename
func (s *Store) LoadReport(name string) (types.CoachingReport, error) {
	var report types.CoachingReport
	data, err := s.read(reportsDir, name)
	if err != nil {
		return report, err
	}
	if err := json.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("failed to parse report %s: %w", name, err)
	}
	return report, nil
}

func (s *Store) timestamp() string {
	return s.now().Format(timestampLayout)
}

func (s *Store) writeJSON(dir, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	return s.writeFile(dir, name, data)
}

func (s *Store) writeFile(dir, name string, data []byte) error {
	abs := filepath.Join(s.root, dir)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", abs, err)
	}
	path := filepath.Join(abs, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (s *Store) list(dir, prefix, suffix string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix) {
			names = append(names, name)
		}
	}
	return names, nil
}

func (s *Store) loadDoc(dir, name string) (map[string]any, error) {
	data, err := s.read(dir, name)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return doc, nil
}

func (s *Store) read(dir, name string) ([]byte, error) {
	// Reject path traversal through artifact names
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid artifact name: %s", name)
	}
	path := filepath.Join(s.root, dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
