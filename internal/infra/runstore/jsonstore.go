package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/ports"
)

const defaultRunsDir = ".todoprobe/runs"

type JSONStore struct {
	dir        string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a JSONL index at <dir>/index.jsonl.
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithDir overrides the runs directory, relative to root unless absolute.
func WithDir(dir string) Option {
	return func(s *JSONStore) {
		if dir != "" {
			s.dir = dir
		}
	}
}

func NewJSONStore(root string, opts ...Option) *JSONStore {
	s := &JSONStore{
		dir: defaultRunsDir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !filepath.IsAbs(s.dir) {
		s.dir = filepath.Join(root, s.dir)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

func (s *JSONStore) SaveDiagnostic(res domain.DiagnosticResult) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	ts := res.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := res
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), outcomeSlug(res))
	id := filename[:len(filename)-len(".json")]
	path := filepath.Join(s.dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(id, filename, toSave)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(id, filename string, res domain.DiagnosticResult) error {
	type idx struct {
		ID         string    `json:"id"`
		File       string    `json:"file"`
		RunID      string    `json:"run_id"`
		Status     int       `json:"status"`
		Extraction string    `json:"extraction"`
		StartedAt  time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:         id,
		File:       filename,
		RunID:      res.RunID,
		Status:     res.StatusCode,
		Extraction: string(res.Extraction.Path),
		StartedAt:  res.StartedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// outcomeSlug names a report file after what happened: status-500, status-201 or aborted.
func outcomeSlug(res domain.DiagnosticResult) string {
	if res.StatusCode == 0 {
		return "aborted"
	}
	return fmt.Sprintf("status-%d", res.StatusCode)
}
