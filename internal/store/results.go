package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"toolbox/internal/domain"
)

// ResultWriter persists result records inside one data folder.
type ResultWriter struct {
	dir    string
	pretty bool
	mu     sync.Mutex
}

// NewResultWriter returns a ResultWriter rooted at dir.
func NewResultWriter(dir string, pretty bool) *ResultWriter {
	return &ResultWriter{dir: dir, pretty: pretty}
}

// Path resolves name inside the data folder.
func (w *ResultWriter) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Overwrite replaces the named file with v.
func (w *ResultWriter) Overwrite(name string, v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	path := w.Path(name)
	if err := writeJSON(path, v, w.pretty, 0o644); err != nil {
		return &domain.OpError{Op: "results.overwrite", Kind: domain.KindIO, Path: path, Err: err}
	}
	return nil
}

// Append adds v to the JSON array held in the named file. A missing file
// starts a new array. Records are never de-duplicated.
func (w *ResultWriter) Append(name string, v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	path := w.Path(name)
	var records []json.RawMessage
	if found, err := readJSON(path, &records); err != nil {
		kind := domain.KindIO
		if found {
			kind = domain.KindMalformed
		}
		return &domain.OpError{Op: "results.append", Kind: kind, Path: path, Err: err}
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return &domain.OpError{Op: "results.append", Kind: domain.KindMalformed, Path: path, Err: err}
	}
	records = append(records, raw)

	if err := writeJSON(path, records, w.pretty, 0o644); err != nil {
		return &domain.OpError{Op: "results.append", Kind: domain.KindIO, Path: path, Err: err}
	}
	return nil
}

// ReadHistory decodes every record of an append-only file into T.
func ReadHistory[T any](path string) ([]T, error) {
	var out []T
	if _, err := readJSON(path, &out); err != nil {
		return nil, &domain.OpError{Op: "results.read", Kind: domain.KindMalformed, Path: path, Err: err}
	}
	return out, nil
}

// Compile-time assertion that ResultWriter implements domain.ResultStore.
var _ domain.ResultStore = (*ResultWriter)(nil)
