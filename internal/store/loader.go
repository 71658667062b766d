package store

import (
	"toolbox/internal/domain"
)

// Validator is implemented by config records that check their own invariants.
type Validator interface {
	Validate() error
}

// LoadOrInit returns the parsed content of path. When the file is absent the
// value built by defaults is persisted and returned with created set to true.
// A malformed file yields a KindMalformed error; the caller decides whether
// to fall back to defaults or abort.
func LoadOrInit[T any](path string, defaults func() T) (cfg T, created bool, err error) {
	found, err := readJSON(path, &cfg)
	if err != nil {
		var zero T
		kind := domain.KindIO
		if found {
			kind = domain.KindMalformed
		}
		return zero, false, &domain.OpError{Op: "store.load", Kind: kind, Path: path, Err: err}
	}

	if !found {
		cfg = defaults()
		if err := writeJSON(path, cfg, true, 0o644); err != nil {
			return cfg, false, &domain.OpError{Op: "store.init", Kind: domain.KindIO, Path: path, Err: err}
		}
		created = true
	}

	if v, ok := any(&cfg).(Validator); ok {
		if err := v.Validate(); err != nil {
			return cfg, created, &domain.OpError{Op: "store.validate", Kind: domain.KindInvalidInput, Path: path, Err: err}
		}
	}
	return cfg, created, nil
}

// Load reads path into a T. ok is false when the file does not exist.
func Load[T any](path string) (v T, ok bool, err error) {
	found, err := readJSON(path, &v)
	if err != nil {
		var zero T
		kind := domain.KindIO
		if found {
			kind = domain.KindMalformed
		}
		return zero, false, &domain.OpError{Op: "store.load", Kind: kind, Path: path, Err: err}
	}
	return v, found, nil
}

// Save overwrites path with v, pretty-printed.
func Save(path string, v any) error {
	if err := writeJSON(path, v, true, 0o644); err != nil {
		return &domain.OpError{Op: "store.save", Kind: domain.KindIO, Path: path, Err: err}
	}
	return nil
}
