// Package export re-encodes JSON result and history files as YAML or TOML.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"toolbox/internal/domain"
)

type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// RecordsKey holds a top-level array or scalar, since TOML documents must be tables.
const RecordsKey = "records"

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case YAML, "yml":
		return YAML, nil
	case TOML:
		return TOML, nil
	default:
		return "", domain.Invalid("export.format", "unsupported format %q (want yaml or toml)", s)
	}
}

// Convert decodes a JSON document and encodes it in format f.
func Convert(raw []byte, f Format) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &domain.OpError{Op: "export.decode", Kind: domain.KindMalformed, Err: err}
	}
	doc = normalize(doc, f)

	switch f {
	case YAML:
		return yaml.Marshal(doc)
	case TOML:
		if _, ok := doc.(map[string]any); !ok {
			doc = map[string]any{RecordsKey: doc}
		}
		return toml.Marshal(doc)
	default:
		return nil, domain.Invalid("export.format", "unsupported format %q", f)
	}
}

// File converts the JSON file at path and writes the result to w.
func File(path string, f Format, w io.Writer) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &domain.OpError{Op: "export.read", Kind: domain.KindIO, Path: path, Err: err}
	}
	out, err := Convert(raw, f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if _, err := w.Write(out); err != nil {
		return &domain.OpError{Op: "export.write", Kind: domain.KindIO, Err: err}
	}
	return nil
}

// normalize drops nulls, which TOML cannot represent, and resolves numbers
// to the narrowest Go type so 3 does not come out as 3.0 and uint64 values
// keep every digit.
func normalize(v any, f Format) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			if e == nil {
				delete(t, k)
				continue
			}
			t[k] = normalize(e, f)
		}
		return t
	case []any:
		out := t[:0]
		for _, e := range t {
			if e != nil {
				out = append(out, normalize(e, f))
			}
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			// TOML integers are signed 64-bit.
			if f == TOML {
				return t.String()
			}
			return u
		}
		if x, err := t.Float64(); err == nil {
			return x
		}
		return t.String()
	default:
		return v
	}
}
