// Package document decodes JSON and YAML input into the nested []any and
// map[string]any shapes the pure package works on, and encodes results back.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	yaml "github.com/goccy/go-yaml"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrEmptyInput        = errors.New("input is empty or contains only whitespace")
	ErrDecode            = errors.New("failed to decode document")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Decode reads one JSON or YAML document from r. Mappings become
// map[string]any, sequences []any and every number float64, so 5 and 5.0
// decode to the same leaf.
func Decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return Normalize(raw), nil
}

// Normalize returns a copy of a decoded value in which numeric kinds collapse
// to float64 and maps with non-string keys get stringified keys.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = Normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Normalize(val)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}

// Encode writes v to w in the given format. Integral numbers are written
// without a fraction; JSON output replaces NaN and infinities with null.
func Encode(w io.Writer, format string, v any) error {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON:
		out, err = yaml.MarshalWithOptions(present(v, true), yaml.JSON())
	case FormatYAML:
		out, err = yaml.Marshal(present(v, false))
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	_, err = w.Write(out)
	return err
}

func present(v any, json bool) any {
	switch t := v.(type) {
	case float64:
		switch {
		case math.IsNaN(t) || math.IsInf(t, 0):
			if json {
				return nil
			}
			return t
		case t == math.Trunc(t) && math.Abs(t) < 1<<53:
			return int64(t)
		default:
			return t
		}
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = present(val, json)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = present(val, json)
		}
		return out
	default:
		return v
	}
}
