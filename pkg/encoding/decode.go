package encoding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/connectedhome/validation-go/pkg/core"
)

var errNotObject = errors.New("document must be an object")

// Decode reads a single document in the given format. The document must be
// an object.
func Decode(r io.Reader, format Format) (map[string]any, error) {
	var (
		doc any
		err error
	)
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(r)
	case FormatYAML:
		doc, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return obj, nil
}

// DecodeBytes decodes data in the given format.
func DecodeBytes(data []byte, format Format) (map[string]any, error) {
	return Decode(bytes.NewReader(data), format)
}

// DecodeFile reads the document at path, choosing the format from its
// extension. Failures are reported as *core.DocumentError.
func DecodeFile(path string) (map[string]any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &core.DocumentError{Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &core.DocumentError{Path: path, Err: err}
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, &core.DocumentError{Path: path, Err: err}
	}
	return doc, nil
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if dec.More() {
		return nil, errors.New("unexpected data after JSON document")
	}
	return doc, nil
}

func decodeYAML(r io.Reader) (any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	return normalize(doc), nil
}

// normalize rewrites mappings with non-string keys into map[string]any so
// YAML documents have the same shape as JSON ones.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalize(item)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = normalize(item)
		}
		return t
	default:
		return v
	}
}
