package encoding

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/connectedhome/validation-go/pkg/core"
)

// Format identifies a document serialization.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as accepted on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, name)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, path)
	}
}
