package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	messageIDPattern           = regexp.MustCompile(`^[a-zA-Z0-9-]*$`)
	applianceIDPattern         = regexp.MustCompile(`^[a-zA-Z0-9_\-=;:?@&]*$`)
	alphanumericPattern        = regexp.MustCompile(`^[a-zA-Z0-9]*$`)
	alphanumericSpacesPattern  = regexp.MustCompile(`^[a-zA-Z0-9 ]*$`)
	positiveIntegerTextPattern = regexp.MustCompile(`^[0-9]+$`)
)

// object returns m[key] as a mapping.
func object(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key].(map[string]any)
	return v, ok
}

func isEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}

func charCount(s string) int {
	return utf8.RuneCountInString(s)
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// toFloat converts decoded numeric values. Booleans and strings are not
// numbers.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func isNumber(v any) bool {
	f, ok := toFloat(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// isPositiveInteger accepts integral numbers and digit-only strings greater
// than zero.
func isPositiveInteger(v any) bool {
	if s, ok := v.(string); ok {
		if !positiveIntegerTextPattern.MatchString(s) {
			return false
		}
		n, err := strconv.ParseUint(s, 10, 64)
		return err == nil && n > 0
	}
	f, ok := toFloat(v)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return f > 0 && f == math.Trunc(f)
}

// serializedSize returns the length of the JSON encoding of v.
func serializedSize(v any) (int, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("serialize: %w", err)
	}
	return len(b), nil
}
