package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMeasurement parses a single measurement cell. Cells in the
// winequality files are plain dot-decimal numbers; anything else is an
// error so the loader can report the row.
func ParseMeasurement(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return f, nil
}

// FormatMeasurement renders a measurement the way the source files do:
// no trailing zeros, dot decimal
func FormatMeasurement(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Numeric safely converts supported types to float64
func Numeric(v interface{}) float64 {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case float64:
		return val
	case float32:
		return float64(val)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}
