package booking

import (
	"strconv"
	"strings"
)

// NormalizeDimension validates free-text carpet dimension input and returns a
// normalized decimal string, or "" when the input carries no usable value.
// Accepted input is digits with at most one decimal separator; a comma
// separator is normalized to a dot. Values above max are clamped to max.
func NormalizeDimension(raw string, max float64) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.Count(s, ".") > 1 {
		return ""
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return ""
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	if v > max {
		return strconv.FormatFloat(max, 'f', -1, 64)
	}
	return s
}
