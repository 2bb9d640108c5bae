// Package sysfs reads power-supply attributes from /sys and normalizes
// their numeric content.
package sysfs

import (
	"os"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// GetContents reads a sysfs attribute and returns its content with
// surrounding whitespace trimmed. An existing but empty attribute returns
// "" with a nil error; callers treat empty content as a failed read.
func GetContents(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to read %s", path)
	}
	return strings.TrimSpace(string(b)), nil
}

// Clamp caps v into [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Percentage parses a decimal capacity reading and normalizes it into an
// integer percentage: non-numeric content parses as 0, the value is capped
// into [0, 100], and the fractional remainder rounds half-up.
func Percentage(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		v = 0
	}
	return int(Clamp(v, 0, 100) + 0.5)
}
