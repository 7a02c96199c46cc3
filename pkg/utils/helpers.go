package utils

import (
	"fmt"
	"math"
	"time"
)

// ParseDuration safely parses a duration string like "24h", falling back
// to def on empty or invalid input
func ParseDuration(d string, def time.Duration) time.Duration {
	if d == "" {
		return def
	}
	duration, err := time.ParseDuration(d)
	if err != nil {
		return def
	}
	return duration
}

// FormatLargeNumber renders a value with a magnitude suffix, e.g. "1.23T"
// or "456.78B". NaN renders as "N/A".
func FormatLargeNumber(value float64, precision int) string {
	if math.IsNaN(value) {
		return "N/A"
	}

	abs := math.Abs(value)
	sign := ""
	if value < 0 {
		sign = "-"
	}

	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%s%.*fT", sign, precision, abs/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%s%.*fB", sign, precision, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s%.*fM", sign, precision, abs/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s%.*fK", sign, precision, abs/1e3)
	default:
		return fmt.Sprintf("%s%.*f", sign, precision, abs)
	}
}

// FormatPercent renders a percentage value, e.g. "3.45%". NaN renders as
// "N/A".
func FormatPercent(value float64, precision int) string {
	if math.IsNaN(value) {
		return "N/A"
	}
	return fmt.Sprintf("%.*f%%", precision, value)
}
