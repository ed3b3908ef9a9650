package repository

import (
	"math"
	"strconv"
	"strings"
)

// parseID converts a raw identifier the way a loosely typed client would
// expect a string to become a number: surrounding space is ignored, an empty
// string is zero, 0x/0o/0b prefixes select the base and decimal or
// exponent forms are accepted. The boolean is false when the result is
// not a finite number.
func parseID(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	// ParseFloat also understands hex floats and underscores, neither of
	// which is a number here.
	if strings.ContainsAny(s, "_xXpP") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
