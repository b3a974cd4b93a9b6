// Package analytics implements the dynamic metric aggregation and
// chart-shaping engine: flat (metric, year, country, brand, value) records
// in, chart-ready structures out. All state is scoped to one call; nothing
// here touches I/O.
package analytics

import (
	"regexp"
	"strconv"
	"strings"
)

// magnitudes are checked in priority order so "billion" wins over the "k"
// it happens to contain.
var magnitudes = []struct {
	word   string
	factor float64
}{
	{"billion", 1e9},
	{"million", 1e6},
	{"k", 1e3},
}

var leadingNumber = regexp.MustCompile(`^[0-9.]+`)

// Normalize coerces a raw textual value ("USD 4.35 billion", "120k", "42")
// into a float64. The second return is false for non-numeric values, which
// are excluded from arithmetic but kept as qualitative data by callers.
// A nil pointer (NULL column) is non-numeric.
func Normalize(raw *string) (float64, bool) {
	if raw == nil {
		return 0, false
	}
	return NormalizeString(*raw)
}

// NormalizeString is Normalize for values already known to be present.
func NormalizeString(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}

	factor := 1.0
	for _, m := range magnitudes {
		if strings.Contains(s, m.word) {
			factor = m.factor
			s = strings.TrimSpace(strings.ReplaceAll(s, m.word, ""))
			break
		}
	}

	prefix := leadingNumber.FindString(s)
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// e.g. "1.2.3" matches the prefix pattern but is not a number
		return 0, false
	}
	return v * factor, true
}
