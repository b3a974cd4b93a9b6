package dashboard

import (
	"math"
	"sort"
	"strings"
)

// mapKeys returns the map's keys sorted lexicographically. Every chart emits
// through this so output order never depends on map iteration.
func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// keysByValueDesc orders keys by descending value, name ascending on ties.
func keysByValueDesc(m map[string]float64) []string {
	keys := mapKeys(m)
	sort.SliceStable(keys, func(i, j int) bool {
		return m[keys[i]] > m[keys[j]]
	})
	return keys
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

func isElectric(fuelType string) bool {
	return strings.Contains(strings.ToLower(fuelType), "electric")
}
