package analytics

import (
	"sort"

	"github.com/insightpulse/insightpulse/internal/domain/models"
)

// Buckets for records missing their grouping fields. Malformed records are
// never dropped; they land here so totals stay complete.
const (
	UnknownMetric = "Unknown Metric"
	UnknownUnit   = "Unknown Unit"
)

// GroupKey identifies a MetricGroup. Records sharing metric and unit are
// always aggregated together; year/country/brand are sub-dimensions within
// a group, never part of the key.
type GroupKey struct {
	Metric string
	Unit   string
}

// MetricGroup is the per-(metric, unit) aggregation bucket. It lives for
// one request: created on the first matching record, mutated additively,
// then handed to the chart selector.
type MetricGroup struct {
	Metric string
	Unit   string

	Total     float64
	ByYear    map[string]float64
	ByCountry map[string]float64
	ByBrand   map[string]float64

	// Qualitative holds raw values that failed numeric normalization.
	Qualitative []string
}

// Filters is the set of equality filters the caller applied upstream.
// The aggregator never re-filters; these feed chart labeling, the
// highly-filtered card rule, and the response metadata echo.
type Filters struct {
	Year     string
	Country  string
	Brand    string
	Category string
	Metric   string
	Unit     string
}

// HighlyFiltered reports whether year, country, and brand were all supplied.
// A fully pinned query expects a single answer value, so the selector
// prefers a metric card even when a series chart exists.
func (f Filters) HighlyFiltered() bool {
	return f.Year != "" && f.Country != "" && f.Brand != ""
}

// Aggregate groups records by (metric, unit) and accumulates the total plus
// per-dimension sums. Values that do not normalize to a number are collected
// as qualitative and excluded from every sum. Multiple records hitting the
// same (group, year) pair are summed, not overwritten.
func Aggregate(records []models.FlatRecord) map[GroupKey]*MetricGroup {
	groups := make(map[GroupKey]*MetricGroup)

	for _, rec := range records {
		key := GroupKey{Metric: rec.Metric, Unit: UnknownUnit}
		if key.Metric == "" {
			key.Metric = UnknownMetric
		}
		if rec.Unit != nil && *rec.Unit != "" {
			key.Unit = *rec.Unit
		}

		g, ok := groups[key]
		if !ok {
			g = &MetricGroup{
				Metric:    key.Metric,
				Unit:      key.Unit,
				ByYear:    make(map[string]float64),
				ByCountry: make(map[string]float64),
				ByBrand:   make(map[string]float64),
			}
			groups[key] = g
		}

		v, numeric := Normalize(rec.Value)
		if !numeric {
			if rec.Value != nil && *rec.Value != "" {
				g.Qualitative = append(g.Qualitative, *rec.Value)
			}
			continue
		}

		g.Total += v
		if rec.Year != nil && *rec.Year != "" {
			g.ByYear[*rec.Year] += v
		}
		if rec.Country != nil && *rec.Country != "" {
			g.ByCountry[*rec.Country] += v
		}
		if rec.Brand != nil && *rec.Brand != "" {
			g.ByBrand[*rec.Brand] += v
		}
	}

	return groups
}

// SortedKeys returns group keys ordered by metric name then unit. Map
// iteration order is never used for emission; every output pass goes
// through this.
func SortedKeys(groups map[GroupKey]*MetricGroup) []GroupKey {
	keys := make([]GroupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Metric != keys[j].Metric {
			return keys[i].Metric < keys[j].Metric
		}
		return keys[i].Unit < keys[j].Unit
	})
	return keys
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
