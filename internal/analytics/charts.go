package analytics

import (
	"strings"

	"github.com/insightpulse/insightpulse/internal/domain/dto"
)

// SuppressionMode controls how the all-zero rule is applied: to the whole
// candidate chart (default, matches observed product behavior) or to
// individual entries of a multi-series chart.
type SuppressionMode int

const (
	SuppressPerChart SuppressionMode = iota
	SuppressPerSeries
)

// Options tunes chart selection.
type Options struct {
	Suppression SuppressionMode
}

// SelectCharts decides which chart shapes a metric group yields, in fixed
// order: time-series line, by-country bar, by-brand bar, metric card. Each
// rule is independent; a group may emit zero, one, or several items.
func SelectCharts(g *MetricGroup, f Filters, opts Options) []dto.ChartItem {
	var charts []dto.ChartItem
	filterAttached := false

	// 1. Time series: needs more than one distinct year. Years are period
	// labels sorted lexicographically; callers pre-normalize them to a
	// consistent width.
	if len(g.ByYear) > 1 {
		years := sortedKeys(g.ByYear)
		data := make([]float64, len(years))
		for i, y := range years {
			data[i] = g.ByYear[y]
		}
		if !allZero(data) {
			charts = append(charts, dto.ChartItem{
				ID:     Slug(g.Metric + " over time"),
				Title:  g.Metric + " over time",
				Type:   dto.ChartLine,
				Unit:   g.Unit,
				Series: dto.Series{Data: data, Categories: years},
			})
		}
	}

	// 2. By-country bar, with a location filter block so the client can
	// toggle country views without a new request.
	if len(g.ByCountry) > 1 {
		if item, ok := dimensionBar(g, g.ByCountry, "by Country", "location", opts); ok {
			charts = append(charts, item)
			filterAttached = true
		}
	}

	// 3. By-brand bar is a fallback dimension; never alongside a country
	// filter block to keep the filter UI unambiguous.
	if len(g.ByBrand) > 1 && !filterAttached {
		if item, ok := dimensionBar(g, g.ByBrand, "by Brand", "brand", opts); ok {
			charts = append(charts, item)
		}
	}

	// 4. Metric card: fallback when nothing charted, and the preferred
	// answer for a fully pinned (year+country+brand) query. A zero-total
	// fallback card is "no signal" and stays suppressed unless the request
	// was highly filtered, where showing the explicit 0 is the point.
	if len(charts) == 0 || f.HighlyFiltered() {
		if g.Total != 0 || f.HighlyFiltered() {
			charts = append(charts, metricCard(g, f))
		}
	}

	return charts
}

// dimensionBar builds a categorical bar over one dimension map, attaching
// the filter block and the per-option alternate series.
func dimensionBar(g *MetricGroup, dim map[string]float64, titleSuffix, filterType string, opts Options) (dto.ChartItem, bool) {
	cats := sortedKeys(dim)
	data := make([]float64, len(cats))
	for i, c := range cats {
		data[i] = dim[c]
	}
	if allZero(data) {
		return dto.ChartItem{}, false
	}

	all := dto.Series{Data: data, Categories: cats}
	allSeries := map[string]dto.Series{"All": all}
	for i, c := range cats {
		if opts.Suppression == SuppressPerSeries && data[i] == 0 {
			continue
		}
		allSeries[c] = dto.Series{Data: []float64{data[i]}, Categories: []string{c}}
	}

	return dto.ChartItem{
		ID:     Slug(g.Metric + " " + titleSuffix),
		Title:  g.Metric + " " + titleSuffix,
		Type:   dto.ChartBar,
		Unit:   g.Unit,
		Series: all,
		Filters: &dto.FilterBlock{
			Type:    filterType,
			Options: append([]string{"All"}, cats...),
		},
		AllSeries: allSeries,
	}, true
}

// metricCard renders the group total as a single-value card. The label
// prefers the sole year, then the pinned country/brand, then "Value".
func metricCard(g *MetricGroup, f Filters) dto.ChartItem {
	label := "Value"
	switch {
	case len(g.ByYear) == 1:
		label = sortedKeys(g.ByYear)[0]
	case f.Country != "" || f.Brand != "":
		parts := make([]string, 0, 2)
		if f.Country != "" {
			parts = append(parts, f.Country)
		}
		if f.Brand != "" {
			parts = append(parts, f.Brand)
		}
		label = strings.Join(parts, " / ")
	}

	return dto.ChartItem{
		ID:     Slug(g.Metric),
		Title:  g.Metric,
		Type:   dto.ChartMetric,
		Unit:   g.Unit,
		Series: dto.Series{Data: []float64{g.Total}, Categories: []string{label}},
	}
}

// Assemble packages the groups into the response envelope. Groups are
// visited in sorted (metric, unit) order; a group disappears only when it
// charted nothing, summed to zero, and the request was not highly filtered
// (a pinned zero-value query stays visible as its "no data" card).
func Assemble(groups map[GroupKey]*MetricGroup, f Filters, opts Options) dto.ResponseEnvelope {
	env := dto.ResponseEnvelope{
		Metadata: dto.Metadata{
			Year:     f.Year,
			Country:  f.Country,
			Brand:    f.Brand,
			Category: f.Category,
			Metric:   f.Metric,
			Unit:     f.Unit,
		},
		Metrics: []dto.MetricSummary{},
	}

	for _, key := range SortedKeys(groups) {
		g := groups[key]
		charts := SelectCharts(g, f, opts)
		if len(charts) == 0 && g.Total == 0 && !f.HighlyFiltered() {
			continue
		}
		env.Metrics = append(env.Metrics, dto.MetricSummary{
			MetricName: g.Metric,
			Unit:       g.Unit,
			Charts:     charts,
		})
	}

	return env
}

// Slug derives a stable chart id: lower-cased, spaces to hyphens.
func Slug(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
}

func allZero(data []float64) bool {
	for _, v := range data {
		if v != 0 {
			return false
		}
	}
	return true
}
