package dto

// Chart item types understood by the front-end renderer.
const (
	ChartLine   = "line"
	ChartBar    = "bar"
	ChartMetric = "metric"
)

// Series is one plotted series: data[i] belongs to categories[i].
type Series struct {
	Data       []float64 `json:"data"`
	Categories []string  `json:"categories"`
}

// FilterBlock describes a client-side filter toggle attached to a chart.
// Options always starts with "All"; each remaining option keys an entry in
// the chart's AllSeries map.
type FilterBlock struct {
	Type    string   `json:"type" example:"location"`
	Options []string `json:"options"`
}

// ChartItem is one self-describing chart configuration.
//
// AllSeries, when present, holds the alternate series per filter option:
// "All" is the combined series and every other key is the single-point
// series for that dimension value, so the client can switch views without
// another request.
type ChartItem struct {
	ID        string            `json:"id" example:"annual-sales-over-time"`
	Title     string            `json:"title" example:"Annual Sales over time"`
	Type      string            `json:"type" enums:"line,bar,metric"`
	Unit      string            `json:"unit" example:"USD"`
	Series    Series            `json:"series"`
	Filters   *FilterBlock      `json:"filters,omitempty"`
	Options   map[string]string `json:"options,omitempty"`
	AllSeries map[string]Series `json:"allSeries,omitempty"`
}

// MetricSummary groups the charts generated for one (metric, unit) pair.
type MetricSummary struct {
	MetricName string      `json:"metric_name"`
	Unit       string      `json:"unit"`
	Charts     []ChartItem `json:"charts"`
}

// Metadata echoes the filters the request was answered under.
type Metadata struct {
	Year     string `json:"year,omitempty"`
	Country  string `json:"country,omitempty"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	Metric   string `json:"metric,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// ResponseEnvelope is the structured dashboard response: applied filters
// plus the ordered metric summaries. Metrics is empty (never nil) when the
// filtered row set is empty.
type ResponseEnvelope struct {
	Metadata Metadata        `json:"metadata"`
	Metrics  []MetricSummary `json:"metrics"`
}

// LegacyChart is the flat chart shape served by the tab KPI endpoints,
// kept for callers of the original dashboard API: XAxis lists the value
// keys and YAxis holds one map per x-category.
type LegacyChart struct {
	ID    string           `json:"id" example:"market_share_by_oem"`
	XKey  string           `json:"xKey" example:"oem"`
	XAxis []string         `json:"x-axis"`
	YAxis []map[string]any `json:"y-axis"`
}
