package models

import "time"

// FlatRecord is the unit of aggregation: one metric observation with its
// optional dimensions already resolved to names by the query layer.
//
// Fields:
//   - Metric: metric name; empty falls into the "Unknown Metric" bucket.
//   - Unit: measurement unit; nil falls into the "Unknown Unit" bucket.
//   - Year: period label (kept as text, e.g. "2023" or "2023-Q4").
//   - Country, Brand: optional dimension names.
//   - Value: raw textual value; must go through analytics.Normalize before
//     any arithmetic.
type FlatRecord struct {
	Metric         string
	MetricCategory string
	Unit           *string
	Year           *string
	Country        *string
	Brand          *string
	Value          *string
}

// DataPoint is one row of the data_points table as written by ingestion.
// Reference dimensions are stored as foreign-key ids; FlatRecord is the
// joined read-side view.
type DataPoint struct {
	ID             int64
	CountryID      *int64
	CategoryID     *int64
	BrandID        *int64
	SourceURL      string
	Insight        string
	Summary        *string
	Year           string
	Metric         string
	MetricCategory string
	Unit           *string
	Value          string
	CreatedAt      time.Time
}

// AvailableFilters is the distinct-value catalog the front end uses to
// populate its filter dropdowns.
type AvailableFilters struct {
	Metrics          []string `json:"metrics"`
	MetricCategories []string `json:"metric_categories"`
	Brands           []string `json:"brands"`
	Years            []string `json:"years"`
	Categories       []string `json:"categories"`
	Countries        []string `json:"countries"`
}
