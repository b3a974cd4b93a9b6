package analytics

import (
	"sort"

	"github.com/insightpulse/insightpulse/internal/domain/models"
)

// YearTotal is one point of the per-year sales trend.
type YearTotal struct {
	Year  string  `json:"year"`
	Total float64 `json:"total_sales"`
}

// QualitativePoint surfaces a record whose value did not normalize to a
// number. These are excluded from arithmetic but not from the dataset.
type QualitativePoint struct {
	Year    string `json:"year"`
	Metric  string `json:"metric"`
	Value   string `json:"value"`
	Country string `json:"country_name,omitempty"`
	Brand   string `json:"brand_name,omitempty"`
}

// SalesSummary is the single-number view of a filtered record set: totals,
// averages, the year trend, and the qualitative leftovers.
type SalesSummary struct {
	TotalSales         float64            `json:"total_sales"`
	AverageSales       float64            `json:"average_sales"`
	RecordCount        int                `json:"record_count"`
	NumericRecordCount int                `json:"numeric_record_count"`
	YearsInData        []string           `json:"years_in_data"`
	TrendByYear        []YearTotal        `json:"sales_trend_by_year"`
	Qualitative        []QualitativePoint `json:"qualitative_data_points"`
}

// Summarize computes the sales-performance summary over an already-filtered
// record set. Averages are guarded: zero numeric records means zero average,
// never a division fault.
func Summarize(records []models.FlatRecord) SalesSummary {
	s := SalesSummary{
		YearsInData: []string{},
		TrendByYear: []YearTotal{},
		Qualitative: []QualitativePoint{},
	}

	byYear := make(map[string]float64)
	yearSeen := make(map[string]bool)

	for _, rec := range records {
		s.RecordCount++
		year := ""
		if rec.Year != nil {
			year = *rec.Year
		}
		if year != "" && !yearSeen[year] {
			yearSeen[year] = true
			s.YearsInData = append(s.YearsInData, year)
		}

		v, numeric := Normalize(rec.Value)
		if !numeric {
			q := QualitativePoint{Year: year, Metric: rec.Metric}
			if rec.Value != nil {
				q.Value = *rec.Value
			}
			if rec.Country != nil {
				q.Country = *rec.Country
			}
			if rec.Brand != nil {
				q.Brand = *rec.Brand
			}
			s.Qualitative = append(s.Qualitative, q)
			continue
		}

		s.NumericRecordCount++
		s.TotalSales += v
		if year != "" {
			byYear[year] += v
		}
	}

	if s.NumericRecordCount > 0 {
		s.AverageSales = s.TotalSales / float64(s.NumericRecordCount)
	}

	sort.Strings(s.YearsInData)
	for _, y := range sortedKeys(byYear) {
		s.TrendByYear = append(s.TrendByYear, YearTotal{Year: y, Total: byYear[y]})
	}

	return s
}
