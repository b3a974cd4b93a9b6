package ingestion

import (
	"context"
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Country", "country"},
		{"Source URL", "source_url"},
		{"  Metric  ", "metric"},
		{"Final Price After Discount ($)", "final_price_after_discount_"},
		{"Delivery Rating (1-5)", "delivery_rating_15"},
		{"Complaint Registered (Y/N)", "complaint_registered_yn"},
		{"Finance Opted (Yes/No)", "finance_opted_yesno"},
	}
	for _, tc := range cases {
		if got := normalizeHeader(tc.in); got != tc.want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDataPointRow(t *testing.T) {
	valid := map[string]string{
		"country":    "India",
		"year":       "2023",
		"brand":      "BrandA",
		"metric":     "Operating Margin",
		"value":      "12.5",
		"source_url": "https://example.com",
		"category":   "Cars",
		"unit":       "%",
		"summary":    "margins improved",
	}

	dp, refs, ok := parseDataPointRow(valid)
	if !ok {
		t.Fatalf("valid row rejected")
	}
	if dp.Metric != "Operating Margin" || dp.Year != "2023" || dp.Value != "12.5" {
		t.Fatalf("unexpected datapoint: %+v", dp)
	}
	if dp.Unit == nil || *dp.Unit != "%" {
		t.Fatalf("unit not captured: %+v", dp.Unit)
	}
	if dp.MetricCategory != "financial_health" {
		t.Fatalf("classifier: got %q", dp.MetricCategory)
	}
	if refs.country != "India" || refs.category != "Cars" || refs.brand != "BrandA" {
		t.Fatalf("refs: %+v", refs)
	}

	for _, missing := range requiredDataPointHeaders {
		row := map[string]string{}
		for k, v := range valid {
			row[k] = v
		}
		row[missing] = ""
		if _, _, ok := parseDataPointRow(row); ok {
			t.Errorf("row with empty %q accepted", missing)
		}
	}

	// Optional fields may be absent entirely.
	delete(valid, "unit")
	delete(valid, "summary")
	dp, _, ok = parseDataPointRow(valid)
	if !ok || dp.Unit != nil || dp.Summary != nil {
		t.Fatalf("optional fields: ok=%v dp=%+v", ok, dp)
	}
}

func TestClassifyMetric(t *testing.T) {
	cases := []struct {
		metric, insight, summary string
		want                     string
	}{
		{"EBITDA Margin", "", "", "financial_health"},
		{"Net Promoter Score", "", "", "consumer_insights"},
		{"Market Share", "", "", "competitive_intelligence"},
		{"Online Sales Share", "", "", "ecommerce_digital"},
		{"Fill Rate", "", "", "supply_chain"},
		{"Sales Growth", "growth across the north region", "", "regional_performance"},
		{"Sales Growth", "online channels dominate", "", "ecommerce_digital"},
		{"Sales Growth", "", "", "financial_health"},
		{"Bottle Cap Color", "", "", "general"},
		{"", "distribution and logistics costs rising", "", "supply_chain"},
		{"", "", "", "general"},
	}
	for _, tc := range cases {
		if got := ClassifyMetric(tc.metric, tc.insight, tc.summary); got != tc.want {
			t.Errorf("ClassifyMetric(%q, %q) = %q, want %q", tc.metric, tc.insight, got, tc.want)
		}
	}
}

func TestReadTable_CSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.csv", "Country,Year,Metric,Value\nIndia,2023,Sales,1\nUSA,2022\n")

	tab, err := readTable(path)
	if err != nil {
		t.Fatalf("readTable: %v", err)
	}
	if len(tab.rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(tab.rows))
	}
	// Short rows are padded with empty strings.
	if tab.rows[1]["metric"] != "" || tab.rows[1]["country"] != "USA" {
		t.Fatalf("short row handling: %+v", tab.rows[1])
	}
	if !tab.hasHeader("value") || tab.hasHeader("nope") {
		t.Fatalf("hasHeader misbehaves: %+v", tab.headers)
	}
}

func TestReadTable_Unsupported(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.txt", "whatever")
	if _, err := readTable(path); err == nil {
		t.Fatalf("expected unsupported-format error")
	}
}

func TestDetectKind(t *testing.T) {
	cases := []struct {
		headers []string
		want    fileKind
	}{
		{[]string{"country", "metric", "value"}, kindDataPoints},
		{[]string{"oem_name", "units_sold"}, kindVehicleSales},
		{[]string{"region", "product_name"}, kindFMCGSales},
		{[]string{"foo", "bar"}, kindUnknown},
	}
	for _, tc := range cases {
		if got := detectKind(&table{headers: tc.headers}); got != tc.want {
			t.Errorf("detectKind(%v) = %v, want %v", tc.headers, got, tc.want)
		}
	}
}

func TestRecordToVehicleSale(t *testing.T) {
	row := map[string]string{
		"oem_name":                    "OEM1",
		"vehicle_model":               "ModelX",
		"fuel_type":                   "Electric",
		"sale_date":                   "2023-01-15",
		"units_sold":                  "3",
		"final_price_after_discount_": "25,000",
		"delivery_rating_15":          "4.5",
		"complaint_registered_yn":     "Yes",
		"finance_opted_yesno":         "No",
	}

	s := recordToVehicleSale(row)
	if s.OEMName != "OEM1" || s.FuelType != "Electric" {
		t.Fatalf("strings: %+v", s)
	}
	if s.SaleDate == nil || s.SaleDate.Year() != 2023 {
		t.Fatalf("sale date: %+v", s.SaleDate)
	}
	if s.FinalPrice == nil || *s.FinalPrice != 25000 {
		t.Fatalf("underscore variant and comma separator: %+v", s.FinalPrice)
	}
	if s.DeliveryRating == nil || *s.DeliveryRating != 4.5 {
		t.Fatalf("delivery rating variant: %+v", s.DeliveryRating)
	}
	if s.ComplaintRegistered != "Yes" || s.FinanceOpted != "No" {
		t.Fatalf("y/n columns: %+v", s)
	}
	if s.BookingDate != nil || s.UnitsSold == nil {
		t.Fatalf("optional fields: %+v", s)
	}
}

func TestRecordToFMCGSale(t *testing.T) {
	row := map[string]string{
		"region":                     "North",
		"country":                    "India", // market alias
		"product_name":               "Cola",
		"units_sold":                 "100",
		"revenue":                    "5000.5",
		"out_of_stock_yn":            "yes",
		"customer_feedback_score_15": "4.2",
	}

	s := recordToFMCGSale(row)
	if s.Market != "India" {
		t.Fatalf("market alias: %+v", s)
	}
	if s.Revenue != 5000.5 || s.UnitsSold != 100 {
		t.Fatalf("numerics: %+v", s)
	}
	if s.OutOfStock != "yes" || s.FeedbackScore != 4.2 {
		t.Fatalf("suffixed variants: %+v", s)
	}
}

func TestPersistDataPoints_BatchingAndRefs(t *testing.T) {
	tab := &table{
		headers: []string{"country", "year", "brand", "metric", "value", "source_url", "category"},
	}
	for i := 0; i < 7; i++ {
		tab.rows = append(tab.rows, map[string]string{
			"country":    "India",
			"year":       "2023",
			"brand":      "BrandA",
			"metric":     "Sales Volume",
			"value":      "1",
			"source_url": "https://example.com",
			"category":   "Cars",
		})
	}

	fr := newFakeRepo()
	inserted, skipped, err := persistDataPoints(context.Background(), tab, fr, 3)
	if err != nil {
		t.Fatalf("persistDataPoints: %v", err)
	}
	if inserted != 7 || skipped != 0 {
		t.Fatalf("counts: inserted=%d skipped=%d", inserted, skipped)
	}
	if len(fr.dataPoints) != 7 {
		t.Fatalf("repo rows: %d", len(fr.dataPoints))
	}
	// One get-or-create per distinct name, cached across rows.
	if len(fr.createdRefs) != 3 {
		t.Fatalf("ref lookups not cached: %+v", fr.createdRefs)
	}
	// All rows share the same resolved ids.
	first := fr.dataPoints[0]
	for _, dp := range fr.dataPoints {
		if *dp.CountryID != *first.CountryID || *dp.BrandID != *first.BrandID {
			t.Fatalf("inconsistent ref ids: %+v vs %+v", dp, first)
		}
	}
}
