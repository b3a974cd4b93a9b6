package analytics

import (
	"reflect"
	"testing"

	"github.com/insightpulse/insightpulse/internal/domain/dto"
)

func TestFlatten(t *testing.T) {
	env := dto.ResponseEnvelope{
		Metrics: []dto.MetricSummary{
			{
				MetricName: "Annual Sales",
				Unit:       "USD",
				Charts: []dto.ChartItem{
					{
						ID:     "annual-sales-over-time",
						Type:   dto.ChartLine,
						Series: dto.Series{Data: []float64{100, 150}, Categories: []string{"2022", "2023"}},
					},
					{
						ID:     "annual-sales",
						Type:   dto.ChartMetric,
						Series: dto.Series{Data: []float64{250}, Categories: []string{"Value"}},
					},
				},
			},
		},
	}

	out := Flatten(env)
	if len(out) != 2 {
		t.Fatalf("expected 2 flat charts, got %d", len(out))
	}

	first := out[0]
	if first.ID != "annual-sales-over-time" || first.XKey != "category" {
		t.Fatalf("unexpected chart head: %+v", first)
	}
	if !reflect.DeepEqual(first.XAxis, []string{"value"}) {
		t.Fatalf("unexpected x-axis: %v", first.XAxis)
	}
	want := []map[string]any{
		{"category": "2022", "value": 100.0},
		{"category": "2023", "value": 150.0},
	}
	if !reflect.DeepEqual(first.YAxis, want) {
		t.Fatalf("unexpected y-axis rows: %v", first.YAxis)
	}

	if out[1].ID != "annual-sales" || len(out[1].YAxis) != 1 {
		t.Fatalf("unexpected second chart: %+v", out[1])
	}
}

func TestFlatten_Empty(t *testing.T) {
	out := Flatten(dto.ResponseEnvelope{Metrics: []dto.MetricSummary{}})
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", out)
	}
}
