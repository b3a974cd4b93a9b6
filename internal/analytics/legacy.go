package analytics

import "github.com/insightpulse/insightpulse/internal/domain/dto"

// Flatten translates an assembled envelope into the flat chart array the
// original dashboard endpoints served. The mapping is mechanical so the
// selector never needs shape-specific duplicates:
//
//	xKey    → "category"
//	x-axis  → ["value"] (the single plotted key)
//	y-axis  → one {"category": c, "value": v} row per series point
//
// Filter blocks and alternate series have no equivalent in the legacy shape
// and are dropped.
func Flatten(env dto.ResponseEnvelope) []dto.LegacyChart {
	out := make([]dto.LegacyChart, 0, len(env.Metrics))
	for _, m := range env.Metrics {
		for _, c := range m.Charts {
			out = append(out, flattenChart(c))
		}
	}
	return out
}

func flattenChart(c dto.ChartItem) dto.LegacyChart {
	rows := make([]map[string]any, 0, len(c.Series.Data))
	for i, v := range c.Series.Data {
		rows = append(rows, map[string]any{
			"category": c.Series.Categories[i],
			"value":    v,
		})
	}
	return dto.LegacyChart{
		ID:    c.ID,
		XKey:  "category",
		XAxis: []string{"value"},
		YAxis: rows,
	}
}
