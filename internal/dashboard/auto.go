package dashboard

import (
	"github.com/insightpulse/insightpulse/internal/domain/dto"
	"github.com/insightpulse/insightpulse/internal/domain/models"
)

// SalesPerformanceCharts is the automobile "sales" tab: sales volume over
// time, market share, top models, and the regional price/units split.
func SalesPerformanceCharts(rows []models.VehicleSale) []dto.LegacyChart {
	return []dto.LegacyChart{
		chartMonthlySalesByOEM(rows),
		chartMarketShareByOEM(rows),
		chartMarketShareByCompetitorOEM(rows),
		chartTopSellingModels(rows),
		chartUnitsVsPriceByRegion(rows),
		chartSalesTrendBySegment(rows),
	}
}

// SupplyAftersalesCharts is the automobile "supply" tab: delivery delays,
// dealer ratings, and complaint volumes.
func SupplyAftersalesCharts(rows []models.VehicleSale) []dto.LegacyChart {
	return []dto.LegacyChart{
		chartDeliveryDelayByOEM(rows),
		chartRatingVsComplaintsByDealer(rows),
		chartComplaintCountByDealer(rows),
	}
}

// CustomerSustainabilityCharts is the automobile "customer" tab: NPS,
// EV adoption, and finance uptake.
func CustomerSustainabilityCharts(rows []models.VehicleSale) []dto.LegacyChart {
	return []dto.LegacyChart{
		chartNPSByCity(rows),
		chartEVShareByFuel(rows),
		chartEVMetrics(rows),
		chartFinanceOptedRatio(rows),
	}
}

// chartComplaintCountByDealer counts registered complaints per dealer.
func chartComplaintCountByDealer(rows []models.VehicleSale) dto.LegacyChart {
	counts := map[string]float64{}
	for _, r := range rows {
		if r.DealerName == "" {
			continue
		}
		if isYes(r.ComplaintRegistered) {
			counts[r.DealerName]++
		}
	}

	yAxis := []map[string]any{}
	for _, d := range mapKeys(counts) {
		yAxis = append(yAxis, map[string]any{"dealer": d, "complaint_count": counts[d]})
	}
	return dto.LegacyChart{ID: "complaint_count_by_dealer", XKey: "dealer", XAxis: []string{"complaint_count"}, YAxis: yAxis}
}

// chartEVShareByFuel breaks units down by fuel type with each type's share
// of total units, so the EV share reads directly off the chart.
func chartEVShareByFuel(rows []models.VehicleSale) dto.LegacyChart {
	units := map[string]float64{}
	total := 0.0
	for _, r := range rows {
		if r.FuelType == "" || r.UnitsSold == nil {
			continue
		}
		units[r.FuelType] += *r.UnitsSold
		total += *r.UnitsSold
	}

	yAxis := []map[string]any{}
	for _, ft := range mapKeys(units) {
		share := 0.0
		if total > 0 {
			share = units[ft] / total * 100
		}
		yAxis = append(yAxis, map[string]any{
			"fuel_type":     ft,
			"units_sold":    units[ft],
			"share_percent": round2(share),
		})
	}
	return dto.LegacyChart{ID: "ev_share_by_fuel_type", XKey: "fuel_type", XAxis: []string{"units_sold", "share_percent"}, YAxis: yAxis}
}
