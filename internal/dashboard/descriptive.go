// Package dashboard holds the fixed KPI routines behind each dashboard tab:
// accumulation loops over vehicle or FMCG sale rows, shaped into the flat
// chart format. Unlike the generic engine in internal/analytics, every chart
// here has a fixed id and fixed columns.
package dashboard

import (
	"sort"

	"github.com/insightpulse/insightpulse/internal/domain/dto"
	"github.com/insightpulse/insightpulse/internal/domain/models"
)

const monthLayout = "2006-01"

type vehicleChartFunc func(rows []models.VehicleSale) dto.LegacyChart

// descriptiveCharts is the full battery served by the descriptive tab, in
// its fixed order.
var descriptiveCharts = []vehicleChartFunc{
	chartMonthlySalesByOEM,
	chartUnitsVsPriceByRegion,
	chartNPSByCity,
	chartFuelVsTransmission,
	chartStatewiseUnitsMarketShare,
	chartDeliveryDelayByOEM,
	chartDiscountVsUnitsByCustomer,
	chartRatingVsComplaintsByDealer,
	chartCompetitorVsFinalPrice,
	chartEVMetrics,
	chartMarketShareByOEM,
	chartMarketShareByCompetitorOEM,
	chartTopSellingModels,
	chartAvgDiscountByBrand,
	chartSalesTrendBySegment,
	chartFinanceOptedRatio,
}

// DescriptiveCharts runs the full 16-chart battery over the given rows.
func DescriptiveCharts(rows []models.VehicleSale) []dto.LegacyChart {
	out := make([]dto.LegacyChart, 0, len(descriptiveCharts))
	for _, fn := range descriptiveCharts {
		out = append(out, fn(rows))
	}
	return out
}

// chartMonthlySalesByOEM counts sale records per month per OEM.
func chartMonthlySalesByOEM(rows []models.VehicleSale) dto.LegacyChart {
	monthly := map[string]map[string]float64{}
	oemSet := map[string]bool{}
	for _, r := range rows {
		if r.SaleDate == nil || r.OEMName == "" {
			continue
		}
		ym := r.SaleDate.Format(monthLayout)
		if monthly[ym] == nil {
			monthly[ym] = map[string]float64{}
		}
		monthly[ym][r.OEMName]++
		oemSet[r.OEMName] = true
	}

	months := mapKeys(monthly)
	oems := mapKeys(oemSet)
	yAxis := make([]map[string]any, 0, len(months))
	for _, m := range months {
		row := map[string]any{"month": m}
		for _, oem := range oems {
			row[oem] = monthly[m][oem]
		}
		yAxis = append(yAxis, row)
	}
	return dto.LegacyChart{ID: "monthly_sales_by_oem", XKey: "month", XAxis: oems, YAxis: yAxis}
}

// chartUnitsVsPriceByRegion averages units sold and final price per region.
func chartUnitsVsPriceByRegion(rows []models.VehicleSale) dto.LegacyChart {
	type acc struct{ units, price, count float64 }
	regions := map[string]*acc{}
	for _, r := range rows {
		if r.Region == "" || r.UnitsSold == nil || r.FinalPrice == nil {
			continue
		}
		a := regions[r.Region]
		if a == nil {
			a = &acc{}
			regions[r.Region] = a
		}
		a.units += *r.UnitsSold
		a.price += *r.FinalPrice
		a.count++
	}

	yAxis := []map[string]any{}
	for _, region := range mapKeys(regions) {
		a := regions[region]
		yAxis = append(yAxis, map[string]any{
			"region":          region,
			"avg_units_sold":  round2(a.units / a.count),
			"avg_final_price": round2(a.price / a.count),
		})
	}
	return dto.LegacyChart{ID: "units_vs_price_by_region", XKey: "region", XAxis: []string{"avg_units_sold", "avg_final_price"}, YAxis: yAxis}
}

// chartNPSByCity averages NPS per city; cities with fewer than three scores
// are too thin to chart and are dropped.
func chartNPSByCity(rows []models.VehicleSale) dto.LegacyChart {
	scores := map[string][]float64{}
	for _, r := range rows {
		if r.City == "" || r.NPSScore == nil {
			continue
		}
		scores[r.City] = append(scores[r.City], *r.NPSScore)
	}

	yAxis := []map[string]any{}
	for _, city := range mapKeys(scores) {
		vals := scores[city]
		if len(vals) < 3 {
			continue
		}
		yAxis = append(yAxis, map[string]any{"city": city, "avg_nps": round2(mean(vals))})
	}
	return dto.LegacyChart{ID: "nps_by_city", XKey: "city", XAxis: []string{"avg_nps"}, YAxis: yAxis}
}

func chartFuelVsTransmission(rows []models.VehicleSale) dto.LegacyChart {
	fuelTrans := map[string]map[string]float64{}
	transSet := map[string]bool{}
	for _, r := range rows {
		if r.FuelType == "" || r.TransmissionType == "" || r.UnitsSold == nil {
			continue
		}
		if fuelTrans[r.FuelType] == nil {
			fuelTrans[r.FuelType] = map[string]float64{}
		}
		fuelTrans[r.FuelType][r.TransmissionType] += *r.UnitsSold
		transSet[r.TransmissionType] = true
	}

	transmissions := mapKeys(transSet)
	yAxis := []map[string]any{}
	for _, ft := range mapKeys(fuelTrans) {
		row := map[string]any{"fuel_type": ft}
		for _, tt := range transmissions {
			row[tt] = fuelTrans[ft][tt]
		}
		yAxis = append(yAxis, row)
	}
	return dto.LegacyChart{ID: "fuel_vs_transmission", XKey: "fuel_type", XAxis: transmissions, YAxis: yAxis}
}

func chartStatewiseUnitsMarketShare(rows []models.VehicleSale) dto.LegacyChart {
	type acc struct{ units, shareTotal, count float64 }
	states := map[string]*acc{}
	for _, r := range rows {
		if r.State == "" || r.UnitsSold == nil || r.MarketShareInRegion == nil {
			continue
		}
		a := states[r.State]
		if a == nil {
			a = &acc{}
			states[r.State] = a
		}
		a.units += *r.UnitsSold
		a.shareTotal += *r.MarketShareInRegion
		a.count++
	}

	yAxis := []map[string]any{}
	for _, st := range mapKeys(states) {
		a := states[st]
		yAxis = append(yAxis, map[string]any{
			"state":            st,
			"units_sold":       a.units,
			"avg_market_share": round2(a.shareTotal / a.count),
		})
	}
	return dto.LegacyChart{ID: "statewise_units_market_share", XKey: "state", XAxis: []string{"units_sold", "avg_market_share"}, YAxis: yAxis}
}

func chartDeliveryDelayByOEM(rows []models.VehicleSale) dto.LegacyChart {
	delays := map[string][]float64{}
	for _, r := range rows {
		if r.OEMName == "" || r.BookingDate == nil || r.DeliveryDate == nil {
			continue
		}
		days := r.DeliveryDate.Sub(*r.BookingDate).Hours() / 24
		delays[r.OEMName] = append(delays[r.OEMName], days)
	}

	yAxis := []map[string]any{}
	for _, oem := range mapKeys(delays) {
		yAxis = append(yAxis, map[string]any{
			"oem":                     oem,
			"avg_delivery_delay_days": round2(mean(delays[oem])),
		})
	}
	return dto.LegacyChart{ID: "delivery_delay_by_oem", XKey: "oem", XAxis: []string{"avg_delivery_delay_days"}, YAxis: yAxis}
}

func chartDiscountVsUnitsByCustomer(rows []models.VehicleSale) dto.LegacyChart {
	type acc struct{ discount, units, count float64 }
	byType := map[string]*acc{}
	for _, r := range rows {
		if r.CustomerType == "" || r.DiscountOffered == nil || r.UnitsSold == nil {
			continue
		}
		a := byType[r.CustomerType]
		if a == nil {
			a = &acc{}
			byType[r.CustomerType] = a
		}
		a.discount += *r.DiscountOffered
		a.units += *r.UnitsSold
		a.count++
	}

	yAxis := []map[string]any{}
	for _, ct := range mapKeys(byType) {
		a := byType[ct]
		yAxis = append(yAxis, map[string]any{
			"customer_type":  ct,
			"avg_discount":   round2(a.discount / a.count),
			"avg_units_sold": round2(a.units / a.count),
		})
	}
	return dto.LegacyChart{ID: "discount_vs_units_by_customer", XKey: "customer_type", XAxis: []string{"avg_discount", "avg_units_sold"}, YAxis: yAxis}
}

func chartRatingVsComplaintsByDealer(rows []models.VehicleSale) dto.LegacyChart {
	type acc struct {
		ratings    []float64
		complaints float64
	}
	dealers := map[string]*acc{}
	for _, r := range rows {
		if r.DealerName == "" || r.DeliveryRating == nil {
			continue
		}
		a := dealers[r.DealerName]
		if a == nil {
			a = &acc{}
			dealers[r.DealerName] = a
		}
		a.ratings = append(a.ratings, *r.DeliveryRating)
		if isYes(r.ComplaintRegistered) {
			a.complaints++
		}
	}

	names := make([]string, 0, len(dealers))
	for d := range dealers {
		names = append(names, d)
	}
	sort.Strings(names)

	yAxis := []map[string]any{}
	for _, d := range names {
		a := dealers[d]
		yAxis = append(yAxis, map[string]any{
			"dealer":          d,
			"avg_rating":      round2(mean(a.ratings)),
			"complaint_count": a.complaints,
		})
	}
	return dto.LegacyChart{ID: "rating_vs_complaints_by_dealer", XKey: "dealer", XAxis: []string{"avg_rating", "complaint_count"}, YAxis: yAxis}
}

// chartCompetitorVsFinalPrice emits one point per record; no aggregation.
func chartCompetitorVsFinalPrice(rows []models.VehicleSale) dto.LegacyChart {
	yAxis := []map[string]any{}
	for _, r := range rows {
		if r.CompetitorPrice == nil || r.FinalPrice == nil {
			continue
		}
		yAxis = append(yAxis, map[string]any{
			"oem":              r.OEMName,
			"competitor_price": *r.CompetitorPrice,
			"final_price":      *r.FinalPrice,
		})
	}
	return dto.LegacyChart{ID: "competitor_vs_final_price", XKey: "oem", XAxis: []string{"competitor_price", "final_price"}, YAxis: yAxis}
}

func chartEVMetrics(rows []models.VehicleSale) dto.LegacyChart {
	yAxis := []map[string]any{}
	for _, r := range rows {
		if !isElectric(r.FuelType) {
			continue
		}
		if r.RangeKM == nil || r.BatteryCapacityKWH == nil || r.ChargingTimeHours == nil {
			continue
		}
		yAxis = append(yAxis, map[string]any{
			"oem":              r.OEMName,
			"range_km":         *r.RangeKM,
			"battery_kwh":      *r.BatteryCapacityKWH,
			"charging_time_hr": *r.ChargingTimeHours,
		})
	}
	return dto.LegacyChart{ID: "ev_range_vs_battery_vs_charging", XKey: "oem", XAxis: []string{"range_km", "battery_kwh", "charging_time_hr"}, YAxis: yAxis}
}

func chartMarketShareByOEM(rows []models.VehicleSale) dto.LegacyChart {
	return marketShareChart(rows, "market_share_by_oem", "oem",
		func(r models.VehicleSale) string { return r.OEMName })
}

func chartMarketShareByCompetitorOEM(rows []models.VehicleSale) dto.LegacyChart {
	return marketShareChart(rows, "market_share_by_competitor_oem", "competitor_oem",
		func(r models.VehicleSale) string { return r.CompetitorOEM })
}

// marketShareChart sums units per maker and derives each maker's share of
// the charted total, largest first. A zero total yields zero shares, never
// a division fault.
func marketShareChart(rows []models.VehicleSale, id, xKey string, maker func(models.VehicleSale) string) dto.LegacyChart {
	units := map[string]float64{}
	total := 0.0
	for _, r := range rows {
		name := maker(r)
		if name == "" || r.UnitsSold == nil {
			continue
		}
		units[name] += *r.UnitsSold
		total += *r.UnitsSold
	}

	yAxis := []map[string]any{}
	for _, name := range keysByValueDesc(units) {
		share := 0.0
		if total > 0 {
			share = units[name] / total * 100
		}
		yAxis = append(yAxis, map[string]any{
			xKey:                   name,
			"units_sold":           units[name],
			"market_share_percent": round2(share),
		})
	}
	return dto.LegacyChart{ID: id, XKey: xKey, XAxis: []string{"units_sold", "market_share_percent"}, YAxis: yAxis}
}

func chartTopSellingModels(rows []models.VehicleSale) dto.LegacyChart {
	units := map[string]float64{}
	for _, r := range rows {
		if r.VehicleModel == "" || r.UnitsSold == nil {
			continue
		}
		units[r.VehicleModel] += *r.UnitsSold
	}

	models10 := keysByValueDesc(units)
	if len(models10) > 10 {
		models10 = models10[:10]
	}
	yAxis := []map[string]any{}
	for _, m := range models10 {
		yAxis = append(yAxis, map[string]any{"model": m, "units_sold": units[m]})
	}
	return dto.LegacyChart{ID: "top_selling_models", XKey: "model", XAxis: []string{"units_sold"}, YAxis: yAxis}
}

func chartAvgDiscountByBrand(rows []models.VehicleSale) dto.LegacyChart {
	discounts := map[string][]float64{}
	for _, r := range rows {
		if r.OEMName == "" || r.DiscountOffered == nil {
			continue
		}
		discounts[r.OEMName] = append(discounts[r.OEMName], *r.DiscountOffered)
	}

	yAxis := []map[string]any{}
	for _, oem := range mapKeys(discounts) {
		yAxis = append(yAxis, map[string]any{"oem": oem, "avg_discount": round2(mean(discounts[oem]))})
	}
	return dto.LegacyChart{ID: "avg_discount_by_brand", XKey: "oem", XAxis: []string{"avg_discount"}, YAxis: yAxis}
}

func chartSalesTrendBySegment(rows []models.VehicleSale) dto.LegacyChart {
	trend := map[string]map[string]float64{}
	monthSet := map[string]bool{}
	for _, r := range rows {
		if r.VehicleSegment == "" || r.SaleDate == nil || r.UnitsSold == nil {
			continue
		}
		ym := r.SaleDate.Format(monthLayout)
		if trend[r.VehicleSegment] == nil {
			trend[r.VehicleSegment] = map[string]float64{}
		}
		trend[r.VehicleSegment][ym] += *r.UnitsSold
		monthSet[ym] = true
	}

	months := mapKeys(monthSet)
	yAxis := []map[string]any{}
	for _, segment := range mapKeys(trend) {
		row := map[string]any{"vehicle_segment": segment}
		for _, m := range months {
			row[m] = trend[segment][m]
		}
		yAxis = append(yAxis, row)
	}
	return dto.LegacyChart{ID: "sales_trend_by_vehicle_segment", XKey: "vehicle_segment", XAxis: months, YAxis: yAxis}
}

func chartFinanceOptedRatio(rows []models.VehicleSale) dto.LegacyChart {
	type acc struct{ yes, total float64 }
	byType := map[string]*acc{}
	for _, r := range rows {
		if r.CustomerType == "" {
			continue
		}
		a := byType[r.CustomerType]
		if a == nil {
			a = &acc{}
			byType[r.CustomerType] = a
		}
		a.total++
		if isYes(r.FinanceOpted) {
			a.yes++
		}
	}

	yAxis := []map[string]any{}
	for _, ct := range mapKeys(byType) {
		a := byType[ct]
		ratio := 0.0
		if a.total > 0 {
			ratio = a.yes / a.total * 100
		}
		yAxis = append(yAxis, map[string]any{"customer_type": ct, "finance_opted_percent": round2(ratio)})
	}
	return dto.LegacyChart{ID: "finance_opted_ratio_by_customer_type", XKey: "customer_type", XAxis: []string{"finance_opted_percent"}, YAxis: yAxis}
}
