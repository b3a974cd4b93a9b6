package dashboard

import (
	"github.com/insightpulse/insightpulse/internal/domain/dto"
	"github.com/insightpulse/insightpulse/internal/domain/models"
)

// FMCG tab names.
const (
	TabGlobalRegionalSales      = "global_regional_sales"
	TabSupplyChain              = "supply_chain"
	TabMarketingBrand           = "marketing_brand"
	TabFinancialProfitability   = "financial_profitability"
	TabConsumerInsights         = "consumer_insights"
	TabSustainabilityCompliance = "sustainability_compliance"
)

func fmcgGlobalRegionalSales(rows []models.FMCGSale) []dto.LegacyChart {
	unitsByRegion := map[string]float64{}
	revenueByRegion := map[string]float64{}
	shareByRegion := map[string]float64{}
	salesByChannel := map[string]float64{}
	productUnits := map[string]float64{}
	type asp struct{ sum, count float64 }
	aspByRegion := map[string]*asp{}

	for _, r := range rows {
		region := orUnknown(r.Region)
		channel := orUnknown(r.Channel)
		product := orUnknown(r.ProductName)

		unitsByRegion[region] += r.UnitsSold
		revenueByRegion[region] += r.Revenue
		shareByRegion[region] += r.MarketShare
		salesByChannel[channel] += r.Revenue
		productUnits[product] += r.UnitsSold

		if r.SellingPrice > 0 {
			a := aspByRegion[region]
			if a == nil {
				a = &asp{}
				aspByRegion[region] = a
			}
			a.sum += r.SellingPrice
			a.count++
		}
	}

	aspRows := []map[string]any{}
	for _, region := range mapKeys(aspByRegion) {
		a := aspByRegion[region]
		avg := 0.0
		if a.count > 0 {
			avg = a.sum / a.count
		}
		aspRows = append(aspRows, map[string]any{"region": region, "average_selling_price": round2(avg)})
	}

	productRows := []map[string]any{}
	for _, p := range keysByValueDesc(productUnits) {
		productRows = append(productRows, map[string]any{"product_name": p, "units_sold": productUnits[p]})
	}

	return []dto.LegacyChart{
		singleValueChart("units_sold_by_region", "region", "units_sold", unitsByRegion, false),
		singleValueChart("revenue_by_region", "region", "revenue", revenueByRegion, true),
		{ID: "average_selling_price_by_region", XKey: "region", XAxis: []string{"average_selling_price"}, YAxis: aspRows},
		singleValueChart("sales_by_channel", "channel", "revenue", salesByChannel, true),
		singleValueChart("market_share_by_region", "region", "market_share", shareByRegion, true),
		{ID: "product_performance", XKey: "product_name", XAxis: []string{"units_sold"}, YAxis: productRows},
	}
}

func fmcgSupplyChain(rows []models.FMCGSale) []dto.LegacyChart {
	deliveryDays := map[string][]float64{}
	stockLevels := map[string]float64{}
	type oos struct{ total, out float64 }
	oosByRegion := map[string]*oos{}

	for _, r := range rows {
		region := orUnknown(r.Region)
		deliveryDays[region] = append(deliveryDays[region], r.DeliveryTimeDays)
		stockLevels[region] += r.StockOnHand

		o := oosByRegion[region]
		if o == nil {
			o = &oos{}
			oosByRegion[region] = o
		}
		o.total++
		if isYes(r.OutOfStock) {
			o.out++
		}
	}

	deliveryRows := []map[string]any{}
	for _, region := range mapKeys(deliveryDays) {
		deliveryRows = append(deliveryRows, map[string]any{
			"region":            region,
			"avg_delivery_days": round2(mean(deliveryDays[region])),
		})
	}

	oosRows := []map[string]any{}
	for _, region := range mapKeys(oosByRegion) {
		o := oosByRegion[region]
		pct := 0.0
		if o.total > 0 {
			pct = o.out / o.total * 100
		}
		oosRows = append(oosRows, map[string]any{"region": region, "stockout_percentage": round2(pct)})
	}

	return []dto.LegacyChart{
		{ID: "avg_delivery_time_by_region", XKey: "region", XAxis: []string{"avg_delivery_days"}, YAxis: deliveryRows},
		singleValueChart("stock_levels_by_region", "region", "total_stock", stockLevels, false),
		{ID: "stockout_rate_by_region", XKey: "region", XAxis: []string{"stockout_percentage"}, YAxis: oosRows},
	}
}

func fmcgMarketingBrand(rows []models.FMCGSale) []dto.LegacyChart {
	penetration := map[string][]float64{}
	promoRevenue := map[string]float64{}

	for _, r := range rows {
		region := orUnknown(r.Region)
		promo := r.PromotionType
		if promo == "" {
			promo = "None"
		}
		penetration[region] = append(penetration[region], r.BrandPenetration)
		promoRevenue[promo] += r.Revenue
	}

	penRows := []map[string]any{}
	for _, region := range mapKeys(penetration) {
		penRows = append(penRows, map[string]any{
			"region":          region,
			"avg_penetration": round2(mean(penetration[region])),
		})
	}

	return []dto.LegacyChart{
		{ID: "brand_penetration_by_region", XKey: "region", XAxis: []string{"avg_penetration"}, YAxis: penRows},
		singleValueChart("promotion_performance", "promotion_type", "revenue", promoRevenue, true),
	}
}

func fmcgFinancialProfitability(rows []models.FMCGSale) []dto.LegacyChart {
	revenue := map[string]float64{}
	profit := map[string]float64{}
	cost := map[string]float64{}

	for _, r := range rows {
		region := orUnknown(r.Region)
		revenue[region] += r.Revenue
		profit[region] += r.Profit
		cost[region] += r.CostToCompany
	}

	marginRows := []map[string]any{}
	for _, region := range mapKeys(revenue) {
		margin := 0.0
		if revenue[region] != 0 {
			margin = profit[region] / revenue[region] * 100
		}
		marginRows = append(marginRows, map[string]any{"region": region, "profit_margin": round2(margin)})
	}

	return []dto.LegacyChart{
		singleValueChart("revenue_by_region", "region", "total_revenue", revenue, true),
		{ID: "profit_margin_by_region", XKey: "region", XAxis: []string{"profit_margin"}, YAxis: marginRows},
		singleValueChart("cost_breakdown_by_region", "region", "total_cost", cost, true),
	}
}

func fmcgConsumerInsights(rows []models.FMCGSale) []dto.LegacyChart {
	feedback := map[string][]float64{}
	customerTypes := map[string]float64{}
	type returns struct{ returned, sold float64 }
	returnsByProduct := map[string]*returns{}

	for _, r := range rows {
		region := orUnknown(r.Region)
		product := orUnknown(r.ProductName)

		feedback[region] = append(feedback[region], r.FeedbackScore)
		customerTypes[orUnknown(r.CustomerType)]++

		ret := returnsByProduct[product]
		if ret == nil {
			ret = &returns{}
			returnsByProduct[product] = ret
		}
		ret.returned += r.ReturnedUnits
		ret.sold += r.UnitsSold
	}

	feedbackRows := []map[string]any{}
	for _, region := range mapKeys(feedback) {
		feedbackRows = append(feedbackRows, map[string]any{
			"region":             region,
			"avg_feedback_score": round2(mean(feedback[region])),
		})
	}

	returnRows := []map[string]any{}
	for _, product := range mapKeys(returnsByProduct) {
		ret := returnsByProduct[product]
		rate := 0.0
		if ret.sold > 0 {
			rate = ret.returned / ret.sold * 100
		}
		returnRows = append(returnRows, map[string]any{"product_name": product, "return_rate": round2(rate)})
	}

	return []dto.LegacyChart{
		{ID: "avg_feedback_by_region", XKey: "region", XAxis: []string{"avg_feedback_score"}, YAxis: feedbackRows},
		singleValueChart("customer_type_distribution", "customer_type", "count", customerTypes, false),
		{ID: "return_rate_by_product", XKey: "product_name", XAxis: []string{"return_rate"}, YAxis: returnRows},
	}
}

// fmcgSustainabilityCompliance serves fixed placeholder scores; the source
// schema carries no sustainability columns yet.
// TODO: replace with real aggregation once sustainability columns land in
// fmcg_sales.
func fmcgSustainabilityCompliance([]models.FMCGSale) []dto.LegacyChart {
	return []dto.LegacyChart{
		{
			ID:    "sustainability_score_by_region",
			XKey:  "region",
			XAxis: []string{"sustainability_score"},
			YAxis: []map[string]any{
				{"region": "East", "sustainability_score": 82.0},
				{"region": "North", "sustainability_score": 85.0},
				{"region": "South", "sustainability_score": 78.0},
				{"region": "West", "sustainability_score": 79.0},
			},
		},
	}
}

// singleValueChart shapes a one-column aggregation map into a legacy chart,
// keys sorted, optionally rounding the values.
func singleValueChart(id, xKey, valueKey string, m map[string]float64, round bool) dto.LegacyChart {
	yAxis := []map[string]any{}
	for _, k := range mapKeys(m) {
		v := m[k]
		if round {
			v = round2(v)
		}
		yAxis = append(yAxis, map[string]any{xKey: k, valueKey: v})
	}
	return dto.LegacyChart{ID: id, XKey: xKey, XAxis: []string{valueKey}, YAxis: yAxis}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
