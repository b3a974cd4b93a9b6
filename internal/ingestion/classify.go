package ingestion

import "strings"

// categoryRule maps keyword hits in the metric name to a metric category.
// Rules are ordered; the first hit wins.
type categoryRule struct {
	category string
	keywords []string
}

var metricRules = []categoryRule{
	{"portfolio_strategy", []string{"sku productivity", "top skus", "sku proliferation", "sku rationalization"}},
	{"financial_health", []string{"margin", "ebitda", "working capital", "revenue per employee", "turnover", "profit", "finance cost", "investment", "funding", "worth", "expenses"}},
	{"consumer_insights", []string{"nps", "net promoter", "brand awareness", "brand recall", "perceived value", "purchase intent", "brand consciousness", "respondents planning to buy"}},
	{"regional_performance", []string{"geography", "region", "rural", "urban", "penetration by region", "number of stores", "number of outlets"}},
	{"supply_chain", []string{"fill rate", "lead time", "otif", "on-time in-full", "wastage", "spoilage", "capacity utilization", "distribution network", "stock turnover"}},
	{"competitive_intelligence", []string{"share of voice", "price index", "competitor", "market share"}},
	{"ecommerce_digital", []string{"online sales", "e-commerce", "digital", "conversion rate", "cart abandonment", "digital shelf", "search share", "devices sold", "etail share", "gross merchandise value", "gmv"}},
	{"trade_channel", []string{"channel conflict", "distributor roi", "partner satisfaction"}},
	{"strategic_levers", []string{"break-even", "scenario", "volume vs value", "elasticity"}},
}

// growthKeywords triggers the context-sensitive fallback: the surrounding
// insight/summary text decides between regional, digital, and financial.
var growthKeywords = []string{"growth", "performance", "sales", "revenue", "output"}

var contextRules = []categoryRule{
	{"portfolio_strategy", []string{"sku"}},
	{"financial_health", []string{"margin", "profit", "turnover"}},
	{"consumer_insights", []string{"nps", "consumer"}},
	{"regional_performance", []string{"region", "store"}},
	{"supply_chain", []string{"supply", "distribution", "logistics"}},
	{"competitive_intelligence", []string{"competitor", "market share"}},
	{"ecommerce_digital", []string{"online", "e-commerce", "digital", "gmv"}},
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// ClassifyMetric derives a metric category from the metric name, falling back
// to the insight/summary text when the name alone is not decisive. Unmatched
// metrics land in "general".
func ClassifyMetric(metric, insight, summary string) string {
	metricLower := strings.ToLower(metric)
	contextLower := strings.TrimSpace(strings.ToLower(insight + " " + summary))

	if metricLower != "" {
		for _, rule := range metricRules {
			if containsAny(metricLower, rule.keywords) {
				return rule.category
			}
		}
		if containsAny(metricLower, growthKeywords) {
			switch {
			case strings.Contains(contextLower, "region"):
				return "regional_performance"
			case strings.Contains(contextLower, "e-commerce"), strings.Contains(contextLower, "online"):
				return "ecommerce_digital"
			default:
				return "financial_health"
			}
		}
		return "general"
	}

	if contextLower != "" {
		for _, rule := range contextRules {
			if containsAny(contextLower, rule.keywords) {
				return rule.category
			}
		}
	}
	return "general"
}
