package dashboard

import (
	"errors"

	"github.com/insightpulse/insightpulse/internal/domain/dto"
	"github.com/insightpulse/insightpulse/internal/domain/models"
)

// Dashboard identifiers.
const (
	DashboardAutomobile = "auto_mobile"
	DashboardFMCG       = "fmcg"
)

// Automobile tab names.
const (
	TabSales       = "sales"
	TabSupply      = "supply"
	TabCustomer    = "customer"
	TabDescriptive = "descriptive"
)

// ErrNotFound marks an unknown dashboard/tab combination. There is no
// default chart set; the caller surfaces this as a 404.
var ErrNotFound = errors.New("dashboard or tab not found")

var automobileTabs = []string{TabSales, TabSupply, TabCustomer, TabDescriptive}

var fmcgTabs = []string{
	TabGlobalRegionalSales,
	TabSupplyChain,
	TabMarketingBrand,
	TabFinancialProfitability,
	TabConsumerInsights,
	TabSustainabilityCompliance,
}

// Tabs lists the tabs available for a dashboard. Unknown dashboards get an
// empty list, not an error, so the front end can render "no tabs".
func Tabs(dashboardID string) []string {
	switch dashboardID {
	case DashboardAutomobile:
		return automobileTabs
	case DashboardFMCG:
		return fmcgTabs
	default:
		return []string{}
	}
}

// AutomobileTab routes an automobile tab name to its chart routine.
func AutomobileTab(tab string, rows []models.VehicleSale) ([]dto.LegacyChart, error) {
	switch tab {
	case TabSales:
		return SalesPerformanceCharts(rows), nil
	case TabSupply:
		return SupplyAftersalesCharts(rows), nil
	case TabCustomer:
		return CustomerSustainabilityCharts(rows), nil
	case TabDescriptive:
		return DescriptiveCharts(rows), nil
	default:
		return nil, ErrNotFound
	}
}

// FMCGTab routes an FMCG tab name to its chart routine.
func FMCGTab(tab string, rows []models.FMCGSale) ([]dto.LegacyChart, error) {
	switch tab {
	case TabGlobalRegionalSales:
		return fmcgGlobalRegionalSales(rows), nil
	case TabSupplyChain:
		return fmcgSupplyChain(rows), nil
	case TabMarketingBrand:
		return fmcgMarketingBrand(rows), nil
	case TabFinancialProfitability:
		return fmcgFinancialProfitability(rows), nil
	case TabConsumerInsights:
		return fmcgConsumerInsights(rows), nil
	case TabSustainabilityCompliance:
		return fmcgSustainabilityCompliance(rows), nil
	default:
		return nil, ErrNotFound
	}
}
