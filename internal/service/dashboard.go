package service

import (
	"context"

	"github.com/insightpulse/insightpulse/internal/analytics"
	"github.com/insightpulse/insightpulse/internal/dashboard"
	"github.com/insightpulse/insightpulse/internal/domain/dto"
	"github.com/insightpulse/insightpulse/internal/domain/models"
	"github.com/insightpulse/insightpulse/internal/storage"
)

// DashboardService defines business logic for the dashboard endpoints.
type DashboardService interface {
	Tabs(ctx context.Context, dashboardID string) []string
	TabKPIs(ctx context.Context, dashboardID, tab string, vf storage.VehicleFilter, ff storage.FMCGFilter) ([]dto.LegacyChart, error)
	MetricsDashboard(ctx context.Context, f analytics.Filters, opts analytics.Options) (dto.ResponseEnvelope, error)
	SalesPerformance(ctx context.Context, f analytics.Filters) (analytics.SalesSummary, error)
	Available(ctx context.Context) (models.AvailableFilters, error)
}

type dashboardService struct {
	repo storage.Repository
}

func NewDashboardService(repo storage.Repository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) Tabs(_ context.Context, dashboardID string) []string {
	return dashboard.Tabs(dashboardID)
}

// TabKPIs loads the backing sales table for the dashboard and runs its tab's
// chart routine. Unknown dashboard/tab pairs surface dashboard.ErrNotFound.
func (s *dashboardService) TabKPIs(_ context.Context, dashboardID, tab string, vf storage.VehicleFilter, ff storage.FMCGFilter) ([]dto.LegacyChart, error) {
	switch dashboardID {
	case dashboard.DashboardAutomobile:
		rows, err := s.repo.ListVehicleSales(vf)
		if err != nil {
			return nil, err
		}
		return dashboard.AutomobileTab(tab, rows)
	case dashboard.DashboardFMCG:
		rows, err := s.repo.ListFMCGSales(ff)
		if err != nil {
			return nil, err
		}
		return dashboard.FMCGTab(tab, rows)
	default:
		return nil, dashboard.ErrNotFound
	}
}

// MetricsDashboard runs the full pipeline: filtered query, aggregation,
// chart selection, envelope assembly.
func (s *dashboardService) MetricsDashboard(_ context.Context, f analytics.Filters, opts analytics.Options) (dto.ResponseEnvelope, error) {
	records, err := s.repo.ListDataPoints(dataPointFilter(f))
	if err != nil {
		return dto.ResponseEnvelope{}, err
	}
	groups := analytics.Aggregate(records)
	return analytics.Assemble(groups, f, opts), nil
}

// SalesPerformance summarizes the filtered datapoint set: totals, averages,
// per-year trend, and the qualitative rows normalization rejected.
func (s *dashboardService) SalesPerformance(_ context.Context, f analytics.Filters) (analytics.SalesSummary, error) {
	records, err := s.repo.ListDataPoints(dataPointFilter(f))
	if err != nil {
		return analytics.SalesSummary{}, err
	}
	return analytics.Summarize(records), nil
}

func (s *dashboardService) Available(_ context.Context) (models.AvailableFilters, error) {
	return s.repo.AvailableFilters()
}

func dataPointFilter(f analytics.Filters) storage.DataPointFilter {
	return storage.DataPointFilter{
		Year:       f.Year,
		Country:    f.Country,
		Brand:      f.Brand,
		Category:   f.Category,
		MetricLike: f.Metric,
		UnitLike:   f.Unit,
	}
}
