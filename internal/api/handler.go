package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/insightpulse/insightpulse/internal/analytics"
	"github.com/insightpulse/insightpulse/internal/dashboard"
	"github.com/insightpulse/insightpulse/internal/domain/dto"
	"github.com/insightpulse/insightpulse/internal/service"
	"github.com/insightpulse/insightpulse/internal/storage"
)

// Handler provides HTTP handlers for the dashboard analytics endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query and path parameters
//   - Interact with the service layer for chart and summary computation
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.DashboardService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

// GetDashboardTabs handles GET /api/v1/dashboard-tabs requests.
//
// GetDashboardTabs godoc
// @Summary      List dashboard tabs
// @Description  Returns the tab names available for a dashboard id
// @Tags         dashboard
// @Produce      json
// @Param        dashboard_id  query     string  true  "Dashboard id" example(auto_mobile)
// @Success      200           {object}  map[string]interface{}  "Success"
// @Failure      400           {object}  dto.ErrorResponse       "Bad Request"
// @Router       /api/v1/dashboard-tabs [get]
func (h *Handler) GetDashboardTabs(c *gin.Context) {
	dashboardID := strings.TrimSpace(c.Query("dashboard_id"))
	if dashboardID == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("dashboard_id is required", nil))
		return
	}

	tabs := h.svc.Tabs(c.Request.Context(), dashboardID)
	c.JSON(http.StatusOK, gin.H{"dashboard_id": dashboardID, "tabs": tabs})
}

// GetDashboardTabKPIs handles GET /api/v1/dashboard-tab-kpis/:dashboard_id/:tab requests.
//
// GetDashboardTabKPIs godoc
// @Summary      Get tab KPI charts
// @Description  Returns the flat chart array for one dashboard tab
// @Tags         dashboard
// @Produce      json
// @Param        dashboard_id   path      string  true   "Dashboard id" example(auto_mobile)
// @Param        tab            path      string  true   "Tab name" example(sales)
// @Param        country        query     string  false  "Country filter"
// @Param        region         query     string  false  "Region filter"
// @Param        oem_name       query     string  false  "OEM name filter"
// @Param        dealer_name    query     string  false  "Dealer name filter"
// @Param        city           query     string  false  "City filter"
// @Param        customer_type  query     string  false  "Customer type filter"
// @Param        brand          query     string  false  "Brand filter (FMCG)"
// @Param        category       query     string  false  "Category filter (FMCG)"
// @Success      200            {array}   dto.LegacyChart    "Success"
// @Failure      404            {object}  dto.ErrorResponse  "Not Found"
// @Failure      500            {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/dashboard-tab-kpis/{dashboard_id}/{tab} [get]
func (h *Handler) GetDashboardTabKPIs(c *gin.Context) {
	dashboardID := c.Param("dashboard_id")
	tab := c.Param("tab")

	vf := storage.VehicleFilter{
		Country:      c.Query("country"),
		Region:       c.Query("region"),
		OEMName:      c.Query("oem_name"),
		DealerName:   c.Query("dealer_name"),
		City:         c.Query("city"),
		CustomerType: c.Query("customer_type"),
	}
	ff := storage.FMCGFilter{
		Region:   c.Query("region"),
		Country:  c.Query("country"),
		Brand:    c.Query("brand"),
		Category: c.Query("category"),
	}

	charts, err := h.svc.TabKPIs(c.Request.Context(), dashboardID, tab, vf, ff)
	if err != nil {
		if errors.Is(err, dashboard.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("dashboard or tab not found", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute tab KPIs", err))
		return
	}

	c.JSON(http.StatusOK, charts)
}

// GetMetricsDashboard handles GET /api/v1/metrics-dashboard requests.
//
// GetMetricsDashboard godoc
// @Summary      Get metrics dashboard
// @Description  Aggregates filtered datapoints into per-metric chart groups
// @Tags         metrics
// @Produce      json
// @Param        year           query     string  false  "Year filter" example(2023)
// @Param        country_name   query     string  false  "Country filter"
// @Param        brand_name     query     string  false  "Brand filter"
// @Param        category_name  query     string  false  "Category filter"
// @Param        metric_name    query     string  false  "Metric name substring"
// @Param        unit           query     string  false  "Unit substring"
// @Param        suppression    query     string  false  "Zero suppression: per_chart or per_series" example(per_chart)
// @Success      200            {object}  dto.ResponseEnvelope  "Success"
// @Failure      400            {object}  dto.ErrorResponse     "Bad Request"
// @Failure      500            {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/v1/metrics-dashboard [get]
func (h *Handler) GetMetricsDashboard(c *gin.Context) {
	f := queryFilters(c)

	opts := analytics.Options{}
	switch c.DefaultQuery("suppression", "per_chart") {
	case "per_chart":
		opts.Suppression = analytics.SuppressPerChart
	case "per_series":
		opts.Suppression = analytics.SuppressPerSeries
	default:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid suppression, expected per_chart or per_series", nil))
		return
	}

	env, err := h.svc.MetricsDashboard(c.Request.Context(), f, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute metrics dashboard", err))
		return
	}

	c.JSON(http.StatusOK, env)
}

// GetSalesPerformance handles GET /api/v1/sales-performance requests.
//
// GetSalesPerformance godoc
// @Summary      Get sales performance summary
// @Description  Returns totals, averages, per-year trend, and qualitative datapoints for the filtered set
// @Tags         metrics
// @Produce      json
// @Param        year           query     string  false  "Year filter"
// @Param        country_name   query     string  false  "Country filter"
// @Param        brand_name     query     string  false  "Brand filter"
// @Param        category_name  query     string  false  "Category filter"
// @Param        metric_name    query     string  false  "Metric name substring"
// @Success      200            {object}  map[string]interface{}  "Success"
// @Failure      500            {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/sales-performance [get]
func (h *Handler) GetSalesPerformance(c *gin.Context) {
	f := queryFilters(c)

	sum, err := h.svc.SalesPerformance(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute sales performance", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filters": dto.Metadata{
			Year:     f.Year,
			Country:  f.Country,
			Brand:    f.Brand,
			Category: f.Category,
			Metric:   f.Metric,
			Unit:     f.Unit,
		},
		"summary": sum,
	})
}

// GetAvailable handles GET /api/v1/available requests.
//
// GetAvailable godoc
// @Summary      List available filter values
// @Description  Returns the distinct metric, brand, year, category, and country values
// @Tags         metrics
// @Produce      json
// @Success      200  {object}  models.AvailableFilters  "Success"
// @Failure      500  {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/available [get]
func (h *Handler) GetAvailable(c *gin.Context) {
	af, err := h.svc.Available(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list available filters", err))
		return
	}

	c.JSON(http.StatusOK, af)
}

func queryFilters(c *gin.Context) analytics.Filters {
	return analytics.Filters{
		Year:     strings.TrimSpace(c.Query("year")),
		Country:  strings.TrimSpace(c.Query("country_name")),
		Brand:    strings.TrimSpace(c.Query("brand_name")),
		Category: strings.TrimSpace(c.Query("category_name")),
		Metric:   strings.TrimSpace(c.Query("metric_name")),
		Unit:     strings.TrimSpace(c.Query("unit")),
	}
}
