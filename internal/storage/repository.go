package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/insightpulse/insightpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// DataPointFilter narrows the flat datapoint query. Dimension fields are
// exact matches against the joined reference names; MetricLike and UnitLike
// are case-insensitive substring matches.
type DataPointFilter struct {
	Year           string
	Country        string
	Brand          string
	Category       string
	MetricCategory string
	MetricLike     string
	UnitLike       string
}

// VehicleFilter narrows vehicle_sales rows; all matches are
// case-insensitive substrings.
type VehicleFilter struct {
	Country      string
	Region       string
	OEMName      string
	DealerName   string
	City         string
	CustomerType string
}

// FMCGFilter narrows fmcg_sales rows; all matches are case-insensitive
// substrings. Country filters the market column.
type FMCGFilter struct {
	Region   string
	Country  string
	Brand    string
	Category string
}

// Repository defines the contract for DB operations.
type Repository interface {
	ListDataPoints(f DataPointFilter) ([]models.FlatRecord, error)
	ListVehicleSales(f VehicleFilter) ([]models.VehicleSale, error)
	ListFMCGSales(f FMCGFilter) ([]models.FMCGSale, error)
	AvailableFilters() (models.AvailableFilters, error)

	InsertDataPointsBatch(points []models.DataPoint) error
	InsertVehicleSalesBatch(sales []models.VehicleSale) error
	InsertFMCGSalesBatch(sales []models.FMCGSale) error
	GetOrCreateCountry(name string) (int64, error)
	GetOrCreateCategory(name string) (int64, error)
	GetOrCreateBrand(name string) (int64, error)

	HasIngestionForFile(name string) (bool, error)
	UpsertIngestionLog(name string, rowCount int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// cond accumulates dynamic WHERE conditions with positional placeholders.
type cond struct {
	clauses []string
	args    []interface{}
}

func (c *cond) eq(column, value string) {
	if value == "" {
		return
	}
	c.clauses = append(c.clauses, fmt.Sprintf("%s = $%d", column, len(c.args)+1))
	c.args = append(c.args, value)
}

func (c *cond) ilike(column, value string) {
	if value == "" {
		return
	}
	c.clauses = append(c.clauses, fmt.Sprintf("%s ILIKE $%d", column, len(c.args)+1))
	c.args = append(c.args, "%"+value+"%")
}

func (c *cond) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// ListDataPoints returns flat records with reference names already joined.
// Filtering happens in SQL so the aggregation layer never re-filters.
func (r *repository) ListDataPoints(f DataPointFilter) ([]models.FlatRecord, error) {
	var c cond
	c.eq("dp.year", f.Year)
	c.eq("co.name", f.Country)
	c.eq("br.name", f.Brand)
	c.eq("ca.name", f.Category)
	c.eq("dp.metric_category", f.MetricCategory)
	c.ilike("dp.metric", f.MetricLike)
	c.ilike("dp.unit", f.UnitLike)

	query := `
		SELECT dp.metric, dp.metric_category, dp.unit, dp.year, co.name, br.name, dp.value
		FROM data_points dp
		LEFT JOIN countries co ON dp.country_id = co.id
		LEFT JOIN categories ca ON dp.category_id = ca.id
		LEFT JOIN brands br ON dp.brand_id = br.id` +
		c.where() + `
		ORDER BY dp.metric, dp.unit, dp.year`

	rows, err := r.db.Query(query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("query data points: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []models.FlatRecord
	for rows.Next() {
		var metric, metricCategory sql.NullString
		var unit, year, country, brand, value sql.NullString
		if err := rows.Scan(&metric, &metricCategory, &unit, &year, &country, &brand, &value); err != nil {
			return nil, fmt.Errorf("scan data point: %w", err)
		}
		records = append(records, models.FlatRecord{
			Metric:         metric.String,
			MetricCategory: metricCategory.String,
			Unit:           nullStr(unit),
			Year:           nullStr(year),
			Country:        nullStr(country),
			Brand:          nullStr(brand),
			Value:          nullStr(value),
		})
	}
	return records, rows.Err()
}

func (r *repository) ListVehicleSales(f VehicleFilter) ([]models.VehicleSale, error) {
	var c cond
	c.ilike("country", f.Country)
	c.ilike("region", f.Region)
	c.ilike("oem_name", f.OEMName)
	c.ilike("dealer_name", f.DealerName)
	c.ilike("city", f.City)
	c.ilike("customer_type", f.CustomerType)

	query := `
		SELECT oem_name, competitor_oem, vehicle_model, vehicle_segment,
		       fuel_type, transmission_type, country, region, state, city,
		       dealer_name, customer_type,
		       sale_date, booking_date, delivery_date,
		       units_sold, final_price_after_discount, discount_offered,
		       market_share_in_region, nps_customer_feedback, delivery_rating,
		       competitor_price, range_km, battery_capacity_kwh, charging_time_hours,
		       complaint_registered, finance_opted
		FROM vehicle_sales` + c.where()

	rows, err := r.db.Query(query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("query vehicle sales: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sales []models.VehicleSale
	for rows.Next() {
		var oem, comp, model, segment, fuel, trans, country, region, state, city, dealer, custType sql.NullString
		var saleDate, bookingDate, deliveryDate sql.NullTime
		var units, price, discount, share, nps, rating, compPrice, rangeKM, battery, charging sql.NullFloat64
		var complaint, finance sql.NullString

		if err := rows.Scan(
			&oem, &comp, &model, &segment, &fuel, &trans, &country, &region, &state, &city,
			&dealer, &custType,
			&saleDate, &bookingDate, &deliveryDate,
			&units, &price, &discount, &share, &nps, &rating,
			&compPrice, &rangeKM, &battery, &charging,
			&complaint, &finance,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle sale: %w", err)
		}

		sales = append(sales, models.VehicleSale{
			OEMName:             oem.String,
			CompetitorOEM:       comp.String,
			VehicleModel:        model.String,
			VehicleSegment:      segment.String,
			FuelType:            fuel.String,
			TransmissionType:    trans.String,
			Country:             country.String,
			Region:              region.String,
			State:               state.String,
			City:                city.String,
			DealerName:          dealer.String,
			CustomerType:        custType.String,
			SaleDate:            nullTime(saleDate),
			BookingDate:         nullTime(bookingDate),
			DeliveryDate:        nullTime(deliveryDate),
			UnitsSold:           nullFloat(units),
			FinalPrice:          nullFloat(price),
			DiscountOffered:     nullFloat(discount),
			MarketShareInRegion: nullFloat(share),
			NPSScore:            nullFloat(nps),
			DeliveryRating:      nullFloat(rating),
			CompetitorPrice:     nullFloat(compPrice),
			RangeKM:             nullFloat(rangeKM),
			BatteryCapacityKWH:  nullFloat(battery),
			ChargingTimeHours:   nullFloat(charging),
			ComplaintRegistered: complaint.String,
			FinanceOpted:        finance.String,
		})
	}
	return sales, rows.Err()
}

func (r *repository) ListFMCGSales(f FMCGFilter) ([]models.FMCGSale, error) {
	var c cond
	c.ilike("region", f.Region)
	c.ilike("market", f.Country)
	c.ilike("brand", f.Brand)
	c.ilike("category", f.Category)

	query := `
		SELECT region, market, brand, category, channel, product_name,
		       promotion_type, customer_type,
		       units_sold, returned_units, revenue, selling_price, profit,
		       cost_to_company, market_share, brand_penetration,
		       delivery_time_days, stock_on_hand, out_of_stock,
		       customer_feedback_score
		FROM fmcg_sales` + c.where()

	rows, err := r.db.Query(query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("query fmcg sales: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sales []models.FMCGSale
	for rows.Next() {
		var region, market, brand, category, channel, product, promo, custType, oos sql.NullString
		var units, returned, revenue, price, profit, cost, share, penetration, delivery, stock, feedback sql.NullFloat64

		if err := rows.Scan(
			&region, &market, &brand, &category, &channel, &product, &promo, &custType,
			&units, &returned, &revenue, &price, &profit, &cost, &share, &penetration,
			&delivery, &stock, &oos, &feedback,
		); err != nil {
			return nil, fmt.Errorf("scan fmcg sale: %w", err)
		}

		sales = append(sales, models.FMCGSale{
			Region:           region.String,
			Market:           market.String,
			Brand:            brand.String,
			Category:         category.String,
			Channel:          channel.String,
			ProductName:      product.String,
			PromotionType:    promo.String,
			CustomerType:     custType.String,
			UnitsSold:        units.Float64,
			ReturnedUnits:    returned.Float64,
			Revenue:          revenue.Float64,
			SellingPrice:     price.Float64,
			Profit:           profit.Float64,
			CostToCompany:    cost.Float64,
			MarketShare:      share.Float64,
			BrandPenetration: penetration.Float64,
			DeliveryTimeDays: delivery.Float64,
			StockOnHand:      stock.Float64,
			OutOfStock:       oos.String,
			FeedbackScore:    feedback.Float64,
		})
	}
	return sales, rows.Err()
}

// AvailableFilters collects the distinct values used to populate the filter
// dropdowns. NULLs and empties are excluded.
func (r *repository) AvailableFilters() (models.AvailableFilters, error) {
	af := models.AvailableFilters{
		Metrics:          []string{},
		MetricCategories: []string{},
		Brands:           []string{},
		Years:            []string{},
		Categories:       []string{},
		Countries:        []string{},
	}

	queries := []struct {
		dest  *[]string
		query string
	}{
		{&af.Metrics, `SELECT DISTINCT metric FROM data_points WHERE metric IS NOT NULL AND metric <> '' ORDER BY metric`},
		{&af.MetricCategories, `SELECT DISTINCT metric_category FROM data_points WHERE metric_category IS NOT NULL AND metric_category <> '' ORDER BY metric_category`},
		{&af.Brands, `SELECT DISTINCT name FROM brands ORDER BY name`},
		{&af.Years, `SELECT DISTINCT year FROM data_points WHERE year IS NOT NULL AND year <> '' ORDER BY year`},
		{&af.Categories, `SELECT DISTINCT name FROM categories ORDER BY name`},
		{&af.Countries, `SELECT DISTINCT name FROM countries ORDER BY name`},
	}

	for _, q := range queries {
		values, err := r.queryStrings(q.query)
		if err != nil {
			return af, err
		}
		*q.dest = values
	}
	return af, nil
}

func (r *repository) queryStrings(query string) ([]string, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query distinct values: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// InsertDataPointsBatch inserts multiple datapoints in a single transaction.
func (r *repository) InsertDataPointsBatch(points []models.DataPoint) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"data_points",
		"country_id",
		"category_id",
		"brand_id",
		"source_url",
		"insight",
		"summary",
		"year",
		"metric",
		"metric_category",
		"unit",
		"value",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, p := range points {
		if _, err := stmt.Exec(
			p.CountryID,
			p.CategoryID,
			p.BrandID,
			p.SourceURL,
			p.Insight,
			p.Summary,
			p.Year,
			p.Metric,
			p.MetricCategory,
			p.Unit,
			p.Value,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// InsertVehicleSalesBatch bulk-loads vehicle_sales rows via COPY.
func (r *repository) InsertVehicleSalesBatch(sales []models.VehicleSale) error {
	return r.copyBatch(
		"vehicle_sales",
		[]string{
			"oem_name", "competitor_oem", "vehicle_model", "vehicle_segment",
			"fuel_type", "transmission_type", "country", "region", "state", "city",
			"dealer_name", "customer_type",
			"sale_date", "booking_date", "delivery_date",
			"units_sold", "final_price_after_discount", "discount_offered",
			"market_share_in_region", "nps_customer_feedback", "delivery_rating",
			"competitor_price", "range_km", "battery_capacity_kwh", "charging_time_hours",
			"complaint_registered", "finance_opted",
		},
		len(sales),
		func(i int) []interface{} {
			s := sales[i]
			return []interface{}{
				s.OEMName, s.CompetitorOEM, s.VehicleModel, s.VehicleSegment,
				s.FuelType, s.TransmissionType, s.Country, s.Region, s.State, s.City,
				s.DealerName, s.CustomerType,
				s.SaleDate, s.BookingDate, s.DeliveryDate,
				s.UnitsSold, s.FinalPrice, s.DiscountOffered,
				s.MarketShareInRegion, s.NPSScore, s.DeliveryRating,
				s.CompetitorPrice, s.RangeKM, s.BatteryCapacityKWH, s.ChargingTimeHours,
				s.ComplaintRegistered, s.FinanceOpted,
			}
		},
	)
}

// InsertFMCGSalesBatch bulk-loads fmcg_sales rows via COPY.
func (r *repository) InsertFMCGSalesBatch(sales []models.FMCGSale) error {
	return r.copyBatch(
		"fmcg_sales",
		[]string{
			"region", "market", "brand", "category", "channel", "product_name",
			"promotion_type", "customer_type",
			"units_sold", "returned_units", "revenue", "selling_price", "profit",
			"cost_to_company", "market_share", "brand_penetration",
			"delivery_time_days", "stock_on_hand", "out_of_stock",
			"customer_feedback_score",
		},
		len(sales),
		func(i int) []interface{} {
			s := sales[i]
			return []interface{}{
				s.Region, s.Market, s.Brand, s.Category, s.Channel, s.ProductName,
				s.PromotionType, s.CustomerType,
				s.UnitsSold, s.ReturnedUnits, s.Revenue, s.SellingPrice, s.Profit,
				s.CostToCompany, s.MarketShare, s.BrandPenetration,
				s.DeliveryTimeDays, s.StockOnHand, s.OutOfStock,
				s.FeedbackScore,
			}
		},
	)
}

// copyBatch runs one COPY transaction over n rows produced by args.
func (r *repository) copyBatch(table string, columns []string, n int, args func(i int) []interface{}) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(table, columns...))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(args(i)...); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *repository) GetOrCreateCountry(name string) (int64, error) {
	return r.getOrCreate("countries", name)
}

func (r *repository) GetOrCreateCategory(name string) (int64, error) {
	return r.getOrCreate("categories", name)
}

func (r *repository) GetOrCreateBrand(name string) (int64, error) {
	return r.getOrCreate("brands", name)
}

// getOrCreate resolves a reference name to its id, creating the row when
// missing. ON CONFLICT plus fallback select keeps concurrent ingests safe.
func (r *repository) getOrCreate(table, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(
		fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) ON CONFLICT (name) DO NOTHING RETURNING id`, table),
		name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}

	if err := r.db.QueryRow(fmt.Sprintf(`SELECT id FROM %s WHERE name = $1`, table), name).Scan(&id); err != nil {
		return 0, fmt.Errorf("select %s: %w", table, err)
	}
	return id, nil
}

// HasIngestionForFile checks if an ingestion was already recorded for a file.
func (r *repository) HasIngestionForFile(name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE file_name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or updates) an ingestion entry for a file.
func (r *repository) UpsertIngestionLog(name string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO ingestion_log (file_name, row_count)
		VALUES ($1, $2)
		ON CONFLICT (file_name)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  ingested_at = NOW()
	`, name, rowCount)
	return err
}

func nullStr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
