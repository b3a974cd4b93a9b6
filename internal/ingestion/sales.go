package ingestion

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/insightpulse/insightpulse/internal/domain/models"
	"github.com/insightpulse/insightpulse/internal/storage"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
}

func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return &d
		}
	}
	return nil
}

func parseFloatPtr(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloatVal(s string) float64 {
	if p := parseFloatPtr(s); p != nil {
		return *p
	}
	return 0
}

// cell probes a list of normalized header variants and returns the first
// non-empty value. Unit suffixes in the source labels produce several
// spellings for the same column ("delivery_rating_15" from "(1-5)" and so
// on), so rating and yes/no columns need explicit alternates.
func cell(row map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := get(row, k); v != "" {
			return v
		}
	}
	return ""
}

func recordToVehicleSale(row map[string]string) models.VehicleSale {
	return models.VehicleSale{
		OEMName:             get(row, "oem_name"),
		CompetitorOEM:       get(row, "competitor_oem"),
		VehicleModel:        get(row, "vehicle_model"),
		VehicleSegment:      get(row, "vehicle_segment"),
		FuelType:            get(row, "fuel_type"),
		TransmissionType:    get(row, "transmission_type"),
		Country:             get(row, "country"),
		Region:              get(row, "region"),
		State:               get(row, "state"),
		City:                get(row, "city"),
		DealerName:          get(row, "dealer_name"),
		CustomerType:        get(row, "customer_type"),
		SaleDate:            parseDatePtr(get(row, "sale_date")),
		BookingDate:         parseDatePtr(get(row, "booking_date")),
		DeliveryDate:        parseDatePtr(get(row, "delivery_date")),
		UnitsSold:           parseFloatPtr(get(row, "units_sold")),
		FinalPrice:          parseFloatPtr(get(row, "final_price_after_discount")),
		DiscountOffered:     parseFloatPtr(get(row, "discount_offered")),
		MarketShareInRegion: parseFloatPtr(get(row, "market_share_in_region")),
		NPSScore:            parseFloatPtr(cell(row, "nps_customer_feedback", "nps_customer_feedback_110")),
		DeliveryRating:      parseFloatPtr(cell(row, "delivery_rating", "delivery_rating_15")),
		CompetitorPrice:     parseFloatPtr(get(row, "competitor_price")),
		RangeKM:             parseFloatPtr(get(row, "range_km")),
		BatteryCapacityKWH:  parseFloatPtr(get(row, "battery_capacity_kwh")),
		ChargingTimeHours:   parseFloatPtr(get(row, "charging_time_hours")),
		ComplaintRegistered: cell(row, "complaint_registered", "complaint_registered_yn"),
		FinanceOpted:        cell(row, "finance_opted", "finance_opted_yesno"),
	}
}

func recordToFMCGSale(row map[string]string) models.FMCGSale {
	return models.FMCGSale{
		Region:           get(row, "region"),
		Market:           cell(row, "market", "country"),
		Brand:            get(row, "brand"),
		Category:         get(row, "category"),
		Channel:          get(row, "channel"),
		ProductName:      get(row, "product_name"),
		PromotionType:    get(row, "promotion_type"),
		CustomerType:     get(row, "customer_type"),
		UnitsSold:        parseFloatVal(get(row, "units_sold")),
		ReturnedUnits:    parseFloatVal(get(row, "returned_units")),
		Revenue:          parseFloatVal(get(row, "revenue")),
		SellingPrice:     parseFloatVal(get(row, "selling_price")),
		Profit:           parseFloatVal(get(row, "profit")),
		CostToCompany:    parseFloatVal(get(row, "cost_to_company")),
		MarketShare:      parseFloatVal(get(row, "market_share")),
		BrandPenetration: parseFloatVal(get(row, "brand_penetration")),
		DeliveryTimeDays: parseFloatVal(get(row, "delivery_time_days")),
		StockOnHand:      parseFloatVal(get(row, "stock_on_hand")),
		OutOfStock:       cell(row, "out_of_stock", "out_of_stock_yn"),
		FeedbackScore:    parseFloatVal(cell(row, "customer_feedback_score", "customer_feedback_score_15")),
	}
}

// persistVehicleSales converts and batch-inserts a vehicle table.
func persistVehicleSales(ctx context.Context, t *table, repo storage.Repository, batch int) (int, error) {
	buf := make([]models.VehicleSale, 0, batch)
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertVehicleSalesBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0
	for i, row := range t.rows {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		buf = append(buf, recordToVehicleSale(row))
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", i+2, err)
			}
		}
	}
	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}
	return total, nil
}

// persistFMCGSales converts and batch-inserts an FMCG table.
func persistFMCGSales(ctx context.Context, t *table, repo storage.Repository, batch int) (int, error) {
	buf := make([]models.FMCGSale, 0, batch)
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertFMCGSalesBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0
	for i, row := range t.rows {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		buf = append(buf, recordToFMCGSale(row))
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", i+2, err)
			}
		}
	}
	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}
	return total, nil
}
