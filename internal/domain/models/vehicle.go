package models

import "time"

// VehicleSale is one row of the vehicle_sales table (automobile dashboard).
// Optional numeric columns are pointers so "absent" and "zero" stay distinct;
// the tab routines skip nil values instead of treating them as zeros.
type VehicleSale struct {
	OEMName          string
	CompetitorOEM    string
	VehicleModel     string
	VehicleSegment   string
	FuelType         string
	TransmissionType string
	Country          string
	Region           string
	State            string
	City             string
	DealerName       string
	CustomerType     string

	SaleDate     *time.Time
	BookingDate  *time.Time
	DeliveryDate *time.Time

	UnitsSold           *float64
	FinalPrice          *float64
	DiscountOffered     *float64
	MarketShareInRegion *float64
	NPSScore            *float64
	DeliveryRating      *float64
	CompetitorPrice     *float64
	RangeKM             *float64
	BatteryCapacityKWH  *float64
	ChargingTimeHours   *float64

	ComplaintRegistered string // "yes"/"no", free-form in source data
	FinanceOpted        string // "yes"/"no"
}

// FMCGSale is one row of the fmcg_sales table (FMCG dashboard).
type FMCGSale struct {
	Region        string
	Market        string
	Brand         string
	Category      string
	Channel       string
	ProductName   string
	PromotionType string
	CustomerType  string

	UnitsSold     float64
	ReturnedUnits float64
	Revenue       float64
	SellingPrice  float64
	Profit        float64
	CostToCompany float64

	MarketShare      float64
	BrandPenetration float64

	DeliveryTimeDays float64
	StockOnHand      float64
	OutOfStock       string // "yes"/"no"

	FeedbackScore float64
}
