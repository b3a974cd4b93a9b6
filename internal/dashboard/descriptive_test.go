package dashboard

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/insightpulse/insightpulse/internal/domain/models"
)

func fPtr(v float64) *float64 { return &v }

func tPtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestChartMonthlySalesByOEM(t *testing.T) {
	rows := []models.VehicleSale{
		{OEMName: "Tata", SaleDate: tPtr(2024, time.January, 5)},
		{OEMName: "Tata", SaleDate: tPtr(2024, time.January, 20)},
		{OEMName: "Maruti", SaleDate: tPtr(2024, time.February, 1)},
		{OEMName: "", SaleDate: tPtr(2024, time.March, 1)},  // no OEM, skipped
		{OEMName: "Tata"},                                   // no date, skipped
	}

	c := chartMonthlySalesByOEM(rows)
	if c.ID != "monthly_sales_by_oem" || c.XKey != "month" {
		t.Fatalf("unexpected chart head: %+v", c)
	}
	if !reflect.DeepEqual(c.XAxis, []string{"Maruti", "Tata"}) {
		t.Fatalf("x-axis must list OEMs sorted: %v", c.XAxis)
	}
	if len(c.YAxis) != 2 {
		t.Fatalf("expected 2 month rows, got %d", len(c.YAxis))
	}

	jan := c.YAxis[0]
	if jan["month"] != "2024-01" || jan["Tata"] != 2.0 || jan["Maruti"] != 0.0 {
		t.Fatalf("unexpected january row: %v", jan)
	}
	feb := c.YAxis[1]
	if feb["month"] != "2024-02" || feb["Maruti"] != 1.0 {
		t.Fatalf("unexpected february row: %v", feb)
	}
}

func TestChartMarketShareByOEM(t *testing.T) {
	rows := []models.VehicleSale{
		{OEMName: "Tata", UnitsSold: fPtr(300)},
		{OEMName: "Maruti", UnitsSold: fPtr(600)},
		{OEMName: "Hyundai", UnitsSold: fPtr(100)},
		{OEMName: "Tata"}, // nil units, skipped
	}

	c := chartMarketShareByOEM(rows)
	if c.ID != "market_share_by_oem" || c.XKey != "oem" {
		t.Fatalf("unexpected chart head: %+v", c)
	}
	if len(c.YAxis) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(c.YAxis))
	}

	// Largest first, share of total units.
	if c.YAxis[0]["oem"] != "Maruti" || c.YAxis[0]["market_share_percent"] != 60.0 {
		t.Fatalf("unexpected first row: %v", c.YAxis[0])
	}
	if c.YAxis[1]["oem"] != "Tata" || c.YAxis[1]["market_share_percent"] != 30.0 {
		t.Fatalf("unexpected second row: %v", c.YAxis[1])
	}
	if c.YAxis[2]["oem"] != "Hyundai" || c.YAxis[2]["units_sold"] != 100.0 {
		t.Fatalf("unexpected third row: %v", c.YAxis[2])
	}
}

func TestChartNPSByCity_MinimumSampleSize(t *testing.T) {
	rows := []models.VehicleSale{
		{City: "Pune", NPSScore: fPtr(8)},
		{City: "Pune", NPSScore: fPtr(9)},
		{City: "Pune", NPSScore: fPtr(7)},
		{City: "Delhi", NPSScore: fPtr(10)},
		{City: "Delhi", NPSScore: fPtr(10)},
	}

	c := chartNPSByCity(rows)
	// Delhi has only two scores and is dropped.
	if len(c.YAxis) != 1 {
		t.Fatalf("expected 1 row, got %v", c.YAxis)
	}
	if c.YAxis[0]["city"] != "Pune" || c.YAxis[0]["avg_nps"] != 8.0 {
		t.Fatalf("unexpected row: %v", c.YAxis[0])
	}
}

func TestChartDeliveryDelayByOEM(t *testing.T) {
	rows := []models.VehicleSale{
		{OEMName: "Tata", BookingDate: tPtr(2024, time.January, 1), DeliveryDate: tPtr(2024, time.January, 11)},
		{OEMName: "Tata", BookingDate: tPtr(2024, time.February, 1), DeliveryDate: tPtr(2024, time.February, 21)},
		{OEMName: "Maruti", BookingDate: tPtr(2024, time.January, 1)}, // no delivery date
	}

	c := chartDeliveryDelayByOEM(rows)
	if len(c.YAxis) != 1 {
		t.Fatalf("expected 1 row, got %v", c.YAxis)
	}
	if c.YAxis[0]["oem"] != "Tata" || c.YAxis[0]["avg_delivery_delay_days"] != 15.0 {
		t.Fatalf("unexpected row: %v", c.YAxis[0])
	}
}

func TestChartTopSellingModels_CapsAtTen(t *testing.T) {
	rows := make([]models.VehicleSale, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, models.VehicleSale{
			VehicleModel: fmt.Sprintf("Model-%02d", i),
			UnitsSold:    fPtr(float64(i + 1)),
		})
	}

	c := chartTopSellingModels(rows)
	if len(c.YAxis) != 10 {
		t.Fatalf("expected top 10, got %d", len(c.YAxis))
	}
	if c.YAxis[0]["model"] != "Model-11" || c.YAxis[0]["units_sold"] != 12.0 {
		t.Fatalf("unexpected top model: %v", c.YAxis[0])
	}
}

func TestChartEVMetrics_FiltersElectric(t *testing.T) {
	rows := []models.VehicleSale{
		{OEMName: "Tata", FuelType: "Electric", RangeKM: fPtr(400), BatteryCapacityKWH: fPtr(50), ChargingTimeHours: fPtr(6)},
		{OEMName: "Maruti", FuelType: "Petrol", RangeKM: fPtr(700), BatteryCapacityKWH: fPtr(0), ChargingTimeHours: fPtr(0)},
		{OEMName: "MG", FuelType: "Electric"}, // missing EV columns
	}

	c := chartEVMetrics(rows)
	if len(c.YAxis) != 1 {
		t.Fatalf("expected 1 EV row, got %v", c.YAxis)
	}
	row := c.YAxis[0]
	if row["oem"] != "Tata" || row["range_km"] != 400.0 || row["battery_kwh"] != 50.0 {
		t.Fatalf("unexpected row: %v", row)
	}
}

func TestChartFinanceOptedRatio(t *testing.T) {
	rows := []models.VehicleSale{
		{CustomerType: "Individual", FinanceOpted: "Yes"},
		{CustomerType: "Individual", FinanceOpted: "no"},
		{CustomerType: "Individual", FinanceOpted: "YES"},
		{CustomerType: "Fleet", FinanceOpted: "no"},
	}

	c := chartFinanceOptedRatio(rows)
	if len(c.YAxis) != 2 {
		t.Fatalf("expected 2 rows, got %v", c.YAxis)
	}
	if c.YAxis[0]["customer_type"] != "Fleet" || c.YAxis[0]["finance_opted_percent"] != 0.0 {
		t.Fatalf("unexpected fleet row: %v", c.YAxis[0])
	}
	if c.YAxis[1]["customer_type"] != "Individual" || c.YAxis[1]["finance_opted_percent"] != 66.67 {
		t.Fatalf("unexpected individual row: %v", c.YAxis[1])
	}
}

func TestChartFuelVsTransmission(t *testing.T) {
	rows := []models.VehicleSale{
		{FuelType: "Petrol", TransmissionType: "Manual", UnitsSold: fPtr(10)},
		{FuelType: "Petrol", TransmissionType: "Automatic", UnitsSold: fPtr(5)},
		{FuelType: "Diesel", TransmissionType: "Manual", UnitsSold: fPtr(7)},
	}

	c := chartFuelVsTransmission(rows)
	if !reflect.DeepEqual(c.XAxis, []string{"Automatic", "Manual"}) {
		t.Fatalf("unexpected transmissions: %v", c.XAxis)
	}
	if len(c.YAxis) != 2 {
		t.Fatalf("expected 2 fuel rows, got %d", len(c.YAxis))
	}
	diesel := c.YAxis[0]
	if diesel["fuel_type"] != "Diesel" || diesel["Manual"] != 7.0 || diesel["Automatic"] != 0.0 {
		t.Fatalf("unexpected diesel row: %v", diesel)
	}
}

func TestChartEVShareByFuel(t *testing.T) {
	rows := []models.VehicleSale{
		{FuelType: "Electric", UnitsSold: fPtr(25)},
		{FuelType: "Petrol", UnitsSold: fPtr(75)},
	}

	c := chartEVShareByFuel(rows)
	if len(c.YAxis) != 2 {
		t.Fatalf("expected 2 rows, got %v", c.YAxis)
	}
	ev := c.YAxis[0]
	if ev["fuel_type"] != "Electric" || ev["share_percent"] != 25.0 {
		t.Fatalf("unexpected EV row: %v", ev)
	}
}

func TestChartComplaintCountByDealer(t *testing.T) {
	rows := []models.VehicleSale{
		{DealerName: "D1", ComplaintRegistered: "Yes"},
		{DealerName: "D1", ComplaintRegistered: "no"},
		{DealerName: "D1", ComplaintRegistered: "yes"},
		{DealerName: "", ComplaintRegistered: "yes"},
	}

	c := chartComplaintCountByDealer(rows)
	if len(c.YAxis) != 1 {
		t.Fatalf("expected 1 row, got %v", c.YAxis)
	}
	if c.YAxis[0]["dealer"] != "D1" || c.YAxis[0]["complaint_count"] != 2.0 {
		t.Fatalf("unexpected row: %v", c.YAxis[0])
	}
}
