package dto

import (
	"time"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/shopspring/decimal"
)

// LoadingItemResponse represents one item line in API responses.
type LoadingItemResponse struct {
	ID          string          `json:"id"`
	VarietyCode string          `json:"variety_code"`
	NoTrays     int             `json:"no_trays"`
	TrayKgs     decimal.Decimal `json:"tray_kgs"`
	LooseKgs    decimal.Decimal `json:"loose_kgs"`
	TotalKgs    decimal.Decimal `json:"total_kgs"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// LoadingResponse represents a loading in API responses.
type LoadingResponse struct {
	ID            string                `json:"id"`
	EntityType    string                `json:"entity_type"`
	PartyID       string                `json:"party_id"`
	PartyName     string                `json:"party_name"`
	BillNo        string                `json:"bill_no"`
	VehicleNo     string                `json:"vehicle_no"`
	Village       string                `json:"village,omitempty"`
	FishCode      string                `json:"fish_code,omitempty"`
	Date          time.Time             `json:"date"`
	TotalTrays    int                   `json:"total_trays"`
	TotalLooseKgs decimal.Decimal       `json:"total_loose_kgs"`
	TotalTrayKgs  decimal.Decimal       `json:"total_tray_kgs"`
	TotalKgs      decimal.Decimal       `json:"total_kgs"`
	GrandTotal    decimal.Decimal       `json:"grand_total"`
	Items         []LoadingItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
}

// LoadingFromDomain converts a domain loading to a response.
func LoadingFromDomain(l *domain.Loading) *LoadingResponse {
	items := make([]LoadingItemResponse, len(l.Items))
	for i, it := range l.Items {
		items[i] = LoadingItemResponse{
			ID:          it.ID,
			VarietyCode: it.VarietyCode,
			NoTrays:     it.NoTrays,
			TrayKgs:     it.TrayKgs,
			LooseKgs:    it.LooseKgs,
			TotalKgs:    it.TotalKgs,
			PricePerKg:  it.PricePerKg,
			TotalPrice:  it.TotalPrice,
		}
	}
	return &LoadingResponse{
		ID:            l.ID,
		EntityType:    string(l.EntityType),
		PartyID:       l.PartyID,
		PartyName:     l.PartyName,
		BillNo:        l.BillNo,
		VehicleNo:     l.VehicleNo,
		Village:       l.Village,
		FishCode:      l.FishCode,
		Date:          l.Date,
		TotalTrays:    l.TotalTrays,
		TotalLooseKgs: l.TotalLooseKgs,
		TotalTrayKgs:  l.TotalTrayKgs,
		TotalKgs:      l.TotalKgs,
		GrandTotal:    l.GrandTotal,
		Items:         items,
		CreatedAt:     l.CreatedAt,
	}
}

// LoadingsFromDomain converts domain loadings to responses.
func LoadingsFromDomain(loadings []*domain.Loading) []*LoadingResponse {
	result := make([]*LoadingResponse, len(loadings))
	for i, l := range loadings {
		result[i] = LoadingFromDomain(l)
	}
	return result
}

// ListLoadingsResponse wraps a page of loadings.
type ListLoadingsResponse struct {
	Loadings []*LoadingResponse `json:"loadings"`
	Total    int64              `json:"total"`
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID          string          `json:"id"`
	PartyType   string          `json:"party_type"`
	PartyID     string          `json:"party_id"`
	PartyName   string          `json:"party_name"`
	AppliedToID string          `json:"applied_to_id,omitempty"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Mode        string          `json:"mode"`
	Reference   string          `json:"reference,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PaymentFromDomain converts a domain payment to a response.
func PaymentFromDomain(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:          p.ID,
		PartyType:   string(p.PartyType),
		PartyID:     p.PartyID,
		PartyName:   p.PartyName,
		AppliedToID: p.AppliedToID,
		Date:        p.Date,
		Amount:      p.Amount,
		Mode:        string(p.Mode),
		Reference:   p.Reference,
		CreatedAt:   p.CreatedAt,
	}
}

// PaymentsFromDomain converts domain payments to responses.
func PaymentsFromDomain(payments []*domain.Payment) []*PaymentResponse {
	result := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = PaymentFromDomain(p)
	}
	return result
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments []*PaymentResponse `json:"payments"`
	Total    int64              `json:"total"`
}

// PartyBalanceResponse represents one party's billed/paid/due row.
type PartyBalanceResponse struct {
	PartyID   string          `json:"party_id"`
	PartyName string          `json:"party_name"`
	Billed    decimal.Decimal `json:"billed"`
	Paid      decimal.Decimal `json:"paid"`
	Due       decimal.Decimal `json:"due"`
}

// PartyBalancesFromDomain converts domain balances to responses.
func PartyBalancesFromDomain(balances []domain.PartyBalance) []PartyBalanceResponse {
	result := make([]PartyBalanceResponse, len(balances))
	for i, b := range balances {
		result[i] = PartyBalanceResponse{
			PartyID:   b.PartyID,
			PartyName: b.PartyName,
			Billed:    b.Billed,
			Paid:      b.Paid,
			Due:       b.Due,
		}
	}
	return result
}

// PackingResponse represents a packing record in API responses.
type PackingResponse struct {
	ID             string          `json:"id"`
	BillNo         string          `json:"bill_no"`
	Mode           string          `json:"mode"`
	SourceRecordID string          `json:"source_record_id,omitempty"`
	Workers        int             `json:"workers"`
	Temperature    decimal.Decimal `json:"temperature"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PackingFromDomain converts a domain packing record to a response.
func PackingFromDomain(p *domain.PackingRecord) *PackingResponse {
	return &PackingResponse{
		ID:             p.ID,
		BillNo:         p.BillNo,
		Mode:           string(p.Mode),
		SourceRecordID: p.SourceRecordID,
		Workers:        p.Workers,
		Temperature:    p.Temperature,
		TotalAmount:    p.TotalAmount,
		CreatedAt:      p.CreatedAt,
	}
}

// PackingsFromDomain converts domain packing records to responses.
func PackingsFromDomain(records []*domain.PackingRecord) []*PackingResponse {
	result := make([]*PackingResponse, len(records))
	for i, p := range records {
		result[i] = PackingFromDomain(p)
	}
	return result
}

// BillNumberResponse represents an allocated or previewed bill number.
type BillNumberResponse struct {
	BillNo   string `json:"bill_no"`
	Sequence int64  `json:"sequence"`
}

// BillNumberFromDomain converts a domain bill number to a response.
func BillNumberFromDomain(b domain.BillNumber) BillNumberResponse {
	return BillNumberResponse{
		BillNo:   b.BillNo,
		Sequence: b.Sequence,
	}
}

// VehicleResponse represents a vehicle in API responses.
type VehicleResponse struct {
	ID               string          `json:"id"`
	VehicleNumber    string          `json:"vehicle_number"`
	Ownership        string          `json:"ownership"`
	Manufacturer     string          `json:"manufacturer,omitempty"`
	Model            string          `json:"model,omitempty"`
	FuelType         string          `json:"fuel_type,omitempty"`
	CapacityTons     decimal.Decimal `json:"capacity_tons"`
	RentalAgency     string          `json:"rental_agency,omitempty"`
	RentalRatePerDay decimal.Decimal `json:"rental_rate_per_day"`
	AssignedDriverID string          `json:"assigned_driver_id,omitempty"`
	Remarks          string          `json:"remarks,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// VehicleFromDomain converts a domain vehicle to a response.
func VehicleFromDomain(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:               v.ID,
		VehicleNumber:    v.VehicleNumber,
		Ownership:        string(v.Ownership),
		Manufacturer:     v.Manufacturer,
		Model:            v.Model,
		FuelType:         v.FuelType,
		CapacityTons:     v.CapacityTons,
		RentalAgency:     v.RentalAgency,
		RentalRatePerDay: v.RentalRatePerDay,
		AssignedDriverID: v.AssignedDriverID,
		Remarks:          v.Remarks,
		CreatedAt:        v.CreatedAt,
	}
}

// VehiclesFromDomain converts domain vehicles to responses.
func VehiclesFromDomain(vehicles []*domain.Vehicle) []*VehicleResponse {
	result := make([]*VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		result[i] = VehicleFromDomain(v)
	}
	return result
}

// DriverResponse represents a driver in API responses.
type DriverResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	LicenseNumber     string    `json:"license_number"`
	Address           string    `json:"address"`
	Age               int       `json:"age"`
	AadharNumber      string    `json:"aadhar_number"`
	AssignedVehicleID string    `json:"assigned_vehicle_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// DriverFromDomain converts a domain driver to a response.
func DriverFromDomain(d *domain.Driver) *DriverResponse {
	return &DriverResponse{
		ID:                d.ID,
		Name:              d.Name,
		Phone:             d.Phone,
		LicenseNumber:     d.LicenseNumber,
		Address:           d.Address,
		Age:               d.Age,
		AadharNumber:      d.AadharNumber,
		AssignedVehicleID: d.AssignedVehicleID,
		CreatedAt:         d.CreatedAt,
	}
}

// DriversFromDomain converts domain drivers to responses.
func DriversFromDomain(drivers []*domain.Driver) []*DriverResponse {
	result := make([]*DriverResponse, len(drivers))
	for i, d := range drivers {
		result[i] = DriverFromDomain(d)
	}
	return result
}

// VarietyResponse is one registry entry in API responses.
type VarietyResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// VarietiesFromDomain converts registry entries to responses.
func VarietiesFromDomain(varieties []domain.FishVariety) []VarietyResponse {
	result := make([]VarietyResponse, len(varieties))
	for i, v := range varieties {
		result[i] = VarietyResponse{Code: v.Code, Name: v.Name}
	}
	return result
}

// TodayResponse is the same-day slice of the dashboard response.
type TodayResponse struct {
	Sales            decimal.Decimal `json:"sales"`
	Purchase         decimal.Decimal `json:"purchase"`
	PendingShipments int64           `json:"pending_shipments"`
	Outstanding      decimal.Decimal `json:"outstanding"`
}

// DayPointResponse is one point on the weekly series.
type DayPointResponse struct {
	Label    string          `json:"label"`
	Sales    decimal.Decimal `json:"sales"`
	Purchase decimal.Decimal `json:"purchase"`
}

// VarietyKgsResponse is one variety's weight total.
type VarietyKgsResponse struct {
	Code string          `json:"code"`
	Kgs  decimal.Decimal `json:"kgs"`
}

// AgeingBucketResponse is one ageing bucket total.
type AgeingBucketResponse struct {
	Bucket string          `json:"bucket"`
	Amount decimal.Decimal `json:"amount"`
}

// DashboardResponse represents the dashboard rollup in API responses.
type DashboardResponse struct {
	Today         TodayResponse          `json:"today"`
	Weekly        []DayPointResponse     `json:"weekly"`
	TopVarieties  []VarietyKgsResponse   `json:"top_varieties"`
	Ageing        []AgeingBucketResponse `json:"ageing"`
	FishVarieties []VarietyResponse      `json:"fish_varieties"`
}

// DashboardFromDomain converts domain dashboard metrics to a response.
func DashboardFromDomain(m *domain.DashboardMetrics) *DashboardResponse {
	weekly := make([]DayPointResponse, len(m.Weekly))
	for i, p := range m.Weekly {
		weekly[i] = DayPointResponse{Label: p.Label, Sales: p.Sales, Purchase: p.Purchase}
	}

	varieties := make([]VarietyKgsResponse, len(m.TopVarieties))
	for i, v := range m.TopVarieties {
		varieties[i] = VarietyKgsResponse{Code: v.Code, Kgs: v.Kgs}
	}

	ageing := make([]AgeingBucketResponse, len(m.Ageing))
	for i, b := range m.Ageing {
		ageing[i] = AgeingBucketResponse{Bucket: b.Bucket, Amount: b.Amount}
	}

	return &DashboardResponse{
		Today: TodayResponse{
			Sales:            m.Today.Sales,
			Purchase:         m.Today.Purchase,
			PendingShipments: m.Today.PendingShipments,
			Outstanding:      m.Today.Outstanding,
		},
		Weekly:        weekly,
		TopVarieties:  varieties,
		Ageing:        ageing,
		FishVarieties: VarietiesFromDomain(m.Varieties),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
