package dto

import (
	"time"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/usecase"
	"github.com/shopspring/decimal"
)

// LoadingItemRequest is one fish-variety line on a loading request.
type LoadingItemRequest struct {
	VarietyCode string          `json:"variety_code"`
	NoTrays     int             `json:"no_trays"`
	LooseKgs    decimal.Decimal `json:"loose_kgs"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"`
}

// CreateLoadingRequest represents a request to create a loading. The entity
// type comes from the URL, not the body.
type CreateLoadingRequest struct {
	PartyName  string               `json:"party_name"`
	VehicleNo  string               `json:"vehicle_no"`
	Village    string               `json:"village,omitempty"`
	FishCode   string               `json:"fish_code,omitempty"`
	Date       time.Time            `json:"date"`
	GrandTotal decimal.Decimal      `json:"grand_total,omitempty"`
	Items      []LoadingItemRequest `json:"items"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLoadingRequest) ToUseCaseInput(entityType domain.EntityType) usecase.CreateLoadingInput {
	items := make([]usecase.LoadingItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = usecase.LoadingItemInput{
			VarietyCode: it.VarietyCode,
			NoTrays:     it.NoTrays,
			LooseKgs:    it.LooseKgs,
			PricePerKg:  it.PricePerKg,
		}
	}
	return usecase.CreateLoadingInput{
		EntityType: entityType,
		PartyName:  r.PartyName,
		VehicleNo:  r.VehicleNo,
		Village:    r.Village,
		FishCode:   r.FishCode,
		Date:       r.Date,
		GrandTotal: r.GrandTotal,
		Items:      items,
	}
}

// RecordPaymentRequest represents a request to record a payment.
type RecordPaymentRequest struct {
	PartyType   string          `json:"party_type"`
	PartyName   string          `json:"party_name"`
	AppliedToID string          `json:"applied_to_id,omitempty"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Mode        string          `json:"mode"`
	Reference   string          `json:"reference,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPaymentRequest) ToUseCaseInput() usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		PartyType:   domain.PartyType(r.PartyType),
		PartyName:   r.PartyName,
		AppliedToID: r.AppliedToID,
		Date:        r.Date,
		Amount:      r.Amount,
		Mode:        domain.PaymentMode(r.Mode),
		Reference:   r.Reference,
	}
}

// RecordPackingRequest represents a request to record a packing operation.
type RecordPackingRequest struct {
	Mode           string          `json:"mode"`
	SourceRecordID string          `json:"source_record_id,omitempty"`
	Workers        int             `json:"workers"`
	Temperature    decimal.Decimal `json:"temperature,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPackingRequest) ToUseCaseInput() usecase.RecordPackingInput {
	return usecase.RecordPackingInput{
		Mode:           domain.PackingMode(r.Mode),
		SourceRecordID: r.SourceRecordID,
		Workers:        r.Workers,
		Temperature:    r.Temperature,
		TotalAmount:    r.TotalAmount,
	}
}

// CreateVehicleRequest represents a request to register a vehicle.
type CreateVehicleRequest struct {
	VehicleNumber    string          `json:"vehicle_number"`
	Ownership        string          `json:"ownership"`
	Manufacturer     string          `json:"manufacturer,omitempty"`
	Model            string          `json:"model,omitempty"`
	FuelType         string          `json:"fuel_type,omitempty"`
	CapacityTons     decimal.Decimal `json:"capacity_tons,omitempty"`
	RentalAgency     string          `json:"rental_agency,omitempty"`
	RentalRatePerDay decimal.Decimal `json:"rental_rate_per_day,omitempty"`
	Remarks          string          `json:"remarks,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateVehicleRequest) ToUseCaseInput() usecase.CreateVehicleInput {
	return usecase.CreateVehicleInput{
		VehicleNumber:    r.VehicleNumber,
		Ownership:        domain.VehicleOwnership(r.Ownership),
		Manufacturer:     r.Manufacturer,
		Model:            r.Model,
		FuelType:         r.FuelType,
		CapacityTons:     r.CapacityTons,
		RentalAgency:     r.RentalAgency,
		RentalRatePerDay: r.RentalRatePerDay,
		Remarks:          r.Remarks,
	}
}

// CreateDriverRequest represents a request to register a driver.
type CreateDriverRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
	Address       string `json:"address"`
	Age           int    `json:"age"`
	AadharNumber  string `json:"aadhar_number"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDriverRequest) ToUseCaseInput() usecase.CreateDriverInput {
	return usecase.CreateDriverInput{
		Name:          r.Name,
		Phone:         r.Phone,
		LicenseNumber: r.LicenseNumber,
		Address:       r.Address,
		Age:           r.Age,
		AadharNumber:  r.AadharNumber,
	}
}

// AssignDriverRequest represents a driver assignment request.
type AssignDriverRequest struct {
	VehicleID string `json:"vehicle_id"`
	DriverID  string `json:"driver_id"`
}

// UnassignDriverRequest represents a driver unassignment request.
type UnassignDriverRequest struct {
	VehicleID string `json:"vehicle_id"`
}

// CreateVarietyRequest represents a request to add a variety to the registry.
type CreateVarietyRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
