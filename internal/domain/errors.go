package domain

import "errors"

var (
	// Sequence errors
	ErrUnknownEntityType  = errors.New("unknown entity type")
	ErrSequenceConflict   = errors.New("sequence allocation conflict, retry")
	ErrSequenceExhausted  = errors.New("sequence allocation failed after retries")
	ErrCounterUnavailable = errors.New("sequence counter store unavailable")

	// Loading errors
	ErrLoadingNotFound = errors.New("loading not found")
	ErrMissingVehicle  = errors.New("vehicle number is required")
	ErrMissingParty    = errors.New("party name is required")
	ErrNoItems         = errors.New("at least one item is required")
	ErrDuplicateBillNo = errors.New("bill number already issued")

	// Payment errors
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	ErrInvalidPartyType   = errors.New("invalid party type")
	ErrInvalidDate        = errors.New("invalid date")

	// Packing errors
	ErrPackingNotFound    = errors.New("packing record not found")
	ErrInvalidPackingMode = errors.New("packing mode must be loading or unloading")

	// Party errors
	ErrPartyNotFound = errors.New("party not found")

	// Fleet errors
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrDriverNotFound   = errors.New("driver not found")
	ErrUnknownVehicle   = errors.New("vehicle is not registered")
	ErrDuplicateVehicle = errors.New("vehicle number already exists")
	ErrDuplicateDriver  = errors.New("driver already exists")
	ErrDriverAssigned   = errors.New("driver is already assigned to a vehicle")
	ErrVehicleHasDriver = errors.New("vehicle already has a driver assigned")
	ErrNoDriverAssigned = errors.New("vehicle has no assigned driver")
	ErrInvalidOwnership = errors.New("ownership must be OWN or RENT")
	ErrMissingRental    = errors.New("rental agency and daily rate are required")
	ErrInvalidDriver    = errors.New("driver details are incomplete")

	// Variety errors
	ErrDuplicateVariety = errors.New("variety code already exists")
	ErrInvalidVariety   = errors.New("variety code and name are required")
)
