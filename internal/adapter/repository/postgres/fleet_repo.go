package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fishtrade/internal/domain"
)

// VehicleRepository implements usecase.VehicleRepository. Vehicle numbers
// are stored normalized (uppercased, no spaces), so lookups are exact
// matches after normalizing the input.
type VehicleRepository struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository creates a new VehicleRepository.
func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

const vehicleColumns = `id, vehicle_number, ownership, manufacturer, model, fuel_type,
	capacity_tons, rental_agency, rental_rate_per_day,
	COALESCE(assigned_driver_id, ''), remarks, created_at`

// Create inserts the vehicle.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO vehicles (
			id, vehicle_number, ownership, manufacturer, model, fuel_type,
			capacity_tons, rental_agency, rental_rate_per_day, remarks, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		vehicle.ID, vehicle.VehicleNumber, string(vehicle.Ownership),
		vehicle.Manufacturer, vehicle.Model, vehicle.FuelType,
		vehicle.CapacityTons, vehicle.RentalAgency, vehicle.RentalRatePerDay,
		vehicle.Remarks, vehicle.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateVehicle
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID retrieves a vehicle by ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id,
	)

	vehicle, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return vehicle, nil
}

// List returns the fleet, newest first.
func (r *VehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, rows.Err()
}

// ExistsByNumber reports whether a vehicle with the number is registered,
// ignoring case and spacing.
func (r *VehicleRepository) ExistsByNumber(ctx context.Context, vehicleNo string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM vehicles WHERE vehicle_number = $1)`,
		domain.NormalizeVehicleNo(vehicleNo),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check vehicle: %w", err)
	}
	return exists, nil
}

// SetDriver writes the assignment column; an empty driverID clears it.
func (r *VehicleRepository) SetDriver(ctx context.Context, vehicleID, driverID string) error {
	var driver any
	if driverID != "" {
		driver = driverID
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE vehicles SET assigned_driver_id = $1 WHERE id = $2`,
		driver, vehicleID,
	)
	if err != nil {
		return fmt.Errorf("set vehicle driver: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	var ownership string

	err := row.Scan(
		&vehicle.ID, &vehicle.VehicleNumber, &ownership,
		&vehicle.Manufacturer, &vehicle.Model, &vehicle.FuelType,
		&vehicle.CapacityTons, &vehicle.RentalAgency, &vehicle.RentalRatePerDay,
		&vehicle.AssignedDriverID, &vehicle.Remarks, &vehicle.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	vehicle.Ownership = domain.VehicleOwnership(ownership)
	return &vehicle, nil
}

// DriverRepository implements usecase.DriverRepository. A driver's current
// vehicle comes from the vehicles side of the relation, so assignment has a
// single source of truth.
type DriverRepository struct {
	pool *pgxpool.Pool
}

// NewDriverRepository creates a new DriverRepository.
func NewDriverRepository(pool *pgxpool.Pool) *DriverRepository {
	return &DriverRepository{pool: pool}
}

const driverColumns = `d.id, d.name, d.phone, d.license_number, d.address, d.age,
	d.aadhar_number, COALESCE(v.id, ''), d.created_at`

const driverJoin = `FROM drivers d LEFT JOIN vehicles v ON v.assigned_driver_id = d.id`

// Create inserts the driver.
func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO drivers (id, name, phone, license_number, address, age, aadhar_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		driver.ID, driver.Name, driver.Phone, driver.LicenseNumber,
		driver.Address, driver.Age, driver.AadharNumber, driver.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateDriver
		}
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

// GetByID retrieves a driver by ID, with their current vehicle if any.
func (r *DriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+driverColumns+` `+driverJoin+` WHERE d.id = $1`, id,
	)

	driver, err := scanDriver(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDriverNotFound
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return driver, nil
}

// List returns all drivers, newest first.
func (r *DriverRepository) List(ctx context.Context) ([]*domain.Driver, error) {
	return r.query(ctx,
		`SELECT `+driverColumns+` `+driverJoin+` ORDER BY d.created_at DESC`,
	)
}

// ListAvailable returns drivers with no vehicle assigned, by name.
func (r *DriverRepository) ListAvailable(ctx context.Context) ([]*domain.Driver, error) {
	return r.query(ctx,
		`SELECT `+driverColumns+` `+driverJoin+` WHERE v.id IS NULL ORDER BY d.name`,
	)
}

func (r *DriverRepository) query(ctx context.Context, sql string) ([]*domain.Driver, error) {
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query drivers: %w", err)
	}
	defer rows.Close()

	var drivers []*domain.Driver
	for rows.Next() {
		driver, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		drivers = append(drivers, driver)
	}

	return drivers, rows.Err()
}

func scanDriver(row pgx.Row) (*domain.Driver, error) {
	var driver domain.Driver
	err := row.Scan(
		&driver.ID, &driver.Name, &driver.Phone, &driver.LicenseNumber,
		&driver.Address, &driver.Age, &driver.AadharNumber,
		&driver.AssignedVehicleID, &driver.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &driver, nil
}
