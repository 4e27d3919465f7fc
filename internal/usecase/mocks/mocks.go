package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fishtrade/internal/domain"
	"github.com/iho/fishtrade/internal/usecase"
)

// MockSequenceRepository is a mock implementation of SequenceRepository.
// Its default behavior is an in-memory atomic counter per (entity type, year).
type MockSequenceRepository struct {
	mu       sync.Mutex
	counters map[string]int64

	GetFunc         func(ctx context.Context, entityType domain.EntityType, year int) (int64, error)
	IncrementFunc   func(ctx context.Context, entityType domain.EntityType, year int) (int64, error)
	IncrementTxFunc func(ctx context.Context, tx usecase.Transaction, entityType domain.EntityType, year int) (int64, error)
	SeedFunc        func(ctx context.Context, entityType domain.EntityType, year int, value int64) error
}

func NewMockSequenceRepository() *MockSequenceRepository {
	return &MockSequenceRepository{
		counters: make(map[string]int64),
	}
}

func counterKey(entityType domain.EntityType, year int) string {
	return fmt.Sprintf("%s:%d", entityType, year)
}

func (m *MockSequenceRepository) Get(ctx context.Context, entityType domain.EntityType, year int) (int64, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, entityType, year)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[counterKey(entityType, year)], nil
}

func (m *MockSequenceRepository) Increment(ctx context.Context, entityType domain.EntityType, year int) (int64, error) {
	if m.IncrementFunc != nil {
		return m.IncrementFunc(ctx, entityType, year)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := counterKey(entityType, year)
	m.counters[key]++
	return m.counters[key], nil
}

func (m *MockSequenceRepository) IncrementTx(ctx context.Context, tx usecase.Transaction, entityType domain.EntityType, year int) (int64, error) {
	if m.IncrementTxFunc != nil {
		return m.IncrementTxFunc(ctx, tx, entityType, year)
	}
	return m.Increment(ctx, entityType, year)
}

func (m *MockSequenceRepository) Seed(ctx context.Context, entityType domain.EntityType, year int, value int64) error {
	if m.SeedFunc != nil {
		return m.SeedFunc(ctx, entityType, year, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := counterKey(entityType, year)
	if value > m.counters[key] {
		m.counters[key] = value
	}
	return nil
}

// MockLoadingRepository is a mock implementation of LoadingRepository.
type MockLoadingRepository struct {
	mu       sync.RWMutex
	loadings map[string]*domain.Loading
	order    []string

	CreateFunc               func(ctx context.Context, tx usecase.Transaction, loading *domain.Loading) error
	GetByIDFunc              func(ctx context.Context, id string) (*domain.Loading, error)
	ListFunc                 func(ctx context.Context, entityType domain.EntityType, limit, offset int) ([]*domain.Loading, error)
	LastBillNoFunc           func(ctx context.Context, entityType domain.EntityType) (string, error)
	SumGrandTotalFunc        func(ctx context.Context, entityType domain.EntityType) (decimal.Decimal, error)
	SumGrandTotalBetweenFunc func(ctx context.Context, entityType domain.EntityType, from, to time.Time) (decimal.Decimal, error)
	CountBetweenFunc         func(ctx context.Context, entityType domain.EntityType, from, to time.Time) (int64, error)
	ListDateTotalsFunc       func(ctx context.Context, entityType domain.EntityType, from, to time.Time) ([]domain.DateAmount, error)
	ListItemKgsBetweenFunc   func(ctx context.Context, entityType domain.EntityType, from, to time.Time) ([]domain.VarietyKgs, error)
	SumGrandTotalByPartyFunc func(ctx context.Context, entityType domain.EntityType) ([]domain.PartyAmount, error)
	ListForAgeingFunc        func(ctx context.Context, entityType domain.EntityType) ([]domain.AgeingRecord, error)
}

func NewMockLoadingRepository() *MockLoadingRepository {
	return &MockLoadingRepository{
		loadings: make(map[string]*domain.Loading),
	}
}

func (m *MockLoadingRepository) Create(ctx context.Context, tx usecase.Transaction, loading *domain.Loading) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, loading)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.order {
		existing := m.loadings[id]
		if existing.EntityType == loading.EntityType && existing.BillNo == loading.BillNo {
			return domain.ErrDuplicateBillNo
		}
	}
	m.loadings[loading.ID] = loading
	m.order = append(m.order, loading.ID)
	return nil
}

func (m *MockLoadingRepository) GetByID(ctx context.Context, id string) (*domain.Loading, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if loading, ok := m.loadings[id]; ok {
		return loading, nil
	}
	return nil, domain.ErrLoadingNotFound
}

func (m *MockLoadingRepository) List(ctx context.Context, entityType domain.EntityType, limit, offset int) ([]*domain.Loading, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, entityType, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Loading
	for i := len(m.order) - 1; i >= 0; i-- {
		loading := m.loadings[m.order[i]]
		if loading.EntityType == entityType {
			result = append(result, loading)
		}
	}
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockLoadingRepository) LastBillNo(ctx context.Context, entityType domain.EntityType) (string, error) {
	if m.LastBillNoFunc != nil {
		return m.LastBillNoFunc(ctx, entityType)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.order) - 1; i >= 0; i-- {
		loading := m.loadings[m.order[i]]
		if loading.EntityType == entityType {
			return loading.BillNo, nil
		}
	}
	return "", nil
}

func (m *MockLoadingRepository) SumGrandTotal(ctx context.Context, entityType domain.EntityType) (decimal.Decimal, error) {
	if m.SumGrandTotalFunc != nil {
		return m.SumGrandTotalFunc(ctx, entityType)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, id := range m.order {
		if loading := m.loadings[id]; loading.EntityType == entityType {
			total = total.Add(loading.GrandTotal)
		}
	}
	return total, nil
}

func (m *MockLoadingRepository) SumGrandTotalBetween(ctx context.Context, entityType domain.EntityType, from, to time.Time) (decimal.Decimal, error) {
	if m.SumGrandTotalBetweenFunc != nil {
		return m.SumGrandTotalBetweenFunc(ctx, entityType, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, id := range m.order {
		loading := m.loadings[id]
		if loading.EntityType == entityType && inWindow(loading.Date, from, to) {
			total = total.Add(loading.GrandTotal)
		}
	}
	return total, nil
}

func (m *MockLoadingRepository) CountBetween(ctx context.Context, entityType domain.EntityType, from, to time.Time) (int64, error) {
	if m.CountBetweenFunc != nil {
		return m.CountBetweenFunc(ctx, entityType, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, id := range m.order {
		loading := m.loadings[id]
		if loading.EntityType == entityType && inWindow(loading.Date, from, to) {
			count++
		}
	}
	return count, nil
}

func (m *MockLoadingRepository) ListDateTotals(ctx context.Context, entityType domain.EntityType, from, to time.Time) ([]domain.DateAmount, error) {
	if m.ListDateTotalsFunc != nil {
		return m.ListDateTotalsFunc(ctx, entityType, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var rows []domain.DateAmount
	for _, id := range m.order {
		loading := m.loadings[id]
		if loading.EntityType == entityType && inWindow(loading.Date, from, to) {
			rows = append(rows, domain.DateAmount{Date: loading.Date, Amount: loading.GrandTotal})
		}
	}
	return rows, nil
}

func (m *MockLoadingRepository) ListItemKgsBetween(ctx context.Context, entityType domain.EntityType, from, to time.Time) ([]domain.VarietyKgs, error) {
	if m.ListItemKgsBetweenFunc != nil {
		return m.ListItemKgsBetweenFunc(ctx, entityType, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var rows []domain.VarietyKgs
	for _, id := range m.order {
		loading := m.loadings[id]
		if loading.EntityType != entityType || !inWindow(loading.Date, from, to) {
			continue
		}
		for _, item := range loading.Items {
			rows = append(rows, domain.VarietyKgs{Code: item.VarietyCode, Kgs: item.TotalKgs})
		}
	}
	return rows, nil
}

func (m *MockLoadingRepository) SumGrandTotalByParty(ctx context.Context, entityType domain.EntityType) ([]domain.PartyAmount, error) {
	if m.SumGrandTotalByPartyFunc != nil {
		return m.SumGrandTotalByPartyFunc(ctx, entityType)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	totals := make(map[string]*domain.PartyAmount)
	var order []string
	for _, id := range m.order {
		loading := m.loadings[id]
		if loading.EntityType != entityType {
			continue
		}
		if row, ok := totals[loading.PartyID]; ok {
			row.Amount = row.Amount.Add(loading.GrandTotal)
			continue
		}
		totals[loading.PartyID] = &domain.PartyAmount{
			PartyID:   loading.PartyID,
			PartyName: loading.PartyName,
			Amount:    loading.GrandTotal,
		}
		order = append(order, loading.PartyID)
	}
	rows := make([]domain.PartyAmount, 0, len(order))
	for _, partyID := range order {
		rows = append(rows, *totals[partyID])
	}
	return rows, nil
}

func (m *MockLoadingRepository) ListForAgeing(ctx context.Context, entityType domain.EntityType) ([]domain.AgeingRecord, error) {
	if m.ListForAgeingFunc != nil {
		return m.ListForAgeingFunc(ctx, entityType)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var rows []domain.AgeingRecord
	for _, id := range m.order {
		loading := m.loadings[id]
		if loading.EntityType == entityType {
			rows = append(rows, domain.AgeingRecord{ID: loading.ID, Date: loading.Date, Amount: loading.GrandTotal})
		}
	}
	return rows, nil
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments []*domain.Payment

	CreateFunc      func(ctx context.Context, payment *domain.Payment) error
	ListFunc        func(ctx context.Context, partyType domain.PartyType, limit, offset int) ([]*domain.Payment, error)
	SumByPartyFunc  func(ctx context.Context, partyType domain.PartyType) ([]domain.PartyAmount, error)
	SumAllFunc      func(ctx context.Context, partyType domain.PartyType) (decimal.Decimal, error)
	ListAppliedFunc func(ctx context.Context) ([]domain.AppliedAmount, error)
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{}
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = append(m.payments, payment)
	return nil
}

func (m *MockPaymentRepository) List(ctx context.Context, partyType domain.PartyType, limit, offset int) ([]*domain.Payment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, partyType, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Payment
	for i := len(m.payments) - 1; i >= 0; i-- {
		if m.payments[i].PartyType == partyType {
			result = append(result, m.payments[i])
		}
	}
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockPaymentRepository) SumByParty(ctx context.Context, partyType domain.PartyType) ([]domain.PartyAmount, error) {
	if m.SumByPartyFunc != nil {
		return m.SumByPartyFunc(ctx, partyType)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	totals := make(map[string]*domain.PartyAmount)
	var order []string
	for _, payment := range m.payments {
		if payment.PartyType != partyType {
			continue
		}
		if row, ok := totals[payment.PartyID]; ok {
			row.Amount = row.Amount.Add(payment.Amount)
			continue
		}
		totals[payment.PartyID] = &domain.PartyAmount{
			PartyID:   payment.PartyID,
			PartyName: payment.PartyName,
			Amount:    payment.Amount,
		}
		order = append(order, payment.PartyID)
	}
	rows := make([]domain.PartyAmount, 0, len(order))
	for _, partyID := range order {
		rows = append(rows, *totals[partyID])
	}
	return rows, nil
}

func (m *MockPaymentRepository) SumAll(ctx context.Context, partyType domain.PartyType) (decimal.Decimal, error) {
	if m.SumAllFunc != nil {
		return m.SumAllFunc(ctx, partyType)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, payment := range m.payments {
		if payment.PartyType == partyType {
			total = total.Add(payment.Amount)
		}
	}
	return total, nil
}

func (m *MockPaymentRepository) ListApplied(ctx context.Context) ([]domain.AppliedAmount, error) {
	if m.ListAppliedFunc != nil {
		return m.ListAppliedFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, payment := range m.payments {
		if payment.AppliedToID == "" {
			continue
		}
		if _, ok := totals[payment.AppliedToID]; !ok {
			order = append(order, payment.AppliedToID)
		}
		totals[payment.AppliedToID] = totals[payment.AppliedToID].Add(payment.Amount)
	}
	rows := make([]domain.AppliedAmount, 0, len(order))
	for _, recordID := range order {
		rows = append(rows, domain.AppliedAmount{RecordID: recordID, Amount: totals[recordID]})
	}
	return rows, nil
}

// MockPackingRepository is a mock implementation of PackingRepository.
type MockPackingRepository struct {
	mu      sync.RWMutex
	records []*domain.PackingRecord

	CreateFunc     func(ctx context.Context, tx usecase.Transaction, record *domain.PackingRecord) error
	ListFunc       func(ctx context.Context, limit, offset int) ([]*domain.PackingRecord, error)
	LastBillNoFunc func(ctx context.Context) (string, error)
}

func NewMockPackingRepository() *MockPackingRepository {
	return &MockPackingRepository{}
}

func (m *MockPackingRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.PackingRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *MockPackingRepository) List(ctx context.Context, limit, offset int) ([]*domain.PackingRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.PackingRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		result = append(result, m.records[i])
	}
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockPackingRepository) LastBillNo(ctx context.Context) (string, error) {
	if m.LastBillNoFunc != nil {
		return m.LastBillNoFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.records) == 0 {
		return "", nil
	}
	return m.records[len(m.records)-1].BillNo, nil
}

// MockPartyRepository is a mock implementation of PartyRepository.
type MockPartyRepository struct {
	mu      sync.Mutex
	parties map[string]*domain.Party
	nextID  int

	GetOrCreateFunc func(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error)
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Party, error)
	ListFunc        func(ctx context.Context, partyType domain.PartyType) ([]*domain.Party, error)
}

func NewMockPartyRepository() *MockPartyRepository {
	return &MockPartyRepository{
		parties: make(map[string]*domain.Party),
	}
}

func (m *MockPartyRepository) GetOrCreate(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, partyType, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, party := range m.parties {
		if party.Type == partyType && party.Name == name {
			return party, nil
		}
	}
	m.nextID++
	party := &domain.Party{
		ID:        fmt.Sprintf("party-%d", m.nextID),
		Type:      partyType,
		Name:      name,
		CreatedAt: time.Now(),
	}
	m.parties[party.ID] = party
	return party, nil
}

func (m *MockPartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if party, ok := m.parties[id]; ok {
		return party, nil
	}
	return nil, domain.ErrPartyNotFound
}

func (m *MockPartyRepository) List(ctx context.Context, partyType domain.PartyType) ([]*domain.Party, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, partyType)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*domain.Party
	for _, party := range m.parties {
		if party.Type == partyType {
			result = append(result, party)
		}
	}
	return result, nil
}

// MockVehicleRepository is a mock implementation of VehicleRepository.
type MockVehicleRepository struct {
	mu       sync.Mutex
	vehicles map[string]*domain.Vehicle
	order    []string

	CreateFunc         func(ctx context.Context, vehicle *domain.Vehicle) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Vehicle, error)
	ListFunc           func(ctx context.Context) ([]*domain.Vehicle, error)
	ExistsByNumberFunc func(ctx context.Context, vehicleNo string) (bool, error)
	SetDriverFunc      func(ctx context.Context, vehicleID, driverID string) error
}

func NewMockVehicleRepository() *MockVehicleRepository {
	return &MockVehicleRepository{
		vehicles: make(map[string]*domain.Vehicle),
	}
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, vehicle)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.order {
		if m.vehicles[id].VehicleNumber == vehicle.VehicleNumber {
			return domain.ErrDuplicateVehicle
		}
	}
	m.vehicles[vehicle.ID] = vehicle
	m.order = append(m.order, vehicle.ID)
	return nil
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if vehicle, ok := m.vehicles[id]; ok {
		return vehicle, nil
	}
	return nil, domain.ErrVehicleNotFound
}

func (m *MockVehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*domain.Vehicle, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		result = append(result, m.vehicles[m.order[i]])
	}
	return result, nil
}

func (m *MockVehicleRepository) ExistsByNumber(ctx context.Context, vehicleNo string) (bool, error) {
	if m.ExistsByNumberFunc != nil {
		return m.ExistsByNumberFunc(ctx, vehicleNo)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	normalized := domain.NormalizeVehicleNo(vehicleNo)
	for _, id := range m.order {
		if m.vehicles[id].VehicleNumber == normalized {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockVehicleRepository) SetDriver(ctx context.Context, vehicleID, driverID string) error {
	if m.SetDriverFunc != nil {
		return m.SetDriverFunc(ctx, vehicleID, driverID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	vehicle, ok := m.vehicles[vehicleID]
	if !ok {
		return domain.ErrVehicleNotFound
	}
	vehicle.AssignedDriverID = driverID
	return nil
}

// MockDriverRepository is a mock implementation of DriverRepository. Its
// availability view derives from a companion MockVehicleRepository when one
// is attached via Vehicles.
type MockDriverRepository struct {
	mu      sync.Mutex
	drivers map[string]*domain.Driver
	order   []string

	Vehicles *MockVehicleRepository

	CreateFunc        func(ctx context.Context, driver *domain.Driver) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Driver, error)
	ListFunc          func(ctx context.Context) ([]*domain.Driver, error)
	ListAvailableFunc func(ctx context.Context) ([]*domain.Driver, error)
}

func NewMockDriverRepository() *MockDriverRepository {
	return &MockDriverRepository{
		drivers: make(map[string]*domain.Driver),
	}
}

func (m *MockDriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, driver)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.order {
		existing := m.drivers[id]
		if existing.LicenseNumber == driver.LicenseNumber || existing.Phone == driver.Phone || existing.AadharNumber == driver.AadharNumber {
			return domain.ErrDuplicateDriver
		}
	}
	m.drivers[driver.ID] = driver
	m.order = append(m.order, driver.ID)
	return nil
}

func (m *MockDriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	driver, ok := m.drivers[id]
	m.mu.Unlock()
	if !ok {
		return nil, domain.ErrDriverNotFound
	}
	driver.AssignedVehicleID = m.vehicleOf(driver.ID)
	return driver, nil
}

func (m *MockDriverRepository) List(ctx context.Context) ([]*domain.Driver, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*domain.Driver, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		result = append(result, m.drivers[m.order[i]])
	}
	return result, nil
}

func (m *MockDriverRepository) ListAvailable(ctx context.Context) ([]*domain.Driver, error) {
	if m.ListAvailableFunc != nil {
		return m.ListAvailableFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*domain.Driver
	for _, id := range m.order {
		if m.vehicleOf(id) == "" {
			result = append(result, m.drivers[id])
		}
	}
	return result, nil
}

func (m *MockDriverRepository) vehicleOf(driverID string) string {
	if m.Vehicles == nil {
		return ""
	}
	m.Vehicles.mu.Lock()
	defer m.Vehicles.mu.Unlock()
	for _, id := range m.Vehicles.order {
		if m.Vehicles.vehicles[id].AssignedDriverID == driverID {
			return id
		}
	}
	return ""
}

// MockVarietyRepository is a mock implementation of VarietyRepository.
type MockVarietyRepository struct {
	mu        sync.Mutex
	varieties []domain.FishVariety

	CreateFunc func(ctx context.Context, variety domain.FishVariety) error
	ListFunc   func(ctx context.Context) ([]domain.FishVariety, error)
}

func NewMockVarietyRepository() *MockVarietyRepository {
	return &MockVarietyRepository{}
}

func (m *MockVarietyRepository) Create(ctx context.Context, variety domain.FishVariety) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, variety)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.varieties {
		if existing.Code == variety.Code {
			return domain.ErrDuplicateVariety
		}
	}
	m.varieties = append(m.varieties, variety)
	return nil
}

func (m *MockVarietyRepository) List(ctx context.Context) ([]domain.FishVariety, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.FishVariety(nil), m.varieties...), nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockRetrier is a mock implementation of Retrier. By default it runs the
// operation once with no retries.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
