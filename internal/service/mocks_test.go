package service_test

import (
	"context"
	"time"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) GetByDNI(ctx context.Context, dni string) (*domain.Client, error) {
	args := m.Called(ctx, dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) ExistsByDNI(ctx context.Context, dni string) (bool, error) {
	args := m.Called(ctx, dni)
	return args.Bool(0), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, equipment *domain.Equipment) error {
	args := m.Called(ctx, equipment)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) ExistsByInternalCode(ctx context.Context, internalCode string) (bool, error) {
	args := m.Called(ctx, internalCode)
	return args.Bool(0), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, equipment *domain.Equipment) error {
	args := m.Called(ctx, equipment)
	return args.Error(0)
}
func (m *MockEquipmentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEquipmentRepo) List(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) FindOverlapping(ctx context.Context, equipmentID int64, start, end time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, equipmentID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByClientDNI(ctx context.Context, dni string) ([]domain.Rental, error) {
	args := m.Called(ctx, dni)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ExistsByEquipmentID(ctx context.Context, equipmentID int64) (bool, error) {
	args := m.Called(ctx, equipmentID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) ExistsByClientID(ctx context.Context, clientID int64) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) SumByRentalID(ctx context.Context, rentalID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockPaymentRepo) ListByRentalID(ctx context.Context, rentalID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// stubTxRunner hands the mocked repositories to the transactional closure;
// commit/rollback behavior is not simulated.
type stubTxRunner struct {
	repos repository.Repositories
}

func (s *stubTxRunner) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	return fn(s.repos)
}
