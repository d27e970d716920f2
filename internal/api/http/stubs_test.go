package http_test

import (
	"context"
	"fmt"
	"time"

	api "ecorent-backend/internal/api/http"
	"ecorent-backend/internal/domain"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

func conflict(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrConflict, msg)
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
}

// Function-backed stubs so each test wires only the call its route exercises.

type stubClientService struct {
	createFn  func(ctx context.Context, name, dni, phone, email string) (*domain.Client, error)
	updateFn  func(ctx context.Context, id int64, name, phone, email string) (*domain.Client, error)
	deleteFn  func(ctx context.Context, id int64) error
	findFn    func(ctx context.Context, dni string) (*domain.Client, error)
	listFn    func(ctx context.Context) ([]domain.Client, error)
}

func (s *stubClientService) CreateClient(ctx context.Context, name, dni, phone, email string) (*domain.Client, error) {
	return s.createFn(ctx, name, dni, phone, email)
}
func (s *stubClientService) UpdateClient(ctx context.Context, id int64, name, phone, email string) (*domain.Client, error) {
	return s.updateFn(ctx, id, name, phone, email)
}
func (s *stubClientService) DeleteClient(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}
func (s *stubClientService) FindByDNI(ctx context.Context, dni string) (*domain.Client, error) {
	return s.findFn(ctx, dni)
}
func (s *stubClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.listFn(ctx)
}

type stubEquipmentService struct {
	createFn       func(ctx context.Context, name, category, internalCode string, pricePerDay decimal.Decimal) (*domain.Equipment, error)
	updateFn       func(ctx context.Context, id int64, name, category string, pricePerDay decimal.Decimal) (*domain.Equipment, error)
	deleteFn       func(ctx context.Context, id int64) error
	changeStatusFn func(ctx context.Context, id int64, status domain.EquipmentStatus) (*domain.Equipment, error)
	listFn         func(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error)
}

func (s *stubEquipmentService) CreateEquipment(ctx context.Context, name, category, internalCode string, pricePerDay decimal.Decimal) (*domain.Equipment, error) {
	return s.createFn(ctx, name, category, internalCode, pricePerDay)
}
func (s *stubEquipmentService) UpdateEquipment(ctx context.Context, id int64, name, category string, pricePerDay decimal.Decimal) (*domain.Equipment, error) {
	return s.updateFn(ctx, id, name, category, pricePerDay)
}
func (s *stubEquipmentService) DeleteEquipment(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}
func (s *stubEquipmentService) ChangeStatus(ctx context.Context, id int64, status domain.EquipmentStatus) (*domain.Equipment, error) {
	return s.changeStatusFn(ctx, id, status)
}
func (s *stubEquipmentService) ListEquipment(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error) {
	return s.listFn(ctx, status)
}

type stubRentalService struct {
	createFn  func(ctx context.Context, clientDNI string, equipmentID int64, start, end time.Time) (*domain.Rental, error)
	returnFn  func(ctx context.Context, rentalID int64) (*domain.Rental, *domain.Equipment, error)
	historyFn func(ctx context.Context, dni string) ([]domain.Rental, error)
}

func (s *stubRentalService) CreateRental(ctx context.Context, clientDNI string, equipmentID int64, start, end time.Time) (*domain.Rental, error) {
	return s.createFn(ctx, clientDNI, equipmentID, start, end)
}
func (s *stubRentalService) RegisterReturn(ctx context.Context, rentalID int64) (*domain.Rental, *domain.Equipment, error) {
	return s.returnFn(ctx, rentalID)
}
func (s *stubRentalService) GetClientHistory(ctx context.Context, dni string) ([]domain.Rental, error) {
	return s.historyFn(ctx, dni)
}

type stubPaymentService struct {
	registerFn func(ctx context.Context, rentalID int64, amount decimal.Decimal) (*domain.Payment, error)
	statusFn   func(ctx context.Context, rentalID int64) (domain.PaymentStatus, error)
	listFn     func(ctx context.Context, rentalID int64) ([]domain.Payment, error)
}

func (s *stubPaymentService) RegisterPayment(ctx context.Context, rentalID int64, amount decimal.Decimal) (*domain.Payment, error) {
	return s.registerFn(ctx, rentalID, amount)
}
func (s *stubPaymentService) GetPaymentStatus(ctx context.Context, rentalID int64) (domain.PaymentStatus, error) {
	return s.statusFn(ctx, rentalID)
}
func (s *stubPaymentService) ListPayments(ctx context.Context, rentalID int64) ([]domain.Payment, error) {
	return s.listFn(ctx, rentalID)
}

type stubReportService struct {
	incomeFn        func(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	topEquipmentFn  func(ctx context.Context) ([]domain.EquipmentRentalCount, error)
	topClientsFn    func(ctx context.Context) ([]domain.ClientRentalCount, error)
	activeRentalsFn func(ctx context.Context) ([]domain.Rental, error)
}

func (s *stubReportService) GetIncomeBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return s.incomeFn(ctx, start, end)
}
func (s *stubReportService) GetTopRentedEquipment(ctx context.Context) ([]domain.EquipmentRentalCount, error) {
	return s.topEquipmentFn(ctx)
}
func (s *stubReportService) GetTopClients(ctx context.Context) ([]domain.ClientRentalCount, error) {
	return s.topClientsFn(ctx)
}
func (s *stubReportService) GetActiveRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.activeRentalsFn(ctx)
}

type stubServices struct {
	clients   *stubClientService
	equipment *stubEquipmentService
	rentals   *stubRentalService
	payments  *stubPaymentService
	reports   *stubReportService
}

func newStubServices() *stubServices {
	return &stubServices{
		clients:   &stubClientService{},
		equipment: &stubEquipmentService{},
		rentals:   &stubRentalService{},
		payments:  &stubPaymentService{},
		reports:   &stubReportService{},
	}
}

func (s *stubServices) router() *mux.Router {
	return api.NewRouter(s.clients, s.equipment, s.rentals, s.payments, s.reports)
}
