package service

import (
	"context"
	"time"

	"ecorent-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type EquipmentService interface {
	CreateEquipment(ctx context.Context, name, category, internalCode string, pricePerDay decimal.Decimal) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, name, category string, pricePerDay decimal.Decimal) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) error
	ChangeStatus(ctx context.Context, id int64, status domain.EquipmentStatus) (*domain.Equipment, error)
	ListEquipment(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error)
}

type ClientService interface {
	CreateClient(ctx context.Context, name, dni, phone, email string) (*domain.Client, error)
	UpdateClient(ctx context.Context, id int64, name, phone, email string) (*domain.Client, error)
	DeleteClient(ctx context.Context, id int64) error
	FindByDNI(ctx context.Context, dni string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, clientDNI string, equipmentID int64, start, end time.Time) (*domain.Rental, error)
	// RegisterReturn flips the rental's returned flag exactly once and frees
	// the equipment; it also returns the equipment so callers can report its
	// new status.
	RegisterReturn(ctx context.Context, rentalID int64) (*domain.Rental, *domain.Equipment, error)
	GetClientHistory(ctx context.Context, dni string) ([]domain.Rental, error)
}

type PaymentService interface {
	RegisterPayment(ctx context.Context, rentalID int64, amount decimal.Decimal) (*domain.Payment, error)
	GetPaymentStatus(ctx context.Context, rentalID int64) (domain.PaymentStatus, error)
	ListPayments(ctx context.Context, rentalID int64) ([]domain.Payment, error)
}

type ReportService interface {
	GetIncomeBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	GetTopRentedEquipment(ctx context.Context) ([]domain.EquipmentRentalCount, error)
	GetTopClients(ctx context.Context) ([]domain.ClientRentalCount, error)
	GetActiveRentals(ctx context.Context) ([]domain.Rental, error)
}
