package repository

import (
	"context"
	"time"

	"ecorent-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByDNI(ctx context.Context, dni string) (*domain.Client, error)
	ExistsByDNI(ctx context.Context, dni string) (bool, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Client, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	// GetByIDForUpdate locks the equipment row for the rest of the enclosing
	// transaction. Rental creation uses it to serialize per-equipment
	// overlap checking.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Equipment, error)
	ExistsByInternalCode(ctx context.Context, internalCode string) (bool, error)
	Update(ctx context.Context, equipment *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
	// List returns all equipment, or only the given status when status is
	// non-empty.
	List(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	// FindOverlapping returns non-returned rentals of the equipment whose
	// closed date range intersects [start, end].
	FindOverlapping(ctx context.Context, equipmentID int64, start, end time.Time) ([]domain.Rental, error)
	ListByClientDNI(ctx context.Context, dni string) ([]domain.Rental, error)
	ExistsByEquipmentID(ctx context.Context, equipmentID int64) (bool, error)
	ExistsByClientID(ctx context.Context, clientID int64) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	// SumByRentalID returns the sum of all payment amounts for the rental,
	// zero if there are none.
	SumByRentalID(ctx context.Context, rentalID int64) (decimal.Decimal, error)
	ListByRentalID(ctx context.Context, rentalID int64) ([]domain.Payment, error)
}

type ReportRepository interface {
	// SumIncomeBetween sums total amounts of rentals fully contained in
	// [start, end]. Containment, not intersection: a rental partially
	// overlapping the window is excluded. Rental overlap blocking uses
	// intersection instead; the two queries deliberately disagree.
	SumIncomeBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	TopRentedEquipment(ctx context.Context) ([]domain.EquipmentRentalCount, error)
	TopClients(ctx context.Context) ([]domain.ClientRentalCount, error)
	// ActiveRentals returns non-returned rentals whose range covers today.
	ActiveRentals(ctx context.Context, today time.Time) ([]domain.Rental, error)
}

// Repositories groups the per-entity repositories bound to one transaction.
type Repositories struct {
	Clients   ClientRepository
	Equipment EquipmentRepository
	Rentals   RentalRepository
	Payments  PaymentRepository
}

// TxRunner runs fn inside a single store transaction: either every write fn
// performs commits, or none do.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}
