package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/logger"
	"ecorent-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	tx         repository.TxRunner
	log        *slog.Logger
}

func NewRentalService(rentalRepo repository.RentalRepository, tx repository.TxRunner) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		tx:         tx,
		log:        logger.WithService("rental"),
	}
}

// CreateRental books equipment for a client over an inclusive date range.
// Inside one transaction it locks the equipment row, rejects equipment under
// maintenance, rejects any closed-interval date overlap with a non-returned
// rental of the same equipment, prices the rental at price-per-day times the
// inclusive day count, persists it and marks the equipment RENTED.
//
// The row lock serializes concurrent creations per equipment, so two
// requests with overlapping dates cannot both pass the overlap check.
func (s *rentalService) CreateRental(ctx context.Context, clientDNI string, equipmentID int64, start, end time.Time) (*domain.Rental, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date cannot be before start date", domain.ErrInvalidInput)
	}

	var rental *domain.Rental
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		equipment, err := r.Equipment.GetByIDForUpdate(ctx, equipmentID)
		if err != nil {
			return err
		}

		if equipment.Status == domain.EquipmentStatusMaintenance {
			return fmt.Errorf("%w: equipment is under maintenance", domain.ErrConflict)
		}

		// A RENTED status alone does not block: the equipment can be booked
		// again as long as the requested dates do not intersect a
		// non-returned rental.
		overlapping, err := r.Rentals.FindOverlapping(ctx, equipmentID, start, end)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return fmt.Errorf("%w: dates overlap an existing rental", domain.ErrConflict)
		}

		client, err := r.Clients.GetByDNI(ctx, clientDNI)
		if err != nil {
			return err
		}

		days := int64(end.Sub(start).Hours()/24) + 1
		total := equipment.PricePerDay.Mul(decimal.NewFromInt(days))

		rental = &domain.Rental{
			ClientID:    client.ID,
			EquipmentID: equipmentID,
			StartDate:   start,
			EndDate:     end,
			TotalAmount: total,
			Returned:    false,
		}
		if err := r.Rentals.Create(ctx, rental); err != nil {
			return err
		}

		equipment.Status = domain.EquipmentStatusRented
		return r.Equipment.Update(ctx, equipment)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("rental created", "rental_id", rental.ID, "equipment_id", equipmentID, "client_dni", clientDNI, "total_amount", rental.TotalAmount)
	return rental, nil
}

// RegisterReturn marks the rental returned and the equipment AVAILABLE in one
// transaction. A second return of the same rental fails and leaves both
// records untouched.
func (s *rentalService) RegisterReturn(ctx context.Context, rentalID int64) (*domain.Rental, *domain.Equipment, error) {
	var (
		rental    *domain.Rental
		equipment *domain.Equipment
	)
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		var err error
		rental, err = r.Rentals.GetByID(ctx, rentalID)
		if err != nil {
			return err
		}

		if rental.Returned {
			return fmt.Errorf("%w: rental already returned", domain.ErrConflict)
		}

		rental.Returned = true
		if err := r.Rentals.Update(ctx, rental); err != nil {
			return err
		}

		equipment, err = r.Equipment.GetByIDForUpdate(ctx, rental.EquipmentID)
		if err != nil {
			return err
		}
		equipment.Status = domain.EquipmentStatusAvailable
		return r.Equipment.Update(ctx, equipment)
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.Info("return registered", "rental_id", rentalID, "equipment_id", equipment.ID)
	return rental, equipment, nil
}

func (s *rentalService) GetClientHistory(ctx context.Context, dni string) ([]domain.Rental, error) {
	return s.rentalRepo.ListByClientDNI(ctx, dni)
}
