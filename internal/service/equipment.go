package service

import (
	"context"
	"fmt"
	"log/slog"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/logger"
	"ecorent-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	rentalRepo    repository.RentalRepository
	tx            repository.TxRunner
	log           *slog.Logger
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, rentalRepo repository.RentalRepository, tx repository.TxRunner) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		rentalRepo:    rentalRepo,
		tx:            tx,
		log:           logger.WithService("equipment"),
	}
}

// CreateEquipment registers new equipment. The status is always forced to
// AVAILABLE regardless of what the caller sent.
func (s *equipmentService) CreateEquipment(ctx context.Context, name, category, internalCode string, pricePerDay decimal.Decimal) (*domain.Equipment, error) {
	exists, err := s.equipmentRepo.ExistsByInternalCode(ctx, internalCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: equipment with internal code %q already exists", domain.ErrConflict, internalCode)
	}

	equipment := &domain.Equipment{
		Name:         name,
		Category:     category,
		InternalCode: internalCode,
		PricePerDay:  pricePerDay,
		Status:       domain.EquipmentStatusAvailable,
	}
	if err := s.equipmentRepo.Create(ctx, equipment); err != nil {
		return nil, err
	}

	s.log.Info("equipment created", "equipment_id", equipment.ID, "internal_code", internalCode)
	return equipment, nil
}

// UpdateEquipment changes name, category and price per day. Status and
// internal code are untouched. Rented equipment cannot be modified.
func (s *equipmentService) UpdateEquipment(ctx context.Context, id int64, name, category string, pricePerDay decimal.Decimal) (*domain.Equipment, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if equipment.Status == domain.EquipmentStatusRented {
		return nil, fmt.Errorf("%w: cannot modify rented equipment", domain.ErrConflict)
	}

	equipment.Name = name
	equipment.Category = category
	equipment.PricePerDay = pricePerDay
	if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// DeleteEquipment removes equipment that is not rented and was never rented.
// Any rental referencing it, returned or not, blocks the delete.
func (s *equipmentService) DeleteEquipment(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		equipment, err := r.Equipment.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if equipment.Status == domain.EquipmentStatusRented {
			return fmt.Errorf("%w: cannot delete rented equipment", domain.ErrConflict)
		}

		hasRentals, err := r.Rentals.ExistsByEquipmentID(ctx, id)
		if err != nil {
			return err
		}
		if hasRentals {
			return fmt.Errorf("%w: cannot delete equipment with rental history", domain.ErrConflict)
		}

		return r.Equipment.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("equipment deleted", "equipment_id", id)
	return nil
}

// ChangeStatus sets the status unconditionally. Any status may move to any
// other status through this explicit operation; there is no transition table.
func (s *equipmentService) ChangeStatus(ctx context.Context, id int64, status domain.EquipmentStatus) (*domain.Equipment, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	equipment.Status = status
	if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
		return nil, err
	}

	s.log.Info("equipment status changed", "equipment_id", id, "status", status)
	return equipment, nil
}

func (s *equipmentService) ListEquipment(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx, status)
}
