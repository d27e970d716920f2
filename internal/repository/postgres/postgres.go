package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/repository"

	_ "github.com/lib/pq"
)

// queryer is satisfied by both *sql.DB and *sql.Tx so every repository can
// run against the shared pool or inside a transaction.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.ClientRepository
	repository.EquipmentRepository
	repository.RentalRepository
	repository.PaymentRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		ClientRepository:    NewClientRepository(db),
		EquipmentRepository: NewEquipmentRepository(db),
		RentalRepository:    NewRentalRepository(db),
		PaymentRepository:   NewPaymentRepository(db),
		ReportRepository:    NewReportRepository(db),
	}
}

// WithinTx runs fn against transaction-bound repositories. The transaction
// commits only if fn returns nil; any error rolls everything back.
func (s *Store) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	repos := repository.Repositories{
		Clients:   &clientRepository{q: tx},
		Equipment: &equipmentRepository{q: tx},
		Rentals:   &rentalRepository{q: tx},
		Payments:  &paymentRepository{q: tx},
	}

	if err := fn(repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// asNotFound converts the driver's no-rows error into the domain not-found
// kind so services and handlers never match on database/sql errors.
func asNotFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
	}
	return err
}
