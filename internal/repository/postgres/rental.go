package postgres

import (
	"context"
	"database/sql"
	"time"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/repository"
)

type rentalRepository struct {
	q queryer
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{q: db}
}

const rentalColumns = `id, client_id, equipment_id, start_date, end_date, total_amount, returned`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (client_id, equipment_id, start_date, end_date, total_amount, returned)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.q.QueryRowContext(ctx, query, rt.ClientID, rt.EquipmentID, rt.StartDate, rt.EndDate, rt.TotalAmount, rt.Returned).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.ClientID, &rt.EquipmentID, &rt.StartDate, &rt.EndDate, &rt.TotalAmount, &rt.Returned)
	if err != nil {
		return nil, asNotFound(err, "rental")
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	// The returned flag is the only field a rental mutates after creation.
	query := `UPDATE rentals SET returned = $1 WHERE id = $2`
	_, err := r.q.ExecContext(ctx, query, rt.Returned, rt.ID)
	return err
}

func (r *rentalRepository) FindOverlapping(ctx context.Context, equipmentID int64, start, end time.Time) ([]domain.Rental, error) {
	// Closed-interval intersection: stored.start <= requested.end AND
	// stored.end >= requested.start. Returned rentals never block.
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE equipment_id = $1 AND returned = false AND start_date <= $2 AND end_date >= $3`
	rows, err := r.q.QueryContext(ctx, query, equipmentID, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRentals(rows)
}

func (r *rentalRepository) ListByClientDNI(ctx context.Context, dni string) ([]domain.Rental, error) {
	query := `SELECT r.id, r.client_id, r.equipment_id, r.start_date, r.end_date, r.total_amount, r.returned
	          FROM rentals r JOIN clients c ON c.id = r.client_id WHERE c.dni = $1`
	rows, err := r.q.QueryContext(ctx, query, dni)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRentals(rows)
}

func (r *rentalRepository) ExistsByEquipmentID(ctx context.Context, equipmentID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM rentals WHERE equipment_id = $1)`
	err := r.q.QueryRowContext(ctx, query, equipmentID).Scan(&exists)
	return exists, err
}

func (r *rentalRepository) ExistsByClientID(ctx context.Context, clientID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM rentals WHERE client_id = $1)`
	err := r.q.QueryRowContext(ctx, query, clientID).Scan(&exists)
	return exists, err
}

func scanRentals(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.ClientID, &rt.EquipmentID, &rt.StartDate, &rt.EndDate, &rt.TotalAmount, &rt.Returned); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
