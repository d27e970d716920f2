package postgres

import (
	"context"
	"database/sql"
	"time"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type reportRepository struct {
	q queryer
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{q: db}
}

func (r *reportRepository) SumIncomeBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	// Containment, not intersection: only rentals fully inside the window
	// count toward income.
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM rentals WHERE start_date >= $1 AND end_date <= $2`
	err := r.q.QueryRowContext(ctx, query, start, end).Scan(&sum)
	return sum, err
}

func (r *reportRepository) TopRentedEquipment(ctx context.Context) ([]domain.EquipmentRentalCount, error) {
	query := `SELECT e.id, e.name, e.category, e.internal_code, e.price_per_day, e.status, COUNT(r.id)
	          FROM equipment e LEFT JOIN rentals r ON r.equipment_id = e.id
	          GROUP BY e.id, e.name, e.category, e.internal_code, e.price_per_day, e.status
	          ORDER BY COUNT(r.id) DESC`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.EquipmentRentalCount
	for rows.Next() {
		var rc domain.EquipmentRentalCount
		e := &rc.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.InternalCode, &e.PricePerDay, &e.Status, &rc.RentalCount); err != nil {
			return nil, err
		}
		results = append(results, rc)
	}
	return results, rows.Err()
}

func (r *reportRepository) TopClients(ctx context.Context) ([]domain.ClientRentalCount, error) {
	query := `SELECT c.id, c.name, c.dni, c.phone, c.email, COUNT(r.id)
	          FROM clients c LEFT JOIN rentals r ON r.client_id = c.id
	          GROUP BY c.id, c.name, c.dni, c.phone, c.email
	          ORDER BY COUNT(r.id) DESC`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ClientRentalCount
	for rows.Next() {
		var rc domain.ClientRentalCount
		c := &rc.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.DNI, &c.Phone, &c.Email, &rc.RentalCount); err != nil {
			return nil, err
		}
		results = append(results, rc)
	}
	return results, rows.Err()
}

func (r *reportRepository) ActiveRentals(ctx context.Context, today time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE returned = false AND start_date <= $1 AND end_date >= $1`
	rows, err := r.q.QueryContext(ctx, query, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRentals(rows)
}
