package postgres

import (
	"context"
	"database/sql"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type paymentRepository struct {
	q queryer
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{q: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (rental_id, amount, payment_date) VALUES ($1, $2, $3) RETURNING id`
	return r.q.QueryRowContext(ctx, query, p.RentalID, p.Amount, p.PaymentDate).Scan(&p.ID)
}

func (r *paymentRepository) SumByRentalID(ctx context.Context, rentalID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE rental_id = $1`
	err := r.q.QueryRowContext(ctx, query, rentalID).Scan(&sum)
	return sum, err
}

func (r *paymentRepository) ListByRentalID(ctx context.Context, rentalID int64) ([]domain.Payment, error) {
	query := `SELECT id, rental_id, amount, payment_date FROM payments WHERE rental_id = $1 ORDER BY payment_date, id`
	rows, err := r.q.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.RentalID, &p.Amount, &p.PaymentDate); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
