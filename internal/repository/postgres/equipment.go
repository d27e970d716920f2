package postgres

import (
	"context"
	"database/sql"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/repository"
)

type equipmentRepository struct {
	q queryer
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{q: db}
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (name, category, internal_code, price_per_day, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.q.QueryRowContext(ctx, query, e.Name, e.Category, e.InternalCode, e.PricePerDay, e.Status).Scan(&e.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	return r.get(ctx, id, false)
}

func (r *equipmentRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Equipment, error) {
	return r.get(ctx, id, true)
}

func (r *equipmentRepository) get(ctx context.Context, id int64, forUpdate bool) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	query := `SELECT id, name, category, internal_code, price_per_day, status FROM equipment WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	err := r.q.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Category, &e.InternalCode, &e.PricePerDay, &e.Status)
	if err != nil {
		return nil, asNotFound(err, "equipment")
	}
	return e, nil
}

func (r *equipmentRepository) ExistsByInternalCode(ctx context.Context, internalCode string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM equipment WHERE internal_code = $1)`
	err := r.q.QueryRowContext(ctx, query, internalCode).Scan(&exists)
	return exists, err
}

func (r *equipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	query := `UPDATE equipment SET name = $1, category = $2, price_per_day = $3, status = $4 WHERE id = $5`
	_, err := r.q.ExecContext(ctx, query, e.Name, e.Category, e.PricePerDay, e.Status, e.ID)
	return err
}

func (r *equipmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM equipment WHERE id = $1`
	_, err := r.q.ExecContext(ctx, query, id)
	return err
}

func (r *equipmentRepository) List(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error) {
	query := `SELECT id, name, category, internal_code, price_per_day, status FROM equipment`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY id`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.InternalCode, &e.PricePerDay, &e.Status); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
