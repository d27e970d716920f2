package postgres

import (
	"context"
	"database/sql"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/repository"
)

type clientRepository struct {
	q queryer
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{q: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (name, dni, phone, email) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.q.QueryRowContext(ctx, query, c.Name, c.DNI, c.Phone, c.Email).Scan(&c.ID)
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, name, dni, phone, email FROM clients WHERE id = $1`
	err := r.q.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.DNI, &c.Phone, &c.Email)
	if err != nil {
		return nil, asNotFound(err, "client")
	}
	return c, nil
}

func (r *clientRepository) GetByDNI(ctx context.Context, dni string) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, name, dni, phone, email FROM clients WHERE dni = $1`
	err := r.q.QueryRowContext(ctx, query, dni).Scan(&c.ID, &c.Name, &c.DNI, &c.Phone, &c.Email)
	if err != nil {
		return nil, asNotFound(err, "client")
	}
	return c, nil
}

func (r *clientRepository) ExistsByDNI(ctx context.Context, dni string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM clients WHERE dni = $1)`
	err := r.q.QueryRowContext(ctx, query, dni).Scan(&exists)
	return exists, err
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	// DNI is immutable after creation and deliberately not part of the SET.
	query := `UPDATE clients SET name = $1, phone = $2, email = $3 WHERE id = $4`
	_, err := r.q.ExecContext(ctx, query, c.Name, c.Phone, c.Email, c.ID)
	return err
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM clients WHERE id = $1`
	_, err := r.q.ExecContext(ctx, query, id)
	return err
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT id, name, dni, phone, email FROM clients ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.DNI, &c.Phone, &c.Email); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
