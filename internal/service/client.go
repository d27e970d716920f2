package service

import (
	"context"
	"fmt"
	"log/slog"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/logger"
	"ecorent-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
	rentalRepo repository.RentalRepository
	tx         repository.TxRunner
	log        *slog.Logger
}

func NewClientService(clientRepo repository.ClientRepository, rentalRepo repository.RentalRepository, tx repository.TxRunner) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		rentalRepo: rentalRepo,
		tx:         tx,
		log:        logger.WithService("client"),
	}
}

func (s *clientService) CreateClient(ctx context.Context, name, dni, phone, email string) (*domain.Client, error) {
	exists, err := s.clientRepo.ExistsByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: client with DNI %q already exists", domain.ErrConflict, dni)
	}

	client := &domain.Client{
		Name:  name,
		DNI:   dni,
		Phone: phone,
		Email: email,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	s.log.Info("client created", "client_id", client.ID, "dni", dni)
	return client, nil
}

// UpdateClient changes name, phone and email. The DNI is never changed by
// this operation, even if the caller supplies a different one.
func (s *clientService) UpdateClient(ctx context.Context, id int64, name, phone, email string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Name = name
	client.Phone = phone
	client.Email = email
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client with no rental history. A single rental,
// returned or not, blocks the delete.
func (s *clientService) DeleteClient(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		if _, err := r.Clients.GetByID(ctx, id); err != nil {
			return err
		}

		hasRentals, err := r.Rentals.ExistsByClientID(ctx, id)
		if err != nil {
			return err
		}
		if hasRentals {
			return fmt.Errorf("%w: cannot delete client with rental history", domain.ErrConflict)
		}

		return r.Clients.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("client deleted", "client_id", id)
	return nil
}

func (s *clientService) FindByDNI(ctx context.Context, dni string) (*domain.Client, error) {
	return s.clientRepo.GetByDNI(ctx, dni)
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}
