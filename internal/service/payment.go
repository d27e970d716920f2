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

type paymentService struct {
	paymentRepo repository.PaymentRepository
	rentalRepo  repository.RentalRepository
	tx          repository.TxRunner
	log         *slog.Logger
}

func NewPaymentService(paymentRepo repository.PaymentRepository, rentalRepo repository.RentalRepository, tx repository.TxRunner) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		rentalRepo:  rentalRepo,
		tx:          tx,
		log:         logger.WithService("payment"),
	}
}

// RegisterPayment records a payment against a rental, dated today. The sum
// of payments may reach the rental's total amount but never exceed it; the
// comparison is exact decimal arithmetic.
func (s *paymentService) RegisterPayment(ctx context.Context, rentalID int64, amount decimal.Decimal) (*domain.Payment, error) {
	var payment *domain.Payment
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		rental, err := r.Rentals.GetByID(ctx, rentalID)
		if err != nil {
			return err
		}

		paid, err := r.Payments.SumByRentalID(ctx, rentalID)
		if err != nil {
			return err
		}

		if paid.Add(amount).GreaterThan(rental.TotalAmount) {
			return fmt.Errorf("%w: payment exceeds the pending amount", domain.ErrConflict)
		}

		payment = &domain.Payment{
			RentalID:    rentalID,
			Amount:      amount,
			PaymentDate: time.Now(),
		}
		return r.Payments.Create(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("payment registered", "payment_id", payment.ID, "rental_id", rentalID, "amount", amount)
	return payment, nil
}

// GetPaymentStatus derives the payment state of a rental from its payment
// sum: nothing paid is PENDING, less than the total is PARTIALLY_PAID, the
// total or more is FULLY_PAID. The last branch uses >= so an overpaid rental
// still reports FULLY_PAID instead of failing.
func (s *paymentService) GetPaymentStatus(ctx context.Context, rentalID int64) (domain.PaymentStatus, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return "", err
	}

	paid, err := s.paymentRepo.SumByRentalID(ctx, rentalID)
	if err != nil {
		return "", err
	}

	switch {
	case paid.IsZero():
		return domain.PaymentStatusPending, nil
	case paid.LessThan(rental.TotalAmount):
		return domain.PaymentStatusPartiallyPaid, nil
	default:
		return domain.PaymentStatusFullyPaid, nil
	}
}

func (s *paymentService) ListPayments(ctx context.Context, rentalID int64) ([]domain.Payment, error) {
	if _, err := s.rentalRepo.GetByID(ctx, rentalID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByRentalID(ctx, rentalID)
}
