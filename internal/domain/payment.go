package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is derived from the sum of payments against a rental, it is
// never stored.
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusFullyPaid     PaymentStatus = "FULLY_PAID"
)

// Payment is a single amount paid against a rental. Payments are immutable
// and never deleted.
type Payment struct {
	ID          int64           `json:"id"`
	RentalID    int64           `json:"rental_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
}
