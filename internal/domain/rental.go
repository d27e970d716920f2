package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rental is an agreement to rent one equipment to one client over an
// inclusive date range. TotalAmount is computed once at creation
// (price per day times inclusive day count) and never recalculated.
type Rental struct {
	ID          int64           `json:"id"`
	ClientID    int64           `json:"client_id"`
	EquipmentID int64           `json:"equipment_id"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Returned    bool            `json:"returned"`
}

// Days is the inclusive day count of the rental range. A rental over a
// single day counts as 1.
func (r *Rental) Days() int64 {
	return int64(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}
