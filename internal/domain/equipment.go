package domain

import "github.com/shopspring/decimal"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusRented      EquipmentStatus = "RENTED"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
)

// Valid reports whether s is one of the known statuses.
func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusRented, EquipmentStatusMaintenance:
		return true
	}
	return false
}

// Equipment is a rentable item. InternalCode is the human-assigned unique
// code, distinct from the surrogate ID.
type Equipment struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	InternalCode string          `json:"internal_code"`
	PricePerDay  decimal.Decimal `json:"price_per_day"`
	Status       EquipmentStatus `json:"status"`
}
