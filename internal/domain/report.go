package domain

// EquipmentRentalCount is a top-rented-equipment report row.
type EquipmentRentalCount struct {
	Equipment   Equipment `json:"equipment"`
	RentalCount int64     `json:"rental_count"`
}

// ClientRentalCount is a top-clients report row.
type ClientRentalCount struct {
	Client      Client `json:"client"`
	RentalCount int64  `json:"rental_count"`
}
