package domain

// Client is a person renting equipment. DNI is the national id and is unique;
// it is assigned at creation and never changed by updates.
type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	DNI   string `json:"dni"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
