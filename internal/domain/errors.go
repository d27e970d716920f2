package domain

import "errors"

// Error kinds recognized by the HTTP layer. Services wrap these with the
// specific rule that was violated, e.g.
// fmt.Errorf("%w: equipment is under maintenance", ErrConflict).
var (
	// ErrNotFound means a referenced client, equipment, rental or payment
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a business rule was violated: duplicate key,
	// overlapping dates, disallowed status, payment over the balance,
	// already-returned rental.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput means the request itself is malformed, such as an end
	// date before the start date.
	ErrInvalidInput = errors.New("invalid input")
)
