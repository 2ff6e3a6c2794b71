package errs

import "errors"

// Error taxonomy shared by the usecase and handler layers.
var (
	// Input rejected before it reaches storage (non-numeric price, empty name, ...).
	ErrValidation = errors.New("validation error")

	// Point lookup miss on update/delete.
	ErrNotFound = errors.New("not found")

	// Insert of a key that already exists.
	ErrConflict = errors.New("conflict")

	// I/O or lock failure from the persistence layer.
	ErrStorage = errors.New("storage error")

	// Persisted coupon scope could not be decoded. Reported, never returned to callers.
	ErrMalformedScope = errors.New("malformed coupon scope")

	// Caller is not allowed to manage the shop it is writing to.
	ErrShopForbidden = errors.New("shop not covered by credentials")
)
