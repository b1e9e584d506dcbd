package comparison

import "errors"

var (
	// ErrNoOffers is returned when the request carries no offers at all.
	ErrNoOffers = errors.New("no offers provided")
)

// Error codes used in HTTP error envelopes.
const (
	codeValidation = "validation_error"
	codeInternal   = "internal_error"
)
