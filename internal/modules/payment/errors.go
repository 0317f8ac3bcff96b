package payment

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrAlreadyPaid      = errors.New("booking already paid")
	ErrNotPayable       = errors.New("booking is not in a payable state")
)
