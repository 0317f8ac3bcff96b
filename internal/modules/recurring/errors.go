package recurring

import "errors"

var (
	ErrPaymentNotFound = errors.New("monthly payment not found")
	ErrAlreadyPaid     = errors.New("monthly payment already paid")
	ErrValidation      = errors.New("validation failed")
)
