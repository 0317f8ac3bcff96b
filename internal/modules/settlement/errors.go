package settlement

import "errors"

var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrAlreadyPaid        = errors.New("settlement already paid")
	ErrInvalidPeriod      = errors.New("invalid settlement period")
)
