package review

import "errors"

var (
	ErrHostelNotFound = errors.New("hostel not found")
	ErrValidation     = errors.New("validation failed")
	ErrNotEligible    = errors.New("no completed stay at this hostel")
)
