package booking

import "errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrHostelNotFound   = errors.New("hostel not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrForbidden        = errors.New("access denied")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)
