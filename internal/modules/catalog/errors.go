package catalog

import "errors"

var (
	ErrHostelNotFound = errors.New("hostel not found")
	ErrRoomNotFound   = errors.New("room not found")
	ErrValidation     = errors.New("validation failed")
	ErrForbidden      = errors.New("access denied")
	ErrDuplicateRoom  = errors.New("room code already exists in hostel")
)
