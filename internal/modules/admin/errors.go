package admin

import "errors"

var ErrInvalidRate = errors.New("commission rate must be between 0 and 100")
