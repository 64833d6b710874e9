package halls

import "errors"

var (
	ErrHallNotFound  = errors.New("hall not found")
	ErrNotAuthorized = errors.New("not authorized to manage this hall")
	ErrStaffExists   = errors.New("user is already staff of this hall")
	ErrStaffNotFound = errors.New("staff member not found")
	ErrInvalidStatus = errors.New("invalid hall status")
)
