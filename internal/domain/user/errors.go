package user

import "errors"

var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrApartmentRequired   = errors.New("resident requires an apartment number")
	ErrBadgeRequired       = errors.New("guard requires a badge number")
	ErrCondominiumRequired = errors.New("role requires a condominium")
	ErrDuplicateEmail      = errors.New("email already registered")
)
