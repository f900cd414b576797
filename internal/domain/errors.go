package domain

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrValidation        = errors.New("validation failed")
	ErrForbidden         = errors.New("not the owner of this resource")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
