package apperr

import "errors"

var (
	ErrUnknownKey      = errors.New("unknown reminder key")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidText     = errors.New("reminder text is not valid UTF-8")
)
