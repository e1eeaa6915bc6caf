package countdown

import "errors"

var (
	ErrNotNumeric   = errors.New("duration is not a number")
	ErrNonPositive  = errors.New("duration must be positive")
	ErrTooLong      = errors.New("duration exceeds the maximum")
	ErrInvalidClock = errors.New("invalid MM:SS value")
)
