package sim

import "errors"

// Input validation errors. Returned wrapped with the offending slot or value.
var (
	ErrInvalidBurst         = errors.New("burst must be positive")
	ErrInvalidArrival       = errors.New("arrival must be non-negative")
	ErrInvalidQuantum       = errors.New("quantum must be positive")
	ErrInvalidContextSwitch = errors.New("context switch cost must be non-negative")
	ErrClockOverflow        = errors.New("simulated clock would overflow int64")
	ErrTooManySegments      = errors.New("run would exceed the segment limit")
)
