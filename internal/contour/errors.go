package contour

import "errors"

// Contract breaches panic with an error wrapping one of these sentinels so
// callers and tests can classify them with errors.Is after recover.
var (
	ErrMisaligned     = errors.New("region not aligned to tile grid")
	ErrNotTracked     = errors.New("region not tracked")
	ErrAlreadyTracked = errors.New("region already tracked")
	ErrOutOfBounds    = errors.New("footprint outside grid bounds")
	ErrInvalidConfig  = errors.New("invalid config")
)
