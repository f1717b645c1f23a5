package analytics

import "errors"

var (
	// ErrInvalidParameter is returned for out-of-range or non-finite projection input.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidInterval is returned when an interval ends before it starts.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrInvalidState is returned when stopping a time entry that is not running.
	ErrInvalidState = errors.New("invalid state")
	// ErrDivisionUndefined is returned when ROI is requested for a zero investment.
	ErrDivisionUndefined = errors.New("division undefined")
)
