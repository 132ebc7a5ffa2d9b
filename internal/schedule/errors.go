package schedule

import "errors"

var (
	// ErrInvalidDate is returned when a date argument is not a recognized calendar date
	ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

	// ErrInvalidTime is returned when a time argument is not a recognized 24-hour wall-clock time
	ErrInvalidTime = errors.New("invalid time: expected HH:MM")

	// ErrInvalidDuration is returned when a slot duration is non-positive
	ErrInvalidDuration = errors.New("invalid duration: must be positive")
)
