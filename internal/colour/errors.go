package colour

import "errors"

var (
	// ErrInvalidColourFormat is returned when a string cannot be parsed as a hex colour.
	ErrInvalidColourFormat = errors.New("invalid colour format")

	// ErrInvalidChannelRange is returned when a numeric channel is NaN or infinite.
	// Finite values outside the channel range are clamped, not rejected.
	ErrInvalidChannelRange = errors.New("invalid channel range")

	// ErrInvalidAdjustment is returned when an adjustment parameter is not finite.
	ErrInvalidAdjustment = errors.New("invalid adjustment")
)
