package codec

import "errors"

var (
	// ErrFormat is returned when a file does not follow the expected layout.
	ErrFormat = errors.New("invalid file format")

	// ErrOrderNumber is returned when the order field is not an integer.
	ErrOrderNumber = errors.New("order number must be an integer")
)
