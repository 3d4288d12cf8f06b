package project

import (
	"errors"

	"github.com/handiism/discman/internal/codec"
)

// Error kinds returned by Store operations. Use errors.Is to tell them apart.
var (
	ErrMissingField       = errors.New("missing field")
	ErrInvalidDestination = errors.New("save folder does not exist")
	ErrInvalidOrderNumber = codec.ErrOrderNumber
	ErrFileFormat         = codec.ErrFormat
	ErrIO                 = errors.New("i/o failure")
)
