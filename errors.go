package ggfx

import "errors"

// Errors returned by image constructors.
var (
	// ErrInvalidDimensions is returned when an image width or height is not positive.
	ErrInvalidDimensions = errors.New("ggfx: invalid image dimensions")

	// ErrInvalidFormat is returned for an unknown pixel format.
	ErrInvalidFormat = errors.New("ggfx: invalid pixel format")

	// ErrNilImage is returned when a nil source image is passed in.
	ErrNilImage = errors.New("ggfx: nil image")
)
