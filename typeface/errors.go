package typeface

import "errors"

// Sentinel errors for the typeface package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("typeface: empty font data")

	// ErrNoFamilyName is returned when a font has no family name and
	// none was given with WithName.
	ErrNoFamilyName = errors.New("typeface: font has no family name")
)

// FontError is returned when font data cannot be used.
type FontError struct {
	Reason string
	Err    error
}

func (e *FontError) Error() string {
	if e.Err != nil {
		return "typeface: " + e.Reason + ": " + e.Err.Error()
	}
	return "typeface: " + e.Reason
}

func (e *FontError) Unwrap() error {
	return e.Err
}
