package embedargs

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSeparator is returned for a token with no '='.
	ErrMissingSeparator = errors.New("argument has no '=' separator")
	// ErrEmptyKey is returned for a token that starts with '='.
	ErrEmptyKey = errors.New("argument has an empty key")

	// ErrInvalidRGB is returned when an RGB component is outside 0-255.
	ErrInvalidRGB = errors.New("invalid rgb value")
	// ErrInvalidColor is returned when a color is neither "r,g,b" nor "#rrggbb".
	ErrInvalidColor = errors.New("invalid color")
	// ErrMalformedColor is returned when a color has the right shape
	// but its components cannot be read.
	ErrMalformedColor = errors.New("malformed color value")
)

// ParseError reports a raw argument string that could not be split
// into key=value tokens.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse arguments: %v", e.Err)
	}
	return fmt.Sprintf("parse argument %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ColorError reports a color argument the user got wrong. Err is one
// of ErrInvalidRGB, ErrInvalidColor or ErrMalformedColor.
type ColorError struct {
	Key   string
	Value string
	Err   error
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Key, e.Value, e.Err)
}

func (e *ColorError) Unwrap() error { return e.Err }
