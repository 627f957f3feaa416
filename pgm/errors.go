package pgm

import "fmt"

// RangeError reports a field write or decode outside the field's legal
// bounds.
type RangeError struct {
	Field  string
	Lower  int
	Upper  int
	Actual int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range (%d to %d): %d", e.Field, e.Lower, e.Upper, e.Actual)
}

// TooLongError reports a sample name longer than the 16 bytes the
// record can hold.
type TooLongError struct {
	Field  string
	Max    int
	Actual int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("%s too long: %d bytes (max %d)", e.Field, e.Actual, e.Max)
}

// InvalidCharacterError reports a sample name byte outside the
// character set the hardware accepts.
type InvalidCharacterError struct {
	Field string
	Char  byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s contains invalid character %q", e.Field, e.Char)
}
