package parser

import (
	"fmt"
)

// ErrFormatMismatch indicates a fixed literal (segment magic or version field)
// did not match the expected value. Usually a wrong offset or corrupt input.
type ErrFormatMismatch struct {
	Expected string
	Actual   string
	Offset   int64
}

func (e *ErrFormatMismatch) Error() string {
	return fmt.Sprintf("format mismatch at offset %d: expected %q, read %q",
		e.Offset, e.Expected, e.Actual)
}

// ErrTruncatedInput indicates the byte source was exhausted mid-field.
type ErrTruncatedInput struct {
	Offset int64
	Want   int
	Got    int
}

func (e *ErrTruncatedInput) Error() string {
	return fmt.Sprintf("truncated input at offset %d: wanted %d bytes, got %d",
		e.Offset, e.Want, e.Got)
}

// ErrMalformedField indicates field content failed to parse as the expected
// numeral or enumerated code.
type ErrMalformedField struct {
	Value  string
	Reason string
	Offset int64
}

func (e *ErrMalformedField) Error() string {
	return fmt.Sprintf("malformed field at offset %d: %s: %q", e.Offset, e.Reason, e.Value)
}

// ErrUnsupportedRepresentation indicates a documented but unimplemented
// coordinate representation discriminator (e.g. UTM/UPS south).
type ErrUnsupportedRepresentation struct {
	Representation CoordinateRepresentation
}

func (e *ErrUnsupportedRepresentation) Error() string {
	return fmt.Sprintf("unsupported coordinate representation: %v", e.Representation)
}

// ErrExtensionLengthMismatch indicates a nested extension decode consumed a
// different byte count than the declared block length.
type ErrExtensionLengthMismatch struct {
	Declared  int
	Remaining int
	Offset    int64
}

func (e *ErrExtensionLengthMismatch) Error() string {
	return fmt.Sprintf("extension block length mismatch at offset %d: declared %d bytes, %d bytes unaccounted for",
		e.Offset, e.Declared, e.Remaining)
}
