package nitf

import (
	"errors"

	"github.com/beetlebugorg/nitf/internal/parser"
)

// Error predicates for the decode failure taxonomy. Errors returned by
// Parse wrap the typed failure with positional context; these helpers
// classify them without exposing the internal error types.

// IsFormatMismatch reports whether err is a magic or version literal
// mismatch, usually a wrong offset or a file that is not NITF at all.
func IsFormatMismatch(err error) bool {
	var target *parser.ErrFormatMismatch
	return errors.As(err, &target)
}

// IsTruncated reports whether err is a byte source exhausted mid-field.
func IsTruncated(err error) bool {
	var target *parser.ErrTruncatedInput
	return errors.As(err, &target)
}

// IsMalformedField reports whether err is field content that failed to
// parse as the expected numeral or enumerated code.
func IsMalformedField(err error) bool {
	var target *parser.ErrMalformedField
	return errors.As(err, &target)
}

// IsUnsupportedRepresentation reports whether err is a documented but
// unimplemented coordinate representation (e.g. UTM/UPS south).
func IsUnsupportedRepresentation(err error) bool {
	var target *parser.ErrUnsupportedRepresentation
	return errors.As(err, &target)
}

// IsExtensionLengthMismatch reports whether err is an extension block
// whose records did not consume exactly the declared length.
func IsExtensionLengthMismatch(err error) bool {
	var target *parser.ErrExtensionLengthMismatch
	return errors.As(err, &target)
}
