package parser

import (
	"strings"
	"time"
)

// DateTime is a decoded 14-byte NITF date-time field.
//
// NITF 2.1 and NSIF encode CCYYMMDDhhmmss; NITF 2.0 encodes the older
// DDHHMMSSZMONYY form (e.g. "26081023ZOCT95"). Producers are allowed to
// blank out unknown trailing components with spaces or hyphens, so a
// field can be structurally valid without naming a complete instant. The
// raw source string is always retained; Time is the zero value when the
// field does not resolve to a complete date.
type DateTime struct {
	source string
	value  time.Time
}

// Source returns the field exactly as encoded in the file.
func (dt DateTime) Source() string {
	return dt.source
}

// Time returns the decoded instant (UTC), or the zero time when the field
// carried blanked-out components.
func (dt DateTime) Time() time.Time {
	return dt.value
}

// IsZero reports whether the field did not resolve to a complete instant.
func (dt DateTime) IsZero() bool {
	return dt.value.IsZero()
}

const dateTimeLength = 14

// nitf20Months maps the three-letter month abbreviations used by the
// NITF 2.0 date-time encoding.
var nitf20Months = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// readDateTime decodes a 14-byte date-time field in the encoding selected
// by the reader's file type.
func readDateTime(r *Reader) (DateTime, error) {
	start := r.Offset()
	source, err := r.ReadString(dateTimeLength)
	if err != nil {
		return DateTime{}, err
	}

	// Fields padded out with spaces or hyphens declare the remaining
	// components unknown. Keep the source, leave the time zero.
	if strings.ContainsAny(source, " -") {
		return DateTime{source: source}, nil
	}

	var value time.Time
	if r.FileType() == FileTypeNitf20 {
		value, err = parseNitf20DateTime(source)
	} else {
		value, err = time.Parse("20060102150405", source)
	}
	if err != nil {
		return DateTime{}, &ErrMalformedField{Value: source, Reason: "invalid date-time", Offset: start}
	}
	return DateTime{source: source, value: value.UTC()}, nil
}

// parseNitf20DateTime decodes the DDHHMMSSZMONYY form. The zone letter is
// always Z (UTC); two-digit years 70-99 fall in the 1900s.
func parseNitf20DateTime(source string) (time.Time, error) {
	if source[8] != 'Z' {
		return time.Time{}, &ErrMalformedField{Value: source, Reason: "expected Z time zone"}
	}
	month, ok := nitf20Months[source[9:12]]
	if !ok {
		return time.Time{}, &ErrMalformedField{Value: source, Reason: "unrecognised month"}
	}
	day, err := atoiStrict(source[0:2])
	if err != nil {
		return time.Time{}, err
	}
	hour, err := atoiStrict(source[2:4])
	if err != nil {
		return time.Time{}, err
	}
	minute, err := atoiStrict(source[4:6])
	if err != nil {
		return time.Time{}, err
	}
	second, err := atoiStrict(source[6:8])
	if err != nil {
		return time.Time{}, err
	}
	year, err := atoiStrict(source[12:14])
	if err != nil {
		return time.Time{}, err
	}
	if year >= 70 {
		year += 1900
	} else {
		year += 2000
	}
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC), nil
}
