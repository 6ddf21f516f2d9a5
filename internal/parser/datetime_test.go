package parser

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func readerFor(input string, fileType FileType) *Reader {
	return NewReader(strings.NewReader(input), fileType)
}

func TestReadDateTimeNitf21(t *testing.T) {
	dt, err := readDateTime(readerFor("20230817103045", FileTypeNitf21))
	if err != nil {
		t.Fatalf("readDateTime failed: %v", err)
	}

	want := time.Date(2023, time.August, 17, 10, 30, 45, 0, time.UTC)
	if !dt.Time().Equal(want) {
		t.Errorf("expected %v, got %v", want, dt.Time())
	}
	if dt.Source() != "20230817103045" {
		t.Errorf("expected source retained, got %q", dt.Source())
	}
	if dt.IsZero() {
		t.Error("expected resolved date-time")
	}
}

func TestReadDateTimeNitf20(t *testing.T) {
	// DDHHMMSSZMONYY: 26 Oct 1995, 08:10:23Z.
	dt, err := readDateTime(readerFor("26081023ZOCT95", FileTypeNitf20))
	if err != nil {
		t.Fatalf("readDateTime failed: %v", err)
	}

	want := time.Date(1995, time.October, 26, 8, 10, 23, 0, time.UTC)
	if !dt.Time().Equal(want) {
		t.Errorf("expected %v, got %v", want, dt.Time())
	}
}

func TestReadDateTimeNitf20CenturyWindow(t *testing.T) {
	tests := []struct {
		name  string
		input string
		year  int
	}{
		{"year 70 is 1970", "01000000ZJAN70", 1970},
		{"year 99 is 1999", "01000000ZJAN99", 1999},
		{"year 00 is 2000", "01000000ZJAN00", 2000},
		{"year 69 is 2069", "01000000ZJAN69", 2069},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, err := readDateTime(readerFor(tt.input, FileTypeNitf20))
			if err != nil {
				t.Fatalf("readDateTime failed: %v", err)
			}
			if dt.Time().Year() != tt.year {
				t.Errorf("expected year %d, got %d", tt.year, dt.Time().Year())
			}
		})
	}
}

func TestReadDateTimePaddedComponents(t *testing.T) {
	// Producers may blank out unknown components with spaces or hyphens.
	// The raw value is kept, the time stays zero, and no error is raised.
	tests := []struct {
		name  string
		input string
	}{
		{"space padded", "20230817      "},
		{"hyphen padded", "202308--------"},
		{"all spaces", "              "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, err := readDateTime(readerFor(tt.input, FileTypeNitf21))
			if err != nil {
				t.Fatalf("expected padded date-time to decode, got %v", err)
			}
			if !dt.IsZero() {
				t.Errorf("expected zero time, got %v", dt.Time())
			}
			if dt.Source() != tt.input {
				t.Errorf("expected source %q retained, got %q", tt.input, dt.Source())
			}
		})
	}
}

func TestReadDateTimeMalformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fileType FileType
	}{
		{"nonsense 2.1", "2023XX17103045", FileTypeNitf21},
		{"month 13", "20231317103045", FileTypeNitf21},
		{"bad month name", "26081023ZXXX95", FileTypeNitf20},
		{"missing zone letter", "26081023QOCT95", FileTypeNitf20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readDateTime(readerFor(tt.input, tt.fileType))
			var malformed *ErrMalformedField
			if !errors.As(err, &malformed) {
				t.Fatalf("expected ErrMalformedField, got %v", err)
			}
		})
	}
}
