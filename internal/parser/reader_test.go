package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestReadBytesAdvancesOffset(t *testing.T) {
	r := NewReader(strings.NewReader("NITF02.10"), FileTypeUnknown)

	buf, err := r.ReadBytes(4)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if string(buf) != "NITF" {
		t.Errorf("expected NITF, got %q", buf)
	}
	if r.Offset() != 4 {
		t.Errorf("expected offset 4, got %d", r.Offset())
	}

	buf, err = r.ReadBytes(5)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if string(buf) != "02.10" {
		t.Errorf("expected 02.10, got %q", buf)
	}
	if r.Offset() != 9 {
		t.Errorf("expected offset 9, got %d", r.Offset())
	}
}

func TestReadBytesTruncated(t *testing.T) {
	r := NewReader(strings.NewReader("NIT"), FileTypeUnknown)

	_, err := r.ReadBytes(4)
	var truncated *ErrTruncatedInput
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
	if truncated.Want != 4 || truncated.Got != 3 {
		t.Errorf("expected want=4 got=3, got want=%d got=%d", truncated.Want, truncated.Got)
	}
}

func TestReadTrimmed(t *testing.T) {
	r := NewReader(strings.NewReader("ABC       "), FileTypeUnknown)

	s, err := r.ReadTrimmed(10)
	if err != nil {
		t.Fatalf("ReadTrimmed failed: %v", err)
	}
	if s != "ABC" {
		t.Errorf("expected ABC, got %q", s)
	}
	if r.Offset() != 10 {
		t.Errorf("expected offset 10 despite trimming, got %d", r.Offset())
	}
}

func TestReadInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		fails bool
	}{
		{"plain digits", "00042", 42, false},
		{"space padded", "   42", 42, false},
		{"zero", "00000", 0, false},
		{"all spaces", "     ", 0, true},
		{"letters", "ABCDE", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input), FileTypeUnknown)
			value, err := r.ReadInt(5)
			if tt.fails {
				var malformed *ErrMalformedField
				if !errors.As(err, &malformed) {
					t.Fatalf("expected ErrMalformedField, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadInt failed: %v", err)
			}
			if value != tt.want {
				t.Errorf("expected %d, got %d", tt.want, value)
			}
		})
	}
}

func TestReadIntErrorCarriesFieldStartOffset(t *testing.T) {
	r := NewReader(strings.NewReader("1234XXXXX"), FileTypeUnknown)
	if _, err := r.ReadInt(4); err != nil {
		t.Fatalf("ReadInt failed: %v", err)
	}

	_, err := r.ReadInt(5)
	var malformed *ErrMalformedField
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedField, got %v", err)
	}
	if malformed.Offset != 4 {
		t.Errorf("expected offset 4 (field start), got %d", malformed.Offset)
	}
}

func TestReadLongWideField(t *testing.T) {
	// FL is 12 digits and can exceed 32-bit range.
	r := NewReader(strings.NewReader("004294967299"), FileTypeUnknown)
	value, err := r.ReadLong(12)
	if err != nil {
		t.Fatalf("ReadLong failed: %v", err)
	}
	if value != 4294967299 {
		t.Errorf("expected 4294967299, got %d", value)
	}
}

func TestVerifyMagic(t *testing.T) {
	r := NewReader(strings.NewReader("IM123"), FileTypeUnknown)
	if err := r.VerifyMagic("IM"); err != nil {
		t.Fatalf("VerifyMagic failed on matching magic: %v", err)
	}
	if r.Offset() != 2 {
		t.Errorf("expected offset 2, got %d", r.Offset())
	}
}

func TestVerifyMagicMismatch(t *testing.T) {
	r := NewReader(strings.NewReader("XX123"), FileTypeUnknown)

	err := r.VerifyMagic("IM")
	var mismatch *ErrFormatMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected ErrFormatMismatch, got %v", err)
	}
	if mismatch.Expected != "IM" || mismatch.Actual != "XX" {
		t.Errorf("expected IM/XX, got %q/%q", mismatch.Expected, mismatch.Actual)
	}
	if mismatch.Offset != 0 {
		t.Errorf("expected offset 0, got %d", mismatch.Offset)
	}
}

func TestSkip(t *testing.T) {
	r := NewReader(strings.NewReader("0123456789"), FileTypeUnknown)
	if err := r.Skip(6); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if r.Offset() != 6 {
		t.Errorf("expected offset 6, got %d", r.Offset())
	}

	s, err := r.ReadString(4)
	if err != nil {
		t.Fatalf("ReadString after Skip failed: %v", err)
	}
	if s != "6789" {
		t.Errorf("expected 6789, got %q", s)
	}
}

func TestSkipPastEnd(t *testing.T) {
	r := NewReader(strings.NewReader("0123"), FileTypeUnknown)

	err := r.Skip(10)
	var truncated *ErrTruncatedInput
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestSetFileType(t *testing.T) {
	r := NewReader(strings.NewReader(""), FileTypeUnknown)
	if r.FileType() != FileTypeUnknown {
		t.Errorf("expected FileTypeUnknown, got %v", r.FileType())
	}
	r.SetFileType(FileTypeNitf21)
	if r.FileType() != FileTypeNitf21 {
		t.Errorf("expected FileTypeNitf21, got %v", r.FileType())
	}
}
