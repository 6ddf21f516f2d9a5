package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Reader is a forward-only cursor over a NITF byte source.
//
// Every field in a NITF header is a fixed-width run of bytes with no
// delimiters, so the only way to stay aligned is to read each field at
// exactly its declared width. The reader tracks the byte offset from the
// start of the source and advances it by exactly the requested width on
// every read; the offset is carried into every error to aid diagnosis of
// malformed files.
//
// A Reader is single-consumer, mutable state. Decoding multiple segments
// concurrently requires one Reader (and one segment parser) per goroutine.
//
// Reference: MIL-STD-2500C §5.1.1: all header fields are fixed-length,
// BCS-A encoded, space padded.
type Reader struct {
	src      *bufio.Reader
	fileType FileType
	offset   int64
}

// NewReader wraps src for fixed-field reading. The file type controls
// version-conditional field layouts; use FileTypeUnknown when the version
// has not been decoded yet and set it with SetFileType once FVER is read.
func NewReader(src io.Reader, fileType FileType) *Reader {
	return &Reader{
		src:      bufio.NewReader(src),
		fileType: fileType,
	}
}

// FileType returns the format version this reader decodes against.
func (r *Reader) FileType() FileType {
	return r.fileType
}

// SetFileType records the format version once it is known. The file header
// parser calls this immediately after decoding FHDR/FVER; everything that
// follows is version-conditional.
func (r *Reader) SetFileType(fileType FileType) {
	r.fileType = fileType
}

// Offset returns the number of bytes consumed so far. Monotonically
// non-decreasing.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadBytes returns exactly count bytes, advancing the cursor by count.
func (r *Reader) ReadBytes(count int) ([]byte, error) {
	buf := make([]byte, count)
	n, err := io.ReadFull(r.src, buf)
	r.offset += int64(n)
	if err != nil {
		return nil, &ErrTruncatedInput{Offset: r.offset, Want: count, Got: n}
	}
	return buf, nil
}

// ReadString returns exactly count bytes as a string, padding included.
func (r *Reader) ReadString(count int) (string, error) {
	buf, err := r.ReadBytes(count)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadTrimmed returns count bytes as a string with surrounding whitespace
// stripped. NITF text fields are space padded to their declared width.
func (r *Reader) ReadTrimmed(count int) (string, error) {
	s, err := r.ReadString(count)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// ReadInt reads count bytes and parses them as a base-10 integer.
// Numeric NITF fields are ASCII digits, not binary, and may carry space
// padding. Non-numeric content is a hard failure; a bad count field would
// desynchronise every field that follows it.
func (r *Reader) ReadInt(count int) (int, error) {
	start := r.offset
	s, err := r.ReadString(count)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ErrMalformedField{Value: s, Reason: "expected integer", Offset: start}
	}
	return value, nil
}

// ReadLong reads count bytes and parses them as a base-10 int64. Used for
// wide fields like NROWS/NCOLS (8 digits) and FL (12 digits) that can
// exceed 32-bit range.
func (r *Reader) ReadLong(count int) (int64, error) {
	start := r.offset
	s, err := r.ReadString(count)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &ErrMalformedField{Value: s, Reason: "expected integer", Offset: start}
	}
	return value, nil
}

// VerifyMagic reads len(expected) bytes and fails with ErrFormatMismatch
// if they differ from expected. Segment subheaders each begin with a fixed
// literal (e.g. "IM" for image segments) identifying their kind.
func (r *Reader) VerifyMagic(expected string) error {
	start := r.offset
	actual, err := r.ReadString(len(expected))
	if err != nil {
		return err
	}
	if actual != expected {
		return &ErrFormatMismatch{Expected: expected, Actual: actual, Offset: start}
	}
	return nil
}

// Skip discards count bytes, advancing the cursor. Used for reserved
// fields and for image data payloads the caller does not want decoded.
func (r *Reader) Skip(count int64) error {
	n, err := io.CopyN(io.Discard, r.src, count)
	r.offset += n
	if err != nil {
		return &ErrTruncatedInput{Offset: r.offset, Want: int(count), Got: int(n)}
	}
	return nil
}
