package parser

import (
	"fmt"
	"io"
	"os"
)

// Parser decodes NITF files: the file header plus every image segment
// subheader. Non-image segments and image data payloads are located via
// the header length tables and skipped, not decoded.
type Parser interface {
	// Parse reads a NITF file and returns the decoded file structure.
	Parse(filename string) (*File, error)

	// ParseWithOptions parses with custom options.
	ParseWithOptions(filename string, opts ParseOptions) (*File, error)
}

// ParseOptions configures parsing behaviour.
type ParseOptions struct {
	// Registry resolves extension tags to decode handlers. Nil decodes
	// every extension record as a raw opaque blob.
	Registry *TreRegistry
}

// DefaultParseOptions returns parse options with defaults.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{}
}

// File is the decoded structure of one NITF file.
type File struct {
	header        *FileHeader
	imageSegments []*ImageSegment
}

// Header returns the decoded file header.
func (f *File) Header() *FileHeader {
	return f.header
}

// ImageSegments returns the decoded image segments in file order.
func (f *File) ImageSegments() []*ImageSegment {
	return f.imageSegments
}

// defaultParser implements the Parser interface.
type defaultParser struct {
}

// NewParser creates a new NITF parser.
func NewParser() Parser {
	return &defaultParser{}
}

// Parse reads a NITF file and returns the decoded file structure.
func (p *defaultParser) Parse(filename string) (*File, error) {
	return p.ParseWithOptions(filename, DefaultParseOptions())
}

// ParseWithOptions parses with custom options.
func (p *defaultParser) ParseWithOptions(filename string, opts ParseOptions) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return ParseFrom(f, opts)
}

// ParseFrom decodes a NITF file from an arbitrary byte source. The
// source is consumed sequentially in a single pass and is never seeked.
func ParseFrom(src io.Reader, opts ParseOptions) (*File, error) {
	r := NewReader(src, FileTypeUnknown)

	header, err := parseFileHeader(r, opts.Registry)
	if err != nil {
		return nil, fmt.Errorf("file header: %w", err)
	}

	file := &File{header: header}
	for i, lengths := range header.ImageSegments() {
		segmentParser := NewImageSegmentParser(opts.Registry)
		start := r.Offset()
		segment, err := segmentParser.Parse(r, lengths.DataLength)
		if err != nil {
			return nil, fmt.Errorf("image segment %d: %w", i+1, err)
		}
		if consumed := r.Offset() - start; consumed != lengths.SubheaderLength {
			return nil, fmt.Errorf("image segment %d: subheader consumed %d bytes, file header declared %d",
				i+1, consumed, lengths.SubheaderLength)
		}
		// Pixel decoding is out of scope; step over the image data to
		// reach the next segment.
		if err := r.Skip(lengths.DataLength); err != nil {
			return nil, fmt.Errorf("image segment %d data: %w", i+1, err)
		}
		file.imageSegments = append(file.imageSegments, segment)
	}

	// Remaining segment kinds are located by their length tables and
	// skipped whole.
	for _, table := range [][]SegmentLengths{
		header.GraphicSegments(),
		header.LabelSegments(),
		header.TextSegments(),
		header.DataExtensionSegments(),
		header.ReservedSegments(),
	} {
		for _, lengths := range table {
			if err := r.Skip(lengths.SubheaderLength + lengths.DataLength); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}
