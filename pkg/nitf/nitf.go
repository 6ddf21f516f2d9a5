// Package nitf provides a public API for decoding NITF (National Imagery
// Transmission Format) files: the file header and every image segment
// subheader, including corner coordinates, band descriptors, security
// metadata and tagged record extensions.
//
// Pixel data is not decompressed or interpreted; image payloads are
// located via the file header length tables and skipped.
package nitf

import (
	"io"

	"github.com/beetlebugorg/nitf/internal/parser"
)

// Parser decodes NITF files.
//
// Create a parser with NewParser and use Parse or ParseWithOptions.
// Parsers are stateless and safe for concurrent use; each Parse call
// runs an independent single-pass decode.
type Parser interface {
	// Parse reads a NITF file and returns the decoded structure.
	//
	// The file may be NITF 2.0, NITF 2.1 or NSIF 1.0; the version is
	// detected from the FHDR/FVER fields and drives the
	// version-conditional field layouts.
	Parse(filename string) (*File, error)

	// ParseWithOptions parses with custom options, e.g. a registry of
	// extension (TRE) decoders.
	ParseWithOptions(filename string, opts ParseOptions) (*File, error)
}

// NewParser creates a new NITF parser with default settings.
//
// Example:
//
//	parser := nitf.NewParser()
//	file, err := parser.Parse("overhead.ntf")
func NewParser() Parser {
	return &parserWrapper{
		internal: parser.NewParser(),
	}
}

// parserWrapper wraps the internal parser and converts types.
type parserWrapper struct {
	internal parser.Parser
}

func (p *parserWrapper) Parse(filename string) (*File, error) {
	return p.ParseWithOptions(filename, DefaultParseOptions())
}

func (p *parserWrapper) ParseWithOptions(filename string, opts ParseOptions) (*File, error) {
	internalFile, err := p.internal.ParseWithOptions(filename, opts.internal())
	if err != nil {
		return nil, err
	}
	return convertFile(internalFile), nil
}

// Decode decodes a NITF file from an arbitrary byte source, consumed
// sequentially in a single pass.
func Decode(src io.Reader, opts ParseOptions) (*File, error) {
	internalFile, err := parser.ParseFrom(src, opts.internal())
	if err != nil {
		return nil, err
	}
	return convertFile(internalFile), nil
}

// File is a decoded NITF file: the file header plus every image segment
// subheader. All fields are private; access is through methods.
type File struct {
	version         Version
	complexityLevel int
	standardType    string
	originStationId string
	dateTime        DateTime
	title           string
	security        SecurityInfo
	originatorName  string
	originatorPhone string
	fileLength      int64
	headerLength    int64
	headerTres      []Tre
	images          []*ImageSegment
}

// Version returns the detected format version.
func (f *File) Version() Version { return f.version }

// ComplexityLevel returns CLEVEL.
func (f *File) ComplexityLevel() int { return f.complexityLevel }

// StandardType returns STYPE.
func (f *File) StandardType() string { return f.standardType }

// OriginStationId returns OSTAID.
func (f *File) OriginStationId() string { return f.originStationId }

// DateTime returns the file date and time.
func (f *File) DateTime() DateTime { return f.dateTime }

// Title returns FTITLE.
func (f *File) Title() string { return f.title }

// Security returns the file-level security metadata.
func (f *File) Security() SecurityInfo { return f.security }

// OriginatorName returns ONAME.
func (f *File) OriginatorName() string { return f.originatorName }

// OriginatorPhone returns OPHONE.
func (f *File) OriginatorPhone() string { return f.originatorPhone }

// FileLength returns the declared length of the entire file.
func (f *File) FileLength() int64 { return f.fileLength }

// HeaderLength returns the declared length of the file header.
func (f *File) HeaderLength() int64 { return f.headerLength }

// HeaderTres returns the file-level extension records.
func (f *File) HeaderTres() []Tre { return f.headerTres }

// Images returns the decoded image segments in file order.
func (f *File) Images() []*ImageSegment { return f.images }

// ImageCount returns the number of image segments.
func (f *File) ImageCount() int { return len(f.images) }

// ImageSegment is one decoded image segment subheader.
type ImageSegment struct {
	identifier               string
	dateTime                 DateTime
	target                   TargetInfo
	title                    string
	security                 SecurityInfo
	source                   string
	rows                     int64
	columns                  int64
	pixelValueType           PixelValueType
	representation           Representation
	category                 Category
	actualBitsPerPixel       int
	coordinateRep            CoordinateRepresentation
	corners                  *Corners
	comments                 []string
	compression              Compression
	compressionRate          string
	bands                    []Band
	mode                     string
	blocksPerRow             int
	blocksPerColumn          int
	pixelsPerBlockHorizontal int
	pixelsPerBlockVertical   int
	bitsPerPixel             int
	displayLevel             int
	attachmentLevel          int
	locationRow              int
	locationColumn           int
	magnification            string
	tres                     []Tre
	dataLength               int64
	headerLength             int64
}

// Identifier returns the IID1 segment identifier.
func (s *ImageSegment) Identifier() string { return s.identifier }

// DateTime returns the image date and time.
func (s *ImageSegment) DateTime() DateTime { return s.dateTime }

// Target returns the decoded target identifier.
func (s *ImageSegment) Target() TargetInfo { return s.target }

// Title returns the IID2 secondary identifier.
func (s *ImageSegment) Title() string { return s.title }

// Security returns the segment security metadata.
func (s *ImageSegment) Security() SecurityInfo { return s.security }

// Source returns the ISORCE image source description.
func (s *ImageSegment) Source() string { return s.source }

// Rows returns NROWS.
func (s *ImageSegment) Rows() int64 { return s.rows }

// Columns returns NCOLS.
func (s *ImageSegment) Columns() int64 { return s.columns }

// PixelValueType returns the decoded PVTYPE.
func (s *ImageSegment) PixelValueType() PixelValueType { return s.pixelValueType }

// Representation returns the decoded IREP.
func (s *ImageSegment) Representation() Representation { return s.representation }

// Category returns the decoded ICAT.
func (s *ImageSegment) Category() Category { return s.category }

// ActualBitsPerPixel returns ABPP.
func (s *ImageSegment) ActualBitsPerPixel() int { return s.actualBitsPerPixel }

// CoordinateRepresentation returns the decoded ICORDS discriminator.
func (s *ImageSegment) CoordinateRepresentation() CoordinateRepresentation {
	return s.coordinateRep
}

// Corners returns the decoded corner coordinates, or nil when the
// segment declares none.
func (s *ImageSegment) Corners() *Corners { return s.corners }

// HasCorners reports whether a corner coordinate set was decoded.
func (s *ImageSegment) HasCorners() bool { return s.corners != nil }

// Comments returns the image comment lines in file order.
func (s *ImageSegment) Comments() []string { return s.comments }

// Compression returns the decoded IC.
func (s *ImageSegment) Compression() Compression { return s.compression }

// CompressionRate returns COMRAT, empty when the compression kind
// carries no rate field.
func (s *ImageSegment) CompressionRate() string { return s.compressionRate }

// Bands returns the per-band descriptors.
func (s *ImageSegment) Bands() []Band { return s.bands }

// Mode returns the IMODE band interleave mode code.
func (s *ImageSegment) Mode() string { return s.mode }

// BlocksPerRow returns NBPR.
func (s *ImageSegment) BlocksPerRow() int { return s.blocksPerRow }

// BlocksPerColumn returns NBPC.
func (s *ImageSegment) BlocksPerColumn() int { return s.blocksPerColumn }

// PixelsPerBlockHorizontal returns NPPBH.
func (s *ImageSegment) PixelsPerBlockHorizontal() int { return s.pixelsPerBlockHorizontal }

// PixelsPerBlockVertical returns NPPBV.
func (s *ImageSegment) PixelsPerBlockVertical() int { return s.pixelsPerBlockVertical }

// BitsPerPixel returns NBPP.
func (s *ImageSegment) BitsPerPixel() int { return s.bitsPerPixel }

// DisplayLevel returns IDLVL.
func (s *ImageSegment) DisplayLevel() int { return s.displayLevel }

// AttachmentLevel returns IALVL.
func (s *ImageSegment) AttachmentLevel() int { return s.attachmentLevel }

// Location returns the ILOC row and column offsets.
func (s *ImageSegment) Location() (row, column int) {
	return s.locationRow, s.locationColumn
}

// Magnification returns the IMAG display magnification.
func (s *ImageSegment) Magnification() string { return s.magnification }

// Tres returns the segment extension records from both extension stages.
func (s *ImageSegment) Tres() []Tre { return s.tres }

// DataLength returns the declared length of the image data payload.
func (s *ImageSegment) DataLength() int64 { return s.dataLength }

// HeaderLength returns the number of subheader bytes consumed.
func (s *ImageSegment) HeaderLength() int64 { return s.headerLength }
