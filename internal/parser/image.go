package parser

// Image segment subheader decoding.
//
// The subheader is a fixed linear run of fields with branching at five
// guarded points only: the IGEOLO coordinate block (gated on ICORDS),
// the COMRAT compression rate (gated on IC), the XBANDS band-count
// fallback (gated on NBANDS == 0 and file version), the per-band
// descriptors (repeated band-count times) and the two independent
// extension stages (each gated on its own length field).
//
// Reference: MIL-STD-2500C table A-3 (NITF image subheader).

// Image subheader field widths.
const (
	imageMagic = "IM"

	iid1Length     = 10
	tgtidLength    = targetIdLength
	iid2Length     = 80
	encrypLength   = 1
	isorceLength   = 42
	nrowsLength    = 8
	ncolsLength    = 8
	pvtypeLength   = 3
	irepLength     = 8
	icatLength     = 8
	abppLength     = 2
	pjustLength    = 1
	icordsLength   = 1
	nicomLength    = 1
	icomLength     = 80
	icLength       = 2
	comratLength   = 4
	nbandsLength   = 1
	xbandsLength   = 5
	isyncLength    = 1
	imodeLength    = 1
	nbprLength     = 4
	nbpcLength     = 4
	nppbhLength    = 4
	nppbvLength    = 4
	nbppLength     = 2
	idlvlLength    = 3
	ialvlLength    = 3
	ilocHalfLength = 5
	imagLength     = 4
	udidlLength    = 5
	udoflLength    = 3
	ixshdlLength   = 5
	ixsoflLength   = 3
)

// ImageSegment is a fully decoded image segment subheader. It is built by
// exactly one decode pass and never mutated afterwards; all access is
// through accessor methods.
type ImageSegment struct {
	identifier               string
	dateTime                 DateTime
	targetId                 TargetId
	identifier2              string
	security                 *SecurityMetadata
	source                   string
	numRows                  int64
	numColumns               int64
	pixelValueType           PixelValueType
	representation           ImageRepresentation
	category                 ImageCategory
	actualBitsPerPixel       int
	pixelJustification       PixelJustification
	coordinateRepresentation CoordinateRepresentation
	coordinates              *CoordinateSet
	comments                 []string
	compression              ImageCompression
	compressionRate          string
	bands                    []*ImageBand
	mode                     ImageMode
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
	userDefinedOverflow      int
	extendedOverflow         int
	tres                     TreCollection
	dataLength               int64
	headerLength             int64
}

// Identifier returns the IID1 segment identifier.
func (s *ImageSegment) Identifier() string { return s.identifier }

// DateTime returns the IDATIM image date and time.
func (s *ImageSegment) DateTime() DateTime { return s.dateTime }

// TargetId returns the decoded TGTID composite.
func (s *ImageSegment) TargetId() TargetId { return s.targetId }

// Identifier2 returns the IID2 secondary identifier (title).
func (s *ImageSegment) Identifier2() string { return s.identifier2 }

// Security returns the segment security metadata.
func (s *ImageSegment) Security() *SecurityMetadata { return s.security }

// Source returns the ISORCE image source description.
func (s *ImageSegment) Source() string { return s.source }

// NumRows returns NROWS, the number of significant pixel rows.
func (s *ImageSegment) NumRows() int64 { return s.numRows }

// NumColumns returns NCOLS, the number of significant pixel columns.
func (s *ImageSegment) NumColumns() int64 { return s.numColumns }

// PixelValueType returns the decoded PVTYPE.
func (s *ImageSegment) PixelValueType() PixelValueType { return s.pixelValueType }

// Representation returns the decoded IREP.
func (s *ImageSegment) Representation() ImageRepresentation { return s.representation }

// Category returns the decoded ICAT.
func (s *ImageSegment) Category() ImageCategory { return s.category }

// ActualBitsPerPixel returns ABPP.
func (s *ImageSegment) ActualBitsPerPixel() int { return s.actualBitsPerPixel }

// PixelJustification returns the decoded PJUST.
func (s *ImageSegment) PixelJustification() PixelJustification { return s.pixelJustification }

// CoordinateRepresentation returns the decoded ICORDS discriminator.
func (s *ImageSegment) CoordinateRepresentation() CoordinateRepresentation {
	return s.coordinateRepresentation
}

// Coordinates returns the decoded corner coordinates, or nil when ICORDS
// declared none (or an unrecognised code).
func (s *ImageSegment) Coordinates() *CoordinateSet { return s.coordinates }

// HasCoordinates reports whether a corner coordinate set was decoded.
func (s *ImageSegment) HasCoordinates() bool { return s.coordinates != nil }

// Comments returns the ICOM comment lines in file order.
func (s *ImageSegment) Comments() []string { return s.comments }

// Compression returns the decoded IC.
func (s *ImageSegment) Compression() ImageCompression { return s.compression }

// CompressionRate returns COMRAT, empty when the compression kind carries
// no rate field.
func (s *ImageSegment) CompressionRate() string { return s.compressionRate }

// HasCompressionRate reports whether a COMRAT field was present.
func (s *ImageSegment) HasCompressionRate() bool {
	return s.compression.HasCompressionRate()
}

// NumBands returns the resolved band count (NBANDS, or XBANDS when the
// primary field was zero on a version that supports the fallback).
func (s *ImageSegment) NumBands() int { return len(s.bands) }

// Band returns the 1-based band n, matching the NITF field numbering.
func (s *ImageSegment) Band(n int) *ImageBand { return s.bands[n-1] }

// Mode returns the decoded IMODE.
func (s *ImageSegment) Mode() ImageMode { return s.mode }

// BlocksPerRow returns NBPR.
func (s *ImageSegment) BlocksPerRow() int { return s.blocksPerRow }

// BlocksPerColumn returns NBPC.
func (s *ImageSegment) BlocksPerColumn() int { return s.blocksPerColumn }

// PixelsPerBlockHorizontal returns the raw NPPBH value.
func (s *ImageSegment) PixelsPerBlockHorizontal() int { return s.pixelsPerBlockHorizontal }

// PixelsPerBlockVertical returns the raw NPPBV value.
func (s *ImageSegment) PixelsPerBlockVertical() int { return s.pixelsPerBlockVertical }

// BitsPerPixel returns NBPP, the container size per pixel per band.
func (s *ImageSegment) BitsPerPixel() int { return s.bitsPerPixel }

// DisplayLevel returns IDLVL.
func (s *ImageSegment) DisplayLevel() int { return s.displayLevel }

// AttachmentLevel returns IALVL.
func (s *ImageSegment) AttachmentLevel() int { return s.attachmentLevel }

// Location returns the ILOC row and column offsets relative to the
// attachment level origin.
func (s *ImageSegment) Location() (row int, column int) {
	return s.locationRow, s.locationColumn
}

// Magnification returns the IMAG display magnification, e.g. "1.0 ".
func (s *ImageSegment) Magnification() string { return s.magnification }

// UserDefinedOverflow returns UDOFL: the DES sequence number user-defined
// data overflowed into, zero when there was no user-defined stage.
func (s *ImageSegment) UserDefinedOverflow() int { return s.userDefinedOverflow }

// ExtendedOverflow returns IXSOFL, zero when there was no extended
// subheader stage.
func (s *ImageSegment) ExtendedOverflow() int { return s.extendedOverflow }

// Tres returns the merged extension records from both extension stages.
func (s *ImageSegment) Tres() *TreCollection { return &s.tres }

// DataLength returns the caller-declared length of the image data that
// follows the subheader. Reading that data is the file layer's concern.
func (s *ImageSegment) DataLength() int64 { return s.dataLength }

// HeaderLength returns the number of subheader bytes the decode consumed.
func (s *ImageSegment) HeaderLength() int64 { return s.headerLength }

// ImageSegmentParser decodes one image segment subheader. A parser
// instance is single shot: its cursor and partially built entity are
// unsynchronised mutable state, so create one parser per segment and do
// not reuse or share it.
type ImageSegmentParser struct {
	reader   *Reader
	registry *TreRegistry
	segment  *ImageSegment

	// Stage-to-stage counts that gate later stages.
	numComments           int
	numBands              int
	userDefinedDataLength int
	extendedDataLength    int
}

// NewImageSegmentParser returns a parser that resolves extension tags
// against registry (nil decodes every extension as a raw blob).
func NewImageSegmentParser(registry *TreRegistry) *ImageSegmentParser {
	return &ImageSegmentParser{registry: registry}
}

// Parse decodes the image segment subheader at the reader's cursor.
// dataLength is the declared length of the image data that follows, taken
// from the file header's LIn table.
//
// Any field failure aborts the decode; no partial segment is returned and
// the reader is left mid-segment, unusable for further decoding.
func (p *ImageSegmentParser) Parse(r *Reader, dataLength int64) (*ImageSegment, error) {
	p.reader = r
	p.segment = &ImageSegment{dataLength: dataLength}
	start := r.Offset()

	stages := []func() error{
		p.readMagic,
		p.readIdentifier,
		p.readDateTime,
		p.readTargetId,
		p.readIdentifier2,
		p.readSecurity,
		p.readEncryption,
		p.readSource,
		p.readDimensions,
		p.readPixelValueType,
		p.readRepresentation,
		p.readCategory,
		p.readPixelLayout,
		p.readCoordinates,
		p.readComments,
		p.readCompression,
		p.readBands,
		p.readSyncAndMode,
		p.readBlockStructure,
		p.readDisplayAttachment,
		p.readUserDefinedData,
		p.readExtendedData,
	}
	for _, stage := range stages {
		if err := stage(); err != nil {
			return nil, err
		}
	}

	p.segment.headerLength = r.Offset() - start
	return p.segment, nil
}

func (p *ImageSegmentParser) readMagic() error {
	return p.reader.VerifyMagic(imageMagic)
}

func (p *ImageSegmentParser) readIdentifier() error {
	var err error
	p.segment.identifier, err = p.reader.ReadTrimmed(iid1Length)
	return err
}

func (p *ImageSegmentParser) readDateTime() error {
	var err error
	p.segment.dateTime, err = readDateTime(p.reader)
	return err
}

func (p *ImageSegmentParser) readTargetId() error {
	raw, err := p.reader.ReadString(tgtidLength)
	if err != nil {
		return err
	}
	p.segment.targetId = newTargetId(raw)
	return nil
}

func (p *ImageSegmentParser) readIdentifier2() error {
	var err error
	p.segment.identifier2, err = p.reader.ReadTrimmed(iid2Length)
	return err
}

func (p *ImageSegmentParser) readSecurity() error {
	var err error
	p.segment.security, err = parseSecurityMetadata(p.reader)
	return err
}

// readEncryption consumes ENCRYP. Only "0" (not encrypted) was ever
// standardised; the value is read for alignment and discarded.
func (p *ImageSegmentParser) readEncryption() error {
	_, err := p.reader.ReadBytes(encrypLength)
	return err
}

func (p *ImageSegmentParser) readSource() error {
	var err error
	p.segment.source, err = p.reader.ReadTrimmed(isorceLength)
	return err
}

func (p *ImageSegmentParser) readDimensions() error {
	var err error
	if p.segment.numRows, err = p.reader.ReadLong(nrowsLength); err != nil {
		return err
	}
	p.segment.numColumns, err = p.reader.ReadLong(ncolsLength)
	return err
}

func (p *ImageSegmentParser) readPixelValueType() error {
	offset := p.reader.Offset()
	code, err := p.reader.ReadTrimmed(pvtypeLength)
	if err != nil {
		return err
	}
	p.segment.pixelValueType, err = decodeEnum(pixelValueTypeCodes, code, offset)
	return err
}

func (p *ImageSegmentParser) readRepresentation() error {
	offset := p.reader.Offset()
	code, err := p.reader.ReadTrimmed(irepLength)
	if err != nil {
		return err
	}
	p.segment.representation, err = decodeEnum(imageRepresentationCodes, code, offset)
	return err
}

func (p *ImageSegmentParser) readCategory() error {
	offset := p.reader.Offset()
	code, err := p.reader.ReadTrimmed(icatLength)
	if err != nil {
		return err
	}
	p.segment.category, err = decodeEnum(imageCategoryCodes, code, offset)
	return err
}

func (p *ImageSegmentParser) readPixelLayout() error {
	var err error
	if p.segment.actualBitsPerPixel, err = p.reader.ReadInt(abppLength); err != nil {
		return err
	}
	offset := p.reader.Offset()
	code, err := p.reader.ReadString(pjustLength)
	if err != nil {
		return err
	}
	p.segment.pixelJustification, err = decodeEnum(pixelJustificationCodes, code, offset)
	return err
}

// readCoordinates decodes ICORDS and, when the discriminator names a
// present representation, the 60-byte IGEOLO block. "None" and
// unrecognised discriminators consume no coordinate bytes at all.
func (p *ImageSegmentParser) readCoordinates() error {
	code, err := p.reader.ReadString(icordsLength)
	if err != nil {
		return err
	}
	rep := decodeCoordinateRepresentation(code, p.reader.FileType())
	p.segment.coordinateRepresentation = rep
	if rep.IsAbsent() {
		return nil
	}

	offset := p.reader.Offset()
	igeolo, err := p.reader.ReadString(igeoloLength)
	if err != nil {
		return err
	}
	p.segment.coordinates, err = decodeCoordinateSet(igeolo, rep, offset)
	return err
}

func (p *ImageSegmentParser) readComments() error {
	var err error
	if p.numComments, err = p.reader.ReadInt(nicomLength); err != nil {
		return err
	}
	for i := 0; i < p.numComments; i++ {
		comment, err := p.reader.ReadTrimmed(icomLength)
		if err != nil {
			return err
		}
		p.segment.comments = append(p.segment.comments, comment)
	}
	return nil
}

// readCompression decodes IC and the COMRAT rate field that follows for
// every compression kind except NC and NM.
func (p *ImageSegmentParser) readCompression() error {
	offset := p.reader.Offset()
	code, err := p.reader.ReadString(icLength)
	if err != nil {
		return err
	}
	p.segment.compression, err = decodeEnum(imageCompressionCodes, code, offset)
	if err != nil {
		return err
	}
	if p.segment.compression.HasCompressionRate() {
		p.segment.compressionRate, err = p.reader.ReadTrimmed(comratLength)
	}
	return err
}

// readBands resolves the band count and decodes each band descriptor.
// NBANDS is a single digit; a multispectral image with ten or more bands
// writes zero there and carries the real count in the 5-digit XBANDS
// field, which exists in NITF 2.1/NSIF only. On NITF 2.0 a zero NBANDS
// simply means zero bands.
func (p *ImageSegmentParser) readBands() error {
	var err error
	if p.numBands, err = p.reader.ReadInt(nbandsLength); err != nil {
		return err
	}
	if p.numBands == 0 && p.reader.FileType().SupportsExtendedBandCount() {
		if p.numBands, err = p.reader.ReadInt(xbandsLength); err != nil {
			return err
		}
	}
	for i := 0; i < p.numBands; i++ {
		band, err := parseImageBand(p.reader)
		if err != nil {
			return err
		}
		p.segment.bands = append(p.segment.bands, band)
	}
	return nil
}

// readSyncAndMode consumes the reserved ISYNC field and decodes IMODE.
func (p *ImageSegmentParser) readSyncAndMode() error {
	if _, err := p.reader.ReadBytes(isyncLength); err != nil {
		return err
	}
	offset := p.reader.Offset()
	code, err := p.reader.ReadString(imodeLength)
	if err != nil {
		return err
	}
	p.segment.mode, err = decodeEnum(imageModeCodes, code, offset)
	return err
}

func (p *ImageSegmentParser) readBlockStructure() error {
	var err error
	if p.segment.blocksPerRow, err = p.reader.ReadInt(nbprLength); err != nil {
		return err
	}
	if p.segment.blocksPerColumn, err = p.reader.ReadInt(nbpcLength); err != nil {
		return err
	}
	if p.segment.pixelsPerBlockHorizontal, err = p.reader.ReadInt(nppbhLength); err != nil {
		return err
	}
	if p.segment.pixelsPerBlockVertical, err = p.reader.ReadInt(nppbvLength); err != nil {
		return err
	}
	p.segment.bitsPerPixel, err = p.reader.ReadInt(nbppLength)
	return err
}

func (p *ImageSegmentParser) readDisplayAttachment() error {
	var err error
	if p.segment.displayLevel, err = p.reader.ReadInt(idlvlLength); err != nil {
		return err
	}
	if p.segment.attachmentLevel, err = p.reader.ReadInt(ialvlLength); err != nil {
		return err
	}
	if p.segment.locationRow, err = p.reader.ReadInt(ilocHalfLength); err != nil {
		return err
	}
	if p.segment.locationColumn, err = p.reader.ReadInt(ilocHalfLength); err != nil {
		return err
	}
	p.segment.magnification, err = p.reader.ReadTrimmed(imagLength)
	return err
}

// readUserDefinedData decodes the UDIDL-gated extension stage. When the
// length is non-zero the 3-byte UDOFL overflow field is consumed first
// and its width subtracted from the length handed to the extension
// decode.
func (p *ImageSegmentParser) readUserDefinedData() error {
	var err error
	if p.userDefinedDataLength, err = p.reader.ReadInt(udidlLength); err != nil {
		return err
	}
	if p.userDefinedDataLength == 0 {
		return nil
	}
	if p.segment.userDefinedOverflow, err = p.reader.ReadInt(udoflLength); err != nil {
		return err
	}
	tres, err := parseTres(p.reader, p.userDefinedDataLength-udoflLength,
		SourceUserDefinedImageData, p.registry)
	if err != nil {
		return err
	}
	p.segment.tres.merge(tres)
	return nil
}

// readExtendedData decodes the IXSHDL-gated extension stage, with the
// same overflow-then-records pattern as the user-defined stage but an
// independent trigger and overflow field.
func (p *ImageSegmentParser) readExtendedData() error {
	var err error
	if p.extendedDataLength, err = p.reader.ReadInt(ixshdlLength); err != nil {
		return err
	}
	if p.extendedDataLength == 0 {
		return nil
	}
	if p.segment.extendedOverflow, err = p.reader.ReadInt(ixsoflLength); err != nil {
		return err
	}
	tres, err := parseTres(p.reader, p.extendedDataLength-ixsoflLength,
		SourceImageExtendedSubheaderData, p.registry)
	if err != nil {
		return err
	}
	p.segment.tres.merge(tres)
	return nil
}
