package parser

// NITF file header decoding.
//
// The file header carries the format version, originator metadata, the
// file security block and, critically for segment decoding, the length
// tables that locate every segment in the file: for each segment kind, a
// 3-digit count followed by (subheader length, data length) pairs. The
// file layer walks these tables to find and bound each image subheader.
//
// Reference: MIL-STD-2500C table A-1 (NITF file header).

// File header field widths.
const (
	fhdrLength    = 4
	fverLength    = 5
	clevelLength  = 2
	stypeLength   = 4
	ostaidLength  = 10
	ftitleLength  = 80
	fscopLength   = 5
	fscpysLength  = 5
	fbkgcLength   = 3
	onameLength   = 24
	oname20Length = 27
	ophoneLength  = 18
	flLength      = 12
	hlLength      = 6

	segmentCountLength = 3

	lishLength  = 6
	liLength    = 10
	lsshLength  = 4
	lsLength    = 6
	llshLength  = 4
	llLength    = 3
	ltshLength  = 4
	ltLength    = 5
	ldshLength  = 4
	ldLength    = 9
	lreshLength = 4
	lreLength   = 7

	udhdlLength  = 5
	udhoflLength = 3
	xhdlLength   = 5
	xhdoflLength = 3
)

// SegmentLengths is one entry of a file header length table: the
// subheader and data lengths of a single segment.
type SegmentLengths struct {
	SubheaderLength int64
	DataLength      int64
}

// FileHeader is the decoded NITF file header.
type FileHeader struct {
	fileType         FileType
	complexityLevel  int
	standardType     string
	originStationId  string
	dateTime         DateTime
	title            string
	security         *SecurityMetadata
	copyNumber       string
	numberOfCopies   string
	backgroundColour [3]byte
	originatorName   string
	originatorPhone  string
	fileLength       int64
	headerLength     int64

	imageSegments         []SegmentLengths
	graphicSegments       []SegmentLengths
	labelSegments         []SegmentLengths
	textSegments          []SegmentLengths
	dataExtensionSegments []SegmentLengths
	reservedSegments      []SegmentLengths

	userDefinedOverflow int
	extendedOverflow    int
	tres                TreCollection
}

// FileType returns the decoded format version.
func (h *FileHeader) FileType() FileType { return h.fileType }

// ComplexityLevel returns CLEVEL.
func (h *FileHeader) ComplexityLevel() int { return h.complexityLevel }

// StandardType returns STYPE ("BF01" for compliant files).
func (h *FileHeader) StandardType() string { return h.standardType }

// OriginStationId returns OSTAID.
func (h *FileHeader) OriginStationId() string { return h.originStationId }

// DateTime returns the FDT file date and time.
func (h *FileHeader) DateTime() DateTime { return h.dateTime }

// Title returns FTITLE.
func (h *FileHeader) Title() string { return h.title }

// Security returns the file-level security metadata.
func (h *FileHeader) Security() *SecurityMetadata { return h.security }

// CopyNumber returns FSCOP.
func (h *FileHeader) CopyNumber() string { return h.copyNumber }

// NumberOfCopies returns FSCPYS.
func (h *FileHeader) NumberOfCopies() string { return h.numberOfCopies }

// BackgroundColour returns the FBKGC RGB bytes (2.1/NSIF only).
func (h *FileHeader) BackgroundColour() (red, green, blue byte) {
	return h.backgroundColour[0], h.backgroundColour[1], h.backgroundColour[2]
}

// OriginatorName returns ONAME.
func (h *FileHeader) OriginatorName() string { return h.originatorName }

// OriginatorPhone returns OPHONE.
func (h *FileHeader) OriginatorPhone() string { return h.originatorPhone }

// FileLength returns FL, the declared length of the entire file.
func (h *FileHeader) FileLength() int64 { return h.fileLength }

// HeaderLength returns HL, the declared length of the file header.
func (h *FileHeader) HeaderLength() int64 { return h.headerLength }

// ImageSegments returns the image segment length table.
func (h *FileHeader) ImageSegments() []SegmentLengths { return h.imageSegments }

// GraphicSegments returns the graphic (2.1) / symbol (2.0) length table.
func (h *FileHeader) GraphicSegments() []SegmentLengths { return h.graphicSegments }

// LabelSegments returns the label segment length table (2.0 only; always
// empty on 2.1/NSIF where the table slot is reserved).
func (h *FileHeader) LabelSegments() []SegmentLengths { return h.labelSegments }

// TextSegments returns the text segment length table.
func (h *FileHeader) TextSegments() []SegmentLengths { return h.textSegments }

// DataExtensionSegments returns the DES length table.
func (h *FileHeader) DataExtensionSegments() []SegmentLengths { return h.dataExtensionSegments }

// ReservedSegments returns the reserved extension segment length table.
func (h *FileHeader) ReservedSegments() []SegmentLengths { return h.reservedSegments }

// Tres returns the merged file-level extension records.
func (h *FileHeader) Tres() *TreCollection { return &h.tres }

// parseFileHeader decodes the file header at the cursor and records the
// detected version on the reader for the segment decodes that follow.
func parseFileHeader(r *Reader, registry *TreRegistry) (*FileHeader, error) {
	header := &FileHeader{}

	// FHDR + FVER identify the version; every later width depends on it.
	versionOffset := r.Offset()
	fhdr, err := r.ReadString(fhdrLength)
	if err != nil {
		return nil, err
	}
	fver, err := r.ReadString(fverLength)
	if err != nil {
		return nil, err
	}
	header.fileType = fileTypeFor(fhdr, fver)
	if header.fileType == FileTypeUnknown {
		return nil, &ErrFormatMismatch{
			Expected: "NITF02.10, NITF02.00 or NSIF01.00",
			Actual:   fhdr + fver,
			Offset:   versionOffset,
		}
	}
	r.SetFileType(header.fileType)

	if header.complexityLevel, err = r.ReadInt(clevelLength); err != nil {
		return nil, err
	}
	if header.standardType, err = r.ReadTrimmed(stypeLength); err != nil {
		return nil, err
	}
	if header.originStationId, err = r.ReadTrimmed(ostaidLength); err != nil {
		return nil, err
	}
	if header.dateTime, err = readDateTime(r); err != nil {
		return nil, err
	}
	if header.title, err = r.ReadTrimmed(ftitleLength); err != nil {
		return nil, err
	}
	if header.security, err = parseSecurityMetadata(r); err != nil {
		return nil, err
	}
	if header.copyNumber, err = r.ReadTrimmed(fscopLength); err != nil {
		return nil, err
	}
	if header.numberOfCopies, err = r.ReadTrimmed(fscpysLength); err != nil {
		return nil, err
	}
	if _, err = r.ReadBytes(encrypLength); err != nil {
		return nil, err
	}

	// NITF 2.1/NSIF splits the 2.0 27-byte originator name into a 3-byte
	// binary background colour and a 24-byte name.
	if header.fileType == FileTypeNitf20 {
		if header.originatorName, err = r.ReadTrimmed(oname20Length); err != nil {
			return nil, err
		}
	} else {
		fbkgc, err := r.ReadBytes(fbkgcLength)
		if err != nil {
			return nil, err
		}
		copy(header.backgroundColour[:], fbkgc)
		if header.originatorName, err = r.ReadTrimmed(onameLength); err != nil {
			return nil, err
		}
	}
	if header.originatorPhone, err = r.ReadTrimmed(ophoneLength); err != nil {
		return nil, err
	}
	if header.fileLength, err = r.ReadLong(flLength); err != nil {
		return nil, err
	}
	if header.headerLength, err = r.ReadLong(hlLength); err != nil {
		return nil, err
	}

	if header.imageSegments, err = readSegmentTable(r, lishLength, liLength); err != nil {
		return nil, err
	}
	if header.graphicSegments, err = readSegmentTable(r, lsshLength, lsLength); err != nil {
		return nil, err
	}
	// The third table is labels on 2.0; on 2.1/NSIF the slot is the
	// reserved NUMX count, required to be zero, with no entry widths.
	if header.fileType == FileTypeNitf20 {
		if header.labelSegments, err = readSegmentTable(r, llshLength, llLength); err != nil {
			return nil, err
		}
	} else {
		if _, err = r.ReadInt(segmentCountLength); err != nil {
			return nil, err
		}
	}
	if header.textSegments, err = readSegmentTable(r, ltshLength, ltLength); err != nil {
		return nil, err
	}
	if header.dataExtensionSegments, err = readSegmentTable(r, ldshLength, ldLength); err != nil {
		return nil, err
	}
	if header.reservedSegments, err = readSegmentTable(r, lreshLength, lreLength); err != nil {
		return nil, err
	}

	// Two length-gated extension stages, same pattern as the image
	// subheader: overflow field first, then records for the remainder.
	udhdl, err := r.ReadInt(udhdlLength)
	if err != nil {
		return nil, err
	}
	if udhdl > 0 {
		if header.userDefinedOverflow, err = r.ReadInt(udhoflLength); err != nil {
			return nil, err
		}
		tres, err := parseTres(r, udhdl-udhoflLength, SourceUserDefinedHeaderData, registry)
		if err != nil {
			return nil, err
		}
		header.tres.merge(tres)
	}
	xhdl, err := r.ReadInt(xhdlLength)
	if err != nil {
		return nil, err
	}
	if xhdl > 0 {
		if header.extendedOverflow, err = r.ReadInt(xhdoflLength); err != nil {
			return nil, err
		}
		tres, err := parseTres(r, xhdl-xhdoflLength, SourceExtendedHeaderData, registry)
		if err != nil {
			return nil, err
		}
		header.tres.merge(tres)
	}

	return header, nil
}

// readSegmentTable decodes one length table: a 3-digit count, then that
// many (subheader length, data length) pairs at the given widths.
func readSegmentTable(r *Reader, subheaderWidth int, dataWidth int) ([]SegmentLengths, error) {
	count, err := r.ReadInt(segmentCountLength)
	if err != nil {
		return nil, err
	}
	table := make([]SegmentLengths, 0, count)
	for i := 0; i < count; i++ {
		subheader, err := r.ReadLong(subheaderWidth)
		if err != nil {
			return nil, err
		}
		data, err := r.ReadLong(dataWidth)
		if err != nil {
			return nil, err
		}
		table = append(table, SegmentLengths{SubheaderLength: subheader, DataLength: data})
	}
	return table, nil
}
