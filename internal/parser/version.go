package parser

// FileType identifies the NITF format version a file declares in its
// FHDR/FVER fields. The two major versions differ in a small set of
// field-presence rules: the XBANDS fallback (absent in 2.0), the security
// block layout, the date-time encoding and the FBKGC/ONAME split.
//
// NSIF 1.0 is the NATO profile of NITF 2.1 and shares its layout.
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeNitf20
	FileTypeNitf21
	FileTypeNsif10
)

// String returns the version literal as written in FHDR+FVER.
func (ft FileType) String() string {
	switch ft {
	case FileTypeNitf20:
		return "NITF02.00"
	case FileTypeNitf21:
		return "NITF02.10"
	case FileTypeNsif10:
		return "NSIF01.00"
	default:
		return "UNKNOWN"
	}
}

// SupportsExtendedBandCount reports whether this version carries the
// 5-digit XBANDS fallback read when NBANDS decodes to zero. NITF 2.0
// predates XBANDS and never has the field.
func (ft FileType) SupportsExtendedBandCount() bool {
	return ft != FileTypeNitf20
}

// fileTypeFor maps the FHDR magic and FVER version string to a FileType.
// Unrecognised combinations return FileTypeUnknown.
func fileTypeFor(fhdr string, fver string) FileType {
	switch {
	case fhdr == "NITF" && fver == "02.10":
		return FileTypeNitf21
	case fhdr == "NITF" && fver == "02.00":
		return FileTypeNitf20
	case fhdr == "NSIF" && fver == "01.00":
		return FileTypeNsif10
	default:
		return FileTypeUnknown
	}
}
