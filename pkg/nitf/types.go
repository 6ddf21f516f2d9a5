package nitf

import (
	"time"

	"github.com/beetlebugorg/nitf/internal/parser"
)

// Version identifies the NITF format version declared by a file.
type Version int

const (
	VersionUnknown = Version(parser.FileTypeUnknown)
	VersionNitf20  = Version(parser.FileTypeNitf20)
	VersionNitf21  = Version(parser.FileTypeNitf21)
	VersionNsif10  = Version(parser.FileTypeNsif10)
)

// String returns the version literal as written in the file header.
func (v Version) String() string {
	return parser.FileType(v).String()
}

// PixelValueType is the decoded PVTYPE field.
type PixelValueType int

const (
	PixelValueInteger       = PixelValueType(parser.PixelValueInteger)
	PixelValueBilevel       = PixelValueType(parser.PixelValueBilevel)
	PixelValueSignedInteger = PixelValueType(parser.PixelValueSignedInteger)
	PixelValueReal          = PixelValueType(parser.PixelValueReal)
	PixelValueComplex       = PixelValueType(parser.PixelValueComplex)
)

func (p PixelValueType) String() string {
	return parser.PixelValueType(p).String()
}

// Representation is the decoded IREP field.
type Representation int

const (
	RepresentationMonochrome      = Representation(parser.RepresentationMonochrome)
	RepresentationRGBTrueColour   = Representation(parser.RepresentationRGBTrueColour)
	RepresentationRGBLUT          = Representation(parser.RepresentationRGBLUT)
	RepresentationMultiband       = Representation(parser.RepresentationMultiband)
	RepresentationNotForDisplay   = Representation(parser.RepresentationNotForDisplay)
	RepresentationCartesianVector = Representation(parser.RepresentationCartesianVector)
	RepresentationPolarVector     = Representation(parser.RepresentationPolarVector)
	RepresentationSARVideoPhase   = Representation(parser.RepresentationSARVideoPhase)
	RepresentationITUBT6015       = Representation(parser.RepresentationITUBT6015)
)

func (r Representation) String() string {
	return parser.ImageRepresentation(r).String()
}

// Category is the decoded ICAT field. The constant set mirrors the
// MIL-STD-2500C code table; see the String method for the textual codes.
type Category int

const (
	CategoryVisual                 = Category(parser.CategoryVisual)
	CategoryMultispectral          = Category(parser.CategoryMultispectral)
	CategoryHyperspectral          = Category(parser.CategoryHyperspectral)
	CategoryInfrared               = Category(parser.CategoryInfrared)
	CategoryElectroOptical         = Category(parser.CategoryElectroOptical)
	CategoryOptical                = Category(parser.CategoryOptical)
	CategorySyntheticApertureRadar = Category(parser.CategorySyntheticApertureRadar)
	CategorySideLookingRadar       = Category(parser.CategorySideLookingRadar)
	CategoryRadar                  = Category(parser.CategoryRadar)
	CategoryRasterMap              = Category(parser.CategoryRasterMap)
	CategoryElevationModel         = Category(parser.CategoryElevationModel)
	CategoryLocationGrid           = Category(parser.CategoryLocationGrid)
	CategoryMatrixData             = Category(parser.CategoryMatrixData)
	CategoryVideo                  = Category(parser.CategoryVideo)
)

func (c Category) String() string {
	return parser.ImageCategory(c).String()
}

// Compression is the decoded IC field.
type Compression int

const (
	CompressionNone               = Compression(parser.CompressionNone)
	CompressionNoneMask           = Compression(parser.CompressionNoneMask)
	CompressionBilevel            = Compression(parser.CompressionBilevel)
	CompressionBilevelMask        = Compression(parser.CompressionBilevelMask)
	CompressionJPEG               = Compression(parser.CompressionJPEG)
	CompressionJPEGMask           = Compression(parser.CompressionJPEGMask)
	CompressionVectorQuantization = Compression(parser.CompressionVectorQuantization)
	CompressionLosslessJPEG       = Compression(parser.CompressionLosslessJPEG)
	CompressionJPEG2000           = Compression(parser.CompressionJPEG2000)
	CompressionJPEG2000Mask       = Compression(parser.CompressionJPEG2000Mask)
	CompressionDownsampledJPEG    = Compression(parser.CompressionDownsampledJPEG)
)

func (c Compression) String() string {
	return parser.ImageCompression(c).String()
}

// HasCompressionRate reports whether the compression kind carries a
// COMRAT rate field.
func (c Compression) HasCompressionRate() bool {
	return parser.ImageCompression(c).HasCompressionRate()
}

// CoordinateRepresentation is the decoded ICORDS discriminator.
type CoordinateRepresentation int

const (
	CoordinatesUnknown        = CoordinateRepresentation(parser.CoordinatesUnknown)
	CoordinatesNone           = CoordinateRepresentation(parser.CoordinatesNone)
	CoordinatesGeographic     = CoordinateRepresentation(parser.CoordinatesGeographic)
	CoordinatesGeocentric     = CoordinateRepresentation(parser.CoordinatesGeocentric)
	CoordinatesDecimalDegrees = CoordinateRepresentation(parser.CoordinatesDecimalDegrees)
	CoordinatesUTMUPSNorth    = CoordinateRepresentation(parser.CoordinatesUTMUPSNorth)
	CoordinatesUTMUPSSouth    = CoordinateRepresentation(parser.CoordinatesUTMUPSSouth)
	CoordinatesMGRS           = CoordinateRepresentation(parser.CoordinatesMGRS)
)

func (r CoordinateRepresentation) String() string {
	return parser.CoordinateRepresentation(r).String()
}

// IsAbsent reports whether the discriminator declares no coordinate
// block at all.
func (r CoordinateRepresentation) IsAbsent() bool {
	return parser.CoordinateRepresentation(r).IsAbsent()
}

// HasGeodeticValues reports whether decoded pairs of this representation
// carry real latitude/longitude values. Projected representations
// (UTM/UPS, MGRS) retain their grid reference in Source instead.
func (r CoordinateRepresentation) HasGeodeticValues() bool {
	switch r {
	case CoordinatesGeographic, CoordinatesGeocentric, CoordinatesDecimalDegrees:
		return true
	default:
		return false
	}
}

// Classification is the decoded security classification level.
type Classification int

const (
	ClassificationUnclassified = Classification(parser.ClassificationUnclassified)
	ClassificationRestricted   = Classification(parser.ClassificationRestricted)
	ClassificationConfidential = Classification(parser.ClassificationConfidential)
	ClassificationSecret       = Classification(parser.ClassificationSecret)
	ClassificationTopSecret    = Classification(parser.ClassificationTopSecret)
)

func (c Classification) String() string {
	return parser.SecurityClassification(c).String()
}

// SecurityInfo is the flattened security metadata block of a file header
// or segment subheader. Fields that exist in only one format version are
// empty for files of the other version.
type SecurityInfo struct {
	Classification              Classification
	ClassificationSystem        string
	Codewords                   string
	ControlAndHandling          string
	ReleaseInstructions         string
	DeclassificationType        string
	DeclassificationDate        string
	DeclassificationExemption   string
	Downgrade                   string
	DowngradeDate               string
	ClassificationText          string
	ClassificationAuthorityType string
	ClassificationAuthority     string
	ClassificationReason        string
	SecuritySourceDate          string
	SecurityControlNumber       string
	DowngradeDateOrSpecialCase  string
	DowngradeEvent              string
}

// TargetInfo is the decoded TGTID composite.
type TargetInfo struct {
	BasicEncyclopediaNumber string
	OSuffix                 string
	CountryCode             string
}

// IsEmpty reports whether every component was space filled.
func (t TargetInfo) IsEmpty() bool {
	return t.BasicEncyclopediaNumber == "" && t.OSuffix == "" && t.CountryCode == ""
}

// CoordinatePair is one decoded corner coordinate.
//
// Lat and Lon are decimal degrees for geodetic representations; for
// UTM/UPS north and MGRS corners they are zero and Source carries the
// validated grid reference.
type CoordinatePair struct {
	Lat    float64
	Lon    float64
	Source string
}

// Corners is a decoded IGEOLO corner set in file order:
// (0,0), (0,MaxCol), (MaxRow,MaxCol), (MaxRow,0).
type Corners struct {
	Representation CoordinateRepresentation
	Pairs          [4]CoordinatePair
}

// Bounds returns the axis-aligned bounding box of the corner set.
// Meaningful only when the representation carries geodetic values.
func (c *Corners) Bounds() Bounds {
	b := Bounds{
		MinLat: c.Pairs[0].Lat, MaxLat: c.Pairs[0].Lat,
		MinLon: c.Pairs[0].Lon, MaxLon: c.Pairs[0].Lon,
	}
	for _, p := range c.Pairs[1:] {
		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}
		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
		if p.Lon < b.MinLon {
			b.MinLon = p.Lon
		}
		if p.Lon > b.MaxLon {
			b.MaxLon = p.Lon
		}
	}
	return b
}

// Band is one decoded per-band descriptor.
type Band struct {
	Representation string
	Subcategory    string
	LUTs           [][]byte
}

// TreField is one decoded name/value pair of a recognised extension.
type TreField struct {
	Name  string
	Value string
}

// Tre is one decoded tagged record extension. Unrecognised tags carry
// their payload in Raw with no Fields.
type Tre struct {
	Tag    string
	Source string
	Raw    []byte
	Fields []TreField
}

// Field returns the value of a named field and whether it was decoded.
func (t *Tre) Field(name string) (string, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// DateTime is a decoded NITF date-time field. Raw is the field exactly
// as encoded; Time is zero when the field carried blanked-out components.
type DateTime struct {
	Raw  string
	Time time.Time
}

// IsZero reports whether the field did not resolve to a complete instant.
func (dt DateTime) IsZero() bool {
	return dt.Time.IsZero()
}
