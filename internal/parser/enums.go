package parser

// Enumerated header fields, decoded from their fixed-width BCS-A codes.
//
// Each enumeration is a closed set of tagged variants; the code tables in
// this file are the single place where the textual form is matched, so the
// decode pipeline never compares strings. Unknown codes fail the decode
// with ErrMalformedField: a wrong enum value means the file is corrupt or
// the reader is misaligned, and either way no later field can be trusted.
// The one exception is the ICORDS discriminator, which admits an Unknown
// variant because its decode drives skip semantics rather than a value.
//
// Reference: MIL-STD-2500C table A-3 (image subheader field values).

// PixelValueType is the PVTYPE field: how pixel values are to be
// interpreted by the image data decoder.
type PixelValueType int

const (
	PixelValueInteger PixelValueType = iota
	PixelValueBilevel
	PixelValueSignedInteger
	PixelValueReal
	PixelValueComplex
)

var pixelValueTypeCodes = map[string]PixelValueType{
	"INT": PixelValueInteger,
	"B":   PixelValueBilevel,
	"SI":  PixelValueSignedInteger,
	"R":   PixelValueReal,
	"C":   PixelValueComplex,
}

func (p PixelValueType) String() string {
	return enumString(pixelValueTypeCodes, p)
}

// ImageRepresentation is the IREP field: the intended interpretation of
// the band set (monochrome, RGB, multiband and so on).
type ImageRepresentation int

const (
	RepresentationMonochrome ImageRepresentation = iota
	RepresentationRGBTrueColour
	RepresentationRGBLUT
	RepresentationMultiband
	RepresentationNotForDisplay
	RepresentationCartesianVector
	RepresentationPolarVector
	RepresentationSARVideoPhase
	RepresentationITUBT6015
)

var imageRepresentationCodes = map[string]ImageRepresentation{
	"MONO":     RepresentationMonochrome,
	"RGB":      RepresentationRGBTrueColour,
	"RGB/LUT":  RepresentationRGBLUT,
	"MULTI":    RepresentationMultiband,
	"NODISPLY": RepresentationNotForDisplay,
	"NVECTOR":  RepresentationCartesianVector,
	"POLAR":    RepresentationPolarVector,
	"VPH":      RepresentationSARVideoPhase,
	"YCbCr601": RepresentationITUBT6015,
}

func (rep ImageRepresentation) String() string {
	return enumString(imageRepresentationCodes, rep)
}

// ImageCategory is the ICAT field: the sensing modality or product type
// of the image content.
type ImageCategory int

const (
	CategoryVisual ImageCategory = iota
	CategorySideLookingRadar
	CategoryThermalInfrared
	CategoryForwardLookingInfrared
	CategoryRadar
	CategoryElectroOptical
	CategoryOptical
	CategoryHighResolutionRadar
	CategoryHyperspectral
	CategoryColourFramePhotography
	CategoryBlackWhiteFramePhotography
	CategorySyntheticApertureRadar
	CategorySARRadioHologram
	CategoryInfrared
	CategoryMultispectral
	CategoryFingerprints
	CategoryMRI
	CategoryXRay
	CategoryCATScan
	CategoryVideo
	CategoryBarometricPressure
	CategoryWaterCurrent
	CategoryWaterDepth
	CategoryAirWindChart
	CategoryRasterMap
	CategoryColourPatch
	CategoryLegend
	CategoryElevationModel
	CategoryMatrixData
	CategoryLocationGrid
)

var imageCategoryCodes = map[string]ImageCategory{
	"VIS":     CategoryVisual,
	"SL":      CategorySideLookingRadar,
	"TI":      CategoryThermalInfrared,
	"FL":      CategoryForwardLookingInfrared,
	"RD":      CategoryRadar,
	"EO":      CategoryElectroOptical,
	"OP":      CategoryOptical,
	"HR":      CategoryHighResolutionRadar,
	"HS":      CategoryHyperspectral,
	"CP":      CategoryColourFramePhotography,
	"BP":      CategoryBlackWhiteFramePhotography,
	"SAR":     CategorySyntheticApertureRadar,
	"SARIQ":   CategorySARRadioHologram,
	"IR":      CategoryInfrared,
	"MS":      CategoryMultispectral,
	"FP":      CategoryFingerprints,
	"MRI":     CategoryMRI,
	"XRAY":    CategoryXRay,
	"CAT":     CategoryCATScan,
	"VD":      CategoryVideo,
	"BARO":    CategoryBarometricPressure,
	"CURRENT": CategoryWaterCurrent,
	"DEPTH":   CategoryWaterDepth,
	"WIND":    CategoryAirWindChart,
	"MAP":     CategoryRasterMap,
	"PAT":     CategoryColourPatch,
	"LEG":     CategoryLegend,
	"DTEM":    CategoryElevationModel,
	"MATR":    CategoryMatrixData,
	"LOCG":    CategoryLocationGrid,
}

func (c ImageCategory) String() string {
	return enumString(imageCategoryCodes, c)
}

// PixelJustification is the PJUST field: which end of the containing
// field significant pixel bits are packed into.
type PixelJustification int

const (
	JustificationLeft PixelJustification = iota
	JustificationRight
)

var pixelJustificationCodes = map[string]PixelJustification{
	"L": JustificationLeft,
	"R": JustificationRight,
}

func (j PixelJustification) String() string {
	return enumString(pixelJustificationCodes, j)
}

// ImageCompression is the IC field: the compression applied to the image
// data, with or without a block mask.
type ImageCompression int

const (
	CompressionNone ImageCompression = iota
	CompressionNoneMask
	CompressionBilevel
	CompressionBilevelMask
	CompressionARIDPCM
	CompressionARIDPCMMask
	CompressionJPEG
	CompressionJPEGMask
	CompressionVectorQuantization
	CompressionVectorQuantizationMask
	CompressionLosslessJPEG
	CompressionLosslessJPEGMask
	CompressionUserDefined
	CompressionUserDefinedMask
	CompressionJPEG2000
	CompressionJPEG2000Mask
	CompressionDownsampledJPEG
)

var imageCompressionCodes = map[string]ImageCompression{
	"NC": CompressionNone,
	"NM": CompressionNoneMask,
	"C1": CompressionBilevel,
	"M1": CompressionBilevelMask,
	"C0": CompressionARIDPCM,
	"M0": CompressionARIDPCMMask,
	"C3": CompressionJPEG,
	"M3": CompressionJPEGMask,
	"C4": CompressionVectorQuantization,
	"M4": CompressionVectorQuantizationMask,
	"C5": CompressionLosslessJPEG,
	"M5": CompressionLosslessJPEGMask,
	"C6": CompressionUserDefined,
	"M6": CompressionUserDefinedMask,
	"C8": CompressionJPEG2000,
	"M8": CompressionJPEG2000Mask,
	"I1": CompressionDownsampledJPEG,
}

func (c ImageCompression) String() string {
	return enumString(imageCompressionCodes, c)
}

// HasCompressionRate reports whether a COMRAT field follows the IC field.
// Per MIL-STD-2500C table A-3, COMRAT is present for every compression
// kind except NC and NM.
func (c ImageCompression) HasCompressionRate() bool {
	return c != CompressionNone && c != CompressionNoneMask
}

// ImageMode is the IMODE field: how bands are interleaved within and
// across blocks.
type ImageMode int

const (
	ModeBandInterleaveByBlock ImageMode = iota
	ModeBandInterleaveByPixel
	ModeBandInterleaveByRow
	ModeBandSequential
)

var imageModeCodes = map[string]ImageMode{
	"B": ModeBandInterleaveByBlock,
	"P": ModeBandInterleaveByPixel,
	"R": ModeBandInterleaveByRow,
	"S": ModeBandSequential,
}

func (m ImageMode) String() string {
	return enumString(imageModeCodes, m)
}

// SecurityClassification is the classification level carried in the
// FSCLAS/ISCLAS fields.
type SecurityClassification int

const (
	ClassificationUnclassified SecurityClassification = iota
	ClassificationRestricted
	ClassificationConfidential
	ClassificationSecret
	ClassificationTopSecret
)

var securityClassificationCodes = map[string]SecurityClassification{
	"U": ClassificationUnclassified,
	"R": ClassificationRestricted,
	"C": ClassificationConfidential,
	"S": ClassificationSecret,
	"T": ClassificationTopSecret,
}

func (c SecurityClassification) String() string {
	return enumString(securityClassificationCodes, c)
}

// CoordinateRepresentation is the ICORDS discriminator: which encoding
// the IGEOLO corner coordinate block uses, if it is present at all.
//
// The code table is version-conditional. NITF 2.0 uses {C, G, U, N} with
// N meaning "none"; NITF 2.1 and NSIF use {space, U, N, S, G, D} where
// the space means "none" and N/S select UTM hemispheres.
type CoordinateRepresentation int

const (
	// CoordinatesUnknown is an unrecognised discriminator code. The
	// coordinate block is not read; downstream consumers see no
	// coordinates rather than wrong ones.
	CoordinatesUnknown CoordinateRepresentation = iota
	// CoordinatesNone means the segment declares no corner coordinates.
	CoordinatesNone
	CoordinatesGeographic
	CoordinatesGeocentric
	CoordinatesDecimalDegrees
	CoordinatesUTMUPSNorth
	CoordinatesUTMUPSSouth
	CoordinatesMGRS
)

func (rep CoordinateRepresentation) String() string {
	switch rep {
	case CoordinatesNone:
		return "NONE"
	case CoordinatesGeographic:
		return "GEOGRAPHIC"
	case CoordinatesGeocentric:
		return "GEOCENTRIC"
	case CoordinatesDecimalDegrees:
		return "DECIMAL DEGREES"
	case CoordinatesUTMUPSNorth:
		return "UTM/UPS NORTH"
	case CoordinatesUTMUPSSouth:
		return "UTM/UPS SOUTH"
	case CoordinatesMGRS:
		return "MGRS"
	default:
		return "UNKNOWN"
	}
}

// IsAbsent reports whether the discriminator selects no coordinate block
// at all: the IGEOLO field is not present and must not be read.
func (rep CoordinateRepresentation) IsAbsent() bool {
	return rep == CoordinatesNone || rep == CoordinatesUnknown
}

var coordinateRepresentationNitf20 = map[string]CoordinateRepresentation{
	"C": CoordinatesGeocentric,
	"G": CoordinatesGeographic,
	"U": CoordinatesMGRS,
	"N": CoordinatesNone,
}

var coordinateRepresentationNitf21 = map[string]CoordinateRepresentation{
	" ": CoordinatesNone,
	"U": CoordinatesMGRS,
	"N": CoordinatesUTMUPSNorth,
	"S": CoordinatesUTMUPSSouth,
	"G": CoordinatesGeographic,
	"D": CoordinatesDecimalDegrees,
}

// decodeCoordinateRepresentation maps an ICORDS code to its variant for
// the given file version. Unrecognised codes decode as CoordinatesUnknown.
func decodeCoordinateRepresentation(code string, fileType FileType) CoordinateRepresentation {
	table := coordinateRepresentationNitf21
	if fileType == FileTypeNitf20 {
		table = coordinateRepresentationNitf20
	}
	if rep, ok := table[code]; ok {
		return rep
	}
	return CoordinatesUnknown
}

// decodeEnum resolves a trimmed field code against a closed code table.
// Unknown codes are a hard failure at the field's start offset.
func decodeEnum[E comparable](codes map[string]E, value string, offset int64) (E, error) {
	if v, ok := codes[value]; ok {
		return v, nil
	}
	var zero E
	return zero, &ErrMalformedField{Value: value, Reason: "unrecognised code", Offset: offset}
}

// enumString reverses a code table for diagnostics.
func enumString[E comparable](codes map[string]E, value E) string {
	for code, v := range codes {
		if v == value {
			return code
		}
	}
	return "UNKNOWN"
}
