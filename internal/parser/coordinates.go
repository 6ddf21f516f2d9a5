package parser

import (
	"strconv"
)

// Corner coordinate decoding for the IGEOLO field.
//
// IGEOLO is 60 bytes: one 15-byte substring per image corner, in the
// order (0,0), (0,MaxCol), (MaxRow,MaxCol), (MaxRow,0). The encoding of
// each substring is selected by the ICORDS discriminator decoded earlier
// in the subheader. These values feed downstream geolocation, so an
// unimplemented representation fails fast rather than producing a wrong
// coordinate.
//
// Reference: MIL-STD-2500C table A-3, IGEOLO.

const (
	igeoloLength     = 60
	cornerCount      = 4
	cornerPairLength = igeoloLength / cornerCount
)

// CoordinatePair is one decoded corner coordinate. Immutable once built.
//
// Latitude and longitude are decimal degrees for the geographic, decimal
// degrees and geocentric representations. For UTM/UPS north and MGRS the
// projected source string is validated and retained but not converted;
// Source carries the grid value for callers with a projection library.
type CoordinatePair struct {
	latitude       float64
	longitude      float64
	representation CoordinateRepresentation
	source         string
}

// Latitude returns the decoded latitude in decimal degrees.
func (p CoordinatePair) Latitude() float64 {
	return p.latitude
}

// Longitude returns the decoded longitude in decimal degrees.
func (p CoordinatePair) Longitude() float64 {
	return p.longitude
}

// Representation returns the encoding this pair was decoded from.
func (p CoordinatePair) Representation() CoordinateRepresentation {
	return p.representation
}

// Source returns the 15-byte corner substring as encoded in the file.
func (p CoordinatePair) Source() string {
	return p.source
}

// CoordinateSet is the four decoded corner coordinates of an image
// segment, present only when ICORDS declares a supported representation.
type CoordinateSet struct {
	corners [cornerCount]CoordinatePair
}

// Corners returns the four corner pairs in IGEOLO order:
// (0,0), (0,MaxCol), (MaxRow,MaxCol), (MaxRow,0).
func (cs *CoordinateSet) Corners() [cornerCount]CoordinatePair {
	return cs.corners
}

// Representation returns the encoding the set was decoded from.
func (cs *CoordinateSet) Representation() CoordinateRepresentation {
	return cs.corners[0].representation
}

// decodeCoordinateSet splits a 60-byte IGEOLO value into four corner
// substrings and decodes each per the discriminator.
func decodeCoordinateSet(igeolo string, rep CoordinateRepresentation, offset int64) (*CoordinateSet, error) {
	set := &CoordinateSet{}
	for i := 0; i < cornerCount; i++ {
		corner := igeolo[i*cornerPairLength : (i+1)*cornerPairLength]
		cornerOffset := offset + int64(i*cornerPairLength)

		var pair CoordinatePair
		var err error
		switch rep {
		case CoordinatesGeographic, CoordinatesGeocentric:
			// Geocentric corners use the same ddmmss encoding as
			// geographic ones; the datum differs, not the syntax.
			pair, err = decodeDMS(corner, cornerOffset)
		case CoordinatesDecimalDegrees:
			pair, err = decodeDecimalDegrees(corner, cornerOffset)
		case CoordinatesUTMUPSNorth:
			pair, err = decodeUTMUPSNorth(corner, cornerOffset)
		case CoordinatesMGRS:
			pair, err = decodeMGRS(corner, cornerOffset)
		default:
			return nil, &ErrUnsupportedRepresentation{Representation: rep}
		}
		if err != nil {
			return nil, err
		}
		pair.representation = rep
		set.corners[i] = pair
	}
	return set, nil
}

// decodeDMS decodes a ddmmssHdddmmssH corner: six-digit latitude with an
// N/S hemisphere letter, then seven-digit longitude with E/W. The decoded
// value is degrees + minutes/60 + seconds/3600, negated for S and W.
func decodeDMS(corner string, offset int64) (CoordinatePair, error) {
	latDegrees, err := atoiField(corner[0:2], corner, offset)
	if err != nil {
		return CoordinatePair{}, err
	}
	latMinutes, err := atoiField(corner[2:4], corner, offset)
	if err != nil {
		return CoordinatePair{}, err
	}
	latSeconds, err := atoiField(corner[4:6], corner, offset)
	if err != nil {
		return CoordinatePair{}, err
	}
	latSign, err := hemisphereSign(corner[6], 'N', 'S', corner, offset)
	if err != nil {
		return CoordinatePair{}, err
	}

	lonDegrees, err := atoiField(corner[7:10], corner, offset)
	if err != nil {
		return CoordinatePair{}, err
	}
	lonMinutes, err := atoiField(corner[10:12], corner, offset)
	if err != nil {
		return CoordinatePair{}, err
	}
	lonSeconds, err := atoiField(corner[12:14], corner, offset)
	if err != nil {
		return CoordinatePair{}, err
	}
	lonSign, err := hemisphereSign(corner[14], 'E', 'W', corner, offset)
	if err != nil {
		return CoordinatePair{}, err
	}

	return CoordinatePair{
		latitude:  latSign * (float64(latDegrees) + float64(latMinutes)/60.0 + float64(latSeconds)/3600.0),
		longitude: lonSign * (float64(lonDegrees) + float64(lonMinutes)/60.0 + float64(lonSeconds)/3600.0),
		source:    corner,
	}, nil
}

// decodeDecimalDegrees decodes a ±dd.ddd±ddd.ddd corner: signed
// fixed-point latitude in seven bytes, longitude in eight.
func decodeDecimalDegrees(corner string, offset int64) (CoordinatePair, error) {
	lat, err := strconv.ParseFloat(corner[0:7], 64)
	if err != nil {
		return CoordinatePair{}, &ErrMalformedField{Value: corner, Reason: "invalid decimal degrees latitude", Offset: offset}
	}
	lon, err := strconv.ParseFloat(corner[7:15], 64)
	if err != nil {
		return CoordinatePair{}, &ErrMalformedField{Value: corner, Reason: "invalid decimal degrees longitude", Offset: offset}
	}
	return CoordinatePair{latitude: lat, longitude: lon, source: corner}, nil
}

// decodeUTMUPSNorth validates a zzeeeeeennnnnnn corner: two-digit zone,
// six-digit easting, seven-digit northing. Conversion of the projected
// value to latitude/longitude needs a geodesy library and is left to the
// caller via Source; the pair carries zero lat/lon.
func decodeUTMUPSNorth(corner string, offset int64) (CoordinatePair, error) {
	if _, err := atoiField(corner[0:2], corner, offset); err != nil {
		return CoordinatePair{}, err
	}
	if _, err := atoiField(corner[2:8], corner, offset); err != nil {
		return CoordinatePair{}, err
	}
	if _, err := atoiField(corner[8:15], corner, offset); err != nil {
		return CoordinatePair{}, err
	}
	return CoordinatePair{source: corner}, nil
}

// decodeMGRS validates an MGRS grid reference corner. The alphanumeric
// reference is retained in Source without conversion.
func decodeMGRS(corner string, offset int64) (CoordinatePair, error) {
	for i := 0; i < len(corner); i++ {
		c := corner[i]
		if (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || c == ' ' {
			continue
		}
		return CoordinatePair{}, &ErrMalformedField{Value: corner, Reason: "invalid MGRS reference", Offset: offset}
	}
	return CoordinatePair{source: corner}, nil
}

// hemisphereSign maps a hemisphere letter to +1/-1, accepting only the
// two letters valid for the axis.
func hemisphereSign(letter byte, positive byte, negative byte, corner string, offset int64) (float64, error) {
	switch letter {
	case positive:
		return 1, nil
	case negative:
		return -1, nil
	default:
		return 0, &ErrMalformedField{Value: corner, Reason: "invalid hemisphere letter", Offset: offset}
	}
}

// atoiField parses an all-digit substring of a coordinate corner.
func atoiField(digits string, corner string, offset int64) (int, error) {
	value, err := atoiStrict(digits)
	if err != nil {
		return 0, &ErrMalformedField{Value: corner, Reason: "expected digits", Offset: offset}
	}
	return value, nil
}

// atoiStrict parses a run of ASCII digits with no sign, spaces or other
// padding permitted.
func atoiStrict(digits string) (int, error) {
	if len(digits) == 0 {
		return 0, &ErrMalformedField{Value: digits, Reason: "empty numeric field"}
	}
	value := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, &ErrMalformedField{Value: digits, Reason: "expected digits"}
		}
		value = value*10 + int(c-'0')
	}
	return value, nil
}
