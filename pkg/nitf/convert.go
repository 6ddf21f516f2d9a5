package nitf

import (
	"github.com/beetlebugorg/nitf/internal/parser"
)

// Conversion from the internal decoded entities to the public API types.

func convertFile(f *parser.File) *File {
	header := f.Header()
	out := &File{
		version:         Version(header.FileType()),
		complexityLevel: header.ComplexityLevel(),
		standardType:    header.StandardType(),
		originStationId: header.OriginStationId(),
		dateTime:        convertDateTime(header.DateTime()),
		title:           header.Title(),
		security:        convertSecurity(header.Security()),
		originatorName:  header.OriginatorName(),
		originatorPhone: header.OriginatorPhone(),
		fileLength:      header.FileLength(),
		headerLength:    header.HeaderLength(),
		headerTres:      convertTres(header.Tres()),
	}
	for _, segment := range f.ImageSegments() {
		out.images = append(out.images, convertSegment(segment))
	}
	return out
}

func convertSegment(s *parser.ImageSegment) *ImageSegment {
	row, column := s.Location()
	out := &ImageSegment{
		identifier:               s.Identifier(),
		dateTime:                 convertDateTime(s.DateTime()),
		target:                   convertTarget(s.TargetId()),
		title:                    s.Identifier2(),
		security:                 convertSecurity(s.Security()),
		source:                   s.Source(),
		rows:                     s.NumRows(),
		columns:                  s.NumColumns(),
		pixelValueType:           PixelValueType(s.PixelValueType()),
		representation:           Representation(s.Representation()),
		category:                 Category(s.Category()),
		actualBitsPerPixel:       s.ActualBitsPerPixel(),
		coordinateRep:            CoordinateRepresentation(s.CoordinateRepresentation()),
		corners:                  convertCorners(s.Coordinates()),
		comments:                 s.Comments(),
		compression:              Compression(s.Compression()),
		compressionRate:          s.CompressionRate(),
		mode:                     s.Mode().String(),
		blocksPerRow:             s.BlocksPerRow(),
		blocksPerColumn:          s.BlocksPerColumn(),
		pixelsPerBlockHorizontal: s.PixelsPerBlockHorizontal(),
		pixelsPerBlockVertical:   s.PixelsPerBlockVertical(),
		bitsPerPixel:             s.BitsPerPixel(),
		displayLevel:             s.DisplayLevel(),
		attachmentLevel:          s.AttachmentLevel(),
		locationRow:              row,
		locationColumn:           column,
		magnification:            s.Magnification(),
		tres:                     convertTres(s.Tres()),
		dataLength:               s.DataLength(),
		headerLength:             s.HeaderLength(),
	}
	for n := 1; n <= s.NumBands(); n++ {
		band := s.Band(n)
		luts := make([][]byte, 0, band.NumLUTs())
		for m := 1; m <= band.NumLUTs(); m++ {
			luts = append(luts, band.LUT(m).Entries())
		}
		out.bands = append(out.bands, Band{
			Representation: band.Representation(),
			Subcategory:    band.Subcategory(),
			LUTs:           luts,
		})
	}
	return out
}

func convertDateTime(dt parser.DateTime) DateTime {
	return DateTime{Raw: dt.Source(), Time: dt.Time()}
}

func convertTarget(t parser.TargetId) TargetInfo {
	return TargetInfo{
		BasicEncyclopediaNumber: t.BasicEncyclopediaNumber(),
		OSuffix:                 t.OSuffix(),
		CountryCode:             t.CountryCode(),
	}
}

func convertSecurity(s *parser.SecurityMetadata) SecurityInfo {
	if s == nil {
		return SecurityInfo{}
	}
	return SecurityInfo{
		Classification:              Classification(s.Classification()),
		ClassificationSystem:        s.ClassificationSystem(),
		Codewords:                   s.Codewords(),
		ControlAndHandling:          s.ControlAndHandling(),
		ReleaseInstructions:         s.ReleaseInstructions(),
		DeclassificationType:        s.DeclassificationType(),
		DeclassificationDate:        s.DeclassificationDate(),
		DeclassificationExemption:   s.DeclassificationExemption(),
		Downgrade:                   s.Downgrade(),
		DowngradeDate:               s.DowngradeDate(),
		ClassificationText:          s.ClassificationText(),
		ClassificationAuthorityType: s.ClassificationAuthorityType(),
		ClassificationAuthority:     s.ClassificationAuthority(),
		ClassificationReason:        s.ClassificationReason(),
		SecuritySourceDate:          s.SecuritySourceDate(),
		SecurityControlNumber:       s.SecurityControlNumber(),
		DowngradeDateOrSpecialCase:  s.DowngradeDateOrSpecialCase(),
		DowngradeEvent:              s.DowngradeEvent(),
	}
}

func convertCorners(cs *parser.CoordinateSet) *Corners {
	if cs == nil {
		return nil
	}
	out := &Corners{Representation: CoordinateRepresentation(cs.Representation())}
	for i, pair := range cs.Corners() {
		out.Pairs[i] = CoordinatePair{
			Lat:    pair.Latitude(),
			Lon:    pair.Longitude(),
			Source: pair.Source(),
		}
	}
	return out
}

func convertTres(c *parser.TreCollection) []Tre {
	if c == nil || len(c.Tres) == 0 {
		return nil
	}
	out := make([]Tre, 0, len(c.Tres))
	for _, tre := range c.Tres {
		fields := make([]TreField, 0, len(tre.Fields))
		for _, f := range tre.Fields {
			fields = append(fields, TreField{Name: f.Name, Value: f.Value})
		}
		out = append(out, Tre{
			Tag:    tre.Tag,
			Source: tre.Source.String(),
			Raw:    tre.Raw,
			Fields: fields,
		})
	}
	return out
}
