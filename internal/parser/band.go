package parser

// Per-band image metadata, repeated band-count times after the NBANDS
// (or XBANDS) field.
//
// Reference: MIL-STD-2500C table A-3, IREPBANDn through LUTDn,m.

const (
	irepbandLength = 2
	isubcatLength  = 6
	ifcLength      = 1
	imfltLength    = 3
	nlutsLength    = 1
	nelutLength    = 5
)

// ImageBandLUT is one lookup table attached to a band: NELUT entries of
// one byte each.
type ImageBandLUT struct {
	entries []byte
}

// Entries returns the raw lookup table values.
func (lut ImageBandLUT) Entries() []byte {
	return lut.entries
}

// ImageBand is the decoded per-band descriptor.
type ImageBand struct {
	representation string
	subcategory    string
	luts           []ImageBandLUT
	lutEntryCount  int
}

// Representation returns the IREPBAND value: the band's role within the
// image representation (e.g. "R", "G", "B", "M", "LU").
func (b *ImageBand) Representation() string {
	return b.representation
}

// Subcategory returns the ISUBCAT value, e.g. a band wavelength.
func (b *ImageBand) Subcategory() string {
	return b.subcategory
}

// NumLUTs returns the number of lookup tables attached to the band.
func (b *ImageBand) NumLUTs() int {
	return len(b.luts)
}

// LUT returns the 1-based lookup table n, matching the NITF field
// numbering (LUTDn,m).
func (b *ImageBand) LUT(n int) ImageBandLUT {
	return b.luts[n-1]
}

// LUTEntryCount returns NELUT: the entry count shared by every lookup
// table on this band.
func (b *ImageBand) LUTEntryCount() int {
	return b.lutEntryCount
}

// parseImageBand decodes one band descriptor at the cursor. IFC and
// IMFLT are reserved fields, read for alignment and discarded.
func parseImageBand(r *Reader) (*ImageBand, error) {
	band := &ImageBand{}

	var err error
	if band.representation, err = r.ReadTrimmed(irepbandLength); err != nil {
		return nil, err
	}
	if band.subcategory, err = r.ReadTrimmed(isubcatLength); err != nil {
		return nil, err
	}
	if _, err = r.ReadBytes(ifcLength); err != nil {
		return nil, err
	}
	if _, err = r.ReadBytes(imfltLength); err != nil {
		return nil, err
	}

	numLUTs, err := r.ReadInt(nlutsLength)
	if err != nil {
		return nil, err
	}
	if numLUTs == 0 {
		return band, nil
	}

	band.lutEntryCount, err = r.ReadInt(nelutLength)
	if err != nil {
		return nil, err
	}
	for i := 0; i < numLUTs; i++ {
		entries, err := r.ReadBytes(band.lutEntryCount)
		if err != nil {
			return nil, err
		}
		band.luts = append(band.luts, ImageBandLUT{entries: entries})
	}
	return band, nil
}
