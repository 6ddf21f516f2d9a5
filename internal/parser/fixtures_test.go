package parser

import (
	"fmt"
	"strings"
)

// Fixture builders for header byte strings. Every builder produces the
// exact fixed widths of MIL-STD-2500C so the decode under test consumes
// real field boundaries rather than convenient ones.

// field right-pads a value with spaces to the declared width. Values
// wider than the field are a bug in the test.
func field(value string, width int) string {
	if len(value) > width {
		panic(fmt.Sprintf("fixture value %q wider than field width %d", value, width))
	}
	return value + strings.Repeat(" ", width-len(value))
}

// numField zero-pads a numeric value to the declared width.
func numField(value int, width int) string {
	return fmt.Sprintf("%0*d", width, value)
}

// securityBlock21 builds the 167-byte NITF 2.1/NSIF security block with
// the given classification code and control number.
func securityBlock21(classification string, controlNumber string) string {
	var b strings.Builder
	b.WriteString(field(classification, sclasLength)) // xSCLAS
	b.WriteString(field("US", sclsyLength))           // xSCLSY
	b.WriteString(field("", scodeLength))             // xSCODE
	b.WriteString(field("", sctlhLength))             // xSCTLH
	b.WriteString(field("", srelLength))              // xSREL
	b.WriteString(field("", sdctpLength))             // xSDCTP
	b.WriteString(field("", sdcdtLength))             // xSDCDT
	b.WriteString(field("", sdcxmLength))             // xSDCXM
	b.WriteString(field("", sdgLength))               // xSDG
	b.WriteString(field("", sdgdtLength))             // xSDGDT
	b.WriteString(field("", scltxLength))             // xSCLTX
	b.WriteString(field("", scatpLength))             // xSCATP
	b.WriteString(field("", scautLength))             // xSCAUT
	b.WriteString(field("", scrsnLength))             // xSCRSN
	b.WriteString(field("", ssrdtLength))             // xSSRDT
	b.WriteString(field(controlNumber, sctlnLength))  // xSCTLN
	return b.String()
}

// securityBlock20 builds the NITF 2.0 security block. A downgrade value
// of "999998" makes the builder append a downgrade event field.
func securityBlock20(classification string, downgrade string, event string) string {
	var b strings.Builder
	b.WriteString(field(classification, sclasLength)) // xSCLAS
	b.WriteString(field("", scode20Length))           // xSCODE
	b.WriteString(field("", sctlh20Length))           // xSCTLH
	b.WriteString(field("", srel20Length))            // xSREL
	b.WriteString(field("", scaut20Length))           // xSCAUT
	b.WriteString(field("", sctln20Length))           // xSCTLN
	b.WriteString(field(downgrade, sdwng20Length))    // xSDWNG
	if downgrade == downgradeEventMagic {
		b.WriteString(field(event, sdevt20Length)) // xSDEVT
	}
	return b.String()
}

// imageSubheaderFixture parameterises the gated stages of an image
// subheader fixture; zero values produce the smallest valid subheader.
type imageSubheaderFixture struct {
	fileType FileType

	identifier string
	dateTime   string
	targetId   string
	title      string

	icords string
	igeolo  string

	comments []string

	ic     string
	comrat string

	nbands int
	xbands int // written only when nbands == 0 and version supports it

	udid  string // UDOFL+TRE bytes; UDIDL derived
	ixshd string // IXSOFL+TRE bytes; IXSHDL derived
}

// build assembles the subheader bytes in MIL-STD-2500C table A-3 order.
func (f imageSubheaderFixture) build() string {
	if f.dateTime == "" {
		f.dateTime = "20230817103045"
		if f.fileType == FileTypeNitf20 {
			f.dateTime = "17103045ZAUG23"
		}
	}
	if f.icords == "" {
		f.icords = "N"
		if f.fileType != FileTypeNitf20 {
			f.icords = " "
		}
	}
	if f.ic == "" {
		f.ic = "NC"
	}

	var b strings.Builder
	b.WriteString(imageMagic)                        // IM
	b.WriteString(field(f.identifier, iid1Length))   // IID1
	b.WriteString(f.dateTime)                        // IDATIM
	b.WriteString(field(f.targetId, tgtidLength))    // TGTID
	b.WriteString(field(f.title, iid2Length))        // IID2
	if f.fileType == FileTypeNitf20 {
		b.WriteString(securityBlock20("U", "", ""))
	} else {
		b.WriteString(securityBlock21("U", ""))
	}
	b.WriteString("0")                               // ENCRYP
	b.WriteString(field("TEST SENSOR", isorceLength)) // ISORCE
	b.WriteString(numField(1024, nrowsLength))       // NROWS
	b.WriteString(numField(2048, ncolsLength))       // NCOLS
	b.WriteString(field("INT", pvtypeLength))        // PVTYPE
	b.WriteString(field("MONO", irepLength))         // IREP
	b.WriteString(field("VIS", icatLength))          // ICAT
	b.WriteString(numField(8, abppLength))           // ABPP
	b.WriteString("R")                               // PJUST
	b.WriteString(f.icords)                          // ICORDS
	b.WriteString(f.igeolo)                          // IGEOLO (only when present)
	b.WriteString(numField(len(f.comments), nicomLength)) // NICOM
	for _, comment := range f.comments {
		b.WriteString(field(comment, icomLength)) // ICOMn
	}
	b.WriteString(f.ic) // IC
	if f.comrat != "" {
		b.WriteString(field(f.comrat, comratLength)) // COMRAT
	}
	b.WriteString(numField(f.nbands, nbandsLength)) // NBANDS
	if f.nbands == 0 && f.fileType.SupportsExtendedBandCount() {
		b.WriteString(numField(f.xbands, xbandsLength)) // XBANDS
	}
	bands := f.nbands
	if bands == 0 {
		bands = f.xbands
	}
	for i := 0; i < bands; i++ {
		b.WriteString(field("M", irepbandLength))  // IREPBANDn
		b.WriteString(field("", isubcatLength))    // ISUBCATn
		b.WriteString("N")                         // IFCn
		b.WriteString(field("", imfltLength))      // IMFLTn
		b.WriteString("0")                         // NLUTSn
	}
	b.WriteString("0")                          // ISYNC
	b.WriteString("B")                          // IMODE
	b.WriteString(numField(1, nbprLength))      // NBPR
	b.WriteString(numField(1, nbpcLength))      // NBPC
	b.WriteString(numField(2048, nppbhLength))  // NPPBH
	b.WriteString(numField(1024, nppbvLength))  // NPPBV
	b.WriteString(numField(8, nbppLength))      // NBPP
	b.WriteString(numField(1, idlvlLength))     // IDLVL
	b.WriteString(numField(0, ialvlLength))     // IALVL
	b.WriteString(numField(0, ilocHalfLength))  // ILOC row
	b.WriteString(numField(0, ilocHalfLength))  // ILOC column
	b.WriteString(field("1.0", imagLength))     // IMAG
	b.WriteString(numField(len(f.udid), udidlLength)) // UDIDL
	b.WriteString(f.udid)
	b.WriteString(numField(len(f.ixshd), ixshdlLength)) // IXSHDL
	b.WriteString(f.ixshd)
	return b.String()
}

// tre builds one raw extension record.
func tre(tag string, data string) string {
	return field(tag, treTagLength) + numField(len(data), treLengthLength) + data
}
