package parser

// SecurityMetadata is the fixed security sub-block that follows the
// identifier fields of every segment subheader (and the file header).
// It is decoded as an opaque merged record: the engine carries the values
// through without interpreting handling policy.
//
// The field layout is version-conditional. NITF 2.1 and NSIF 1.0 use the
// 167-byte layout of MIL-STD-2500C table A-3 (ISCLAS through ISCTLN);
// NITF 2.0 uses the older MIL-STD-2500A layout, where a downgrade field
// value of "999998" signals a 40-byte downgrade event field.
type SecurityMetadata struct {
	classification              SecurityClassification
	classificationSystem        string
	codewords                   string
	controlAndHandling          string
	releaseInstructions         string
	declassificationType        string
	declassificationDate        string
	declassificationExemption   string
	downgrade                   string
	downgradeDate               string
	classificationText          string
	classificationAuthorityType string
	classificationAuthority     string
	classificationReason        string
	securitySourceDate          string
	securityControlNumber       string

	// NITF 2.0 only.
	downgradeDateOrSpecialCase string
	downgradeEvent             string
}

// Classification returns the decoded classification level.
func (s *SecurityMetadata) Classification() SecurityClassification {
	return s.classification
}

// ClassificationSystem returns the country or multinational system the
// classification was assigned under (2.1/NSIF only).
func (s *SecurityMetadata) ClassificationSystem() string {
	return s.classificationSystem
}

// Codewords returns the security compartment codewords.
func (s *SecurityMetadata) Codewords() string {
	return s.codewords
}

// ControlAndHandling returns additional control and handling instructions.
func (s *SecurityMetadata) ControlAndHandling() string {
	return s.controlAndHandling
}

// ReleaseInstructions returns the list of countries the content may be
// released to.
func (s *SecurityMetadata) ReleaseInstructions() string {
	return s.releaseInstructions
}

// DeclassificationType returns the declassification type (2.1/NSIF only).
func (s *SecurityMetadata) DeclassificationType() string {
	return s.declassificationType
}

// DeclassificationDate returns the declassification date (2.1/NSIF only).
func (s *SecurityMetadata) DeclassificationDate() string {
	return s.declassificationDate
}

// DeclassificationExemption returns the declassification exemption reason
// (2.1/NSIF only).
func (s *SecurityMetadata) DeclassificationExemption() string {
	return s.declassificationExemption
}

// Downgrade returns the downgrade classification level (2.1/NSIF only).
func (s *SecurityMetadata) Downgrade() string {
	return s.downgrade
}

// DowngradeDate returns the downgrade date (2.1/NSIF only).
func (s *SecurityMetadata) DowngradeDate() string {
	return s.downgradeDate
}

// ClassificationText returns free-form classification amplification text
// (2.1/NSIF only).
func (s *SecurityMetadata) ClassificationText() string {
	return s.classificationText
}

// ClassificationAuthorityType returns the type of classification
// authority (2.1/NSIF only).
func (s *SecurityMetadata) ClassificationAuthorityType() string {
	return s.classificationAuthorityType
}

// ClassificationAuthority returns the classification authority.
func (s *SecurityMetadata) ClassificationAuthority() string {
	return s.classificationAuthority
}

// ClassificationReason returns the classification reason code (2.1/NSIF
// only).
func (s *SecurityMetadata) ClassificationReason() string {
	return s.classificationReason
}

// SecuritySourceDate returns the source date of the classification
// (2.1/NSIF only).
func (s *SecurityMetadata) SecuritySourceDate() string {
	return s.securitySourceDate
}

// SecurityControlNumber returns the security control number.
func (s *SecurityMetadata) SecurityControlNumber() string {
	return s.securityControlNumber
}

// DowngradeDateOrSpecialCase returns the NITF 2.0 downgrade field; the
// value "999998" means a downgrade event description follows.
func (s *SecurityMetadata) DowngradeDateOrSpecialCase() string {
	return s.downgradeDateOrSpecialCase
}

// DowngradeEvent returns the NITF 2.0 downgrade event description, read
// only when the downgrade field is "999998".
func (s *SecurityMetadata) DowngradeEvent() string {
	return s.downgradeEvent
}

// Field widths for the 2.1/NSIF security block (MIL-STD-2500C table A-3).
const (
	sclasLength = 1
	sclsyLength = 2
	scodeLength = 11
	sctlhLength = 2
	srelLength  = 20
	sdctpLength = 2
	sdcdtLength = 8
	sdcxmLength = 4
	sdgLength   = 1
	sdgdtLength = 8
	scltxLength = 43
	scatpLength = 1
	scautLength = 40
	scrsnLength = 1
	ssrdtLength = 8
	sctlnLength = 15
)

// Field widths for the 2.0 security block (MIL-STD-2500A).
const (
	scode20Length = 40
	sctlh20Length = 40
	srel20Length  = 40
	scaut20Length = 20
	sctln20Length = 20
	sdwng20Length = 6
	sdevt20Length = 40

	// downgradeEventMagic in SDWNG signals that the 40-byte downgrade
	// event field follows.
	downgradeEventMagic = "999998"
)

// parseSecurityMetadata decodes the security sub-block in the layout
// selected by the reader's file type.
func parseSecurityMetadata(r *Reader) (*SecurityMetadata, error) {
	if r.FileType() == FileTypeNitf20 {
		return parseSecurityMetadata20(r)
	}
	return parseSecurityMetadata21(r)
}

func parseSecurityMetadata21(r *Reader) (*SecurityMetadata, error) {
	meta := &SecurityMetadata{}

	classOffset := r.Offset()
	code, err := r.ReadString(sclasLength)
	if err != nil {
		return nil, err
	}
	meta.classification, err = decodeEnum(securityClassificationCodes, code, classOffset)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		dst    *string
		length int
	}{
		{&meta.classificationSystem, sclsyLength},
		{&meta.codewords, scodeLength},
		{&meta.controlAndHandling, sctlhLength},
		{&meta.releaseInstructions, srelLength},
		{&meta.declassificationType, sdctpLength},
		{&meta.declassificationDate, sdcdtLength},
		{&meta.declassificationExemption, sdcxmLength},
		{&meta.downgrade, sdgLength},
		{&meta.downgradeDate, sdgdtLength},
		{&meta.classificationText, scltxLength},
		{&meta.classificationAuthorityType, scatpLength},
		{&meta.classificationAuthority, scautLength},
		{&meta.classificationReason, scrsnLength},
		{&meta.securitySourceDate, ssrdtLength},
		{&meta.securityControlNumber, sctlnLength},
	}
	for _, field := range fields {
		*field.dst, err = r.ReadTrimmed(field.length)
		if err != nil {
			return nil, err
		}
	}
	return meta, nil
}

func parseSecurityMetadata20(r *Reader) (*SecurityMetadata, error) {
	meta := &SecurityMetadata{}

	classOffset := r.Offset()
	code, err := r.ReadString(sclasLength)
	if err != nil {
		return nil, err
	}
	meta.classification, err = decodeEnum(securityClassificationCodes, code, classOffset)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		dst    *string
		length int
	}{
		{&meta.codewords, scode20Length},
		{&meta.controlAndHandling, sctlh20Length},
		{&meta.releaseInstructions, srel20Length},
		{&meta.classificationAuthority, scaut20Length},
		{&meta.securityControlNumber, sctln20Length},
		{&meta.downgradeDateOrSpecialCase, sdwng20Length},
	}
	for _, field := range fields {
		*field.dst, err = r.ReadTrimmed(field.length)
		if err != nil {
			return nil, err
		}
	}

	if meta.downgradeDateOrSpecialCase == downgradeEventMagic {
		meta.downgradeEvent, err = r.ReadTrimmed(sdevt20Length)
		if err != nil {
			return nil, err
		}
	}
	return meta, nil
}
