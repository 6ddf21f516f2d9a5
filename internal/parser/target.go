package parser

import (
	"strings"
)

// TargetId is the decoded TGTID field: a 17-byte composite of basic
// encyclopedia number, facility category (O-suffix) and country code.
// Frequently all spaces; the components keep their padding stripped.
type TargetId struct {
	basicEncyclopediaNumber string
	oSuffix                 string
	countryCode             string
}

const (
	targetIdLength        = 17
	targetIdBELength      = 10
	targetIdOSuffixLength = 5
	targetIdCountryLength = 2
)

// newTargetId splits a raw 17-byte TGTID value into its components.
func newTargetId(raw string) TargetId {
	return TargetId{
		basicEncyclopediaNumber: strings.TrimRight(raw[0:targetIdBELength], " "),
		oSuffix:                 strings.TrimRight(raw[targetIdBELength:targetIdBELength+targetIdOSuffixLength], " "),
		countryCode:             strings.TrimRight(raw[targetIdBELength+targetIdOSuffixLength:], " "),
	}
}

// BasicEncyclopediaNumber returns the 10-character BE number component.
func (t TargetId) BasicEncyclopediaNumber() string {
	return t.basicEncyclopediaNumber
}

// OSuffix returns the 5-character facility category component.
func (t TargetId) OSuffix() string {
	return t.oSuffix
}

// CountryCode returns the 2-character country code component.
func (t TargetId) CountryCode() string {
	return t.countryCode
}

// IsEmpty reports whether every component was space filled.
func (t TargetId) IsEmpty() bool {
	return t.basicEncyclopediaNumber == "" && t.oSuffix == "" && t.countryCode == ""
}
