package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSecurityMetadata21(t *testing.T) {
	var b strings.Builder
	b.WriteString(field("S", sclasLength))
	b.WriteString(field("US", sclsyLength))
	b.WriteString(field("ABC", scodeLength))
	b.WriteString(field("XX", sctlhLength))
	b.WriteString(field("USA GBR", srelLength))
	b.WriteString(field("DD", sdctpLength))
	b.WriteString(field("20301231", sdcdtLength))
	b.WriteString(field("X1", sdcxmLength))
	b.WriteString(field("C", sdgLength))
	b.WriteString(field("20281231", sdgdtLength))
	b.WriteString(field("REASON TEXT", scltxLength))
	b.WriteString(field("O", scatpLength))
	b.WriteString(field("CMDR SOMEWHERE", scautLength))
	b.WriteString(field("A", scrsnLength))
	b.WriteString(field("20230101", ssrdtLength))
	b.WriteString(field("CTL-001", sctlnLength))
	block := b.String()

	if len(block) != 167 {
		t.Fatalf("fixture must be the 167-byte block, got %d bytes", len(block))
	}

	r := NewReader(strings.NewReader(block), FileTypeNitf21)
	meta, err := parseSecurityMetadata(r)
	if err != nil {
		t.Fatalf("parseSecurityMetadata failed: %v", err)
	}

	if meta.Classification() != ClassificationSecret {
		t.Errorf("expected secret, got %v", meta.Classification())
	}
	if meta.ClassificationSystem() != "US" {
		t.Errorf("expected US, got %q", meta.ClassificationSystem())
	}
	if meta.Codewords() != "ABC" {
		t.Errorf("expected ABC, got %q", meta.Codewords())
	}
	if meta.ReleaseInstructions() != "USA GBR" {
		t.Errorf("expected USA GBR, got %q", meta.ReleaseInstructions())
	}
	if meta.DeclassificationDate() != "20301231" {
		t.Errorf("expected 20301231, got %q", meta.DeclassificationDate())
	}
	if meta.ClassificationText() != "REASON TEXT" {
		t.Errorf("expected REASON TEXT, got %q", meta.ClassificationText())
	}
	if meta.ClassificationAuthority() != "CMDR SOMEWHERE" {
		t.Errorf("expected CMDR SOMEWHERE, got %q", meta.ClassificationAuthority())
	}
	if meta.SecurityControlNumber() != "CTL-001" {
		t.Errorf("expected CTL-001, got %q", meta.SecurityControlNumber())
	}
	if r.Offset() != 167 {
		t.Errorf("expected 167 bytes consumed, got %d", r.Offset())
	}
}

func TestParseSecurityMetadata20(t *testing.T) {
	block := securityBlock20("C", "881231", "")

	r := NewReader(strings.NewReader(block), FileTypeNitf20)
	meta, err := parseSecurityMetadata(r)
	if err != nil {
		t.Fatalf("parseSecurityMetadata failed: %v", err)
	}

	if meta.Classification() != ClassificationConfidential {
		t.Errorf("expected confidential, got %v", meta.Classification())
	}
	if meta.DowngradeDateOrSpecialCase() != "881231" {
		t.Errorf("expected 881231, got %q", meta.DowngradeDateOrSpecialCase())
	}
	if meta.DowngradeEvent() != "" {
		t.Errorf("expected no downgrade event, got %q", meta.DowngradeEvent())
	}
	if int(r.Offset()) != len(block) {
		t.Errorf("expected %d bytes consumed, got %d", len(block), r.Offset())
	}
}

func TestParseSecurityMetadata20DowngradeEvent(t *testing.T) {
	// The magic downgrade value 999998 makes a 40-byte event field follow.
	block := securityBlock20("U", "999998", "ON PROJECT COMPLETION")

	r := NewReader(strings.NewReader(block), FileTypeNitf20)
	meta, err := parseSecurityMetadata(r)
	if err != nil {
		t.Fatalf("parseSecurityMetadata failed: %v", err)
	}

	if meta.DowngradeEvent() != "ON PROJECT COMPLETION" {
		t.Errorf("expected downgrade event, got %q", meta.DowngradeEvent())
	}
	if int(r.Offset()) != len(block) {
		t.Errorf("expected %d bytes consumed, got %d", len(block), r.Offset())
	}
}

func TestParseSecurityMetadataUnknownClassification(t *testing.T) {
	block := securityBlock21("Z", "")

	r := NewReader(strings.NewReader(block), FileTypeNitf21)
	_, err := parseSecurityMetadata(r)
	var malformed *ErrMalformedField
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedField, got %v", err)
	}
	if malformed.Value != "Z" {
		t.Errorf("expected offending value Z, got %q", malformed.Value)
	}
}

func TestParseSecurityMetadataTruncated(t *testing.T) {
	block := securityBlock21("U", "")[:50]

	r := NewReader(strings.NewReader(block), FileTypeNitf21)
	_, err := parseSecurityMetadata(r)
	var truncated *ErrTruncatedInput
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}
