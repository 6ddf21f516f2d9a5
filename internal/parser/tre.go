package parser

import (
	"strings"
)

// Tagged Record Extension (TRE) decoding.
//
// A TRE block is a run of self-describing records: a 6-byte tag, a
// 5-byte length, then that many data bytes. The block itself carries no
// terminator; the caller supplies the declared block length from the
// gating length field (UDIDL, IXSHDL, UDHDL or XHDL, net of the already
// consumed overflow field), and the decode must consume exactly that many
// bytes. Byte accounting is the invariant this component enforces;
// semantic decoding of record contents is delegated to a registry of
// handlers supplied by the caller.
//
// Reference: MIL-STD-2500C §5.8 and STDI-0002 (registered extensions).

const (
	treTagLength    = 6
	treLengthLength = 5
	treHeaderLength = treTagLength + treLengthLength
)

// TreSource identifies which gated extension stage a record was decoded
// from. The same tag may legitimately appear under several sources.
type TreSource int

const (
	SourceUserDefinedHeaderData TreSource = iota
	SourceExtendedHeaderData
	SourceUserDefinedImageData
	SourceImageExtendedSubheaderData
)

// String returns the name of the gating field for the source.
func (s TreSource) String() string {
	switch s {
	case SourceUserDefinedHeaderData:
		return "UDHD"
	case SourceExtendedHeaderData:
		return "XHD"
	case SourceUserDefinedImageData:
		return "UDID"
	case SourceImageExtendedSubheaderData:
		return "IXSHD"
	default:
		return "UNKNOWN"
	}
}

// TreField is one decoded name/value pair inside a recognised record.
type TreField struct {
	Name  string
	Value string
}

// Tre is one decoded extension record. Records with no registered handler
// keep their payload in Raw and have no Fields; recognised records carry
// both.
type Tre struct {
	Tag    string
	Source TreSource
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

// TreCollection is the ordered set of extension records decoded from one
// or more block stages.
type TreCollection struct {
	Tres []*Tre
}

// merge appends the records of other, preserving decode order.
func (c *TreCollection) merge(other *TreCollection) {
	if other == nil {
		return
	}
	c.Tres = append(c.Tres, other.Tres...)
}

// ByTag returns all records with the given tag, in decode order.
func (c *TreCollection) ByTag(tag string) []*Tre {
	var matches []*Tre
	for _, tre := range c.Tres {
		if tre.Tag == tag {
			matches = append(matches, tre)
		}
	}
	return matches
}

// TreHandler decodes the payload of a recognised record into fields.
// Handlers must not assume the payload is well formed.
type TreHandler func(tag string, data []byte) ([]TreField, error)

// TreRegistry maps extension tags to decode handlers. The registry is
// injected into the extension decode; tags without a handler decode as
// raw opaque blobs, preserving forward compatibility with extensions
// this build does not know about.
type TreRegistry struct {
	handlers map[string]TreHandler
}

// NewTreRegistry returns an empty registry.
func NewTreRegistry() *TreRegistry {
	return &TreRegistry{handlers: make(map[string]TreHandler)}
}

// Register installs a handler for a tag, replacing any previous handler.
func (reg *TreRegistry) Register(tag string, handler TreHandler) {
	reg.handlers[tag] = handler
}

// handlerFor resolves a tag. A nil registry resolves nothing.
func (reg *TreRegistry) handlerFor(tag string) (TreHandler, bool) {
	if reg == nil {
		return nil, false
	}
	handler, ok := reg.handlers[tag]
	return handler, ok
}

// TreFieldSpec is one fixed-width field in a FixedFieldHandler layout.
type TreFieldSpec struct {
	Name   string
	Length int
	Trim   bool
}

// FixedFieldHandler builds a handler for records whose payload is a flat
// run of fixed-width fields, which covers most registered extensions.
// The payload must be exactly as long as the layout declares.
func FixedFieldHandler(layout []TreFieldSpec) TreHandler {
	total := 0
	for _, spec := range layout {
		total += spec.Length
	}
	return func(tag string, data []byte) ([]TreField, error) {
		if len(data) != total {
			return nil, &ErrMalformedField{
				Value:  tag,
				Reason: "extension payload length does not match registered layout",
			}
		}
		fields := make([]TreField, 0, len(layout))
		pos := 0
		for _, spec := range layout {
			value := string(data[pos : pos+spec.Length])
			if spec.Trim {
				value = strings.TrimSpace(value)
			}
			fields = append(fields, TreField{Name: spec.Name, Value: value})
			pos += spec.Length
		}
		return fields, nil
	}
}

// parseTres decodes extension records until exactly declaredLength bytes
// are consumed. A record that would overrun the block, or trailing bytes
// too short to hold a record header, fail with ErrExtensionLengthMismatch.
func parseTres(r *Reader, declaredLength int, source TreSource, registry *TreRegistry) (*TreCollection, error) {
	collection := &TreCollection{}
	remaining := declaredLength

	for remaining > 0 {
		if remaining < treHeaderLength {
			return nil, &ErrExtensionLengthMismatch{
				Declared:  declaredLength,
				Remaining: remaining,
				Offset:    r.Offset(),
			}
		}

		tag, err := r.ReadTrimmed(treTagLength)
		if err != nil {
			return nil, err
		}
		length, err := r.ReadInt(treLengthLength)
		if err != nil {
			return nil, err
		}
		remaining -= treHeaderLength

		if length > remaining {
			return nil, &ErrExtensionLengthMismatch{
				Declared:  declaredLength,
				Remaining: remaining - length,
				Offset:    r.Offset(),
			}
		}
		data, err := r.ReadBytes(length)
		if err != nil {
			return nil, err
		}
		remaining -= length

		tre := &Tre{Tag: tag, Source: source, Raw: data}
		if handler, ok := registry.handlerFor(tag); ok {
			tre.Fields, err = handler(tag, data)
			if err != nil {
				return nil, err
			}
		}
		collection.Tres = append(collection.Tres, tre)
	}

	return collection, nil
}
