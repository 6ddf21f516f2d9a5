package nitf

import (
	"github.com/beetlebugorg/nitf/internal/parser"
)

// ParseOptions configures parsing behaviour.
type ParseOptions struct {
	// Registry resolves extension (TRE) tags to decode handlers.
	// Nil decodes every extension record as a raw opaque blob.
	Registry *TreRegistry
}

// DefaultParseOptions returns default options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{}
}

func (o ParseOptions) internal() parser.ParseOptions {
	opts := parser.ParseOptions{}
	if o.Registry != nil {
		opts.Registry = o.Registry.internal
	}
	return opts
}

// TreHandler decodes the payload of a recognised extension record into
// ordered name/value fields.
type TreHandler func(tag string, data []byte) ([]TreField, error)

// TreFieldSpec is one fixed-width field in a FixedFieldHandler layout.
type TreFieldSpec struct {
	Name   string
	Length int
	Trim   bool
}

// TreRegistry maps extension tags to decode handlers. Tags without a
// handler decode as raw blobs rather than failing, so a registry only
// needs entries for the extensions the caller wants interpreted.
type TreRegistry struct {
	internal *parser.TreRegistry
}

// NewTreRegistry returns an empty registry.
func NewTreRegistry() *TreRegistry {
	return &TreRegistry{internal: parser.NewTreRegistry()}
}

// Register installs a handler for a tag, replacing any previous handler.
func (r *TreRegistry) Register(tag string, handler TreHandler) {
	r.internal.Register(tag, func(tag string, data []byte) ([]parser.TreField, error) {
		fields, err := handler(tag, data)
		if err != nil {
			return nil, err
		}
		out := make([]parser.TreField, 0, len(fields))
		for _, f := range fields {
			out = append(out, parser.TreField{Name: f.Name, Value: f.Value})
		}
		return out, nil
	})
}

// RegisterFixed installs a handler for a tag whose payload is a flat run
// of fixed-width fields, which covers most registered extensions.
func (r *TreRegistry) RegisterFixed(tag string, layout []TreFieldSpec) {
	specs := make([]parser.TreFieldSpec, 0, len(layout))
	for _, spec := range layout {
		specs = append(specs, parser.TreFieldSpec{
			Name:   spec.Name,
			Length: spec.Length,
			Trim:   spec.Trim,
		})
	}
	r.internal.Register(tag, parser.FixedFieldHandler(specs))
}
