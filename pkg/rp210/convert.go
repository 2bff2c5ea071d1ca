package rp210

// Capture carries substructure a converter's match rule extracted from the
// type name, e.g. the element count and element type of
// "2 element array of Int32", or the subtype of a reference. Converters with
// plain exact-match rules leave it zero.
type Capture struct {
	Element string // element type or subtype name
	Count   int    // fixed element count; 0 when the type does not carry one
}

// Converter decodes and encodes raw field bytes for one RP210 type
// category. Implementations are supplied externally and tried in a fixed
// priority order; Match decides whether this converter owns a type name and
// may return captured substructure for the conversion functions.
type Converter interface {
	// Match reports whether the converter accepts the type name. The
	// returned Capture is passed unchanged to Decode and Encode.
	Match(typeName string) (Capture, bool)

	// Decode converts raw field bytes into a typed value.
	Decode(raw []byte, capture Capture) (any, error)

	// Encode is the reverse of Decode.
	Encode(value any, capture Capture) ([]byte, error)
}

// Dispatcher resolves ULs through a frozen registry and applies the first
// matching converter from an ordered set. It holds no mutable state: every
// call is an independent computation, so concurrent use needs no
// coordination.
type Dispatcher struct {
	reg        *Registry
	converters []Converter
}

// NewDispatcher wires a registry to an ordered converter set. The set is
// owned by the caller and must not change while the dispatcher is in use.
func NewDispatcher(reg *Registry, converters []Converter) *Dispatcher {
	return &Dispatcher{reg: reg, converters: converters}
}

// Convert resolves ul and decodes raw through the first converter whose
// match rule accepts the descriptor's type name.
//
// Fails with *UnknownFieldError when ul is absent from the registry and
// with *NoConverterError when the converter set is exhausted without a
// match. An empty or malformed type string is still offered to every
// converter — emptiness may legitimately satisfy an exact-match rule.
func (d *Dispatcher) Convert(ul UL, raw []byte) (any, error) {
	desc, err := d.reg.Lookup(ul)
	if err != nil {
		return nil, &UnknownFieldError{UL: ul}
	}

	for _, c := range d.converters {
		if capture, ok := c.Match(desc.Type); ok {
			return c.Decode(raw, capture)
		}
	}
	return nil, &NoConverterError{Type: desc.Type, Field: desc.Name}
}

// Encode is the reverse of Convert: it resolves ul and serializes value
// through the first matching converter. Error taxonomy matches Convert.
func (d *Dispatcher) Encode(ul UL, value any) ([]byte, error) {
	desc, err := d.reg.Lookup(ul)
	if err != nil {
		return nil, &UnknownFieldError{UL: ul}
	}

	for _, c := range d.converters {
		if capture, ok := c.Match(desc.Type); ok {
			return c.Encode(value, capture)
		}
	}
	return nil, &NoConverterError{Type: desc.Type, Field: desc.Name}
}
