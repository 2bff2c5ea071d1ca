package rp210types

import (
	"encoding/hex"
	"fmt"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// referenceSizes maps each reference subtype to its fixed payload length.
// PackageID is a 32-byte UMID; everything else is a plain 16-byte label.
var referenceSizes = map[string]int{
	"UUID":            16,
	"Universal Label": 16,
	"AUID":            16,
	"StrongReference": 16,
	"WeakReference":   16,
	"PackageID":       32,
}

// ReferenceConverter handles the identifier family (UUID, Universal Label,
// AUID, strong/weak references, UMIDs). Values decode to the lowercase hex
// string of the raw identifier; the captured subtype tells callers how to
// interpret it (e.g. a StrongReference names another metadata set).
type ReferenceConverter struct{}

func (c *ReferenceConverter) Match(typeName string) (rp210.Capture, bool) {
	size, ok := referenceSizes[typeName]
	if !ok {
		return rp210.Capture{}, false
	}
	return rp210.Capture{Element: typeName, Count: size}, true
}

func (c *ReferenceConverter) Decode(raw []byte, capture rp210.Capture) (any, error) {
	if len(raw) != capture.Count {
		return nil, fmt.Errorf("rp210types: %s: want %d bytes, got %d",
			capture.Element, capture.Count, len(raw))
	}
	return hex.EncodeToString(raw), nil
}

func (c *ReferenceConverter) Encode(value any, capture rp210.Capture) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("rp210types: %s: want hex string, got %T", capture.Element, value)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("rp210types: %s: decode %q: %w", capture.Element, s, err)
	}
	if len(raw) != capture.Count {
		return nil, fmt.Errorf("rp210types: %s: want %d bytes, got %d",
			capture.Element, capture.Count, len(raw))
	}
	return raw, nil
}
