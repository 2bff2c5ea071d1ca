package rp210types

import (
	"fmt"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// BooleanConverter handles the RP210 "Boolean" type: a single byte where
// any non-zero value is true.
type BooleanConverter struct{}

func (c *BooleanConverter) Match(typeName string) (rp210.Capture, bool) {
	return rp210.Capture{}, typeName == "Boolean"
}

func (c *BooleanConverter) Decode(raw []byte, _ rp210.Capture) (any, error) {
	if len(raw) != 1 {
		return nil, fmt.Errorf("rp210types: boolean: want 1 byte, got %d", len(raw))
	}
	return raw[0] != 0, nil
}

func (c *BooleanConverter) Encode(value any, _ rp210.Capture) ([]byte, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("rp210types: boolean: want bool, got %T", value)
	}
	if b {
		return []byte{0x01}, nil
	}
	return []byte{0x00}, nil
}
