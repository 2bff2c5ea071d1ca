package rp210types

import (
	"encoding/binary"
	"fmt"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// LengthConverter handles the "Length" and "Position" types: 8-byte signed
// integers counting edit units. Position may be negative (pre-charge).
type LengthConverter struct{}

func (c *LengthConverter) Match(typeName string) (rp210.Capture, bool) {
	return rp210.Capture{}, typeName == "Length" || typeName == "Position"
}

func (c *LengthConverter) Decode(raw []byte, _ rp210.Capture) (any, error) {
	if len(raw) != 8 {
		return nil, fmt.Errorf("rp210types: length: want 8 bytes, got %d", len(raw))
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

func (c *LengthConverter) Encode(value any, _ rp210.Capture) ([]byte, error) {
	u, err := integerBits(value)
	if err != nil {
		return nil, fmt.Errorf("rp210types: length: %w", err)
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, u)
	return buf, nil
}
