package rp210types

import (
	"encoding/binary"
	"fmt"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// Rational is a decoded RP210 "Rational": typically an edit rate such as
// 25/1 or 30000/1001.
type Rational struct {
	Numerator   int32
	Denominator int32
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// RationalConverter handles the 8-byte "Rational" type: two big-endian
// int32 values, numerator then denominator.
type RationalConverter struct{}

func (c *RationalConverter) Match(typeName string) (rp210.Capture, bool) {
	return rp210.Capture{}, typeName == "Rational"
}

func (c *RationalConverter) Decode(raw []byte, _ rp210.Capture) (any, error) {
	if len(raw) != 8 {
		return nil, fmt.Errorf("rp210types: rational: want 8 bytes, got %d", len(raw))
	}
	return Rational{
		Numerator:   int32(binary.BigEndian.Uint32(raw[0:4])),
		Denominator: int32(binary.BigEndian.Uint32(raw[4:8])),
	}, nil
}

func (c *RationalConverter) Encode(value any, _ rp210.Capture) ([]byte, error) {
	r, ok := value.(Rational)
	if !ok {
		return nil, fmt.Errorf("rp210types: rational: want Rational, got %T", value)
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:4], uint32(r.Numerator))
	binary.BigEndian.PutUint32(buf[4:8], uint32(r.Denominator))
	return buf, nil
}
