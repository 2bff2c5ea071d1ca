package rp210types

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// integerPattern matches the sized integer family. The width capture drives
// both decode and encode, so the pattern is compiled once at package init.
var integerPattern = regexp.MustCompile(`^(U?)Int(8|16|32|64)$`)

// IntegerConverter handles the fixed-width big-endian integer types
// UInt8/16/32/64 and Int8/16/32/64. Unsigned values decode to uint64,
// signed ones to int64.
type IntegerConverter struct{}

func (c *IntegerConverter) Match(typeName string) (rp210.Capture, bool) {
	m := integerPattern.FindStringSubmatch(typeName)
	if m == nil {
		return rp210.Capture{}, false
	}
	bits, _ := strconv.Atoi(m[2])
	capture := rp210.Capture{Count: bits / 8}
	if m[1] == "U" {
		capture.Element = "unsigned"
	} else {
		capture.Element = "signed"
	}
	return capture, true
}

func (c *IntegerConverter) Decode(raw []byte, capture rp210.Capture) (any, error) {
	if len(raw) != capture.Count {
		return nil, fmt.Errorf("rp210types: integer: want %d bytes, got %d", capture.Count, len(raw))
	}

	var u uint64
	for _, b := range raw {
		u = u<<8 | uint64(b)
	}
	if capture.Element == "unsigned" {
		return u, nil
	}

	// Sign-extend from the encoded width.
	shift := uint(64 - 8*capture.Count)
	return int64(u<<shift) >> shift, nil
}

func (c *IntegerConverter) Encode(value any, capture rp210.Capture) ([]byte, error) {
	u, err := integerBits(value)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, u)
	return buf[8-capture.Count:], nil
}

// integerBits widens any Go integer value to its raw 64-bit two's-complement
// representation.
func integerBits(value any) (uint64, error) {
	switch v := value.(type) {
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint:
		return uint64(v), nil
	case int64:
		return uint64(v), nil
	case int32:
		return uint64(int64(v)), nil
	case int16:
		return uint64(int64(v)), nil
	case int8:
		return uint64(int64(v)), nil
	case int:
		return uint64(int64(v)), nil
	default:
		return 0, fmt.Errorf("rp210types: integer: want integer value, got %T", value)
	}
}
