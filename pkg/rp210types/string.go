package rp210types

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// UTF16StringConverter handles "UTF-16 char string": big-endian UTF-16 code
// units, possibly NUL-padded to the field length.
type UTF16StringConverter struct{}

func (c *UTF16StringConverter) Match(typeName string) (rp210.Capture, bool) {
	return rp210.Capture{}, typeName == "UTF-16 char string"
}

func (c *UTF16StringConverter) Decode(raw []byte, _ rp210.Capture) (any, error) {
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("rp210types: utf16 string: odd length %d", len(raw))
	}

	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i < len(raw); i += 2 {
		units = append(units, binary.BigEndian.Uint16(raw[i:i+2]))
	}
	return strings.TrimRight(string(utf16.Decode(units)), "\x00"), nil
}

func (c *UTF16StringConverter) Encode(value any, _ rp210.Capture) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("rp210types: utf16 string: want string, got %T", value)
	}

	units := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(buf[2*i:], u)
	}
	return buf, nil
}

// ISO7StringConverter handles "ISO 7-bit coded character set": plain ASCII
// bytes, possibly NUL-padded.
type ISO7StringConverter struct{}

func (c *ISO7StringConverter) Match(typeName string) (rp210.Capture, bool) {
	return rp210.Capture{}, typeName == "ISO 7-bit coded character set"
}

func (c *ISO7StringConverter) Decode(raw []byte, _ rp210.Capture) (any, error) {
	return strings.TrimRight(string(raw), "\x00"), nil
}

func (c *ISO7StringConverter) Encode(value any, _ rp210.Capture) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("rp210types: iso7 string: want string, got %T", value)
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return nil, fmt.Errorf("rp210types: iso7 string: byte %d out of 7-bit range", i)
		}
	}
	return []byte(s), nil
}
