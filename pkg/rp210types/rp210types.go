// Package rp210types ships the default converter set for the RP210
// dictionary: one converter per wire-type category, tried in a fixed
// priority order (first match wins).
//
// RP210 wire formats handled here, all big-endian:
//
//	Type name                        Payload
//	---------                        -------
//	Boolean                          1 byte, non-zero = true
//	UInt8/16/32/64, Int8/16/32/64    fixed-width integer
//	Length, Position                 8-byte signed integer (edit units)
//	VersionType                      2 bytes: major, minor
//	Rational                         2 × int32: numerator, denominator
//	TimeStamp                        8 bytes: year u16, month, day, hour,
//	                                 minute, second, msec/4
//	UTF-16 char string               UTF-16BE, optional NUL padding
//	ISO 7-bit coded character set    ASCII bytes
//	UUID, Universal Label, AUID,
//	Strong/WeakReference             16-byte identifier → lowercase hex
//	PackageID                        32-byte UMID → lowercase hex
//	<N> element array of <T>         N fixed-size elements of type T
//	Batch of <T>, *ReferenceArray,
//	StrongReferenceBatch, AUIDArray  u32 count + u32 item size + items
//
// Array and batch payloads dispatch their elements recursively through the
// same set, so "Batch of UInt32" and StrongReferenceArray come for free.
package rp210types

import (
	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// Set is an ordered converter collection with first-match resolution. The
// array converter uses it to decode element payloads recursively.
type Set struct {
	converters []rp210.Converter
}

// Default builds the standard ordered converter set. Order is part of the
// contract: earlier converters shadow later ones for overlapping rules.
func Default() []rp210.Converter {
	set := &Set{}
	set.converters = []rp210.Converter{
		&ArrayConverter{Elements: set},
		&ReferenceConverter{},
		&IntegerConverter{},
		&LengthConverter{},
		&BooleanConverter{},
		&VersionConverter{},
		&RationalConverter{},
		&TimestampConverter{},
		&UTF16StringConverter{},
		&ISO7StringConverter{},
	}
	return set.converters
}

// Find returns the first converter accepting typeName, with its capture.
func (s *Set) Find(typeName string) (rp210.Converter, rp210.Capture, bool) {
	for _, c := range s.converters {
		if capture, ok := c.Match(typeName); ok {
			return c, capture, true
		}
	}
	return nil, rp210.Capture{}, false
}

// Decode resolves typeName within the set and decodes raw with it.
func (s *Set) Decode(typeName string, raw []byte) (any, error) {
	c, capture, ok := s.Find(typeName)
	if !ok {
		return nil, &rp210.NoConverterError{Type: typeName}
	}
	return c.Decode(raw, capture)
}

// Encode resolves typeName within the set and encodes value with it.
func (s *Set) Encode(typeName string, value any) ([]byte, error) {
	c, capture, ok := s.Find(typeName)
	if !ok {
		return nil, &rp210.NoConverterError{Type: typeName}
	}
	return c.Encode(value, capture)
}
