package rp210

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ULSize is the fixed byte length of a SMPTE Universal Label.
const ULSize = 16

// UL is a 16-byte SMPTE Universal Label identifying the semantic type of an
// MXF metadata field. The registry keys on its canonical textual form: the
// lowercase, un-delimited 32-character hex string returned by Hex.
type UL [ULSize]byte

// ParseUL parses a textual Universal Label. Both the dot-delimited form used
// by the RP210 specification feed ("06.0e.2b.34...") and the plain 32-char
// hex form are accepted; case is ignored.
func ParseUL(s string) (UL, error) {
	var ul UL

	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	if len(cleaned) != 2*ULSize {
		return ul, fmt.Errorf("rp210: UL %q: want %d hex digits, got %d", s, 2*ULSize, len(cleaned))
	}
	raw, err := hex.DecodeString(cleaned)
	if err != nil {
		return ul, fmt.Errorf("rp210: UL %q: %w", s, err)
	}

	copy(ul[:], raw)
	return ul, nil
}

// MustParseUL is ParseUL for compile-time constants; it panics on bad input.
func MustParseUL(s string) UL {
	ul, err := ParseUL(s)
	if err != nil {
		panic(err)
	}
	return ul
}

// ULFromBytes copies a raw 16-byte key into a UL.
func ULFromBytes(b []byte) (UL, error) {
	var ul UL
	if len(b) != ULSize {
		return ul, fmt.Errorf("rp210: UL: want %d bytes, got %d", ULSize, len(b))
	}
	copy(ul[:], b)
	return ul, nil
}

// Hex returns the canonical registry key form: lowercase hex, no delimiters.
func (ul UL) Hex() string {
	return hex.EncodeToString(ul[:])
}

// Dotted returns the dot-delimited display form used by the RP210 feed.
func (ul UL) Dotted() string {
	parts := make([]string, ULSize)
	for i, b := range ul {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, ".")
}

func (ul UL) String() string {
	return ul.Hex()
}

// canonicalKey normalizes any textual UL spelling to the registry key form.
// Dots are stripped and hex digits lowered; no length check is applied so
// short vendor fragments can share the same path before padding.
func canonicalKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), ".", ""))
}

// validKey reports whether s is a usable registry key: exactly 32 hex
// digits in canonical form.
func validKey(s string) bool {
	if len(s) != 2*ULSize {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// padFragment left-pads a short hex fragment with zeros up to the canonical
// 32-digit key length, the layering rule vendor mappings rely on: fragment
// "abcd" becomes 28 zero digits followed by "abcd".
func padFragment(fragment string) string {
	key := canonicalKey(fragment)
	if len(key) >= 2*ULSize {
		return key
	}
	return strings.Repeat("0", 2*ULSize-len(key)) + key
}
