package rp210types

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// Parametrized collection type names, compiled once at package init.
var (
	fixedArrayPattern = regexp.MustCompile(`^(\d+) element array of (.+)$`)
	batchPattern      = regexp.MustCompile(`^Batch of (.+)$`)
)

// refCollections are the named reference collections RP210 uses instead of
// the generic batch spelling. They share the batch wire format.
var refCollections = map[string]string{
	"StrongReferenceArray": "StrongReference",
	"StrongReferenceBatch": "StrongReference",
	"WeakReferenceArray":   "WeakReference",
	"AUIDArray":            "AUID",
}

// batchHeaderLen is the fixed overhead of a batch payload: element count
// (uint32) followed by per-item byte size (uint32).
const batchHeaderLen = 8

// ArrayConverter handles the collection types. Two wire layouts exist:
//
//   - "<N> element array of <T>": N elements back to back, the element size
//     implied by the total field length. The match rule captures N and T.
//   - "Batch of <T>" and the named reference collections: an 8-byte header
//     (count, item size) followed by the items.
//
// Elements dispatch recursively through the owning converter set, so any
// element type the set understands is a valid collection element.
type ArrayConverter struct {
	Elements *Set
}

func (c *ArrayConverter) Match(typeName string) (rp210.Capture, bool) {
	if m := fixedArrayPattern.FindStringSubmatch(typeName); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return rp210.Capture{}, false
		}
		return rp210.Capture{Element: m[2], Count: n}, true
	}
	if m := batchPattern.FindStringSubmatch(typeName); m != nil {
		return rp210.Capture{Element: m[1]}, true
	}
	if element, ok := refCollections[typeName]; ok {
		return rp210.Capture{Element: element}, true
	}
	return rp210.Capture{}, false
}

func (c *ArrayConverter) Decode(raw []byte, capture rp210.Capture) (any, error) {
	if capture.Count > 0 {
		return c.decodeFixed(raw, capture)
	}
	return c.decodeBatch(raw, capture)
}

func (c *ArrayConverter) Encode(value any, capture rp210.Capture) ([]byte, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("rp210types: array of %s: want []any, got %T", capture.Element, value)
	}

	encoded := make([][]byte, 0, len(items))
	itemSize := 0
	for i, item := range items {
		b, err := c.Elements.Encode(capture.Element, item)
		if err != nil {
			return nil, fmt.Errorf("rp210types: array of %s: item %d: %w", capture.Element, i, err)
		}
		if i == 0 {
			itemSize = len(b)
		} else if len(b) != itemSize {
			return nil, fmt.Errorf("rp210types: array of %s: item %d size %d != %d",
				capture.Element, i, len(b), itemSize)
		}
		encoded = append(encoded, b)
	}

	if capture.Count > 0 {
		if len(items) != capture.Count {
			return nil, fmt.Errorf("rp210types: array of %s: want %d items, got %d",
				capture.Element, capture.Count, len(items))
		}
		out := make([]byte, 0, capture.Count*itemSize)
		for _, b := range encoded {
			out = append(out, b...)
		}
		return out, nil
	}

	out := make([]byte, batchHeaderLen, batchHeaderLen+len(items)*itemSize)
	binary.BigEndian.PutUint32(out[0:4], uint32(len(items)))
	binary.BigEndian.PutUint32(out[4:8], uint32(itemSize))
	for _, b := range encoded {
		out = append(out, b...)
	}
	return out, nil
}

func (c *ArrayConverter) decodeFixed(raw []byte, capture rp210.Capture) (any, error) {
	if len(raw) == 0 || len(raw)%capture.Count != 0 {
		return nil, fmt.Errorf("rp210types: array of %s: length %d not divisible by %d",
			capture.Element, len(raw), capture.Count)
	}

	itemSize := len(raw) / capture.Count
	items := make([]any, 0, capture.Count)
	for i := 0; i < capture.Count; i++ {
		item, err := c.Elements.Decode(capture.Element, raw[i*itemSize:(i+1)*itemSize])
		if err != nil {
			return nil, fmt.Errorf("rp210types: array of %s: item %d: %w", capture.Element, i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *ArrayConverter) decodeBatch(raw []byte, capture rp210.Capture) (any, error) {
	if len(raw) < batchHeaderLen {
		return nil, fmt.Errorf("rp210types: batch of %s: truncated header (%d bytes)",
			capture.Element, len(raw))
	}

	count := int(binary.BigEndian.Uint32(raw[0:4]))
	itemSize := int(binary.BigEndian.Uint32(raw[4:8]))

	// Bounds are checked by division: multiplying the two header values can
	// wrap past the int range and slip a forged header through the guard.
	avail := len(raw) - batchHeaderLen
	if count > 0 {
		if itemSize <= 0 {
			return nil, fmt.Errorf("rp210types: batch of %s: invalid item size %d", capture.Element, itemSize)
		}
		if count > avail/itemSize {
			return nil, fmt.Errorf("rp210types: batch of %s: %d items of %d bytes exceed payload %d",
				capture.Element, count, itemSize, len(raw))
		}
	}

	items := make([]any, 0, count)
	for i := 0; i < count; i++ {
		offset := batchHeaderLen + i*itemSize
		item, err := c.Elements.Decode(capture.Element, raw[offset:offset+itemSize])
		if err != nil {
			return nil, fmt.Errorf("rp210types: batch of %s: item %d: %w", capture.Element, i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
