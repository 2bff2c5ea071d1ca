package rp210types

import (
	"bytes"
	"testing"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

// defaultSet rebuilds the wired converter set and returns its array
// converter for direct exercise.
func defaultSet(t *testing.T) (*ArrayConverter, []rp210.Converter) {
	t.Helper()
	set := Default()
	ac, ok := set[0].(*ArrayConverter)
	if !ok {
		t.Fatalf("first converter is %T, want *ArrayConverter", set[0])
	}
	return ac, set
}

func TestArrayMatchCaptures(t *testing.T) {
	ac, _ := defaultSet(t)

	tests := []struct {
		typeName string
		element  string
		count    int
		ok       bool
	}{
		{"2 element array of Int32", "Int32", 2, true},
		{"16 element array of UInt8", "UInt8", 16, true},
		{"Batch of UInt32", "UInt32", 0, true},
		{"Batch of Universal Label", "Universal Label", 0, true},
		{"StrongReferenceArray", "StrongReference", 0, true},
		{"StrongReferenceBatch", "StrongReference", 0, true},
		{"WeakReferenceArray", "WeakReference", 0, true},
		{"AUIDArray", "AUID", 0, true},
		{"0 element array of Int32", "", 0, false},
		{"Int32", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			cp, ok := ac.Match(tt.typeName)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.typeName, ok, tt.ok)
			}
			if !ok {
				return
			}
			if cp.Element != tt.element || cp.Count != tt.count {
				t.Errorf("capture = %+v, want element=%q count=%d", cp, tt.element, tt.count)
			}
		})
	}
}

func TestFixedArrayDecode(t *testing.T) {
	ac, _ := defaultSet(t)
	cp, ok := ac.Match("2 element array of Int32")
	if !ok {
		t.Fatal("expected match")
	}

	raw := []byte{
		0x00, 0x00, 0x00, 0x19, // 25
		0xff, 0xff, 0xff, 0xff, // -1
	}
	v, err := ac.Decode(raw, cp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, ok := v.([]any)
	if !ok {
		t.Fatalf("Decode returned %T", v)
	}
	if len(items) != 2 || items[0] != int64(25) || items[1] != int64(-1) {
		t.Errorf("Decode = %v", items)
	}

	if _, err := ac.Decode(raw[:7], cp); err == nil {
		t.Error("expected error for payload not divisible by element count")
	}
}

func TestFixedArrayEncode(t *testing.T) {
	ac, _ := defaultSet(t)
	cp, _ := ac.Match("2 element array of Int32")

	raw, err := ac.Encode([]any{int64(25), int64(-1)}, cp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []byte{0x00, 0x00, 0x00, 0x19, 0xff, 0xff, 0xff, 0xff}
	if !bytes.Equal(raw, expected) {
		t.Errorf("Encode = %x, want %x", raw, expected)
	}

	if _, err := ac.Encode([]any{int64(1)}, cp); err == nil {
		t.Error("expected error for wrong item count")
	}
}

func TestBatchDecode(t *testing.T) {
	ac, _ := defaultSet(t)
	cp, _ := ac.Match("Batch of UInt32")

	raw := []byte{
		0x00, 0x00, 0x00, 0x02, // count
		0x00, 0x00, 0x00, 0x04, // item size
		0x00, 0x00, 0x00, 0x0a,
		0x00, 0x00, 0x00, 0x14,
	}
	v, err := ac.Decode(raw, cp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := v.([]any)
	if len(items) != 2 || items[0] != uint64(10) || items[1] != uint64(20) {
		t.Errorf("Decode = %v", items)
	}

	if _, err := ac.Decode(raw[:6], cp); err == nil {
		t.Error("expected error for truncated header")
	}
	if _, err := ac.Decode(raw[:12], cp); err == nil {
		t.Error("expected error when items exceed payload")
	}
}

func TestStrongReferenceArrayDecode(t *testing.T) {
	ac, _ := defaultSet(t)
	cp, _ := ac.Match("StrongReferenceArray")

	ref1 := bytes.Repeat([]byte{0x11}, 16)
	ref2 := bytes.Repeat([]byte{0x22}, 16)
	raw := append([]byte{
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x10,
	}, append(ref1, ref2...)...)

	v, err := ac.Decode(raw, cp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := v.([]any)
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0] != "11111111111111111111111111111111" || items[1] != "22222222222222222222222222222222" {
		t.Errorf("Decode = %v", items)
	}
}

func TestBatchEncodeRoundTrip(t *testing.T) {
	ac, _ := defaultSet(t)
	cp, _ := ac.Match("Batch of UInt16")

	raw, err := ac.Encode([]any{uint64(1), uint64(2), uint64(3)}, cp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []byte{
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x01, 0x00, 0x02, 0x00, 0x03,
	}
	if !bytes.Equal(raw, expected) {
		t.Errorf("Encode = %x, want %x", raw, expected)
	}

	back, err := ac.Decode(raw, cp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := back.([]any)
	if len(items) != 3 || items[2] != uint64(3) {
		t.Errorf("round trip = %v", items)
	}
}

func TestBatchDecodeOversizedHeader(t *testing.T) {
	ac, _ := defaultSet(t)
	cp, _ := ac.Match("Batch of UInt32")

	tests := []struct {
		name string
		raw  []byte
	}{
		{"max count and item size", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{"max count of single bytes", []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x01}},
		{"count times size wraps int", []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ac.Decode(tt.raw, cp); err == nil {
				t.Error("expected error, header promises more items than the payload holds")
			}
		})
	}
}

func TestArrayUnknownElementType(t *testing.T) {
	ac, _ := defaultSet(t)
	cp, _ := ac.Match("Batch of Widget")

	raw := []byte{
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x01,
		0xaa,
	}
	if _, err := ac.Decode(raw, cp); err == nil {
		t.Error("expected error for unknown element type")
	}
}

func TestDefaultOrderArrayBeforeScalars(t *testing.T) {
	_, set := defaultSet(t)

	// "Batch of UInt32" must be claimed by the array converter even though
	// the element name alone would match the integer converter.
	for _, c := range set {
		if cp, ok := c.Match("Batch of UInt32"); ok {
			if _, isArray := c.(*ArrayConverter); !isArray {
				t.Fatalf("Batch of UInt32 claimed by %T", c)
			}
			if cp.Element != "UInt32" {
				t.Errorf("capture element = %q", cp.Element)
			}
			return
		}
	}
	t.Fatal("no converter matched Batch of UInt32")
}
