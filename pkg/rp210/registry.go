// Package rp210 implements the SMPTE RP210 metadata dictionary used to
// interpret binary-encoded fields inside MXF containers.
//
// The registry maps 16-byte Universal Labels to descriptors (wire type,
// normalized field name, description) loaded once from the RP210
// specification feed. Vendor-specific mappings can be layered on top via
// Inject before the registry is handed to readers. The Dispatcher then
// resolves a UL and runs the raw field bytes through the first converter
// whose match rule accepts the descriptor's type name.
//
// Lifecycle is build-then-freeze: construction and injection are
// single-threaded; once injection is done the registry is read-only and safe
// for concurrent lookups without locking.
package rp210

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Descriptor is the immutable triple the registry associates with one UL.
// Entries are always fully populated: a feed row that cannot produce all
// required values is never stored.
type Descriptor struct {
	Type        string // RP210 wire type name, e.g. "Boolean"
	Name        string // normalized field name, e.g. "random_access"
	Description string // free-form definition text; may be empty
}

// Entry is one vendor mapping handed to Inject: the raw display name is
// normalized on insertion.
type Entry struct {
	Type        string
	Name        string // raw display name
	Description string
}

// Required feed columns. Definition is read when present but a row without
// it still yields an entry with an empty description.
const (
	columnUL         = "UL"
	columnType       = "Type"
	columnName       = "Name"
	columnDefinition = "Definition"
)

// Registry is the UL → Descriptor dictionary. Insertion order is recorded
// so reverse lookups and iteration are deterministic for a given feed.
type Registry struct {
	entries map[string]Descriptor
	order   []string // canonical keys in first-insertion order
}

// LoadFile builds a registry from the CSV feed at path. The file handle is
// closed on all exit paths. Failure to open the feed is fatal and reported
// as *SpecLoadError.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SpecLoadError{Source: path, Err: err}
	}
	defer f.Close()

	reg, err := Load(f)
	if err != nil {
		var spec *SpecLoadError
		if errors.As(err, &spec) {
			spec.Source = path
		}
		return nil, err
	}
	return reg, nil
}

// Load builds a registry from an open CSV specification feed.
//
// The first record is the header; it must contain the UL, Type and Name
// columns (Definition is optional) or loading fails with *SpecLoadError.
// Individual rows are handled leniently: a row that is short, whose type or
// name cell is empty after trimming, or whose UL cell does not canonicalize
// to 32 hex digits, is dropped without error. A later row with the same UL
// overwrites an earlier one.
func Load(r io.Reader) (*Registry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are a per-row concern, not fatal
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &SpecLoadError{Source: "<feed>", Err: fmt.Errorf("read header: %w", err)}
	}

	cols := map[string]int{}
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{columnUL, columnType, columnName} {
		if _, ok := cols[required]; !ok {
			return nil, &SpecLoadError{Source: "<feed>", Err: fmt.Errorf("missing required column %q", required)}
		}
	}
	defCol, hasDef := cols[columnDefinition]

	reg := &Registry{entries: make(map[string]Descriptor)}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: the leniency policy favours a partial
			// registry over strict feed validation.
			continue
		}

		cell := func(i int) string {
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		key := canonicalKey(cell(cols[columnUL]))
		typ := cell(cols[columnType])
		name := cell(cols[columnName])
		if typ == "" || name == "" || !validKey(key) {
			continue
		}

		desc := ""
		if hasDef {
			desc = cell(defCol)
		}
		reg.put(key, Descriptor{
			Type:        typ,
			Name:        NormalizeFieldName(name),
			Description: desc,
		})
	}

	return reg, nil
}

// Inject layers vendor-specific mappings atop the registry. Fragment keys
// are left-zero-padded to the full 32-digit key; display names go through
// the usual normalization. Existing entries at the same key are silently
// overwritten — last write wins.
//
// Inject must complete before the registry is shared with concurrent
// readers; injection and lookup are never interleaved.
func (r *Registry) Inject(entries map[string]Entry) {
	for fragment, e := range entries {
		r.put(padFragment(fragment), Descriptor{
			Type:        e.Type,
			Name:        NormalizeFieldName(e.Name),
			Description: e.Description,
		})
	}
}

// Lookup resolves a UL to its descriptor, or fails with *NotFoundError.
func (r *Registry) Lookup(ul UL) (Descriptor, error) {
	d, ok := r.entries[ul.Hex()]
	if !ok {
		return Descriptor{}, &NotFoundError{Key: ul.Hex()}
	}
	return d, nil
}

// LookupByFieldName scans the registry in insertion order for an entry whose
// normalized field name equals name and returns its UL.
//
// When several entries share a field name the first one inserted wins; that
// order follows the feed, so it is deterministic per build but not a stable
// contract across differently ordered feeds.
func (r *Registry) LookupByFieldName(name string) (UL, error) {
	for _, key := range r.order {
		if r.entries[key].Name == name {
			ul, err := ParseUL(key)
			if err != nil {
				return UL{}, fmt.Errorf("rp210: corrupt registry key %q: %w", key, err)
			}
			return ul, nil
		}
	}
	return UL{}, &NotFoundError{Key: name}
}

// Len returns the number of registry entries.
func (r *Registry) Len() int { return len(r.entries) }

// Walk visits every entry in insertion order until fn returns false.
func (r *Registry) Walk(fn func(ul UL, d Descriptor) bool) {
	for _, key := range r.order {
		ul, err := ParseUL(key)
		if err != nil {
			continue
		}
		if !fn(ul, r.entries[key]) {
			return
		}
	}
}

func (r *Registry) put(key string, d Descriptor) {
	if _, exists := r.entries[key]; !exists {
		r.order = append(r.order, key)
	}
	r.entries[key] = d
}
