package rp210

import "fmt"

// SpecLoadError is returned when the RP210 specification feed cannot be
// opened or is structurally invalid (missing required columns). It is fatal
// to registry construction; per-row parse problems never surface as errors.
type SpecLoadError struct {
	Source string // feed path, or "<feed>" for in-memory feeds
	Err    error
}

func (e *SpecLoadError) Error() string {
	return fmt.Sprintf("rp210: load spec %q: %v", e.Source, e.Err)
}

func (e *SpecLoadError) Unwrap() error { return e.Err }

// NotFoundError is returned by registry lookups when no entry exists for the
// requested UL or field name. Recoverable; the caller decides the fallback.
type NotFoundError struct {
	Key string // canonical hex key or field name
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("rp210: %q not found in registry", e.Key)
}

// UnknownFieldError is the conversion-time counterpart of NotFoundError:
// the UL handed to the dispatcher is absent from the registry.
type UnknownFieldError struct {
	UL UL
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("rp210: unknown field UL %s", e.UL.Hex())
}

// NoConverterError is returned when a descriptor resolves but no converter's
// match rule accepts its type name. Carries the type and field names for
// diagnostics; callers typically log it and keep the raw bytes opaque.
type NoConverterError struct {
	Type  string
	Field string
}

func (e *NoConverterError) Error() string {
	return fmt.Sprintf("rp210: no converter for type %q (field %q)", e.Type, e.Field)
}
