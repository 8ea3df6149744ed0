package goentity

import (
	js "github.com/reoring/goentity/jsonschema"
)

// FieldSpec is the untyped descriptor contract shared by every field kind.
// Descriptors are created once at schema-definition time and carry no
// per-instance state; typed access goes through the concrete descriptor's
// Get/Set methods.
type FieldSpec interface {
	// Key returns the document key this field is stored under.
	Key() string
	// StoreDefault reports whether a default-equal value is kept rather than
	// pruned.
	StoreDefault() bool
	// DefaultData returns the slice stored when no input was provided.
	DefaultData() any
	// FilterInput validates/coerces raw input for this field's slice.
	FilterInput(data any, strict bool) (any, error)
	// PruneData reports whether the whole slice may be omitted. Container
	// kinds with nested schemas prune their elements' fields in place first.
	PruneData(data any) bool
	// EqualField reports structural equality with another descriptor: same
	// kind, key, store-default flag, and value/key descriptors.
	EqualField(other FieldSpec) bool
	// JSONSchema projects the field into a JSON Schema fragment.
	JSONSchema() (*js.Schema, error)
}

// SchemaCarrier is implemented by the field kinds whose elements are nested
// schema documents (CompoundField, CompoundListField, CompoundDictField).
type SchemaCarrier interface {
	ChildSchema() *Schema
}

// Field is a scalar field descriptor: one primitive stored under one key.
type Field[T any] struct {
	key          string
	value        TypedValue[T]
	storeDefault bool
}

// NewField creates a scalar field descriptor bound to the given document key.
func NewField[T any](key string, value TypedValue[T]) *Field[T] {
	return &Field[T]{key: key, value: value}
}

// WithStoreDefault keeps default-equal values in the document instead of
// pruning them.
func (f *Field[T]) WithStoreDefault() *Field[T] {
	f.storeDefault = true
	return f
}

func (f *Field[T]) Key() string        { return f.key }
func (f *Field[T]) StoreDefault() bool { return f.storeDefault }

// Value returns the scalar validator, for introspection.
func (f *Field[T]) Value() TypedValue[T] { return f.value }

func (f *Field[T]) DefaultData() any { return f.value.DefaultData() }

func (f *Field[T]) FilterInput(data any, strict bool) (any, error) {
	return f.value.FilterInput(data, strict)
}

// FilterOutput converts a stored primitive back to the logical type.
func (f *Field[T]) FilterOutput(data any) (T, error) {
	return f.value.FilterOutput(data)
}

func (f *Field[T]) PruneData(data any) bool {
	if f.storeDefault {
		return false
	}
	return f.value.Prune(data)
}

func (f *Field[T]) EqualField(other FieldSpec) bool {
	o, ok := other.(*Field[T])
	return ok && o.key == f.key && o.storeDefault == f.storeDefault && f.value.Equal(o.value)
}

func (f *Field[T]) JSONSchema() (*js.Schema, error) { return f.value.JSONSchema() }

// Get reads the logical value from the container's slice. A key pruned from
// the document reads back as the validator default.
func (f *Field[T]) Get(c Container) (T, error) {
	raw, ok := c.Data()[f.key]
	if !ok {
		raw = f.value.DefaultData()
	}
	v, err := f.value.FilterOutput(raw)
	if err != nil {
		return v, RebaseIssues("/"+f.key, err)
	}
	return v, nil
}

// MustGet is like Get but panics on error.
func (f *Field[T]) MustGet(c Container) T {
	v, err := f.Get(c)
	if err != nil {
		panic(err)
	}
	return v
}

// Set validates the logical value and writes its primitive form under the
// field's key.
func (f *Field[T]) Set(c Container, v T) error {
	d := c.Data()
	if d == nil {
		return Issues{Issue{Path: "/" + f.key, Code: CodeUnboundValue, Message: "no live document to assign into"}}
	}
	raw, err := f.value.StoreData(v)
	if err != nil {
		return RebaseIssues("/"+f.key, err)
	}
	d[f.key] = raw
	return nil
}
