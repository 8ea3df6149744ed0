package goentity

import (
	"github.com/reoring/goentity/i18n"
	js "github.com/reoring/goentity/jsonschema"
)

// CompoundField is a nested schema node stored as a sub-object under one key.
type CompoundField struct {
	key          string
	schema       *Schema
	storeDefault bool
}

// NewCompoundField creates a nested-object field for the given schema.
func NewCompoundField(key string, schema *Schema) *CompoundField {
	return &CompoundField{key: key, schema: schema}
}

// WithStoreDefault keeps a default-equal sub-object instead of pruning it.
func (f *CompoundField) WithStoreDefault() *CompoundField {
	f.storeDefault = true
	return f
}

func (f *CompoundField) Key() string          { return f.key }
func (f *CompoundField) StoreDefault() bool   { return f.storeDefault }
func (f *CompoundField) ChildSchema() *Schema { return f.schema }

func (f *CompoundField) DefaultData() any { return f.schema.DefaultData() }

func (f *CompoundField) FilterInput(data any, strict bool) (any, error) {
	out, err := f.schema.FilterInput(data, strict)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PruneData prunes the sub-object's fields in place, then reports whether
// the whole sub-object may be omitted.
func (f *CompoundField) PruneData(data any) bool {
	m, ok := data.(map[string]any)
	if !ok {
		return false
	}
	f.schema.PruneFieldsData(m)
	return len(m) == 0 && !f.storeDefault
}

func (f *CompoundField) EqualField(other FieldSpec) bool {
	o, ok := other.(*CompoundField)
	return ok && o.key == f.key && o.storeDefault == f.storeDefault && f.schema.Equal(o.schema)
}

func (f *CompoundField) JSONSchema() (*js.Schema, error) { return f.schema.JSONSchema() }

// Get returns a bound view over the sub-object. A pruned sub-object is
// rehydrated from defaults and materialized into the document so that every
// view of this field aliases the same slice.
func (f *CompoundField) Get(c Container) (*BoundCompound, error) {
	d := c.Data()
	if d == nil {
		return nil, Issues{Issue{Path: "/" + f.key, Code: CodeUnboundValue, Message: "no live document to read from"}}
	}
	raw, ok := d[f.key]
	if !ok || raw == nil {
		m := f.schema.DefaultData()
		d[f.key] = m
		return &BoundCompound{schema: f.schema, data: m}, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, Issues{Issue{Path: "/" + f.key, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object"}}
	}
	return &BoundCompound{schema: f.schema, data: m}, nil
}

// MustGet is like Get but panics on error.
func (f *CompoundField) MustGet(c Container) *BoundCompound {
	b, err := f.Get(c)
	if err != nil {
		panic(err)
	}
	return b
}

// Set assigns from a bound compound view whose schema structurally equals
// this field's nested schema (same ordered field set, not the same
// instance). The source slice is deep-copied so later writes through either
// side stay isolated. Assignment failures always return Issues; there is no
// sanitize mode for programmer error.
func (f *CompoundField) Set(c Container, v *BoundCompound) error {
	d := c.Data()
	if d == nil {
		return Issues{Issue{Path: "/" + f.key, Code: CodeUnboundValue, Message: "no live document to assign into"}}
	}
	if v == nil || v.data == nil {
		return Issues{Issue{Path: "/" + f.key, Code: CodeUnboundValue, Message: i18n.T(CodeUnboundValue, nil)}}
	}
	if !f.schema.Equal(v.schema) {
		return Issues{Issue{Path: "/" + f.key, Code: CodeValueMismatch, Message: i18n.T(CodeValueMismatch, nil)}}
	}
	// The field sets match, so the source data is already in a valid state.
	d[f.key] = DeepCopy(v.data)
	return nil
}
