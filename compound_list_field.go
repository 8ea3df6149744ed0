package goentity

import (
	"strconv"

	"github.com/reoring/goentity/i18n"
	js "github.com/reoring/goentity/jsonschema"
)

// CompoundListField is a field of repeated nested-schema documents.
// Element access returns a bound compound view, allowing chained field
// access: players.At(2) -> name.Set(...).
type CompoundListField struct {
	key          string
	schema       *Schema
	storeDefault bool
}

// NewCompoundListField creates a repeated nested-object field for the given
// schema.
func NewCompoundListField(key string, schema *Schema) *CompoundListField {
	return &CompoundListField{key: key, schema: schema}
}

// WithStoreDefault keeps an empty list in the document instead of pruning it.
func (f *CompoundListField) WithStoreDefault() *CompoundListField {
	f.storeDefault = true
	return f
}

func (f *CompoundListField) Key() string          { return f.key }
func (f *CompoundListField) StoreDefault() bool   { return f.storeDefault }
func (f *CompoundListField) ChildSchema() *Schema { return f.schema }

func (f *CompoundListField) DefaultData() any { return []any{} }

// FilterInput rejects non-list input whole, then filters every element
// through the nested schema, in order.
func (f *CompoundListField) FilterInput(data any, strict bool) (any, error) {
	src, ok := data.([]any)
	if !ok {
		if strict {
			return nil, Issues{Issue{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected list"}}
		}
		pkgLogger.Error().Str("field", f.key).Interface("data", data).Msg("ignoring non-list data")
		return []any{}, nil
	}
	out := make([]any, len(src))
	var iss Issues
	for i, sub := range src {
		filtered, err := f.schema.FilterInput(sub, strict)
		if err != nil {
			iss = AppendIssues(iss, RebaseIssues("/"+strconv.Itoa(i), err)...)
			continue
		}
		out[i] = filtered
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// PruneData prunes every element's fields in place (nested defaults may be
// omitted) but never removes elements; only a whole empty list may be
// omitted.
func (f *CompoundListField) PruneData(data any) bool {
	l, ok := data.([]any)
	if !ok {
		return false
	}
	for _, sub := range l {
		if m, isMap := sub.(map[string]any); isMap {
			f.schema.PruneFieldsData(m)
		}
	}
	return len(l) == 0 && !f.storeDefault
}

func (f *CompoundListField) EqualField(other FieldSpec) bool {
	o, ok := other.(*CompoundListField)
	return ok && o.key == f.key && o.storeDefault == f.storeDefault && f.schema.Equal(o.schema)
}

func (f *CompoundListField) JSONSchema() (*js.Schema, error) {
	es, err := f.schema.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}

// Get returns a bound view over the element list.
func (f *CompoundListField) Get(c Container) (*BoundCompoundList, error) {
	d := c.Data()
	if d == nil {
		return nil, Issues{Issue{Path: "/" + f.key, Code: CodeUnboundValue, Message: "no live document to read from"}}
	}
	raw, ok := d[f.key]
	if !ok || raw == nil {
		d[f.key] = []any{}
	} else if _, isList := raw.([]any); !isList {
		return nil, Issues{Issue{Path: "/" + f.key, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected list"}}
	}
	return &BoundCompoundList{field: f, owner: d}, nil
}

// MustGet is like Get but panics on error.
func (f *CompoundListField) MustGet(c Container) *BoundCompoundList {
	b, err := f.Get(c)
	if err != nil {
		panic(err)
	}
	return b
}

// Set replaces the whole list. Only live bound children of this exact
// field's nested schema are accepted (instance identity, not structural
// equality): their slices are adopted by reference rather than re-validated,
// which is sound only because they already passed validation as children.
// Two compound-list fields with different schema instances are therefore
// never inter-assignable even when same-shaped.
func (f *CompoundListField) Set(c Container, vs []*BoundCompound) error {
	d := c.Data()
	if d == nil {
		return Issues{Issue{Path: "/" + f.key, Code: CodeUnboundValue, Message: "no live document to assign into"}}
	}
	out := make([]any, len(vs))
	for i, v := range vs {
		if v == nil || v.data == nil {
			return Issues{Issue{Path: "/" + f.key + "/" + strconv.Itoa(i), Code: CodeUnboundValue, Message: i18n.T(CodeUnboundValue, nil)}}
		}
		if v.schema != f.schema {
			return Issues{Issue{Path: "/" + f.key + "/" + strconv.Itoa(i), Code: CodeValueMismatch, Message: i18n.T(CodeValueMismatch, nil), Hint: "assignment must contain only existing children of this field"}}
		}
		out[i] = v.data
	}
	d[f.key] = out
	return nil
}
