package goentity

import (
	"strconv"

	"github.com/reoring/goentity/i18n"
	js "github.com/reoring/goentity/jsonschema"
)

// ListField is a homogeneous repeated-scalar field.
type ListField[T any] struct {
	key          string
	value        TypedValue[T]
	storeDefault bool
}

// NewListField creates a repeated-scalar field for the given element
// validator.
func NewListField[T any](key string, value TypedValue[T]) *ListField[T] {
	return &ListField[T]{key: key, value: value}
}

// WithStoreDefault keeps an empty list in the document instead of pruning it.
func (f *ListField[T]) WithStoreDefault() *ListField[T] {
	f.storeDefault = true
	return f
}

func (f *ListField[T]) Key() string        { return f.key }
func (f *ListField[T]) StoreDefault() bool { return f.storeDefault }

func (f *ListField[T]) DefaultData() any { return []any{} }

// FilterInput rejects non-list input whole (a list cannot have "invalid
// positions"), then validates every element in order, preserving order and
// length.
func (f *ListField[T]) FilterInput(data any, strict bool) (any, error) {
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
	for i, entry := range src {
		filtered, err := f.value.FilterInput(entry, strict)
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

// PruneData never prunes individual elements since that would fundamentally
// change the list; only a whole empty list may be omitted.
func (f *ListField[T]) PruneData(data any) bool {
	l, ok := data.([]any)
	if !ok {
		return false
	}
	return len(l) == 0 && !f.storeDefault
}

func (f *ListField[T]) EqualField(other FieldSpec) bool {
	o, ok := other.(*ListField[T])
	return ok && o.key == f.key && o.storeDefault == f.storeDefault && f.value.Equal(o.value)
}

func (f *ListField[T]) JSONSchema() (*js.Schema, error) {
	es, err := f.value.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}

// Get returns a bound view over the list slice. A pruned list materializes
// as empty in the document so every view aliases the same storage.
func (f *ListField[T]) Get(c Container) (*BoundList[T], error) {
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
	return &BoundList[T]{field: f, owner: d}, nil
}

// MustGet is like Get but panics on error.
func (f *ListField[T]) MustGet(c Container) *BoundList[T] {
	b, err := f.Get(c)
	if err != nil {
		panic(err)
	}
	return b
}

// Set replaces the whole list from logical values, validating each element.
func (f *ListField[T]) Set(c Container, vs []T) error {
	d := c.Data()
	if d == nil {
		return Issues{Issue{Path: "/" + f.key, Code: CodeUnboundValue, Message: "no live document to assign into"}}
	}
	out := make([]any, len(vs))
	for i, v := range vs {
		raw, err := f.value.StoreData(v)
		if err != nil {
			return RebaseIssues("/"+f.key+"/"+strconv.Itoa(i), err)
		}
		out[i] = raw
	}
	d[f.key] = out
	return nil
}
