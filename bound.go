package goentity

import (
	"sort"
	"strconv"

	"github.com/reoring/goentity/i18n"
)

// Bound views pair a descriptor with the document slice backing it. They own
// no storage: several views over the same slice may coexist, and mutation
// through any of them is visible through all. Container views hold the
// owning map plus the field key (not the slice itself) so replacement writes
// such as append stay visible through every alias.

// BoundCompound is a live view over one nested-schema document.
type BoundCompound struct {
	schema *Schema
	data   map[string]any
}

// NewBoundCompound binds a schema to an existing document slice. Most
// callers obtain views through field Get accessors or Entity.Root instead.
func NewBoundCompound(schema *Schema, data map[string]any) *BoundCompound {
	return &BoundCompound{schema: schema, data: data}
}

// Data returns the backing document slice. Implements Container, so field
// descriptors of the schema accept the view directly.
func (b *BoundCompound) Data() map[string]any { return b.data }

// Schema returns the schema describing this view.
func (b *BoundCompound) Schema() *Schema { return b.schema }

// BoundList is a live view over a scalar list field's slice.
type BoundList[T any] struct {
	field *ListField[T]
	owner map[string]any
}

func (b *BoundList[T]) raw() []any {
	l, _ := b.owner[b.field.key].([]any)
	return l
}

// Len returns the element count.
func (b *BoundList[T]) Len() int { return len(b.raw()) }

// At returns the logical value at index i.
func (b *BoundList[T]) At(i int) (T, error) {
	l := b.raw()
	if i < 0 || i >= len(l) {
		var zero T
		return zero, Issues{Issue{Path: "/" + b.field.key + "/" + strconv.Itoa(i), Code: CodeMissingData, Message: i18n.T(CodeMissingData, nil), Hint: "index out of range"}}
	}
	v, err := b.field.value.FilterOutput(l[i])
	if err != nil {
		var zero T
		return zero, RebaseIssues("/"+b.field.key+"/"+strconv.Itoa(i), err)
	}
	return v, nil
}

// SetAt validates and stores a logical value at index i.
func (b *BoundList[T]) SetAt(i int, v T) error {
	l := b.raw()
	if i < 0 || i >= len(l) {
		return Issues{Issue{Path: "/" + b.field.key + "/" + strconv.Itoa(i), Code: CodeMissingData, Message: i18n.T(CodeMissingData, nil), Hint: "index out of range"}}
	}
	raw, err := b.field.value.StoreData(v)
	if err != nil {
		return RebaseIssues("/"+b.field.key+"/"+strconv.Itoa(i), err)
	}
	l[i] = raw
	return nil
}

// Append validates and appends a logical value. The replacement write goes
// through the owning map so other views observe it.
func (b *BoundList[T]) Append(v T) error {
	raw, err := b.field.value.StoreData(v)
	if err != nil {
		return RebaseIssues("/"+b.field.key, err)
	}
	b.owner[b.field.key] = append(b.raw(), raw)
	return nil
}

// Values converts the whole slice to logical values.
func (b *BoundList[T]) Values() ([]T, error) {
	l := b.raw()
	out := make([]T, len(l))
	for i := range l {
		v, err := b.field.value.FilterOutput(l[i])
		if err != nil {
			return nil, RebaseIssues("/"+b.field.key+"/"+strconv.Itoa(i), err)
		}
		out[i] = v
	}
	return out, nil
}

// BoundDict is a live view over a scalar dict field's slice.
type BoundDict[K comparable, T any] struct {
	field *DictField[K, T]
	owner map[string]any
}

func (b *BoundDict[K, T]) raw() map[string]any {
	m, _ := b.owner[b.field.key].(map[string]any)
	return m
}

// Len returns the entry count.
func (b *BoundDict[K, T]) Len() int { return len(b.raw()) }

// Has reports whether the key is present.
func (b *BoundDict[K, T]) Has(k K) bool {
	_, ok := b.raw()[b.field.keys.EncodeKey(k)]
	return ok
}

// Get returns the logical value stored under k.
func (b *BoundDict[K, T]) Get(k K) (T, error) {
	enc := b.field.keys.EncodeKey(k)
	raw, ok := b.raw()[enc]
	if !ok {
		var zero T
		return zero, Issues{Issue{Path: "/" + b.field.key + "/" + enc, Code: CodeMissingData, Message: i18n.T(CodeMissingData, nil)}}
	}
	v, err := b.field.value.FilterOutput(raw)
	if err != nil {
		var zero T
		return zero, RebaseIssues("/"+b.field.key+"/"+enc, err)
	}
	return v, nil
}

// Set validates and stores a logical value under k, creating the entry when
// absent.
func (b *BoundDict[K, T]) Set(k K, v T) error {
	enc := b.field.keys.EncodeKey(k)
	raw, err := b.field.value.StoreData(v)
	if err != nil {
		return RebaseIssues("/"+b.field.key+"/"+enc, err)
	}
	m := b.raw()
	if m == nil {
		m = map[string]any{}
		b.owner[b.field.key] = m
	}
	m[enc] = raw
	return nil
}

// Delete removes the entry under k, if present.
func (b *BoundDict[K, T]) Delete(k K) {
	delete(b.raw(), b.field.keys.EncodeKey(k))
}

// Keys returns the logical keys sorted by their document encoding.
func (b *BoundDict[K, T]) Keys() ([]K, error) {
	m := b.raw()
	encs := make([]string, 0, len(m))
	for enc := range m {
		encs = append(encs, enc)
	}
	sort.Strings(encs)
	out := make([]K, 0, len(encs))
	for _, enc := range encs {
		k, err := b.field.keys.DecodeKey(enc)
		if err != nil {
			return nil, RebaseIssues("/"+b.field.key, err)
		}
		out = append(out, k)
	}
	return out, nil
}

// BoundCompoundList is a live view over a compound list field's slice.
type BoundCompoundList struct {
	field *CompoundListField
	owner map[string]any
}

func (b *BoundCompoundList) raw() []any {
	l, _ := b.owner[b.field.key].([]any)
	return l
}

// Len returns the element count.
func (b *BoundCompoundList) Len() int { return len(b.raw()) }

// At returns a bound compound view into element i, enabling chained field
// access and writes.
func (b *BoundCompoundList) At(i int) (*BoundCompound, error) {
	l := b.raw()
	if i < 0 || i >= len(l) {
		return nil, Issues{Issue{Path: "/" + b.field.key + "/" + strconv.Itoa(i), Code: CodeMissingData, Message: i18n.T(CodeMissingData, nil), Hint: "index out of range"}}
	}
	m, ok := l[i].(map[string]any)
	if !ok {
		return nil, Issues{Issue{Path: "/" + b.field.key + "/" + strconv.Itoa(i), Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object"}}
	}
	return &BoundCompound{schema: b.field.schema, data: m}, nil
}

// Append adds a new default-initialized element and returns its bound view.
func (b *BoundCompoundList) Append() (*BoundCompound, error) {
	m := b.field.schema.DefaultData()
	b.owner[b.field.key] = append(b.raw(), any(m))
	return &BoundCompound{schema: b.field.schema, data: m}, nil
}

// BoundCompoundDict is a live view over a compound dict field's slice.
type BoundCompoundDict[K comparable] struct {
	field *CompoundDictField[K]
	owner map[string]any
}

func (b *BoundCompoundDict[K]) raw() map[string]any {
	m, _ := b.owner[b.field.key].(map[string]any)
	return m
}

// Len returns the entry count.
func (b *BoundCompoundDict[K]) Len() int { return len(b.raw()) }

// Has reports whether the key is present.
func (b *BoundCompoundDict[K]) Has(k K) bool {
	_, ok := b.raw()[b.field.keys.EncodeKey(k)]
	return ok
}

// Get returns a bound compound view into the entry under k.
func (b *BoundCompoundDict[K]) Get(k K) (*BoundCompound, error) {
	enc := b.field.keys.EncodeKey(k)
	raw, ok := b.raw()[enc]
	if !ok {
		return nil, Issues{Issue{Path: "/" + b.field.key + "/" + enc, Code: CodeMissingData, Message: i18n.T(CodeMissingData, nil)}}
	}
	m, isMap := raw.(map[string]any)
	if !isMap {
		return nil, Issues{Issue{Path: "/" + b.field.key + "/" + enc, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object"}}
	}
	return &BoundCompound{schema: b.field.schema, data: m}, nil
}

// Add creates a default-initialized entry under k (replacing any existing
// entry) and returns its bound view.
func (b *BoundCompoundDict[K]) Add(k K) (*BoundCompound, error) {
	enc := b.field.keys.EncodeKey(k)
	m := b.field.schema.DefaultData()
	dm := b.raw()
	if dm == nil {
		dm = map[string]any{}
		b.owner[b.field.key] = dm
	}
	dm[enc] = m
	return &BoundCompound{schema: b.field.schema, data: m}, nil
}

// Delete removes the entry under k, if present.
func (b *BoundCompoundDict[K]) Delete(k K) {
	delete(b.raw(), b.field.keys.EncodeKey(k))
}

// Keys returns the logical keys sorted by their document encoding.
func (b *BoundCompoundDict[K]) Keys() ([]K, error) {
	m := b.raw()
	encs := make([]string, 0, len(m))
	for enc := range m {
		encs = append(encs, enc)
	}
	sort.Strings(encs)
	out := make([]K, 0, len(encs))
	for _, enc := range encs {
		k, err := b.field.keys.DecodeKey(enc)
		if err != nil {
			return nil, RebaseIssues("/"+b.field.key, err)
		}
		out = append(out, k)
	}
	return out, nil
}
