package goentity

import (
	"sort"

	"github.com/reoring/goentity/i18n"
	js "github.com/reoring/goentity/jsonschema"
)

// CompoundDictField is a field of key-typed nested-schema documents.
// Element access returns a bound compound view, allowing chained field
// access.
type CompoundDictField[K comparable] struct {
	key          string
	keys         KeyType[K]
	schema       *Schema
	storeDefault bool
}

// NewCompoundDictField creates a keyed nested-object field for the given key
// codec and schema.
func NewCompoundDictField[K comparable](key string, keys KeyType[K], schema *Schema) *CompoundDictField[K] {
	return &CompoundDictField[K]{key: key, keys: keys, schema: schema}
}

// WithStoreDefault keeps an empty mapping in the document instead of pruning
// it.
func (f *CompoundDictField[K]) WithStoreDefault() *CompoundDictField[K] {
	f.storeDefault = true
	return f
}

func (f *CompoundDictField[K]) Key() string          { return f.key }
func (f *CompoundDictField[K]) StoreDefault() bool   { return f.storeDefault }
func (f *CompoundDictField[K]) ChildSchema() *Schema { return f.schema }

// KeyCodec returns the key codec, for introspection.
func (f *CompoundDictField[K]) KeyCodec() KeyType[K] { return f.keys }

func (f *CompoundDictField[K]) DefaultData() any { return map[string]any{} }

// FilterInput rejects non-mapping input whole; entries with non-conforming
// keys are dropped individually; values are filtered through the nested
// schema.
func (f *CompoundDictField[K]) FilterInput(data any, strict bool) (any, error) {
	src, ok := data.(map[string]any)
	if !ok {
		if strict {
			return nil, Issues{Issue{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected mapping"}}
		}
		pkgLogger.Error().Str("field", f.key).Interface("data", data).Msg("ignoring non-mapping data")
		return map[string]any{}, nil
	}
	// entries in key-sorted order for deterministic issue selection
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]any, len(src))
	var iss Issues
	for _, k := range keys {
		if _, err := f.keys.DecodeKey(k); err != nil {
			if strict {
				iss = AppendIssues(iss, Issue{Path: "/" + k, Code: CodeInvalidKey, Message: i18n.T(CodeInvalidKey, nil)})
				continue
			}
			pkgLogger.Error().Str("field", f.key).Str("key", k).Msg("ignoring entry with invalid key type")
			continue
		}
		filtered, err := f.schema.FilterInput(src[k], strict)
		if err != nil {
			iss = AppendIssues(iss, RebaseIssues("/"+k, err)...)
			continue
		}
		out[k] = filtered
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// PruneData prunes every entry's fields in place but never removes entries;
// only a whole empty mapping may be omitted.
func (f *CompoundDictField[K]) PruneData(data any) bool {
	m, ok := data.(map[string]any)
	if !ok {
		return false
	}
	for _, sub := range m {
		if em, isMap := sub.(map[string]any); isMap {
			f.schema.PruneFieldsData(em)
		}
	}
	return len(m) == 0 && !f.storeDefault
}

func (f *CompoundDictField[K]) EqualField(other FieldSpec) bool {
	o, ok := other.(*CompoundDictField[K])
	return ok && o.key == f.key && o.storeDefault == f.storeDefault &&
		f.keys.EqualKeys(o.keys) && f.schema.Equal(o.schema)
}

func (f *CompoundDictField[K]) JSONSchema() (*js.Schema, error) {
	vs, err := f.schema.JSONSchema()
	if err != nil {
		return nil, err
	}
	ks, err := f.keys.KeySchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "object", AdditionalProperties: vs, PropertyNames: ks}, nil
}

// Get returns a bound view over the element mapping.
func (f *CompoundDictField[K]) Get(c Container) (*BoundCompoundDict[K], error) {
	d := c.Data()
	if d == nil {
		return nil, Issues{Issue{Path: "/" + f.key, Code: CodeUnboundValue, Message: "no live document to read from"}}
	}
	raw, ok := d[f.key]
	if !ok || raw == nil {
		d[f.key] = map[string]any{}
	} else if _, isMap := raw.(map[string]any); !isMap {
		return nil, Issues{Issue{Path: "/" + f.key, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected mapping"}}
	}
	return &BoundCompoundDict[K]{field: f, owner: d}, nil
}

// MustGet is like Get but panics on error.
func (f *CompoundDictField[K]) MustGet(c Container) *BoundCompoundDict[K] {
	b, err := f.Get(c)
	if err != nil {
		panic(err)
	}
	return b
}

// Set replaces the whole mapping. Values must be live bound children of this
// exact field's nested schema (instance identity); their slices are adopted
// by reference. Key-type conformance is enforced by the map's type
// parameter; keys only need encoding here.
func (f *CompoundDictField[K]) Set(c Container, vs map[K]*BoundCompound) error {
	d := c.Data()
	if d == nil {
		return Issues{Issue{Path: "/" + f.key, Code: CodeUnboundValue, Message: "no live document to assign into"}}
	}
	out := make(map[string]any, len(vs))
	for k, v := range vs {
		enc := f.keys.EncodeKey(k)
		if v == nil || v.data == nil {
			return Issues{Issue{Path: "/" + f.key + "/" + enc, Code: CodeUnboundValue, Message: i18n.T(CodeUnboundValue, nil)}}
		}
		if v.schema != f.schema {
			return Issues{Issue{Path: "/" + f.key + "/" + enc, Code: CodeValueMismatch, Message: i18n.T(CodeValueMismatch, nil), Hint: "assignment must contain only existing children of this field"}}
		}
		out[enc] = v.data
	}
	d[f.key] = out
	return nil
}
