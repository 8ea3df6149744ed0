package goentity

import (
	"sort"

	"github.com/reoring/goentity/i18n"
	js "github.com/reoring/goentity/jsonschema"
)

// DictField is a key-typed mapping-to-scalar field. Keys are stored as their
// KeyType string encodings so the document stays a plain JSON tree.
type DictField[K comparable, T any] struct {
	key          string
	keys         KeyType[K]
	value        TypedValue[T]
	storeDefault bool
}

// NewDictField creates a mapping field with the given key codec and element
// validator.
func NewDictField[K comparable, T any](key string, keys KeyType[K], value TypedValue[T]) *DictField[K, T] {
	return &DictField[K, T]{key: key, keys: keys, value: value}
}

// WithStoreDefault keeps an empty mapping in the document instead of pruning
// it.
func (f *DictField[K, T]) WithStoreDefault() *DictField[K, T] {
	f.storeDefault = true
	return f
}

func (f *DictField[K, T]) Key() string        { return f.key }
func (f *DictField[K, T]) StoreDefault() bool { return f.storeDefault }

// KeyCodec returns the key codec, for introspection.
func (f *DictField[K, T]) KeyCodec() KeyType[K] { return f.keys }

func (f *DictField[K, T]) DefaultData() any { return map[string]any{} }

// FilterInput rejects non-mapping input whole; entries with non-conforming
// keys are dropped individually (a mapping can be partially valid while a
// list cannot). Values are filtered through the scalar validator.
func (f *DictField[K, T]) FilterInput(data any, strict bool) (any, error) {
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
		filtered, err := f.value.FilterInput(src[k], strict)
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

// PruneData never prunes individual entries; only a whole empty mapping may
// be omitted.
func (f *DictField[K, T]) PruneData(data any) bool {
	m, ok := data.(map[string]any)
	if !ok {
		return false
	}
	return len(m) == 0 && !f.storeDefault
}

func (f *DictField[K, T]) EqualField(other FieldSpec) bool {
	o, ok := other.(*DictField[K, T])
	return ok && o.key == f.key && o.storeDefault == f.storeDefault &&
		f.keys.EqualKeys(o.keys) && f.value.Equal(o.value)
}

func (f *DictField[K, T]) JSONSchema() (*js.Schema, error) {
	vs, err := f.value.JSONSchema()
	if err != nil {
		return nil, err
	}
	ks, err := f.keys.KeySchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "object", AdditionalProperties: vs, PropertyNames: ks}, nil
}

// Get returns a bound view over the mapping slice. A pruned mapping
// materializes as empty in the document so every view aliases the same
// storage.
func (f *DictField[K, T]) Get(c Container) (*BoundDict[K, T], error) {
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
	return &BoundDict[K, T]{field: f, owner: d}, nil
}

// MustGet is like Get but panics on error.
func (f *DictField[K, T]) MustGet(c Container) *BoundDict[K, T] {
	b, err := f.Get(c)
	if err != nil {
		panic(err)
	}
	return b
}

// Set replaces the whole mapping from logical values, validating each entry.
func (f *DictField[K, T]) Set(c Container, vs map[K]T) error {
	d := c.Data()
	if d == nil {
		return Issues{Issue{Path: "/" + f.key, Code: CodeUnboundValue, Message: "no live document to assign into"}}
	}
	out := make(map[string]any, len(vs))
	for k, v := range vs {
		enc := f.keys.EncodeKey(k)
		raw, err := f.value.StoreData(v)
		if err != nil {
			return RebaseIssues("/"+f.key+"/"+enc, err)
		}
		out[enc] = raw
	}
	d[f.key] = out
	return nil
}
