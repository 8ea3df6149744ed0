package goentity

import (
	"sort"

	"github.com/reoring/goentity/i18n"
	js "github.com/reoring/goentity/jsonschema"
)

// UnknownPolicy controls how input keys absent from the schema are handled.
type UnknownPolicy int

const (
	// UnknownStrict rejects unknown keys in strict mode and logs/drops them
	// otherwise.
	UnknownStrict UnknownPolicy = iota
	// UnknownStrip silently drops unknown keys in both modes.
	UnknownStrip
)

// Schema is a compound schema node: a named, ordered set of field
// descriptors describing one nested document object. A Schema is pure
// metadata; the same instance is shared by every document it describes.
type Schema struct {
	fields  []FieldSpec
	byKey   map[string]FieldSpec
	unknown UnknownPolicy
}

// NewSchema builds a schema from the given descriptors, in declaration
// order. Duplicate document keys are rejected.
func NewSchema(fields ...FieldSpec) (*Schema, error) {
	byKey := make(map[string]FieldSpec, len(fields))
	for _, f := range fields {
		if _, dup := byKey[f.Key()]; dup {
			return nil, Issues{Issue{Path: "/" + f.Key(), Code: CodeDuplicateField, Message: i18n.T(CodeDuplicateField, nil)}}
		}
		byKey[f.Key()] = f
	}
	return &Schema{fields: fields, byKey: byKey, unknown: UnknownStrict}, nil
}

// MustSchema is like NewSchema but panics on error.
func MustSchema(fields ...FieldSpec) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// UnknownStrict sets the unknown-key policy to strict and returns the schema.
func (s *Schema) UnknownStrict() *Schema {
	s.unknown = UnknownStrict
	return s
}

// UnknownStrip sets the unknown-key policy to strip and returns the schema.
func (s *Schema) UnknownStrip() *Schema {
	s.unknown = UnknownStrip
	return s
}

// Fields returns the descriptors in declaration order. The slice is shared;
// callers must not mutate it.
func (s *Schema) Fields() []FieldSpec { return s.fields }

// Field looks up a descriptor by document key.
func (s *Schema) Field(key string) (FieldSpec, bool) {
	f, ok := s.byKey[key]
	return f, ok
}

// DefaultData composes the fully materialized default document: every
// field's default slice under its key.
func (s *Schema) DefaultData() map[string]any {
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		out[f.Key()] = f.DefaultData()
	}
	return out
}

// FilterInput validates raw input into a fully materialized document.
// Missing fields are filled from defaults; unknown keys follow the schema's
// policy. In non-strict mode malformed input is sanitized and logged, never
// rejected.
func (s *Schema) FilterInput(data any, strict bool) (map[string]any, error) {
	var src map[string]any
	switch t := data.(type) {
	case nil:
		src = map[string]any{}
	case map[string]any:
		src = t
	default:
		if strict {
			return nil, Issues{Issue{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object"}}
		}
		pkgLogger.Error().Interface("data", data).Msg("ignoring non-object data for compound value")
		src = map[string]any{}
	}

	out := make(map[string]any, len(s.fields))
	var iss Issues
	for _, f := range s.fields {
		raw, exists := src[f.Key()]
		if !exists {
			out[f.Key()] = f.DefaultData()
			continue
		}
		filtered, err := f.FilterInput(raw, strict)
		if err != nil {
			iss = AppendIssues(iss, RebaseIssues("/"+f.Key(), err)...)
			continue
		}
		out[f.Key()] = filtered
	}

	// unknown keys in key-sorted order for deterministic issue selection
	var uks []string
	for k := range src {
		if _, known := s.byKey[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	for _, k := range uks {
		if s.unknown == UnknownStrip {
			continue
		}
		if strict {
			iss = AppendIssues(iss, Issue{Path: "/" + k, Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, nil)})
			continue
		}
		pkgLogger.Error().Str("key", k).Msg("ignoring unknown key for compound value")
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// PruneFieldsData removes every prunable field slice from data, recursing
// through nested schemas. Pruning twice yields the same document as pruning
// once.
func (s *Schema) PruneFieldsData(data map[string]any) {
	if data == nil {
		return
	}
	for _, f := range s.fields {
		raw, ok := data[f.Key()]
		if !ok {
			continue
		}
		if f.PruneData(raw) {
			delete(data, f.Key())
		}
	}
}

// Equal reports ordered structural equality: same field count and pairwise
// equal descriptors. Two independently built same-shaped schemas compare
// equal; this is the compound-assignment gate.
func (s *Schema) Equal(o *Schema) bool {
	if s == o {
		return true
	}
	if o == nil || len(s.fields) != len(o.fields) {
		return false
	}
	for i, f := range s.fields {
		if !f.EqualField(o.fields[i]) {
			return false
		}
	}
	return true
}

// JSONSchema projects the schema into a JSON Schema object node.
func (s *Schema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(s.fields))
	for _, f := range s.fields {
		fs, err := f.JSONSchema()
		if err != nil {
			return nil, err
		}
		props[f.Key()] = fs
	}
	var additional any
	switch s.unknown {
	case UnknownStrict:
		additional = false
	case UnknownStrip:
		// Runtime accepts then discards unknown keys, so JSON Schema should
		// mark them as accepted (true).
		additional = true
	}
	return &js.Schema{Type: "object", Properties: props, AdditionalProperties: additional}, nil
}
