package goentity

import (
	"strings"

	"github.com/reoring/goentity/i18n"
)

// FieldInspector navigates schema shape without touching any data: the
// "accessed on the type" path. It renders JSON Pointer paths for tooling and
// diagnostics and descends through nested schemas via SchemaCarrier fields.
type FieldInspector struct {
	schema *Schema
	spec   FieldSpec // nil at the schema root
	parts  []string
}

// Inspect returns an inspector rooted at the schema.
func (s *Schema) Inspect() *FieldInspector {
	return &FieldInspector{schema: s}
}

// Field descends into the named field. From a container field (compound,
// compound-list, compound-dict) descent continues into the nested schema;
// list/dict element hops do not appear as path segments beyond the field key
// itself.
func (i *FieldInspector) Field(key string) (*FieldInspector, error) {
	if i.schema == nil {
		return nil, Issues{Issue{Path: i.Path(), Code: CodeMissingData, Message: i18n.T(CodeMissingData, nil), Hint: "scalar fields have no sub-fields"}}
	}
	f, ok := i.schema.Field(key)
	if !ok {
		return nil, Issues{Issue{Path: i.Path() + "/" + key, Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, nil)}}
	}
	next := &FieldInspector{spec: f, parts: append(append([]string(nil), i.parts...), key)}
	if sc, carries := f.(SchemaCarrier); carries {
		next.schema = sc.ChildSchema()
	}
	return next, nil
}

// MustField is like Field but panics on error.
func (i *FieldInspector) MustField(key string) *FieldInspector {
	n, err := i.Field(key)
	if err != nil {
		panic(err)
	}
	return n
}

// Path renders the inspected position as a JSON Pointer ("/" at the root).
func (i *FieldInspector) Path() string {
	if len(i.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(i.parts, "/")
}

// Spec returns the descriptor at this position, or nil at the schema root.
func (i *FieldInspector) Spec() FieldSpec { return i.spec }

// ChildSchema returns the nested schema at this position, or nil for scalar
// and scalar-container fields.
func (i *FieldInspector) ChildSchema() *Schema { return i.schema }
