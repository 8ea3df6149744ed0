package goentity

import (
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Entity owns the single root document for one schema. Field descriptors of
// the schema are applied to the entity (or to bound views obtained from it)
// to read and write data. The document always materializes every field key;
// pruning applies to exported copies and round-trips back through input
// filtering, which restores defaults for pruned keys.
type Entity struct {
	schema *Schema
	data   map[string]any
}

// NewEntity creates an entity with a fully default document.
func NewEntity(schema *Schema) *Entity {
	return &Entity{schema: schema, data: schema.DefaultData()}
}

// NewEntityFromData creates an entity from raw document data, filtered
// through the schema. strict selects the raise vs. sanitize-and-log policy.
func NewEntityFromData(schema *Schema, data map[string]any, strict bool) (*Entity, error) {
	out, err := schema.FilterInput(data, strict)
	if err != nil {
		return nil, err
	}
	return &Entity{schema: schema, data: out}, nil
}

// Schema returns the schema describing this entity.
func (e *Entity) Schema() *Schema { return e.schema }

// Data returns the live root document. Implements Container, so root-level
// field descriptors accept the entity directly.
func (e *Entity) Data() map[string]any { return e.data }

// Root returns a bound compound view over the root document.
func (e *Entity) Root() *BoundCompound {
	return &BoundCompound{schema: e.schema, data: e.data}
}

// SetData replaces the document with filtered input.
func (e *Entity) SetData(data map[string]any, strict bool) error {
	out, err := e.schema.FilterInput(data, strict)
	if err != nil {
		return err
	}
	e.data = out
	return nil
}

// CopyData returns a deep copy of the live document.
func (e *Entity) CopyData() map[string]any {
	if e.data == nil {
		return nil
	}
	return DeepCopy(e.data).(map[string]any)
}

// StealData detaches and returns the live document. The entity is unusable
// for writes afterwards; bound views obtained later report unbound_value.
func (e *Entity) StealData() map[string]any {
	d := e.data
	e.data = nil
	return d
}

// Prune removes default/empty slices from the live document in place.
// Subsequent reads rehydrate pruned keys from defaults.
func (e *Entity) Prune() {
	e.schema.PruneFieldsData(e.data)
}

// PrunedData returns a deep-copied, pruned document: the canonical
// serialization form.
func (e *Entity) PrunedData() map[string]any {
	d := e.CopyData()
	e.schema.PruneFieldsData(d)
	return d
}

// ToJSON serializes the pruned document.
func (e *Entity) ToJSON() ([]byte, error) {
	b, err := json.Marshal(e.PrunedData())
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return b, nil
}

// FromJSON replaces the document from serialized JSON, filtered through the
// schema (restoring defaults for pruned keys).
func (e *Entity) FromJSON(b []byte, strict bool) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out, err := e.schema.FilterInput(raw, strict)
	if err != nil {
		return err
	}
	e.data = out
	return nil
}

// ToYAML serializes the pruned document.
func (e *Entity) ToYAML() ([]byte, error) {
	b, err := yaml.Marshal(e.PrunedData())
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return b, nil
}

// FromYAML replaces the document from serialized YAML, filtered through the
// schema.
func (e *Entity) FromYAML(b []byte, strict bool) error {
	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out, err := e.schema.FilterInput(raw, strict)
	if err != nil {
		return err
	}
	e.data = out
	return nil
}
