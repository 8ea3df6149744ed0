package goentity

// Package goentity provides:
//
// - A declarative field/schema layer (Field, CompoundField, ListField,
//   DictField, CompoundListField, CompoundDictField) bound to plain nested
//   documents (map[string]any / []any / primitives)
// - Input validation with a two-mode policy (strict raise vs. sanitize-and-log)
// - Default-value suppression ("pruning") so stored documents only carry
//   meaningful data
// - Bound views for attribute-style navigation into nested structures
//   (entity root -> compound -> list element -> scalar)
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; scalar validators live under
//   values/, message catalogs under i18n/, schema export under jsonschema/.
// - Descriptors are immutable metadata shared by every instance of a schema;
//   all per-instance state lives in the document tree owned by an Entity.
// - Bound views never own storage. They pair a descriptor with the owning
//   document slice, so mutation through one view is visible through every
//   other view of the same slice.
//
// Typical usage:
//
//	var carSchema = goentity.MustSchema(
//	    goentity.NewField("color", values.String("red")),
//	    goentity.NewListField("wheels", values.Int(0)),
//	)
//
//	e := goentity.NewEntity(carSchema)
//	data, err := e.ToJSON() // pruned document
//
// The package is not goroutine-safe; callers owning an entity are responsible
// for serializing access.
