package goentity_test

import (
	"testing"

	goentity "github.com/reoring/goentity"
	"github.com/reoring/goentity/values"
)

func inventorySchema() *goentity.Schema {
	slot := goentity.MustSchema(
		goentity.NewField[string]("item", values.String("")),
		goentity.NewField[int64]("count", values.Int(0)),
	)
	return goentity.MustSchema(
		goentity.NewField[string]("owner", values.String("")),
		goentity.NewCompoundDictField[int64]("slots", goentity.IntKeys(), slot),
	)
}

func TestInspector_PathsWithoutData(t *testing.T) {
	s := inventorySchema()

	root := s.Inspect()
	if root.Path() != "/" {
		t.Fatalf("expected root path, got: %q", root.Path())
	}

	item := root.MustField("slots").MustField("item")
	if item.Path() != "/slots/item" {
		t.Fatalf("expected /slots/item, got: %q", item.Path())
	}
	if item.Spec() == nil || item.Spec().Key() != "item" {
		t.Fatalf("expected the scalar descriptor at the leaf")
	}
	if item.ChildSchema() != nil {
		t.Fatalf("a scalar position has no nested schema")
	}
}

func TestInspector_ContainerPositionsCarrySchemas(t *testing.T) {
	s := inventorySchema()
	slots := s.Inspect().MustField("slots")
	if slots.ChildSchema() == nil {
		t.Fatalf("expected nested schema at a compound-dict position")
	}
	if _, ok := slots.ChildSchema().Field("count"); !ok {
		t.Fatalf("expected nested schema fields reachable")
	}
}

func TestInspector_UnknownField(t *testing.T) {
	s := inventorySchema()
	_, err := s.Inspect().Field("nope")
	iss, ok := goentity.AsIssues(err)
	if !ok || iss[0].Code != goentity.CodeUnknownKey || iss[0].Path != "/nope" {
		t.Fatalf("expected unknown_key at /nope, got: %v", err)
	}
}

func TestInspector_ScalarHasNoSubFields(t *testing.T) {
	s := inventorySchema()
	owner := s.Inspect().MustField("owner")
	_, err := owner.Field("anything")
	iss, ok := goentity.AsIssues(err)
	if !ok || iss[0].Code != goentity.CodeMissingData {
		t.Fatalf("expected descent into a scalar to fail, got: %v", err)
	}
}

func TestJSONSchema_Projection(t *testing.T) {
	s := inventorySchema()
	js, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if js.Type != "object" {
		t.Fatalf("expected object schema, got: %q", js.Type)
	}
	if js.Properties["owner"] == nil || js.Properties["owner"].Type != "string" {
		t.Fatalf("expected owner projected as string, got: %+v", js.Properties["owner"])
	}
	slots := js.Properties["slots"]
	if slots == nil || slots.Type != "object" || slots.PropertyNames == nil {
		t.Fatalf("expected keyed-mapping projection, got: %+v", slots)
	}
	if slots.PropertyNames.Pattern == "" {
		t.Fatalf("expected integer-key pattern on propertyNames")
	}
	// strict unknown policy projects additionalProperties: false
	if v, ok := js.AdditionalProperties.(bool); !ok || v {
		t.Fatalf("expected additionalProperties false, got: %v", js.AdditionalProperties)
	}
}
