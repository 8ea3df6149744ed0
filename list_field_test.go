package goentity_test

import (
	"testing"

	goentity "github.com/reoring/goentity"
	"github.com/reoring/goentity/values"
)

func TestListField_WholeInputRejectedStrict(t *testing.T) {
	wheels := goentity.NewListField[int64]("wheels", values.Int(0))
	s := goentity.MustSchema(wheels)

	_, err := goentity.NewEntityFromData(s, map[string]any{"wheels": "nope"}, true)
	iss, ok := goentity.AsIssues(err)
	if !ok || iss[0].Code != goentity.CodeInvalidType || iss[0].Path != "/wheels" {
		t.Fatalf("expected invalid_type at /wheels, got: %v", err)
	}
}

func TestListField_WholeInputSanitizedNonStrict(t *testing.T) {
	buf := captureDiagnostics(t)
	wheels := goentity.NewListField[int64]("wheels", values.Int(0))
	s := goentity.MustSchema(wheels)

	e, err := goentity.NewEntityFromData(s, map[string]any{"wheels": "nope"}, false)
	if err != nil {
		t.Fatalf("non-strict filtering must not fail: %v", err)
	}
	b := wheels.MustGet(e)
	if b.Len() != 0 {
		t.Fatalf("expected empty sanitized list, got %d elements", b.Len())
	}
	if buf.Len() == 0 {
		t.Fatalf("expected a diagnostic for sanitized list")
	}
}

func TestListField_BadElementSanitizedNonStrict(t *testing.T) {
	captureDiagnostics(t)
	wheels := goentity.NewListField[int64]("wheels", values.Int(0))
	s := goentity.MustSchema(wheels)

	e, err := goentity.NewEntityFromData(s, map[string]any{"wheels": []any{1, "x", 3}}, false)
	if err != nil {
		t.Fatalf("non-strict filtering must not fail: %v", err)
	}
	vs, err := wheels.MustGet(e).Values()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// order and length preserved; the bad element became the default
	if len(vs) != 3 || vs[0] != 1 || vs[1] != 0 || vs[2] != 3 {
		t.Fatalf("expected [1 0 3], got: %v", vs)
	}
}

func TestListField_AliasedViewsObserveAppend(t *testing.T) {
	wheels := goentity.NewListField[int64]("wheels", values.Int(0))
	s := goentity.MustSchema(wheels)
	e := goentity.NewEntity(s)

	a := wheels.MustGet(e)
	b := wheels.MustGet(e)
	if err := a.Append(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("append must be visible through every view, got len %d", b.Len())
	}
	if got, _ := b.At(0); got != 7 {
		t.Fatalf("expected 7 through the alias, got: %d", got)
	}
}

func TestListField_SetAtAndBounds(t *testing.T) {
	wheels := goentity.NewListField[int64]("wheels", values.Int(0))
	s := goentity.MustSchema(wheels)
	e := goentity.NewEntity(s)

	if err := wheels.Set(e, []int64{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := wheels.MustGet(e)
	if err := b.SetAt(1, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := b.At(1); got != 9 {
		t.Fatalf("expected in-place update, got: %d", got)
	}

	_, err := b.At(5)
	iss, ok := goentity.AsIssues(err)
	if !ok || iss[0].Code != goentity.CodeMissingData || iss[0].Path != "/wheels/5" {
		t.Fatalf("expected missing_data at /wheels/5, got: %v", err)
	}
}

func TestListField_GetMaterializesPrunedList(t *testing.T) {
	wheels := goentity.NewListField[int64]("wheels", values.Int(0))
	s := goentity.MustSchema(wheels)
	e := goentity.NewEntity(s)
	e.Prune()

	if _, present := e.Data()["wheels"]; present {
		t.Fatalf("expected empty list pruned")
	}
	b := wheels.MustGet(e)
	if _, present := e.Data()["wheels"]; !present {
		t.Fatalf("container Get must rehydrate the key so views alias storage")
	}
	if err := b.Append(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wheels.MustGet(e).Len() != 1 {
		t.Fatalf("expected append visible after rehydration")
	}
}
