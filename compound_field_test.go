package goentity_test

import (
	"testing"

	goentity "github.com/reoring/goentity"
	"github.com/reoring/goentity/values"
)

func engineSchema() *goentity.Schema {
	return goentity.MustSchema(
		goentity.NewField[int64]("cylinders", values.Int(4)),
		goentity.NewField[float64]("displacement", values.Float(2.0)),
	)
}

func TestCompoundField_ChainedAccess(t *testing.T) {
	cylinders := goentity.NewField[int64]("cylinders", values.Int(4))
	engine := goentity.MustSchema(cylinders, goentity.NewField[float64]("displacement", values.Float(2.0)))
	engineField := goentity.NewCompoundField("engine", engine)
	s := goentity.MustSchema(engineField)
	e := goentity.NewEntity(s)

	b := engineField.MustGet(e)
	if got := cylinders.MustGet(b); got != 4 {
		t.Fatalf("expected nested default, got: %d", got)
	}
	if err := cylinders.Set(b, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the write went into the live document
	raw := e.Data()["engine"].(map[string]any)
	if raw["cylinders"] != int64(8) {
		t.Fatalf("expected nested write visible in the document, got: %v", raw)
	}
}

func TestCompoundField_GetRehydratesPrunedSubObject(t *testing.T) {
	engineField := goentity.NewCompoundField("engine", engineSchema())
	s := goentity.MustSchema(engineField)
	e := goentity.NewEntity(s)
	e.Prune()

	if _, present := e.Data()["engine"]; present {
		t.Fatalf("expected default-equal sub-object pruned")
	}
	b := engineField.MustGet(e)
	if _, present := e.Data()["engine"]; !present {
		t.Fatalf("Get must materialize the pruned sub-object")
	}
	// the view and the document alias the same storage
	b.Data()["cylinders"] = int64(6)
	raw := e.Data()["engine"].(map[string]any)
	if raw["cylinders"] != int64(6) {
		t.Fatalf("expected the rehydrated view to alias the document")
	}
}

func TestCompoundField_SetAcceptsStructurallyEqualSchema(t *testing.T) {
	// two independently built, same-shaped schemas
	fieldA := goentity.NewCompoundField("engine", engineSchema())
	fieldB := goentity.NewCompoundField("engine", engineSchema())
	sa := goentity.MustSchema(fieldA)
	sb := goentity.MustSchema(fieldB)
	ea := goentity.NewEntity(sa)
	eb := goentity.NewEntity(sb)

	src := fieldB.MustGet(eb)
	src.Data()["cylinders"] = int64(12)
	if err := fieldA.Set(ea, src); err != nil {
		t.Fatalf("structurally equal assignment must succeed: %v", err)
	}
	got := fieldA.MustGet(ea)
	if got.Data()["cylinders"] != int64(12) {
		t.Fatalf("expected copied value, got: %v", got.Data())
	}

	// assignment deep-copies: later writes stay isolated
	src.Data()["cylinders"] = int64(16)
	if got.Data()["cylinders"] != int64(12) {
		t.Fatalf("expected isolation after assignment, got: %v", got.Data())
	}
}

func TestCompoundField_SetRejectsSupersetSchema(t *testing.T) {
	superset := goentity.MustSchema(
		goentity.NewField[int64]("cylinders", values.Int(4)),
		goentity.NewField[float64]("displacement", values.Float(2.0)),
		goentity.NewField[bool]("turbo", values.Bool(false)),
	)
	engineField := goentity.NewCompoundField("engine", engineSchema())
	s := goentity.MustSchema(engineField)
	e := goentity.NewEntity(s)

	err := engineField.Set(e, goentity.NewBoundCompound(superset, superset.DefaultData()))
	iss, ok := goentity.AsIssues(err)
	if !ok || iss[0].Code != goentity.CodeValueMismatch {
		t.Fatalf("expected value_mismatch for superset source, got: %v", err)
	}
}

func TestCompoundField_SetRejectsUnboundSource(t *testing.T) {
	engineField := goentity.NewCompoundField("engine", engineSchema())
	s := goentity.MustSchema(engineField)
	e := goentity.NewEntity(s)

	err := engineField.Set(e, goentity.NewBoundCompound(engineSchema(), nil))
	iss, ok := goentity.AsIssues(err)
	if !ok || iss[0].Code != goentity.CodeUnboundValue {
		t.Fatalf("expected unbound_value, got: %v", err)
	}
}
