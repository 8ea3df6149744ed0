package goentity_test

import (
	"testing"

	goentity "github.com/reoring/goentity"
	"github.com/reoring/goentity/values"
)

func TestField_GetSetRoundTrip(t *testing.T) {
	name := goentity.NewField[string]("name", values.String("anon"))
	s := goentity.MustSchema(name)
	e := goentity.NewEntity(s)

	v, err := name.Get(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "anon" {
		t.Fatalf("expected default, got: %q", v)
	}

	if err := name.Set(e, "flora"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := name.MustGet(e); got != "flora" {
		t.Fatalf("expected written value, got: %q", got)
	}
}

func TestField_PrunedKeyReadsDefault(t *testing.T) {
	age := goentity.NewField[int64]("age", values.Int(30))
	s := goentity.MustSchema(age)
	e := goentity.NewEntity(s)
	e.Prune()

	if _, present := e.Data()["age"]; present {
		t.Fatalf("expected default-equal scalar pruned")
	}
	if got := age.MustGet(e); got != 30 {
		t.Fatalf("expected default after pruning, got: %d", got)
	}
	// scalar reads do not rehydrate the key
	if _, present := e.Data()["age"]; present {
		t.Fatalf("scalar Get must not materialize the key")
	}
}

func TestField_StoreDefaultSurvivesPruning(t *testing.T) {
	age := goentity.NewField[int64]("age", values.Int(30)).WithStoreDefault()
	s := goentity.MustSchema(age)
	e := goentity.NewEntity(s)

	d := e.PrunedData()
	if d["age"] != int64(30) {
		t.Fatalf("store-default field must survive pruning, got: %v", d)
	}
}

func TestField_SetOnDetachedEntityFails(t *testing.T) {
	name := goentity.NewField[string]("name", values.String(""))
	s := goentity.MustSchema(name)
	e := goentity.NewEntity(s)
	_ = e.StealData()

	err := name.Set(e, "x")
	iss, ok := goentity.AsIssues(err)
	if !ok || iss[0].Code != goentity.CodeUnboundValue {
		t.Fatalf("expected unbound_value, got: %v", err)
	}
}

func TestField_NumericNormalizationOnRead(t *testing.T) {
	// JSON decoding stores integers as float64; reads still produce int64.
	age := goentity.NewField[int64]("age", values.Int(0))
	s := goentity.MustSchema(age)
	e, err := goentity.NewEntityFromData(s, map[string]any{"age": float64(42)}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := age.MustGet(e); got != 42 {
		t.Fatalf("expected normalized integer, got: %d", got)
	}
}
