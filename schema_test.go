package goentity_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	goentity "github.com/reoring/goentity"
	"github.com/reoring/goentity/values"
)

// captureDiagnostics routes the package logger into a buffer for the duration
// of a test and restores the previous sink afterwards.
func captureDiagnostics(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := *goentity.DiagLogger()
	buf := &bytes.Buffer{}
	goentity.SetLogger(zerolog.New(buf))
	t.Cleanup(func() { goentity.SetLogger(old) })
	return buf
}

func TestSchema_DuplicateKeyRejected(t *testing.T) {
	_, err := goentity.NewSchema(
		goentity.NewField[string]("name", values.String("")),
		goentity.NewField[int64]("name", values.Int(0)),
	)
	if err == nil {
		t.Fatalf("expected duplicate key error")
	}
	iss, ok := goentity.AsIssues(err)
	if !ok || iss[0].Code != goentity.CodeDuplicateField {
		t.Fatalf("expected duplicate_field, got: %v", err)
	}
}

func TestSchema_DefaultDataMaterializesEveryField(t *testing.T) {
	s := goentity.MustSchema(
		goentity.NewField[string]("name", values.String("anon")),
		goentity.NewListField[int64]("scores", values.Int(0)),
		goentity.NewDictField[string, bool]("flags", goentity.StringKeys(), values.Bool(false)),
	)
	d := s.DefaultData()
	if d["name"] != "anon" {
		t.Fatalf("expected default name, got: %v", d["name"])
	}
	if l, ok := d["scores"].([]any); !ok || len(l) != 0 {
		t.Fatalf("expected empty list default, got: %v", d["scores"])
	}
	if m, ok := d["flags"].(map[string]any); !ok || len(m) != 0 {
		t.Fatalf("expected empty mapping default, got: %v", d["flags"])
	}
}

func TestSchema_FilterInput_NilInputYieldsDefaults(t *testing.T) {
	s := goentity.MustSchema(goentity.NewField[string]("name", values.String("anon")))
	out, err := s.FilterInput(nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["name"] != "anon" {
		t.Fatalf("expected default fill, got: %v", out)
	}
}

func TestSchema_FilterInput_UnknownKeyStrict(t *testing.T) {
	s := goentity.MustSchema(goentity.NewField[string]("name", values.String("")))
	_, err := s.FilterInput(map[string]any{"name": "a", "zzz": 1, "yyy": 2}, true)
	iss, ok := goentity.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two unknown-key issues, got: %v", err)
	}
	// unknown keys are reported in sorted order
	if iss[0].Path != "/yyy" || iss[1].Path != "/zzz" {
		t.Fatalf("expected sorted unknown keys, got: %v", iss)
	}
	for _, it := range iss {
		if it.Code != goentity.CodeUnknownKey {
			t.Fatalf("expected unknown_key, got: %v", it)
		}
	}
}

func TestSchema_FilterInput_UnknownKeyNonStrictLogsAndDrops(t *testing.T) {
	buf := captureDiagnostics(t)
	s := goentity.MustSchema(goentity.NewField[string]("name", values.String("")))
	out, err := s.FilterInput(map[string]any{"name": "a", "zzz": 1}, false)
	if err != nil {
		t.Fatalf("non-strict filtering must not fail: %v", err)
	}
	if _, kept := out["zzz"]; kept {
		t.Fatalf("expected unknown key dropped, got: %v", out)
	}
	if !strings.Contains(buf.String(), "unknown key") {
		t.Fatalf("expected a diagnostic, got: %q", buf.String())
	}
}

func TestSchema_FilterInput_UnknownStripIsSilentInBothModes(t *testing.T) {
	buf := captureDiagnostics(t)
	s := goentity.MustSchema(goentity.NewField[string]("name", values.String(""))).UnknownStrip()
	for _, strict := range []bool{true, false} {
		out, err := s.FilterInput(map[string]any{"name": "a", "zzz": 1}, strict)
		if err != nil {
			t.Fatalf("strip policy must not fail (strict=%v): %v", strict, err)
		}
		if _, kept := out["zzz"]; kept {
			t.Fatalf("expected unknown key stripped, got: %v", out)
		}
	}
	if buf.Len() != 0 {
		t.Fatalf("strip policy must not log, got: %q", buf.String())
	}
}

func TestSchema_FilterInput_NonObjectInput(t *testing.T) {
	buf := captureDiagnostics(t)
	s := goentity.MustSchema(goentity.NewField[string]("name", values.String("anon")))

	_, err := s.FilterInput([]any{1}, true)
	iss, ok := goentity.AsIssues(err)
	if !ok || iss[0].Code != goentity.CodeInvalidType {
		t.Fatalf("expected invalid_type, got: %v", err)
	}

	out, err := s.FilterInput([]any{1}, false)
	if err != nil {
		t.Fatalf("non-strict filtering must not fail: %v", err)
	}
	if out["name"] != "anon" {
		t.Fatalf("expected default document after sanitize, got: %v", out)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected a diagnostic for sanitized input")
	}
}

func TestSchema_FilterInput_FieldIssuesCarryPaths(t *testing.T) {
	s := goentity.MustSchema(
		goentity.NewField[string]("name", values.String("")),
		goentity.NewListField[int64]("scores", values.Int(0)),
	)
	_, err := s.FilterInput(map[string]any{"name": 1, "scores": []any{1, "x", 3}}, true)
	iss, ok := goentity.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two issues, got: %v", err)
	}
	paths := map[string]bool{}
	for _, it := range iss {
		paths[it.Path] = true
	}
	if !paths["/name"] || !paths["/scores/1"] {
		t.Fatalf("expected rebased paths /name and /scores/1, got: %v", iss)
	}
}

func TestSchema_Equal_StructuralAcrossInstances(t *testing.T) {
	build := func() *goentity.Schema {
		return goentity.MustSchema(
			goentity.NewField[string]("name", values.String("anon")),
			goentity.NewField[int64]("age", values.Int(0)),
		)
	}
	a, b := build(), build()
	if !a.Equal(b) {
		t.Fatalf("same-shaped schemas must compare equal")
	}

	// different default breaks equality
	c := goentity.MustSchema(
		goentity.NewField[string]("name", values.String("other")),
		goentity.NewField[int64]("age", values.Int(0)),
	)
	if a.Equal(c) {
		t.Fatalf("different defaults must not compare equal")
	}

	// field order matters
	d := goentity.MustSchema(
		goentity.NewField[int64]("age", values.Int(0)),
		goentity.NewField[string]("name", values.String("anon")),
	)
	if a.Equal(d) {
		t.Fatalf("reordered fields must not compare equal")
	}

	// a superset is not equal
	e := goentity.MustSchema(
		goentity.NewField[string]("name", values.String("anon")),
		goentity.NewField[int64]("age", values.Int(0)),
		goentity.NewField[bool]("vip", values.Bool(false)),
	)
	if a.Equal(e) {
		t.Fatalf("superset schema must not compare equal")
	}
}
