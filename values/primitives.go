package values

import (
	goentity "github.com/reoring/goentity"
	"github.com/reoring/goentity/i18n"
	js "github.com/reoring/goentity/jsonschema"
)

func invalidType(hint string) goentity.Issues {
	return goentity.Issues{goentity.Issue{Path: "/", Code: goentity.CodeInvalidType, Message: i18n.T(goentity.CodeInvalidType, nil), Hint: hint}}
}

// BoolValue validates a single boolean.
type BoolValue struct{ def bool }

// Bool returns a boolean validator with the given default.
func Bool(def bool) *BoolValue { return &BoolValue{def: def} }

func (v *BoolValue) DefaultData() any { return v.def }

func (v *BoolValue) FilterInput(data any, strict bool) (any, error) {
	b, ok := data.(bool)
	if !ok {
		if strict {
			return nil, invalidType("expected bool")
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring non-bool data")
		return v.def, nil
	}
	return b, nil
}

func (v *BoolValue) FilterOutput(data any) (bool, error) {
	b, ok := data.(bool)
	if !ok {
		return false, invalidType("expected bool")
	}
	return b, nil
}

func (v *BoolValue) StoreData(b bool) (any, error) { return b, nil }

func (v *BoolValue) Prune(data any) bool { return data == any(v.def) }

func (v *BoolValue) Equal(o goentity.Value) bool {
	ov, ok := o.(*BoolValue)
	return ok && ov.def == v.def
}

func (v *BoolValue) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "boolean", Default: v.def}, nil
}

// IntValue validates a single integer. The stored primitive is int64;
// JSON-decoded float64 and json.Number representations are normalized on
// input.
type IntValue struct{ def int64 }

// Int returns an integer validator with the given default.
func Int(def int64) *IntValue { return &IntValue{def: def} }

func (v *IntValue) DefaultData() any { return v.def }

func (v *IntValue) FilterInput(data any, strict bool) (any, error) {
	n, ok := asInt(data)
	if !ok {
		if strict {
			return nil, invalidType("expected integer")
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring non-integer data")
		return v.def, nil
	}
	return n, nil
}

func (v *IntValue) FilterOutput(data any) (int64, error) {
	n, ok := asInt(data)
	if !ok {
		return 0, invalidType("expected integer")
	}
	return n, nil
}

func (v *IntValue) StoreData(n int64) (any, error) { return n, nil }

func (v *IntValue) Prune(data any) bool {
	n, ok := asInt(data)
	return ok && n == v.def
}

func (v *IntValue) Equal(o goentity.Value) bool {
	ov, ok := o.(*IntValue)
	return ok && ov.def == v.def
}

func (v *IntValue) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "integer", Default: v.def}, nil
}

// FloatValue validates a single floating-point number. Integer input is
// accepted and widened.
type FloatValue struct{ def float64 }

// Float returns a float validator with the given default.
func Float(def float64) *FloatValue { return &FloatValue{def: def} }

func (v *FloatValue) DefaultData() any { return v.def }

func (v *FloatValue) FilterInput(data any, strict bool) (any, error) {
	f, ok := asFloat(data)
	if !ok {
		if strict {
			return nil, invalidType("expected number")
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring non-numeric data")
		return v.def, nil
	}
	return f, nil
}

func (v *FloatValue) FilterOutput(data any) (float64, error) {
	f, ok := asFloat(data)
	if !ok {
		return 0, invalidType("expected number")
	}
	return f, nil
}

func (v *FloatValue) StoreData(f float64) (any, error) { return f, nil }

func (v *FloatValue) Prune(data any) bool {
	f, ok := asFloat(data)
	return ok && f == v.def
}

func (v *FloatValue) Equal(o goentity.Value) bool {
	ov, ok := o.(*FloatValue)
	return ok && ov.def == v.def
}

func (v *FloatValue) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "number", Default: v.def}, nil
}

// StringValue validates a single string.
type StringValue struct{ def string }

// String returns a string validator with the given default.
func String(def string) *StringValue { return &StringValue{def: def} }

func (v *StringValue) DefaultData() any { return v.def }

func (v *StringValue) FilterInput(data any, strict bool) (any, error) {
	s, ok := data.(string)
	if !ok {
		if strict {
			return nil, invalidType("expected string")
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring non-string data")
		return v.def, nil
	}
	return s, nil
}

func (v *StringValue) FilterOutput(data any) (string, error) {
	s, ok := data.(string)
	if !ok {
		return "", invalidType("expected string")
	}
	return s, nil
}

func (v *StringValue) StoreData(s string) (any, error) { return s, nil }

func (v *StringValue) Prune(data any) bool { return data == any(v.def) }

func (v *StringValue) Equal(o goentity.Value) bool {
	ov, ok := o.(*StringValue)
	return ok && ov.def == v.def
}

func (v *StringValue) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Default: v.def}, nil
}
