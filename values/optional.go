package values

import (
	goentity "github.com/reoring/goentity"
	js "github.com/reoring/goentity/jsonschema"
)

// Optional validators store null as their default and surface the logical
// value through a pointer: nil means "not set". They prune exactly when the
// stored value is null.

// OptionalBoolValue validates a nullable boolean.
type OptionalBoolValue struct{}

// OptionalBool returns a nullable boolean validator.
func OptionalBool() *OptionalBoolValue { return &OptionalBoolValue{} }

func (v *OptionalBoolValue) DefaultData() any { return nil }

func (v *OptionalBoolValue) FilterInput(data any, strict bool) (any, error) {
	if data == nil {
		return nil, nil
	}
	b, ok := data.(bool)
	if !ok {
		if strict {
			return nil, invalidType("expected bool or null")
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring non-bool data")
		return nil, nil
	}
	return b, nil
}

func (v *OptionalBoolValue) FilterOutput(data any) (*bool, error) {
	if data == nil {
		return nil, nil
	}
	b, ok := data.(bool)
	if !ok {
		return nil, invalidType("expected bool or null")
	}
	return &b, nil
}

func (v *OptionalBoolValue) StoreData(b *bool) (any, error) {
	if b == nil {
		return nil, nil
	}
	return *b, nil
}

func (v *OptionalBoolValue) Prune(data any) bool { return data == nil }

func (v *OptionalBoolValue) Equal(o goentity.Value) bool {
	_, ok := o.(*OptionalBoolValue)
	return ok
}

func (v *OptionalBoolValue) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "boolean", Nullable: true}, nil
}

// OptionalIntValue validates a nullable integer.
type OptionalIntValue struct{}

// OptionalInt returns a nullable integer validator.
func OptionalInt() *OptionalIntValue { return &OptionalIntValue{} }

func (v *OptionalIntValue) DefaultData() any { return nil }

func (v *OptionalIntValue) FilterInput(data any, strict bool) (any, error) {
	if data == nil {
		return nil, nil
	}
	n, ok := asInt(data)
	if !ok {
		if strict {
			return nil, invalidType("expected integer or null")
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring non-integer data")
		return nil, nil
	}
	return n, nil
}

func (v *OptionalIntValue) FilterOutput(data any) (*int64, error) {
	if data == nil {
		return nil, nil
	}
	n, ok := asInt(data)
	if !ok {
		return nil, invalidType("expected integer or null")
	}
	return &n, nil
}

func (v *OptionalIntValue) StoreData(n *int64) (any, error) {
	if n == nil {
		return nil, nil
	}
	return *n, nil
}

func (v *OptionalIntValue) Prune(data any) bool { return data == nil }

func (v *OptionalIntValue) Equal(o goentity.Value) bool {
	_, ok := o.(*OptionalIntValue)
	return ok
}

func (v *OptionalIntValue) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "integer", Nullable: true}, nil
}

// OptionalFloatValue validates a nullable float.
type OptionalFloatValue struct{}

// OptionalFloat returns a nullable float validator.
func OptionalFloat() *OptionalFloatValue { return &OptionalFloatValue{} }

func (v *OptionalFloatValue) DefaultData() any { return nil }

func (v *OptionalFloatValue) FilterInput(data any, strict bool) (any, error) {
	if data == nil {
		return nil, nil
	}
	f, ok := asFloat(data)
	if !ok {
		if strict {
			return nil, invalidType("expected number or null")
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring non-numeric data")
		return nil, nil
	}
	return f, nil
}

func (v *OptionalFloatValue) FilterOutput(data any) (*float64, error) {
	if data == nil {
		return nil, nil
	}
	f, ok := asFloat(data)
	if !ok {
		return nil, invalidType("expected number or null")
	}
	return &f, nil
}

func (v *OptionalFloatValue) StoreData(f *float64) (any, error) {
	if f == nil {
		return nil, nil
	}
	return *f, nil
}

func (v *OptionalFloatValue) Prune(data any) bool { return data == nil }

func (v *OptionalFloatValue) Equal(o goentity.Value) bool {
	_, ok := o.(*OptionalFloatValue)
	return ok
}

func (v *OptionalFloatValue) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "number", Nullable: true}, nil
}

// OptionalStringValue validates a nullable string.
type OptionalStringValue struct{}

// OptionalString returns a nullable string validator.
func OptionalString() *OptionalStringValue { return &OptionalStringValue{} }

func (v *OptionalStringValue) DefaultData() any { return nil }

func (v *OptionalStringValue) FilterInput(data any, strict bool) (any, error) {
	if data == nil {
		return nil, nil
	}
	s, ok := data.(string)
	if !ok {
		if strict {
			return nil, invalidType("expected string or null")
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring non-string data")
		return nil, nil
	}
	return s, nil
}

func (v *OptionalStringValue) FilterOutput(data any) (*string, error) {
	if data == nil {
		return nil, nil
	}
	s, ok := data.(string)
	if !ok {
		return nil, invalidType("expected string or null")
	}
	return &s, nil
}

func (v *OptionalStringValue) StoreData(s *string) (any, error) {
	if s == nil {
		return nil, nil
	}
	return *s, nil
}

func (v *OptionalStringValue) Prune(data any) bool { return data == nil }

func (v *OptionalStringValue) Equal(o goentity.Value) bool {
	_, ok := o.(*OptionalStringValue)
	return ok
}

func (v *OptionalStringValue) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Nullable: true}, nil
}
