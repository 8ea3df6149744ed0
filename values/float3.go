package values

import (
	goentity "github.com/reoring/goentity"
	js "github.com/reoring/goentity/jsonschema"
)

// Float3Value validates a three-component float vector (positions, colors)
// stored as a three-element list.
type Float3Value struct{ def [3]float64 }

// Float3 returns a vector validator with the given default.
func Float3(def [3]float64) *Float3Value { return &Float3Value{def: def} }

func (v *Float3Value) DefaultData() any {
	return []any{v.def[0], v.def[1], v.def[2]}
}

func (v *Float3Value) FilterInput(data any, strict bool) (any, error) {
	vec, ok := v.decode(data)
	if !ok {
		if strict {
			return nil, invalidType("expected 3-element number list")
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring invalid float3 data")
		vec = v.def
	}
	return []any{vec[0], vec[1], vec[2]}, nil
}

func (v *Float3Value) FilterOutput(data any) ([3]float64, error) {
	vec, ok := v.decode(data)
	if !ok {
		return [3]float64{}, invalidType("expected 3-element number list")
	}
	return vec, nil
}

func (v *Float3Value) StoreData(vec [3]float64) (any, error) {
	return []any{vec[0], vec[1], vec[2]}, nil
}

func (v *Float3Value) Prune(data any) bool {
	vec, ok := v.decode(data)
	return ok && vec == v.def
}

func (v *Float3Value) Equal(o goentity.Value) bool {
	ov, ok := o.(*Float3Value)
	return ok && ov.def == v.def
}

func (v *Float3Value) JSONSchema() (*js.Schema, error) {
	three := 3
	return &js.Schema{
		Type:     "array",
		Items:    &js.Schema{Type: "number"},
		MinItems: &three,
		MaxItems: &three,
		Default:  v.DefaultData(),
	}, nil
}

func (v *Float3Value) decode(data any) ([3]float64, bool) {
	l, ok := data.([]any)
	if !ok || len(l) != 3 {
		return [3]float64{}, false
	}
	var out [3]float64
	for i, e := range l {
		f, ok := asFloat(e)
		if !ok {
			return [3]float64{}, false
		}
		out[i] = f
	}
	return out, true
}
