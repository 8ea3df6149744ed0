package values

import (
	"encoding/json"
	"math"
)

// asInt normalizes the numeric representations a document may carry after
// JSON decoding (float64, json.Number) or YAML decoding (int) into int64.
// Floats only convert when integral.
func asInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case uint64:
		if t > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	case float64:
		n := int64(t)
		if float64(n) == t {
			return n, true
		}
		return 0, false
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// asFloat normalizes numeric representations into float64. Integers convert
// losslessly within float64 precision, matching JSON semantics.
func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
