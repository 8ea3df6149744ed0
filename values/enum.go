package values

import (
	goentity "github.com/reoring/goentity"
	"github.com/reoring/goentity/i18n"
	js "github.com/reoring/goentity/jsonschema"
)

func invalidEnum() goentity.Issues {
	return goentity.Issues{goentity.Issue{Path: "/", Code: goentity.CodeInvalidEnum, Message: i18n.T(goentity.CodeInvalidEnum, nil)}}
}

// StringEnumValue validates a string restricted to a fixed member set.
type StringEnumValue struct {
	def     string
	members []string
}

// StringEnum returns a string enum validator. The default must be a member;
// a non-member default is programmer error and panics.
func StringEnum(def string, members ...string) *StringEnumValue {
	v := &StringEnumValue{def: def, members: members}
	if !v.member(def) {
		panic("values.StringEnum: default is not a member")
	}
	return v
}

func (v *StringEnumValue) member(s string) bool {
	for _, m := range v.members {
		if m == s {
			return true
		}
	}
	return false
}

func (v *StringEnumValue) DefaultData() any { return v.def }

func (v *StringEnumValue) FilterInput(data any, strict bool) (any, error) {
	s, ok := data.(string)
	if !ok || !v.member(s) {
		if strict {
			if !ok {
				return nil, invalidType("expected string")
			}
			return nil, invalidEnum()
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring invalid enum data")
		return v.def, nil
	}
	return s, nil
}

func (v *StringEnumValue) FilterOutput(data any) (string, error) {
	s, ok := data.(string)
	if !ok {
		return "", invalidType("expected string")
	}
	return s, nil
}

func (v *StringEnumValue) StoreData(s string) (any, error) {
	if !v.member(s) {
		return nil, invalidEnum()
	}
	return s, nil
}

func (v *StringEnumValue) Prune(data any) bool { return data == any(v.def) }

func (v *StringEnumValue) Equal(o goentity.Value) bool {
	ov, ok := o.(*StringEnumValue)
	if !ok || ov.def != v.def || len(ov.members) != len(v.members) {
		return false
	}
	for i, m := range v.members {
		if ov.members[i] != m {
			return false
		}
	}
	return true
}

func (v *StringEnumValue) JSONSchema() (*js.Schema, error) {
	enum := make([]any, len(v.members))
	for i, m := range v.members {
		enum[i] = m
	}
	return &js.Schema{Type: "string", Enum: enum, Default: v.def}, nil
}

// IntEnumValue validates an integer restricted to a fixed member set.
type IntEnumValue struct {
	def     int64
	members []int64
}

// IntEnum returns an integer enum validator. The default must be a member;
// a non-member default is programmer error and panics.
func IntEnum(def int64, members ...int64) *IntEnumValue {
	v := &IntEnumValue{def: def, members: members}
	if !v.member(def) {
		panic("values.IntEnum: default is not a member")
	}
	return v
}

func (v *IntEnumValue) member(n int64) bool {
	for _, m := range v.members {
		if m == n {
			return true
		}
	}
	return false
}

func (v *IntEnumValue) DefaultData() any { return v.def }

func (v *IntEnumValue) FilterInput(data any, strict bool) (any, error) {
	n, ok := asInt(data)
	if !ok || !v.member(n) {
		if strict {
			if !ok {
				return nil, invalidType("expected integer")
			}
			return nil, invalidEnum()
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring invalid enum data")
		return v.def, nil
	}
	return n, nil
}

func (v *IntEnumValue) FilterOutput(data any) (int64, error) {
	n, ok := asInt(data)
	if !ok {
		return 0, invalidType("expected integer")
	}
	return n, nil
}

func (v *IntEnumValue) StoreData(n int64) (any, error) {
	if !v.member(n) {
		return nil, invalidEnum()
	}
	return n, nil
}

func (v *IntEnumValue) Prune(data any) bool {
	n, ok := asInt(data)
	return ok && n == v.def
}

func (v *IntEnumValue) Equal(o goentity.Value) bool {
	ov, ok := o.(*IntEnumValue)
	if !ok || ov.def != v.def || len(ov.members) != len(v.members) {
		return false
	}
	for i, m := range v.members {
		if ov.members[i] != m {
			return false
		}
	}
	return true
}

func (v *IntEnumValue) JSONSchema() (*js.Schema, error) {
	enum := make([]any, len(v.members))
	for i, m := range v.members {
		enum[i] = m
	}
	return &js.Schema{Type: "integer", Enum: enum, Default: v.def}, nil
}
