package values

import (
	"time"

	goentity "github.com/reoring/goentity"
	"github.com/reoring/goentity/i18n"
	js "github.com/reoring/goentity/jsonschema"
)

// TimeValue validates a nullable timestamp stored as an RFC3339 string.
// Stored form is canonical: UTC, RFC3339Nano (Go trims trailing zeros).
// The zero time maps to null and prunes.
type TimeValue struct{}

// Time returns an RFC3339 timestamp validator.
func Time() *TimeValue { return &TimeValue{} }

func (v *TimeValue) DefaultData() any { return nil }

func (v *TimeValue) FilterInput(data any, strict bool) (any, error) {
	switch t := data.(type) {
	case nil:
		return nil, nil
	case string:
		parsed, err := parseRFC3339(t)
		if err != nil {
			if strict {
				return nil, goentity.Issues{goentity.Issue{Path: "/", Code: goentity.CodeInvalidFormat, Message: i18n.T(goentity.CodeInvalidFormat, nil), Hint: "expected RFC3339 time", Cause: err}}
			}
			goentity.DiagLogger().Error().Str("data", t).Msg("ignoring malformed RFC3339 time")
			return nil, nil
		}
		return formatRFC3339Canonical(parsed), nil
	case time.Time:
		// convenience for hand-built documents
		return v.StoreData(t)
	default:
		if strict {
			return nil, invalidType("expected RFC3339 string or null")
		}
		goentity.DiagLogger().Error().Interface("data", data).Msg("ignoring non-time data")
		return nil, nil
	}
}

func (v *TimeValue) FilterOutput(data any) (time.Time, error) {
	if data == nil {
		return time.Time{}, nil
	}
	s, ok := data.(string)
	if !ok {
		return time.Time{}, invalidType("expected RFC3339 string or null")
	}
	t, err := parseRFC3339(s)
	if err != nil {
		return time.Time{}, goentity.Issues{goentity.Issue{Path: "/", Code: goentity.CodeInvalidFormat, Message: i18n.T(goentity.CodeInvalidFormat, nil), Hint: "expected RFC3339 time", Cause: err}}
	}
	return t, nil
}

func (v *TimeValue) StoreData(t time.Time) (any, error) {
	if t.IsZero() {
		return nil, nil
	}
	return formatRFC3339Canonical(t), nil
}

func (v *TimeValue) Prune(data any) bool { return data == nil }

func (v *TimeValue) Equal(o goentity.Value) bool {
	_, ok := o.(*TimeValue)
	return ok
}

func (v *TimeValue) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "date-time", Nullable: true}, nil
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
