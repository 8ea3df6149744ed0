package goentity

import (
	"strconv"

	"github.com/reoring/goentity/i18n"
	js "github.com/reoring/goentity/jsonschema"
)

// Value is the untyped validator contract consumed by field descriptors. One
// implementation exists per primitive kind (see the values subpackage).
type Value interface {
	// DefaultData returns the primitive stored when no input was provided.
	DefaultData() any
	// FilterInput validates/coerces a raw document value. strict=true raises
	// Issues on malformed input; strict=false records a diagnostic and
	// returns a sanitized value (never an error).
	FilterInput(data any, strict bool) (any, error)
	// Prune reports whether the stored value may be omitted entirely because
	// it equals the default.
	Prune(data any) bool
	// Equal reports structural equality with another validator, used by the
	// compound-assignment gate.
	Equal(other Value) bool
	// JSONSchema projects the validator into a JSON Schema fragment.
	JSONSchema() (*js.Schema, error)
}

// TypedValue narrows Value with conversions between the stored primitive and
// the logical Go type T.
type TypedValue[T any] interface {
	Value
	// FilterOutput converts a stored primitive back to the logical type.
	FilterOutput(data any) (T, error)
	// StoreData converts a logical value to the primitive stored in the
	// document, validating it. Descriptor writes go through this.
	StoreData(v T) (any, error)
}

// KeyType encodes dict-field keys to document strings and back. The document
// stays a string-keyed JSON tree regardless of the logical key type; an input
// key conforms iff it decodes as K.
type KeyType[K comparable] interface {
	EncodeKey(k K) string
	DecodeKey(s string) (K, error)
	// EqualKeys reports structural equality with another key codec.
	EqualKeys(other any) bool
	// KeySchema projects the key constraint (jsonschema propertyNames).
	KeySchema() (*js.Schema, error)
}

// StringKeys returns the key codec for string-keyed dict fields.
func StringKeys() KeyType[string] { return stringKeys{} }

type stringKeys struct{}

func (stringKeys) EncodeKey(k string) string          { return k }
func (stringKeys) DecodeKey(s string) (string, error) { return s, nil }
func (stringKeys) EqualKeys(other any) bool           { _, ok := other.(stringKeys); return ok }
func (stringKeys) KeySchema() (*js.Schema, error)     { return &js.Schema{Type: "string"}, nil }

// IntKeys returns the key codec for integer-keyed dict fields. Keys are
// stored in their canonical decimal form.
func IntKeys() KeyType[int64] { return intKeys{} }

type intKeys struct{}

func (intKeys) EncodeKey(k int64) string { return strconv.FormatInt(k, 10) }

func (intKeys) DecodeKey(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, Issues{Issue{Path: "/", Code: CodeInvalidKey, Message: i18n.T(CodeInvalidKey, nil), Hint: "expected integer key", Cause: err}}
	}
	// Reject non-canonical spellings ("03", "+3") so encode/decode round-trips.
	if strconv.FormatInt(n, 10) != s {
		return 0, Issues{Issue{Path: "/", Code: CodeInvalidKey, Message: i18n.T(CodeInvalidKey, nil), Hint: "non-canonical integer key"}}
	}
	return n, nil
}

func (intKeys) EqualKeys(other any) bool { _, ok := other.(intKeys); return ok }

func (intKeys) KeySchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Pattern: "^(0|-?[1-9][0-9]*)$"}, nil
}
