// Package values provides the scalar TypedValue implementations consumed by
// goentity field descriptors: plain primitives (Bool/Int/Float/String),
// nullable variants (Optional*), enumerations, RFC3339 timestamps, and
// three-component float vectors.
//
// Every validator follows the same two-mode policy as the field layer:
// strict input filtering raises Issues, non-strict filtering records a
// diagnostic and substitutes the default.
package values
