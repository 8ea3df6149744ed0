package goentity

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"    // wrong container or primitive kind
	CodeInvalidKey     = "invalid_key"     // dict entry key does not conform to the declared key type
	CodeUnknownKey     = "unknown_key"     // input key not present in the schema
	CodeMissingData    = "missing_data"    // lookup into a slice that does not carry the value
	CodeValueMismatch  = "value_mismatch"  // assignment from a structurally incompatible value
	CodeUnboundValue   = "unbound_value"   // assignment from a value with no live document
	CodeInvalidEnum    = "invalid_enum"    // value outside the declared enum members
	CodeInvalidFormat  = "invalid_format"  // malformed formatted scalar (e.g. RFC3339 time)
	CodeDuplicateField = "duplicate_field" // schema declares the same document key twice
	CodeParseError     = "parse_error"     // underlying decode failure (JSON/YAML)
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /wheels/2).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected kinds, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// RebaseIssues re-anchors child issues under base ("/key" or "/3"). Errors
// that are not Issues are wrapped as a single parse_error at base.
func RebaseIssues(base string, err error) Issues {
	if err == nil {
		return nil
	}
	child, ok := AsIssues(err)
	if !ok {
		return Issues{Issue{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	var out Issues
	for _, it := range child {
		p := it.Path
		if p == "" || p == "/" {
			p = base
		} else if p[0] == '/' {
			p = base + p
		} else {
			p = base + "/" + p
		}
		out = AppendIssues(out, Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause})
	}
	return out
}
