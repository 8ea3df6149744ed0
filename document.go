package goentity

// The physical document is a tree of map[string]any and []any holding only
// primitives (nil, bool, int64, float64, string). No descriptor objects are
// ever stored; they are metadata layered over the tree.

// Container provides access to the document slice backing a bound read or
// write. Entity and BoundCompound implement it.
type Container interface {
	Data() map[string]any
}

// DeepCopy clones a document subtree. Compound-field assignment is defined as
// a deep clone of the source slice (isolation-on-write), never reference
// sharing.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, sub := range t {
			out[k] = DeepCopy(sub)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, sub := range t {
			out[i] = DeepCopy(sub)
		}
		return out
	default:
		// primitives are immutable
		return v
	}
}
