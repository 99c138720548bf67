// Package patch models partial-update fields with three states: absent,
// explicit null, and a concrete value. Plain pointers collapse the first two
// and lose the distinction across a JSON boundary.
package patch

import "encoding/json"

type Field[T any] struct {
	set   bool
	null  bool
	value T
}

// Set returns a field carrying a concrete value.
func Set[T any](v T) Field[T] {
	return Field[T]{set: true, value: v}
}

// Null returns a field that explicitly clears its target.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the field appeared in the input at all.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the field was an explicit null.
func (f Field[T]) IsNull() bool {
	return f.set && f.null
}

// Value returns the concrete value. ok is false when the field is absent
// or null.
func (f Field[T]) Value() (T, bool) {
	if !f.set || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// UnmarshalJSON is only invoked for keys present in the payload, so a field
// that is never decoded stays in the absent state.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(b, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
