// Package optional provides a generic single-value container that either
// holds a value or is empty, so callers can compose chains of possibly
// missing values without manual nil checks.
package optional

import "errors"

var (
	// ErrNilValue is returned by Of when handed a nil pointer.
	ErrNilValue = errors.New("optional: value must not be nil")

	// ErrNoValue is returned by Get on an empty Optional.
	ErrNoValue = errors.New("optional: no value present")
)

// Optional wraps a value of type T that may be absent.
// The zero value is an empty Optional.
type Optional[T any] struct {
	value   T
	present bool
}

// Empty returns an Optional holding no value.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Of wraps the value v points to. It returns ErrNilValue when v is nil,
// surfacing the mistaken presence assumption at construction time instead
// of on a later access.
func Of[T any](v *T) (Optional[T], error) {
	if v == nil {
		return Optional[T]{}, ErrNilValue
	}

	return Optional[T]{value: *v, present: true}, nil
}

// OfNullable wraps the value v points to, or returns an empty Optional
// when v is nil. It never fails.
func OfNullable[T any](v *T) Optional[T] {
	if v == nil {
		return Optional[T]{}
	}

	return Optional[T]{value: *v, present: true}
}

// IsPresent reports whether the Optional holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the wrapped value, or ErrNoValue when the Optional is empty.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNoValue
	}

	return o.value, nil
}

// IfPresent invokes fn with the wrapped value if one is present.
// On an empty Optional it does nothing.
func (o Optional[T]) IfPresent(fn func(T)) {
	if o.present {
		fn(o.value)
	}
}

// OrElse returns the wrapped value if present, otherwise def.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}

	return def
}

// OrElseThrow returns the wrapped value if present. On an empty Optional it
// invokes supplier to build the error to return; supplier is never called
// on the present path.
func (o Optional[T]) OrElseThrow(supplier func() error) (T, error) {
	if o.present {
		return o.value, nil
	}

	var zero T
	return zero, supplier()
}

// Filter returns the Optional unchanged if it holds a value matching pred,
// otherwise an empty Optional. pred is not evaluated on an empty Optional.
func (o Optional[T]) Filter(pred func(T) bool) Optional[T] {
	if !o.present {
		return o
	}

	if pred(o.value) {
		return o
	}

	return Optional[T]{}
}

// Map applies fn to the wrapped value if present, producing an Optional of
// the result type.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present {
		return Optional[U]{}
	}

	return Optional[U]{value: fn(o.value), present: true}
}

// FlatMap applies fn to the wrapped value if present and returns the
// Optional fn produces. It is the building block for safe-navigation
// chains over nested optional links.
func FlatMap[T, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if !o.present {
		return Optional[U]{}
	}

	return fn(o.value)
}
