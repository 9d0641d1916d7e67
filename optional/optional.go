// SPDX-License-Identifier: MIT

// Package optional provides Value, an explicit present/absent wrapper.
//
// It replaces in-band "no data" markers (-9999, INF, -1) so that every value in
// the data domain stays usable and absence is always checked, never guessed.
package optional

import "fmt"

// Value holds either a T (present) or nothing (absent).
// The zero Value is absent.
type Value[T any] struct {
	v  T
	ok bool
}

// Some returns a present Value wrapping v.
func Some[T any](v T) Value[T] { return Value[T]{v: v, ok: true} }

// None returns an absent Value.
func None[T any]() Value[T] { return Value[T]{} }

// Of wraps the common (v, ok) return pair.
func Of[T any](v T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(v)
}

// Get returns the wrapped value and whether it is present.
// For an absent Value the zero T is returned.
func (o Value[T]) Get() (T, bool) { return o.v, o.ok }

// IsSome reports whether a value is present.
func (o Value[T]) IsSome() bool { return o.ok }

// IsNone reports whether the value is absent.
func (o Value[T]) IsNone() bool { return !o.ok }

// OrElse returns the wrapped value, or def when absent.
func (o Value[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}

	return o.v
}

// String renders the value with %v, or "-" when absent.
func (o Value[T]) String() string {
	if !o.ok {
		return "-"
	}

	return fmt.Sprintf("%v", o.v)
}
