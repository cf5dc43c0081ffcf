// Package semigroup defines the read-only Semigroup handle that the
// enumeration engine in
// [github.com/EwanGilligan/yatyat/froidurepin] consumes, plus a generic,
// non-validating constructor.
//
// A concrete semigroup (such as
// [github.com/EwanGilligan/yatyat/semigroup/transformation]) is responsible
// for rejecting mismatched generators at construction time, so the engine
// never observes an undefined multiplication; this package's [New]
// constructor performs the generic half of that job (nothing to check, by
// definition, without domain-specific shape information) and concrete
// semigroups layer their own checks on top, as
// [github.com/EwanGilligan/yatyat/semigroup/transformation.NewSemigroup] does
// for matching degree.
package semigroup

import "github.com/EwanGilligan/yatyat/element"

// Semigroup is a read-only handle on a finite generating set plus an
// optional two-sided identity.
type Semigroup[T element.Element[T]] interface {
    // Generators returns the generator list as supplied, before
    // deduplication or identity filtering.
    Generators() []T

    // Identity returns the two-sided identity, if the caller asserts this
    // is a monoid.
    Identity() (T, bool)
}

type plain[T element.Element[T]] struct {
    generators []T
    identity   T
    hasID      bool
}

func (s plain[T]) Generators() []T {
    return s.generators
}

func (s plain[T]) Identity() (T, bool) {
    return s.identity, s.hasID
}

// New returns a Semigroup over the given generators, with an optional
// identity element. The engine tolerates duplicates and an identity
// appearing among generators; New performs no further validation here,
// since nothing about a bare T tells us whether two generators have a
// "mismatched shape" — that check belongs to the concrete element type's
// own constructor (see package doc).
func New[T element.Element[T]](generators []T, identity ...T) Semigroup[T] {
    s := plain[T]{generators: generators}
    if len(identity) > 0 {
        s.identity = identity[0]
        s.hasID = true
    }
    return s
}
