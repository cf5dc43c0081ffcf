package froidurepin

import (
    "github.com/EwanGilligan/yatyat/dense2d"
    "github.com/EwanGilligan/yatyat/element"
    "github.com/EwanGilligan/yatyat/internal/ids"
)

// Result is the immutable outcome of an [Enumerate] call (§4.F). All
// accessors are read-only views over data the driver no longer mutates.
type Result[T element.Element[T]] struct {
    complete bool

    generators      []T
    hasIdentity     bool
    genElementIndex []int

    elements     []T
    elementIndex *ids.Map[T, int]

    right, left *dense2d.Table[int]
    rules       []Rule
}

func (e *engine[T]) result() Result[T] {
    return Result[T]{
        complete:        !e.cancelled,
        generators:      e.generators,
        hasIdentity:     e.hasIdentity,
        genElementIndex: e.genElementIndex,
        elements:        e.elements,
        elementIndex:    e.elementIndex,
        right:           e.right,
        left:            e.left,
        rules:           e.rules,
    }
}

// Complete reports whether enumeration ran to completion. It is only false
// when a [CancelFunc] installed via [WithCancellation] returned true, in
// which case every other accessor still holds, reflecting only the elements
// discovered before cancellation.
func (r Result[T]) Complete() bool {
    return r.complete
}

// Generators returns the deduplicated, non-identity generating set actually
// enumerated, in first-occurrence order. Its length is the k used throughout
// this package's documentation.
func (r Result[T]) Generators() []T {
    return r.generators
}

// HasIdentity reports whether the semigroup declared a two-sided identity.
func (r Result[T]) HasIdentity() bool {
    return r.hasIdentity
}

// Elements returns the enumerated elements in shortlex order of their
// shortest generating word. Index 0 is the identity when HasIdentity is
// true.
func (r Result[T]) Elements() []T {
    return r.elements
}

// Len returns the number of enumerated elements.
func (r Result[T]) Len() int {
    return len(r.elements)
}

// IndexOf returns the element index of v, and whether it was found.
func (r Result[T]) IndexOf(v T) (int, bool) {
    return r.elementIndex.Get(v)
}

// GeneratorElementIndex returns the element index of each generator, sized
// k+1: index 0 is the identity's element index (or [NoElement] if none),
// and index g in 1..k is the element index of Generators()[g-1]. This is
// the array [github.com/EwanGilligan/yatyat/word.Reduce] needs to seed a
// word reduction.
func (r Result[T]) GeneratorElementIndex() []int {
    return r.genElementIndex
}

// RightCayley returns the right Cayley table: RightCayley().Get(u, g) is the
// element index of elements[u] times generator g (1..k), or elements[u]
// itself at column 0.
func (r Result[T]) RightCayley() *dense2d.Table[int] {
    return r.right
}

// LeftCayley returns the left Cayley table: LeftCayley().Get(u, g) is the
// element index of generator g (1..k) times elements[u], or elements[u]
// itself at column 0.
func (r Result[T]) LeftCayley() *dense2d.Table[int] {
    return r.left
}

// Rules returns the confluent rewrite rule set discovered during
// enumeration: each rule's left-hand word and right-hand word denote the
// same element, with the left-hand word shortlex-greater.
func (r Result[T]) Rules() []Rule {
    return r.rules
}
