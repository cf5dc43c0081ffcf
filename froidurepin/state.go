package froidurepin

import (
    "log"

    "github.com/EwanGilligan/yatyat/dense2d"
    "github.com/EwanGilligan/yatyat/element"
    "github.com/EwanGilligan/yatyat/internal/ids"
)

// NoElement is the sentinel stored in prefix, suffix, and any Cayley table
// cell the driver has not yet determined. It is never a valid element index.
const NoElement = -1

// engine is the enumeration's mutable working state (§4.D). A generator
// index is a value in 1..k identifying one of the k deduplicated,
// non-identity generators, in first-occurrence order; index 0 is reserved to
// mean "the identity" wherever a generator index slot can hold it (the
// Cayley tables' column 0, and genElementIndex[0]).
type engine[T element.Element[T]] struct {
    generators  []T
    hasIdentity bool

    elements     []T
    elementIndex *ids.Map[T, int]

    // first, last, prefix, suffix, length are indexed by element index and
    // hold the bookkeeping described in §3: for i with length[i] >= 1,
    // elements[i] = generators[first[i]-1] * elements[suffix[i]]
    //             = elements[prefix[i]] * generators[last[i]-1].
    first, last, prefix, suffix, length []int

    // genElementIndex[0] is the identity's element index, or NoElement if
    // the semigroup has none. genElementIndex[g] for g in 1..k is the
    // element index of generators[g-1].
    genElementIndex []int

    right, left *dense2d.Table[int]
    reduced     *dense2d.Table[bool]

    rules []Rule

    cancel    CancelFunc
    cancelled bool
    logger    *log.Logger
}

func (e *engine[T]) k() int {
    return len(e.generators)
}

// fillRow overwrites row r of t with v across all columns, aliasing the
// table's backing storage directly rather than calling Set per cell.
func fillRow(t *dense2d.Table[int], r int, v int) {
    row := t.RowSlice(r)
    for i := range row {
        row[i] = v
    }
}

// addElement records a newly discovered element and keeps elements,
// elementIndex, the bookkeeping arrays, right, left, and reduced in lockstep.
// It returns the new element's index.
func (e *engine[T]) addElement(value T, first, last, prefix, suffix, length int) int {
    n := len(e.elements)
    e.elements = append(e.elements, value)
    e.elementIndex.Set(value, n)
    e.first = append(e.first, first)
    e.last = append(e.last, last)
    e.prefix = append(e.prefix, prefix)
    e.suffix = append(e.suffix, suffix)
    e.length = append(e.length, length)

    if r := e.reduced.AddRow(); r != n {
        fail("reduced table row %d out of sync with element index %d", r, n)
    }

    rr := e.right.AddRow()
    lr := e.left.AddRow()
    if rr != n || lr != n {
        fail("cayley table row %d/%d out of sync with element index %d", rr, lr, n)
    }
    fillRow(e.right, n, NoElement)
    fillRow(e.left, n, NoElement)
    e.right.Set(n, 0, n)
    e.left.Set(n, 0, n)

    return n
}
