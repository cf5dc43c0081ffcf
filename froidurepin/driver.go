// Package froidurepin implements the Froidure-Pin algorithm: incremental,
// word-length-by-word-length enumeration of the elements of a finitely
// generated semigroup or monoid, alongside both Cayley tables and a
// confluent set of rewrite rules, without ever re-deriving a product already
// known from a shorter word (§1, §4).
package froidurepin

import (
    "golang.org/x/exp/slices"

    "github.com/EwanGilligan/yatyat/dense2d"
    "github.com/EwanGilligan/yatyat/element"
    "github.com/EwanGilligan/yatyat/internal/ids"
    "github.com/EwanGilligan/yatyat/semigroup"
    "github.com/EwanGilligan/yatyat/word"
)

// Enumerate runs the Froidure-Pin algorithm on sg and returns the complete
// [Result]: the shortlex-ordered elements, both Cayley tables, and a
// confluent rewrite rule set (§4).
//
// Generators whose IsIdentity reports true, and duplicate generators (under
// ==), are dropped before enumeration begins. This holds whether or not sg
// declares an identity: without a declared identity, a dropped identity
// generator is enumerated only if some product of the remaining generators
// equals it. The identity, if declared, always occupies element index 0.
func Enumerate[T element.Element[T]](sg semigroup.Semigroup[T], opts ...Option) Result[T] {
    cfg := newConfig(opts)
    e := newEngine(sg, cfg)

    e.phase1()
    if !e.cancelled && len(e.elements) > e.k()+identityCount(e.hasIdentity) {
        e.phase2()
    }

    return e.result()
}

func identityCount(hasIdentity bool) int {
    if hasIdentity {
        return 1
    }
    return 0
}

func newEngine[T element.Element[T]](sg semigroup.Semigroup[T], cfg config) *engine[T] {
    var gens []T
    for _, g := range sg.Generators() {
        if g.IsIdentity() {
            continue
        }
        if slices.Contains(gens, g) {
            continue
        }
        gens = append(gens, g)
    }
    k := len(gens)

    idValue, hasIdentity := sg.Identity()

    e := &engine[T]{
        generators:      gens,
        hasIdentity:     hasIdentity,
        genElementIndex: make([]int, k+1),
        cancel:          cfg.cancel,
        logger:          cfg.logger,
    }
    e.genElementIndex[0] = NoElement
    e.elementIndex = ids.New[T, int](func(v T) []byte { return v.Bytes() })

    n0 := k + identityCount(hasIdentity)
    if cfg.reserve > n0 {
        e.elements = make([]T, 0, cfg.reserve)
    }

    if hasIdentity {
        e.elements = append(e.elements, idValue)
        e.first = append(e.first, NoElement)
        e.last = append(e.last, NoElement)
        e.prefix = append(e.prefix, NoElement)
        e.suffix = append(e.suffix, NoElement)
        e.length = append(e.length, 0)
        e.elementIndex.Set(idValue, 0)
        e.genElementIndex[0] = 0
    }

    for i, g := range gens {
        genIdx := i + 1
        idx := len(e.elements)
        e.elements = append(e.elements, g)
        e.elementIndex.Set(g, idx)
        e.first = append(e.first, genIdx)
        e.last = append(e.last, genIdx)
        if hasIdentity {
            e.prefix = append(e.prefix, 0)
            e.suffix = append(e.suffix, 0)
        } else {
            e.prefix = append(e.prefix, NoElement)
            e.suffix = append(e.suffix, NoElement)
        }
        e.length = append(e.length, 1)
        e.genElementIndex[genIdx] = idx
    }

    e.right = dense2d.Create[int](n0, k+1)
    e.left = dense2d.Create[int](n0, k+1)
    e.reduced = dense2d.Create[bool](n0, k+1)

    for u := 0; u < n0; u++ {
        fillRow(e.right, u, NoElement)
        fillRow(e.left, u, NoElement)
        e.right.Set(u, 0, u)
        e.left.Set(u, 0, u)
    }
    if hasIdentity {
        for g := 1; g <= k; g++ {
            gi := e.genElementIndex[g]
            e.right.Set(0, g, gi)
            e.left.Set(0, g, gi)
        }
    }

    return e
}

// phase1 processes every length-2 word generator[i]*generator[j] (§4.E
// Phase 1): these cannot yet benefit from the structural shortcut, since
// that requires an already-reduced prefix of length >= 1 with its own
// completed Cayley row, which no length-1 element has until this pass
// supplies it.
func (e *engine[T]) phase1() {
    k := e.k()
    for i := 1; i <= k; i++ {
        if e.cancelled {
            return
        }
        ei := e.genElementIndex[i]
        for j := 1; j <= k; j++ {
            ej := e.genElementIndex[j]
            p := e.elements[ei].Multiply(e.elements[ej])

            if v, ok := e.elementIndex.Get(p); ok {
                lhs := word.Of(e.first, e.suffix, e.length, ei).Append(j)
                rhs := word.Of(e.first, e.suffix, e.length, v)
                e.rules = append(e.rules, newRule(lhs, rhs))
                e.right.Set(ei, j, v)
                e.left.Set(ej, i, v)
                continue
            }

            n := e.addElement(p, i, j, ei, ej, 2)
            e.reduced.Set(ei, j, true)
            e.right.Set(ei, j, n)
            e.left.Set(ej, i, n)

            if e.cancel != nil && e.cancel() {
                e.cancelled = true
                return
            }
        }
    }
}

// phase2 processes every word of length >= 3 using the structural shortcut
// (§4.E Phase 2, §3): a right pass fills the right Cayley table row of every
// element discovered at the current word length, possibly discovering new,
// longer elements, followed by a left pass that fills the left Cayley table
// row of those same elements purely from already-completed table lookups.
func (e *engine[T]) phase2() {
    k := e.k()
    n0 := k + identityCount(e.hasIdentity)
    currentLength := 2
    uCursor := n0
    vCursor := n0

    for {
        u := uCursor
        for u < len(e.elements) && e.length[u] == currentLength {
            if e.cancelled {
                return
            }
            u = e.rightStep(u)
        }
        if e.cancelled {
            return
        }

        v := vCursor
        for v < len(e.elements) && e.length[v] == currentLength {
            e.leftStep(v)
            v++
        }

        uCursor = u
        vCursor = v
        if e.logger != nil {
            e.logger.Printf("froidurepin: word length %d complete, %d elements so far", currentLength, len(e.elements))
        }
        if uCursor >= len(e.elements) {
            return
        }
        currentLength++
    }
}

func (e *engine[T]) rightStep(u int) int {
    k := e.k()
    f := e.first[u]
    s := e.suffix[u]

    for g := 1; g <= k; g++ {
        if !e.reduced.Get(s, g) {
            t := e.right.Get(s, g)
            if t == NoElement {
                fail("right cayley table cell (%d, %d) undetermined while extending element %d", s, g, u)
            }

            var result int
            switch {
            case e.length[t] == 0:
                // t is the identity: elements[u]*g = generator(f) * identity = generator(f).
                result = e.genElementIndex[f]
            case e.prefix[t] == NoElement:
                // t is a generator (length 1, no prefix to decompose through):
                // elements[u]*g = generator(f) * elements[t], read directly off
                // t's own left row, which phase1 completes for every generator
                // regardless of whether the semigroup has an identity.
                result = e.left.Get(t, f)
                if result == NoElement {
                    fail("left cayley table cell (%d, %d) undetermined while extending element %d", t, f, u)
                }
            default:
                prefixOfT := e.left.Get(e.prefix[t], f)
                if prefixOfT == NoElement {
                    fail("left cayley table cell (%d, %d) undetermined while extending element %d", e.prefix[t], f, u)
                }
                result = e.right.Get(prefixOfT, e.last[t])
                if result == NoElement {
                    fail("right cayley table cell (%d, %d) undetermined while extending element %d", prefixOfT, e.last[t], u)
                }
            }
            e.right.Set(u, g, result)
            continue
        }

        p := e.elements[u].Multiply(e.generators[g-1])
        if v, ok := e.elementIndex.Get(p); ok {
            lhs := word.Of(e.first, e.suffix, e.length, u).Append(g)
            rhs := word.Of(e.first, e.suffix, e.length, v)
            e.rules = append(e.rules, newRule(lhs, rhs))
            e.right.Set(u, g, v)
            continue
        }

        suf := e.right.Get(s, g)
        if suf == NoElement {
            fail("right cayley table cell (%d, %d) undetermined while extending element %d", s, g, u)
        }
        n := e.addElement(p, f, g, u, suf, e.length[u]+1)
        e.reduced.Set(u, g, true)
        e.right.Set(u, g, n)

        if e.cancel != nil && e.cancel() {
            e.cancelled = true
            return u + 1
        }
    }

    return u + 1
}

func (e *engine[T]) leftStep(u int) {
    k := e.k()
    p := e.prefix[u]
    l := e.last[u]
    for g := 1; g <= k; g++ {
        ap := e.left.Get(p, g)
        if ap == NoElement {
            fail("left cayley table cell (%d, %d) undetermined while extending element %d", p, g, u)
        }
        res := e.right.Get(ap, l)
        if res == NoElement {
            fail("right cayley table cell (%d, %d) undetermined while extending element %d", ap, l, u)
        }
        e.left.Set(u, g, res)
    }
}
