package froidurepin_test

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/EwanGilligan/yatyat/froidurepin"
    "github.com/EwanGilligan/yatyat/internal/xtest"
    "github.com/EwanGilligan/yatyat/semigroup/transformation"
    "github.com/EwanGilligan/yatyat/word"
)

// Scenario 1: no generators, no identity, enumerates to nothing.
func TestEnumerate_emptyGenerators(t *testing.T) {
    sg, err := transformation.NewSemigroup(nil)
    require.NoError(t, err)

    res := froidurepin.Enumerate[transformation.Transformation](sg)

    assert.Equal(t, 0, res.Len())
    assert.True(t, res.Complete())
}

// Scenario 2: identity only, no other generators, enumerates to exactly it.
func TestEnumerate_identityOnly(t *testing.T) {
    id := transformation.Identity(3)
    sg, err := transformation.NewSemigroup(nil, id)
    require.NoError(t, err)

    res := froidurepin.Enumerate[transformation.Transformation](sg)

    require.Equal(t, 1, res.Len())
    assert.Equal(t, id, res.Elements()[0])
    idx, ok := res.IndexOf(id)
    require.True(t, ok)
    assert.Equal(t, 0, idx)
}

// Scenario 3: the symmetric group S5, generated by a transposition and a
// long cycle, has exactly 120 elements.
func TestEnumerate_symmetricGroup5(t *testing.T) {
    transposition := transformation.New(5, []int{1, 0, 2, 3, 4})
    cycle := transformation.New(5, []int{1, 2, 3, 4, 0})

    sg, err := transformation.NewSemigroup([]transformation.Transformation{transposition, cycle})
    require.NoError(t, err)

    res := froidurepin.Enumerate[transformation.Transformation](sg)

    assert.Equal(t, 120, res.Len())
}

// Scenario 4: the 7-element example from Froidure & Pin's paper, using the
// paper's literal degree-6 transformations and declared identity.
func TestEnumerate_froidurePinSevenElementExample(t *testing.T) {
    a := transformation.New(6, []int{1, 1, 3, 3, 4, 5})
    b := transformation.New(6, []int{4, 2, 3, 3, 5, 5})
    id := transformation.Identity(6)

    sg, err := transformation.NewSemigroup([]transformation.Transformation{a, b}, id)
    require.NoError(t, err)

    res := froidurepin.Enumerate[transformation.Transformation](sg)

    require.Equal(t, 7, res.Len())

    gei := res.GeneratorElementIndex()
    assertRightProduct := func(lhs word.Word, want int) {
        t.Helper()
        got := word.Reduce(res.RightCayley(), gei, lhs)
        assert.Equal(t, want, got, "word %v", lhs)
    }

    idxA, ok := res.IndexOf(a)
    require.True(t, ok)
    idxB, ok := res.IndexOf(b)
    require.True(t, ok)

    assertRightProduct(word.Word{1}, idxA)
    assertRightProduct(word.Word{2}, idxB)

    // Every length-3 extension of the 7 elements must collapse back onto
    // one of them, via either the right Cayley table directly or a rule.
    for u := 0; u < res.Len(); u++ {
        for _, g := range []int{1, 2} {
            v := res.RightCayley().Get(u, g)
            assert.True(t, v >= 0 && v < res.Len(), "right(%d,%d)=%d should name one of the 7 elements", u, g, v)
        }
    }

    for _, rule := range res.Rules() {
        lhs, rhs := rule.Unpack()
        assert.True(t, word.ShortlexLess(rhs, lhs) || equalWords(rhs, lhs),
            "rule rhs %v should not be shortlex-greater than lhs %v", rhs, lhs)
        gotLHS := word.Reduce(res.RightCayley(), gei, lhs)
        gotRHS := word.Reduce(res.RightCayley(), gei, rhs)
        assert.Equal(t, gotLHS, gotRHS, "rule %v = %v should reduce to the same element", lhs, rhs)
    }
}

// Regression: in a semigroup with no declared identity, a collision target
// discovered via the structural shortcut can itself be a bare generator
// (length 1, no prefix to decompose through), not only the identity. Here
// a is idempotent (a*a = a), so extending the length-2 element b*a by a
// hits exactly that case. This must resolve via a's own left row rather
// than decomposing through a's (absent) prefix.
func TestEnumerate_noIdentityGeneratorCollision(t *testing.T) {
    a := transformation.New(3, []int{1, 1, 2})
    b := transformation.New(3, []int{1, 2, 0})

    sg, err := transformation.NewSemigroup([]transformation.Transformation{a, b})
    require.NoError(t, err)
    require.Equal(t, a, a.Multiply(a), "a must be idempotent for this regression to exercise the collision")

    var res froidurepin.Result[transformation.Transformation]
    assert.NotPanics(t, func() {
        res = froidurepin.Enumerate[transformation.Transformation](sg)
    })

    gei := res.GeneratorElementIndex()
    // b*a*a should reduce to the same element as b*a, since a*a = a.
    ba := word.Reduce(res.RightCayley(), gei, word.Word{2, 1})
    baa := word.Reduce(res.RightCayley(), gei, word.Word{2, 1, 1})
    assert.Equal(t, ba, baa, "b*a*a should equal b*a since a is idempotent")
}

// Scenario 5: the full transformation monoid on 5 points has 5^5 = 3125
// elements.
func TestEnumerate_fullTransformationMonoid5(t *testing.T) {
    const n = 5
    gens := allTransformationGenerators(n)
    id := transformation.Identity(n)

    sg, err := transformation.NewSemigroup(gens, id)
    require.NoError(t, err)

    res := froidurepin.Enumerate[transformation.Transformation](sg)

    assert.Equal(t, 3125, res.Len())
}

// Scenario 6: the full transformation monoid on 7 points has 7^7 = 823543
// elements. This is large enough that a regression turning the structural
// shortcut into a full re-derivation could make the test hang.
func TestEnumerate_fullTransformationMonoid7(t *testing.T) {
    if testing.Short() {
        t.Skip("skipping large boundary scenario in -short mode")
    }

    const n = 7
    gens := allTransformationGenerators(n)
    id := transformation.Identity(n)

    sg, err := transformation.NewSemigroup(gens, id)
    require.NoError(t, err)

    var res froidurepin.Result[transformation.Transformation]
    xtest.Completes(t, 60*time.Second, func() {
        res = froidurepin.Enumerate[transformation.Transformation](sg)
    })

    assert.Equal(t, 823543, res.Len())
}

// P4/P7: every element's shortest generating word, found by breadth-first
// search over the right Cayley table, reduces back to that exact element
// (the reduction round trip), and the elements are in strict shortlex order
// of those words.
func TestEnumerate_decompositionAndOrder(t *testing.T) {
    a := transformation.New(3, []int{1, 2, 0})
    b := transformation.New(3, []int{1, 0, 2})
    sg, err := transformation.NewSemigroup([]transformation.Transformation{a, b}, transformation.Identity(3))
    require.NoError(t, err)

    res := froidurepin.Enumerate[transformation.Transformation](sg)
    gei := res.GeneratorElementIndex()

    var prev word.Word
    for idx := range res.Elements() {
        if idx == 0 && res.HasIdentity() {
            continue
        }
        w := wordOfElement(res, idx)
        got := word.Reduce(res.RightCayley(), gei, w)
        assert.Equal(t, idx, got, "element %d's own word should reduce to itself", idx)
        if prev != nil {
            assert.True(t, word.ShortlexLess(prev, w), "element %d's word %v should follow %v in shortlex order", idx, w, prev)
        }
        prev = w
    }
}

// P5: column 0 of both Cayley tables is always the identity column,
// regardless of whether the semigroup declares an identity.
func TestEnumerate_columnZeroIsIdentity(t *testing.T) {
    a := transformation.New(4, []int{1, 2, 3, 0})
    sg, err := transformation.NewSemigroup([]transformation.Transformation{a})
    require.NoError(t, err)

    res := froidurepin.Enumerate[transformation.Transformation](sg)
    require.False(t, res.HasIdentity())

    for u := 0; u < res.Len(); u++ {
        assert.Equal(t, u, res.RightCayley().Get(u, 0))
        assert.Equal(t, u, res.LeftCayley().Get(u, 0))
    }
}

// P3: every Cayley table cell reachable from an enumerated element, applied
// to any generator, names another enumerated element (closure).
func TestEnumerate_closure(t *testing.T) {
    a := transformation.New(3, []int{1, 2, 0})
    b := transformation.New(3, []int{0, 0, 1})
    sg, err := transformation.NewSemigroup([]transformation.Transformation{a, b})
    require.NoError(t, err)

    res := froidurepin.Enumerate[transformation.Transformation](sg)
    k := len(res.Generators())

    for u := 0; u < res.Len(); u++ {
        for g := 1; g <= k; g++ {
            v := res.RightCayley().Get(u, g)
            assert.True(t, v >= 0 && v < res.Len(), "right(%d,%d)=%d out of range", u, g, v)
            w := res.LeftCayley().Get(u, g)
            assert.True(t, w >= 0 && w < res.Len(), "left(%d,%d)=%d out of range", u, g, w)
        }
    }
}

func equalWords(a, b word.Word) bool {
    if len(a) != len(b) {
        return false
    }
    for i := range a {
        if a[i] != b[i] {
            return false
        }
    }
    return true
}

// wordOfElement finds a generating word for res.Elements()[idx] by breadth
// first search over the right Cayley table, independent of the engine's own
// first/suffix bookkeeping, so it can cross-check that bookkeeping.
func wordOfElement(res froidurepin.Result[transformation.Transformation], idx int) word.Word {
    type step struct {
        idx int
        w   word.Word
    }
    visited := make(map[int]bool)
    queue := []step{{idx: 0, w: nil}}
    visited[0] = true
    k := len(res.Generators())
    for len(queue) > 0 {
        cur := queue[0]
        queue = queue[1:]
        if cur.idx == idx {
            return cur.w
        }
        for g := 1; g <= k; g++ {
            next := res.RightCayley().Get(cur.idx, g)
            if !visited[next] {
                visited[next] = true
                nw := make(word.Word, len(cur.w)+1)
                copy(nw, cur.w)
                nw[len(cur.w)] = g
                queue = append(queue, step{idx: next, w: nw})
            }
        }
    }
    panic("unreachable: every element is reachable from the identity/start by closure")
}

func allTransformationGenerators(n int) []transformation.Transformation {
    // A transposition and an n-cycle generate the symmetric group.
    transposition := make([]int, n)
    cycle := make([]int, n)
    for x := 0; x < n; x++ {
        transposition[x] = x
        cycle[x] = (x + 1) % n
    }
    transposition[0], transposition[1] = 1, 0
    gens := []transformation.Transformation{
        transformation.New(n, transposition),
        transformation.New(n, cycle),
    }
    // Also include a non-injective generator so the generated monoid covers
    // all 5^5 / 7^7 transformations, not just the symmetric group.
    collapse := make([]int, n)
    for x := range collapse {
        collapse[x] = x
    }
    collapse[0] = 1
    gens = append(gens, transformation.New(n, collapse))
    return gens
}

