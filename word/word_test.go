package word

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/EwanGilligan/yatyat/dense2d"
)

func TestShortlexLess_ordersByLengthThenLex(t *testing.T) {
    assert.True(t, ShortlexLess(Word{1}, Word{1, 1}))
    assert.False(t, ShortlexLess(Word{1, 1}, Word{1}))
    assert.True(t, ShortlexLess(Word{1, 1}, Word{1, 2}))
    assert.False(t, ShortlexLess(Word{1, 2}, Word{1, 1}))
    assert.False(t, ShortlexLess(Word{1}, Word{1}))
}

func TestAppend_doesNotMutateReceiver(t *testing.T) {
    base := Word{1, 2}
    extended := base.Append(3)
    assert.Equal(t, Word{1, 2}, base)
    assert.Equal(t, Word{1, 2, 3}, extended)
}

func TestOf_reconstructsWordFromBookkeeping(t *testing.T) {
    // identity=0, gens 1,2 at indices 1,2, element 3 = gen1*gen2 (word "1 2")
    first := []int{0, 1, 2, 1}
    suffix := []int{-1, -1, -1, 2}
    length := []int{0, 1, 1, 2}

    assert.Equal(t, Word{}, Of(first, suffix, length, 0))
    assert.Equal(t, Word{1}, Of(first, suffix, length, 1))
    assert.Equal(t, Word{2}, Of(first, suffix, length, 2))
    assert.Equal(t, Word{1, 2}, Of(first, suffix, length, 3))
}

func TestReduce_usesOnlyTheRightCayleyTable(t *testing.T) {
    // 3 elements: identity(0), gen1(1), gen2(2). gen1*gen2 = identity (made up).
    right := dense2d.Create[int](3, 3)
    right.Set(0, 0, 0)
    right.Set(0, 1, 1)
    right.Set(0, 2, 2)
    right.Set(1, 0, 1)
    right.Set(1, 1, 0)
    right.Set(1, 2, 0)
    right.Set(2, 0, 2)

    generatorElementIndex := []int{-1, 1, 2}

    assert.Equal(t, 1, Reduce(right, generatorElementIndex, Word{1}))
    assert.Equal(t, 0, Reduce(right, generatorElementIndex, Word{1, 2}))
}

func TestReduce_panicsOnEmptyWord(t *testing.T) {
    right := dense2d.Create[int](1, 1)
    assert.Panics(t, func() { Reduce(right, []int{-1}, Word{}) })
}
