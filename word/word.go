// Package word implements generator-index words: the alphabet over which
// shortlex order (§3 of the design) and rewrite rules are expressed.
//
// The distilled specification this module implements treats the
// alphabet/word utilities backing a slower "naive" enumerator as out of
// scope, since that alternative algorithm is not the interesting part of
// the system. A word value is, however, the engine's own output format for
// rewrite rules, and [Of] is the exact helper the Froidure-Pin driver uses
// internally to build a rewrite rule's two sides — so it lives here rather
// than as private plumbing duplicated inside the driver.
package word

import "github.com/EwanGilligan/yatyat/dense2d"

// Word is a sequence of generator indices (1..k). Its value under a
// semigroup's multiplication is the product of the corresponding generators,
// left to right.
type Word []int

// Append returns a new word with g appended, leaving w unmodified.
func (w Word) Append(g int) Word {
    out := make(Word, len(w)+1)
    copy(out, w)
    out[len(w)] = g
    return out
}

// ShortlexLess reports whether a comes before b in shortlex (military)
// order: shorter words first, ties broken lexicographically by generator
// index.
func ShortlexLess(a, b Word) bool {
    if len(a) != len(b) {
        return len(a) < len(b)
    }
    for i := range a {
        if a[i] != b[i] {
            return a[i] < b[i]
        }
    }
    return false
}

// Of reconstructs the shortlex word of elements[index], given the
// bookkeeping arrays first, suffix, and length described in §3: for any i
// with length[i] >= 1, elements[i] = generator[first[i]] * elements[suffix[i]],
// so the word of i is first[i] followed by the word of suffix[i].
func Of(first []int, suffix []int, length []int, index int) Word {
    n := length[index]
    w := make(Word, n)
    cur := index
    for i := 0; i < n; i++ {
        w[i] = first[cur]
        cur = suffix[cur]
    }
    return w
}

// Reduce computes the element index of the value of a non-empty word w,
// using only the completed right Cayley table and the mapping from
// generator index to its own element index — without invoking element
// multiplication. generatorElementIndex must be sized k+1 and satisfy
// generatorElementIndex[g] == the element index of generator g, for g in
// 1..k (Reduce itself never reads index 0). It panics if w is empty; use
// generatorElementIndex[0], the identity's element index, directly for the
// empty word when the semigroup is a monoid.
//
// This is the operational meaning of "rewrite rules plus Cayley tables are
// sufficient to reduce any word to its element" (P7): it never falls back to
// the slow element multiplication the rest of this package's Non-goals
// exclude.
func Reduce(right *dense2d.Table[int], generatorElementIndex []int, w Word) int {
    if len(w) == 0 {
        panic("word: Reduce called on empty word; use the identity element index directly")
    }
    cur := generatorElementIndex[w[0]]
    for i := 1; i < len(w); i++ {
        cur = right.Get(cur, w[i])
    }
    return cur
}
