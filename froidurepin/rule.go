package froidurepin

import (
    "github.com/EwanGilligan/yatyat/tuple"
    "github.com/EwanGilligan/yatyat/word"
)

// Rule is a rewrite rule (lhs, rhs): two words over generator indices with
// equal value under the element multiplication, where lhs is shortlex-
// greater than rhs (§3, §8 P6). It reuses the teacher's generic pair type
// rather than a bespoke two-field struct, the way a (lhs, rhs) word pair
// naturally is one.
type Rule = tuple.T2[word.Word, word.Word]

func newRule(lhs, rhs word.Word) Rule {
    return tuple.ToT2(lhs, rhs)
}
