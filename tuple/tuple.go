// Package tuple simplifies packing and unpacking function arguments and
// results into generic tuple types.
package tuple

type T2[A any, B any] struct{
    A A
    B B
}

func ToT2[A any, B any](a A, b B) T2[A, B] {
    return T2[A, B]{A: a, B: b}
}

func (t *T2[A, B]) Unpack() (A, B)  {
    return t.A, t.B
}
