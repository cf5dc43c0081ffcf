package transformation

import (
    "fmt"

    "github.com/EwanGilligan/yatyat/semigroup"
)

// Semigroup is a semigroup.Semigroup[Transformation] whose generators are
// known to share a common degree. Use [NewSemigroup] to construct one; the zero
// value is not useful.
type Semigroup struct {
    degree     int
    generators []Transformation
    identity   Transformation
    hasID      bool
}

// NewSemigroup validates that every generator has the same degree and
// returns a Semigroup wrapping them, with an optional identity. It returns
// an error if the generators' degrees disagree, or if an identity is
// supplied with a mismatched degree — this is the upstream rejection of
// ill-shaped generators that [github.com/EwanGilligan/yatyat/element.Element]'s
// contract delegates to the concrete semigroup type.
func NewSemigroup(generators []Transformation, identity ...Transformation) (Semigroup, error) {
    degree := 0
    if len(generators) > 0 {
        degree = generators[0].Degree()
    } else if len(identity) > 0 {
        degree = identity[0].Degree()
    }

    for _, g := range generators {
        if g.Degree() != degree {
            return Semigroup{}, fmt.Errorf("transformation: mismatched degree %d != %d among generators", degree, g.Degree())
        }
    }

    s := Semigroup{degree: degree, generators: generators}
    if len(identity) > 0 {
        if identity[0].Degree() != degree {
            return Semigroup{}, fmt.Errorf("transformation: identity degree %d != generator degree %d", identity[0].Degree(), degree)
        }
        s.identity = identity[0]
        s.hasID = true
    }
    return s, nil
}

// Degree returns the common degree of this semigroup's transformations.
func (s Semigroup) Degree() int {
    return s.degree
}

// Generators returns the generator list as supplied.
func (s Semigroup) Generators() []Transformation {
    return s.generators
}

// Identity returns the declared identity, if any.
func (s Semigroup) Identity() (Transformation, bool) {
    return s.identity, s.hasID
}

var _ semigroup.Semigroup[Transformation] = Semigroup{}
