// Package transformation implements the transformations of {0,...,n-1} as a
// concrete [github.com/EwanGilligan/yatyat/element.Element] type, and a
// [Semigroup] wrapper that validates generators share a common
// degree before the enumeration engine ever sees them.
//
// A transformation is stored as the image vector of each point under it,
// packed into a comparable string key (2 bytes per point) rather than a
// slice, since slices cannot satisfy Go's comparable constraint and the
// enumeration engine relies on value equality to detect when a product is
// already a known element. This is the "small fixed-size representation"
// choice the element contract recommends.
//
// Two transformations compose left-to-right: (f*g)(x) = g(f(x)), matching
// the word convention in the enumeration engine, where multiplying on the
// right by a generator extends a word by appending that generator's letter.
package transformation

import (
    "encoding/binary"
    "fmt"
    "strings"
)

// Transformation is a function on {0,...,degree-1}.
type Transformation struct {
    degree int
    key    string // degree uint16s, big-endian, one per point's image
}

// New creates a Transformation of the given degree from its image vector.
// It panics if the vector's length does not match degree, any image is out
// of range, or degree exceeds 65535; callers that cannot guarantee this
// should validate first.
func New(degree int, images []int) Transformation {
    if len(images) != degree {
        panic(fmt.Sprintf("transformation: image vector has length %d, want degree %d", len(images), degree))
    }
    if degree > 0xffff {
        panic(fmt.Sprintf("transformation: degree %d exceeds supported maximum", degree))
    }
    buf := make([]byte, degree*2)
    for i, x := range images {
        if x < 0 || x >= degree {
            panic(fmt.Sprintf("transformation: image %d out of range for degree %d", x, degree))
        }
        binary.BigEndian.PutUint16(buf[i*2:], uint16(x))
    }
    return Transformation{degree: degree, key: string(buf)}
}

// Identity returns the identity transformation on the given degree.
func Identity(degree int) Transformation {
    images := make([]int, degree)
    for i := range images {
        images[i] = i
    }
    return New(degree, images)
}

// Degree returns the number of points this transformation acts on.
func (f Transformation) Degree() int {
    return f.degree
}

// Images returns the image vector of f.
func (f Transformation) Images() []int {
    images := make([]int, f.degree)
    for i := range images {
        images[i] = f.imageAt(i)
    }
    return images
}

func (f Transformation) imageAt(x int) int {
    return int(binary.BigEndian.Uint16([]byte(f.key[x*2 : x*2+2])))
}

// Apply returns the image of x under f. It panics if x is out of range.
func (f Transformation) Apply(x int) int {
    return f.imageAt(x)
}

// Multiply returns f*other, i.e. the transformation x -> other(f(x)). It
// panics if the two transformations have different degrees.
func (f Transformation) Multiply(other Transformation) Transformation {
    if f.degree != other.degree {
        panic(fmt.Sprintf("transformation: mismatched degree %d != %d", f.degree, other.degree))
    }
    buf := make([]byte, f.degree*2)
    for x := 0; x < f.degree; x++ {
        binary.BigEndian.PutUint16(buf[x*2:], uint16(other.imageAt(f.imageAt(x))))
    }
    return Transformation{degree: f.degree, key: string(buf)}
}

// IsIdentity reports whether f fixes every point.
func (f Transformation) IsIdentity() bool {
    for i := 0; i < f.degree; i++ {
        if f.imageAt(i) != i {
            return false
        }
    }
    return true
}

// Bytes returns a canonical encoding of f suitable for hashing: the degree
// followed by the packed image vector.
func (f Transformation) Bytes() []byte {
    buf := make([]byte, 8+len(f.key))
    binary.BigEndian.PutUint64(buf, uint64(f.degree))
    copy(buf[8:], f.key)
    return buf
}

// String renders f as "(i0 i1 ... i{n-1})", the image vector notation used
// by the boundary-scenario literals this package's tests are drawn from.
func (f Transformation) String() string {
    var b strings.Builder
    b.WriteByte('(')
    for i := 0; i < f.degree; i++ {
        if i > 0 {
            b.WriteByte(' ')
        }
        fmt.Fprintf(&b, "%d", f.imageAt(i))
    }
    b.WriteByte(')')
    return b.String()
}
