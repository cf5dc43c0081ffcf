// Package ids implements the element-index map used by
// [github.com/EwanGilligan/yatyat/froidurepin]: a hash map from element
// value to its discovery index, built on a fixed-seed SipHash-1-3 instead of
// Go's randomized built-in map hash.
//
// The enumeration's own element order comes from the append-only elements
// slice, not from this map, so correctness never depends on hash values.
// What the spec's "deterministic hashing" design note buys us is a map whose
// internal structure (bucket layout, probe order) is the same on every run
// for the same inputs, which keeps profiling and debugging across runs
// comparable and rules out Go's per-process map-seed randomization as a
// source of nondeterminism in anything built on top of this map later.
package ids

import (
    "github.com/dchest/siphash"
)

// fixed SipHash key, chosen arbitrarily and never changed: determinism, not
// secrecy, is the point (mirrors the fixed keys SnellerInc-sneller uses for
// its own siphash calls).
const (
    key0 = uint64(0x5d1ec810fc3a9b21)
    key1 = uint64(0xfebed702a17c06e4)
)

const initialBuckets = 16

type entry[K comparable, V any] struct {
    key   K
    value V
}

// Map is a hash map from key to value, keyed by a caller-supplied byte
// encoding of K. The zero value is not usable; construct with [New].
type Map[K comparable, V any] struct {
    byteKey func(K) []byte
    buckets [][]entry[K, V]
    count   int
}

// New returns an empty Map. byteKey must return a byte encoding of a key
// such that equal keys (under ==) always produce equal encodings.
func New[K comparable, V any](byteKey func(K) []byte) *Map[K, V] {
    return &Map[K, V]{
        byteKey: byteKey,
        buckets: make([][]entry[K, V], initialBuckets),
    }
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
    return m.count
}

func (m *Map[K, V]) bucketIndex(key K, nBuckets int) int {
    h := siphash.Hash(key0, key1, m.byteKey(key))
    return int(h % uint64(nBuckets))
}

// Get returns the value stored for key, and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
    idx := m.bucketIndex(key, len(m.buckets))
    for _, e := range m.buckets[idx] {
        if e.key == key {
            return e.value, true
        }
    }
    var zero V
    return zero, false
}

// Set stores value under key, overwriting any existing entry.
func (m *Map[K, V]) Set(key K, value V) {
    idx := m.bucketIndex(key, len(m.buckets))
    for i, e := range m.buckets[idx] {
        if e.key == key {
            m.buckets[idx][i].value = value
            return
        }
    }
    m.buckets[idx] = append(m.buckets[idx], entry[K, V]{key: key, value: value})
    m.count++

    if m.count > len(m.buckets)*3 {
        m.grow()
    }
}

func (m *Map[K, V]) grow() {
    newBuckets := make([][]entry[K, V], len(m.buckets)*2)
    for _, bucket := range m.buckets {
        for _, e := range bucket {
            idx := m.bucketIndex(e.key, len(newBuckets))
            newBuckets[idx] = append(newBuckets[idx], e)
        }
    }
    m.buckets = newBuckets
}
