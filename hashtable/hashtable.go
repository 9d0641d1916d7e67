// SPDX-License-Identifier: MIT

package hashtable

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"

	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/dsalab/list"
)

var (
	// ErrBadBucketCount is returned by New for a bucket count ≤ 0.
	ErrBadBucketCount = errors.New("hashtable: bucket count must be positive")

	// ErrBadLoadFactor is returned by New when WithMaxLoadFactor got f ≤ 0.
	ErrBadLoadFactor = errors.New("hashtable: max load factor must be positive")
)

// Hasher maps a key's bit pattern to a hash value; the table reduces it
// modulo the bucket count.
type Hasher func(key uint64) uint64

// Murmur3 hashes the 8-byte little-endian encoding of key with MurmurHash3.
func Murmur3(key uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)

	return murmur3.Sum64(buf[:])
}

type config struct {
	maxLoad float64 // 0 = never resize
	hasher  Hasher  // nil = modulo
	err     error
}

// Option configures a Table at construction.
type Option func(*config)

// WithMaxLoadFactor enables growth: after an insert that makes
// Len()/Buckets() exceed f, the bucket count doubles.
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) {
		if f <= 0 {
			c.err = fmt.Errorf("%w: %g", ErrBadLoadFactor, f)
			return
		}
		c.maxLoad = f
	}
}

// WithHasher replaces modulo indexing with h(k) mod Buckets().
func WithHasher(h Hasher) Option {
	return func(c *config) { c.hasher = h }
}

type entry[K constraints.Integer, V any] struct {
	key K
	val V
}

// Table is a separate-chaining hash map.
type Table[K constraints.Integer, V any] struct {
	buckets []list.List[entry[K, V]]
	n       int
	cfg     config
}

// New creates a table with the given number of buckets.
func New[K constraints.Integer, V any](buckets int, opts ...Option) (*Table[K, V], error) {
	if buckets <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBucketCount, buckets)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Table[K, V]{buckets: make([]list.List[entry[K, V]], buckets), cfg: cfg}, nil
}

// Len returns the number of stored entries, duplicates included.
func (t *Table[K, V]) Len() int { return t.n }

// Buckets returns the current bucket count.
func (t *Table[K, V]) Buckets() int { return len(t.buckets) }

// LoadFactor returns Len()/Buckets().
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.n) / float64(len(t.buckets))
}

// index returns the bucket for k among b buckets.
func (t *Table[K, V]) index(k K, b int) int {
	if t.cfg.hasher != nil {
		return int(t.cfg.hasher(uint64(k)) % uint64(b))
	}
	if k < 0 {
		r := int64(k) % int64(b)
		if r < 0 {
			r += int64(b)
		}
		return int(r)
	}

	return int(uint64(k) % uint64(b))
}

// Insert appends (k, v) to k's chain. Existing entries with key k are kept.
// Complexity: O(1) amortized.
func (t *Table[K, V]) Insert(k K, v V) {
	t.buckets[t.index(k, len(t.buckets))].PushBack(entry[K, V]{key: k, val: v})
	t.n++

	if t.cfg.maxLoad > 0 && t.LoadFactor() > t.cfg.maxLoad {
		t.grow()
	}
}

// grow doubles the bucket count, keeping relative chain order for equal keys.
func (t *Table[K, V]) grow() {
	next := make([]list.List[entry[K, V]], 2*len(t.buckets))
	for i := range t.buckets {
		for e := range t.buckets[i].All() {
			next[t.index(e.key, len(next))].PushBack(e)
		}
	}
	t.buckets = next
}

func matchKey[K constraints.Integer, V any](k K) func(entry[K, V]) bool {
	return func(e entry[K, V]) bool { return e.key == k }
}

// Search returns the earliest inserted value for k.
// Complexity: O(chain length).
func (t *Table[K, V]) Search(k K) (V, bool) {
	e, ok := t.buckets[t.index(k, len(t.buckets))].Find(matchKey[K, V](k))

	return e.val, ok
}

// SearchAll returns every value stored under k in insertion order.
func (t *Table[K, V]) SearchAll(k K) []V {
	var out []V
	for e := range t.buckets[t.index(k, len(t.buckets))].All() {
		if e.key == k {
			out = append(out, e.val)
		}
	}

	return out
}

// Delete removes the earliest inserted entry for k and reports whether one
// existed.
func (t *Table[K, V]) Delete(k K) bool {
	if !t.buckets[t.index(k, len(t.buckets))].Remove(matchKey[K, V](k)) {
		return false
	}
	t.n--

	return true
}

// All yields every entry, bucket by bucket, each chain in insertion order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.buckets {
			for e := range t.buckets[i].All() {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// ChainLengths returns the length of every bucket's chain, in bucket order.
func (t *Table[K, V]) ChainLengths() []int {
	out := make([]int, len(t.buckets))
	for i := range t.buckets {
		out[i] = t.buckets[i].Len()
	}

	return out
}
