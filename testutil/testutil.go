package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/colidx/array"
	"github.com/hupe1980/colidx/internal/bitutil"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Int64s returns n values drawn uniformly from [lo, hi].
func (r *RNG) Int64s(n int, lo, hi int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := uint64(hi - lo)
	out := make([]int64, n)
	for i := range out {
		out[i] = lo + int64(r.uint64nLocked(span))
	}
	return out
}

// Uint64s returns n values drawn uniformly from [0, hi].
func (r *RNG) Uint64s(n int, hi uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	for i := range out {
		out[i] = r.uint64nLocked(hi)
	}
	return out
}

// uint64nLocked returns a value in [0, span] (caller must hold lock).
func (r *RNG) uint64nLocked(span uint64) uint64 {
	if span == math.MaxUint64 {
		return r.rand.Uint64()
	}
	return r.rand.Uint64() % (span + 1)
}

// Validity returns a bitmap of n bits where each bit is cleared with
// probability nullProb. It returns nil when nullProb is zero.
func (r *RNG) Validity(n int, nullProb float64) []byte {
	if nullProb <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]byte, bitutil.BytesForBits(n))
	for i := range n {
		if r.rand.Float64() >= nullProb {
			bitutil.SetBit(b, i)
		}
	}
	return b
}

// RandomArray returns an array of the given type with values spread over the
// whole type range and nulls placed with probability nullProb. Null slots
// hold random garbage, as they may in real columns.
func (r *RNG) RandomArray(typ array.Type, n int, nullProb float64) *array.Data {
	d := array.New(typ, n, false)
	d.Validity = r.Validity(n, nullProb)
	d.NullN = array.UnknownNullCount

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range n {
		d.SetUint64(i, r.rand.Uint64())
	}
	return d
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, zipfNorm(n, s), s)
}

// ZipfIndices returns n indices into a dictionary of the given cardinality,
// skewed so that low indices dominate, as they do in dictionary-encoded
// columns.
func (r *RNG) ZipfIndices(n, cardinality int, s float64) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	hns := zipfNorm(cardinality, s)
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(r.zipfLocked(cardinality, hns, s))
	}
	return out
}

// zipfNorm returns the generalized harmonic number H(n, s).
func zipfNorm(n int, s float64) float64 {
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}
	return hns
}

// zipfLocked samples by inverse transform (caller must hold lock).
func (r *RNG) zipfLocked(n int, hns, s float64) int {
	if n <= 1 {
		return 0
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}
