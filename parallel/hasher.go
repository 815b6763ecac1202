package parallel

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"sync"
)

// Hasher digests n rows which may arrive in any order from many goroutines.
// Each row is hashed on arrival, the final sum is taken over the row hashes
// in index order, so it only depends on the row contents.
type Hasher struct {
	mut  sync.Mutex
	rows [][32]byte
	put  []bool
}

// NewHasher creates a Hasher for n rows
func NewHasher(n int) *Hasher {
	return &Hasher{
		rows: make([][32]byte, n),
		put:  make([]bool, n),
	}
}

// MustPutFloats hashes row n, panics when row n was already put
func (h *Hasher) MustPutFloats(n int, values []float64) {
	var buf = make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	h.MustPutHash(n, sha256.Sum256(buf))
}

// MustPutHash stores an already computed hash of row n
func (h *Hasher) MustPutHash(n int, value [32]byte) {
	h.mut.Lock()
	defer h.mut.Unlock()
	if h.put[n] {
		panic("duplicate row write")
	}
	h.put[n] = true
	h.rows[n] = value
}

// Sum returns the digest of all rows, rows never put count as zero hashes
func (h *Hasher) Sum() (ret [32]byte) {
	h.mut.Lock()
	defer h.mut.Unlock()
	sha := sha256.New()
	var length [8]byte
	binary.LittleEndian.PutUint64(length[:], uint64(len(h.rows)))
	sha.Write(length[:])
	for i := range h.rows {
		sha.Write(h.rows[i][:])
	}
	copy(ret[:], sha.Sum(nil))
	return
}
