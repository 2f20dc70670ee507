package poolphysics

import (
	"sync/atomic"
)

var hashCounter = uint64(0)

type HashValue uint32

// Ordered pair of colliders: A ran the test against B.
type HashPair struct {
	A *Collider
	B *Collider
}

func newPair(A *Collider, B *Collider) HashPair {
	return HashPair{A, B}
}

func (pair HashPair) involves(c *Collider) bool {
	return pair.A == c || pair.B == c
}

type DefaultHash struct {
	hash HashValue
}

// Hash returns a process-wide identity, assigned on first use.
func (h *DefaultHash) Hash() HashValue {
	if h.hash == 0 {
		h.hash = HashValue(atomic.AddUint64(&hashCounter, 1))
		if h.hash == 0 {
			panic("Hash overflowed")
		}
	}
	return h.hash
}
