package unitclass

import (
	"sync"

	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
)

// unitEntry memoizes a FundamentalUnit outcome, including the
// out-of-range "none" result.
type unitEntry struct {
	unit quadint.QuadInt
	ok   bool
}

// Cache lazily memoizes fundamental units and class numbers per ring,
// keyed by radicand (the variant is implied by its sign). Errors are not
// cached: a failing ring fails identically on every call.
type Cache struct {
	mu        sync.Mutex
	units     map[int64]unitEntry
	classNums map[int64]int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		units:     make(map[int64]unitEntry),
		classNums: make(map[int64]int),
	}
}

// Unit returns the memoized FundamentalUnit of r, computing it on first
// use. The ok result is memoized too, so an out-of-range search runs once.
func (c *Cache) Unit(r *ring.Ring) (quadint.QuadInt, bool, error) {
	if r == nil {
		return quadint.QuadInt{}, false, quadint.ErrNilRing
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, hit := c.units[r.Radicand()]; hit {
		return e.unit, e.ok, nil
	}
	unit, ok, err := FundamentalUnit(r)
	if err != nil {
		return quadint.QuadInt{}, false, err
	}
	c.units[r.Radicand()] = unitEntry{unit: unit, ok: ok}
	return unit, ok, nil
}

// ClassNumber returns the memoized class number of r, computing it on
// first use.
func (c *Cache) ClassNumber(r *ring.Ring) (int, error) {
	if r == nil {
		return 0, quadint.ErrNilRing
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if h, hit := c.classNums[r.Radicand()]; hit {
		return h, nil
	}
	h, err := ClassNumber(r)
	if err != nil {
		return 0, err
	}
	c.classNums[r.Radicand()] = h
	return h, nil
}
