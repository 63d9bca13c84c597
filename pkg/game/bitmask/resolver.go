package bitmask

import (
	"math/rand"
	"time"
)

// Resolver picks one sprite among a catalog's equally valid candidates.
// Variant choice is independent per call, so identical masks elsewhere on the
// map may resolve to different variants.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver drawing variants from src
func NewResolver(src rand.Source) *Resolver {
	return &Resolver{rng: rand.New(src)}
}

// NewSeededResolver creates a resolver with reproducible variant choice
func NewSeededResolver(seed int64) *Resolver {
	return NewResolver(rand.NewSource(seed))
}

// DefaultResolver creates a resolver seeded from the clock
func DefaultResolver() *Resolver {
	return NewSeededResolver(time.Now().UnixNano())
}

// Resolve returns a sprite for m from cat, or InvalidIndex if the catalog
// has nothing to offer
func (r *Resolver) Resolve(cat *Catalog, m Mask) int {
	if cat == nil {
		return InvalidIndex
	}
	candidates := cat.Candidates(m)
	switch len(candidates) {
	case 0:
		return InvalidIndex
	case 1:
		return candidates[0]
	}
	return candidates[r.rng.Intn(len(candidates))]
}
