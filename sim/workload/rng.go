package workload

import (
	"hash/fnv"
	"math/rand"
)

// Random streams drawn by the generator.
const (
	// StreamArrivals draws inter-arrival times. Uses the seed directly.
	StreamArrivals = "arrivals"
	// StreamBursts draws CPU burst lengths.
	StreamBursts = "bursts"
)

// PartitionedRNG hands out one deterministic *rand.Rand per named stream, so
// changing how many draws one stream makes never shifts another. Changing
// the burst range keeps the arrival instants of a seed stable.
//
// Derivation: StreamArrivals uses seed directly, every other stream uses
// seed XOR fnv1a64(name).
//
// Not safe for concurrent use.
type PartitionedRNG struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{seed: seed, streams: make(map[string]*rand.Rand)}
}

// ForStream returns the RNG for the named stream. Repeated calls with the
// same name return the same instance. Never returns nil.
func (p *PartitionedRNG) ForStream(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	derived := p.seed
	if name != StreamArrivals {
		derived ^= fnv1a64(name)
	}
	rng := rand.New(rand.NewSource(derived))
	p.streams[name] = rng
	return rng
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
