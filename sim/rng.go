// rng.go provides deterministic, isolated RNG instances per subsystem
// so that, for a fixed seed, each named subsystem draws from its own
// stream without perturbing the others' sequences.

package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible simulation run. Two
// runs with the same SimulationKey and identical Config MUST produce
// bit-for-bit identical results (spec §5 determinism contract).
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey { return SimulationKey(seed) }

const (
	// SubsystemGenerator is the RNG subsystem for patient generation
	// (elective durations, emergency inter-arrival, operation types).
	// Uses the master seed directly for backward compatibility with a
	// bare math/rand.Rand constructed from the same seed.
	SubsystemGenerator = "generator"

	// SubsystemComparator names a stream isolated from the generator's.
	// ComparePolicies (§4.5) does not draw from it: each per-policy
	// re-run uses its own engine's SubsystemGenerator stream.
	SubsystemComparator = "comparator"
)

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem. Not thread-safe; must be used from a single goroutine,
// matching the kernel's single-threaded cooperative model (spec §5).
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, subsystems: make(map[string]*rand.Rand)}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same name always returns the same cached *rand.Rand.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	var seed int64
	if name == SubsystemGenerator {
		seed = int64(p.key)
	} else {
		seed = int64(p.key) ^ fnv1a64(name)
	}
	rng := rand.New(rand.NewSource(seed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey this PartitionedRNG was built from.
func (p *PartitionedRNG) Key() SimulationKey { return p.key }

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
