package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedRNG_SameSeedSameSubsystemIsDeterministic(t *testing.T) {
	a := NewPartitionedRNG(NewSimulationKey(42))
	b := NewPartitionedRNG(NewSimulationKey(42))

	ra := a.ForSubsystem(SubsystemGenerator)
	rb := b.ForSubsystem(SubsystemGenerator)

	for i := 0; i < 10; i++ {
		assert.Equal(t, ra.Int63(), rb.Int63())
	}
}

func TestPartitionedRNG_DifferentSubsystemsDiverge(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(42))
	gen := p.ForSubsystem(SubsystemGenerator)
	cmp := p.ForSubsystem(SubsystemComparator)
	assert.NotEqual(t, gen.Int63(), cmp.Int63())
}

func TestPartitionedRNG_ForSubsystem_CachesInstance(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(1))
	first := p.ForSubsystem(SubsystemGenerator)
	second := p.ForSubsystem(SubsystemGenerator)
	assert.Same(t, first, second)
}

func TestPartitionedRNG_Key(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(7))
	assert.Equal(t, SimulationKey(7), p.Key())
}
