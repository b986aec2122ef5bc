package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theatresim/theatresim/sim"
)

func TestRunCmd_FlagsAreRegistered(t *testing.T) {
	for _, name := range []string{
		"config", "id", "name", "duration", "policy", "rooms", "teams",
		"waiting-capacity", "recovery-capacity", "emergency-rate",
		"elective-count", "cleaning-minutes", "recovery-minutes", "seed",
	} {
		assert.NotNil(t, runCmd.Flags().Lookup(name), "flag %q must be registered", name)
	}
}

func TestApplyRunFlags_OnlyOverridesChangedFlags(t *testing.T) {
	require.NoError(t, runCmd.Flags().Set("rooms", "7"))
	defer runCmd.Flags().Set("rooms", "0")

	cfg := sim.DefaultConfig()
	applyRunFlags(runCmd, &cfg)

	assert.Equal(t, 7, cfg.Rooms)
	// teams was never set on this invocation, so it keeps the default.
	assert.Equal(t, sim.DefaultConfig().Teams, cfg.Teams)
}
