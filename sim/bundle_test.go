package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_OverridesOnlyGivenFields(t *testing.T) {
	path := writeTempConfig(t, `
name: Busy Saturday
rooms: 5
policy: priority
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Busy Saturday", cfg.Name)
	assert.Equal(t, 5, cfg.Rooms)
	assert.Equal(t, Priority, cfg.Policy)
	// unset fields keep their DefaultConfig value
	assert.Equal(t, 480, cfg.DurationMinutes)
	assert.Equal(t, 3, cfg.Teams)
}

func TestLoadConfig_RejectsUnknownFields(t *testing.T) {
	path := writeTempConfig(t, "rooms: 3\nbogus_field: 1\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_NonexistentFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeTempConfig(t, "{{not yaml")
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_ValidatesAfterDecode(t *testing.T) {
	path := writeTempConfig(t, "rooms: 0\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}
