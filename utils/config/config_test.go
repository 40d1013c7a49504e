package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urban-sim-lab/gridtraffic/utils/config"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Equal(t, 30, c.Width)
	assert.Equal(t, 30, c.Height)
	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, config.SignalModeFixed, c.SignalMode)
	assert.Equal(t, 12, c.LightCycle)
	assert.Equal(t, 1.0, c.BaseSpawnScale)
}

func TestMergeCoercesJSONNumbers(t *testing.T) {
	c := config.Default()
	// json.Unmarshal into map[string]any yields float64 for every number.
	c.Merge(map[string]any{
		"light_cycle":      float64(20),
		"width":            float64(40),
		"seconds_per_tick": float64(0.5),
		"signal_mode":      "adaptive",
		"seed":             float64(7),
	})
	assert.Equal(t, 20, c.LightCycle)
	assert.Equal(t, 40, c.Width)
	assert.Equal(t, 0.5, c.SecondsPerTick)
	assert.Equal(t, config.SignalModeAdaptive, c.SignalMode)
	assert.Equal(t, uint64(7), c.Seed)
}

func TestMergeSkipsBadValues(t *testing.T) {
	c := config.Default()
	c.Merge(map[string]any{
		"light_cycle": "soon",
		"signal_mode": "psychic",
		"unknown":     float64(1),
	})
	assert.Equal(t, 12, c.LightCycle)
	assert.Equal(t, config.SignalModeFixed, c.SignalMode)
}

func TestAdaptiveFallback(t *testing.T) {
	c := config.Default()
	assert.Equal(t, c.LightCycle, c.AdaptiveFallback())
	c.MaxGreenTime = 30
	assert.Equal(t, 30, c.AdaptiveFallback())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("width: 20\nsignal_mode: adaptive\n"), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, c.Width)
	assert.Equal(t, config.SignalModeAdaptive, c.SignalMode)
	// untouched keys keep their defaults
	assert.Equal(t, 30, c.Height)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("widht: 20\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
