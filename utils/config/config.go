// Runtime configuration: typed fields, yaml file loading and best-effort
// merging of JSON values from the HTTP boundary. Updates are applied
// field by field; there is no dynamic property setting.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Default returns the stock configuration: a 30x30 grid, seed 42 and the
// fixed 12-tick signal cycle.
func Default() RuntimeConfig {
	return RuntimeConfig{
		Width:           30,
		Height:          30,
		Seed:            42,
		SecondsPerTick:  1.0,
		BaseSpawnScale:  1.0,
		SignalMode:      SignalModeFixed,
		LightCycle:      12,
		MinGreenTime:    4,
		MaxGreenTime:    0,
		SwitchThreshold: 0,
		DetectionRange:  5,
	}
}

// Load reads a yaml file over the defaults. Unknown keys are an error.
func Load(path string) (RuntimeConfig, error) {
	c := Default()
	file, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config file load: %w", err)
	}
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		return c, fmt.Errorf("config file parse: %w", err)
	}
	return c, nil
}

// Merge applies recognized keys from a decoded JSON object. Values are
// coerced best-effort (JSON numbers arrive as float64); unrecognized keys
// and uncoercible values are skipped. The caller validates nothing else:
// these fields are tunable thresholds, not structural invariants.
func (c *RuntimeConfig) Merge(values map[string]any) {
	for key, v := range values {
		switch key {
		case "width":
			mergeInt(&c.Width, v)
		case "height":
			mergeInt(&c.Height, v)
		case "seed":
			if n, ok := asFloat(v); ok && n >= 0 {
				c.Seed = uint64(n)
			}
		case "seconds_per_tick":
			mergeFloat(&c.SecondsPerTick, v)
		case "base_spawn_scale":
			mergeFloat(&c.BaseSpawnScale, v)
		case "signal_mode":
			if s, ok := v.(string); ok && (s == SignalModeFixed || s == SignalModeAdaptive) {
				c.SignalMode = s
			}
		case "light_cycle":
			mergeInt(&c.LightCycle, v)
		case "min_green_time":
			mergeInt(&c.MinGreenTime, v)
		case "max_green_time":
			mergeInt(&c.MaxGreenTime, v)
		case "switch_threshold":
			mergeInt(&c.SwitchThreshold, v)
		case "detection_range":
			mergeInt(&c.DetectionRange, v)
		}
	}
}

// AdaptiveFallback returns the maximum-green bound for the adaptive
// controller: MaxGreenTime when set, otherwise the fixed cycle length.
func (c *RuntimeConfig) AdaptiveFallback() int {
	if c.MaxGreenTime > 0 {
		return c.MaxGreenTime
	}
	return c.LightCycle
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func mergeInt(dst *int, v any) {
	if n, ok := asFloat(v); ok {
		*dst = int(n)
	}
}

func mergeFloat(dst *float64, v any) {
	if n, ok := asFloat(v); ok {
		*dst = n
	}
}
