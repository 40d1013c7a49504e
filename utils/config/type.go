package config

// RuntimeConfig is the full set of tunables for one world. One value is
// shared by every component; threshold-like fields are read on every tick,
// so a merge from the HTTP boundary applies to the running world
// immediately. Width, Height and Seed describe geometry and the random
// stream and only take effect when the world is rebuilt.
type RuntimeConfig struct {
	Width           int     `yaml:"width" json:"width"`                       // grid width in cells
	Height          int     `yaml:"height" json:"height"`                     // grid height in cells
	Seed            uint64  `yaml:"seed" json:"seed"`                         // random engine seed
	SecondsPerTick  float64 `yaml:"seconds_per_tick" json:"seconds_per_tick"` // real seconds represented by one tick
	BaseSpawnScale  float64 `yaml:"base_spawn_scale" json:"base_spawn_scale"` // global multiplier on arrival probability
	SignalMode      string  `yaml:"signal_mode" json:"signal_mode"`           // "fixed" or "adaptive"
	LightCycle      int     `yaml:"light_cycle" json:"light_cycle"`           // fixed-cycle phase length in ticks
	MinGreenTime    int     `yaml:"min_green_time" json:"min_green_time"`     // adaptive: ticks before a gap-out may fire
	MaxGreenTime    int     `yaml:"max_green_time" json:"max_green_time"`     // adaptive: fallback bound; <=0 means use light_cycle
	SwitchThreshold int     `yaml:"switch_threshold" json:"switch_threshold"` // adaptive: queue length treated as "no demand"
	DetectionRange  int     `yaml:"detection_range" json:"detection_range"`   // adaptive: approach lookback window in cells
}

// Signal mode values accepted in SignalMode.
const (
	SignalModeFixed    = "fixed"
	SignalModeAdaptive = "adaptive"
)
