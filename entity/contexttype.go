package entity

import (
	"github.com/urban-sim-lab/gridtraffic/clock"
	"github.com/urban-sim-lab/gridtraffic/utils/config"
	"github.com/urban-sim-lab/gridtraffic/utils/randengine"
)

// ITaskContext bundles everything a manager may read from the world.
// The task context owns all of it; managers never hold state for each
// other, they go through these accessors.
type ITaskContext interface {
	Clock() *clock.Clock
	Rand() *randengine.Engine
	RuntimeConfig() *config.RuntimeConfig
	Zones() IZoneCatalog
	Lanes() ILaneManager
	Junctions() IJunctionManager
	Cars() ICarManager
}
