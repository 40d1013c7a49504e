// The task context owns the world: clock, random stream, managers and
// configuration. All simulation state lives here, passed explicitly;
// there are no process-wide singletons in the core.
package task

import (
	"github.com/sirupsen/logrus"
	"github.com/urban-sim-lab/gridtraffic/clock"
	"github.com/urban-sim-lab/gridtraffic/entity"
	"github.com/urban-sim-lab/gridtraffic/entity/car"
	"github.com/urban-sim-lab/gridtraffic/entity/junction"
	"github.com/urban-sim-lab/gridtraffic/entity/lane"
	"github.com/urban-sim-lab/gridtraffic/entity/zone"
	"github.com/urban-sim-lab/gridtraffic/metrics"
	"github.com/urban-sim-lab/gridtraffic/utils/config"
	"github.com/urban-sim-lab/gridtraffic/utils/randengine"
)

var log = logrus.WithField("module", "task")

// Context is one world instance. It implements entity.ITaskContext so
// every manager reads the rest of the world through it.
type Context struct {
	cfg   *config.RuntimeConfig
	clock *clock.Clock
	rand  *randengine.Engine

	zones     *zone.Catalog
	lanes     *lane.Manager
	junctions *junction.Manager
	cars      *car.Manager
	spawner   *car.Spawner
	metrics   *metrics.Collector
}

// NewContext builds a world from the configuration: geometry first
// (zones, lanes, then clusters on top of the crossings), then the mobile
// side. The configuration value is shared, so threshold updates from the
// boundary reach the running world without a rebuild.
func NewContext(cfg *config.RuntimeConfig) *Context {
	ctx := &Context{
		cfg:   cfg,
		clock: clock.New(),
		rand:  randengine.New(cfg.Seed),
		zones: zone.NewCatalog(zone.Defaults()),
	}
	ctx.lanes = lane.NewManager(ctx)
	ctx.junctions = junction.NewManager(ctx)
	ctx.cars = car.NewManager(ctx)
	ctx.spawner = car.NewSpawner(ctx, ctx.cars)
	ctx.metrics = metrics.NewCollector(ctx)
	log.Infof("world built: %dx%d grid, seed %d, mode %s",
		cfg.Width, cfg.Height, cfg.Seed, cfg.SignalMode)
	return ctx
}

// entity.ITaskContext

func (c *Context) Clock() *clock.Clock                  { return c.clock }
func (c *Context) Rand() *randengine.Engine             { return c.rand }
func (c *Context) RuntimeConfig() *config.RuntimeConfig { return c.cfg }
func (c *Context) Zones() entity.IZoneCatalog           { return c.zones }
func (c *Context) Lanes() entity.ILaneManager           { return c.lanes }
func (c *Context) Junctions() entity.IJunctionManager   { return c.junctions }
func (c *Context) Cars() entity.ICarManager             { return c.cars }

// Concrete accessors for the boundary layers.

func (c *Context) ZoneCatalog() *zone.Catalog         { return c.zones }
func (c *Context) LaneManager() *lane.Manager         { return c.lanes }
func (c *Context) JunctionManager() *junction.Manager { return c.junctions }
func (c *Context) CarManager() *car.Manager           { return c.cars }
func (c *Context) Spawner() *car.Spawner              { return c.spawner }
func (c *Context) Metrics() *metrics.Collector        { return c.metrics }
