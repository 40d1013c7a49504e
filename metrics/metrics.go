// Aggregate statistics derived from live car state.
package metrics

import (
	"github.com/samber/lo"
	"github.com/urban-sim-lab/gridtraffic/entity"
)

// Snapshot is the statistics record of one completed tick.
type Snapshot struct {
	Tick           int
	CountCars      int
	AvgSpeed       float64
	AvgWait        float64 // in ticks
	AvgWaitSeconds float64 // AvgWait scaled by seconds_per_tick
	ZoneDensity    map[string]int
}

// Collector computes a snapshot at the end of every tick and keeps the
// series for batch analysis.
type Collector struct {
	ctx    entity.ITaskContext
	last   Snapshot
	series []Snapshot
}

// NewCollector binds a collector to the world.
func NewCollector(ctx entity.ITaskContext) *Collector {
	return &Collector{ctx: ctx}
}

// Collect derives the current snapshot from live car state.
func (c *Collector) Collect() Snapshot {
	cars := c.ctx.Cars().All()
	cfg := c.ctx.RuntimeConfig()

	s := Snapshot{
		Tick:        c.ctx.Clock().Tick,
		CountCars:   len(cars),
		ZoneDensity: map[string]int{},
	}
	for _, name := range c.ctx.Zones().Names() {
		s.ZoneDensity[name] = 0
	}
	if len(cars) > 0 {
		s.AvgSpeed = lo.SumBy(cars, func(c entity.ICar) float64 { return c.Speed() }) / float64(len(cars))
		s.AvgWait = lo.SumBy(cars, func(c entity.ICar) float64 { return float64(c.Wait()) }) / float64(len(cars))
	}
	s.AvgWaitSeconds = s.AvgWait * cfg.SecondsPerTick
	for _, car := range cars {
		name := c.ctx.Zones().Locate(car.Pos())
		if _, ok := s.ZoneDensity[name]; ok {
			s.ZoneDensity[name]++
		}
	}

	c.last = s
	c.series = append(c.series, s)
	return s
}

// Last returns the most recent snapshot.
func (c *Collector) Last() Snapshot {
	return c.last
}

// Series returns every snapshot collected so far, one per tick.
func (c *Collector) Series() []Snapshot {
	return c.series
}
