package task

import "flag"

var (
	heartbeatInterval = flag.Int("log.heartbeat_interval", 100, "heartbeat log interval in ticks")
)

// Step advances the world exactly one tick. The order is fixed: spawn,
// signal update, car movement in a fresh random order, removal sweep,
// metrics, day-clock advance. Spawning precedes the signal update so a
// car is eligible for the green-light and anti-gridlock checks on the
// tick it appears; signal state is settled before any car consults it.
// One tick is a single synchronous pass with no suspension points.
func (c *Context) Step() {
	c.clock.Tick++
	if c.clock.Tick%*heartbeatInterval == 0 {
		m := c.metrics.Last()
		log.Infof("TICK %d (%s): %d cars, avg wait %.1f ticks",
			c.clock.Tick, c.clock, m.CountCars, m.AvgWait)
	}

	c.spawner.Update()
	c.junctions.Update()
	c.cars.Update()
	if removed := c.cars.Sweep(); removed > 0 {
		log.Debugf("tick %d: %d cars left the grid", c.clock.Tick, removed)
	}
	c.metrics.Collect()
	c.clock.Advance()
}

// Run advances the world a fixed number of ticks.
func (c *Context) Run(ticks int) {
	for i := 0; i < ticks; i++ {
		c.Step()
	}
}
