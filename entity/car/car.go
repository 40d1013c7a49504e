package car

import "github.com/urban-sim-lab/gridtraffic/entity"

const (
	defaultVMax  = 1.0
	defaultAccel = 0.3

	// moveThreshold is the minimum speed at which a car actually
	// advances a cell; below it the car idles in place.
	moveThreshold = 0.5
)

// Car is one vehicle. Direction is fixed for its lifetime; speed is
// clamped to [0, vmax] every tick; the wait counter grows by one on every
// tick the car fails to advance, whatever the reason.
type Car struct {
	id    int32
	dir   entity.Direction
	pos   entity.Position
	speed float64
	vmax  float64
	accel float64
	wait  int

	// removed marks the car for the end-of-tick sweep. A removed car
	// still occupies its cell until the sweep runs.
	removed bool
}

func (c *Car) ID() int32             { return c.id }
func (c *Car) Dir() entity.Direction { return c.dir }
func (c *Car) Pos() entity.Position  { return c.pos }
func (c *Car) Speed() float64        { return c.speed }
func (c *Car) Wait() int             { return c.wait }
func (c *Car) Removed() bool         { return c.removed }

// halt stops the car for this tick and counts the wait.
func (c *Car) halt() {
	c.speed = 0
	c.wait++
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
