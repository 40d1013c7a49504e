// Car manager: the occupancy index, the per-tick movement rule and the
// randomized activation order.
package car

import (
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/urban-sim-lab/gridtraffic/entity"
)

var log = logrus.WithField("module", "car")

// Manager owns every live car and the position index. Cars and the index
// are mutated strictly sequentially by the tick orchestrator; a car's
// view of "is that cell taken" reflects the pre-tick position of cars not
// yet activated this tick and the post-move position of cars activated
// earlier, which is the intended random-activation semantics.
type Manager struct {
	ctx    entity.ITaskContext
	cars   []*Car
	byPos  map[entity.Position]*Car
	nextID int32
}

// NewManager creates an empty car population.
func NewManager(ctx entity.ITaskContext) *Manager {
	return &Manager{
		ctx:   ctx,
		byPos: map[entity.Position]*Car{},
	}
}

// Add places a new stationary car at pos. The caller checks occupancy
// first; adding onto a taken cell is a logic defect.
func (m *Manager) Add(pos entity.Position, dir entity.Direction) *Car {
	if m.byPos[pos] != nil {
		log.Panicf("spawn onto occupied cell (%d,%d)", pos.X, pos.Y)
	}
	m.nextID++
	c := &Car{
		id:    m.nextID,
		dir:   dir,
		pos:   pos,
		vmax:  defaultVMax,
		accel: defaultAccel,
	}
	m.cars = append(m.cars, c)
	m.byPos[pos] = c
	return c
}

// Occupied reports whether a car holds pos, including cars already marked
// for removal this tick.
func (m *Manager) Occupied(pos entity.Position) bool {
	return m.byPos[pos] != nil
}

// Count returns the live car population.
func (m *Manager) Count() int {
	return len(m.cars)
}

// All lists live cars in insertion order.
func (m *Manager) All() []entity.ICar {
	return lo.Map(m.cars, func(c *Car, _ int) entity.ICar { return c })
}

// Cars lists live cars with their concrete type.
func (m *Manager) Cars() []*Car {
	return m.cars
}

// Update activates every car once, in an order re-shuffled from the world
// RNG stream each tick. The shuffle is a scheduling contract: it prevents
// any systematic bias between cars contending for the same cell.
func (m *Manager) Update() {
	for _, i := range m.ctx.Rand().Perm(len(m.cars)) {
		if c := m.cars[i]; !c.removed {
			m.step(c)
		}
	}
}

// step runs one car's movement rule for this tick.
func (m *Manager) step(c *Car) {
	c.speed = clamp(c.speed+c.accel, 0, c.vmax)

	next := c.pos.Shift(c.dir)
	lanes := m.ctx.Lanes()

	// Leaving the grid removes the car.
	if !lanes.InBounds(next) {
		c.removed = true
		return
	}

	// So does running out of compatible road.
	j := m.ctx.Junctions().At(next)
	if j == nil && !lanes.HasLane(next, c.dir) {
		c.removed = true
		return
	}

	if m.Occupied(next) {
		c.halt()
		return
	}

	if j != nil {
		if !j.IsGreenFor(c.dir) {
			c.halt()
			return
		}
		// Anti-gridlock: do not enter an intersection that cannot be
		// cleared. The follow-on cell must be free and compatible; a
		// follow-on outside the grid is exempt. Only the single cell
		// past the intersection is inspected.
		after := next.Shift(c.dir)
		if lanes.InBounds(after) {
			exitBlocked := m.Occupied(after) ||
				(m.ctx.Junctions().At(after) == nil && !lanes.HasLane(after, c.dir))
			if exitBlocked {
				c.halt()
				return
			}
		}
	}

	if c.speed > moveThreshold {
		m.move(c, next)
	} else {
		c.wait++
	}
}

func (m *Manager) move(c *Car, next entity.Position) {
	delete(m.byPos, c.pos)
	c.pos = next
	m.byPos[next] = c
}

// Sweep drops every car marked for removal this tick and returns how many
// left the grid.
func (m *Manager) Sweep() int {
	removed := 0
	kept := m.cars[:0]
	for _, c := range m.cars {
		if c.removed {
			delete(m.byPos, c.pos)
			removed++
			continue
		}
		kept = append(kept, c)
	}
	m.cars = kept
	return removed
}
