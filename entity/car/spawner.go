// Time-of-day modulated arrival process.
package car

import (
	"github.com/urban-sim-lab/gridtraffic/entity"
	"github.com/urban-sim-lab/gridtraffic/entity/zone"
)

// Peak windows in minutes of day, bounds inclusive.
const (
	morningStart = 7 * 60
	morningEnd   = 9*60 + 30
	eveningStart = 17 * 60
	eveningEnd   = 19*60 + 30

	morningFactor = 2.2
	eveningFactor = 2.4

	// Industrial entries see extra departures until 20:00.
	industrialEnd   = 20 * 60
	industrialBoost = 1.4
)

// Spawner injects new cars at network edge entry points with probability
// zone base rate x peak factor x global scale.
type Spawner struct {
	ctx  entity.ITaskContext
	cars *Manager
}

// NewSpawner binds the arrival process to the car population.
func NewSpawner(ctx entity.ITaskContext, cars *Manager) *Spawner {
	return &Spawner{ctx: ctx, cars: cars}
}

// PeakFactor is the step function of simulated minute of day: elevated in
// the morning window, more elevated in the evening window, nominal
// otherwise.
func (s *Spawner) PeakFactor() float64 {
	t := s.ctx.Clock().MinuteOfDay
	switch {
	case morningStart <= t && t <= morningEnd:
		return morningFactor
	case eveningStart <= t && t <= eveningEnd:
		return eveningFactor
	default:
		return 1.0
	}
}

// ArrivalProbability is the chance a car appears at pt this tick: the
// entry zone's base rate times the peak factor times the global scale,
// with the industrial evening multiplier on top.
func (s *Spawner) ArrivalProbability(pt entity.SpawnPoint) float64 {
	zones := s.ctx.Zones()
	minute := s.ctx.Clock().MinuteOfDay

	name := zones.Locate(pt.Pos)
	base := zones.BaseRate(name)
	if name == zone.Industrial && eveningStart <= minute && minute <= industrialEnd {
		base *= industrialBoost
	}
	return base * s.PeakFactor() * s.ctx.RuntimeConfig().BaseSpawnScale
}

// Update draws one arrival attempt per free entry point.
func (s *Spawner) Update() {
	for _, pt := range s.ctx.Lanes().EntryPoints() {
		if s.cars.Occupied(pt.Pos) {
			continue
		}
		if s.ctx.Rand().PTrue(s.ArrivalProbability(pt)) {
			s.cars.Add(pt.Pos, pt.Dir)
		}
	}
}
