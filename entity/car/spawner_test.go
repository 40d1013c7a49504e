package car_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urban-sim-lab/gridtraffic/entity"
	"github.com/urban-sim-lab/gridtraffic/utils/config"
)

func TestPeakFactor(t *testing.T) {
	ctx := newWorld(nil)
	s := ctx.Spawner()

	cases := []struct {
		minute int
		want   float64
	}{
		{7 * 60, 2.2},        // morning window opens
		{8 * 60, 2.2},        // inside morning window
		{9*60 + 30, 2.2},     // morning window closes, inclusive
		{9*60 + 31, 1.0},     // just after
		{17 * 60, 2.4},       // evening window opens
		{19*60 + 30, 2.4},    // evening window closes, inclusive
		{19*60 + 31, 1.0},    // just after
		{3 * 60, 1.0},        // night
		{12 * 60, 1.0},       // midday
	}
	for _, tc := range cases {
		ctx.Clock().MinuteOfDay = tc.minute
		assert.Equal(t, tc.want, s.PeakFactor(), "minute %d", tc.minute)
	}
}

func TestArrivalProbability(t *testing.T) {
	ctx := newWorld(func(c *config.RuntimeConfig) { c.BaseSpawnScale = 1 })
	s := ctx.Spawner()

	residential := entity.SpawnPoint{Pos: entity.Position{X: 0, Y: 6}, Dir: entity.DirE}
	industrial := entity.SpawnPoint{Pos: entity.Position{X: 29, Y: 5}, Dir: entity.DirW}
	outside := entity.SpawnPoint{Pos: entity.Position{X: 0, Y: 15}, Dir: entity.DirE}

	// midday: base rates only
	ctx.Clock().MinuteOfDay = 12 * 60
	assert.InDelta(t, 0.06, s.ArrivalProbability(residential), 1e-9)
	assert.InDelta(t, 0.07, s.ArrivalProbability(industrial), 1e-9)
	assert.InDelta(t, 0.03, s.ArrivalProbability(outside), 1e-9)

	// morning peak
	ctx.Clock().MinuteOfDay = 8 * 60
	assert.InDelta(t, 0.06*2.2, s.ArrivalProbability(residential), 1e-9)

	// evening peak adds the industrial multiplier
	ctx.Clock().MinuteOfDay = 18 * 60
	assert.InDelta(t, 0.07*1.4*2.4, s.ArrivalProbability(industrial), 1e-9)
	assert.InDelta(t, 0.06*2.4, s.ArrivalProbability(residential), 1e-9)

	// the industrial boost outlasts the evening peak factor until 20:00
	ctx.Clock().MinuteOfDay = 19*60 + 45
	assert.InDelta(t, 0.07*1.4, s.ArrivalProbability(industrial), 1e-9)

	// global scale multiplies everything
	ctx.RuntimeConfig().BaseSpawnScale = 2
	assert.InDelta(t, 0.07*1.4*2, s.ArrivalProbability(industrial), 1e-9)
}

func TestSpawnFillsFreeEntries(t *testing.T) {
	ctx := newWorld(func(c *config.RuntimeConfig) { c.BaseSpawnScale = 1000 })
	s := ctx.Spawner()

	// with the scale forcing p >= 1 every free entry spawns
	s.Update()
	assert.Equal(t, 12, ctx.CarManager().Count())

	// occupied entries are skipped, not double-filled
	s.Update()
	assert.Equal(t, 12, ctx.CarManager().Count())

	// every spawned car starts stationary on its lane's direction
	lanes := ctx.LaneManager()
	for _, c := range ctx.CarManager().Cars() {
		assert.Equal(t, 0.0, c.Speed())
		assert.True(t, lanes.HasLane(c.Pos(), c.Dir()))
	}
}
