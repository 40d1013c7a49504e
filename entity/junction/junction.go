package junction

import (
	"github.com/urban-sim-lab/gridtraffic/entity"
	"github.com/urban-sim-lab/gridtraffic/entity/junction/trafficlight"
)

// Member is one of the up-to-four cells of a cluster, with the stable id
// the HTTP boundary reports for its light.
type Member struct {
	ID  int32
	Pos entity.Position
}

// Cluster is one avenue crossing: the 2x2 cell group {(xN,yE),(xS,yE),
// (xN,yW),(xS,yW)} clipped to the grid. All member cells share a single
// signal state record, so phase, timer and cycle can never diverge
// between them. Uncontrolled clusters carry no state and are always
// passable.
type Cluster struct {
	xN, xS int // vertical avenue columns (N lane, S lane)
	yE, yW int // horizontal avenue rows (E lane, W lane)

	members    []Member
	controlled bool
	greenDirs  [2]entity.Direction // pair that is green in phase 0
	state      trafficlight.State
}

// Members lists the in-bounds cells of the cluster.
func (c *Cluster) Members() []Member {
	return c.members
}

// Controlled reports whether the cluster carries a traffic light.
func (c *Cluster) Controlled() bool {
	return c.controlled
}

// State returns the shared signal state.
func (c *Cluster) State() trafficlight.State {
	return c.state
}

// IsGreenFor reports whether a car travelling dir may enter. Phase 0 is
// green for the configured pair, phase 1 for the orthogonal pair; an
// uncontrolled cluster is green for every direction.
func (c *Cluster) IsGreenFor(dir entity.Direction) bool {
	if !c.controlled {
		return true
	}
	inPair := dir == c.greenDirs[0] || dir == c.greenDirs[1]
	if c.state.Phase == 0 {
		return inPair
	}
	return !inPair
}

// greenAxisHorizontal reports whether the currently-green axis is the
// horizontal one.
func (c *Cluster) greenAxisHorizontal() bool {
	pairHorizontal := c.greenDirs[0].Horizontal()
	if c.state.Phase == 0 {
		return pairHorizontal
	}
	return !pairHorizontal
}
