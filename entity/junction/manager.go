// Intersection clusters and the per-tick signal update.
package junction

import (
	"github.com/sirupsen/logrus"
	"github.com/urban-sim-lab/gridtraffic/entity"
	"github.com/urban-sim-lab/gridtraffic/entity/junction/trafficlight"
	"github.com/urban-sim-lab/gridtraffic/utils/config"
)

var log = logrus.WithField("module", "junction")

// Manager owns every cluster and runs the active signal policy over the
// controlled ones each tick.
type Manager struct {
	ctx      entity.ITaskContext
	clusters []*Cluster
	byPos    map[entity.Position]*Cluster
	nextID   int32
}

// NewManager builds one cluster per (horizontal x vertical) avenue
// crossing. The central crossing and the designated major crossing near
// the industrial district are signal-controlled; every other crossing is
// always passable. Clusters are built after lanes: a crossing cell is
// owned by its cluster, never treated as a plain lane.
func NewManager(ctx entity.ITaskContext) *Manager {
	m := &Manager{
		ctx:   ctx,
		byPos: map[entity.Position]*Cluster{},
	}
	lanes := ctx.Lanes()
	width, height := lanes.Width(), lanes.Height()
	for _, yE := range lanes.HorizontalAvenues() {
		for _, xN := range lanes.VerticalAvenues() {
			isCentral := yE == height/2 && xN == width/2
			isMajor := isCentral || (yE == height-7 && xN == width-7)
			m.addCluster(xN, yE, isMajor)
		}
	}
	log.Debugf("built %d clusters (%d controlled)", len(m.clusters), len(m.Controlled()))
	return m
}

func (m *Manager) addCluster(xN, yE int, controlled bool) {
	c := &Cluster{
		xN:         xN,
		xS:         xN + 1,
		yE:         yE,
		yW:         yE - 1,
		controlled: controlled,
		greenDirs:  [2]entity.Direction{entity.DirE, entity.DirW},
	}
	cells := []entity.Position{
		{X: c.xN, Y: c.yE},
		{X: c.xS, Y: c.yE},
		{X: c.xN, Y: c.yW},
		{X: c.xS, Y: c.yW},
	}
	for _, pos := range cells {
		if !m.ctx.Lanes().InBounds(pos) {
			continue
		}
		m.nextID++
		c.members = append(c.members, Member{ID: m.nextID, Pos: pos})
		m.byPos[pos] = c
	}
	m.clusters = append(m.clusters, c)
}

// At returns the cluster owning pos, or nil.
func (m *Manager) At(pos entity.Position) entity.IJunction {
	if c, ok := m.byPos[pos]; ok {
		return c
	}
	return nil
}

// Clusters lists every cluster in construction order.
func (m *Manager) Clusters() []*Cluster {
	return m.clusters
}

// Controlled lists the signal-controlled clusters.
func (m *Manager) Controlled() []*Cluster {
	out := make([]*Cluster, 0, 2)
	for _, c := range m.clusters {
		if c.controlled {
			out = append(out, c)
		}
	}
	return out
}

// Update advances every controlled cluster by one tick under the policy
// selected by the runtime configuration. Signal state is fixed before any
// car moves this tick.
func (m *Manager) Update() {
	cfg := m.ctx.RuntimeConfig()
	policy := m.policy(cfg)
	for _, c := range m.clusters {
		if !c.controlled {
			continue
		}
		policy.Update(&c.state, m.demand(c, cfg))
	}
}

func (m *Manager) policy(cfg *config.RuntimeConfig) trafficlight.Policy {
	if cfg.SignalMode == config.SignalModeAdaptive {
		return trafficlight.Actuated{
			MinGreen:  cfg.MinGreenTime,
			MaxGreen:  cfg.AdaptiveFallback(),
			Threshold: cfg.SwitchThreshold,
		}
	}
	return trafficlight.FixedCycle{Cycle: cfg.LightCycle}
}

// demand samples queue lengths for both axes by counting occupied cells
// within the detection range along each of the four approaches, then
// orients the sums to the currently-green axis.
func (m *Manager) demand(c *Cluster, cfg *config.RuntimeConfig) trafficlight.Demand {
	if cfg.SignalMode != config.SignalModeAdaptive {
		return trafficlight.Demand{}
	}
	cars := m.ctx.Cars()
	horizontal := 0
	vertical := 0
	for i := 1; i <= cfg.DetectionRange; i++ {
		// E approach comes from the west on row yE, W from the east on
		// row yW; N comes from below on column xN, S from above on xS.
		horizontal += m.countAt(cars, entity.Position{X: c.xN - i, Y: c.yE})
		horizontal += m.countAt(cars, entity.Position{X: c.xS + i, Y: c.yW})
		vertical += m.countAt(cars, entity.Position{X: c.xN, Y: c.yW - i})
		vertical += m.countAt(cars, entity.Position{X: c.xS, Y: c.yE + i})
	}
	if c.greenAxisHorizontal() {
		return trafficlight.Demand{Green: horizontal, Red: vertical}
	}
	return trafficlight.Demand{Green: vertical, Red: horizontal}
}

func (m *Manager) countAt(cars entity.ICarManager, pos entity.Position) int {
	if m.ctx.Lanes().InBounds(pos) && cars.Occupied(pos) {
		return 1
	}
	return 0
}
