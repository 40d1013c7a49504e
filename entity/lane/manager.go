// Road network builder: avenues, paired directional lanes and edge entry
// points, constructed once per world.
package lane

import (
	"sort"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/urban-sim-lab/gridtraffic/entity"
)

var log = logrus.WithField("module", "lane")

// Manager holds the static lane grid.
//
// Every avenue is a pair of opposite lanes: a horizontal avenue anchored
// at row yE runs E on yE and W on yE-1; a vertical avenue anchored at
// column xN runs N on xN and S on xN+1. The network is one central avenue
// per axis plus two offset avenues per axis, deduplicated and clipped so
// both rows/columns of the pair fit the grid.
type Manager struct {
	width  int
	height int

	hAvenues []int // anchor rows (E lane)
	vAvenues []int // anchor columns (N lane)

	lanes  []*Lane
	byPos  map[entity.Position][]*Lane
	points []entity.SpawnPoint
}

// NewManager builds the road network for the configured grid.
func NewManager(ctx entity.ITaskContext) *Manager {
	cfg := ctx.RuntimeConfig()
	m := &Manager{
		width:  cfg.Width,
		height: cfg.Height,
		byPos:  map[entity.Position][]*Lane{},
	}
	m.defineAvenues()
	for _, yE := range m.hAvenues {
		m.addHorizontalAvenue(yE, ctx.Zones())
	}
	for _, xN := range m.vAvenues {
		m.addVerticalAvenue(xN, ctx.Zones())
	}
	m.defineEntryPoints()
	log.Debugf("network built: %d lanes, %d entry points, avenues h=%v v=%v",
		len(m.lanes), len(m.points), m.hAvenues, m.vAvenues)
	return m
}

// defineAvenues computes anchor coordinates: the central avenue per axis
// plus two offset ones near the edges. A horizontal anchor needs y>=1 for
// its W lane; a vertical anchor needs x<width-1 for its S lane.
func (m *Manager) defineAvenues() {
	h := []int{m.height / 2, 6, m.height - 7}
	v := []int{m.width / 2, 6, m.width - 7}

	m.hAvenues = lo.Uniq(lo.Filter(h, func(y int, _ int) bool {
		return 1 <= y && y < m.height
	}))
	m.vAvenues = lo.Uniq(lo.Filter(v, func(x int, _ int) bool {
		return 0 <= x && x < m.width-1
	}))
	sort.Ints(m.hAvenues)
	sort.Ints(m.vAvenues)
}

func (m *Manager) addHorizontalAvenue(yE int, zones entity.IZoneCatalog) {
	yW := yE - 1
	if yW < 0 || yE >= m.height {
		return
	}
	for x := 0; x < m.width; x++ {
		m.place(entity.Position{X: x, Y: yE}, entity.DirE, zones)
		m.place(entity.Position{X: x, Y: yW}, entity.DirW, zones)
	}
}

func (m *Manager) addVerticalAvenue(xN int, zones entity.IZoneCatalog) {
	xS := xN + 1
	if xN < 0 || xS >= m.width {
		return
	}
	for y := 0; y < m.height; y++ {
		m.place(entity.Position{X: xN, Y: y}, entity.DirN, zones)
		m.place(entity.Position{X: xS, Y: y}, entity.DirS, zones)
	}
}

func (m *Manager) place(pos entity.Position, dir entity.Direction, zones entity.IZoneCatalog) {
	l := &Lane{Pos: pos, Dir: dir, Zone: zones.Locate(pos)}
	m.lanes = append(m.lanes, l)
	m.byPos[pos] = append(m.byPos[pos], l)
}

// defineEntryPoints lists one entry per lane end of every avenue:
// E enters at (0,yE), W at (width-1,yW), N at (xN,0), S at (xS,height-1).
// Duplicates are dropped, keeping the first occurrence.
func (m *Manager) defineEntryPoints() {
	pts := make([]entity.SpawnPoint, 0, 2*(len(m.hAvenues)+len(m.vAvenues)))
	for _, yE := range m.hAvenues {
		pts = append(pts,
			entity.SpawnPoint{Pos: entity.Position{X: 0, Y: yE}, Dir: entity.DirE},
			entity.SpawnPoint{Pos: entity.Position{X: m.width - 1, Y: yE - 1}, Dir: entity.DirW},
		)
	}
	for _, xN := range m.vAvenues {
		pts = append(pts,
			entity.SpawnPoint{Pos: entity.Position{X: xN, Y: 0}, Dir: entity.DirN},
			entity.SpawnPoint{Pos: entity.Position{X: xN + 1, Y: m.height - 1}, Dir: entity.DirS},
		)
	}
	m.points = lo.Uniq(pts)
}

func (m *Manager) Width() int  { return m.width }
func (m *Manager) Height() int { return m.height }

// InBounds reports whether pos lies inside the grid.
func (m *Manager) InBounds(pos entity.Position) bool {
	return 0 <= pos.X && pos.X < m.width && 0 <= pos.Y && pos.Y < m.height
}

// HasLane reports whether a lane at pos carries dir.
func (m *Manager) HasLane(pos entity.Position, dir entity.Direction) bool {
	for _, l := range m.byPos[pos] {
		if l.Dir == dir {
			return true
		}
	}
	return false
}

// EntryPoints lists the deduplicated edge entry cells.
func (m *Manager) EntryPoints() []entity.SpawnPoint {
	return m.points
}

// Lanes lists every lane cell in construction order.
func (m *Manager) Lanes() []*Lane {
	return m.lanes
}

func (m *Manager) HorizontalAvenues() []int { return m.hAvenues }
func (m *Manager) VerticalAvenues() []int   { return m.vAvenues }
