// Zone catalog: named axis-aligned rectangles with base arrival rates.
package zone

import (
	"github.com/samber/lo"
	"github.com/urban-sim-lab/gridtraffic/entity"
)

const (
	// Outside is the zone name reported for positions no zone contains.
	Outside = "FUERA"
	// Industrial is the zone whose entries get the evening multiplier.
	Industrial = "INDUSTRIAL"

	// defaultBaseRate applies to entry points outside every zone.
	defaultBaseRate = 0.03
)

// Zone is an immutable named rectangle with inclusive bounds.
type Zone struct {
	Name     string
	X0, Y0   int
	X1, Y1   int
	BaseRate float64
}

// Contains reports whether pos lies inside the zone.
func (z Zone) Contains(pos entity.Position) bool {
	return z.X0 <= pos.X && pos.X <= z.X1 && z.Y0 <= pos.Y && pos.Y <= z.Y1
}

// Catalog is the static zone list. A position belongs to the first zone
// that contains it, or to none.
type Catalog struct {
	zones  []Zone
	byName map[string]Zone
}

// NewCatalog builds a catalog from an ordered zone list.
func NewCatalog(zones []Zone) *Catalog {
	return &Catalog{
		zones:  zones,
		byName: lo.KeyBy(zones, func(z Zone) string { return z.Name }),
	}
}

// Defaults is the stock 30x30 city layout: center, residential,
// industrial and one mixed district.
func Defaults() []Zone {
	return []Zone{
		{Name: "CENTRO", X0: 10, Y0: 10, X1: 19, Y1: 19, BaseRate: 0.12},
		{Name: "RESIDENCIAL", X0: 0, Y0: 0, X1: 9, Y1: 9, BaseRate: 0.06},
		{Name: Industrial, X0: 20, Y0: 0, X1: 29, Y1: 9, BaseRate: 0.07},
		{Name: "OTRA", X0: 0, Y0: 20, X1: 9, Y1: 29, BaseRate: 0.04},
	}
}

// Locate returns the name of the first zone containing pos, or Outside.
func (c *Catalog) Locate(pos entity.Position) string {
	for _, z := range c.zones {
		if z.Contains(pos) {
			return z.Name
		}
	}
	return Outside
}

// BaseRate returns the named zone's arrival base rate, or the default
// entry rate when the name is unknown (including Outside).
func (c *Catalog) BaseRate(name string) float64 {
	if z, ok := c.byName[name]; ok {
		return z.BaseRate
	}
	return defaultBaseRate
}

// Names lists zone names in declaration order.
func (c *Catalog) Names() []string {
	return lo.Map(c.zones, func(z Zone, _ int) string { return z.Name })
}

// Get returns a zone by name.
func (c *Catalog) Get(name string) (Zone, bool) {
	z, ok := c.byName[name]
	return z, ok
}
