// Shared entity types: grid positions, travel directions and the
// interfaces the managers expose to each other.
package entity

// Direction is one of the four compass travel directions. A lane carries
// exactly one; a car keeps one for its whole lifetime.
type Direction string

const (
	DirE Direction = "E"
	DirW Direction = "W"
	DirN Direction = "N"
	DirS Direction = "S"
)

// Delta returns the per-tick grid displacement of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirE:
		return 1, 0
	case DirW:
		return -1, 0
	case DirN:
		return 0, 1
	case DirS:
		return 0, -1
	}
	panic("entity: unknown direction " + string(d))
}

// Horizontal reports whether the direction runs along the E/W axis.
func (d Direction) Horizontal() bool {
	return d == DirE || d == DirW
}

// Position is a grid cell coordinate.
type Position struct {
	X int
	Y int
}

// Shift returns the next position one cell along d.
func (p Position) Shift(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// SpawnPoint is a network edge cell where new cars may enter.
type SpawnPoint struct {
	Pos Position
	Dir Direction
}
