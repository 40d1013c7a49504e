package lane

import "github.com/urban-sim-lab/gridtraffic/entity"

// Lane is one directional road cell. Its existence at a position declares
// that cars travelling Dir may occupy that cell. Lanes are immutable after
// network construction; crossing cells keep their lanes but are shadowed
// by the junction that owns them.
type Lane struct {
	Pos  entity.Position
	Dir  entity.Direction
	Zone string
}
