package entity

// IZoneCatalog locates positions in named zones.
type IZoneCatalog interface {
	// Locate returns the name of the first zone containing pos, or the
	// outside name when none does.
	Locate(pos Position) string
	// BaseRate returns the arrival base rate of a named zone, or the
	// default entry rate for unknown names.
	BaseRate(name string) float64
	// Names lists the catalog zone names in declaration order.
	Names() []string
}

// ILaneManager is the static road network.
type ILaneManager interface {
	Width() int
	Height() int
	InBounds(pos Position) bool
	// HasLane reports whether a lane at pos carries dir.
	HasLane(pos Position, dir Direction) bool
	// EntryPoints lists the deduplicated edge cells where cars enter.
	EntryPoints() []SpawnPoint
	HorizontalAvenues() []int
	VerticalAvenues() []int
}

// IJunction is one intersection cluster seen from a car's point of view.
type IJunction interface {
	Controlled() bool
	// IsGreenFor reports whether a car travelling dir may enter.
	// Uncontrolled junctions are green for every direction.
	IsGreenFor(dir Direction) bool
}

// IJunctionManager indexes intersection clusters by member cell.
type IJunctionManager interface {
	// At returns the cluster owning pos, or nil.
	At(pos Position) IJunction
}

// ICar is live car state exposed to metrics and the HTTP boundary.
type ICar interface {
	ID() int32
	Pos() Position
	Dir() Direction
	Speed() float64
	Wait() int
}

// ICarManager is the car occupancy index.
type ICarManager interface {
	// Occupied reports whether a car currently holds pos. Cars marked
	// for removal still occupy their cell until the end-of-tick sweep.
	Occupied(pos Position) bool
	Count() int
	All() []ICar
}
