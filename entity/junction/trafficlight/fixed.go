package trafficlight

// FixedCycle flips the phase every Cycle ticks regardless of traffic.
type FixedCycle struct {
	Cycle int
}

func (p FixedCycle) Name() string { return "fixed" }

// Update increments the timer and flips the phase when it reaches the
// cycle length.
func (p FixedCycle) Update(s *State, _ Demand) bool {
	s.Timer++
	if s.Timer >= p.Cycle {
		s.flip()
		return true
	}
	return false
}
