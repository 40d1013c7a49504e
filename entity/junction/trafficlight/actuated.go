package trafficlight

// Actuated serves the axis with real demand sooner. After MinGreen ticks
// the green phase gaps out as soon as its own axis has no queued demand
// while the opposing axis does; MaxGreen bounds how long a phase can hold
// regardless of demand.
type Actuated struct {
	MinGreen  int
	MaxGreen  int
	Threshold int // queue length at or below which an axis counts as empty
}

func (p Actuated) Name() string { return "adaptive" }

// Update increments the timer, then tries a gap-out and falls back to the
// maximum-green bound.
func (p Actuated) Update(s *State, d Demand) bool {
	s.Timer++
	if s.Timer >= p.MinGreen && d.Green <= p.Threshold && d.Red > p.Threshold {
		s.flip()
		return true
	}
	if s.Timer >= p.MaxGreen {
		s.flip()
		return true
	}
	return false
}
