// Signal-control policies. Two interchangeable controllers drive the
// phase/timer state machine of a controlled intersection cluster: a
// fixed-cycle program and a demand-actuated gap-out controller. Policies
// are pure state machines over (phase, timer) plus sampled demand; the
// junction manager owns geometry and demand sensing.
package trafficlight

// State is the shared signal state of one cluster. Phase 0 is green for
// the cluster's configured green-direction pair, phase 1 for the
// orthogonal pair.
type State struct {
	Phase int // 0 or 1
	Timer int // ticks spent in the current phase
}

func (s *State) flip() {
	s.Phase = 1 - s.Phase
	s.Timer = 0
}

// Demand is the sampled queue length per signal axis, from the point of
// view of the current phase.
type Demand struct {
	Green int // queued cars on the currently-green axis
	Red   int // queued cars on the currently-red axis
}

// Policy advances a cluster's state by one tick. Update reports whether
// the phase flipped.
type Policy interface {
	Name() string
	Update(s *State, d Demand) bool
}
