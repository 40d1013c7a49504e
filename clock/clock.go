package clock

import "fmt"

const (
	minutesPerDay = 24 * 60
	startMinute   = 7 * 60 // simulation starts at 07:00
)

// Clock tracks the tick counter and the simulated minute of day.
// One tick advances the day clock by one minute, wrapping at midnight.
type Clock struct {
	Tick        int // completed ticks since world construction
	MinuteOfDay int // [0, 1440)
}

// New returns a clock at tick 0, 07:00.
func New() *Clock {
	return &Clock{MinuteOfDay: startMinute}
}

// Advance moves the day clock forward one minute, wrapping modulo 1440.
// The tick counter itself is incremented by the orchestrator at the start
// of each step.
func (c *Clock) Advance() {
	c.MinuteOfDay = (c.MinuteOfDay + 1) % minutesPerDay
}

// HourMinute splits the current minute of day.
func (c *Clock) HourMinute() (int, int) {
	return c.MinuteOfDay / 60, c.MinuteOfDay % 60
}

// String renders the day clock as HH:MM.
func (c *Clock) String() string {
	h, m := c.HourMinute()
	return fmt.Sprintf("%02d:%02d", h, m)
}
