package server

import (
	"github.com/samber/lo"
	"github.com/urban-sim-lab/gridtraffic/entity"
	"github.com/urban-sim-lab/gridtraffic/entity/lane"
	"github.com/urban-sim-lab/gridtraffic/task"
)

// Wire shapes for the renderer. Field names are part of the boundary
// contract; keep them stable.

type errorPayload struct {
	Error string `json:"error"`
}

type okPayload struct {
	OK       bool            `json:"ok"`
	Config   any             `json:"config"`
	Snapshot snapshotPayload `json:"snapshot"`
}

type metricsPayload struct {
	Tick           int     `json:"tick"`
	CountCars      int     `json:"count_cars"`
	AvgSpeed       float64 `json:"avg_speed"`
	AvgWait        float64 `json:"avg_wait"`
	AvgWaitSeconds float64 `json:"avg_wait_seconds"`
	SecondsPerTick float64 `json:"seconds_per_tick"`
	SignalMode     string  `json:"signal_mode"`
	LightCycle     int     `json:"light_cycle"`
}

type carPayload struct {
	ID    int32   `json:"id"`
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Dir   string  `json:"dir"`
	Speed float64 `json:"speed"`
}

type lightPayload struct {
	ID    int32 `json:"id"`
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Phase int   `json:"phase"`
}

type snapshotPayload struct {
	metricsPayload
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Cars   []carPayload   `json:"cars"`
	Lights []lightPayload `json:"lights"`
}

type roadPayload struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Dir  string `json:"dir"`
	Zone string `json:"zone"`
}

type intersectionPayload struct {
	X        int  `json:"x"`
	Y        int  `json:"y"`
	HasLight bool `json:"hasLight"`
}

type mapPayload struct {
	Width         int                   `json:"width"`
	Height        int                   `json:"height"`
	Roads         []roadPayload         `json:"roads"`
	Intersections []intersectionPayload `json:"intersections"`
}

func buildMetrics(ctx *task.Context) metricsPayload {
	m := ctx.Metrics().Last()
	cfg := ctx.RuntimeConfig()
	return metricsPayload{
		Tick:           ctx.Clock().Tick,
		CountCars:      ctx.Cars().Count(),
		AvgSpeed:       m.AvgSpeed,
		AvgWait:        m.AvgWait,
		AvgWaitSeconds: m.AvgWaitSeconds,
		SecondsPerTick: cfg.SecondsPerTick,
		SignalMode:     cfg.SignalMode,
		LightCycle:     cfg.LightCycle,
	}
}

func buildSnapshot(ctx *task.Context) snapshotPayload {
	lanes := ctx.LaneManager()
	snap := snapshotPayload{
		metricsPayload: buildMetrics(ctx),
		Width:          lanes.Width(),
		Height:         lanes.Height(),
		Cars: lo.Map(ctx.Cars().All(), func(c entity.ICar, _ int) carPayload {
			return carPayload{
				ID:    c.ID(),
				X:     c.Pos().X,
				Y:     c.Pos().Y,
				Dir:   string(c.Dir()),
				Speed: c.Speed(),
			}
		}),
		Lights: []lightPayload{},
	}
	for _, cluster := range ctx.JunctionManager().Controlled() {
		phase := cluster.State().Phase
		for _, member := range cluster.Members() {
			snap.Lights = append(snap.Lights, lightPayload{
				ID:    member.ID,
				X:     member.Pos.X,
				Y:     member.Pos.Y,
				Phase: phase,
			})
		}
	}
	return snap
}

func buildMap(ctx *task.Context) mapPayload {
	lanes := ctx.LaneManager()
	payload := mapPayload{
		Width:  lanes.Width(),
		Height: lanes.Height(),
		Roads: lo.Map(lanes.Lanes(), func(l *lane.Lane, _ int) roadPayload {
			return roadPayload{X: l.Pos.X, Y: l.Pos.Y, Dir: string(l.Dir), Zone: l.Zone}
		}),
		Intersections: []intersectionPayload{},
	}
	for _, cluster := range ctx.JunctionManager().Clusters() {
		for _, member := range cluster.Members() {
			payload.Intersections = append(payload.Intersections, intersectionPayload{
				X:        member.Pos.X,
				Y:        member.Pos.Y,
				HasLight: cluster.Controlled(),
			})
		}
	}
	return payload
}
