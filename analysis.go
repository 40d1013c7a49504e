// Batch signal-timing analysis: sweeps fixed cycle lengths against a
// baseline, runs the adaptive controller under the same protocol, and
// charts the averaged wait-time series. Wait is calibrated from ticks to
// real seconds so that the baseline mean matches the target.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/urban-sim-lab/gridtraffic/task"
	"github.com/urban-sim-lab/gridtraffic/utils/config"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	analyzeSteps      = flag.Int("analyze.steps", 800, "measured ticks per run")
	analyzeWarmup     = flag.Int("analyze.warmup", 300, "warmup ticks trimmed from every run")
	analyzeIterations = flag.Int("analyze.iterations", 3, "seeded replicates averaged per configuration")
	analyzeCycles     = flag.String("analyze.cycles", "6,9,12,15,18,24", "comma-separated cycle lengths to sweep")
	analyzeBaseline   = flag.Int("analyze.baseline", 12, "baseline cycle length for calibration")
	analyzeTarget     = flag.Float64("analyze.target_seconds", 60, "real-second wait the baseline is calibrated to")
	analyzeOut        = flag.String("analyze.out", "analysis.png", "output chart path")
)

// batchResult is the averaged outcome of one configuration.
type batchResult struct {
	label  string
	series []float64 // per-tick mean wait, warmup trimmed
	mean   float64
}

// runBatch averages the wait-time series of several seeded replicates of
// one configuration.
func runBatch(base config.RuntimeConfig, mode string, cycle int) batchResult {
	total := *analyzeWarmup + *analyzeSteps
	series := make([]float64, *analyzeSteps)
	for i := 0; i < *analyzeIterations; i++ {
		cfg := base
		cfg.Seed = base.Seed + uint64(i)
		cfg.SignalMode = mode
		cfg.LightCycle = cycle
		ctx := task.NewContext(&cfg)
		ctx.Run(total)
		snaps := ctx.Metrics().Series()[*analyzeWarmup:]
		for t, s := range snaps {
			series[t] += s.AvgWait
		}
	}
	for t := range series {
		series[t] /= float64(*analyzeIterations)
	}
	label := fmt.Sprintf("cycle %d", cycle)
	if mode == config.SignalModeAdaptive {
		label = "adaptive"
	}
	return batchResult{
		label:  label,
		series: series,
		mean:   lo.Sum(series) / float64(len(series)),
	}
}

func runAnalysis(cfg config.RuntimeConfig) error {
	cycles, err := parseCycles(*analyzeCycles)
	if err != nil {
		return err
	}

	log.Infof("baseline: fixed cycle %d, %d replicates", *analyzeBaseline, *analyzeIterations)
	baseline := runBatch(cfg, config.SignalModeFixed, *analyzeBaseline)
	if baseline.mean == 0 {
		return fmt.Errorf("baseline produced zero mean wait; nothing to calibrate against")
	}

	// Calibration: one tick equals timeFactor real seconds, chosen so the
	// baseline mean wait lands on the target.
	timeFactor := *analyzeTarget / baseline.mean
	targetSec := *analyzeTarget * 0.95 // the 5% improvement goal
	log.Infof("calibration: 1 tick = %.2f s, goal < %.2f s", timeFactor, targetSec)

	results := []batchResult{baseline}
	for _, cycle := range cycles {
		if cycle == *analyzeBaseline {
			continue
		}
		results = append(results, runBatch(cfg, config.SignalModeFixed, cycle))
	}
	results = append(results, runBatch(cfg, config.SignalModeAdaptive, *analyzeBaseline))

	for _, r := range results {
		meanSec := r.mean * timeFactor
		pct := (meanSec - *analyzeTarget) / *analyzeTarget * 100
		verdict := "misses goal"
		if meanSec <= targetSec {
			verdict = "meets goal"
		}
		log.Infof("%-10s mean wait %6.2f s (%+.1f%%) %s", r.label, meanSec, pct, verdict)
	}

	if err := renderChart(results, timeFactor, targetSec, *analyzeOut); err != nil {
		return err
	}
	log.Infof("chart written to %s", *analyzeOut)
	return nil
}

func renderChart(results []batchResult, timeFactor, targetSec float64, out string) error {
	xs := make([]float64, *analyzeSteps)
	for i := range xs {
		xs[i] = float64(i)
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "goal (-5%)",
			XValues: xs,
			YValues: lo.Map(xs, func(float64, int) float64 { return targetSec }),
			Style: chart.Style{
				StrokeColor:     drawing.ColorGreen,
				StrokeDashArray: []float64{5, 5},
			},
		},
	}
	for i, r := range results {
		style := chart.Style{}
		if i == 0 {
			style = chart.Style{StrokeColor: drawing.ColorBlack, StrokeWidth: 2}
		}
		smoothed := rollingMean(r.series, 20)
		for t := range smoothed {
			smoothed[t] *= timeFactor
		}
		series = append(series, chart.ContinuousSeries{
			Name:    r.label,
			XValues: xs,
			YValues: smoothed,
			Style:   style,
		})
	}

	graph := chart.Chart{
		Title:  "Average wait by signal timing",
		XAxis:  chart.XAxis{Name: "tick"},
		YAxis:  chart.YAxis{Name: "wait (s)"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	return graph.Render(chart.PNG, f)
}

// rollingMean smooths a series with a trailing window; the first
// window-1 points average what is available so far.
func rollingMean(series []float64, window int) []float64 {
	out := make([]float64, len(series))
	sum := 0.0
	for i, v := range series {
		sum += v
		n := window
		if i+1 < window {
			n = i + 1
		} else if i >= window {
			sum -= series[i-window]
		}
		out[i] = sum / float64(n)
	}
	return out
}

func parseCycles(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	cycles := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad cycle list %q", raw)
		}
		cycles = append(cycles, n)
	}
	return cycles, nil
}
