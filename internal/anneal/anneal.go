// Package anneal implements the simulated-annealing driver: cooling
// schedule, acceptance rule, re-heating, best-so-far tracking and
// improvement history.
package anneal

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/cbctt/uctp/internal/evaluator"
	"github.com/cbctt/uctp/internal/model"
	"github.com/cbctt/uctp/internal/neighborhood"
	"github.com/cbctt/uctp/internal/rng"
)

const (
	tInitial      = 1e6
	tFinal        = 1e-5
	tReheat       = 10 * tFinal
	stagnationCap = 8000
	historySize   = 10
)

// HistoryEntry records one best-improvement event, for the report
// tail's ring history.
type HistoryEntry struct {
	FO        int64
	ElapsedMs int64
}

// Engine owns one phase's Problem, Evaluator and RNG for its entire
// lifetime: build → run → drop. A fresh Engine is built for each
// phase rather than sharing buffers across phases.
type Engine struct {
	Problem   *model.Problem
	Evaluator *evaluator.Evaluator
	RNG       *rng.Source
	Log       *zap.SugaredLogger

	Current  *model.Solution
	Best     *model.Solution
	neighbor *model.Solution

	History  []HistoryEntry
	reheated bool
}

// Build constructs an Engine for problem. A seed of 0 time-seeds the
// RNG, matching the package-wide default.
func Build(p *model.Problem, seed int64, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{
		Problem:   p,
		Evaluator: evaluator.New(p),
		RNG:       rng.New(seed),
		Log:       log,
	}
}

// SeedR9 installs a teacher-day occupancy bitmap, inherited from a
// prior phase, before the first Run.
func (e *Engine) SeedR9(bitmap [][]int8) {
	e.Evaluator.SeedR9(bitmap)
}

// coolingParams implements the temperature-adaptive schedule table.
func coolingParams(t float64) (maxIter int, alpha float64) {
	switch {
	case t > 1000:
		return 600, 0.98
	case t > 100:
		return 800, 0.97
	case t > 10:
		return 1000, 0.98
	case t > 1:
		return 1200, 0.99
	case t > 0.1:
		return 1500, 0.993
	default:
		return 1200, 0.995
	}
}

// Run executes the SA search starting from initial and returns the
// best solution found.
func (e *Engine) Run(initial *model.Solution) *model.Solution {
	start := time.Now()

	e.Current = model.Clone(initial)
	e.Evaluator.Evaluate(e.Current)
	e.Best = model.Clone(e.Current)
	e.neighbor = model.NewEmpty(e.Problem)

	temperature := tInitial
	stagnant := 0

	for temperature > tFinal && e.Best.FO != 0 && stagnant < stagnationCap {
		maxIter, alpha := coolingParams(temperature)
		improved := false

		for i := 0; i < maxIter; i++ {
			model.CopyInto(e.neighbor, e.Current)

			if temperature < 100 {
				e.Evaluator.Evaluate(e.neighbor)
			}

			neighborhood.Mutate(e.Problem, e.neighbor, e.Evaluator.Indices, e.RNG, temperature)
			foPrime := e.Evaluator.Evaluate(e.neighbor)

			delta := (foPrime - e.Current.FO) * 4

			accept := delta < 0
			if !accept {
				accept = e.RNG.Float64() < acceptanceProbability(delta, temperature)
			}

			if accept {
				model.CopyInto(e.Current, e.neighbor)
				if e.Current.FO < e.Best.FO {
					model.CopyInto(e.Best, e.Current)
					improved = true
					e.recordHistory(start)
				}
			}

			if e.Best.FO == 0 {
				break
			}
		}

		if improved {
			stagnant = 0
		} else {
			stagnant++
		}

		if e.Best.FO == 0 || stagnant >= stagnationCap {
			break
		}

		if temperature <= tReheat && !e.reheated {
			temperature = 0.1 * tInitial
			e.reheated = true
			e.Log.Infow("re-heating", "temperature", temperature)
			continue
		}
		temperature *= alpha
	}

	e.Log.Infow("anneal finished",
		"best_fo", e.Best.FO,
		"stagnant_outer_iterations", stagnant,
		"final_temperature", temperature,
		"elapsed", time.Since(start),
	)
	return e.Best
}

// acceptanceProbability implements the Metropolis gate. delta is
// already ×4-sharpened by the caller. math.Exp saturates to 0 or +Inf
// at extreme arguments rather than panicking, so no explicit overflow
// guard is needed beyond never dividing by a non-positive temperature.
func acceptanceProbability(delta int64, temperature float64) float64 {
	if temperature <= 0 {
		return 0
	}
	return math.Exp(-float64(delta) / temperature)
}

func (e *Engine) recordHistory(start time.Time) {
	entry := HistoryEntry{FO: e.Best.FO, ElapsedMs: time.Since(start).Milliseconds()}
	e.History = append(e.History, entry)
	if len(e.History) > historySize {
		e.History = e.History[len(e.History)-historySize:]
	}
}
