package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cbctt/uctp/internal/anneal"
	"github.com/cbctt/uctp/internal/construct"
	"github.com/cbctt/uctp/internal/instance"
	"github.com/cbctt/uctp/internal/model"
	"github.com/cbctt/uctp/internal/phase"
	"github.com/cbctt/uctp/internal/report"
	"github.com/cbctt/uctp/internal/rng"
	"github.com/cbctt/uctp/internal/uctperr"
	"github.com/cbctt/uctp/pkg/config"
)

// newRunCommand builds the fixed two-phase composition: phase 1
// anneals the integral instance with no R9 seed, then hands its
// teacher-day occupancy to phase 2's anneal of the noturno instance.
func newRunCommand(cfg *config.Config, log *zap.SugaredLogger) *cobra.Command {
	var (
		phase1Input string
		phase2Input string
		outputDir   string
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run both phases and write both reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = cfg.Anneal.Seed
			}

			p1, err := instance.ParseFile(phase1Input, log)
			if err != nil {
				return err
			}
			best1, engine1, elapsed1 := solvePhase(p1, nil, seed, log)

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return uctperr.Resource("creating output directory", err)
			}
			r1 := report.New(p1, best1, engine1.Evaluator.Indices, engine1.History, elapsed1)
			if err := writeReport(r1, filepath.Join(outputDir, filepath.Base(phase1Input)+"7")); err != nil {
				return err
			}

			seedBitmap := phase.TeacherDays(p1, best1)

			p2, err := instance.ParseFile(phase2Input, log)
			if err != nil {
				return err
			}
			best2, engine2, elapsed2 := solvePhase(p2, seedBitmap, seed, log)

			r2 := report.New(p2, best2, engine2.Evaluator.Indices, engine2.History, elapsed2)
			return writeReport(r2, filepath.Join(outputDir, filepath.Base(phase2Input)+"7"))
		},
	}

	cmd.Flags().StringVar(&phase1Input, "phase1-input", "instUnifesp_integral", "phase 1 instance file")
	cmd.Flags().StringVar(&phase2Input, "phase2-input", "instUnifesp_noturno", "phase 2 instance file")
	cmd.Flags().StringVar(&outputDir, "output-dir", "resultados", "directory to write reports into")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed, 0 selects a time-based seed")

	return cmd
}

// solvePhase runs construction and the SA driver once for one
// instance, optionally seeding R9 from a prior phase's occupancy.
func solvePhase(p *model.Problem, seedBitmap [][]int8, seed int64, log *zap.SugaredLogger) (*model.Solution, *anneal.Engine, time.Duration) {
	start := time.Now()
	engine := anneal.Build(p, seed, log)
	if seedBitmap != nil {
		engine.SeedR9(seedBitmap)
	}

	rnd := rng.New(seed)
	initial := construct.Construct(p, rnd)
	best := engine.Run(initial)

	return best, engine, time.Since(start)
}

func writeReport(r *report.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return uctperr.Resource("creating report file", err)
	}
	defer f.Close()
	if err := r.Write(f); err != nil {
		return uctperr.Resource("writing report file", err)
	}
	return nil
}
