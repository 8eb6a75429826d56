package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cbctt/uctp/internal/instance"
	"github.com/cbctt/uctp/internal/phase"
	"github.com/cbctt/uctp/internal/report"
	"github.com/cbctt/uctp/internal/uctperr"
	"github.com/cbctt/uctp/pkg/config"
)

// newPhaseCommand runs a single phase in isolation, for debugging one
// instance without the full two-phase composition.
func newPhaseCommand(cfg *config.Config, log *zap.SugaredLogger) *cobra.Command {
	var (
		input      string
		outputPath string
		seedFrom   string
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "phase",
		Short: "run a single phase against one instance file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = cfg.Anneal.Seed
			}

			p, err := instance.ParseFile(input, log)
			if err != nil {
				return err
			}

			var seedBitmap [][]int8
			if seedFrom != "" {
				seedBitmap, err = report.LoadTeacherDays(seedFrom)
				if err != nil {
					return uctperr.Input("reading prior-phase teacher-day bitmap for R9 seeding", err)
				}
			}

			best, engine, elapsed := solvePhase(p, seedBitmap, seed, log)

			if outputPath == "" {
				outputPath = filepath.Base(input) + "7"
			}
			r := report.New(p, best, engine.Evaluator.Indices, engine.History, elapsed)
			f, err := os.Create(outputPath)
			if err != nil {
				return uctperr.Resource("creating report file", err)
			}
			defer f.Close()
			if err := r.Write(f); err != nil {
				return uctperr.Resource("writing report file", err)
			}
			if err := report.SaveSolution(outputPath+".json", best); err != nil {
				return uctperr.Resource("persisting solution", err)
			}
			return report.SaveTeacherDays(outputPath+".teacherdays.json", phase.TeacherDays(p, best))
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "instance file to solve")
	cmd.Flags().StringVar(&outputPath, "output", "", "report file path (default <input>7)")
	cmd.Flags().StringVar(&seedFrom, "seed-from", "", "path to a prior phase's persisted teacher-day bitmap, for R9 seeding")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed, 0 selects a time-based seed")
	cmd.MarkFlagRequired("input")

	return cmd
}
