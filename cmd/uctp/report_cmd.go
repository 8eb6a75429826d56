package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cbctt/uctp/internal/evaluator"
	"github.com/cbctt/uctp/internal/instance"
	"github.com/cbctt/uctp/internal/report"
	"github.com/cbctt/uctp/internal/uctperr"
)

// newReportCommand re-renders a previously persisted solution against
// its instance file, without re-running the annealer.
func newReportCommand(log *zap.SugaredLogger) *cobra.Command {
	var (
		input      string
		solution   string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "re-render a persisted solution's report",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := instance.ParseFile(input, log)
			if err != nil {
				return err
			}
			s, err := report.LoadSolution(solution)
			if err != nil {
				return uctperr.Input("reading persisted solution", err)
			}

			eval := evaluator.New(p)
			eval.Evaluate(s)

			r := report.New(p, s, eval.Indices, nil, 0)

			var w *os.File
			if outputPath == "" {
				w = os.Stdout
			} else {
				f, err := os.Create(outputPath)
				if err != nil {
					return uctperr.Resource("creating report file", err)
				}
				defer f.Close()
				w = f
			}
			if err := r.Write(w); err != nil {
				return uctperr.Resource("writing report", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "instance file the solution belongs to")
	cmd.Flags().StringVar(&solution, "solution", "", "path to a persisted solution JSON file")
	cmd.Flags().StringVar(&outputPath, "output", "", "report file path (default stdout)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("solution")

	return cmd
}
