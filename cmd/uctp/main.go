// Command uctp is the solver's CLI entry point: a cobra root command
// with one subcommand per operation.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cbctt/uctp/internal/uctperr"
	"github.com/cbctt/uctp/pkg/config"
	"github.com/cbctt/uctp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	zapLog, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLog.Sync()
	log := zapLog.Sugar()

	root := &cobra.Command{
		Use:   "uctp",
		Short: "University course timetable generator",
		Long: "Builds and anneals curriculum-based course timetables\n" +
			"using simulated annealing, per the ITC-2007 CB-CTT family\n" +
			"of constraints extended with room-type and same-day rules.",
	}

	root.AddCommand(newRunCommand(cfg, log))
	root.AddCommand(newPhaseCommand(cfg, log))
	root.AddCommand(newReportCommand(log))

	if err := root.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	var e *uctperr.Error
	if errors.As(err, &e) {
		return uctperr.ExitCode(e)
	}
	return 1
}
