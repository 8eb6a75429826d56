// Package report renders a finished run as a human-readable text
// dump: a per-constraint violation list followed by a fixed-width
// grid, stamped with a google/uuid run id.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cbctt/uctp/internal/anneal"
	"github.com/cbctt/uctp/internal/evaluator"
	"github.com/cbctt/uctp/internal/model"
)

// Report bundles everything one solved instance needs rendered.
type Report struct {
	RunID     string
	Problem   *model.Problem
	Solution  *model.Solution
	Indices   *evaluator.Indices
	History   []anneal.HistoryEntry
	Elapsed   time.Duration
	Timestamp time.Time
}

// New stamps a fresh run id and wraps the finished run's pieces.
func New(p *model.Problem, s *model.Solution, idx *evaluator.Indices, history []anneal.HistoryEntry, elapsed time.Duration) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Problem:   p,
		Solution:  s,
		Indices:   idx,
		History:   history,
		Elapsed:   elapsed,
		Timestamp: time.Now(),
	}
}

// Write renders the full text report to w.
func (r *Report) Write(w io.Writer) error {
	if err := r.writeHeader(w); err != nil {
		return err
	}
	if err := r.writeViolations(w); err != nil {
		return err
	}
	if err := r.writeHistory(w); err != nil {
		return err
	}
	return r.writeGrid(w)
}

func (r *Report) writeHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, "run %s at %s (%s)\ncourses %d rooms %d teachers %d curricula %d days %d periods/day %d\nfinal fo %d\n\n",
		r.RunID, r.Timestamp.Format(time.RFC3339), r.Elapsed,
		r.Problem.NumCourses(), r.Problem.NumRooms(), r.Problem.NumTeachers(), r.Problem.NumCurricula(),
		r.Problem.Days, r.Problem.PeriodsPerDay, r.Solution.FO)
	return err
}

var constraintNames = map[int]string{
	evaluator.R1:  "R1  lecture count",
	evaluator.R2:  "R2  teacher/curriculum conflict",
	evaluator.R4:  "R4  unavailability",
	evaluator.R5:  "R5  minimum working days",
	evaluator.R6:  "R6  curriculum isolation",
	evaluator.R7:  "R7  room capacity (soft excess)",
	evaluator.R8:  "R8  room stability",
	evaluator.R9:  "R9  teacher weekly spread",
	evaluator.R10: "R10 room type",
	evaluator.R11: "R11 same-course-per-day",
}

func (r *Report) writeViolations(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "violations:"); err != nil {
		return err
	}
	for id := 0; id <= evaluator.R11; id++ {
		if id == evaluator.R3 {
			continue
		}
		name, ok := constraintNames[id]
		if !ok {
			continue
		}
		v := r.Indices.Violations[id]
		if v == evaluator.NoViolation {
			v = 0
		}
		if _, err := fmt.Fprintf(w, "  %-32s %d\n", name, v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %-32s %d\n\n", "R7  soft excess-seat total", r.Indices.R7ExcessSum)
	return err
}

func (r *Report) writeHistory(w io.Writer) error {
	if len(r.History) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "best-improvement history (most recent last):"); err != nil {
		return err
	}
	for _, h := range r.History {
		if _, err := fmt.Fprintf(w, "  fo=%d at %dms\n", h.FO, h.ElapsedMs); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// writeGrid renders a fixed-width day/room grid, one block of periods
// per day, following PrintSchedule's column-alignment approach.
func (r *Report) writeGrid(w io.Writer) error {
	p := r.Problem
	nameLen := 0
	for _, c := range p.Courses {
		if len(c.Name) > nameLen {
			nameLen = len(c.Name)
		}
	}
	for _, rm := range p.Rooms {
		if len(rm.Name) > nameLen {
			nameLen = len(rm.Name)
		}
	}

	if _, err := fmt.Fprintln(w, "schedule:"); err != nil {
		return err
	}
	for day := 0; day < p.Days; day++ {
		if _, err := fmt.Fprintf(w, "day %d\n", day); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%8s ", ""); err != nil {
			return err
		}
		for _, rm := range p.Rooms {
			if _, err := fmt.Fprintf(w, " %-*s ", nameLen, rm.Name); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		for pod := 0; pod < p.PeriodsPerDay; pod++ {
			period := p.Period(day, pod)
			if _, err := fmt.Fprintf(w, "%8s ", fmt.Sprintf("p%d", pod)); err != nil {
				return err
			}
			for room := range p.Rooms {
				c := r.Solution.At(period, room)
				label := strings.Repeat(" ", nameLen)
				if c != model.Empty {
					label = fmt.Sprintf("%-*s", nameLen, p.Courses[c].Name)
				}
				if _, err := fmt.Fprintf(w, "|%s|", label); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
