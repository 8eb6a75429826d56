// Package neighborhood implements the eight targeted move operators
// and three random move classes. The dispatcher reads violations[]
// populated by the most recent evaluator pass and mutates the grid
// in place.
package neighborhood

import (
	"github.com/cbctt/uctp/internal/model"
	"github.com/cbctt/uctp/internal/rng"
)

// attemptsFor implements the temperature-scaled attempts table.
func attemptsFor(temperature float64) int {
	switch {
	case temperature >= 1000:
		return 2
	case temperature >= 100:
		return 3
	case temperature >= 10:
		return 4
	case temperature >= 1:
		return 5
	default:
		return 6
	}
}

// ladder implements the acceptance ladder common to all eight
// targeted moves: relocate into a resolving empty cell, swap for
// mutual benefit, swap with a same-kind violator, and finally a
// forced weakened swap/relocate after `attempts` misses.
func ladder(
	p *model.Problem, s *model.Solution, rnd *rng.Source, attempts int,
	srcPeriod, srcRoom, src int,
	resolves func(period, room int) bool,
	swapBeneficial func(period, room, other int) bool,
	sameKind func(period, room, other int) bool,
	weakened func(period, room, other int) bool,
) bool {
	if srcPeriod < 0 {
		return false
	}

	for i := 0; i < attempts; i++ {
		period := rnd.Intn(p.TotalPeriods)
		room := rnd.Intn(p.NumRooms())
		if period == srcPeriod && room == srcRoom {
			continue
		}
		other := s.At(period, room)
		if other == model.Empty {
			if resolves(period, room) {
				s.Set(srcPeriod, srcRoom, model.Empty)
				s.Set(period, room, src)
				return true
			}
			continue
		}
		if swapBeneficial(period, room, other) || sameKind(period, room, other) {
			s.Swap(srcPeriod, srcRoom, period, room)
			return true
		}
	}

	// rung 4: forced weakened swap/relocate.
	for i := 0; i < attempts*4; i++ {
		period := rnd.Intn(p.TotalPeriods)
		room := rnd.Intn(p.NumRooms())
		if period == srcPeriod && room == srcRoom {
			continue
		}
		other := s.At(period, room)
		if weakened(period, room, other) {
			if other == model.Empty {
				s.Set(srcPeriod, srcRoom, model.Empty)
				s.Set(period, room, src)
			} else {
				s.Swap(srcPeriod, srcRoom, period, room)
			}
			return true
		}
	}
	return false
}

func hasTeacherAtExcluding(p *model.Problem, s *model.Solution, period, teacher, excludeRoom int) bool {
	for room := 0; room < p.NumRooms(); room++ {
		if room == excludeRoom {
			continue
		}
		c := s.At(period, room)
		if c == model.Empty {
			continue
		}
		if p.Courses[c].TeacherID == teacher {
			return true
		}
	}
	return false
}

func hasCurriculumAtExcluding(p *model.Problem, s *model.Solution, period, curriculum, excludeRoom int) bool {
	for room := 0; room < p.NumRooms(); room++ {
		if room == excludeRoom {
			continue
		}
		c := s.At(period, room)
		if c == model.Empty {
			continue
		}
		for _, k := range p.Courses[c].Curricula {
			if k == curriculum {
				return true
			}
		}
	}
	return false
}

func courseHasCurriculum(course *model.Course, k int) bool {
	for _, ck := range course.Curricula {
		if ck == k {
			return true
		}
	}
	return false
}
