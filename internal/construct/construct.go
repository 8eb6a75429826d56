// Package construct builds the randomized-greedy initial solution:
// the annealer's starting grid, before any mutation takes over.
package construct

import (
	"github.com/cbctt/uctp/internal/model"
	"github.com/cbctt/uctp/internal/rng"
)

// maxTries is the number of random (period, room) draws attempted for
// one lecture before falling back to forcePlace.
const maxTries = 3

// Construct places every lecture of every course once, returning a
// (typically infeasible) starting Solution for the annealer. Placement
// prefers a period/room pair that is empty, big enough, of adequate
// room type, and not unavailable for the course; it never leaves a
// lecture unplaced while the grid has an empty cell.
//
// Design note: construction accepts RoomType >= required, deliberately
// more permissive than the evaluator's strict equality check, so a
// lecture placed in a room of a higher type still incurs the hard R10
// penalty once the annealer evaluates it.
func Construct(p *model.Problem, rnd *rng.Source) *model.Solution {
	s := model.NewEmpty(p)

	for c, course := range p.Courses {
		for lecture := 0; lecture < course.LectureCount; lecture++ {
			if !tryPlace(p, s, rnd, c) {
				forcePlace(p, s, rnd, c)
			}
		}
	}

	return s
}

// tryPlace attempts maxTries random compatible placements for course c.
func tryPlace(p *model.Problem, s *model.Solution, rnd *rng.Source, c int) bool {
	course := &p.Courses[c]
	for attempt := 0; attempt < maxTries; attempt++ {
		period := rnd.Intn(p.TotalPeriods)
		room := rnd.Intn(p.NumRooms())

		if s.At(period, room) != model.Empty {
			continue
		}
		if p.IsUnavailable(c, period) {
			continue
		}
		if p.Rooms[room].Capacity < course.StudentCount {
			continue
		}
		if p.Rooms[room].RoomType < course.RequiredRoomType {
			continue
		}

		s.Set(period, room, c)
		return true
	}
	return false
}

// forcePlace scans every cell starting from a random offset and places
// c in the first empty one that the course is not unavailable at,
// ignoring capacity and room-type compatibility. It always succeeds
// when empty cells remain, which holds whenever the instance has
// enough room-period slots for the declared lecture load.
func forcePlace(p *model.Problem, s *model.Solution, rnd *rng.Source, c int) {
	total := p.TotalPeriods * p.NumRooms()
	offset := rnd.Intn(total)

	for i := 0; i < total; i++ {
		cell := (offset + i) % total
		period := cell / p.NumRooms()
		room := cell % p.NumRooms()

		if s.At(period, room) != model.Empty {
			continue
		}
		if p.IsUnavailable(c, period) {
			continue
		}

		s.Set(period, room, c)
		return
	}

	// Every empty cell is unavailable for c: take the first empty cell
	// anyway; the evaluator prices the resulting unavailability
	// violation like any other hard cost.
	for i := 0; i < total; i++ {
		cell := (offset + i) % total
		if s.At(cell/p.NumRooms(), cell%p.NumRooms()) == model.Empty {
			s.Set(cell/p.NumRooms(), cell%p.NumRooms(), c)
			return
		}
	}

	// Every cell occupied: the instance demands more lectures than the
	// grid holds. The random offset cell is overwritten, so the lecture
	// previously there is no longer placed.
	period := offset / p.NumRooms()
	room := offset % p.NumRooms()
	s.Set(period, room, c)
}
