// Package phase implements the two-phase composition glue: deriving
// phase-1's teacher-day occupancy bitmap and handing it to phase-2
// as its R9 seed.
package phase

import "github.com/cbctt/uctp/internal/model"

// TeacherDays derives teacherDays[t][d] = 1 iff some non-empty cell
// of s places a lecture taught by teacher t on day d. Teacher id
// mapping across phases is positional: phase 2 adopts this bitmap
// directly as its R9 seed, so the teacher ids common to both
// instances are simply the first len(bitmap) ids of phase 2, by
// construction order. Callers must document this assumption to their
// own instance authors.
func TeacherDays(p *model.Problem, s *model.Solution) [][]int8 {
	bitmap := make([][]int8, p.NumTeachers())
	for t := range bitmap {
		bitmap[t] = make([]int8, p.Days)
	}
	for period := 0; period < p.TotalPeriods; period++ {
		day := p.DayOf(period)
		for room := 0; room < p.NumRooms(); room++ {
			c := s.At(period, room)
			if c == model.Empty {
				continue
			}
			t := p.Courses[c].TeacherID
			bitmap[t][day] = 1
		}
	}
	return bitmap
}
