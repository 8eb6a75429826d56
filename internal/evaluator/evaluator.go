// Package evaluator implements the objective function: a single pass
// over the grid that produces fo and repopulates every auxiliary
// index the neighborhood dispatcher reads.
package evaluator

import "github.com/cbctt/uctp/internal/model"

// hardWeight is the per-violation weight for every hard constraint
// (R1, R2, R4, R10, R11).
const hardWeight int64 = 1_000_000

// Evaluator owns one Problem's auxiliary indices for the life of a
// phase. It is not safe for concurrent use: a single thread drives
// evaluation and mutation in strict alternation.
type Evaluator struct {
	Problem *model.Problem
	Indices *Indices
	seed    [][]int8
}

// New allocates an Evaluator's auxiliary indices, sized from problem.
func New(p *model.Problem) *Evaluator {
	return &Evaluator{Problem: p, Indices: NewIndices(p)}
}

// SeedR9 installs a teacher-day occupancy bitmap (from a prior
// phase's R9Snapshot) that every subsequent Evaluate call overlays
// onto r9 before zeroing the rest of the indices.
func (e *Evaluator) SeedR9(bitmap [][]int8) {
	e.seed = bitmap
}

// Evaluate recomputes fo from scratch and refreshes every auxiliary
// index. Two evaluations of the same grid return identical fo and
// identical index contents.
func (e *Evaluator) Evaluate(s *model.Solution) int64 {
	p := e.Problem
	idx := e.Indices
	idx.reset(p, e.seed)

	var fo int64

	var r4Count, r6Count, r7Count, r8Count, r10Count int64
	var r7ExcessSum int64
	var maxExcess int64 = -1

	for period := 0; period < p.TotalPeriods; period++ {
		day := p.DayOf(period)
		pod := p.PeriodOf(period)

		for room := 0; room < p.NumRooms(); room++ {
			c := s.At(period, room)
			if c == model.Empty {
				continue
			}
			course := &p.Courses[c]
			teacher := course.TeacherID
			r := &p.Rooms[room]

			idx.r1[c]++

			idx.r21[period][teacher]++
			if idx.r21[period][teacher] > 1 && idx.WitTeacherConflictPeriod < 0 {
				idx.WitTeacherConflictPeriod = period
				idx.WitTeacherConflictTeacher = teacher
			}

			for _, k := range course.Curricula {
				idx.r22[period][k]++
				if idx.r22[period][k] > 1 && idx.WitCurricConflictPeriod < 0 {
					idx.WitCurricConflictPeriod = period
					idx.WitCurricConflictCurric = k
				}
			}

			if p.IsUnavailable(c, period) {
				fo += hardWeight
				r4Count++
			}

			idx.r5[c][day]++
			idx.r11[day][c]++
			if idx.r11[day][c] > 1 && idx.WitDupCourse < 0 {
				idx.WitDupCourse = c
				idx.WitDupDay = day
			}

			// R6: isolation — scan the adjacent period of the same
			// day, across all rooms, for another member of each
			// curriculum this course belongs to.
			for _, k := range course.Curricula {
				found := false
				if pod > 0 {
					found = found || hasCurriculumMember(p, s, period-1, k)
				}
				if pod < p.PeriodsPerDay-1 {
					found = found || hasCurriculumMember(p, s, period+1, k)
				}
				if !found {
					fo += 2
					r6Count++
					if idx.WitIsolationPeriod < 0 {
						idx.WitIsolationPeriod = period
						idx.WitIsolationRoom = room
					}
				}
			}

			// R7: over-capacity.
			if course.StudentCount > r.Capacity {
				excess := int64(course.StudentCount - r.Capacity)
				fo += excess
				r7Count++
				r7ExcessSum += excess
				if excess > maxExcess {
					maxExcess = excess
					idx.WitCapacityPeriod = period
					idx.WitCapacityRoom = room
				}
			}

			// R8: room instability.
			if idx.r8[c] == model.Empty {
				idx.r8[c] = room
			} else if idx.r8[c] != room {
				fo++
				r8Count++
				if idx.WitInstabilityCourse < 0 {
					idx.WitInstabilityCourse = c
				}
			}

			// R9: teaching-day bitmap (seeded 1s are never cleared by
			// reset, and this only ever sets, never clears).
			idx.r9[teacher][day] = 1

			// R10: room type.
			if course.RequiredRoomType != r.RoomType {
				fo += hardWeight
				r10Count++
				if idx.WitRoomTypePeriod < 0 {
					idx.WitRoomTypePeriod = period
					idx.WitRoomTypeRoom = room
				}
			}
		}
	}

	// R1: placed-vs-required, after the pass.
	var r1Sum int64
	for c := range p.Courses {
		diff := idx.r1[c] - int64(p.Courses[c].LectureCount)
		if diff < 0 {
			diff = -diff
		}
		if diff > 0 {
			fo += hardWeight * diff
			r1Sum += diff
		}
	}

	// R2: teacher and curriculum double-booking totals.
	idx.teacherConflictTotal = 0
	idx.curricConflictTotal = 0
	for period := 0; period < p.TotalPeriods; period++ {
		for t := 0; t < p.NumTeachers(); t++ {
			if cnt := idx.r21[period][t]; cnt > 1 {
				idx.teacherConflictTotal += cnt - 1
			}
		}
		for k := 0; k < p.NumCurricula(); k++ {
			if cnt := idx.r22[period][k]; cnt > 1 {
				idx.curricConflictTotal += cnt - 1
			}
		}
	}
	fo += hardWeight * idx.teacherConflictTotal
	fo += hardWeight * idx.curricConflictTotal

	// R5: spread across too few days.
	var r5Sum int64
	for c := range p.Courses {
		usedDays := int64(0)
		for d := 0; d < p.Days; d++ {
			if idx.r5[c][d] > 0 {
				usedDays++
			}
		}
		if deficit := int64(p.Courses[c].MinDays) - usedDays; deficit > 0 {
			fo += 5 * deficit
			r5Sum += deficit
		}
	}

	// R9: teacher weekly-day spread.
	var r9Sum int64
	for t := 0; t < p.NumTeachers(); t++ {
		teachingDays := int64(0)
		for d := 0; d < p.Days; d++ {
			if idx.r9[t][d] != 0 {
				teachingDays++
			}
		}
		if excess := teachingDays - 2; excess > 0 {
			fo += 5 * excess
			r9Sum += excess
			if idx.WitSpreadTeacher < 0 {
				idx.WitSpreadTeacher = t
			}
		}
	}

	// R11: residual same-day duplicates.
	var r11Sum int64
	for d := 0; d < p.Days; d++ {
		for c := range p.Courses {
			if cnt := idx.r11[d][c]; cnt > 1 {
				fo += hardWeight * (cnt - 1)
				r11Sum += cnt - 1
			}
		}
	}

	setCounter(&idx.Violations[R1], r1Sum)
	setCounter(&idx.Violations[R2], composeR2(idx.teacherConflictTotal, idx.curricConflictTotal))
	setCounter(&idx.Violations[R4], r4Count)
	setCounter(&idx.Violations[R5], r5Sum)
	setCounter(&idx.Violations[R6], r6Count)
	setCounter(&idx.Violations[R7], r7Count)
	setCounter(&idx.Violations[R8], r8Count)
	setCounter(&idx.Violations[R9], r9Sum)
	setCounter(&idx.Violations[R10], r10Count)
	setCounter(&idx.Violations[R11], r11Sum)

	idx.R7ExcessSum = r7ExcessSum

	s.FO = fo
	return fo
}

// composeR2 encodes violations[2] using a teacher-low/curriculum-high
// base-1000 composition, since the move dispatcher reads both
// components back out of it. A teacher total above 999 spills into
// the curriculum part and is no longer decoded correctly.
func composeR2(teacherTotal, curricTotal int64) int64 {
	return teacherTotal + 1000*curricTotal
}

// DecomposeR2 inverts composeR2, as the neighborhood dispatcher must
// when reading violations[2].
func DecomposeR2(v int64) (teacherTotal, curricTotal int64) {
	if v < 0 {
		return 0, 0
	}
	return v % 1000, v / 1000
}

func setCounter(slot *int64, value int64) {
	if value > 0 {
		*slot = value
	} else {
		*slot = noViolation
	}
}

// HasCurriculumMember reports whether any room at period holds a
// course belonging to curriculum k. Exported for the neighborhood
// package's R6 move to reuse the same neighbor-scan logic.
func HasCurriculumMember(p *model.Problem, s *model.Solution, period, k int) bool {
	return hasCurriculumMember(p, s, period, k)
}

func hasCurriculumMember(p *model.Problem, s *model.Solution, period, k int) bool {
	for room := 0; room < p.NumRooms(); room++ {
		c := s.At(period, room)
		if c == model.Empty {
			continue
		}
		for _, mk := range p.Courses[c].Curricula {
			if mk == k {
				return true
			}
		}
	}
	return false
}
