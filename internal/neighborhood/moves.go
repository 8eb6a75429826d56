package neighborhood

import (
	"github.com/cbctt/uctp/internal/evaluator"
	"github.com/cbctt/uctp/internal/model"
	"github.com/cbctt/uctp/internal/rng"
)

// fixTeacherConflict resolves the R2-T witness: some teacher has two
// lectures in the same period. It relocates or swaps one of the
// colliding lectures away.
func fixTeacherConflict(p *model.Problem, s *model.Solution, idx *evaluator.Indices, rnd *rng.Source, attempts int) bool {
	period := idx.WitTeacherConflictPeriod
	teacher := idx.WitTeacherConflictTeacher
	if period < 0 {
		return false
	}
	room := findCourseByTeacher(p, s, period, teacher)
	if room < 0 {
		return false
	}
	src := s.At(period, room)

	resolves := func(tp, tr int) bool {
		return tp != period && !hasTeacherAtExcluding(p, s, tp, teacher, -1)
	}
	swapBeneficial := func(tp, tr, other int) bool {
		otherTeacher := p.Courses[other].TeacherID
		if otherTeacher == teacher {
			return false
		}
		if hasTeacherAtExcluding(p, s, tp, teacher, tr) {
			return false
		}
		if hasTeacherAtExcluding(p, s, period, otherTeacher, room) {
			return false
		}
		return true
	}
	sameKind := func(tp, tr, other int) bool {
		return idx.R21(tp, p.Courses[other].TeacherID) > 1
	}
	weakened := func(tp, tr, other int) bool { return true }

	return ladder(p, s, rnd, attempts, period, room, src, resolves, swapBeneficial, sameKind, weakened)
}

// fixCurriculumConflict resolves the R2-C witness analogously, for a
// curriculum with two member lectures in the same period.
func fixCurriculumConflict(p *model.Problem, s *model.Solution, idx *evaluator.Indices, rnd *rng.Source, attempts int) bool {
	period := idx.WitCurricConflictPeriod
	curric := idx.WitCurricConflictCurric
	if period < 0 {
		return false
	}
	room := findCourseByCurriculum(p, s, period, curric)
	if room < 0 {
		return false
	}
	src := s.At(period, room)

	resolves := func(tp, tr int) bool {
		return tp != period && !hasCurriculumAtExcluding(p, s, tp, curric, -1)
	}
	swapBeneficial := func(tp, tr, other int) bool {
		otherCourse := &p.Courses[other]
		if courseHasCurriculum(otherCourse, curric) {
			return false
		}
		if hasCurriculumAtExcluding(p, s, tp, curric, tr) {
			return false
		}
		for _, k := range otherCourse.Curricula {
			if hasCurriculumAtExcluding(p, s, period, k, room) {
				return false
			}
		}
		return true
	}
	sameKind := func(tp, tr, other int) bool {
		return idx.R22(tp, curric) > 1 && courseHasCurriculum(&p.Courses[other], curric)
	}
	weakened := func(tp, tr, other int) bool { return true }

	return ladder(p, s, rnd, attempts, period, room, src, resolves, swapBeneficial, sameKind, weakened)
}

// fixIsolation resolves the R6 witness: a lecture with no same-
// curriculum neighbor in the adjacent period of its day.
func fixIsolation(p *model.Problem, s *model.Solution, idx *evaluator.Indices, rnd *rng.Source, attempts int) bool {
	period := idx.WitIsolationPeriod
	room := idx.WitIsolationRoom
	if period < 0 {
		return false
	}
	src := s.At(period, room)
	if src == model.Empty {
		return false
	}
	course := &p.Courses[src]

	nonIsolatedAt := func(tp int) bool {
		if len(course.Curricula) == 0 {
			return true
		}
		day, pod := p.DayOf(tp), p.PeriodOf(tp)
		for _, k := range course.Curricula {
			if pod > 0 && evaluator.HasCurriculumMember(p, s, day*p.PeriodsPerDay+pod-1, k) {
				return true
			}
			if pod < p.PeriodsPerDay-1 && evaluator.HasCurriculumMember(p, s, day*p.PeriodsPerDay+pod+1, k) {
				return true
			}
		}
		return false
	}

	resolves := func(tp, tr int) bool { return nonIsolatedAt(tp) }
	swapBeneficial := func(tp, tr, other int) bool {
		return nonIsolatedAt(tp) && isolatedAt(p, s, period, &p.Courses[other])
	}
	sameKind := func(tp, tr, other int) bool {
		return isolatedAt(p, s, tp, &p.Courses[other])
	}
	weakened := func(tp, tr, other int) bool { return true }

	return ladder(p, s, rnd, attempts, period, room, src, resolves, swapBeneficial, sameKind, weakened)
}

func isolatedAt(p *model.Problem, s *model.Solution, period int, course *model.Course) bool {
	if len(course.Curricula) == 0 {
		return false
	}
	day, pod := p.DayOf(period), p.PeriodOf(period)
	for _, k := range course.Curricula {
		if pod > 0 && evaluator.HasCurriculumMember(p, s, day*p.PeriodsPerDay+pod-1, k) {
			return false
		}
		if pod < p.PeriodsPerDay-1 && evaluator.HasCurriculumMember(p, s, day*p.PeriodsPerDay+pod+1, k) {
			return false
		}
	}
	return true
}

// fixCapacity resolves the R7 witness: a course seated in a room
// smaller than its student count.
func fixCapacity(p *model.Problem, s *model.Solution, idx *evaluator.Indices, rnd *rng.Source, attempts int) bool {
	period := idx.WitCapacityPeriod
	room := idx.WitCapacityRoom
	if period < 0 {
		return false
	}
	src := s.At(period, room)
	if src == model.Empty {
		return false
	}
	course := &p.Courses[src]

	resolves := func(tp, tr int) bool { return p.Rooms[tr].Capacity >= course.StudentCount }
	swapBeneficial := func(tp, tr, other int) bool {
		return p.Rooms[tr].Capacity >= course.StudentCount && p.Rooms[room].Capacity >= p.Courses[other].StudentCount
	}
	sameKind := func(tp, tr, other int) bool { return p.Rooms[tr].Capacity < p.Courses[other].StudentCount }
	weakened := func(tp, tr, other int) bool { return true }

	return ladder(p, s, rnd, attempts, period, room, src, resolves, swapBeneficial, sameKind, weakened)
}

// fixInstability resolves the R8 witness: a course using more than
// one distinct room, by moving a stray lecture back toward its
// first-observed ("home") room.
func fixInstability(p *model.Problem, s *model.Solution, idx *evaluator.Indices, rnd *rng.Source, attempts int) bool {
	course := idx.WitInstabilityCourse
	if course < 0 {
		return false
	}
	home := idx.R8(course)
	period, room := findStrayOccurrence(p, s, course, home)
	if period < 0 {
		return false
	}
	src := s.At(period, room)

	resolves := func(tp, tr int) bool { return tr == home }
	swapBeneficial := func(tp, tr, other int) bool { return tr == home }
	sameKind := func(tp, tr, other int) bool {
		otherHome := idx.R8(other)
		return otherHome != model.Empty && otherHome != tr
	}
	weakened := func(tp, tr, other int) bool { return true }

	return ladder(p, s, rnd, attempts, period, room, src, resolves, swapBeneficial, sameKind, weakened)
}

// fixSpread resolves the R9 witness: a teacher spread across more
// than two days, by moving one lecture onto a day the teacher already
// teaches.
func fixSpread(p *model.Problem, s *model.Solution, idx *evaluator.Indices, rnd *rng.Source, attempts int) bool {
	teacher := idx.WitSpreadTeacher
	if teacher < 0 {
		return false
	}
	period, room, witnessDay := findMovableLecture(p, s, idx, teacher)
	if period < 0 {
		return false
	}
	src := s.At(period, room)

	resolves := func(tp, tr int) bool {
		d := p.DayOf(tp)
		return d != witnessDay && idx.R9(teacher, d) && !hasTeacherAtExcluding(p, s, tp, teacher, -1)
	}
	swapBeneficial := func(tp, tr, other int) bool {
		d := p.DayOf(tp)
		if p.Courses[other].TeacherID == teacher {
			return false
		}
		return d != witnessDay && idx.R9(teacher, d) && !hasTeacherAtExcluding(p, s, tp, teacher, tr)
	}
	sameKind := func(tp, tr, other int) bool {
		return false
	}
	weakened := func(tp, tr, other int) bool { return true }

	return ladder(p, s, rnd, attempts, period, room, src, resolves, swapBeneficial, sameKind, weakened)
}

// fixRoomType resolves the R10 witness: a lecture seated in a room of
// the wrong type.
func fixRoomType(p *model.Problem, s *model.Solution, idx *evaluator.Indices, rnd *rng.Source, attempts int) bool {
	period := idx.WitRoomTypePeriod
	room := idx.WitRoomTypeRoom
	if period < 0 {
		return false
	}
	src := s.At(period, room)
	if src == model.Empty {
		return false
	}
	course := &p.Courses[src]

	resolves := func(tp, tr int) bool { return p.Rooms[tr].RoomType == course.RequiredRoomType }
	swapBeneficial := func(tp, tr, other int) bool {
		return p.Rooms[tr].RoomType == course.RequiredRoomType && p.Rooms[room].RoomType == p.Courses[other].RequiredRoomType
	}
	sameKind := func(tp, tr, other int) bool { return p.Rooms[tr].RoomType != p.Courses[other].RequiredRoomType }
	weakened := func(tp, tr, other int) bool { return true }

	return ladder(p, s, rnd, attempts, period, room, src, resolves, swapBeneficial, sameKind, weakened)
}

// fixSameDayDuplicate resolves the R11 witness: a course scheduled
// more than once on the same day.
func fixSameDayDuplicate(p *model.Problem, s *model.Solution, idx *evaluator.Indices, rnd *rng.Source, attempts int) bool {
	course := idx.WitDupCourse
	day := idx.WitDupDay
	if course < 0 {
		return false
	}
	period, room := findOccurrenceOnDay(p, s, course, day)
	if period < 0 {
		return false
	}
	src := s.At(period, room)

	resolves := func(tp, tr int) bool { return p.DayOf(tp) != day }
	swapBeneficial := func(tp, tr, other int) bool {
		return p.DayOf(tp) != day && other != course && idx.R11(day, other) == 0
	}
	sameKind := func(tp, tr, other int) bool {
		return idx.R11(p.DayOf(tp), other) > 1
	}
	weakened := func(tp, tr, other int) bool { return true }

	return ladder(p, s, rnd, attempts, period, room, src, resolves, swapBeneficial, sameKind, weakened)
}

func findCourseByTeacher(p *model.Problem, s *model.Solution, period, teacher int) int {
	for room := 0; room < p.NumRooms(); room++ {
		c := s.At(period, room)
		if c != model.Empty && p.Courses[c].TeacherID == teacher {
			return room
		}
	}
	return -1
}

func findCourseByCurriculum(p *model.Problem, s *model.Solution, period, curric int) int {
	for room := 0; room < p.NumRooms(); room++ {
		c := s.At(period, room)
		if c == model.Empty {
			continue
		}
		if courseHasCurriculum(&p.Courses[c], curric) {
			return room
		}
	}
	return -1
}

func findStrayOccurrence(p *model.Problem, s *model.Solution, course, home int) (period, room int) {
	for period = 0; period < p.TotalPeriods; period++ {
		for room = 0; room < p.NumRooms(); room++ {
			if s.At(period, room) == course && room != home {
				return period, room
			}
		}
	}
	return -1, -1
}

func findOccurrenceOnDay(p *model.Problem, s *model.Solution, course, day int) (period, room int) {
	for pod := 0; pod < p.PeriodsPerDay; pod++ {
		pp := day*p.PeriodsPerDay + pod
		for room = 0; room < p.NumRooms(); room++ {
			if s.At(pp, room) == course {
				return pp, room
			}
		}
	}
	return -1, -1
}

// findMovableLecture picks a lecture of teacher on the day with the
// fewest of the teacher's lectures, the most promising one to relocate
// to an already-used day.
func findMovableLecture(p *model.Problem, s *model.Solution, idx *evaluator.Indices, teacher int) (period, room, day int) {
	bestDay, bestCount := -1, -1
	for d := 0; d < p.Days; d++ {
		if !idx.R9(teacher, d) {
			continue
		}
		count := 0
		for pod := 0; pod < p.PeriodsPerDay; pod++ {
			pp := d*p.PeriodsPerDay + pod
			for r := 0; r < p.NumRooms(); r++ {
				if c := s.At(pp, r); c != model.Empty && p.Courses[c].TeacherID == teacher {
					count++
				}
			}
		}
		if count > 0 && (bestDay < 0 || count < bestCount) {
			bestDay, bestCount = d, count
		}
	}
	if bestDay < 0 {
		return -1, -1, -1
	}
	for pod := 0; pod < p.PeriodsPerDay; pod++ {
		pp := bestDay*p.PeriodsPerDay + pod
		for r := 0; r < p.NumRooms(); r++ {
			if c := s.At(pp, r); c != model.Empty && p.Courses[c].TeacherID == teacher {
				return pp, r, bestDay
			}
		}
	}
	return -1, -1, -1
}
