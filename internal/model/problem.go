// Package model holds the immutable Problem instance and the mutable
// Solution grid that the evaluator, neighborhood generator and SA
// driver operate on.
package model

// Empty marks a grid cell that holds no course.
const Empty = -1

// Room is one schedulable room.
type Room struct {
	Name     string
	Capacity int
	RoomType int
}

// Teacher is interned from the teacher column of COURSES in first-seen
// order; its position in Problem.Teachers is its stable id.
type Teacher struct {
	Name string
}

// Course is one course requiring LectureCount lectures.
type Course struct {
	Name             string
	TeacherID        int
	LectureCount     int
	MinDays          int
	StudentCount     int
	RequiredRoomType int
	// Curricula holds the ids of every curriculum that contains this
	// course, sorted ascending.
	Curricula []int
}

// Curriculum is a named set of courses whose lectures must not collide.
type Curriculum struct {
	Name      string
	CourseIDs []int
}

type unavailSlot struct {
	Day    int
	Period int
}

// Problem is immutable for the life of one phase; every field is
// shared read-only by the evaluator, constructor and neighborhood
// generator.
type Problem struct {
	Days          int
	PeriodsPerDay int
	TotalPeriods  int

	Rooms      []Room
	Teachers   []Teacher
	Courses    []Course
	Curricula  []Curriculum

	// unavail holds every unavailability triple, grouped by course id
	// in input order within a course. unavRange[c] gives the contiguous [lo, hi)
	// slice of unavail belonging to course c; an empty range has
	// lo == hi.
	unavail    []unavailSlot
	unavRange  [][2]int
}

// New builds a Problem from already-parsed components, deriving a
// per-course unavailability range index.
//
// unavailability must be supplied as (courseID, day, periodOfDay)
// triples in any order; New groups and sorts them by course.
func New(days, periodsPerDay int, rooms []Room, teachers []Teacher, courses []Course, curricula []Curriculum, unavailability [][3]int) *Problem {
	p := &Problem{
		Days:          days,
		PeriodsPerDay: periodsPerDay,
		TotalPeriods:  days * periodsPerDay,
		Rooms:         rooms,
		Teachers:      teachers,
		Courses:       courses,
		Curricula:     curricula,
	}

	byCourse := make([][]unavailSlot, len(courses))
	for _, triple := range unavailability {
		c, d, pr := triple[0], triple[1], triple[2]
		byCourse[c] = append(byCourse[c], unavailSlot{Day: d, Period: pr})
	}

	p.unavRange = make([][2]int, len(courses))
	for c := range courses {
		lo := len(p.unavail)
		p.unavail = append(p.unavail, byCourse[c]...)
		hi := len(p.unavail)
		p.unavRange[c] = [2]int{lo, hi}
	}

	return p
}

// Period flattens a (day, periodOfDay) pair.
func (p *Problem) Period(day, periodOfDay int) int {
	return day*p.PeriodsPerDay + periodOfDay
}

// DayOf and PeriodOf invert Period.
func (p *Problem) DayOf(period int) int    { return period / p.PeriodsPerDay }
func (p *Problem) PeriodOf(period int) int { return period % p.PeriodsPerDay }

// IsUnavailable reports whether course c is forbidden at the given
// flattened period.
func (p *Problem) IsUnavailable(c, period int) bool {
	rg := p.unavRange[c]
	if rg[0] == rg[1] {
		return false
	}
	day, pod := p.DayOf(period), p.PeriodOf(period)
	for _, slot := range p.unavail[rg[0]:rg[1]] {
		if slot.Day == day && slot.Period == pod {
			return true
		}
	}
	return false
}

// NumRooms, NumTeachers, NumCourses, NumCurricula are convenience
// accessors used throughout the evaluator and neighborhood packages.
func (p *Problem) NumRooms() int      { return len(p.Rooms) }
func (p *Problem) NumTeachers() int   { return len(p.Teachers) }
func (p *Problem) NumCourses() int    { return len(p.Courses) }
func (p *Problem) NumCurricula() int  { return len(p.Curricula) }
