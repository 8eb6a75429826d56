package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProblem() *Problem {
	rooms := []Room{{Name: "R1", Capacity: 30, RoomType: 0}, {Name: "R2", Capacity: 20, RoomType: 1}}
	teachers := []Teacher{{Name: "Ann"}, {Name: "Bob"}}
	courses := []Course{
		{Name: "C1", TeacherID: 0, LectureCount: 2, MinDays: 2, StudentCount: 25, RequiredRoomType: 0, Curricula: []int{0}},
		{Name: "C2", TeacherID: 1, LectureCount: 1, MinDays: 1, StudentCount: 10, RequiredRoomType: 1, Curricula: []int{0}},
	}
	curricula := []Curriculum{{Name: "K1", CourseIDs: []int{0, 1}}}
	unavail := [][3]int{{0, 0, 0}}
	return New(2, 3, rooms, teachers, courses, curricula, unavail)
}

func TestPeriodRoundTrip(t *testing.T) {
	p := sampleProblem()
	for day := 0; day < p.Days; day++ {
		for pod := 0; pod < p.PeriodsPerDay; pod++ {
			period := p.Period(day, pod)
			assert.Equal(t, day, p.DayOf(period))
			assert.Equal(t, pod, p.PeriodOf(period))
		}
	}
}

func TestIsUnavailable(t *testing.T) {
	p := sampleProblem()
	assert.True(t, p.IsUnavailable(0, p.Period(0, 0)))
	assert.False(t, p.IsUnavailable(0, p.Period(0, 1)))
	assert.False(t, p.IsUnavailable(1, p.Period(0, 0)))
}

func TestCounts(t *testing.T) {
	p := sampleProblem()
	require.Equal(t, 2, p.NumRooms())
	require.Equal(t, 2, p.NumTeachers())
	require.Equal(t, 2, p.NumCourses())
	require.Equal(t, 1, p.NumCurricula())
	assert.Equal(t, 6, p.TotalPeriods)
}
