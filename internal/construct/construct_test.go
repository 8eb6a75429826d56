package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbctt/uctp/internal/model"
	"github.com/cbctt/uctp/internal/rng"
)

func sampleProblem() *model.Problem {
	rooms := []model.Room{
		{Name: "R1", Capacity: 30, RoomType: 0},
		{Name: "R2", Capacity: 20, RoomType: 1},
	}
	teachers := []model.Teacher{{Name: "Ann"}, {Name: "Bob"}}
	courses := []model.Course{
		{Name: "C1", TeacherID: 0, LectureCount: 2, MinDays: 2, StudentCount: 25, RequiredRoomType: 0, Curricula: []int{0}},
		{Name: "C2", TeacherID: 1, LectureCount: 3, MinDays: 1, StudentCount: 10, RequiredRoomType: 1, Curricula: []int{0}},
	}
	curricula := []model.Curriculum{{Name: "K1", CourseIDs: []int{0, 1}}}
	return model.New(2, 3, rooms, teachers, courses, curricula, nil)
}

func TestConstructPlacesEveryLecture(t *testing.T) {
	p := sampleProblem()
	rnd := rng.New(1)
	s := Construct(p, rnd)

	counts := make([]int, p.NumCourses())
	for period := 0; period < p.TotalPeriods; period++ {
		for room := 0; room < p.NumRooms(); room++ {
			if c := s.At(period, room); c != model.Empty {
				counts[c]++
			}
		}
	}
	for c, course := range p.Courses {
		assert.Equal(t, course.LectureCount, counts[c], "course %s", course.Name)
	}
}

func TestConstructDeterministicWithSameSeed(t *testing.T) {
	p := sampleProblem()
	s1 := Construct(p, rng.New(42))
	s2 := Construct(p, rng.New(42))
	assert.Equal(t, s1.Grid, s2.Grid)
}
