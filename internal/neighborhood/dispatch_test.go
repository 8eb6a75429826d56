package neighborhood

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbctt/uctp/internal/evaluator"
	"github.com/cbctt/uctp/internal/model"
	"github.com/cbctt/uctp/internal/rng"
)

func sampleProblem() *model.Problem {
	rooms := []model.Room{
		{Name: "R1", Capacity: 30, RoomType: 0},
		{Name: "R2", Capacity: 30, RoomType: 0},
		{Name: "R3", Capacity: 30, RoomType: 0},
	}
	teachers := []model.Teacher{{Name: "Ann"}, {Name: "Bob"}}
	courses := []model.Course{
		{Name: "C1", TeacherID: 0, LectureCount: 1, MinDays: 1, StudentCount: 10, RequiredRoomType: 0, Curricula: []int{0}},
		{Name: "C2", TeacherID: 0, LectureCount: 1, MinDays: 1, StudentCount: 10, RequiredRoomType: 0, Curricula: []int{0}},
	}
	curricula := []model.Curriculum{{Name: "K1", CourseIDs: []int{0, 1}}}
	return model.New(3, 4, rooms, teachers, courses, curricula, nil)
}

func TestMutateNeverPanics(t *testing.T) {
	p := sampleProblem()
	s := model.NewEmpty(p)
	s.Set(0, 0, 0)
	s.Set(0, 1, 1)

	idx := evaluator.NewIndices(p)
	eval := evaluator.New(p)
	eval.Evaluate(s)

	rnd := rng.New(7)
	assert.NotPanics(t, func() {
		for i := 0; i < 200; i++ {
			Mutate(p, s, eval.Indices, rnd, 500)
			eval.Evaluate(s)
		}
	})
	_ = idx
}

func TestRandomSwapSamePeriodPreservesCourseSet(t *testing.T) {
	p := sampleProblem()
	s := model.NewEmpty(p)
	s.Set(0, 0, 0)
	s.Set(0, 1, 1)

	before := map[int]int{}
	for _, c := range s.Grid {
		before[c]++
	}

	rnd := rng.New(3)
	randomSwapSamePeriod(p, s, rnd, 5)

	after := map[int]int{}
	for _, c := range s.Grid {
		after[c]++
	}
	assert.Equal(t, before, after)
}
