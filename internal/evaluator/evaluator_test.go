package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbctt/uctp/internal/model"
)

func sampleProblem() *model.Problem {
	rooms := []model.Room{
		{Name: "R1", Capacity: 30, RoomType: 0},
		{Name: "R2", Capacity: 20, RoomType: 1},
	}
	teachers := []model.Teacher{{Name: "Ann"}, {Name: "Bob"}}
	courses := []model.Course{
		{Name: "C1", TeacherID: 0, LectureCount: 2, MinDays: 2, StudentCount: 25, RequiredRoomType: 0, Curricula: []int{0}},
		{Name: "C2", TeacherID: 1, LectureCount: 1, MinDays: 1, StudentCount: 10, RequiredRoomType: 1, Curricula: []int{0}},
	}
	curricula := []model.Curriculum{{Name: "K1", CourseIDs: []int{0, 1}}}
	return model.New(2, 3, rooms, teachers, courses, curricula, nil)
}

func TestEvaluateDeterministic(t *testing.T) {
	p := sampleProblem()
	s := model.NewEmpty(p)
	s.Set(0, 0, 0)
	s.Set(1, 0, 0)
	s.Set(0, 1, 1)

	e := New(p)
	fo1 := e.Evaluate(s)
	fo2 := e.Evaluate(s)
	assert.Equal(t, fo1, fo2)
}

func TestEvaluateRoomTypeViolation(t *testing.T) {
	p := sampleProblem()
	s := model.NewEmpty(p)
	// Course 0 requires RoomType 0; placing it in room 1 (type 1)
	// should trigger the hard R10 penalty.
	s.Set(0, 1, 0)

	e := New(p)
	e.Evaluate(s)
	assert.NotEqual(t, NoViolation, e.Indices.Violations[R10])
}

func TestEvaluateCapacityOverflow(t *testing.T) {
	p := sampleProblem()
	s := model.NewEmpty(p)
	// Course 0 needs 25 seats; room 1 only has 20. Give course 0 room
	// 1's type so the room type matches and capacity is exercised.
	p.Courses[0].RequiredRoomType = p.Rooms[1].RoomType
	s.Set(0, 1, 0)

	e := New(p)
	e.Evaluate(s)
	require.NotEqual(t, NoViolation, e.Indices.Violations[R7])
	assert.Equal(t, int64(5), e.Indices.R7ExcessSum)
}

func TestComposeDecomposeR2(t *testing.T) {
	v := composeR2(3, 7)
	teacherTotal, curricTotal := DecomposeR2(v)
	assert.Equal(t, int64(3), teacherTotal)
	assert.Equal(t, int64(7), curricTotal)
}

func TestPackUnpack(t *testing.T) {
	totalPeriods := 6
	packed := Pack(4, 2, totalPeriods)
	period, room := Unpack(packed, totalPeriods)
	assert.Equal(t, 4, period)
	assert.Equal(t, 2, room)
}

func TestSeedR9Inherited(t *testing.T) {
	p := sampleProblem()
	e := New(p)
	e.SeedR9([][]int8{{1, 0}, {0, 0}})

	s := model.NewEmpty(p)
	e.Evaluate(s)
	assert.True(t, e.Indices.R9(0, 0))
}
