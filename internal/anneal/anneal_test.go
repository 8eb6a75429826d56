package anneal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbctt/uctp/internal/construct"
	"github.com/cbctt/uctp/internal/model"
	"github.com/cbctt/uctp/internal/rng"
)

func sampleProblem() *model.Problem {
	rooms := []model.Room{
		{Name: "R1", Capacity: 30, RoomType: 0},
		{Name: "R2", Capacity: 30, RoomType: 0},
	}
	teachers := []model.Teacher{{Name: "Ann"}, {Name: "Bob"}}
	courses := []model.Course{
		{Name: "C1", TeacherID: 0, LectureCount: 2, MinDays: 1, StudentCount: 10, RequiredRoomType: 0, Curricula: []int{0}},
		{Name: "C2", TeacherID: 1, LectureCount: 2, MinDays: 1, StudentCount: 10, RequiredRoomType: 0, Curricula: []int{0}},
	}
	curricula := []model.Curriculum{{Name: "K1", CourseIDs: []int{0, 1}}}
	return model.New(2, 2, rooms, teachers, courses, curricula, nil)
}

func TestCoolingParamsInRange(t *testing.T) {
	hiIter, hiAlpha := coolingParams(5000)
	loIter, loAlpha := coolingParams(0.01)
	assert.NotZero(t, hiIter)
	assert.NotZero(t, loIter)
	assert.Less(t, hiAlpha, 1.0)
	assert.Less(t, loAlpha, 1.0)
}

func TestAcceptanceProbabilityBounds(t *testing.T) {
	assert.Equal(t, 0.0, acceptanceProbability(10, 0))
	assert.InDelta(t, 1.0, acceptanceProbability(0, 100), 1e-9)
	assert.Less(t, acceptanceProbability(1000, 1), 0.5)
}

func TestRunProducesFeasibleLectureCounts(t *testing.T) {
	p := sampleProblem()
	engine := Build(p, 99, nil)
	initial := construct.Construct(p, rng.New(99))

	best := engine.Run(initial)
	require.NotNil(t, best)

	counts := make([]int, p.NumCourses())
	for _, c := range best.Grid {
		if c != model.Empty {
			counts[c]++
		}
	}
	for c, course := range p.Courses {
		assert.Equal(t, course.LectureCount, counts[c])
	}
}

func TestRunTracksBestNeverWorseThanInitial(t *testing.T) {
	p := sampleProblem()
	engine := Build(p, 123, nil)
	initial := construct.Construct(p, rng.New(123))
	initialFO := engine.Evaluator.Evaluate(initial)

	best := engine.Run(initial)
	assert.LessOrEqual(t, best.FO, initialFO)
}
