package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbctt/uctp/internal/evaluator"
	"github.com/cbctt/uctp/internal/model"
)

func sampleProblem() *model.Problem {
	rooms := []model.Room{{Name: "R1", Capacity: 10, RoomType: 0}}
	teachers := []model.Teacher{{Name: "Ann"}}
	courses := []model.Course{{Name: "C1", TeacherID: 0, LectureCount: 1, StudentCount: 5, RequiredRoomType: 0}}
	return model.New(1, 2, rooms, teachers, courses, nil, nil)
}

func TestWriteProducesNonEmptyReport(t *testing.T) {
	p := sampleProblem()
	s := model.NewEmpty(p)
	s.Set(0, 0, 0)

	eval := evaluator.New(p)
	eval.Evaluate(s)

	r := New(p, s, eval.Indices, nil, 0)
	require.NotEmpty(t, r.RunID)

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	out := buf.String()
	assert.Contains(t, out, r.RunID)
	assert.Contains(t, out, "violations:")
	assert.Contains(t, out, "schedule:")
}

func TestSaveLoadSolutionRoundTrip(t *testing.T) {
	p := sampleProblem()
	s := model.NewEmpty(p)
	s.Set(0, 0, 0)
	s.FO = 17

	path := filepath.Join(t.TempDir(), "solution.json")
	require.NoError(t, SaveSolution(path, s))

	loaded, err := LoadSolution(path)
	require.NoError(t, err)
	assert.Equal(t, s.Grid, loaded.Grid)
	assert.Equal(t, s.FO, loaded.FO)
}

func TestSaveLoadTeacherDaysRoundTrip(t *testing.T) {
	bitmap := [][]int8{{1, 0}, {0, 1}}
	path := filepath.Join(t.TempDir(), "teacherdays.json")
	require.NoError(t, SaveTeacherDays(path, bitmap))

	loaded, err := LoadTeacherDays(path)
	require.NoError(t, err)
	assert.Equal(t, bitmap, loaded)

	_, err = os.Stat(path)
	require.NoError(t, err)
}
