package instance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInstance = `Name: toy
Courses: 2
Rooms: 2
Days: 2
Periods_per_day: 3
Curricula: 1
Constraints: 1
COURSES:
c1 ann 2 1 20 lab
c2 bob 1 1 10 normal
ROOMS:
r1 25 lab
r2 15 normal
CURRICULA:
k1 2 c1 c2
UNAVAILABILITY_CONSTRAINTS:
c1 0 0
`

func TestParseBasicInstance(t *testing.T) {
	p, err := Parse(strings.NewReader(sampleInstance), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Days)
	assert.Equal(t, 3, p.PeriodsPerDay)
	assert.Equal(t, 2, p.NumCourses())
	assert.Equal(t, 2, p.NumRooms())
	assert.Equal(t, 2, p.NumTeachers())
	assert.Equal(t, 1, p.NumCurricula())

	assert.True(t, p.IsUnavailable(0, p.Period(0, 0)))
	assert.False(t, p.IsUnavailable(0, p.Period(0, 1)))

	assert.Equal(t, []int{0}, p.Courses[0].Curricula)
	assert.Equal(t, []int{0}, p.Courses[1].Curricula)

	// "lab" is interned first, "normal" second.
	assert.Equal(t, 0, p.Courses[0].RequiredRoomType)
	assert.Equal(t, 1, p.Courses[1].RequiredRoomType)
	assert.Equal(t, 0, p.Rooms[0].RoomType)
	assert.Equal(t, 1, p.Rooms[1].RoomType)
}

func TestParseUnknownCurriculumCourseFails(t *testing.T) {
	broken := strings.Replace(sampleInstance, "k1 2 c1 c2", "k1 2 c1 ghost", 1)
	_, err := Parse(strings.NewReader(broken), nil)
	assert.Error(t, err)
}

func TestParseOutOfRangeUnavailabilityFails(t *testing.T) {
	broken := strings.Replace(sampleInstance, "c1 0 0", "c1 9 9", 1)
	_, err := Parse(strings.NewReader(broken), nil)
	assert.Error(t, err)
}
