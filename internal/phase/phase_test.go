package phase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbctt/uctp/internal/model"
)

func TestTeacherDaysMarksOccupiedDays(t *testing.T) {
	rooms := []model.Room{{Name: "R1", Capacity: 10, RoomType: 0}}
	teachers := []model.Teacher{{Name: "Ann"}, {Name: "Bob"}}
	courses := []model.Course{
		{Name: "C1", TeacherID: 0, LectureCount: 1, StudentCount: 5, RequiredRoomType: 0},
		{Name: "C2", TeacherID: 1, LectureCount: 1, StudentCount: 5, RequiredRoomType: 0},
	}
	p := model.New(2, 2, rooms, teachers, courses, nil, nil)

	s := model.NewEmpty(p)
	s.Set(p.Period(0, 0), 0, 0)
	s.Set(p.Period(1, 1), 0, 1)

	bitmap := TeacherDays(p, s)
	assert.Equal(t, []int8{1, 0}, bitmap[0])
	assert.Equal(t, []int8{0, 1}, bitmap[1])
}
