// Package instance parses the ITC-like instance text format into an
// immutable model.Problem: line-oriented, keyword-dispatched, one
// error aborts the whole read.
package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cbctt/uctp/internal/model"
	"github.com/cbctt/uctp/internal/uctperr"
)

type rawCourse struct {
	name             string
	teacherName      string
	lectureCount     int
	minDays          int
	studentCount     int
	requiredRoomType string
}

type rawRoom struct {
	name     string
	capacity int
	roomType string
}

type rawCurriculum struct {
	name      string
	courseRefs []string
}

type rawUnavail struct {
	courseName string
	day        int
	period     int
}

// ParseFile opens path and parses it as an instance file.
func ParseFile(path string, log *zap.SugaredLogger) (*model.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, uctperr.Input(fmt.Sprintf("opening instance file %q", path), err)
	}
	defer f.Close()
	return Parse(f, log)
}

// Parse reads an ITC-like instance from r and builds a model.Problem.
func Parse(r io.Reader, log *zap.SugaredLogger) (*model.Problem, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		nCourses, nRooms, days, periodsPerDay, nCurricula, nUnavail int
		courses                                                     []rawCourse
		rooms                                                       []rawRoom
		curricula                                                   []rawCurriculum
		unavail                                                     []rawUnavail
		instanceName                                                string
	)

	lineNo := 0
	nextLine := func() ([]string, bool) {
		for scanner.Scan() {
			lineNo++
			fields := strings.Fields(scanner.Text())
			if len(fields) == 0 {
				continue
			}
			return fields, true
		}
		return nil, false
	}

	for {
		fields, ok := nextLine()
		if !ok {
			break
		}
		switch fields[0] {
		case "Name:":
			instanceName = strings.Join(fields[1:], " ")
		case "Courses:":
			nCourses, _ = strconv.Atoi(fields[1])
		case "Rooms:":
			nRooms, _ = strconv.Atoi(fields[1])
		case "Days:":
			days, _ = strconv.Atoi(fields[1])
		case "Periods_per_day:":
			periodsPerDay, _ = strconv.Atoi(fields[1])
		case "Curricula:":
			nCurricula, _ = strconv.Atoi(fields[1])
		case "Constraints:":
			nUnavail, _ = strconv.Atoi(fields[1])

		case "COURSES:":
			for i := 0; i < nCourses; i++ {
				f, ok := nextLine()
				if !ok || len(f) < 6 {
					return nil, uctperr.Input(fmt.Sprintf("line %d: malformed COURSES entry", lineNo), nil)
				}
				lectures, err1 := strconv.Atoi(f[2])
				minDays, err2 := strconv.Atoi(f[3])
				students, err3 := strconv.Atoi(f[4])
				if err1 != nil || err2 != nil || err3 != nil {
					return nil, uctperr.Input(fmt.Sprintf("line %d: non-numeric field in COURSES entry", lineNo), nil)
				}
				courses = append(courses, rawCourse{
					name:             f[0],
					teacherName:      f[1],
					lectureCount:     lectures,
					minDays:          minDays,
					studentCount:     students,
					requiredRoomType: f[5],
				})
			}

		case "ROOMS:":
			for i := 0; i < nRooms; i++ {
				f, ok := nextLine()
				if !ok || len(f) < 3 {
					return nil, uctperr.Input(fmt.Sprintf("line %d: malformed ROOMS entry", lineNo), nil)
				}
				capacity, err := strconv.Atoi(f[1])
				if err != nil {
					return nil, uctperr.Input(fmt.Sprintf("line %d: non-numeric room capacity", lineNo), err)
				}
				rooms = append(rooms, rawRoom{name: f[0], capacity: capacity, roomType: f[2]})
			}

		case "CURRICULA:":
			for i := 0; i < nCurricula; i++ {
				f, ok := nextLine()
				if !ok || len(f) < 2 {
					return nil, uctperr.Input(fmt.Sprintf("line %d: malformed CURRICULA entry", lineNo), nil)
				}
				m, err := strconv.Atoi(f[1])
				if err != nil {
					return nil, uctperr.Input(fmt.Sprintf("line %d: non-numeric curriculum size", lineNo), err)
				}
				if len(f) < 2+m {
					return nil, uctperr.Input(fmt.Sprintf("line %d: curriculum lists fewer courses than declared", lineNo), nil)
				}
				curricula = append(curricula, rawCurriculum{name: f[0], courseRefs: append([]string(nil), f[2:2+m]...)})
			}

		case "UNAVAILABILITY_CONSTRAINTS:":
			for i := 0; i < nUnavail; i++ {
				f, ok := nextLine()
				if !ok || len(f) < 3 {
					return nil, uctperr.Input(fmt.Sprintf("line %d: malformed UNAVAILABILITY_CONSTRAINTS entry", lineNo), nil)
				}
				day, err1 := strconv.Atoi(f[1])
				period, err2 := strconv.Atoi(f[2])
				if err1 != nil || err2 != nil {
					return nil, uctperr.Input(fmt.Sprintf("line %d: non-numeric day/period", lineNo), nil)
				}
				unavail = append(unavail, rawUnavail{courseName: f[0], day: day, period: period})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, uctperr.Input("scanning instance file", err)
	}

	return build(instanceName, days, periodsPerDay, courses, rooms, curricula, unavail, log)
}

func build(name string, days, periodsPerDay int, rawCourses []rawCourse, rawRooms []rawRoom, rawCurricula []rawCurriculum, rawUnavail []rawUnavail, log *zap.SugaredLogger) (*model.Problem, error) {
	teacherID := make(map[string]int)
	var teachers []model.Teacher
	roomTypeID := make(map[string]int)
	internRoomType := func(label string) int {
		if id, ok := roomTypeID[label]; ok {
			return id
		}
		id := len(roomTypeID)
		roomTypeID[label] = id
		return id
	}

	courseID := make(map[string]int)
	courses := make([]model.Course, 0, len(rawCourses))
	for _, rc := range rawCourses {
		tid, ok := teacherID[rc.teacherName]
		if !ok {
			tid = len(teachers)
			teacherID[rc.teacherName] = tid
			teachers = append(teachers, model.Teacher{Name: rc.teacherName})
		}
		courseID[rc.name] = len(courses)
		courses = append(courses, model.Course{
			Name:             rc.name,
			TeacherID:        tid,
			LectureCount:     rc.lectureCount,
			MinDays:          rc.minDays,
			StudentCount:     rc.studentCount,
			RequiredRoomType: internRoomType(rc.requiredRoomType),
		})
	}

	rooms := make([]model.Room, 0, len(rawRooms))
	for _, rr := range rawRooms {
		rooms = append(rooms, model.Room{
			Name:     rr.name,
			Capacity: rr.capacity,
			RoomType: internRoomType(rr.roomType),
		})
	}

	curricula := make([]model.Curriculum, 0, len(rawCurricula))
	for ci, rc := range rawCurricula {
		ids := make([]int, 0, len(rc.courseRefs))
		for _, ref := range rc.courseRefs {
			cid, ok := courseID[ref]
			if !ok {
				return nil, uctperr.Input(fmt.Sprintf("curriculum %q references unknown course %q", rc.name, ref), nil)
			}
			ids = append(ids, cid)
			courses[cid].Curricula = append(courses[cid].Curricula, ci)
		}
		curricula = append(curricula, model.Curriculum{Name: rc.name, CourseIDs: ids})
	}

	var unavailTriples [][3]int
	for _, ru := range rawUnavail {
		cid, ok := courseID[ru.courseName]
		if !ok {
			return nil, uctperr.Input(fmt.Sprintf("unavailability references unknown course %q", ru.courseName), nil)
		}
		if ru.day < 0 || ru.day >= days || ru.period < 0 || ru.period >= periodsPerDay {
			return nil, uctperr.Input(fmt.Sprintf("unavailability for %q has out-of-range day/period (%d,%d)", ru.courseName, ru.day, ru.period), nil)
		}
		unavailTriples = append(unavailTriples, [3]int{cid, ru.day, ru.period})
	}

	problem := model.New(days, periodsPerDay, rooms, teachers, courses, curricula, unavailTriples)
	logSummary(log, name, problem)
	return problem, nil
}

// logSummary emits a one-line instance summary plus warnings (never
// errors) for curricula whose courses have no feasible room-type
// match.
func logSummary(log *zap.SugaredLogger, name string, p *model.Problem) {
	var demand int64
	for _, c := range p.Courses {
		demand += int64(c.LectureCount)
	}
	capacity := int64(p.TotalPeriods) * int64(p.NumRooms())
	log.Infow("parsed instance",
		"name", name,
		"courses", p.NumCourses(),
		"rooms", p.NumRooms(),
		"teachers", p.NumTeachers(),
		"curricula", p.NumCurricula(),
		"days", p.Days,
		"periods_per_day", p.PeriodsPerDay,
		"lecture_seats_demanded", demand,
		"grid_capacity", capacity,
	)

	for _, cur := range p.Curricula {
		feasible := false
		for _, cid := range cur.CourseIDs {
			required := p.Courses[cid].RequiredRoomType
			for _, r := range p.Rooms {
				if r.RoomType == required {
					feasible = true
					break
				}
			}
			if feasible {
				break
			}
		}
		if !feasible && len(cur.CourseIDs) > 0 {
			log.Warnw("curriculum has no feasible room-type match for any member course", "curriculum", cur.Name)
		}
	}
}
