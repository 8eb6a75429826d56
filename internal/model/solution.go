package model

// Solution is the mutable timetable grid: TotalPeriods rows by R
// columns, each cell either Empty or a course id. FO is only valid
// after an evaluator pass.
type Solution struct {
	Grid []int
	FO   int64

	rooms int
}

// NewEmpty allocates a grid sized from problem, filled with Empty.
func NewEmpty(p *Problem) *Solution {
	s := &Solution{
		Grid:  make([]int, p.TotalPeriods*p.NumRooms()),
		rooms: p.NumRooms(),
	}
	for i := range s.Grid {
		s.Grid[i] = Empty
	}
	return s
}

// FromGrid reconstructs a Solution from an already-flattened grid, FO
// and room count, as report.LoadSolution needs when deserializing a
// persisted run.
func FromGrid(grid []int, fo int64, rooms int) *Solution {
	return &Solution{Grid: grid, FO: fo, rooms: rooms}
}

// At returns the course id placed at (period, room), or Empty.
func (s *Solution) At(period, room int) int {
	return s.Grid[period*s.rooms+room]
}

// Set places course (or Empty) at (period, room).
func (s *Solution) Set(period, room, course int) {
	s.Grid[period*s.rooms+room] = course
}

// Rooms reports the number of room columns in the grid.
func (s *Solution) Rooms() int { return s.rooms }

// CopyInto performs a deep element-wise copy: dst ends up
// bit-identical to src, including FO.
func CopyInto(dst, src *Solution) {
	if cap(dst.Grid) < len(src.Grid) {
		dst.Grid = make([]int, len(src.Grid))
	} else {
		dst.Grid = dst.Grid[:len(src.Grid)]
	}
	copy(dst.Grid, src.Grid)
	dst.FO = src.FO
	dst.rooms = src.rooms
}

// Clone returns an independent deep copy of s.
func Clone(s *Solution) *Solution {
	dst := &Solution{Grid: make([]int, len(s.Grid)), FO: s.FO, rooms: s.rooms}
	copy(dst.Grid, s.Grid)
	return dst
}

// Swap exchanges the contents of two cells. Two swaps of the same
// pair restore the grid bit-exactly.
func (s *Solution) Swap(periodA, roomA, periodB, roomB int) {
	ia := periodA*s.rooms + roomA
	ib := periodB*s.rooms + roomB
	s.Grid[ia], s.Grid[ib] = s.Grid[ib], s.Grid[ia]
}
