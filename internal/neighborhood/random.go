package neighborhood

import (
	"github.com/cbctt/uctp/internal/model"
	"github.com/cbctt/uctp/internal/rng"
)

// randomSwapSamePeriod repeats a bounded number of swaps between two
// rooms drawn from the same period, each requiring at least one
// non-empty cell to avoid a null swap.
func randomSwapSamePeriod(p *model.Problem, s *model.Solution, rnd *rng.Source, attempts int) {
	n := rnd.IntRange(1, attempts)
	for i := 0; i < n; i++ {
		if p.NumRooms() < 2 {
			return
		}
		period := rnd.Intn(p.TotalPeriods)
		roomA := rnd.Intn(p.NumRooms())
		roomB := rnd.Intn(p.NumRooms())
		if roomA == roomB || (s.At(period, roomA) == model.Empty && s.At(period, roomB) == model.Empty) {
			continue
		}
		s.Swap(period, roomA, period, roomB)
	}
}

// randomSwapSameRoom mirrors randomSwapSamePeriod across two periods
// in the same room.
func randomSwapSameRoom(p *model.Problem, s *model.Solution, rnd *rng.Source, attempts int) {
	n := rnd.IntRange(1, attempts)
	for i := 0; i < n; i++ {
		if p.TotalPeriods < 2 {
			return
		}
		room := rnd.Intn(p.NumRooms())
		periodA := rnd.Intn(p.TotalPeriods)
		periodB := rnd.Intn(p.TotalPeriods)
		if periodA == periodB || (s.At(periodA, room) == model.Empty && s.At(periodB, room) == model.Empty) {
			continue
		}
		s.Swap(periodA, room, periodB, room)
	}
}

// randomSwapAnywhere draws both cells independently from the whole
// grid.
func randomSwapAnywhere(p *model.Problem, s *model.Solution, rnd *rng.Source, attempts int) {
	n := rnd.IntRange(1, attempts*2)
	for i := 0; i < n; i++ {
		periodA, roomA := rnd.Intn(p.TotalPeriods), rnd.Intn(p.NumRooms())
		periodB, roomB := rnd.Intn(p.TotalPeriods), rnd.Intn(p.NumRooms())
		if (periodA == periodB && roomA == roomB) ||
			(s.At(periodA, roomA) == model.Empty && s.At(periodB, roomB) == model.Empty) {
			continue
		}
		s.Swap(periodA, roomA, periodB, roomB)
	}
}
