package neighborhood

import (
	"github.com/cbctt/uctp/internal/evaluator"
	"github.com/cbctt/uctp/internal/model"
	"github.com/cbctt/uctp/internal/rng"
)

// Mutate draws a move class uniformly from [0, 1000] and dispatches
// to the first class in the cascade whose window contains the draw
// and whose guard holds. It requires idx to reflect the previous
// evaluation of s; it mutates s in place and returns it.
//
// When many violations of a kind exist, that class's window widens
// and it is picked more often — a violation-weighted roulette. Once
// every violations[] entry is clean, only the three random classes
// remain reachable, so the search shifts from intensification to
// diversification as feasibility is reached.
func Mutate(p *model.Problem, s *model.Solution, idx *evaluator.Indices, rnd *rng.Source, temperature float64) *model.Solution {
	attempts := attemptsFor(temperature)
	m := rnd.Intn(1001)

	if v2 := idx.Violations[evaluator.R2]; v2 != evaluator.NoViolation {
		if m < 100+int(v2%1000)*128 {
			if fixTeacherConflict(p, s, idx, rnd, attempts) {
				idx.Violations[evaluator.R2] = decrementR2(v2, true)
				return s
			}
		}
		if m < 100+int(v2)/8 {
			if fixCurriculumConflict(p, s, idx, rnd, attempts) {
				idx.Violations[evaluator.R2] = decrementR2(v2, false)
				return s
			}
		}
	}

	if v6 := idx.Violations[evaluator.R6]; v6 != evaluator.NoViolation {
		if m >= 100 && m < 200+2*int(v6) {
			if fixIsolation(p, s, idx, rnd, attempts) {
				clearWitness(idx, evaluator.R6)
				return s
			}
		}
	}

	if v7 := idx.Violations[evaluator.R7]; v7 != evaluator.NoViolation {
		if m >= 200 && m < 300+int(v7) {
			if fixCapacity(p, s, idx, rnd, attempts) {
				clearWitness(idx, evaluator.R7)
				return s
			}
		}
	}

	if v8 := idx.Violations[evaluator.R8]; v8 != evaluator.NoViolation {
		if m >= 300 && m < 400+int(v8) {
			if fixInstability(p, s, idx, rnd, attempts) {
				clearWitness(idx, evaluator.R8)
				return s
			}
		}
	}

	if v9 := idx.Violations[evaluator.R9]; v9 != evaluator.NoViolation {
		if m >= 400 && m < 500+20*int(v9) {
			if fixSpread(p, s, idx, rnd, attempts) {
				clearWitness(idx, evaluator.R9)
				return s
			}
		}
	}

	if v10 := idx.Violations[evaluator.R10]; v10 != evaluator.NoViolation {
		if m >= 500 && m < 600+int(v10) {
			if fixRoomType(p, s, idx, rnd, attempts) {
				clearWitness(idx, evaluator.R10)
				return s
			}
		}
	}

	if v11 := idx.Violations[evaluator.R11]; v11 != evaluator.NoViolation {
		if m >= 600 && m < 700+100*int(v11) {
			if fixSameDayDuplicate(p, s, idx, rnd, attempts) {
				clearWitness(idx, evaluator.R11)
				return s
			}
		}
	}

	switch {
	case m >= 700 && m < 800:
		randomSwapSamePeriod(p, s, rnd, attempts)
	case m >= 800 && m < 900:
		randomSwapSameRoom(p, s, rnd, attempts)
	default:
		randomSwapAnywhere(p, s, rnd, attempts)
	}
	return s
}

// decrementR2 optimistically reduces the composed violations[2]
// counter by one unit of whichever half the resolved move targeted;
// the next full evaluation reconciles the true value.
func decrementR2(v2 int64, teacher bool) int64 {
	teacherTotal, curricTotal := evaluator.DecomposeR2(v2)
	if teacher && teacherTotal > 0 {
		teacherTotal--
	} else if !teacher && curricTotal > 0 {
		curricTotal--
	}
	if teacherTotal == 0 && curricTotal == 0 {
		return evaluator.NoViolation
	}
	return teacherTotal + 1000*curricTotal
}

// clearWitness optimistically decrements the counter of a resolved
// violation kind. The witness coordinates themselves are
// left for the next Evaluate pass to repopulate; only the counter
// is adjusted here.
func clearWitness(idx *evaluator.Indices, id int) {
	if idx.Violations[id] > 1 {
		idx.Violations[id]--
	} else {
		idx.Violations[id] = evaluator.NoViolation
	}
}
