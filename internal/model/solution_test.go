package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolutionSetAt(t *testing.T) {
	p := sampleProblem()
	s := NewEmpty(p)
	assert.Equal(t, Empty, s.At(0, 0))

	s.Set(0, 0, 1)
	assert.Equal(t, 1, s.At(0, 0))
}

func TestSwapIsInvolution(t *testing.T) {
	p := sampleProblem()
	s := NewEmpty(p)
	s.Set(0, 0, 1)
	s.Set(1, 1, 0)

	before := append([]int(nil), s.Grid...)
	s.Swap(0, 0, 1, 1)
	s.Swap(0, 0, 1, 1)
	assert.Equal(t, before, s.Grid)
}

func TestCopyIntoIsDeep(t *testing.T) {
	p := sampleProblem()
	src := NewEmpty(p)
	src.Set(0, 0, 1)
	src.FO = 42

	dst := NewEmpty(p)
	CopyInto(dst, src)
	assert.Equal(t, src.Grid, dst.Grid)
	assert.Equal(t, src.FO, dst.FO)

	dst.Set(0, 0, Empty)
	assert.NotEqual(t, dst.Grid, src.Grid)
}

func TestCloneIndependence(t *testing.T) {
	p := sampleProblem()
	src := NewEmpty(p)
	src.Set(0, 0, 1)

	clone := Clone(src)
	clone.Set(0, 0, Empty)
	assert.Equal(t, 1, src.At(0, 0))
	assert.Equal(t, Empty, clone.At(0, 0))
}

func TestFromGridRoundTrip(t *testing.T) {
	p := sampleProblem()
	s := NewEmpty(p)
	s.Set(0, 0, 1)
	s.FO = 7

	rebuilt := FromGrid(s.Grid, s.FO, s.Rooms())
	assert.Equal(t, s.Grid, rebuilt.Grid)
	assert.Equal(t, s.FO, rebuilt.FO)
	assert.Equal(t, 1, rebuilt.At(0, 0))
}
