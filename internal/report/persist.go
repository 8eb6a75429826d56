package report

import (
	"encoding/json"
	"os"

	"github.com/cbctt/uctp/internal/model"
)

// solutionFile is the on-disk JSON shape for a persisted Solution.
// Writes go through a tmp-then-rename idiom for atomic replacement.
type solutionFile struct {
	Rooms int   `json:"rooms"`
	Grid  []int `json:"grid"`
	FO    int64 `json:"fo"`
}

// SaveSolution writes s to path as JSON, replacing any existing file
// atomically via a temp-file rename.
func SaveSolution(path string, s *model.Solution) error {
	payload := solutionFile{Rooms: s.Rooms(), Grid: s.Grid, FO: s.FO}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSolution reads a Solution previously written by SaveSolution.
func LoadSolution(path string) (*model.Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payload solutionFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return model.FromGrid(payload.Grid, payload.FO, payload.Rooms), nil
}

// SaveTeacherDays persists a phase-1 teacher-day occupancy bitmap so a
// later, separate `phase` invocation can seed R9 without re-running
// phase 1, decoupled from the `run` command's in-process composition.
func SaveTeacherDays(path string, bitmap [][]int8) error {
	data, err := json.Marshal(bitmap)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadTeacherDays reads a bitmap previously written by SaveTeacherDays.
func LoadTeacherDays(path string) ([][]int8, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bitmap [][]int8
	if err := json.Unmarshal(data, &bitmap); err != nil {
		return nil, err
	}
	return bitmap, nil
}
