package index

import (
	"path/filepath"
	"testing"
)

func TestNewSolverStartsNotSolving(t *testing.T) {
	pool := NewThreadPool(2)
	s := NewSolver(pool, t.TempDir())
	if s.IsSolving() {
		t.Error("a freshly constructed Solver should not report IsSolving")
	}
}

// TestSolverInitializeAndSolve builds real pattern databases and solves a
// scrambled cube optimally end to end. Building Korf's four databases from
// scratch touches tens of millions of subspace cells, the same order of
// magnitude as a chess perft at moderate depth, so this is skipped in
// -short runs.
func TestSolverInitializeAndSolve(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full pattern-database construction in -short mode")
	}

	pool := NewThreadPool(4)
	dataDir := filepath.Join(t.TempDir(), "pdb")
	s := NewSolver(pool, dataDir)

	done := make(chan error, 1)
	s.Initialize(func(err error) { done <- err })
	if err := <-done; err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	cube := Solved()
	cube.MoveSeq(scrambleMoves(t, "R U R' U'"))
	moves := s.Solve(cube)
	cube.MoveSeq(moves)
	if !cube.IsSolved() {
		t.Fatalf("Solver.Solve returned a sequence that does not solve the cube: %v", moves)
	}
}
