package index

import (
	"path/filepath"
	"testing"
)

// TestKorfSolverSolvesEndToEnd builds all four pattern databases (the
// corner database alone addresses 8! * 3^7, about 88 million cells) and
// solves a scrambled cube optimally. Skipped in -short runs for the same
// reason a chess engine's perft suite skips its deeper levels there.
func TestKorfSolverSolvesEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full pattern-database construction in -short mode")
	}

	solver := NewKorfSolver(4)
	if err := solver.Initialize(filepath.Join(t.TempDir(), "pdb")); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	cases := []struct {
		name     string
		scramble string
		maxMoves int
	}{
		{"sexy move", "R U R' U'", 4},
		{"superflip", "U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2", 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cube := Solved()
			cube.MoveSeq(scrambleMoves(t, c.scramble))
			moves := solver.Solve(cube)
			if len(moves) > c.maxMoves {
				t.Errorf("solution has %d moves, want at most %d: %v", len(moves), c.maxMoves, moves)
			}
			cube.MoveSeq(moves)
			if !cube.IsSolved() {
				t.Fatalf("KorfSolver.Solve(%q) returned a sequence that does not solve the cube: %v", c.scramble, moves)
			}
		})
	}
}

func TestKorfSolverPanicsBeforeInitialize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Solve to panic before Initialize is called")
		}
	}()
	NewKorfSolver(1).Solve(Solved())
}
