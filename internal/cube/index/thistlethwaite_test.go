package index

import (
	"path/filepath"
	"testing"
)

// TestThistlethwaiteSolverSolvesEndToEnd builds all three stage databases
// and runs the four-stage solve on a scrambled cube. The G2 database alone
// covers roughly 26 million cells, so this is skipped in -short runs.
func TestThistlethwaiteSolverSolvesEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full stage-database construction in -short mode")
	}

	solver := NewThistlethwaiteSolver()
	if err := solver.Initialize(filepath.Join(t.TempDir(), "pdb")); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	scrambles := []string{
		"R U R' U'",
		"R U2 D' B D' B' R' U' R B R' U R U2 R'", // longer scramble, exercises all four stages
	}
	for _, scramble := range scrambles {
		t.Run(scramble, func(t *testing.T) {
			cube := Solved()
			cube.MoveSeq(scrambleMoves(t, scramble))
			moves := solver.Solve(cube)
			cube.MoveSeq(moves)
			if !cube.IsSolved() {
				t.Fatalf("ThistlethwaiteSolver.Solve(%q) returned a sequence that does not solve the cube: %v", scramble, moves)
			}
		})
	}
}

func TestThistlethwaiteSolverPanicsBeforeInitialize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Solve to panic before Initialize is called")
		}
	}()
	NewThistlethwaiteSolver().Solve(Solved())
}
