package index

import "testing"

func TestIDAStarWithZeroHeuristicSolvesSingleMove(t *testing.T) {
	searcher := NewIDACubeSearcher(ZeroHeuristic{})
	s := Solved()
	s.Move(MoveR)
	moves := searcher.FindGoal(SolveGoal{}, s, NewTwistStore())
	if len(moves) != 1 || moves[0] != MoveRPrime {
		t.Fatalf("expected [R'], got %v", moves)
	}
}

func TestIDAStarFindsOptimalDepthForSexyMove(t *testing.T) {
	searcher := NewIDACubeSearcher(ZeroHeuristic{})
	s := Solved()
	s.MoveSeq(scrambleMoves(t, "R U R' U'"))
	moves := searcher.FindGoal(SolveGoal{}, s, NewTwistStore())
	if len(moves) == 0 || len(moves) > 4 {
		t.Fatalf("expected an optimal solution of at most 4 moves, got %d: %v", len(moves), moves)
	}
	s.MoveSeq(moves)
	if !s.IsSolved() {
		t.Fatalf("applying IDA* solution %v did not solve the cube", moves)
	}
}

func TestIDAStarAgreesWithBFSOnOptimalLength(t *testing.T) {
	scrambles := []string{"R U", "F2 B2", "R U R'"}
	for _, scramble := range scrambles {
		t.Run(scramble, func(t *testing.T) {
			s1 := Solved()
			s1.MoveSeq(scrambleMoves(t, scramble))
			bfsMoves := NewBreadthFirstCubeSearcher().FindGoal(SolveGoal{}, s1, NewTwistStore())

			s2 := Solved()
			s2.MoveSeq(scrambleMoves(t, scramble))
			idaMoves := NewIDACubeSearcher(ZeroHeuristic{}).FindGoal(SolveGoal{}, s2, NewTwistStore())

			if len(bfsMoves) != len(idaMoves) {
				t.Errorf("BFS found length %d, IDA* found length %d for scramble %q", len(bfsMoves), len(idaMoves), scramble)
			}
		})
	}
}

func TestPDBHeuristicIsZeroOnSolved(t *testing.T) {
	g := newToySlotZeroGoal()
	NewBreadthFirstCubeSearcher().FindGoalDatabase(g, Solved(), NewTwistStore())
	h := PDBHeuristic{Goal: g}
	if got := h.Estimate(Solved()); got != 0 {
		t.Errorf("PDBHeuristic.Estimate(Solved()) = %d, want 0", got)
	}
}

func TestCompositeHeuristicTakesMax(t *testing.T) {
	c := CompositeHeuristic{constHeuristic(2), constHeuristic(5), constHeuristic(3)}
	if got := c.Estimate(Solved()); got != 5 {
		t.Errorf("CompositeHeuristic.Estimate = %d, want 5 (the max of 2, 5, 3)", got)
	}
}

type constHeuristic uint8

func (c constHeuristic) Estimate(*State) uint8 { return uint8(c) }
