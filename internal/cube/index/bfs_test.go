package index

import "testing"

func TestBFSFindsNilOnAlreadySolved(t *testing.T) {
	b := NewBreadthFirstCubeSearcher()
	moves := b.FindGoal(SolveGoal{}, Solved(), NewTwistStore())
	if moves != nil {
		t.Errorf("FindGoal on a solved cube should return nil, got %v", moves)
	}
}

func TestBFSSolvesSingleMoveScramble(t *testing.T) {
	b := NewBreadthFirstCubeSearcher()
	s := Solved()
	s.Move(MoveR)
	moves := b.FindGoal(SolveGoal{}, s, NewTwistStore())
	if len(moves) != 1 {
		t.Fatalf("expected a 1-move solution for a single R scramble, got %v", moves)
	}
	s.MoveSeq(moves)
	if !s.IsSolved() {
		t.Fatalf("applying BFS solution %v did not solve the cube", moves)
	}
}

func TestBFSFindsOptimalDepthForSexyMove(t *testing.T) {
	b := NewBreadthFirstCubeSearcher()
	s := Solved()
	s.MoveSeq(scrambleMoves(t, "R U R' U'"))
	moves := b.FindGoal(SolveGoal{}, s, NewTwistStore())
	// R U R' U' has order 6, so the shortest path back to solved is the
	// inverse applied (U R U' R'), 4 moves; BFS must never return more.
	if len(moves) == 0 || len(moves) > 4 {
		t.Fatalf("expected an optimal solution of at most 4 moves, got %d: %v", len(moves), moves)
	}
	s.MoveSeq(moves)
	if !s.IsSolved() {
		t.Fatalf("applying BFS solution %v did not solve the cube", moves)
	}
}

// toySlotZeroGoal is a deliberately tiny DatabaseGoal used only to exercise
// the generic PDB-construction machinery (FindGoalDatabase, the indexer,
// PDBHeuristic) without the cost of a real Korf/Thistlethwaite database:
// it projects onto corner slot 0's orientation alone, a 3-valued subspace.
type toySlotZeroGoal struct {
	db *PatternDatabase
}

func newToySlotZeroGoal() *toySlotZeroGoal {
	return &toySlotZeroGoal{db: NewPatternDatabase(3)}
}

func (g *toySlotZeroGoal) DB() *PatternDatabase       { return g.db }
func (g *toySlotZeroGoal) DatabaseIndex(s *State) uint64 { return uint64(s.CO[0]) }
func (g *toySlotZeroGoal) Index(s *State, depth uint8) bool {
	return g.db.SetNumMoves(g.DatabaseIndex(s), depth)
}
func (g *toySlotZeroGoal) IsSatisfied(*State) bool { return g.db.FullyPopulated() }
func (g *toySlotZeroGoal) Description() string     { return "toy: corner slot 0 orientation" }

func TestFindGoalDatabasePopulatesToyGoal(t *testing.T) {
	g := newToySlotZeroGoal()
	b := NewBreadthFirstCubeSearcher()
	b.FindGoalDatabase(g, Solved(), NewTwistStore())

	if !g.DB().FullyPopulated() {
		t.Fatal("toy goal's 3-entry database was not fully populated")
	}
	if got := g.DB().GetNumMoves(0); got != 0 {
		t.Errorf("solved orientation (index 0) should be reachable in 0 moves, got %d", got)
	}
	for i := uint64(0); i < 3; i++ {
		if g.DB().Unset(i) {
			t.Errorf("toy database cell %d was never written", i)
		}
	}
}
