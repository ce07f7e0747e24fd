package index

import (
	"math/rand"
	"testing"
)

func TestOrientGoalAlwaysSatisfied(t *testing.T) {
	g := OrientGoal{}
	if !g.IsSatisfied(Solved()) {
		t.Error("OrientGoal should always report satisfied at this layer")
	}
	s := Solved()
	s.MoveSeq(scrambleMoves(t, "R U F' L2"))
	if !g.IsSatisfied(s) {
		t.Error("OrientGoal should always report satisfied at this layer")
	}
}

func TestSolveGoal(t *testing.T) {
	g := SolveGoal{}
	if !g.IsSatisfied(Solved()) {
		t.Error("SolveGoal should be satisfied on the solved cube")
	}
	s := Solved()
	s.Move(MoveR)
	if g.IsSatisfied(s) {
		t.Error("SolveGoal should not be satisfied after a single R move")
	}
}

func TestGoalG0G1OnlyTracksEdgeOrientation(t *testing.T) {
	g := GoalG0G1{}

	s := Solved()
	s.Move(MoveF)
	if g.IsSatisfied(s) {
		t.Error("a single F quarter turn must flip some edge orientation")
	}

	s2 := Solved()
	s2.Move(MoveF2)
	if !g.IsSatisfied(s2) {
		t.Error("a half turn never nets an edge orientation flip")
	}
}

func TestGoalG2G3EdgesIsFullSolve(t *testing.T) {
	g := GoalG2G3Edges{}
	if !g.IsSatisfied(Solved()) {
		t.Error("GoalG2G3Edges should be satisfied on the solved cube")
	}
	s := Solved()
	s.Move(MoveU2)
	if g.IsSatisfied(s) {
		t.Error("GoalG2G3Edges should not be satisfied after U2 alone")
	}
}

func TestGoalG2G3CornersBreaksOnCornerMove(t *testing.T) {
	g := GoalG2G3Corners{}
	if !g.IsSatisfied(Solved()) {
		t.Error("GoalG2G3Corners should be satisfied on the solved cube")
	}
	s := Solved()
	s.Move(MoveR)
	if g.IsSatisfied(s) {
		t.Error("GoalG2G3Corners should not be satisfied after a single R move")
	}
}

func TestGoalG1G2BreaksOnSingleQuarterTurn(t *testing.T) {
	g := GoalG1G2{}
	if !g.IsSatisfied(Solved()) {
		t.Error("GoalG1G2 should be satisfied on the solved cube")
	}
	s := Solved()
	s.Move(MoveU)
	if g.IsSatisfied(s) {
		t.Error("GoalG1G2 should not be satisfied after a single U move displaces the M-slice edges")
	}
}

func TestCornerOrientationCodeInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		s := Solved()
		for j := 0; j < 30; j++ {
			s.Move(Move(rng.Intn(numMoves)))
		}
		code := cornerOrientationCode(s)
		if code >= 2187 {
			t.Fatalf("cornerOrientationCode = %d out of range [0, 2187)", code)
		}
	}
}

func TestEdgeOrientationCodeInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 200; i++ {
		s := Solved()
		for j := 0; j < 30; j++ {
			s.Move(Move(rng.Intn(numMoves)))
		}
		code := edgeOrientationCode(s)
		if code >= 2048 {
			t.Fatalf("edgeOrientationCode = %d out of range [0, 2048)", code)
		}
	}
}

func TestCornerDatabaseGoalIndexIsSolvedAtDepthZero(t *testing.T) {
	g := NewCornerDatabaseGoal()
	g.Index(Solved(), 0)
	if got := g.DB().GetNumMoves(g.DatabaseIndex(Solved())); got != 0 {
		t.Errorf("solved corner index depth = %d, want 0", got)
	}
}

func TestEdgeDatabaseGoalG1AndG2CoverDisjointSets(t *testing.T) {
	g1 := NewEdgeDatabaseGoalG1()
	g2 := NewEdgeDatabaseGoalG2()
	seen := make(map[uint8]bool)
	for _, id := range g1.set {
		seen[id] = true
	}
	for _, id := range g2.set {
		if seen[id] {
			t.Fatalf("edge identity %d appears in both the G1 and G2 edge databases", id)
		}
	}
	if len(g1.set)+len(g2.set) != 12 {
		t.Fatalf("G1+G2 edge sets cover %d identities, want 12", len(g1.set)+len(g2.set))
	}
}

// scrambleMoves is a small test helper: it parses a space-separated
// standard-notation scramble using the same 18-token vocabulary as
// StringToMove.
func scrambleMoves(t *testing.T, s string) []Move {
	t.Helper()
	var moves []Move
	field := ""
	for _, r := range s + " " {
		if r == ' ' {
			if field != "" {
				m, err := StringToMove(field)
				if err != nil {
					t.Fatalf("scrambleMoves(%q): %v", s, err)
				}
				moves = append(moves, m)
				field = ""
			}
			continue
		}
		field += string(r)
	}
	return moves
}
