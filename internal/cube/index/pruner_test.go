package index

import "testing"

func TestPruneNeverSkipsTheFirstMove(t *testing.T) {
	p := MovePruner{}
	for m := Move(0); m < numMoves; m++ {
		if p.Prune(m, MoveNone) {
			t.Errorf("Prune(%s, MoveNone) = true, want false", m)
		}
	}
}

func TestPruneSameFaceAlwaysSkipped(t *testing.T) {
	p := MovePruner{}
	for prev := Move(0); prev < numMoves; prev++ {
		for next := Move(0); next < numMoves; next++ {
			if next.Face() == prev.Face() && !p.Prune(next, prev) {
				t.Errorf("Prune(%s, %s): same face %d should always prune", next, prev, next.Face())
			}
		}
	}
}

func TestPruneOppositeFaceOrderingIsCanonical(t *testing.T) {
	p := MovePruner{}
	for prev := Move(0); prev < numMoves; prev++ {
		for next := Move(0); next < numMoves; next++ {
			if next.Face() == prev.Face() {
				continue
			}
			isOpposite := next.Face()/2 == prev.Face()/2
			want := isOpposite && prev.Face() > next.Face()
			if got := p.Prune(next, prev); got != want {
				t.Errorf("Prune(%s, %s) = %v, want %v", next, prev, got, want)
			}
		}
	}
}

// TestPruneLeavesSomeMoveAtEveryNode is the liveness counterpart to the
// pruning rules above: whatever prev was, at least one next move must
// survive, or the search would dead-end.
func TestPruneLeavesSomeMoveAtEveryNode(t *testing.T) {
	p := MovePruner{}
	for prev := Move(0); prev < numMoves; prev++ {
		any := false
		for next := Move(0); next < numMoves; next++ {
			if !p.Prune(next, prev) {
				any = true
				break
			}
		}
		if !any {
			t.Errorf("every move is pruned after prev=%s", prev)
		}
	}
}
