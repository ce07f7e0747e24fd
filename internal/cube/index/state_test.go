package index

import (
	"math/rand"
	"testing"
)

func TestSolvedIsSolved(t *testing.T) {
	s := Solved()
	if !s.IsSolved() {
		t.Fatal("Solved() did not report IsSolved")
	}
	if err := s.ValidateInvariants(); err != nil {
		t.Fatalf("Solved() failed invariants: %v", err)
	}
}

func TestMoveInverseUndoes(t *testing.T) {
	for m := Move(0); m < numMoves; m++ {
		s := Solved()
		s.Move(m)
		s.Move(m.Inverse())
		if !s.IsSolved() {
			t.Errorf("move %s followed by its inverse %s did not return to solved", m, m.Inverse())
		}
	}
}

func TestMoveSeqFourQuarterTurnsIsIdentity(t *testing.T) {
	for m := Move(0); m < numMoves; m += 3 { // one representative quarter turn per face
		s := Solved()
		s.MoveSeq([]Move{m, m, m, m})
		if !s.IsSolved() {
			t.Errorf("applying %s four times did not return to solved", m)
		}
	}
}

// TestInvariantsHoldAfterEveryPrefix applies random legal moves one at a
// time and checks the three parity invariants after every prefix, per
// the model's requirement that a reachable state never violates them.
func TestInvariantsHoldAfterEveryPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		s := Solved()
		for step := 0; step < 200; step++ {
			m := Move(rng.Intn(numMoves))
			s.Move(m)
			if err := s.ValidateInvariants(); err != nil {
				t.Fatalf("trial %d step %d: invariant violated after move %s: %v", trial, step, m, err)
			}
		}
	}
}

func TestValidateInvariantsRejectsBadOrientation(t *testing.T) {
	s := Solved()
	s.CO[0] = 1 // corner orientation sum now 1, not divisible by 3
	if err := s.ValidateInvariants(); err == nil {
		t.Error("expected ValidateInvariants to reject an unbalanced corner orientation sum")
	}
}

func TestValidateInvariantsRejectsBadPermutation(t *testing.T) {
	s := Solved()
	s.CP[0] = s.CP[1] // duplicate identity, not a permutation
	if err := s.ValidateInvariants(); err == nil {
		t.Error("expected ValidateInvariants to reject a non-permutation CP array")
	}
}

func TestValidateInvariantsRejectsParityMismatch(t *testing.T) {
	s := Solved()
	s.EP[0], s.EP[1] = s.EP[1], s.EP[0] // single transposition: flips edge parity only
	if err := s.ValidateInvariants(); err == nil {
		t.Error("expected ValidateInvariants to reject a corner/edge parity mismatch")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := Solved()
	c := s.Clone()
	c.Move(MoveR)
	if !s.IsSolved() {
		t.Fatal("mutating a clone affected the original")
	}
	if c.IsSolved() {
		t.Fatal("clone did not record the move applied to it")
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for m := Move(0); m < numMoves; m++ {
		got, err := StringToMove(m.String())
		if err != nil {
			t.Fatalf("StringToMove(%q) error: %v", m.String(), err)
		}
		if got != m {
			t.Errorf("StringToMove(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestStringToMoveRejectsGarbage(t *testing.T) {
	if _, err := StringToMove("Q"); err == nil {
		t.Error("expected an error for an unrecognized move token")
	}
}

// A whole-cube quarter rotation cycles the 8 corners in two 4-cycles (even)
// and the 12 edges in three 4-cycles (odd), so only the half rotations keep
// corner and edge permutation parity equal; orientation sums always hold.
func TestRotationsPreserveSolvedOrientationInvariant(t *testing.T) {
	for r := RotationMove(0); r < numRotations; r++ {
		s := Solved()
		s.Rotate(r)
		coSum, eoSum := 0, 0
		for i := range s.CO {
			coSum += int(s.CO[i])
		}
		for i := range s.EO {
			eoSum += int(s.EO[i])
		}
		wantParityMismatch := r%3 != 2 // RotX2, RotY2, RotZ2 are the half rotations
		if coSum%3 != 0 || eoSum%2 != 0 || (permParity(s.CP[:]) != permParity(s.EP[:])) != wantParityMismatch {
			t.Errorf("rotation %d: co sum %d, eo sum %d, cp/ep parity %d/%d", r, coSum, eoSum, permParity(s.CP[:]), permParity(s.EP[:]))
		}
	}
}
