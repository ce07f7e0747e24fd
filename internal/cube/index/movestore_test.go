package index

import "testing"

func TestTwistStoreHasAllEighteenMoves(t *testing.T) {
	store := NewTwistStore()
	if store.Count() != 18 {
		t.Fatalf("NewTwistStore().Count() = %d, want 18", store.Count())
	}
	seen := make(map[Move]bool)
	for i := uint8(0); i < store.Count(); i++ {
		seen[store.Get(i)] = true
	}
	if len(seen) != 18 {
		t.Fatalf("NewTwistStore() has %d distinct moves, want 18", len(seen))
	}
}

func TestG1TwistStoreExcludesQuarterFandB(t *testing.T) {
	store := NewG1TwistStore()
	for i := uint8(0); i < store.Count(); i++ {
		m := store.Get(i)
		if m.Face() == int(faceF) && m != MoveF2 {
			t.Errorf("G1 store contains non-half F move %s", m)
		}
		if m.Face() == int(faceB) && m != MoveB2 {
			t.Errorf("G1 store contains non-half B move %s", m)
		}
	}
}

func TestG2TwistStoreOnlyHalfTurnsOnLRFB(t *testing.T) {
	store := NewG2TwistStore()
	for i := uint8(0); i < store.Count(); i++ {
		m := store.Get(i)
		f := face(m.Face())
		if (f == faceL || f == faceR || f == faceF || f == faceB) && m%3 != 2 {
			t.Errorf("G2 store contains a non-half-turn move %s on face %d", m, f)
		}
	}
}

func TestG3TwistStoreIsAllHalfTurns(t *testing.T) {
	store := NewG3TwistStore()
	if store.Count() != 6 {
		t.Fatalf("NewG3TwistStore().Count() = %d, want 6", store.Count())
	}
	for i := uint8(0); i < store.Count(); i++ {
		if store.Get(i)%3 != 2 {
			t.Errorf("G3 store contains non-half-turn move %s", store.Get(i))
		}
	}
}

func TestRotationFourTimesIsIdentity(t *testing.T) {
	for r := RotationMove(0); r < numRotations; r += 3 {
		s := Solved()
		for i := 0; i < 4; i++ {
			s.Rotate(r)
		}
		if !s.IsSolved() {
			t.Errorf("rotation %d applied four times did not return to solved", r)
		}
	}
}

func TestRotationStoreHasNineRotations(t *testing.T) {
	store := NewRotationStore()
	if store.Count() != 9 {
		t.Fatalf("NewRotationStore().Count() = %d, want 9", store.Count())
	}
}
