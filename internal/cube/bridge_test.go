package cube

import (
	"testing"

	"github.com/ehrlich-b/korfcube/internal/cube/index"
)

func TestStateFromStickerCubeSolved(t *testing.T) {
	c := NewCube(3)
	s, err := stateFromStickerCube(c)
	if err != nil {
		t.Fatalf("stateFromStickerCube(solved) error = %v", err)
	}
	if !s.IsSolved() {
		t.Errorf("solved sticker cube did not convert to a solved index.State: %+v", s)
	}
}

func TestStateRoundTripAfterScramble(t *testing.T) {
	scrambles := []string{
		"R", "R U R' U'", "F2 B2 L2 R2 U2 D2",
		"R U2 D' B D' B' R' U' R B R' U R U2 R'",
	}

	for _, scramble := range scrambles {
		t.Run(scramble, func(t *testing.T) {
			c := NewCube(3)
			moves, err := ParseScramble(scramble)
			if err != nil {
				t.Fatalf("ParseScramble(%q) error = %v", scramble, err)
			}
			c.ApplyMoves(moves)

			s, err := stateFromStickerCube(c)
			if err != nil {
				t.Fatalf("stateFromStickerCube error = %v", err)
			}
			if err := s.ValidateInvariants(); err != nil {
				t.Fatalf("ValidateInvariants() error = %v", err)
			}

			back := stateToStickerCube(s)
			s2, err := stateFromStickerCube(back)
			if err != nil {
				t.Fatalf("stateFromStickerCube(round-tripped) error = %v", err)
			}
			if *s2 != *s {
				t.Errorf("round trip mismatch: got %+v, want %+v", s2, s)
			}
		})
	}
}

func TestStateToStickerCubeSolved(t *testing.T) {
	c := stateToStickerCube(index.Solved())
	want := NewCube(3)
	for f := 0; f < 6; f++ {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				face := Face(f)
				if c.Faces[face][r][col] != want.Faces[face][r][col] {
					t.Fatalf("solved index.State did not render to a solved sticker cube at face %v row %d col %d", face, r, col)
				}
			}
		}
	}
}
