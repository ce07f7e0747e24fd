package index

// MoveStore is an abstract source of moves for a search stage: stable
// order, fixed legal set.
type MoveStore interface {
	Count() uint8
	Get(i uint8) Move
}

// sliceStore is the shared implementation backing the concrete stores.
type sliceStore []Move

func (s sliceStore) Count() uint8    { return uint8(len(s)) }
func (s sliceStore) Get(i uint8) Move { return s[i] }

// TwistStore holds all 18 face turns (Thistlethwaite group G0, and the
// move set for Korf's IDA* over the full cube).
func NewTwistStore() MoveStore {
	moves := make(sliceStore, numMoves)
	for i := range moves {
		moves[i] = Move(i)
	}
	return moves
}

// G1TwistStore holds the moves legal once edge orientation is solved
// (Thistlethwaite group G1): U, D, L, R any turn, F2, B2 only.
func NewG1TwistStore() MoveStore {
	return sliceStore{
		MoveU, MoveUPrime, MoveU2,
		MoveD, MoveDPrime, MoveD2,
		MoveL, MoveLPrime, MoveL2,
		MoveR, MoveRPrime, MoveR2,
		MoveF2, MoveB2,
	}
}

// G2TwistStore holds the moves legal once corner orientation and M-slice
// placement are solved (Thistlethwaite group G2): U, D any turn, L2, R2,
// F2, B2 only.
func NewG2TwistStore() MoveStore {
	return sliceStore{
		MoveU, MoveUPrime, MoveU2,
		MoveD, MoveDPrime, MoveD2,
		MoveL2, MoveR2, MoveF2, MoveB2,
	}
}

// G3TwistStore holds the moves legal once the corner-permutation coset
// and E/S-slice edges are solved (Thistlethwaite group G3): half turns of
// every face only.
func NewG3TwistStore() MoveStore {
	return sliceStore{MoveU2, MoveD2, MoveL2, MoveR2, MoveF2, MoveB2}
}

// RotationMove is the whole-cube-rotation analogue of Move, used only by
// RotationStore for the orientation goal.
type RotationMove uint8

const (
	RotX RotationMove = iota
	RotXPrime
	RotX2
	RotY
	RotYPrime
	RotY2
	RotZ
	RotZPrime
	RotZ2
	numRotations = 9
)

var rotationEffects [numRotations]moveEffect

func init() {
	axes := [3]int{0, 1, 2}
	for ai, axis := range axes {
		q := wholeCubeQuarter(axis, 1)
		d := composeEffect(q, q)
		p := composeEffect(d, q)
		rotationEffects[ai*3+0] = q
		rotationEffects[ai*3+1] = p
		rotationEffects[ai*3+2] = d
	}
}

// wholeCubeQuarter computes the effect of rotating the entire cube (every
// cubie, no layer restriction) a quarter turn about axis with sign. Unlike
// a face turn, this never flips edge orientation on its own.
func wholeCubeQuarter(axis, sign int) moveEffect {
	return rotateEffect(axis, sign, func(vec3) bool { return true }, false)
}

// Rotate applies a whole-cube rotation in place.
func (s *State) Rotate(r RotationMove) {
	eff := &rotationEffects[r]
	var cp [8]uint8
	var co [8]uint8
	var ep [12]uint8
	var eo [12]uint8
	for i := 0; i < 8; i++ {
		cp[eff.cornerTo[i]] = s.CP[i]
		co[eff.cornerTo[i]] = (s.CO[i] + eff.cornerDelta[i]) % 3
	}
	for i := 0; i < 12; i++ {
		ep[eff.edgeTo[i]] = s.EP[i]
		eo[eff.edgeTo[i]] = s.EO[i]
	}
	s.CP, s.CO, s.EP, s.EO = cp, co, ep, eo
}

type rotationSlice []RotationMove

func (s rotationSlice) Count() uint8 { return uint8(len(s)) }

// RotationStore holds the 9 whole-cube rotations, used only by the
// orientation goal's BFS search.
type RotationStore struct {
	moves rotationSlice
}

func NewRotationStore() *RotationStore {
	moves := make(rotationSlice, numRotations)
	for i := range moves {
		moves[i] = RotationMove(i)
	}
	return &RotationStore{moves: moves}
}

func (r *RotationStore) Count() uint8          { return r.moves.Count() }
func (r *RotationStore) GetRotation(i uint8) RotationMove { return r.moves[i] }
