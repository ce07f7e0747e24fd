// Package index implements the compact permutation/orientation cube model
// used by the optimal solver core: an 8-corner, 12-edge index model with
// branch-free move application, the pattern-database subspace projections,
// and the Korf/Thistlethwaite searchers that consume them.
package index

import "fmt"

// Move is a tagged value from the fixed 18-element face-turn enumeration,
// plus the sentinel MoveNone ("no previous move").
type Move uint8

const (
	MoveU Move = iota
	MoveUPrime
	MoveU2
	MoveD
	MoveDPrime
	MoveD2
	MoveL
	MoveLPrime
	MoveL2
	MoveR
	MoveRPrime
	MoveR2
	MoveF
	MoveFPrime
	MoveF2
	MoveB
	MoveBPrime
	MoveB2
	numMoves = 18
)

// MoveNone is the sentinel used at search roots and at the PDB root: "no
// previous move".
const MoveNone Move = 0xFF

var moveNames = [numMoves]string{
	"U", "U'", "U2",
	"D", "D'", "D2",
	"L", "L'", "L2",
	"R", "R'", "R2",
	"F", "F'", "F2",
	"B", "B'", "B2",
}

// String renders a move using the 18 standard tokens.
func (m Move) String() string {
	if m == MoveNone {
		return "-"
	}
	if int(m) >= numMoves {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
	return moveNames[m]
}

// MoveToString converts a move to its standard notation token.
func MoveToString(m Move) string {
	return m.String()
}

// StringToMove parses one of the 18 standard move tokens. Unlike the
// teacher's original ParseMove, every token maps to a distinct Move value
// (F and L are never confused).
func StringToMove(s string) (Move, error) {
	for i, name := range moveNames {
		if name == s {
			return Move(i), nil
		}
	}
	return MoveNone, fmt.Errorf("index: unrecognized move token %q", s)
}

// face identifies which of the 6 faces a move turns, for the pruner and
// for move-table construction.
type face int

const (
	faceU face = iota
	faceD
	faceL
	faceR
	faceF
	faceB
)

// Face reports the face a move turns.
func (m Move) Face() int {
	return int(m) / 3
}

// axisSign returns the rotation axis (0=x,1=y,2=z) and sign (+1/-1) a face
// turns about, using the right-hand-rule convention consistent across this
// package.
func (f face) axisSign() (axis int, sign int) {
	switch f {
	case faceU:
		return 1, 1
	case faceD:
		return 1, -1
	case faceL:
		return 0, -1
	case faceR:
		return 0, 1
	case faceF:
		return 2, 1
	case faceB:
		return 2, -1
	}
	panic("index: bad face")
}

// vec3 is an integer 3-vector used only for the geometric construction of
// move tables at package init time.
type vec3 struct{ x, y, z int }

// rotateAboutAxis applies the quarter-turn rotation about the given axis
// (0=x,1=y,2=z) with the given sign, matching a face turn viewed clockwise
// from outside the cube when sign=+1 for the positive-coordinate face.
func rotateAboutAxis(axis, sign int, v vec3) vec3 {
	switch axis {
	case 0:
		return vec3{v.x, sign * v.z, -sign * v.y}
	case 1:
		return vec3{-sign * v.z, v.y, sign * v.x}
	case 2:
		return vec3{sign * v.y, -sign * v.x, v.z}
	}
	panic("index: bad axis")
}

// Corner slot order: ULB, URB, URF, ULF, DLF, DLB, DRB, DRF.
var cornerPos = [8]vec3{
	{-1, 1, -1}, // ULB
	{1, 1, -1},  // URB
	{1, 1, 1},   // URF
	{-1, 1, 1},  // ULF
	{-1, -1, 1}, // DLF
	{-1, -1, -1}, // DLB
	{1, -1, -1}, // DRB
	{1, -1, 1},  // DRF
}

// Edge slot order: UB, UR, UF, UL, FR, FL, BL, BR, DF, DR, DB, DL.
var edgePos = [12]vec3{
	{0, 1, -1},  // UB
	{1, 1, 0},   // UR
	{0, 1, 1},   // UF
	{-1, 1, 0},  // UL
	{1, 0, 1},   // FR
	{-1, 0, 1},  // FL
	{-1, 0, -1}, // BL
	{1, 0, -1},  // BR
	{0, -1, 1},  // DF
	{1, -1, 0},  // DR
	{0, -1, -1}, // DB
	{-1, -1, 0}, // DL
}

// Vec3 is the exported form of vec3, for callers outside this package that
// need to relate facelet geometry to slot numbering (the sticker-cube
// bridge in package cube).
type Vec3 struct{ X, Y, Z int }

func (v Vec3) toInternal() vec3  { return vec3{v.X, v.Y, v.Z} }
func fromInternal(v vec3) Vec3   { return Vec3{v.x, v.y, v.z} }

// CornerPos returns the 8 corner slot positions in this package's slot
// order (ULB, URB, URF, ULF, DLF, DLB, DRB, DRF).
func CornerPos() [8]Vec3 {
	var out [8]Vec3
	for i, p := range cornerPos {
		out[i] = fromInternal(p)
	}
	return out
}

// EdgePos returns the 12 edge slot positions in this package's slot order
// (UB, UR, UF, UL, FR, FL, BL, BR, DF, DR, DB, DL).
func EdgePos() [12]Vec3 {
	var out [12]Vec3
	for i, p := range edgePos {
		out[i] = fromInternal(p)
	}
	return out
}

// CornerFaceletOrder is the exported form of cornerFaceletOrder.
func CornerFaceletOrder(p Vec3) [3]Vec3 {
	order := cornerFaceletOrder(p.toInternal())
	return [3]Vec3{fromInternal(order[0]), fromInternal(order[1]), fromInternal(order[2])}
}

// FindCornerSlot is the exported form of findCornerSlot.
func FindCornerSlot(p Vec3) int { return findCornerSlot(p.toInternal()) }

// FindEdgeSlot is the exported form of findEdgeSlot.
func FindEdgeSlot(p Vec3) int { return findEdgeSlot(p.toInternal()) }

func findCornerSlot(p vec3) int {
	for i, c := range cornerPos {
		if c == p {
			return i
		}
	}
	panic("index: corner position not found")
}

func findEdgeSlot(p vec3) int {
	for i, e := range edgePos {
		if e == p {
			return i
		}
	}
	panic("index: edge position not found")
}

// cornerFaceletOrder returns the three unit facelet directions of the
// corner at position p, ordered [yFacelet, next, prev] around the
// corner's own 3-fold rotational symmetry, so that index i is the
// orientation number of a reference sticker pointing along facelet i.
// The cyclic direction alternates with octant parity, which is the
// standard chirality fact about cube corners.
func cornerFaceletOrder(p vec3) [3]vec3 {
	xdir := vec3{p.x, 0, 0}
	ydir := vec3{0, p.y, 0}
	zdir := vec3{0, 0, p.z}
	if p.x*p.y*p.z == 1 {
		return [3]vec3{ydir, zdir, xdir}
	}
	return [3]vec3{ydir, xdir, zdir}
}

func cornerOrientationIndex(p, dir vec3) uint8 {
	order := cornerFaceletOrder(p)
	for i, d := range order {
		if d == dir {
			return uint8(i)
		}
	}
	panic("index: facelet direction not found for corner")
}

// moveEffect is the precomputed, branch-free description of what a single
// move does to a State: where each slot's occupant ends up, and by how
// much its orientation changes.
type moveEffect struct {
	cornerTo    [8]int
	cornerDelta [8]uint8
	edgeTo      [12]int
	edgeDelta   [12]uint8
}

func identityEffect() moveEffect {
	var e moveEffect
	for i := range e.cornerTo {
		e.cornerTo[i] = i
	}
	for i := range e.edgeTo {
		e.edgeTo[i] = i
	}
	return e
}

// composeEffect returns the effect of applying a then b.
func composeEffect(a, b moveEffect) moveEffect {
	var out moveEffect
	for i := 0; i < 8; i++ {
		mid := a.cornerTo[i]
		out.cornerTo[i] = b.cornerTo[mid]
		out.cornerDelta[i] = (a.cornerDelta[i] + b.cornerDelta[mid]) % 3
	}
	for i := 0; i < 12; i++ {
		mid := a.edgeTo[i]
		out.edgeTo[i] = b.edgeTo[mid]
		out.edgeDelta[i] = (a.edgeDelta[i] + b.edgeDelta[mid]) % 2
	}
	return out
}

// rotateEffect computes the effect of rotating axis/sign by one quarter
// turn, restricted by layerOf: a cubie moves only when layerOf(pos) holds.
// Corner orientation is tracked via facelet-direction transport (see
// cornerFaceletOrder); edgeFlips controls whether the edges that move also
// flip orientation (true only for a quarter turn of F or B).
func rotateEffect(axis, sign int, layerOf func(vec3) bool, edgeFlips bool) moveEffect {
	e := identityEffect()

	for i, p := range cornerPos {
		if !layerOf(p) {
			continue
		}
		newPos := rotateAboutAxis(axis, sign, p)
		newDir := rotateAboutAxis(axis, sign, vec3{0, p.y, 0})
		j := findCornerSlot(newPos)
		e.cornerTo[i] = j
		e.cornerDelta[i] = cornerOrientationIndex(newPos, newDir)
	}

	for i, p := range edgePos {
		if !layerOf(p) {
			continue
		}
		newPos := rotateAboutAxis(axis, sign, p)
		j := findEdgeSlot(newPos)
		e.edgeTo[i] = j
		if edgeFlips {
			e.edgeDelta[i] = 1
		}
	}

	return e
}

// quarterEffect computes the single-quarter-turn effect of face turn f,
// restricted to the outer layer on f's axis.
func quarterEffect(f face) moveEffect {
	axis, sign := f.axisSign()
	layerOf := func(p vec3) bool { return componentOf(p, axis) == sign }
	return rotateEffect(axis, sign, layerOf, f == faceF || f == faceB)
}

func componentOf(v vec3, axis int) int {
	switch axis {
	case 0:
		return v.x
	case 1:
		return v.y
	case 2:
		return v.z
	}
	panic("index: bad axis")
}

var moveEffects [numMoves]moveEffect

func init() {
	faces := [6]face{faceU, faceD, faceL, faceR, faceF, faceB}
	for fi, f := range faces {
		q := quarterEffect(f)
		d := composeEffect(q, q)
		p := composeEffect(d, q) // prime = quarter^3
		moveEffects[fi*3+0] = q
		moveEffects[fi*3+1] = p
		moveEffects[fi*3+2] = d
	}
}

// State is the cube's compact permutation/orientation encoding: cp/co for
// the 8 corners, ep/eo for the 12 edges.
type State struct {
	CP [8]uint8
	CO [8]uint8
	EP [12]uint8
	EO [12]uint8
}

// Solved returns the cube in the solved configuration.
func Solved() *State {
	s := &State{}
	for i := range s.CP {
		s.CP[i] = uint8(i)
	}
	for i := range s.EP {
		s.EP[i] = uint8(i)
	}
	return s
}

// Clone returns a deep copy for search-tree expansion.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Move applies a single move in place.
func (s *State) Move(m Move) {
	eff := &moveEffects[m]
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
		eo[eff.edgeTo[i]] = (s.EO[i] + eff.edgeDelta[i]) % 2
	}
	s.CP, s.CO, s.EP, s.EO = cp, co, ep, eo
}

// MoveSeq applies a sequence of moves in order.
func (s *State) MoveSeq(moves []Move) {
	for _, m := range moves {
		s.Move(m)
	}
}

// IsSolved reports whether the cube is in the solved configuration.
func (s *State) IsSolved() bool {
	for i := 0; i < 8; i++ {
		if s.CP[i] != uint8(i) || s.CO[i] != 0 {
			return false
		}
	}
	for i := 0; i < 12; i++ {
		if s.EP[i] != uint8(i) || s.EO[i] != 0 {
			return false
		}
	}
	return true
}

// GetCornerIndex returns the identity of the corner occupying slot.
func (s *State) GetCornerIndex(slot int) uint8 { return s.CP[slot] }

// GetCornerOrientation returns the orientation (0..2) of the corner at slot.
func (s *State) GetCornerOrientation(slot int) uint8 { return s.CO[slot] }

// GetEdgeIndex returns the identity of the edge occupying slot.
func (s *State) GetEdgeIndex(slot int) uint8 { return s.EP[slot] }

// GetEdgeOrientation returns the orientation (0..1) of the edge at slot.
func (s *State) GetEdgeOrientation(slot int) uint8 { return s.EO[slot] }

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m % 3 {
	case 0:
		return m + 1
	case 1:
		return m - 1
	default:
		return m
	}
}

// ValidateInvariants checks the three parity invariants spec.md §3.1
// requires after every move: valid permutations, matching cp/ep parity,
// corner orientation sum ≡0 mod 3, edge orientation sum ≡0 mod 2.
func (s *State) ValidateInvariants() error {
	var seenC [8]bool
	coSum := 0
	for i := 0; i < 8; i++ {
		if s.CP[i] > 7 || seenC[s.CP[i]] {
			return fmt.Errorf("index: invalid corner permutation at slot %d", i)
		}
		seenC[s.CP[i]] = true
		coSum += int(s.CO[i])
	}
	if coSum%3 != 0 {
		return fmt.Errorf("index: corner orientation sum %d not divisible by 3", coSum)
	}

	var seenE [12]bool
	eoSum := 0
	for i := 0; i < 12; i++ {
		if s.EP[i] > 11 || seenE[s.EP[i]] {
			return fmt.Errorf("index: invalid edge permutation at slot %d", i)
		}
		seenE[s.EP[i]] = true
		eoSum += int(s.EO[i])
	}
	if eoSum%2 != 0 {
		return fmt.Errorf("index: edge orientation sum %d not even", eoSum)
	}

	if permParity(s.CP[:]) != permParity(s.EP[:]) {
		return fmt.Errorf("index: corner/edge permutation parity mismatch")
	}
	return nil
}

// permParity returns 0 for even, 1 for odd.
func permParity(p []uint8) int {
	visited := make([]bool, len(p))
	parity := 0
	for i := range p {
		if visited[i] {
			continue
		}
		cycleLen := 0
		j := i
		for !visited[j] {
			visited[j] = true
			j = int(p[j])
			cycleLen++
		}
		if cycleLen > 0 {
			parity += cycleLen - 1
		}
	}
	return parity % 2
}
