package index

// Goal bundles the predicate and description spec.md §3.5 requires. Goals
// that drive PDB construction additionally implement DatabaseGoal.
type Goal interface {
	IsSatisfied(s *State) bool
	Description() string
}

// DatabaseGoal is a goal whose purpose is to drive the IDDFS indexer (or
// BFS) to enumerate a subspace: it is never satisfied by IsSatisfied
// except when its owned database reports full population, and it exposes
// the subspace projection used both to index new cells and to look up an
// admissible heuristic value at solve time.
type DatabaseGoal interface {
	Goal
	DatabaseIndex(s *State) uint64
	Index(s *State, depth uint8) bool
	DB() *PatternDatabase
}

func invertEdges(s *State) (slotOf [12]int) {
	for slot, id := range s.EP {
		slotOf[id] = slot
	}
	return
}

// cornerOrientationCode packs the first 7 corner orientations (the 8th is
// determined by the Σco≡0 mod 3 invariant) into a base-3 integer, 0..2186.
func cornerOrientationCode(s *State) uint64 {
	code := uint64(0)
	for i := 0; i < 7; i++ {
		code = code*3 + uint64(s.CO[i])
	}
	return code
}

// edgeOrientationCode packs the first 11 edge orientations (the 12th is
// determined by Σeo≡0 mod 2) into an 11-bit integer, 0..2047.
func edgeOrientationCode(s *State) uint64 {
	code := uint64(0)
	for i := 0; i < 11; i++ {
		code = code*2 + uint64(s.EO[i])
	}
	return code
}

// --- OrientGoal ---

// OrientGoal normalizes whole-cube orientation. The index model carries no
// sticker colors, so there is nothing to normalize at this layer; the
// orchestrator only consults OrientGoal when working from a sticker cube,
// where the CFEN bridge (bridge.go) already fixes Up/Front before
// conversion. It is always satisfied here.
type OrientGoal struct{}

func (OrientGoal) IsSatisfied(*State) bool { return true }
func (OrientGoal) Description() string     { return "cube is in canonical orientation" }

// --- SolveGoal ---

// SolveGoal is satisfied when the cube is fully solved.
type SolveGoal struct{}

func (SolveGoal) IsSatisfied(s *State) bool { return s.IsSolved() }
func (SolveGoal) Description() string       { return "cube is solved" }

// --- CornerDatabaseGoal ---

var cornerDBSize = uint64(factorial(8)) * 2187 // 8! * 3^7

// CornerDatabaseGoal drives construction of the corner pattern database:
// rank of the corner permutation (8!) times the corner orientation code
// (3^7).
type CornerDatabaseGoal struct {
	db *PatternDatabase
}

func NewCornerDatabaseGoal() *CornerDatabaseGoal {
	return &CornerDatabaseGoal{db: NewPatternDatabase(cornerDBSize)}
}

func (g *CornerDatabaseGoal) DB() *PatternDatabase { return g.db }

func (g *CornerDatabaseGoal) DatabaseIndex(s *State) uint64 {
	rank := uint64(rankPermutation(s.CP[:]))
	return rank*2187 + cornerOrientationCode(s)
}

func (g *CornerDatabaseGoal) Index(s *State, depth uint8) bool {
	return g.db.SetNumMoves(g.DatabaseIndex(s), depth)
}

func (g *CornerDatabaseGoal) IsSatisfied(*State) bool { return g.db.FullyPopulated() }
func (g *CornerDatabaseGoal) Description() string     { return "corner pattern database" }

// --- EdgeDatabaseGoal (G1, G2) ---

var edgeDBSize = uint64(pick(12, 6)) * 64 // 12P6 * 2^6

// EdgeDatabaseGoal tracks a fixed 6-edge subset's positions (ranked as an
// ordered partial permutation, 12P6) and orientations (2^6). Set A is
// edge identities {0..5}; Set B (the complement, used for the second Korf
// edge database) is {6..11}.
type EdgeDatabaseGoal struct {
	db  *PatternDatabase
	set [6]uint8
}

func NewEdgeDatabaseGoalG1() *EdgeDatabaseGoal {
	return &EdgeDatabaseGoal{db: NewPatternDatabase(edgeDBSize), set: [6]uint8{0, 1, 2, 3, 4, 5}}
}

func NewEdgeDatabaseGoalG2() *EdgeDatabaseGoal {
	return &EdgeDatabaseGoal{db: NewPatternDatabase(edgeDBSize), set: [6]uint8{6, 7, 8, 9, 10, 11}}
}

func (g *EdgeDatabaseGoal) DB() *PatternDatabase { return g.db }

func (g *EdgeDatabaseGoal) DatabaseIndex(s *State) uint64 {
	slotOf := invertEdges(s)
	var slots [6]uint8
	var orient uint64
	for i, id := range g.set {
		slot := slotOf[id]
		slots[i] = uint8(slot)
		orient = orient*2 + uint64(s.EO[slot])
	}
	rank := uint64(rankPartialPermutation(slots[:], 12))
	return rank*64 + orient
}

func (g *EdgeDatabaseGoal) Index(s *State, depth uint8) bool {
	return g.db.SetNumMoves(g.DatabaseIndex(s), depth)
}

func (g *EdgeDatabaseGoal) IsSatisfied(*State) bool { return g.db.FullyPopulated() }
func (g *EdgeDatabaseGoal) Description() string     { return "edge pattern database" }

// --- EdgePermutationDatabaseGoal ---

var edgePermDBSize = uint64(factorial(12)) / 2 // 12! / 2

// EdgePermutationDatabaseGoal ranks the full 12-edge permutation and
// halves the rank, so each cell holds the two permutations that differ
// only in the order of the last two edges (12!/2 cells). Both are
// reachable; a cell keeps the smaller of their two depths.
type EdgePermutationDatabaseGoal struct {
	db *PatternDatabase
}

func NewEdgePermutationDatabaseGoal() *EdgePermutationDatabaseGoal {
	return &EdgePermutationDatabaseGoal{db: NewPatternDatabase(edgePermDBSize)}
}

func (g *EdgePermutationDatabaseGoal) DB() *PatternDatabase { return g.db }

func (g *EdgePermutationDatabaseGoal) DatabaseIndex(s *State) uint64 {
	return uint64(rankPermutation(s.EP[:])) / 2
}

func (g *EdgePermutationDatabaseGoal) Index(s *State, depth uint8) bool {
	return g.db.SetNumMoves(g.DatabaseIndex(s), depth)
}

func (g *EdgePermutationDatabaseGoal) IsSatisfied(*State) bool { return g.db.FullyPopulated() }
func (g *EdgePermutationDatabaseGoal) Description() string     { return "edge permutation database" }

// --- Thistlethwaite G1 database goal (edge orientation) ---

const thistleG1DBSize = 2048 // 2^11

// G1DatabaseGoal drives the edge-orientation-only database used as the
// IDA* heuristic for stage A (G0 -> G1).
type G1DatabaseGoal struct {
	db *PatternDatabase
}

func NewG1DatabaseGoal() *G1DatabaseGoal {
	return &G1DatabaseGoal{db: NewPatternDatabase(thistleG1DBSize)}
}

func (g *G1DatabaseGoal) DB() *PatternDatabase { return g.db }
func (g *G1DatabaseGoal) DatabaseIndex(s *State) uint64 { return edgeOrientationCode(s) }
func (g *G1DatabaseGoal) Index(s *State, depth uint8) bool {
	return g.db.SetNumMoves(g.DatabaseIndex(s), depth)
}
func (g *G1DatabaseGoal) IsSatisfied(*State) bool { return g.db.FullyPopulated() }
func (g *G1DatabaseGoal) Description() string     { return "Thistlethwaite G1 (edge orientation) database" }

// --- Thistlethwaite G2 database goal (corner orientation x M-slice combo) ---

const thistleG2DBSize = 11880 * 2187 // 12P4 * 3^7

// mSliceIdentities are the edge identities lying in the M slice (between
// L and R) in the solved cube: UB, UF, DF, DB.
var mSliceIdentities = [4]uint8{0, 2, 8, 10}

// G2DatabaseGoal drives the database used as the IDA* heuristic for stage
// B (G1 -> G2): the ordered rank (12P4) of which slots the M-slice edges
// currently occupy, times the corner orientation code (3^7).
type G2DatabaseGoal struct {
	db *PatternDatabase
}

func NewG2DatabaseGoal() *G2DatabaseGoal {
	return &G2DatabaseGoal{db: NewPatternDatabase(thistleG2DBSize)}
}

func (g *G2DatabaseGoal) DB() *PatternDatabase { return g.db }

func (g *G2DatabaseGoal) DatabaseIndex(s *State) uint64 {
	slotOf := invertEdges(s)
	var slots [4]uint8
	for i, id := range mSliceIdentities {
		slots[i] = uint8(slotOf[id])
	}
	rank := uint64(rankPartialPermutation(slots[:], 12))
	return rank*2187 + cornerOrientationCode(s)
}

func (g *G2DatabaseGoal) Index(s *State, depth uint8) bool {
	return g.db.SetNumMoves(g.DatabaseIndex(s), depth)
}
func (g *G2DatabaseGoal) IsSatisfied(*State) bool { return g.db.FullyPopulated() }
func (g *G2DatabaseGoal) Description() string     { return "Thistlethwaite G2 (corner orient x M-slice) database" }

// --- Thistlethwaite G2->G3 corner database goal ---

var thistleCornerPermDBSize = uint64(factorial(8)) // 8!

// G2G3CornerDatabaseGoal drives the database used as the IDA* heuristic
// for stage C (G2 -> G3 corners): rank of the corner permutation alone
// (corner orientation is already solved by stage B).
type G2G3CornerDatabaseGoal struct {
	db *PatternDatabase
}

func NewG2G3CornerDatabaseGoal() *G2G3CornerDatabaseGoal {
	return &G2G3CornerDatabaseGoal{db: NewPatternDatabase(thistleCornerPermDBSize)}
}

func (g *G2G3CornerDatabaseGoal) DB() *PatternDatabase { return g.db }
func (g *G2G3CornerDatabaseGoal) DatabaseIndex(s *State) uint64 {
	return uint64(rankPermutation(s.CP[:]))
}
func (g *G2G3CornerDatabaseGoal) Index(s *State, depth uint8) bool {
	return g.db.SetNumMoves(g.DatabaseIndex(s), depth)
}
func (g *G2G3CornerDatabaseGoal) IsSatisfied(*State) bool { return g.db.FullyPopulated() }
func (g *G2G3CornerDatabaseGoal) Description() string {
	return "Thistlethwaite G2->G3 corner permutation database"
}

// --- Thistlethwaite stage transition goals ---

// eSliceIdentities are the edge identities lying in the E slice (between
// U and D): FR, FL, BL, BR.
var eSliceIdentities = [4]uint8{4, 5, 6, 7}

// sSliceIdentities are the edge identities lying in the S slice (between
// F and B): UR, UL, DR, DL.
var sSliceIdentities = [4]uint8{1, 3, 9, 11}

// GoalG0G1 is satisfied once edge orientation is solved.
type GoalG0G1 struct{}

func (GoalG0G1) IsSatisfied(s *State) bool {
	for i := 0; i < 12; i++ {
		if s.EO[i] != 0 {
			return false
		}
	}
	return true
}
func (GoalG0G1) Description() string { return "edge orientation solved (G0 -> G1)" }

// GoalG1G2 is satisfied once corner orientation is solved and the
// M-slice edges occupy M-slice slots (order within the slice is not yet
// required).
type GoalG1G2 struct{}

func (GoalG1G2) IsSatisfied(s *State) bool {
	for i := 0; i < 8; i++ {
		if s.CO[i] != 0 {
			return false
		}
	}
	return identitiesInSlots(s, mSliceIdentities[:], []int{0, 2, 8, 10})
}
func (GoalG1G2) Description() string {
	return "corner orientation solved, M-slice edges in M-slice (G1 -> G2)"
}

// identitiesInSlots reports whether every identity in ids currently
// occupies one of the given edge slots (as a set, order unconstrained).
func identitiesInSlots(s *State, ids []uint8, slots []int) bool {
	want := make(map[uint8]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for _, slot := range slots {
		if !want[s.EP[slot]] {
			return false
		}
	}
	return true
}

// GoalG2G3Corners is satisfied once the corner permutation is fully
// solved and the E- and S-slice edges occupy their own slices. This is a
// deliberately strengthened version of the textbook Thistlethwaite
// G2 -> G3 invariant (which only requires coset membership, not full
// corner resolution) — see DESIGN.md for the rationale; it keeps stage D
// a plain finishing BFS without needing a corner-permutation coset table.
type GoalG2G3Corners struct{}

func (GoalG2G3Corners) IsSatisfied(s *State) bool {
	for i := 0; i < 8; i++ {
		if s.CP[i] != uint8(i) {
			return false
		}
	}
	return identitiesInSlots(s, eSliceIdentities[:], []int{4, 5, 6, 7}) &&
		identitiesInSlots(s, sSliceIdentities[:], []int{1, 3, 9, 11})
}
func (GoalG2G3Corners) Description() string {
	return "corner permutation solved, E/S-slice edges in their slices (G2 -> G3, corners)"
}

// GoalG2G3Edges is satisfied once the cube is fully solved; by the time
// stage D runs, only the E/S/M-slice edge orderings remain, which half
// turns alone can always finish.
type GoalG2G3Edges struct{}

func (GoalG2G3Edges) IsSatisfied(s *State) bool { return s.IsSolved() }
func (GoalG2G3Edges) Description() string       { return "cube fully solved (G2 -> G3, edges)" }
