package index

import "path/filepath"

// ThistlethwaiteSolver orchestrates Morwen Thistlethwaite's four-stage
// group-reduction method: each stage restricts the legal move set further
// (TwistStore -> G1TwistStore -> G2TwistStore -> G3TwistStore) until the
// cube is solved. Grounded on
// original_source/Controller/Command/Solver/ThistlethwaiteCubeSolver.h.
type ThistlethwaiteSolver struct {
	g1     *G1DatabaseGoal
	g2     *G2DatabaseGoal
	g2g3c  *G2G3CornerDatabaseGoal
	ready  bool
}

// NewThistlethwaiteSolver allocates the stage pattern databases
// (unpopulated).
func NewThistlethwaiteSolver() *ThistlethwaiteSolver {
	return &ThistlethwaiteSolver{
		g1:    NewG1DatabaseGoal(),
		g2:    NewG2DatabaseGoal(),
		g2g3c: NewG2G3CornerDatabaseGoal(),
	}
}

// Initialize populates the stage databases, loading from dataDir if a
// prior build was persisted there. Unlike KorfSolver's four independent
// databases, the three stage databases here are cheap enough (at most
// ~26M cells) to build sequentially on the calling goroutine.
func (t *ThistlethwaiteSolver) Initialize(dataDir string) error {
	solved := Solved()
	twist := NewTwistStore()
	g1Twist := NewG1TwistStore()

	if loaded, err := t.g1.DB().FromFile(filepath.Join(dataDir, "thistle_g1.pdb")); err != nil {
		return err
	} else if !loaded {
		seen := NewSeenDatabase(t.g1)
		NewPatternDatabaseIndexer().FindGoal(t.g1, solved, seen, twist)
		if err := t.g1.DB().ToFile(filepath.Join(dataDir, "thistle_g1.pdb")); err != nil {
			return err
		}
	}

	if loaded, err := t.g2.DB().FromFile(filepath.Join(dataDir, "thistle_g2.pdb")); err != nil {
		return err
	} else if !loaded {
		seen := NewSeenDatabase(t.g2)
		NewPatternDatabaseIndexer().FindGoal(t.g2, solved, seen, g1Twist)
		if err := t.g2.DB().ToFile(filepath.Join(dataDir, "thistle_g2.pdb")); err != nil {
			return err
		}
	}

	g2Twist := NewG2TwistStore()
	if loaded, err := t.g2g3c.DB().FromFile(filepath.Join(dataDir, "thistle_g2g3c.pdb")); err != nil {
		return err
	} else if !loaded {
		seen := NewSeenDatabase(t.g2g3c)
		NewPatternDatabaseIndexer().FindGoal(t.g2g3c, solved, seen, g2Twist)
		if err := t.g2g3c.DB().ToFile(filepath.Join(dataDir, "thistle_g2g3c.pdb")); err != nil {
			return err
		}
	}

	t.g1.DB().Inflate()
	t.g2.DB().Inflate()
	t.g2g3c.DB().Inflate()
	t.ready = true
	return nil
}

// Solve runs the four Thistlethwaite stages in sequence, forwarding the
// intermediate cube state from one to the next, and concatenates their
// move lists in order.
func (t *ThistlethwaiteSolver) Solve(cube *State) []Move {
	if !t.ready {
		panic("index: ThistlethwaiteSolver.Solve called before Initialize")
	}

	var all []Move
	cur := cube.Clone()

	stageA := NewIDACubeSearcher(PDBHeuristic{Goal: t.g1})
	movesA := stageA.FindGoal(GoalG0G1{}, cur, NewTwistStore())
	cur.MoveSeq(movesA)
	all = append(all, movesA...)

	stageB := NewIDACubeSearcher(PDBHeuristic{Goal: t.g2})
	movesB := stageB.FindGoal(GoalG1G2{}, cur, NewG1TwistStore())
	cur.MoveSeq(movesB)
	all = append(all, movesB...)

	stageC := NewIDACubeSearcher(PDBHeuristic{Goal: t.g2g3c})
	movesC := stageC.FindGoal(GoalG2G3Corners{}, cur, NewG2TwistStore())
	cur.MoveSeq(movesC)
	all = append(all, movesC...)

	stageD := NewBreadthFirstCubeSearcher()
	movesD := stageD.FindGoal(GoalG2G3Edges{}, cur, NewG3TwistStore())
	cur.MoveSeq(movesD)
	all = append(all, movesD...)

	return all
}
