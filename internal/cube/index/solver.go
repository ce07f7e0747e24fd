package index

import "sync/atomic"

// Solver is the external driver-facing interface described in
// original_source's CubeSolver.h / KorfCubeSolver.cpp: construct against a
// shared thread pool, kick off PDB construction asynchronously with a
// completion callback, then solve cubes against the finished databases.
// It wraps KorfSolver, the pack's only solver whose database set and
// initialize/solve shape matches this interface exactly (Thistlethwaite's
// sequential three-database build has no equivalent async callback in
// original_source and is driven directly via ThistlethwaiteSolver instead).
type Solver struct {
	korf     *KorfSolver
	dataDir  string
	solving  int32
}

// NewSolver constructs a Solver around the given worker pool without
// building any pattern databases yet. dataDir is where PDBs are loaded
// from or written to.
func NewSolver(pool *ThreadPool, dataDir string) *Solver {
	s := &Solver{dataDir: dataDir}
	s.korf = &KorfSolver{
		corner:   NewCornerDatabaseGoal(),
		edgeG1:   NewEdgeDatabaseGoalG1(),
		edgeG2:   NewEdgeDatabaseGoalG2(),
		edgePerm: NewEdgePermutationDatabaseGoal(),
		pool:     pool,
	}
	return s
}

// Initialize schedules PDB construction on the solver's thread pool and
// invokes onReady exactly once, with a non-nil error if any database
// failed to build or load.
func (s *Solver) Initialize(onReady func(error)) {
	go func() {
		err := s.korf.Initialize(s.dataDir)
		onReady(err)
	}()
}

// Solve runs IDA* against the completed databases. IsSolving reports true
// for the duration of the call.
func (s *Solver) Solve(cube *State) []Move {
	atomic.StoreInt32(&s.solving, 1)
	defer atomic.StoreInt32(&s.solving, 0)
	return s.korf.Solve(cube)
}

// IsSolving reports whether a Solve call is currently in progress.
func (s *Solver) IsSolving() bool {
	return atomic.LoadInt32(&s.solving) != 0
}
