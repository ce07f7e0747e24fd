package index

import "path/filepath"

// KorfSolver orchestrates Richard Korf's optimal-solving method: four
// independent pattern databases (corner, two edge-position/orientation
// splits, and edge permutation) combined into one admissible heuristic
// and searched with IDA*. Grounded on
// original_source/src/Controller/Command/Solver/KorfCubeSolver.cpp.
type KorfSolver struct {
	corner     *CornerDatabaseGoal
	edgeG1     *EdgeDatabaseGoal
	edgeG2     *EdgeDatabaseGoal
	edgePerm   *EdgePermutationDatabaseGoal
	pool       *ThreadPool
	heuristic  CompositeHeuristic
	ready      bool
}

// NewKorfSolver allocates the four pattern databases (unpopulated) and a
// worker pool of the given size. workers should usually be 4, one per
// database build job, per spec.md §9.
func NewKorfSolver(workers int) *KorfSolver {
	return &KorfSolver{
		corner:   NewCornerDatabaseGoal(),
		edgeG1:   NewEdgeDatabaseGoalG1(),
		edgeG2:   NewEdgeDatabaseGoalG2(),
		edgePerm: NewEdgePermutationDatabaseGoal(),
		pool:     NewThreadPool(workers),
	}
}

// Initialize populates all four pattern databases, loading each from
// dataDir if a prior build was persisted there, building it otherwise.
// Builds run concurrently on the pool; Initialize blocks until every
// database is populated and inflated. Callers must not call Solve before
// Initialize returns.
func (k *KorfSolver) Initialize(dataDir string) error {
	solved := Solved()
	twist := NewTwistStore()

	jobs := []func() error{
		func() error {
			path := filepath.Join(dataDir, "corner.pdb")
			if loaded, _ := k.corner.DB().FromFile(path); !loaded {
				NewBreadthFirstCubeSearcher().FindGoalDatabase(k.corner, solved, twist)
				return k.corner.DB().ToFile(path)
			}
			return nil
		},
		func() error {
			path := filepath.Join(dataDir, "edgeG1.pdb")
			if loaded, _ := k.edgeG1.DB().FromFile(path); !loaded {
				seen := NewSeenDatabase(k.edgeG1)
				NewPatternDatabaseIndexer().FindGoal(k.edgeG1, solved, seen, twist)
				return k.edgeG1.DB().ToFile(path)
			}
			return nil
		},
		func() error {
			path := filepath.Join(dataDir, "edgeG2.pdb")
			if loaded, _ := k.edgeG2.DB().FromFile(path); !loaded {
				seen := NewSeenDatabase(k.edgeG2)
				NewPatternDatabaseIndexer().FindGoal(k.edgeG2, solved, seen, twist)
				return k.edgeG2.DB().ToFile(path)
			}
			return nil
		},
		func() error {
			path := filepath.Join(dataDir, "edge_perm.pdb")
			if loaded, _ := k.edgePerm.DB().FromFile(path); !loaded {
				seen := NewSeenDatabase(k.edgePerm)
				NewPatternDatabaseIndexer().FindGoal(k.edgePerm, solved, seen, twist)
				return k.edgePerm.DB().ToFile(path)
			}
			return nil
		},
	}

	done := make(chan struct{})
	errs := make([]error, len(jobs))
	counter := NewCompletionCounter(len(jobs), func() { close(done) })

	for i, job := range jobs {
		i, job := i, job
		k.pool.AddJob(func() {
			errs[i] = job()
			counter.Done()
		})
	}
	<-done

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	k.corner.DB().Inflate()
	k.edgeG1.DB().Inflate()
	k.edgeG2.DB().Inflate()
	k.edgePerm.DB().Inflate()

	k.heuristic = CompositeHeuristic{
		PDBHeuristic{Goal: k.corner},
		PDBHeuristic{Goal: k.edgeG1},
		PDBHeuristic{Goal: k.edgeG2},
		PDBHeuristic{Goal: k.edgePerm},
	}
	k.ready = true
	return nil
}

// Solve returns an optimal move sequence solving cube. Initialize must
// have been called first.
func (k *KorfSolver) Solve(cube *State) []Move {
	if !k.ready {
		panic("index: KorfSolver.Solve called before Initialize")
	}
	searcher := NewIDACubeSearcher(k.heuristic)
	return searcher.FindGoal(SolveGoal{}, cube, NewTwistStore())
}
