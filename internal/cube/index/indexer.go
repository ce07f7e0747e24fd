package index

// indexerNode is one frame of the non-recursive IDDFS stack: the cube state
// at this node, the move that produced it (MoveNone at the root), and its
// depth from solved.
type indexerNode struct {
	state *State
	move  Move
	depth uint8
}

// PatternDatabaseIndexer drives a DatabaseGoal's construction by exploring
// every reachable cube state out to increasing depth, indexing each newly
// discovered subspace cell the first time it is reached (which is always
// the shallowest depth, since depth increases by exactly one move at a
// time). This is a non-recursive, stack-based IDDFS: recursion would blow
// the call stack at the depths Korf's corner/edge databases reach.
type PatternDatabaseIndexer struct {
	pruner MovePruner
}

func NewPatternDatabaseIndexer() *PatternDatabaseIndexer {
	return &PatternDatabaseIndexer{}
}

// NewSeenDatabase allocates the scratch database FindGoal needs for goal,
// sized to match goal's own subspace so the same DatabaseIndex projection
// can address both.
func NewSeenDatabase(goal DatabaseGoal) *PatternDatabase {
	return NewPatternDatabase(goal.DB().Size())
}

// FindGoal explores breadth-by-depth from solved until goal reports its
// owned database fully populated. seenDB is scratch space sized and indexed
// identically to goal's own database (see NewSeenDatabase); it is reset at
// the start of every depth iteration and used only to avoid revisiting a
// state already queued at the current iteration's shallower depths.
func (idx *PatternDatabaseIndexer) FindGoal(goal DatabaseGoal, solved *State, seenDB *PatternDatabase, moveStore MoveStore) {
	curDepth := uint8(0)
	numMoves := moveStore.Count()
	var stack []indexerNode

	goal.Index(solved, 0)

	for !goal.IsSatisfied(solved) {
		if len(stack) == 0 {
			curDepth++
			stack = append(stack, indexerNode{state: solved.Clone(), move: MoveNone, depth: 0})
			seenDB.Reset()
			seenDB.SetNumMoves(goal.DatabaseIndex(solved), 0)
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i := uint8(0); i < numMoves; i++ {
			move := moveStore.Get(i)
			if idx.pruner.Prune(move, cur.move) {
				continue
			}

			next := cur.state.Clone()
			next.Move(move)
			nextDepth := cur.depth + 1

			dbIdx := goal.DatabaseIndex(next)
			if seenDB.GetNumMoves(dbIdx) >= nextDepth {
				seenDB.SetNumMoves(dbIdx, nextDepth)

				if nextDepth == curDepth {
					goal.Index(next, nextDepth)
				} else {
					stack = append(stack, indexerNode{state: next, move: move, depth: nextDepth})
				}
			}
		}
	}
}
