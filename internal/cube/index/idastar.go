package index

import "math"

const dfsFound = -1

// Heuristic estimates moves remaining to satisfy some goal from s. Every
// Heuristic used by IDACubeSearcher must be admissible (never overestimate)
// or the search can miss the optimal solution.
type Heuristic interface {
	Estimate(s *State) uint8
}

// ZeroHeuristic is the trivially admissible heuristic: IDA* with it
// degenerates to plain iterative-deepening DFS. Used for stages with no
// dedicated pattern database.
type ZeroHeuristic struct{}

func (ZeroHeuristic) Estimate(*State) uint8 { return 0 }

// PDBHeuristic wraps a single DatabaseGoal's populated database as a
// one-table heuristic.
type PDBHeuristic struct {
	Goal DatabaseGoal
}

func (h PDBHeuristic) Estimate(s *State) uint8 {
	return h.Goal.DB().GetNumMoves(h.Goal.DatabaseIndex(s))
}

// CompositeHeuristic combines several admissible heuristics by taking their
// max, which is itself admissible and is the sharpest bound available from
// the set. This is how the four Korf pattern databases combine (spec.md §4.7).
type CompositeHeuristic []Heuristic

func (c CompositeHeuristic) Estimate(s *State) uint8 {
	var best uint8
	for _, h := range c {
		if v := h.Estimate(s); v > best {
			best = v
		}
	}
	return best
}

// IDACubeSearcher is iterative-deepening A*: DFS with a monotonically
// increasing f-bound, pruned by the admissible heuristic h.
type IDACubeSearcher struct {
	pruner MovePruner
	h      Heuristic
}

func NewIDACubeSearcher(h Heuristic) *IDACubeSearcher {
	return &IDACubeSearcher{h: h}
}

// FindGoal returns a shortest move sequence taking cube to a state
// satisfying goal, searching only moves from moveStore. Never fails to
// find a solution on a legal, solvable cube; if it does, that is an
// invariant breach upstream (corrupt state or a non-admissible heuristic),
// not an expected runtime outcome.
func (s *IDACubeSearcher) FindGoal(goal Goal, cube *State, moveStore MoveStore) []Move {
	bound := int(s.h.Estimate(cube))
	var history []Move

	for {
		cur := cube.Clone()
		t := s.dfs(goal, cur, 0, MoveNone, bound, moveStore, &history)
		if t == dfsFound {
			return history
		}
		if t == math.MaxInt32 {
			panic("index: IDA* exhausted search space without finding a satisfiable goal")
		}
		bound = t
	}
}

func (s *IDACubeSearcher) dfs(goal Goal, cube *State, g int, prev Move, bound int, moveStore MoveStore, history *[]Move) int {
	f := g + int(s.h.Estimate(cube))
	if f > bound {
		return f
	}
	if goal.IsSatisfied(cube) {
		return dfsFound
	}

	min := math.MaxInt32
	numMoves := moveStore.Count()
	for i := uint8(0); i < numMoves; i++ {
		move := moveStore.Get(i)
		if s.pruner.Prune(move, prev) {
			continue
		}

		inv := move.Inverse()
		cube.Move(move)
		*history = append(*history, move)

		t := s.dfs(goal, cube, g+1, move, bound, moveStore, history)
		if t == dfsFound {
			return dfsFound
		}
		if t < min {
			min = t
		}

		cube.Move(inv)
		*history = (*history)[:len(*history)-1]
	}
	return min
}
