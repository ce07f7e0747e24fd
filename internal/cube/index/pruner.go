package index

// MovePruner is the static predicate described in spec.md §4.2: given the
// previous move and a candidate next move, report whether next can be
// skipped as provably redundant.
type MovePruner struct{}

// Prune reports whether next should be skipped given prev was the last
// move applied. prev == MoveNone always returns false.
func (MovePruner) Prune(next, prev Move) bool {
	if prev == MoveNone {
		return false
	}

	nf := next.Face()
	pf := prev.Face()

	// Same face: collapses consecutive same-face moves that the search
	// would otherwise rediscover one depth later as a single composed move.
	if nf == pf {
		return true
	}

	// Opposite faces (U/D, L/R, F/B): break the "U D" vs "D U" symmetry by
	// requiring the smaller face index to come first in the canonical
	// ordering, without losing any coset representative.
	if nf/2 == pf/2 && pf > nf {
		return true
	}

	return false
}
