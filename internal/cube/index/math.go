package index

// factorial returns n!.
func factorial(n uint32) uint32 {
	if n <= 1 {
		return 1
	}
	return n * factorial(n-1)
}

// pick returns nPk: n!/(n-k)!.
func pick(n, k uint32) uint32 {
	r := uint32(1)
	for i := uint32(0); i < k; i++ {
		r *= n - i
	}
	return r
}

// rankPermutation computes the Lehmer-code rank of perm, a permutation of
// the n distinct values in perm, among all orderings of those n values.
// rank(unrank(i)) == i and unrank(rank(p)) == p for every i in [0, n!).
func rankPermutation(perm []uint8) uint32 {
	n := len(perm)
	rank := uint32(0)
	for i := 0; i < n; i++ {
		smaller := uint32(0)
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				smaller++
			}
		}
		rank += smaller * factorial(uint32(n-i-1))
	}
	return rank
}

// unrankPermutation inverts rankPermutation for n distinct values drawn
// from the domain {0, ..., n-1}.
func unrankPermutation(rank uint32, n int) []uint8 {
	available := make([]uint8, n)
	for i := range available {
		available[i] = uint8(i)
	}
	perm := make([]uint8, n)
	for i := 0; i < n; i++ {
		f := factorial(uint32(n - i - 1))
		idx := rank / f
		rank %= f
		perm[i] = available[idx]
		available = append(available[:idx], available[idx+1:]...)
	}
	return perm
}

// rankPartialPermutation ranks a length-k selection (in order) drawn from
// an m-valued domain using falling-factorial (nPk) place values. Used for
// the edge-subset projections (e.g. 12P6) where only a subset of slots is
// tracked.
func rankPartialPermutation(values []uint8, m int) uint32 {
	k := len(values)
	used := make([]bool, m)
	rank := uint32(0)
	for i := 0; i < k; i++ {
		// Count how many unused values below values[i] remain, to get the
		// value's rank among the still-available domain.
		v := int(values[i])
		lower := 0
		for x := 0; x < v; x++ {
			if !used[x] {
				lower++
			}
		}
		used[v] = true
		rank = rank*uint32(m-i) + uint32(lower)
	}
	return rank
}

