package index

import (
	"math/rand"
	"testing"
)

func TestFactorial(t *testing.T) {
	cases := []struct {
		n    uint32
		want uint32
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 6}, {4, 24}, {5, 120}, {8, 40320}, {12, 479001600},
	}
	for _, c := range cases {
		if got := factorial(c.n); got != c.want {
			t.Errorf("factorial(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestPick(t *testing.T) {
	cases := []struct {
		n, k uint32
		want uint32
	}{
		{12, 6, 665280}, // 12P6
		{12, 4, 11880},  // 12P4
		{8, 0, 1},
		{5, 5, 120},
	}
	for _, c := range cases {
		if got := pick(c.n, c.k); got != c.want {
			t.Errorf("pick(%d, %d) = %d, want %d", c.n, c.k, got, c.want)
		}
	}
}

// TestRankUnrankPermutationRoundTrip checks rank(unrank(i)) == i for every
// rank of a small permutation domain, and unrank(rank(p)) == p for every
// permutation reachable that way.
func TestRankUnrankPermutationRoundTrip(t *testing.T) {
	const n = 5
	total := factorial(n)
	for rank := uint32(0); rank < total; rank++ {
		perm := unrankPermutation(rank, n)
		if len(perm) != n {
			t.Fatalf("unrankPermutation(%d, %d) returned length %d", rank, n, len(perm))
		}
		seen := make([]bool, n)
		for _, v := range perm {
			if int(v) >= n || seen[v] {
				t.Fatalf("unrankPermutation(%d, %d) = %v is not a permutation", rank, n, perm)
			}
			seen[v] = true
		}
		got := rankPermutation(perm)
		if got != rank {
			t.Errorf("rankPermutation(unrankPermutation(%d)) = %d, want %d", rank, got, rank)
		}
	}
}

func TestRankPermutationDistinctForAllOrderings(t *testing.T) {
	const n = 6
	total := factorial(n)
	seen := make(map[uint32]bool, total)
	for rank := uint32(0); rank < total; rank++ {
		perm := unrankPermutation(rank, n)
		r := rankPermutation(perm)
		if seen[r] {
			t.Fatalf("rank %d collided with a previously seen rank for perm %v", r, perm)
		}
		seen[r] = true
	}
	if uint32(len(seen)) != total {
		t.Fatalf("got %d distinct ranks, want %d", len(seen), total)
	}
}

// TestRankPartialPermutationAgreesWithFullRank checks that, for every
// permutation of 5 elements, the rank of the full permutation (k == m)
// agrees with rankPermutation.
func TestRankPartialPermutationAgreesWithFullRank(t *testing.T) {
	const n = 5
	total := factorial(n)
	for rank := uint32(0); rank < total; rank++ {
		perm := unrankPermutation(rank, n)
		full := rankPermutation(perm)
		partial := rankPartialPermutation(perm, n)
		if full != partial {
			t.Errorf("rankPartialPermutation(%v, %d) = %d, want %d (full rank)", perm, n, partial, full)
		}
	}
}

func TestRankPartialPermutationDistinctAndInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const m = 12
	const k = 6
	limit := pick(m, k)
	seen := make(map[uint32]bool)
	for i := 0; i < 2000; i++ {
		perm := rng.Perm(m)
		values := make([]uint8, k)
		for j := 0; j < k; j++ {
			values[j] = uint8(perm[j])
		}
		r := rankPartialPermutation(values, m)
		if r >= limit {
			t.Fatalf("rankPartialPermutation(%v, %d) = %d out of range [0, %d)", values, m, r, limit)
		}
		seen[r] = true
	}
	if len(seen) < 1000 {
		t.Errorf("expected broad spread of ranks over 2000 random samples, only saw %d distinct", len(seen))
	}
}
