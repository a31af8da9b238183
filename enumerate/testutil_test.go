package enumerate_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/rnaenum/nucleotide"
	"github.com/katalvlaran/rnaenum/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keys renders every candidate with Sequence.String, preserving order.
func keys(seqs []*structure.Sequence) []string {
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = s.String()
	}

	return out
}

// sortedKeys renders every candidate with Sequence.Key and sorts the result,
// turning a result set into a comparable multiset.
func sortedKeys(seqs []*structure.Sequence) []string {
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = s.Key()
	}
	slices.Sort(out)

	return out
}

// contains reports whether seqs holds a candidate rendering as want.
func contains(seqs []*structure.Sequence, want string) bool {
	return slices.Contains(keys(seqs), want)
}

// checkInvariants asserts every structural and restriction property that a
// returned candidate must satisfy.
func checkInvariants(t *testing.T, symbols []nucleotide.Symbol, minMut, maxMut, minBond, maxBond int, mutSites, bondSites []int, seqs []*structure.Sequence) {
	t.Helper()
	eligible := func(sites []int, i int) bool { return sites == nil || slices.Contains(sites, i) }

	seen := make(map[string]bool, len(seqs))
	for _, s := range seqs {
		require.Equal(t, len(symbols), s.Len())
		assert.False(t, seen[s.Key()], "duplicate candidate %v", s)
		seen[s.Key()] = true

		mc := s.MutationCount()
		assert.GreaterOrEqual(t, mc, minMut, "%v", s)
		assert.LessOrEqual(t, mc, maxMut, "%v", s)
		for _, m := range s.Mutations() {
			assert.True(t, eligible(mutSites, m), "mutation %d not eligible in %v", m, s)
		}

		bc := s.BondCount()
		assert.GreaterOrEqual(t, bc, minBond, "%v", s)
		assert.LessOrEqual(t, bc, maxBond, "%v", s)

		used := make(map[int]bool)
		for _, b := range s.Bonds() {
			assert.NotEqual(t, b.Start, b.End)
			assert.True(t, eligible(bondSites, b.Start) && eligible(bondSites, b.End), "bond %v not eligible in %v", b, s)
			assert.True(t, nucleotide.Compatible(symbols[b.Start], symbols[b.End]), "bond %v incompatible in %v", b, s)
			assert.False(t, used[b.Start] || used[b.End], "position reused by %v in %v", b, s)
			used[b.Start], used[b.End] = true, true
			assert.False(t, s.At(b.Start).Mutated() || s.At(b.End).Mutated(), "bond %v touches a mutated position in %v", b, s)
		}
		for i := 0; i < s.Len(); i++ {
			_, bonded := s.At(i).Bond()
			assert.Equal(t, used[i], bonded, "position %d bond membership in %v", i, s)
		}
	}
}
