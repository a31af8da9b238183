package enumerate_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/rnaenum/enumerate"
	"github.com/katalvlaran/rnaenum/nucleotide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnumerateParallel_Equivalence compares the parallel and sequential
// result multisets over several inputs with multiple mutation sets.
func TestEnumerateParallel_Equivalence(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		r    func() enumerate.Restrictions
	}{
		{"AUGC up to two mutations", "AUGC", func() enumerate.Restrictions {
			r := enumerate.DefaultRestrictions()
			r.MinMutations, r.MaxMutations = 0, 2
			return r
		}},
		{"ordered bonds", "AUCAUG", func() enumerate.Restrictions {
			r := enumerate.DefaultRestrictions()
			r.MaxMutations = 2
			r.OrderedBonds = true
			return r
		}},
		{"restricted sites", "GGCAUCGAUC", func() enumerate.Restrictions {
			r := enumerate.DefaultRestrictions()
			r.MinMutations, r.MaxMutations = 1, 3
			r.MinBonds, r.MaxBonds = 1, 3
			r.MutationSites = enumerate.Sites(0, 3, 5, 8)
			r.BondSites = enumerate.Sites(0, 1, 2, 4, 6, 7, 9)
			return r
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			symbols := nucleotide.MustParse(tc.seq)
			seq, err := enumerate.Enumerate(symbols, tc.r())
			require.NoError(t, err)
			par, err := enumerate.EnumerateParallel(symbols, tc.r())
			require.NoError(t, err)

			if diff := cmp.Diff(sortedKeys(seq), sortedKeys(par)); diff != "" {
				t.Errorf("parallel result differs from sequential (-seq +par):\n%s", diff)
			}
		})
	}
}

// TestEnumerateParallel_Workers checks that capping the pool (down to a single
// worker) does not change the result.
func TestEnumerateParallel_Workers(t *testing.T) {
	symbols := nucleotide.MustParse("AUGCAU")
	r := enumerate.DefaultRestrictions()
	r.MaxMutations = 2

	want, err := enumerate.Enumerate(symbols, r)
	require.NoError(t, err)

	for _, w := range []int{1, 2, 64} {
		got, err := enumerate.EnumerateParallel(symbols, r, enumerate.WithWorkers(w))
		require.NoError(t, err)
		if diff := cmp.Diff(sortedKeys(want), sortedKeys(got)); diff != "" {
			t.Errorf("workers=%d (-want +got):\n%s", w, diff)
		}
	}
}

func TestEnumerateParallel_EmptyBounds(t *testing.T) {
	r := enumerate.DefaultRestrictions()
	r.MinBonds = 5
	got, err := enumerate.EnumerateParallel(nucleotide.MustParse("AUGC"), r)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestEnumerateParallel_Cancelled surfaces the context error once every
// branch has returned.
func TestEnumerateParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := enumerate.EnumerateParallel(nucleotide.MustParse("AUGC"), enumerate.DefaultRestrictions(), enumerate.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}
