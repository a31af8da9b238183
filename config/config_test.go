package config_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/rnaenum/config"
	"github.com/katalvlaran/rnaenum/enumerate"
	"github.com/katalvlaran/rnaenum/nucleotide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullJob = `
sequence: augc au
restrictions:
  min_mutations: 1
  max_mutations: 2
  min_bonds: 0
  max_bonds: 3
  mutation_sites: [1, 2]
  bond_sites: [0, 1, 3]
  ordered_bonds: true
parallel: true
workers: 4
`

func decode(t *testing.T, text string) *config.File {
	t.Helper()
	f, err := config.Decode(strings.NewReader(text))
	require.NoError(t, err)

	return f
}

func TestJob_Full(t *testing.T) {
	job, err := decode(t, fullJob).Job()
	require.NoError(t, err)

	assert.Equal(t, nucleotide.MustParse("AUGCAU"), job.Symbols)
	assert.Equal(t, enumerate.Restrictions{
		MinMutations:  1,
		MaxMutations:  2,
		MinBonds:      0,
		MaxBonds:      3,
		MutationSites: []int{1, 2},
		BondSites:     []int{0, 1, 3},
		OrderedBonds:  true,
	}, job.Restrictions)
	assert.True(t, job.Parallel)
	assert.Equal(t, 4, job.Workers)
}

func TestJob_Defaults(t *testing.T) {
	job, err := decode(t, "sequence: AUGC\n").Job()
	require.NoError(t, err)

	r := job.Restrictions
	assert.Equal(t, math.MaxInt, r.MaxMutations)
	assert.Equal(t, math.MaxInt, r.MaxBonds)
	assert.Nil(t, r.MutationSites, "absent list means every position")
	assert.Nil(t, r.BondSites)
	assert.False(t, job.Parallel)
	assert.Zero(t, job.Workers)
}

func TestJob_ExplicitEmptySites(t *testing.T) {
	job, err := decode(t, "sequence: AUGC\nrestrictions:\n  mutation_sites: []\n  max_mutations: 0\n").Job()
	require.NoError(t, err)

	require.NotNil(t, job.Restrictions.MutationSites, "[] means no position")
	assert.Empty(t, job.Restrictions.MutationSites)
	assert.Equal(t, 0, job.Restrictions.MaxMutations)
}

func TestJob_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing sequence":   "restrictions:\n  max_bonds: 1\n",
		"blank sequence":     "sequence: '   '\n",
		"negative min":       "sequence: AUGC\nrestrictions:\n  min_bonds: -1\n",
		"negative max":       "sequence: AUGC\nrestrictions:\n  max_mutations: -2\n",
		"min above max":      "sequence: AUGC\nrestrictions:\n  min_mutations: 3\n  max_mutations: 1\n",
		"bond min above max": "sequence: AUGC\nrestrictions:\n  min_bonds: 2\n  max_bonds: 1\n",
		"site out of range":  "sequence: AUGC\nrestrictions:\n  bond_sites: [0, 4]\n",
		"negative site":      "sequence: AUGC\nrestrictions:\n  mutation_sites: [-1]\n",
		"negative workers":   "sequence: AUGC\nworkers: -1\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decode(t, text).Job()
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidJob)
		})
	}
}

// TestJob_SitesUseParsedLength: site bounds follow the number of bases, not
// the raw text length, so whitespace in the sequence does not widen them.
func TestJob_SitesUseParsedLength(t *testing.T) {
	job, err := decode(t, "sequence: 'AU GC'\nrestrictions:\n  bond_sites: [0, 3]\n").Job()
	require.NoError(t, err)
	assert.Len(t, job.Symbols, 4)
	assert.Equal(t, []int{0, 3}, job.Restrictions.BondSites)

	f := decode(t, "sequence: 'AU GC'\nrestrictions:\n  bond_sites: [4]\n")
	err = f.Validate()
	require.ErrorIs(t, err, config.ErrInvalidJob)
	assert.Contains(t, err.Error(), "BondSites")
}

func TestJob_UnknownSymbol(t *testing.T) {
	_, err := decode(t, "sequence: AUXC\n").Job()
	require.Error(t, err)
	assert.ErrorIs(t, err, nucleotide.ErrUnknownSymbol)
	assert.NotErrorIs(t, err, config.ErrInvalidJob)
}

func TestDecode_Rejects(t *testing.T) {
	_, err := config.Decode(strings.NewReader("sequence: AUGC\nmax_bonds: 2\n"))
	assert.ErrorIs(t, err, config.ErrInvalidJob, "unknown top-level key")

	_, err = config.Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, config.ErrInvalidJob, "empty document")

	_, err = config.Decode(strings.NewReader("sequence: [unclosed"))
	assert.ErrorIs(t, err, config.ErrInvalidJob, "malformed yaml")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullJob), 0o600))

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "augc au", f.Sequence)
	require.NotNil(t, f.Restrictions.MaxBonds)
	assert.Equal(t, 3, *f.Restrictions.MaxBonds)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestJob_RunsEngine feeds a decoded job straight into the engine.
func TestJob_RunsEngine(t *testing.T) {
	job, err := decode(t, "sequence: AUGC\nrestrictions:\n  max_mutations: 0\n  max_bonds: 2\n").Job()
	require.NoError(t, err)

	seqs, err := enumerate.Enumerate(job.Symbols, job.Restrictions)
	require.NoError(t, err)
	assert.Len(t, seqs, 4)
}
