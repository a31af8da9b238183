// Package config is the input boundary of rnaenum: it reads a job (sequence,
// restrictions, execution mode) from YAML and validates it before anything
// reaches the enumeration engine.
//
// Job file format:
//
//	sequence: AUGCAU
//	restrictions:
//	  min_mutations: 0
//	  max_mutations: 2        # omitted = unlimited
//	  min_bonds: 0
//	  max_bonds: 3            # omitted = unlimited
//	  mutation_sites: [1, 2]  # omitted = every position, [] = none
//	  bond_sites: [0, 1, 3]   # omitted = every position, [] = none
//	  ordered_bonds: false
//	parallel: true
//	workers: 4                # 0 = one worker per mutation set
//
// Unknown keys are rejected. Validation (go-playground/validator) enforces
// non-negative counts, min ≤ max when a max is given, and site indices inside
// [0, len(sequence)). The engine itself clamps bounds silently; rejecting bad
// input here keeps typos in a job file from turning into empty results.
//
// Errors:
//
//   - ErrInvalidJob               decoding or validation failed.
//   - nucleotide.ErrUnknownSymbol the sequence contains a non-ACGU letter.
package config
