// Package rnaenum enumerates candidate secondary structures of an RNA
// sequence: every combination of point mutations and base-pair bonds that a
// set of Restrictions admits.
//
// What is in the box?
//
//	nucleotide/ — the A C G U alphabet, Watson–Crick compatibility, parsing
//	structure/  — Bond, Position and the immutable candidate Sequence
//	combin/     — lazy bounded subsets, combination stepper, cartesian product
//	enumerate/  — Restrictions, the sequential engine and its parallel variant
//	config/     — YAML job files, validated at the boundary
//	cmd/rnaenum — command-line front end
//
// How the search works:
//
//	A mutation set M is chosen first. With M empty, every subset of compatible
//	pairs in which no position bonds twice is a candidate. Otherwise a mutated
//	position can never bond, so the sequence splits at each index of M into
//	independent segments; each segment is searched on its own and the results
//	are recombined by cartesian product.
//
//	    A U c A U        mutation at 2
//	    └─┘   └─┘        segments [0,2) and [3,5) searched separately
//
// Quick start:
//
//	r := enumerate.DefaultRestrictions()
//	r.MaxMutations = 1
//	r.MaxBonds = 2
//	seqs, err := enumerate.Enumerate(nucleotide.MustParse("AUGCAU"), r)
//
// Or from the shell:
//
//	go install github.com/katalvlaran/rnaenum/cmd/rnaenum@latest
//	rnaenum enumerate AUGCAU --max-mutations 1 --max-bonds 2
package rnaenum
