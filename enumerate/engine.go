package enumerate

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/rnaenum/combin"
	"github.com/katalvlaran/rnaenum/nucleotide"
	"github.com/katalvlaran/rnaenum/structure"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/katalvlaran/rnaenum/enumerate")

// cancelCheckMask spaces out context checks to every 1024 search steps.
const cancelCheckMask = 1023

// guard counts search steps and samples the context every cancelCheckMask+1
// of them. A step is one mutation set, one bond subset offered to the
// endpoint filter, or one recombination tuple, whether or not it yields a
// candidate. Once the context is done, err is set and every later tick fails.
type guard struct {
	ctx   context.Context
	steps uint
	err   error
}

func newGuard(ctx context.Context) *guard {
	return &guard{ctx: ctx}
}

// tick records one step and reports whether the search may continue.
func (g *guard) tick() bool {
	if g.err != nil {
		return false
	}
	// The first step always checks, then every cancelCheckMask+1 steps.
	due := g.steps&cancelCheckMask == 0
	g.steps++
	if !due {
		return true
	}
	g.err = g.ctx.Err()

	return g.err == nil
}

// searcher runs the sequential search over one sequence.
// It is not safe for concurrent use; the parallel variant gives each branch
// its own searcher and guard.
type searcher struct {
	symbols []nucleotide.Symbol
	b       bounds
	g       *guard

	// memo caches the bond sets of segments [start,end) already searched.
	memo map[[2]int][][]structure.Bond
}

func newSearcher(symbols []nucleotide.Symbol, b bounds, g *guard) *searcher {
	return &searcher{
		symbols: symbols,
		b:       b,
		g:       g,
		memo:    make(map[[2]int][][]structure.Bond),
	}
}

// mutationSets lists every eligible mutation subset within the bounds.
// Subsets of an ascending list are themselves ascending.
func (s *searcher) mutationSets() iter.Seq[[]int] {
	return combin.Subsets(s.b.mutSites, s.b.minMut, s.b.maxMut, nil)
}

// run calls emit for every (mutation set, bond set) pair the bounds accept.
// It returns false once emit returns false or the guard trips.
func (s *searcher) run(emit func(mut []int, bonds []structure.Bond) bool) bool {
	if s.b.empty() {
		return true
	}
	for m := range s.mutationSets() {
		if !s.g.tick() {
			return false
		}
		if !s.branch(m, func(bonds []structure.Bond) bool { return emit(m, bonds) }) {
			return false
		}
	}

	return true
}

// branch enumerates the bond sets compatible with one mutation set.
func (s *searcher) branch(m []int, emit func([]structure.Bond) bool) bool {
	if len(m) == 0 {
		return s.unmutated(emit)
	}

	return s.split(m, emit)
}

// unmutated is the base case: every valid bond subset of the whole sequence.
func (s *searcher) unmutated(emit func([]structure.Bond) bool) bool {
	pool := feasibleBonds(s.symbols, s.b.bondSite, s.b.ordered)
	disjoint := noSharedEndpoint(s.b.n)
	// A tripped guard lets the subset through so the loop below sees it;
	// rejected subsets never reach the loop body.
	valid := func(set []structure.Bond) bool {
		return !s.g.tick() || disjoint(set)
	}
	for bonds := range combin.Subsets(pool, s.b.minBond, s.b.maxBond, valid) {
		if s.g.err != nil {
			return false
		}
		if !emit(bonds) {
			return false
		}
	}

	return true
}

// part is one segment of a split: its offset and the bond sets found in it.
type part struct {
	start int
	sets  [][]structure.Bond
}

// split searches the segments between mutated positions independently and
// recombines them. m is copied and sorted; partitioning requires ascending order.
func (s *searcher) split(m []int, emit func([]structure.Bond) bool) bool {
	// Segment ends: every mutated index, then the sequence end.
	ends := slices.Clone(m)
	slices.Sort(ends)
	ends = append(ends, s.b.n)

	// Search each segment [start, end) once; sizes drives the product.
	parts := make([]part, 0, len(ends))
	sizes := make([]int, 0, len(ends))
	start := 0
	for _, end := range ends {
		sets, ok := s.segment(start, end)
		if !ok {
			return false
		}
		parts = append(parts, part{start: start, sets: sets})
		sizes = append(sizes, len(sets))
		start = end + 1 // the mutated position itself belongs to no segment
	}

	// Pick one bond set per segment.
	for tuple := range combin.Product(sizes) {
		if !s.g.tick() {
			return false
		}

		// Segments are disjoint, so the union size is the plain sum.
		total := 0
		for k, i := range tuple {
			total += len(parts[k].sets[i])
		}
		if total < s.b.minBond || total > s.b.maxBond {
			continue
		}

		// Shift segment-local bonds back to sequence indices.
		bonds := make([]structure.Bond, 0, total)
		for k, i := range tuple {
			for _, bd := range parts[k].sets[i] {
				bonds = append(bonds, bd.Shift(parts[k].start))
			}
		}
		if !emit(bonds) {
			return false
		}
	}

	return true
}

// segment returns the bond sets of [start, end), searching it with the same
// engine on first use. Segment searches are always sequential and share the
// caller's guard. ok is false when the guard tripped; nothing is cached then.
func (s *searcher) segment(start, end int) (sets [][]structure.Bond, ok bool) {
	key := [2]int{start, end}
	if cached, hit := s.memo[key]; hit {
		return cached, true
	}

	sub := newSearcher(s.symbols[start:end], resolve(end-start, s.b.segment(start, end)), s.g)
	if !sub.run(func(_ []int, bonds []structure.Bond) bool {
		sets = append(sets, bonds)
		return true
	}) {
		return nil, false
	}
	s.memo[key] = sets

	return sets, true
}

// feasibleBonds lists every bond between eligible, compatible positions:
// (i,j) with i<j, followed by (j,i) when ordered.
func feasibleBonds(symbols []nucleotide.Symbol, eligible []bool, ordered bool) []structure.Bond {
	var pool []structure.Bond
	for i := range symbols {
		if !eligible[i] {
			continue
		}
		for j := i + 1; j < len(symbols); j++ {
			if !eligible[j] || !nucleotide.Compatible(symbols[i], symbols[j]) {
				continue
			}
			pool = append(pool, structure.Bond{Start: i, End: j})
			if ordered {
				pool = append(pool, structure.Bond{Start: j, End: i})
			}
		}
	}

	return pool
}

// noSharedEndpoint rejects bond sets in which any index appears twice.
// Crossing bonds are accepted.
func noSharedEndpoint(n int) func([]structure.Bond) bool {
	used := make([]bool, n)

	return func(set []structure.Bond) bool {
		clear(used)
		for _, b := range set {
			if used[b.Start] || used[b.End] {
				return false
			}
			used[b.Start] = true
			used[b.End] = true
		}

		return true
	}
}

// Each streams every candidate satisfying r to fn, in deterministic order.
// Returning false from fn stops the search early; Each then returns nil.
//
// Errors: ErrEmptySequence, ErrInvalidSymbol, or the context error when the
// context from WithContext is cancelled mid-search.
func Each(symbols []nucleotide.Symbol, r Restrictions, fn func(*structure.Sequence) bool, opts ...Option) error {
	o := newOptions(opts)
	if err := checkSymbols(symbols); err != nil {
		return err
	}

	ctx, span := startSpan(o.Ctx, "enumerate.Each", len(symbols), r)
	defer span.End()

	// Clamp the bounds once for the whole call.
	b := resolve(len(symbols), r)
	o.Logger.Debug("enumerate: start",
		"length", b.n,
		"mutations", [2]int{b.minMut, b.maxMut},
		"bonds", [2]int{b.minBond, b.maxBond},
		"mutation_sets", combin.Count(len(b.mutSites), b.minMut, b.maxMut),
		"ordered", b.ordered,
	)

	// Build each accepted pair into a Sequence and hand it to fn.
	var (
		count int
		err   error
	)
	g := newGuard(ctx)
	newSearcher(symbols, b, g).run(func(mut []int, bonds []structure.Bond) bool {
		var seq *structure.Sequence
		seq, err = structure.New(symbols, mut, bonds)
		if err != nil {
			err = fmt.Errorf("enumerate: build candidate %v %v: %w", mut, bonds, err)
			return false
		}
		count++

		return fn(seq)
	})
	// A cancelled context stops the search between steps.
	if err == nil {
		err = g.err
	}

	// Record the outcome on the span; errors also mark it failed.
	span.SetAttributes(attribute.Int("candidates", count))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}
	o.Logger.Debug("enumerate: done", "candidates", count)

	return nil
}

// Enumerate returns every candidate structure of symbols that satisfies r.
//
// The order is deterministic: repeated calls with the same input return
// equal candidates in the same order. See the package documentation for
// the algorithm and Each for errors.
//
// Example:
//
//	r := enumerate.DefaultRestrictions()
//	r.MaxBonds = 2
//	seqs, err := enumerate.Enumerate(nucleotide.MustParse("AUGC"), r)
func Enumerate(symbols []nucleotide.Symbol, r Restrictions, opts ...Option) ([]*structure.Sequence, error) {
	var out []*structure.Sequence
	err := Each(symbols, r, func(s *structure.Sequence) bool {
		out = append(out, s)
		return true
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// startSpan opens a span annotated with the input size and raw bounds.
func startSpan(ctx context.Context, name string, n int, r Restrictions) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.Int("length", n),
		attribute.Int("min_mutations", r.MinMutations),
		attribute.Int("max_mutations", r.MaxMutations),
		attribute.Int("min_bonds", r.MinBonds),
		attribute.Int("max_bonds", r.MaxBonds),
		attribute.Bool("ordered_bonds", r.OrderedBonds),
	))
}
