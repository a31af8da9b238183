package enumerate

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/rnaenum/combin"
	"github.com/katalvlaran/rnaenum/nucleotide"
	"github.com/katalvlaran/rnaenum/structure"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// branchHook, when set, runs at the start of every parallel branch.
// Tests use it to inject branch failures.
var branchHook func(m []int)

// EnumerateParallel returns the same candidates as Enumerate (same multiset,
// unspecified order), computing each outer mutation set as an independent
// branch on a bounded errgroup pool.
//
// Execution:
//   - Pool size is Options.Workers, or one worker per mutation set when 0.
//   - Only the outer loop is parallel. Segment sub-searches inside a branch
//     run on the sequential engine, so pools never nest.
//   - Each branch keeps its own segment memo and candidate buffer; the
//     finished buffer is appended to the shared result under one mutex.
//
// Failure: a failing branch (panic, or cancellation of the context from
// WithContext) does not stop its siblings. After every branch has finished,
// EnumerateParallel returns the candidates of all successful branches
// together with the first failure. Panics are reported as ErrBranchFailed.
func EnumerateParallel(symbols []nucleotide.Symbol, r Restrictions, opts ...Option) ([]*structure.Sequence, error) {
	o := newOptions(opts)
	if err := checkSymbols(symbols); err != nil {
		return nil, err
	}

	ctx, span := startSpan(o.Ctx, "enumerate.EnumerateParallel", len(symbols), r)
	defer span.End()

	b := resolve(len(symbols), r)
	if b.empty() {
		o.Logger.Debug("enumerate: bounds admit no candidate", "length", b.n)
		return nil, nil
	}

	// Materialize the outer loop so its size can set the default pool.
	sets := slices.Collect(combin.Subsets(b.mutSites, b.minMut, b.maxMut, nil))
	workers := o.Workers
	if workers == 0 {
		workers = len(sets)
	}
	span.SetAttributes(
		attribute.Int("mutation_sets", len(sets)),
		attribute.Int("workers", workers),
	)
	o.Logger.Debug("enumerate: parallel start",
		"length", b.n,
		"mutation_sets", len(sets),
		"workers", workers,
	)

	// One goroutine per mutation set, at most workers at a time. The group
	// has no shared context, so a failing branch does not cancel the others.
	var (
		mu  sync.Mutex
		out []*structure.Sequence
	)
	g := new(errgroup.Group)
	g.SetLimit(max(workers, 1))

	for i, m := range sets {
		g.Go(func() (err error) {
			// A panic fails this branch only; siblings keep running.
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("%w: mutation set %v: %v", ErrBranchFailed, m, p)
				}
			}()
			if branchHook != nil {
				branchHook(m)
			}
			// Branches queued behind a cancelled context never start.
			if err = ctx.Err(); err != nil {
				return err
			}

			// Search this mutation set alone, buffering locally.
			var local []*structure.Sequence
			gd := newGuard(ctx)
			newSearcher(symbols, b, gd).branch(m, func(bonds []structure.Bond) bool {
				var seq *structure.Sequence
				seq, err = structure.New(symbols, m, bonds)
				if err != nil {
					err = fmt.Errorf("enumerate: build candidate %v %v: %w", m, bonds, err)
					return false
				}
				local = append(local, seq)

				return true
			})
			if err == nil {
				err = gd.err
			}
			if err != nil {
				return err
			}

			// Publish the whole branch at once.
			mu.Lock()
			out = append(out, local...)
			mu.Unlock()
			o.Logger.Debug("enumerate: branch done", "branch", i, "mutations", m, "candidates", len(local))

			return nil
		})
	}

	// Wait for every branch; the first failure travels with the partial result.
	err := g.Wait()
	span.SetAttributes(attribute.Int("candidates", len(out)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return out, fmt.Errorf("enumerate: parallel search: %w", err)
	}
	o.Logger.Debug("enumerate: parallel done", "candidates", len(out))

	return out, nil
}
