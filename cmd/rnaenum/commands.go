package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rnaenum/config"
	"github.com/katalvlaran/rnaenum/enumerate"
	"github.com/katalvlaran/rnaenum/structure"
)

// version is overridden at link time: -ldflags "-X main.version=v1.2.3".
var version = "dev"

// enumerateFlags holds the raw flag values of the enumerate command. Only
// flags the user actually set override the job file.
type enumerateFlags struct {
	configPath   string
	minMutations int
	maxMutations int
	minBonds     int
	maxBonds     int
	mutSites     []int
	bondSites    []int
	ordered      bool
	parallel     bool
	workers      int
	count        bool
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "rnaenum",
		Short:        "Enumerate candidate RNA secondary structures",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newEnumerateCmd(&logLevel), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rnaenum version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rnaenum %s\n", version)
		},
	}
}

func newEnumerateCmd(logLevel *string) *cobra.Command {
	var f enumerateFlags

	cmd := &cobra.Command{
		Use:   "enumerate [SEQUENCE]",
		Short: "List every candidate structure admitted by the restrictions",
		Long: `Enumerate lists every candidate (mutation set + bond set) of SEQUENCE,
one per line. Mutated positions print in lower case, bonds as (start,end).

The job may come from --config; explicit flags and the SEQUENCE argument
override the file.`,
		Aliases: []string{"enum"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), *logLevel)
			if err != nil {
				return err
			}
			job, err := buildJob(cmd, args, &f)
			if err != nil {
				return err
			}

			return runEnumerate(cmd, job, f.count, logger)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML job file")
	fl.IntVar(&f.minMutations, "min-mutations", 0, "minimum number of mutated positions")
	fl.IntVar(&f.maxMutations, "max-mutations", 0, "maximum number of mutated positions (unlimited if unset)")
	fl.IntVar(&f.minBonds, "min-bonds", 0, "minimum number of bonds")
	fl.IntVar(&f.maxBonds, "max-bonds", 0, "maximum number of bonds (unlimited if unset)")
	fl.IntSliceVar(&f.mutSites, "mutation-sites", nil, "positions allowed to mutate (default all)")
	fl.IntSliceVar(&f.bondSites, "bond-sites", nil, "positions allowed to bond (default all)")
	fl.BoolVar(&f.ordered, "ordered", false, "also emit (end,start) for every compatible pair")
	fl.BoolVar(&f.parallel, "parallel", false, "search mutation sets concurrently")
	fl.IntVar(&f.workers, "workers", 0, "parallel worker cap (0 = one per mutation set)")
	fl.BoolVar(&f.count, "count", false, "print only the number of candidates")

	return cmd
}

// buildJob loads the optional job file and overlays the flags that were set.
func buildJob(cmd *cobra.Command, args []string, f *enumerateFlags) (config.Job, error) {
	file := &config.File{}
	if f.configPath != "" {
		var err error
		if file, err = config.Load(f.configPath); err != nil {
			return config.Job{}, err
		}
	}
	if len(args) == 1 {
		file.Sequence = args[0]
	}

	changed := cmd.Flags().Changed
	rf := &file.Restrictions
	if changed("min-mutations") {
		rf.MinMutations = f.minMutations
	}
	if changed("max-mutations") {
		v := f.maxMutations
		rf.MaxMutations = &v
	}
	if changed("min-bonds") {
		rf.MinBonds = f.minBonds
	}
	if changed("max-bonds") {
		v := f.maxBonds
		rf.MaxBonds = &v
	}
	if changed("mutation-sites") {
		rf.MutationSites = enumerate.Sites(f.mutSites...)
	}
	if changed("bond-sites") {
		rf.BondSites = enumerate.Sites(f.bondSites...)
	}
	if changed("ordered") {
		rf.OrderedBonds = f.ordered
	}
	if changed("parallel") {
		file.Parallel = f.parallel
	}
	if changed("workers") {
		file.Workers = f.workers
	}

	return file.Job()
}

// runEnumerate streams candidates to stdout. The sequential engine writes
// as it goes; the parallel one collects first.
func runEnumerate(cmd *cobra.Command, job config.Job, countOnly bool, logger *slog.Logger) error {
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	opts := []enumerate.Option{
		enumerate.WithContext(cmd.Context()),
		enumerate.WithLogger(logger),
		enumerate.WithWorkers(job.Workers),
	}
	logger.Info("rnaenum: enumerate",
		"length", len(job.Symbols),
		"parallel", job.Parallel,
		"workers", job.Workers,
	)

	if job.Parallel {
		seqs, err := enumerate.EnumerateParallel(job.Symbols, job.Restrictions, opts...)
		if err != nil {
			return err
		}
		if countOnly {
			_, err = fmt.Fprintln(out, len(seqs))
			return err
		}
		for _, s := range seqs {
			if _, err := fmt.Fprintln(out, s); err != nil {
				return err
			}
		}

		return nil
	}

	var (
		n        int
		writeErr error
	)
	err := enumerate.Each(job.Symbols, job.Restrictions, func(s *structure.Sequence) bool {
		n++
		if countOnly {
			return true
		}
		_, writeErr = fmt.Fprintln(out, s)
		return writeErr == nil
	}, opts...)
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}
	if countOnly {
		_, err = fmt.Fprintln(out, n)
	}

	return err
}

// newLogger builds the stderr text logger for the given level name.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("rnaenum: --log-level: %w", err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
