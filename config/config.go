package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rnaenum/enumerate"
	"github.com/katalvlaran/rnaenum/nucleotide"
)

// ErrInvalidJob indicates a job that could not be decoded or failed validation.
var ErrInvalidJob = errors.New("config: invalid job")

// File is the on-disk representation of a job.
type File struct {
	// Sequence is the base sequence, e.g. "AUGC". Case and whitespace are ignored.
	Sequence string `yaml:"sequence" validate:"required"`

	// Restrictions bounds the search.
	Restrictions RestrictionsFile `yaml:"restrictions"`

	// Parallel selects the parallel engine.
	Parallel bool `yaml:"parallel"`

	// Workers caps the parallel pool; 0 means one worker per mutation set.
	Workers int `yaml:"workers" validate:"gte=0"`
}

// RestrictionsFile mirrors enumerate.Restrictions. Pointer maxima and nil
// site lists distinguish "absent" (unlimited / every position) from zero.
type RestrictionsFile struct {
	MinMutations  int   `yaml:"min_mutations" validate:"gte=0"`
	MaxMutations  *int  `yaml:"max_mutations" validate:"omitempty,gte=0"`
	MinBonds      int   `yaml:"min_bonds" validate:"gte=0"`
	MaxBonds      *int  `yaml:"max_bonds" validate:"omitempty,gte=0"`
	MutationSites []int `yaml:"mutation_sites" validate:"omitempty,dive,gte=0"`
	BondSites     []int `yaml:"bond_sites" validate:"omitempty,dive,gte=0"`
	OrderedBonds  bool  `yaml:"ordered_bonds"`
}

// Job is a validated, engine-ready job.
type Job struct {
	Symbols      []nucleotide.Symbol
	Restrictions enumerate.Restrictions
	Parallel     bool
	Workers      int
}

// jobValidate is shared by every File.Validate call; validator caches struct
// metadata, so one instance is reused.
var jobValidate *validator.Validate

// seqLenKey carries the parsed sequence length into validateFile.
type seqLenKey struct{}

func init() {
	jobValidate = validator.New(validator.WithRequiredStructEnabled())
	jobValidate.RegisterStructValidationCtx(validateFile, File{})
	jobValidate.RegisterStructValidation(validateRestrictions, RestrictionsFile{})
}

// Load reads and decodes the job file at path. It does not validate; call
// File.Job for that.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Decode reads one YAML job document from r. Unknown keys are an error.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidJob)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}

	return &f, nil
}

// Validate checks f against the tag and cross-field rules.
func (f *File) Validate() error {
	_, err := f.validate()
	return err
}

// validate parses the sequence once and checks the rest of f against its
// length. The parsed symbols are returned for Job.
func (f *File) validate() ([]nucleotide.Symbol, error) {
	symbols, err := nucleotide.Parse(f.Sequence)
	if err != nil {
		return nil, fmt.Errorf("config: sequence: %w", err)
	}
	ctx := context.WithValue(context.Background(), seqLenKey{}, len(symbols))
	if err := jobValidate.StructCtx(ctx, f); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJob, describe(err))
	}

	return symbols, nil
}

// Job validates f and converts it for the engine.
func (f *File) Job() (Job, error) {
	symbols, err := f.validate()
	if err != nil {
		return Job{}, err
	}

	return Job{
		Symbols:      symbols,
		Restrictions: f.Restrictions.Restrictions(),
		Parallel:     f.Parallel,
		Workers:      f.Workers,
	}, nil
}

// Restrictions converts rf, mapping absent maxima to math.MaxInt.
func (rf RestrictionsFile) Restrictions() enumerate.Restrictions {
	r := enumerate.Restrictions{
		MinMutations: rf.MinMutations,
		MaxMutations: math.MaxInt,
		MinBonds:     rf.MinBonds,
		MaxBonds:     math.MaxInt,
		OrderedBonds: rf.OrderedBonds,
	}
	if rf.MaxMutations != nil {
		r.MaxMutations = *rf.MaxMutations
	}
	if rf.MaxBonds != nil {
		r.MaxBonds = *rf.MaxBonds
	}
	if rf.MutationSites != nil {
		r.MutationSites = enumerate.Sites(rf.MutationSites...)
	}
	if rf.BondSites != nil {
		r.BondSites = enumerate.Sites(rf.BondSites...)
	}

	return r
}

// validateFile checks that every site index lies inside the sequence, whose
// parsed length arrives through ctx.
func validateFile(ctx context.Context, sl validator.StructLevel) {
	f := sl.Current().Interface().(File)
	n, _ := ctx.Value(seqLenKey{}).(int)
	if n == 0 {
		sl.ReportError(f.Sequence, "Sequence", "Sequence", "required", "")
		return
	}
	for _, s := range f.Restrictions.MutationSites {
		if s >= n {
			sl.ReportError(f.Restrictions.MutationSites, "Restrictions.MutationSites", "MutationSites", "ltlen", fmt.Sprint(n))
			break
		}
	}
	for _, s := range f.Restrictions.BondSites {
		if s >= n {
			sl.ReportError(f.Restrictions.BondSites, "Restrictions.BondSites", "BondSites", "ltlen", fmt.Sprint(n))
			break
		}
	}
}

// validateRestrictions checks min ≤ max for every pair with a maximum set.
func validateRestrictions(sl validator.StructLevel) {
	rf := sl.Current().Interface().(RestrictionsFile)
	if rf.MaxMutations != nil && rf.MinMutations > *rf.MaxMutations {
		sl.ReportError(rf.MinMutations, "MinMutations", "MinMutations", "ltefield", "MaxMutations")
	}
	if rf.MaxBonds != nil && rf.MinBonds > *rf.MaxBonds {
		sl.ReportError(rf.MinBonds, "MinBonds", "MinBonds", "ltefield", "MaxBonds")
	}
}

// describe flattens validator errors into "Field: rule param" clauses.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		p := fe.Namespace() + ": " + fe.Tag()
		if fe.Param() != "" {
			p += " " + fe.Param()
		}
		parts = append(parts, p)
	}

	return strings.Join(parts, "; ")
}
