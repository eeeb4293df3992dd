package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/seed"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	File string
}

// SeedCount is the per-kind tally of a seed run.
type SeedCount struct {
	Kind    records.Kind `json:"kind"`
	Added   int          `json:"added"`
	Skipped int          `json:"skipped"`
}

var seedKinds = []records.Kind{
	records.KindDepartment,
	records.KindFaculty,
	records.KindCourse,
	records.KindStudent,
	records.KindEvent,
	records.KindEnrollment,
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample records",
		Long: `Load the built-in sample departments, faculty, courses, students,
events and enrollments, or a fixture file with the same layout.

Records whose IDs (or emails) already exist are skipped, so seeding twice
is harmless. Event dates given as offset_days are relative to today.

Example:
  registrar seed
  registrar seed --file ./fixtures/fall.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "fixture YAML file (default: built-in sample)")

	return cmd
}

func runSeed(opts *SeedOptions, cmd *cobra.Command) error {
	s, err := newSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}

	var fx *seed.Fixture
	if opts.File != "" {
		fx, err = seed.LoadFile(opts.File)
	} else {
		fx, err = seed.Sample()
	}
	if err != nil {
		return s.out.Fail(ExitCommandError, CodeFixture, err.Error(), nil)
	}

	if err := s.openStore(); err != nil {
		return err
	}
	defer s.Close()

	sum, err := seed.Apply(cmd.Context(), s.store, fx, s.clock)
	if err != nil {
		return storageError("seed failed", err)
	}
	for _, o := range sum.Outcomes {
		if !o.Result.OK() {
			s.logger.Debug("skipped existing record", "kind", o.Kind, "id", o.ID, "result", o.Result.String())
		}
	}

	counts := make([]SeedCount, 0, len(seedKinds))
	for _, k := range seedKinds {
		counts = append(counts, SeedCount{Kind: k, Added: sum.Added(k), Skipped: sum.Skipped(k)})
	}

	return s.out.Emit(counts, func(w io.Writer) {
		for _, c := range counts {
			fmt.Fprintf(w, "%-12s %3d added, %3d skipped\n", c.Kind, c.Added, c.Skipped)
		}
	})
}
