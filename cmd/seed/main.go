package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/murkotick/course-catalog-service/internal/app/course/repo"
	"github.com/murkotick/course-catalog-service/internal/app/course/usecases/import_courses"
	"github.com/murkotick/course-catalog-service/internal/pkg/clock"
	"github.com/murkotick/course-catalog-service/internal/pkg/committer"
	"github.com/murkotick/course-catalog-service/internal/pkg/logging"
)

type options struct {
	file     string
	database string
	dryRun   bool
	verbose  bool
	timeout  time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML course catalog into Spanner",
		Long: `seed upserts every course in a YAML catalog file in a single commit.
Re-running it with the same file is safe; existing rows are overwritten.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "testdata/courses.yaml", "YAML catalog file")
	cmd.Flags().StringVar(&opts.database, "database", os.Getenv("SPANNER_DATABASE"), "Spanner database path (env SPANNER_DATABASE)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "validate the file without writing")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", time.Minute, "overall timeout")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	level := "info"
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.New(true, level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	req, err := loadCatalog(opts.file)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded", zap.String("file", opts.file), zap.Int("courses", len(req.Courses)))

	var client *spanner.Client
	if !opts.dryRun {
		if opts.database == "" {
			return fmt.Errorf("--database or SPANNER_DATABASE is required")
		}
		client, err = spanner.NewClient(ctx, opts.database)
		if err != nil {
			return fmt.Errorf("spanner.NewClient: %w", err)
		}
		defer client.Close()
	}

	ids, err := newImporter(client, opts.dryRun, logger).Execute(ctx, req)
	if err != nil {
		logger.Error("import failed", zap.Error(err))
		return err
	}

	if opts.dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%d courses valid (dry run)\n", len(ids))
		return nil
	}
	logger.Info("courses imported", zap.Int("count", len(ids)), zap.String("database", opts.database))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d courses\n", len(ids))
	return nil
}

// discardCommitter validates the plan without applying it.
type discardCommitter struct{}

func (discardCommitter) Apply(context.Context, *committer.Plan) error { return nil }

// importTag marks seed commits in Spanner transaction stats.
const importTag = "course-import"

func newImporter(client *spanner.Client, dryRun bool, logger *zap.Logger) *import_courses.Interactor {
	if dryRun {
		return import_courses.NewInteractor(repo.NewCourseRepo(), discardCommitter{}, clock.RealClock{})
	}
	cm := committer.NewAdapter(client, committer.WithTransactionTag(importTag), committer.WithLogger(logger))
	return import_courses.NewInteractor(repo.NewCourseRepo(), cm, clock.RealClock{})
}
