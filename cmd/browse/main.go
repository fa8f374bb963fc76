package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
	"github.com/murkotick/course-catalog-service/internal/browser"
	"github.com/murkotick/course-catalog-service/internal/pkg/logging"
)

const defaultAPIURL = "http://localhost:8080"

type options struct {
	apiURL     string
	search     string
	categories []string
	level      string
	price      string
	minRating  float64
	sort       string
	format     string
	timeout    time.Duration
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the course catalog",
		Long: `browse fetches the catalog once from the query service and then
filters and sorts it locally.

Examples:
  browse --search go --sort "Top Rated"
  browse --category "Data Science" --category DevOps --price free
  browse --level beginner --min-rating 4 --format json`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, sortOpt, err := opts.selection(cmd)
			if err != nil {
				return err
			}
			return run(cmd, opts, sel, sortOpt)
		},
	}

	apiURL := os.Getenv("CATALOG_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	f := cmd.Flags()
	f.StringVar(&opts.apiURL, "api-url", apiURL, "query service base URL (env CATALOG_API_URL)")
	f.StringVarP(&opts.search, "search", "s", "", "case-insensitive title search")
	f.StringArrayVarP(&opts.categories, "category", "c", nil, "category to include (repeatable)")
	f.StringVarP(&opts.level, "level", "l", "", "level: "+joinLevels())
	f.StringVar(&opts.price, "price", "", "price bucket: free or paid")
	f.Float64Var(&opts.minRating, "min-rating", 0, "minimum rating, 0-5 (common: "+joinRatings()+")")
	f.StringVar(&opts.sort, "sort", string(domain.DefaultSortOption), "sort: "+joinSortOptions())
	f.StringVarP(&opts.format, "format", "o", formatText, "output format: text or json")
	f.DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")

	return cmd
}

// selection turns flags into a domain selection. Invalid values fail before any request.
func (o *options) selection(cmd *cobra.Command) (domain.Selection, domain.SortOption, error) {
	var sel domain.Selection
	sel.Search = o.search

	for _, c := range o.categories {
		if c = strings.TrimSpace(c); c != "" {
			sel.Categories = append(sel.Categories, c)
		}
	}

	if strings.TrimSpace(o.level) != "" {
		level, err := domain.ParseLevel(o.level)
		if err != nil {
			return sel, "", fmt.Errorf("--level %q: %w", o.level, err)
		}
		sel.Level = level
	}

	bucket, err := domain.ParsePriceBucket(o.price)
	if err != nil {
		return sel, "", fmt.Errorf("--price %q: %w", o.price, err)
	}
	sel.Price = bucket

	if cmd.Flags().Changed("min-rating") {
		if o.minRating < 0 || o.minRating > 5 {
			return sel, "", fmt.Errorf("--min-rating %v: must be between 0 and 5", o.minRating)
		}
		r := o.minRating
		sel.MinRating = &r
	}

	sortOpt, err := domain.ParseSortOption(o.sort)
	if err != nil {
		return sel, "", fmt.Errorf("--sort %q: %w", o.sort, err)
	}

	if o.format != formatText && o.format != formatJSON {
		return sel, "", fmt.Errorf("--format %q: must be %s or %s", o.format, formatText, formatJSON)
	}
	return sel, sortOpt, nil
}

func run(cmd *cobra.Command, opts *options, sel domain.Selection, sortOpt domain.SortOption) error {
	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.New(true, level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	b := browser.New(browser.NewHTTPClient(opts.apiURL, nil), logger)
	b.SetSelection(sel)
	b.SetSort(sortOpt)
	b.Activate(ctx)

	if msg := b.Err(); msg != "" {
		return errors.New(msg)
	}
	return render(cmd.OutOrStdout(), opts.format, b.View(), b.Status())
}

func joinLevels() string {
	out := make([]string, 0, len(domain.Levels()))
	for _, l := range domain.Levels() {
		out = append(out, string(l))
	}
	return strings.Join(out, ", ")
}

func joinRatings() string {
	out := make([]string, 0, len(domain.RatingOptions()))
	for _, r := range domain.RatingOptions() {
		out = append(out, strconv.FormatFloat(r, 'f', -1, 64))
	}
	return strings.Join(out, ", ")
}

func joinSortOptions() string {
	out := make([]string, 0, len(domain.SortOptions()))
	for _, o := range domain.SortOptions() {
		out = append(out, fmt.Sprintf("%q", o))
	}
	return strings.Join(out, ", ")
}
