package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/orayew2002/rast-html/config"
	"github.com/orayew2002/rast-html/markup"
	"github.com/orayew2002/rast-html/processor"
	"github.com/orayew2002/rast-html/report"
)

// errNoReport is returned when neither flags nor a config file define a report.
var errNoReport = errors.New("no report defined: pass --input/--levels/--columns/--output or a config file")

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build reports from a config file or from flags",
		Long: `Build reads the reports defined in a config file (default: .rast-html.yaml in the
current directory, then config.yaml in the XDG config directory) and writes each
of them. A single report can also be described entirely with flags; flags given
together with a config file override the matching fields of every report.

Columns are Excel letters ("B") or 0-based indices ("1"). A level made of
several columns joins their non-empty values with " --- ".

Examples:
  # Build every report in reports.yaml
  rast-html build -c reports.yaml

  # Build one report from flags
  rast-html build -i world.xlsx --sheet All \
    --levels B --levels C --levels D --levels E,F --levels G,H --levels I,J \
    --sort B,A --columns K,L,N,O -o output.html

  # Rebuild whenever the workbook changes
  rast-html build -c reports.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: runBuildCmd,
	}

	cmd.Flags().StringP("config", "c", "", "Config file path")
	cmd.Flags().StringP("name", "n", "", "Only build the report with this name")

	cmd.Flags().StringP("input", "i", "", "Input workbook (.xlsx)")
	cmd.Flags().String("sheet", "", "Sheet name (default: first sheet)")
	cmd.Flags().StringArray("levels", nil, "Grouping level, outermost first; repeat per level, the last one is the description")
	cmd.Flags().StringSlice("sort", nil, "Sort columns, in precedence order")
	cmd.Flags().StringSlice("columns", nil, "Table columns, in display order")
	cmd.Flags().StringP("output", "o", "", "Output file")

	cmd.Flags().StringP("format", "f", config.DefaultFormat, "Output format: html or markdown")
	cmd.Flags().String("title", "", "Document title (default: sheet name)")
	cmd.Flags().Bool("no-label-row", false, "Treat the first row as data instead of column labels")
	cmd.Flags().String("stylesheet", "", "Stylesheet URL linked from the HTML head")
	cmd.Flags().Bool("no-inline-style", false, "Do not embed the default stylesheet")
	cmd.Flags().Bool("no-outline", false, "Do not add the heading navigation tree")
	cmd.Flags().Bool("no-script", false, "Do not add the outline filter script")
	cmd.Flags().String("collation", "", "Sort text with the collation of this language tag (e.g. en, de)")
	cmd.Flags().IntP("parallelism", "p", config.DefaultParallelism, "Number of top-level groups built concurrently")

	cmd.Flags().BoolP("watch", "w", false, "Rebuild when an input workbook changes")

	return cmd
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	reports, err := loadReports(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := loggerFrom(ctx)
	watch, _ := cmd.Flags().GetBool("watch")

	if watch {
		return watchReports(ctx, reports, logger)
	}

	for _, r := range reports {
		p, job, err := newJob(r, logger)
		if err != nil {
			return fmt.Errorf("report %q: %w", r.Name, err)
		}
		if err := p.ProcessFile(ctx, job); err != nil {
			return fmt.Errorf("report %q: %w", r.Name, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "done:", job.Output)
	}
	return nil
}

// watchReports watches every report until ctx is done. All reports are
// resolved before the first watcher starts.
func watchReports(ctx context.Context, reports []config.Report, logger *zap.Logger) error {
	type watchJob struct {
		p   *processor.Processor
		job processor.Job
	}

	jobs := make([]watchJob, 0, len(reports))
	for _, r := range reports {
		p, job, err := newJob(r, logger)
		if err != nil {
			return fmt.Errorf("report %q: %w", r.Name, err)
		}
		jobs = append(jobs, watchJob{p: p, job: job})
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, j := range jobs {
		eg.Go(func() error {
			return j.p.Watch(ctx, j.job)
		})
	}
	return eg.Wait()
}

// loadReports returns the validated reports to build.
func loadReports(cmd *cobra.Command) ([]config.Report, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	adHoc := flags.Changed("input") || flags.Changed("levels")

	var reports []config.Report
	if adHoc && configPath == "" {
		r := config.NewReport()
		r.Name = "cli"
		reports = append(reports, r)
	} else {
		path := config.FindConfigFile(configPath)
		if path == "" {
			if configPath != "" {
				return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
			}
			return nil, errNoReport
		}

		f, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}

		reports = f.Reports
		if name, _ := flags.GetString("name"); name != "" {
			r, err := f.Find(name)
			if err != nil {
				return nil, err
			}
			reports = []config.Report{r}
		}
		if len(reports) == 0 {
			return nil, errNoReport
		}
	}

	for i := range reports {
		if err := applyFlags(cmd, &reports[i]); err != nil {
			return nil, err
		}
		if err := reports[i].Validate(); err != nil {
			return nil, fmt.Errorf("report %q: configuration error: %w", reports[i].Name, err)
		}
	}
	return reports, nil
}

// applyFlags copies every flag the user set onto r.
func applyFlags(cmd *cobra.Command, r *config.Report) error {
	flags := cmd.Flags()

	strs := map[string]*string{
		"input":      &r.Input,
		"sheet":      &r.Sheet,
		"output":     &r.Output,
		"format":     &r.Format,
		"title":      &r.Title,
		"stylesheet": &r.Stylesheet,
		"collation":  &r.Collation,
	}
	for name, dst := range strs {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if flags.Changed("levels") {
		v, err := flags.GetStringArray("levels")
		if err != nil {
			return err
		}
		r.Levels = v
	}
	for name, dst := range map[string]*[]string{"sort": &r.Sort, "columns": &r.Columns} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetStringSlice(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	// --no-* flags switch a default-on option off.
	negated := map[string]**bool{
		"no-label-row":    &r.LabelRow,
		"no-inline-style": &r.InlineStyle,
		"no-outline":      &r.Outline,
		"no-script":       &r.Script,
	}
	for name, dst := range negated {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetBool(name)
		if err != nil {
			return err
		}
		on := !v
		*dst = &on
	}

	if flags.Changed("parallelism") {
		v, err := flags.GetInt("parallelism")
		if err != nil {
			return err
		}
		r.Parallelism = v
	}

	return nil
}

// newJob resolves r into a processor and the job it runs.
func newJob(r config.Report, logger *zap.Logger) (*processor.Processor, processor.Job, error) {
	r = r.WithDefaults()

	spec, err := r.Spec()
	if err != nil {
		return nil, processor.Job{}, err
	}

	opts := []report.Option{report.WithParallelism(r.Parallelism)}
	if tag, ok := r.CollationTag(); ok {
		opts = append(opts, report.WithCollation(tag))
	}

	renderer, err := markup.New(r.Format, r.HTMLOptions())
	if err != nil {
		return nil, processor.Job{}, err
	}

	job := processor.Job{
		Name:     r.Name,
		Input:    r.Input,
		Sheet:    r.Sheet,
		Output:   r.Output,
		LabelRow: *r.LabelRow,
		Title:    r.Title,
		Spec:     spec,
	}
	return processor.New(report.New(opts...), renderer, logger), job, nil
}
