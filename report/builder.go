// Package report turns a sorted, grouped sheet into a Document of headings,
// description blocks and tables.
package report

import (
	"context"
	"slices"
	"strings"

	"github.com/orayew2002/rast-html/domain"
	"github.com/orayew2002/rast-html/excel"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// KeySeparator joins the non-blank values of a multi-column level.
const KeySeparator = " --- "

// Builder builds documents from sheets. The zero value is not usable; create
// one with New.
type Builder struct {
	collation   *language.Tag
	parallelism int
}

// Option configures a Builder.
type Option func(*Builder)

// WithCollation orders text cells with the collation rules of tag instead of
// by code point.
func WithCollation(tag language.Tag) Option {
	return func(b *Builder) {
		b.collation = &tag
	}
}

// WithParallelism builds up to n outermost groups concurrently. Values below 2
// build sequentially. Output is identical either way.
func WithParallelism(n int) Option {
	return func(b *Builder) {
		b.parallelism = n
	}
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{parallelism: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build builds a document with default options.
func Build(sheet *domain.Sheet, spec domain.Spec) (*domain.Document, error) {
	return New().Build(context.Background(), sheet, spec)
}

// Build sorts the data rows of sheet, groups them by spec.Levels and returns
// the resulting document. The sheet is not modified.
func (b *Builder) Build(ctx context.Context, sheet *domain.Sheet, spec domain.Spec) (*domain.Document, error) {
	if err := validate(sheet, spec); err != nil {
		return nil, err
	}

	rows := slices.Clone(sheet.Rows)
	text := b.textCompare()
	slices.SortStableFunc(rows, func(x, y domain.Row) int {
		return domain.CompareRows(x, y, spec.Sort, text)
	})

	g := &grouper{
		spec:   spec,
		header: headerNames(sheet, spec.Columns),
	}

	nodes, err := b.buildTop(ctx, g, rows)
	if err != nil {
		return nil, err
	}

	return &domain.Document{Nodes: nodes}, nil
}

// buildTop builds the outermost level, concurrently when parallelism allows.
func (b *Builder) buildTop(ctx context.Context, g *grouper, rows []domain.Row) ([]domain.Node, error) {
	if b.parallelism < 2 || g.spec.HeadingLevels() == 0 {
		return g.build(ctx, rows, 1)
	}

	parts := partition(rows, g.spec.Levels[0])
	results := make([][]domain.Node, len(parts))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(b.parallelism)
	for i, p := range parts {
		eg.Go(func() error {
			nodes, err := g.section(ctx, p, 1)
			if err != nil {
				return err
			}
			results[i] = nodes
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(results...), nil
}

func (b *Builder) textCompare() domain.TextCompare {
	if b.collation == nil {
		return nil
	}
	c := collate.New(*b.collation)
	return c.CompareString
}

func validate(sheet *domain.Sheet, spec domain.Spec) error {
	if len(spec.Levels) == 0 {
		return domain.ErrEmptySpec
	}

	width := sheet.Width()
	check := func(col int) error {
		if col < 0 || col >= width {
			return &domain.ColumnAddressError{Column: col, Width: width}
		}
		return nil
	}

	for _, level := range spec.Levels {
		if len(level) == 0 {
			return domain.ErrEmptyLevel
		}
		for _, col := range level {
			if err := check(col); err != nil {
				return err
			}
		}
	}
	for _, col := range spec.Columns {
		if err := check(col); err != nil {
			return err
		}
	}
	for _, col := range spec.Sort {
		if err := check(col); err != nil {
			return &domain.SortKeyError{Column: col, Err: err}
		}
	}
	return nil
}

// headerNames returns the display name of each output column: its label, or
// its letter code when the label is missing.
func headerNames(sheet *domain.Sheet, cols []int) []string {
	names := make([]string, len(cols))
	for i, col := range cols {
		name := sheet.Label(col)
		if name == "" {
			name = excel.IndexToColumn(col)
		}
		names[i] = name
	}
	return names
}

// Key returns the combined key of row for level: its non-blank values in
// column order joined by KeySeparator.
func Key(row domain.Row, level domain.Level) string {
	var parts []string
	for _, col := range level {
		v := strings.TrimSpace(row.Cell(col))
		if v == "" {
			continue
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, KeySeparator)
}
