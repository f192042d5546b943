package config

import (
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"golang.org/x/text/language"

	"github.com/orayew2002/rast-html/domain"
	"github.com/orayew2002/rast-html/excel"
	"github.com/orayew2002/rast-html/markup"
)

// AppName is the application name used for XDG directory paths.
const AppName = "rast-html"

// Default values applied by NewReport.
const (
	DefaultFormat      = markup.FormatHTML
	DefaultParallelism = 1
)

// File is the content of a report configuration file.
type File struct {
	Reports []Report `yaml:"reports"`
}

// Report describes one report: where the sheet comes from, how it is grouped
// and where the result goes. Column references are Excel letters ("B"),
// 0-based indices ("1") or, inside Levels, comma-separated lists ("E,F").
type Report struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	// Sheet defaults to the first sheet of the workbook.
	Sheet   string   `yaml:"sheet,omitempty"`
	Levels  []string `yaml:"levels"`
	Sort    []string `yaml:"sort,omitempty"`
	Columns []string `yaml:"columns"`
	Output  string   `yaml:"output"`
	Format  string   `yaml:"format,omitempty"`
	Title   string   `yaml:"title,omitempty"`
	// LabelRow is a pointer so an omitted key keeps the default (true).
	LabelRow    *bool  `yaml:"label_row,omitempty"`
	Stylesheet  string `yaml:"stylesheet,omitempty"`
	InlineStyle *bool  `yaml:"inline_style,omitempty"`
	Outline     *bool  `yaml:"outline,omitempty"`
	Script      *bool  `yaml:"script,omitempty"`
	Collation   string `yaml:"collation,omitempty"`
	Parallelism int    `yaml:"parallelism,omitempty"`
}

// NewReport returns a Report with default values.
func NewReport() Report {
	on := func() *bool { v := true; return &v }
	return Report{
		Format:      DefaultFormat,
		LabelRow:    on(),
		InlineStyle: on(),
		Outline:     on(),
		Script:      on(),
		Parallelism: DefaultParallelism,
	}
}

// WithDefaults fills unset fields of r from NewReport.
func (r Report) WithDefaults() Report {
	d := NewReport()
	if r.Format == "" {
		r.Format = d.Format
	}
	if r.LabelRow == nil {
		r.LabelRow = d.LabelRow
	}
	if r.InlineStyle == nil {
		r.InlineStyle = d.InlineStyle
	}
	if r.Outline == nil {
		r.Outline = d.Outline
	}
	if r.Script == nil {
		r.Script = d.Script
	}
	if r.Parallelism == 0 {
		r.Parallelism = d.Parallelism
	}
	return r
}

var formats = []string{markup.FormatHTML, markup.FormatMarkdown, "md"}

// Validate checks the report definition without touching the input file.
func (r Report) Validate() error {
	if r.Input == "" {
		return ErrNoInput
	}
	if r.Output == "" {
		return ErrNoOutput
	}
	if len(r.Levels) == 0 {
		return ErrNoLevels
	}
	if len(r.Columns) == 0 {
		return ErrNoColumns
	}
	if r.Format != "" && !slices.Contains(formats, r.Format) {
		return ErrUnknownFormat
	}
	if r.Parallelism < 0 {
		return ErrInvalidParallelism
	}
	if r.Collation != "" {
		if _, err := language.Parse(r.Collation); err != nil {
			return ErrInvalidCollation
		}
	}
	return nil
}

// Spec resolves the column references of r.
func (r Report) Spec() (domain.Spec, error) {
	levels, err := excel.ParseLevels(r.Levels)
	if err != nil {
		return domain.Spec{}, err
	}
	sortCols, err := excel.ParseColumns(r.Sort)
	if err != nil {
		return domain.Spec{}, err
	}
	cols, err := excel.ParseColumns(r.Columns)
	if err != nil {
		return domain.Spec{}, err
	}
	return domain.Spec{Levels: levels, Sort: sortCols, Columns: cols}, nil
}

// CollationTag returns the parsed collation tag, or false when none is set.
func (r Report) CollationTag() (language.Tag, bool) {
	if r.Collation == "" {
		return language.Und, false
	}
	tag, err := language.Parse(r.Collation)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// HTMLOptions returns the renderer options of r.
func (r Report) HTMLOptions() markup.HTMLOptions {
	r = r.WithDefaults()
	return markup.HTMLOptions{
		Stylesheet:  r.Stylesheet,
		InlineStyle: *r.InlineStyle,
		Outline:     *r.Outline,
		Script:      *r.Script,
	}
}

// XDGConfigDir returns the XDG config directory for rast-html.
// On Linux: ~/.config/rast-html
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
