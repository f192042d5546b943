package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/orayew2002/rast-html/domain"
)

func TestNewReport(t *testing.T) {
	r := NewReport()

	assert.Equal(t, "html", r.Format)
	assert.Equal(t, 1, r.Parallelism)
	require.NotNil(t, r.LabelRow)
	assert.True(t, *r.LabelRow)
	assert.True(t, *r.InlineStyle)
	assert.True(t, *r.Outline)
	assert.True(t, *r.Script)
}

func TestReportValidate(t *testing.T) {
	valid := func() Report {
		r := NewReport()
		r.Input = "in.xlsx"
		r.Output = "out.html"
		r.Levels = []string{"A", "B"}
		r.Columns = []string{"C"}
		return r
	}

	t.Run("valid report", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	tests := []struct {
		name   string
		modify func(*Report)
		want   error
	}{
		{"no input", func(r *Report) { r.Input = "" }, ErrNoInput},
		{"no output", func(r *Report) { r.Output = "" }, ErrNoOutput},
		{"no levels", func(r *Report) { r.Levels = nil }, ErrNoLevels},
		{"no columns", func(r *Report) { r.Columns = nil }, ErrNoColumns},
		{"unknown format", func(r *Report) { r.Format = "pdf" }, ErrUnknownFormat},
		{"negative parallelism", func(r *Report) { r.Parallelism = -1 }, ErrInvalidParallelism},
		{"bad collation", func(r *Report) { r.Collation = "not a tag!" }, ErrInvalidCollation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.modify(&r)
			assert.ErrorIs(t, r.Validate(), tt.want)
		})
	}

	t.Run("markdown format", func(t *testing.T) {
		r := valid()
		r.Format = "markdown"
		assert.NoError(t, r.Validate())
	})
}

func TestReportSpec(t *testing.T) {
	r := Report{
		Levels:  []string{"B", "C", "D", "E,F", "G,H", "I,J"},
		Sort:    []string{"B", "A"},
		Columns: []string{"K", "L", "N", "O"},
	}

	spec, err := r.Spec()
	require.NoError(t, err)
	assert.Equal(t, domain.Spec{
		Levels:  []domain.Level{{1}, {2}, {3}, {4, 5}, {6, 7}, {8, 9}},
		Sort:    []int{1, 0},
		Columns: []int{10, 11, 13, 14},
	}, spec)

	r.Columns = []string{"K", "#"}
	_, err = r.Spec()
	var cae *domain.ColumnAddressError
	assert.ErrorAs(t, err, &cae)
}

func TestReportCollationTag(t *testing.T) {
	_, ok := Report{}.CollationTag()
	assert.False(t, ok)

	tag, ok := Report{Collation: "de"}.CollationTag()
	assert.True(t, ok)
	assert.Equal(t, language.German, tag)
}

func TestReportHTMLOptions(t *testing.T) {
	off := false
	opts := Report{Stylesheet: "a.css", Script: &off}.HTMLOptions()

	assert.Equal(t, "a.css", opts.Stylesheet)
	assert.True(t, opts.InlineStyle)
	assert.True(t, opts.Outline)
	assert.False(t, opts.Script)
}

const sampleConfig = `
reports:
  - name: politicians
    input: data/world.xlsx
    sheet: All
    levels: ["B", "C", "E,F"]
    sort: ["B", "A"]
    columns: ["K", "L"]
    output: out/politicians.html
    title: World politicians
    outline: false
  - name: members
    input: /abs/members.xlsx
    levels: ["A"]
    columns: ["B"]
    output: members.md
    format: markdown
    label_row: false
    parallelism: 4
    collation: en
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleConfig), "/work")
	require.NoError(t, err)
	require.Len(t, f.Reports, 2)

	p := f.Reports[0]
	assert.Equal(t, "politicians", p.Name)
	assert.Equal(t, filepath.Join("/work", "data/world.xlsx"), p.Input)
	assert.Equal(t, filepath.Join("/work", "out/politicians.html"), p.Output)
	assert.Equal(t, "All", p.Sheet)
	assert.Equal(t, []string{"B", "C", "E,F"}, p.Levels)
	assert.Equal(t, "html", p.Format)
	assert.True(t, *p.LabelRow)
	assert.False(t, *p.Outline)
	assert.True(t, *p.Script)
	assert.Equal(t, 1, p.Parallelism)
	assert.NoError(t, p.Validate())

	m := f.Reports[1]
	assert.Equal(t, "/abs/members.xlsx", m.Input)
	assert.Equal(t, "markdown", m.Format)
	assert.False(t, *m.LabelRow)
	assert.Equal(t, 4, m.Parallelism)
	assert.NoError(t, m.Validate())

	t.Run("find by name", func(t *testing.T) {
		r, err := f.Find("members")
		require.NoError(t, err)
		assert.Equal(t, "members", r.Name)

		_, err = f.Find("nope")
		assert.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("reports: [unterminated"), "")
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data/world.xlsx"), f.Reports[0].Input)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "explicit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reports: []"), 0o600))

	assert.Equal(t, path, FindConfigFile(path))
	assert.Equal(t, "", FindConfigFile(filepath.Join(dir, "missing.yaml")))
}

func TestXDGConfigDir(t *testing.T) {
	assert.Equal(t, AppName, filepath.Base(XDGConfigDir()))
}
