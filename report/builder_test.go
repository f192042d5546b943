package report

import (
	"context"
	"fmt"
	"testing"

	"github.com/orayew2002/rast-html/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func congress() *domain.Sheet {
	return &domain.Sheet{
		Labels: domain.Row{"Country", "Chamber", "Name"},
		Rows: []domain.Row{
			{"US", "Senate", "Alice"},
			{"US", "Senate", "Bob"},
			{"US", "House", "Carl"},
		},
	}
}

func TestBuildScenario(t *testing.T) {
	spec := domain.Spec{
		Levels:  []domain.Level{{0}, {1}},
		Sort:    []int{0, 2},
		Columns: []int{2},
	}

	doc, err := Build(congress(), spec)
	require.NoError(t, err)

	want := []domain.Node{
		domain.Heading{Level: 1, Text: "US"},
		domain.Description{Text: "Senate"},
		domain.Table{Header: []string{"Name"}, Rows: [][]string{{"Alice"}, {"Bob"}}},
		domain.Description{Text: "House"},
		domain.Table{Header: []string{"Name"}, Rows: [][]string{{"Carl"}}},
	}
	assert.Equal(t, want, doc.Nodes)
}

func TestBuildLabelRowOnly(t *testing.T) {
	sheet := &domain.Sheet{Labels: domain.Row{"Country", "Chamber", "Name"}}
	spec := domain.Spec{Levels: []domain.Level{{0}, {1}}, Sort: []int{0}, Columns: []int{2}}

	doc, err := Build(sheet, spec)
	require.NoError(t, err)
	assert.Empty(t, doc.Headings())
	assert.Empty(t, doc.Tables())
}

// parliament has three heading levels worth of data, blank cells and rows out
// of order.
func parliament() *domain.Sheet {
	return &domain.Sheet{
		Labels: domain.Row{"Region", "Country", "Chamber", "Party", "Name", "Seat"},
		Rows: []domain.Row{
			{"Europe", "France", "Senate", "", "Zoé", "3"},
			{"Europe", "France", "Assembly", "Left", "Yves", "10"},
			{"Americas", "US", "Senate", "Blue", "Bob", "2"},
			{"Americas", "US", "Senate", "Red", "Ann", "1"},
			{"Europe", "Germany", "", "", "Hans", "7"},
			{"Americas", "", "", "Green", "Nina", "9"},
			{"Europe", "France", "Assembly", "Left", "Xavier", "4"},
			{"Americas", "US", "House", "Blue", "Cole", "5"},
			{"Europe", "France", "Senate", "Right", "Anne", "6"},
		},
	}
}

func parliamentSpec() domain.Spec {
	return domain.Spec{
		Levels:  []domain.Level{{0}, {1, 2}, {3}},
		Sort:    []int{0, 5},
		Columns: []int{4, 5},
	}
}

func TestBuildEveryRowOnce(t *testing.T) {
	sheet := parliament()
	doc, err := Build(sheet, parliamentSpec())
	require.NoError(t, err)

	assert.Equal(t, len(sheet.Rows), doc.RowCount())

	seen := make(map[string]int)
	for _, table := range doc.Tables() {
		for _, row := range table.Rows {
			seen[row[0]]++
		}
	}
	for _, row := range sheet.Rows {
		assert.Equal(t, 1, seen[row.Cell(4)], row.Cell(4))
	}
}

func TestBuildGroupsFollowSortOrder(t *testing.T) {
	doc, err := Build(parliament(), parliamentSpec())
	require.NoError(t, err)

	want := []domain.Node{
		domain.Heading{Level: 1, Text: "Americas"},
		domain.Heading{Level: 2, Text: "US --- Senate"},
		domain.Description{Text: "Red"},
		table([]string{"Ann", "1"}),
		domain.Description{Text: "Blue"},
		table([]string{"Bob", "2"}),
		domain.Heading{Level: 2, Text: "US --- House"},
		domain.Description{Text: "Blue"},
		table([]string{"Cole", "5"}),
		// Country and chamber blank: no level 2 heading.
		domain.Description{Text: "Green"},
		table([]string{"Nina", "9"}),
		domain.Heading{Level: 1, Text: "Europe"},
		domain.Heading{Level: 2, Text: "France --- Senate"},
		// Blank party: table without description.
		table([]string{"Zoé", "3"}),
		domain.Description{Text: "Right"},
		table([]string{"Anne", "6"}),
		domain.Heading{Level: 2, Text: "France --- Assembly"},
		domain.Description{Text: "Left"},
		table([]string{"Xavier", "4"}, []string{"Yves", "10"}),
		domain.Heading{Level: 2, Text: "Germany"},
		table([]string{"Hans", "7"}),
	}
	assert.Equal(t, want, doc.Nodes)
}

func table(rows ...[]string) domain.Table {
	return domain.Table{Header: []string{"Name", "Seat"}, Rows: rows}
}

func TestBuildDescriptionRunsSplitTables(t *testing.T) {
	sheet := &domain.Sheet{
		Labels: domain.Row{"Group", "Note", "Item"},
		Rows: []domain.Row{
			{"g", "first", "1"},
			{"g", "first", "2"},
			{"g", "second", "3"},
			{"g", "first", "4"},
		},
	}
	spec := domain.Spec{Levels: []domain.Level{{0}, {1}}, Columns: []int{2}}

	doc, err := Build(sheet, spec)
	require.NoError(t, err)

	var descriptions []string
	for _, n := range doc.Nodes {
		if d, ok := n.(domain.Description); ok {
			descriptions = append(descriptions, d.Text)
		}
	}
	// Only consecutive rows merge; the trailing "first" starts a new run.
	assert.Equal(t, []string{"first", "second", "first"}, descriptions)
	require.Len(t, doc.Tables(), 3)
	assert.Len(t, doc.Tables()[0].Rows, 2)
}

func TestBuildEmptyKeySkipsHeading(t *testing.T) {
	sheet := &domain.Sheet{
		Rows: []domain.Row{
			{"", "inner", "x"},
			{"", "inner", "y"},
		},
	}
	spec := domain.Spec{Levels: []domain.Level{{0}, {1}, {2}}, Columns: []int{2}}

	doc, err := Build(sheet, spec)
	require.NoError(t, err)

	assert.Equal(t, []domain.Heading{{Level: 2, Text: "inner"}}, doc.Headings())
	assert.Equal(t, 2, doc.RowCount())
}

func TestBuildMultiColumnKeyDropsBlanks(t *testing.T) {
	row := domain.Row{"Jane", "", " Doe ", "   "}
	assert.Equal(t, "Jane --- Doe", Key(row, domain.Level{0, 1, 2, 3}))
	assert.Equal(t, "", Key(row, domain.Level{1, 3, 9}))
}

func TestBuildOnlyDescriptionLevel(t *testing.T) {
	doc, err := Build(congress(), domain.Spec{Levels: []domain.Level{{1}}, Columns: []int{0, 2}})
	require.NoError(t, err)

	assert.Empty(t, doc.Headings())
	assert.Equal(t, []domain.Node{
		domain.Description{Text: "Senate"},
		domain.Table{Header: []string{"Country", "Name"}, Rows: [][]string{{"US", "Alice"}, {"US", "Bob"}}},
		domain.Description{Text: "House"},
		domain.Table{Header: []string{"Country", "Name"}, Rows: [][]string{{"US", "Carl"}}},
	}, doc.Nodes)
}

func TestBuildHeaderFallsBackToLetters(t *testing.T) {
	sheet := congress()
	sheet.Labels = domain.Row{"Country", ""}

	doc, err := Build(sheet, domain.Spec{Levels: []domain.Level{{0}}, Columns: []int{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, doc.Tables()[0].Header)
}

func TestBuildSortIsStable(t *testing.T) {
	sheet := &domain.Sheet{
		Rows: []domain.Row{
			{"b", "1"},
			{"a", "2"},
			{"b", "3"},
			{"a", "4"},
		},
	}
	doc, err := Build(sheet, domain.Spec{Levels: []domain.Level{{0}, {0}}, Sort: []int{0}, Columns: []int{1}})
	require.NoError(t, err)

	tables := doc.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, [][]string{{"2"}, {"4"}}, tables[0].Rows)
	assert.Equal(t, [][]string{{"1"}, {"3"}}, tables[1].Rows)
}

func TestBuildNumericSort(t *testing.T) {
	sheet := &domain.Sheet{
		Rows: []domain.Row{{"10"}, {"9"}, {""}, {"x"}, {"100"}},
	}
	doc, err := Build(sheet, domain.Spec{Levels: []domain.Level{{0}}, Sort: []int{0}, Columns: []int{0}})
	require.NoError(t, err)

	var got []string
	for _, tbl := range doc.Tables() {
		for _, r := range tbl.Rows {
			got = append(got, r[0])
		}
	}
	assert.Equal(t, []string{"", "9", "10", "100", "x"}, got)
}

func TestBuildDoesNotModifySheet(t *testing.T) {
	sheet := parliament()
	before := fmt.Sprint(sheet.Rows)

	_, err := Build(sheet, parliamentSpec())
	require.NoError(t, err)
	assert.Equal(t, before, fmt.Sprint(sheet.Rows))
}

func TestBuildTablesDoNotShareHeaders(t *testing.T) {
	spec := domain.Spec{Levels: []domain.Level{{0}, {1}}, Columns: []int{2}}

	doc, err := Build(congress(), spec)
	require.NoError(t, err)

	tables := doc.Tables()
	require.Len(t, tables, 2)

	tables[0].Header[0] = "changed"
	assert.Equal(t, []string{"Name"}, tables[1].Header)
}

func TestBuildIsDeterministic(t *testing.T) {
	first, err := Build(parliament(), parliamentSpec())
	require.NoError(t, err)
	second, err := Build(parliament(), parliamentSpec())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildParallelMatchesSequential(t *testing.T) {
	sheet := &domain.Sheet{Labels: domain.Row{"Outer", "Inner", "Desc", "Value"}}
	for i := 0; i < 200; i++ {
		sheet.Rows = append(sheet.Rows, domain.Row{
			fmt.Sprintf("o%02d", i%17),
			fmt.Sprintf("i%d", i%5),
			fmt.Sprintf("d%d", i%3),
			fmt.Sprint(i),
		})
	}
	spec := domain.Spec{Levels: []domain.Level{{0}, {1}, {2}}, Sort: []int{0, 1}, Columns: []int{3}}

	seq, err := New().Build(context.Background(), sheet, spec)
	require.NoError(t, err)
	par, err := New(WithParallelism(4)).Build(context.Background(), sheet, spec)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
	assert.Equal(t, 200, par.RowCount())
}

func TestBuildCollation(t *testing.T) {
	sheet := &domain.Sheet{
		Rows: []domain.Row{{"zebra"}, {"Émile"}, {"apple"}, {"Eve"}},
	}
	spec := domain.Spec{Levels: []domain.Level{{0}, {0}}, Sort: []int{0}, Columns: []int{0}}

	plain, err := Build(sheet, spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"Eve", "apple", "zebra", "Émile"}, headingTexts(plain))

	collated, err := New(WithCollation(language.English)).Build(context.Background(), sheet, spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "Émile", "Eve", "zebra"}, headingTexts(collated))
}

func headingTexts(doc *domain.Document) []string {
	var out []string
	for _, h := range doc.Headings() {
		out = append(out, h.Text)
	}
	return out
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Build(ctx, congress(), domain.Spec{Levels: []domain.Level{{0}, {1}}, Columns: []int{2}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		spec  domain.Spec
		check func(t *testing.T, err error)
	}{
		{
			name: "no levels",
			spec: domain.Spec{Columns: []int{0}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrEmptySpec)
			},
		},
		{
			name: "empty level",
			spec: domain.Spec{Levels: []domain.Level{{0}, {}}, Columns: []int{0}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrEmptyLevel)
			},
		},
		{
			name: "grouping column out of range",
			spec: domain.Spec{Levels: []domain.Level{{0, 3}}, Columns: []int{0}},
			check: func(t *testing.T, err error) {
				var cae *domain.ColumnAddressError
				require.ErrorAs(t, err, &cae)
				assert.Equal(t, 3, cae.Column)
				assert.Equal(t, 3, cae.Width)
			},
		},
		{
			name: "output column out of range",
			spec: domain.Spec{Levels: []domain.Level{{0}}, Columns: []int{-1}},
			check: func(t *testing.T, err error) {
				var cae *domain.ColumnAddressError
				assert.ErrorAs(t, err, &cae)
			},
		},
		{
			name: "sort column out of range",
			spec: domain.Spec{Levels: []domain.Level{{0}}, Sort: []int{0, 5}, Columns: []int{0}},
			check: func(t *testing.T, err error) {
				var ske *domain.SortKeyError
				require.ErrorAs(t, err, &ske)
				assert.Equal(t, 5, ske.Column)
				var cae *domain.ColumnAddressError
				assert.ErrorAs(t, err, &cae)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Build(congress(), tt.spec)
			assert.Nil(t, doc)
			tt.check(t, err)
		})
	}
}
