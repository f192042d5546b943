package domain

import "strings"

// Row is one sheet row. Cells are addressed by 0-based column index.
type Row []string

// Cell returns the value at col, or "" when the row is shorter than col.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Blank reports whether v is empty or whitespace only.
func Blank(v string) bool {
	return strings.TrimSpace(v) == ""
}

// Sheet is a worksheet read into memory. Labels is nil when the sheet has no
// label row.
type Sheet struct {
	Name   string
	Labels Row
	Rows   []Row
}

// Width returns the widest row length, label row included.
func (s *Sheet) Width() int {
	w := len(s.Labels)
	for _, r := range s.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Label returns the label-row value for col, trimmed. Empty when there is no
// label row or the label is blank.
func (s *Sheet) Label(col int) string {
	return strings.TrimSpace(s.Labels.Cell(col))
}

// Level is one rank of the grouping hierarchy: the columns whose non-blank
// values are joined into the level's key.
type Level []int

// Spec describes how a sheet is turned into a document.
//
// Levels runs from outermost to innermost; the last level is the description
// level and never produces a heading. Sort lists the columns of the stable
// ascending sort applied before grouping. Columns are the columns shown in
// each data table.
type Spec struct {
	Levels  []Level
	Sort    []int
	Columns []int
}

// HeadingLevels returns the number of levels that produce headings.
func (s Spec) HeadingLevels() int {
	if len(s.Levels) == 0 {
		return 0
	}
	return len(s.Levels) - 1
}

// Description returns the description level.
func (s Spec) Description() Level {
	if len(s.Levels) == 0 {
		return nil
	}
	return s.Levels[len(s.Levels)-1]
}
