package excel

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/orayew2002/rast-html/domain"
)

// IndexToColumn converts a 0-based column index to Excel column letters (0→A, 25→Z, 26→AA).
func IndexToColumn(n int) string {
	var buf []byte
	for n >= 0 {
		buf = append(buf, byte('A'+n%26))
		n = n/26 - 1
	}
	slices.Reverse(buf)
	return string(buf)
}

// CellName converts 0-based row and column indices to an Excel cell reference (0,0 → "A1").
func CellName(row, col int) string {
	return IndexToColumn(col) + strconv.Itoa(row+1)
}

// ColumnToIndex converts Excel column letters to a 0-based index (A→0, Z→25, AA→26).
// Lower-case letters are accepted. Returns false for anything that is not a
// letter code.
func ColumnToIndex(letters string) (int, bool) {
	if letters == "" {
		return 0, false
	}
	n := 0
	for _, r := range strings.ToUpper(letters) {
		if r < 'A' || r > 'Z' {
			return 0, false
		}
		n = n*26 + int(r-'A'+1)
	}
	return n - 1, true
}

// ParseColumn resolves one column reference: a 0-based decimal index ("3")
// or a letter code ("D").
func ParseColumn(ref string) (int, error) {
	ref = strings.TrimSpace(ref)

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 0 {
			return 0, &domain.ColumnAddressError{Ref: ref, Column: -1}
		}
		return n, nil
	}

	if n, ok := ColumnToIndex(ref); ok {
		return n, nil
	}

	return 0, &domain.ColumnAddressError{Ref: ref, Column: -1}
}

// ParseColumns resolves a list of column references. Each entry may itself be
// comma separated ("K,L").
func ParseColumns(refs []string) ([]int, error) {
	var cols []int
	for _, ref := range refs {
		for _, part := range strings.Split(ref, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			c, err := ParseColumn(part)
			if err != nil {
				return nil, err
			}
			cols = append(cols, c)
		}
	}
	return cols, nil
}

// ParseLevel resolves one grouping level. Several columns are combined with
// commas:
//
//	"E,F" → Level{4, 5}
func ParseLevel(ref string) (domain.Level, error) {
	cols, err := ParseColumns([]string{ref})
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, domain.ErrEmptyLevel
	}
	return domain.Level(cols), nil
}

// ParseLevels resolves grouping levels from outermost to innermost.
func ParseLevels(refs []string) ([]domain.Level, error) {
	levels := make([]domain.Level, 0, len(refs))
	for _, ref := range refs {
		l, err := ParseLevel(ref)
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", ref, err)
		}
		levels = append(levels, l)
	}
	return levels, nil
}
