package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySpec is returned when a spec has no grouping levels.
	ErrEmptySpec = errors.New("spec has no grouping levels")

	// ErrEmptyLevel is returned when a grouping level names no columns.
	ErrEmptyLevel = errors.New("grouping level has no columns")
)

// ColumnAddressError reports a column reference that cannot be resolved:
// either a malformed reference (Ref set, Column -1) or an index outside the
// table (Column set, Width the table width).
type ColumnAddressError struct {
	Ref    string
	Column int
	Width  int
}

func (e *ColumnAddressError) Error() string {
	if e.Ref != "" && e.Column < 0 {
		return fmt.Sprintf("invalid column reference %q", e.Ref)
	}
	return fmt.Sprintf("column %d out of range for table width %d", e.Column, e.Width)
}

// SortKeyError reports a sort column that cannot be used.
type SortKeyError struct {
	Column int
	Err    error
}

func (e *SortKeyError) Error() string {
	return fmt.Sprintf("sort column %d: %v", e.Column, e.Err)
}

func (e *SortKeyError) Unwrap() error {
	return e.Err
}
