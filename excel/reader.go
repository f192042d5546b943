package excel

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/orayew2002/rast-html/domain"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound is returned when the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Options selects what part of a workbook is read.
type Options struct {
	// Sheet is the sheet name. Empty selects the first sheet.
	Sheet string
	// LabelRow treats the first non-blank row as column labels.
	LabelRow bool
}

// ReadFile opens the workbook at path and reads one sheet.
func ReadFile(path string, opts Options) (*domain.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return readSheet(f, opts)
}

// Read reads one sheet from a workbook stream.
func Read(r io.Reader, opts Options) (*domain.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open from reader: %w", err)
	}
	defer f.Close()

	return readSheet(f, opts)
}

func readSheet(f *excelize.File, opts Options) (*domain.Sheet, error) {
	sheet, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: get rows: %w", sheet, err)
	}

	out := &domain.Sheet{Name: sheet}
	for _, row := range rows {
		if blankRow(row) {
			continue
		}
		if opts.LabelRow && out.Labels == nil {
			out.Labels = domain.Row(row)
			continue
		}
		out.Rows = append(out.Rows, domain.Row(row))
	}

	return out, nil
}

func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if name == "" {
		if len(sheets) == 0 {
			return "", ErrSheetNotFound
		}
		return sheets[0], nil
	}
	if !slices.Contains(sheets, name) {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return name, nil
}

func blankRow(row []string) bool {
	for _, v := range row {
		if !domain.Blank(v) {
			return false
		}
	}
	return true
}
