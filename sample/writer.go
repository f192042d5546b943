package sample

import (
	"fmt"

	excelize "github.com/xuri/excelize/v2"

	"github.com/orayew2002/rast-html/excel"
)

// SheetName is the sheet the roster is written to.
const SheetName = "Members"

// Labels is the label row of the roster sheet, columns A to G.
var Labels = []string{"Country", "Chamber", "Party", "Committee", "Name", "District", "Since"}

var widths = []float64{16, 14, 18, 18, 28, 10, 8}

// WriteToFile creates a workbook with the members and saves it to path.
func WriteToFile(members []Member, path string) error {
	f, err := newWorkbook(members)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// WriteToBytes creates a workbook with the members and returns it as bytes.
func WriteToBytes(members []Member) ([]byte, error) {
	f, err := newWorkbook(members)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func newWorkbook(members []Member) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	st := newStyles(f)

	if err := writeLabels(f, st); err != nil {
		f.Close()
		return nil, fmt.Errorf("write labels: %w", err)
	}

	if err := writeRows(f, st, members); err != nil {
		f.Close()
		return nil, fmt.Errorf("write rows: %w", err)
	}

	if err := setWidths(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("set widths: %w", err)
	}

	return f, nil
}

func writeLabels(f *excelize.File, st *styles) error {
	style, err := st.label()
	if err != nil {
		return err
	}

	for col, label := range Labels {
		cell := excel.CellName(0, col)
		if err := f.SetCellStr(SheetName, cell, label); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return err
		}
	}

	return nil
}

func writeRows(f *excelize.File, st *styles, members []Member) error {
	text, err := st.text()
	if err != nil {
		return err
	}
	number, err := st.number()
	if err != nil {
		return err
	}

	for i, m := range members {
		row := i + 1 // row 0 is labels
		values := []string{m.Country, m.Chamber, m.Party, m.Committee, m.Name, m.District}
		for col, val := range values {
			cell := excel.CellName(row, col)
			if val != "" {
				if err := f.SetCellStr(SheetName, cell, val); err != nil {
					return fmt.Errorf("member %d, col %d: %w", row, col, err)
				}
			}
			if err := f.SetCellStyle(SheetName, cell, cell, text); err != nil {
				return fmt.Errorf("member %d, col %d: %w", row, col, err)
			}
		}

		cell := excel.CellName(row, len(values))
		if err := f.SetCellInt(SheetName, cell, int64(m.Since)); err != nil {
			return fmt.Errorf("member %d, since: %w", row, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, number); err != nil {
			return fmt.Errorf("member %d, since: %w", row, err)
		}
	}

	return nil
}

func setWidths(f *excelize.File) error {
	for col, w := range widths {
		name := excel.IndexToColumn(col)
		if err := f.SetColWidth(SheetName, name, name, w); err != nil {
			return err
		}
	}
	return nil
}
