package sample

import "github.com/xuri/excelize/v2"

// styles creates each cell style once per workbook.
type styles struct {
	file  *excelize.File
	cache map[string]int
}

func newStyles(f *excelize.File) *styles {
	return &styles{file: f, cache: make(map[string]int)}
}

// label is the bold, centered style of the label row.
func (s *styles) label() (int, error) {
	return s.getOrCreate("label", &excelize.Style{
		Font:      &excelize.Font{Family: fontFamily, Size: 11, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
}

// text is the left-aligned style of data cells.
func (s *styles) text() (int, error) {
	return s.getOrCreate("text", &excelize.Style{
		Font:      &excelize.Font{Family: fontFamily, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorder(),
	})
}

// number right-aligns numeric cells.
func (s *styles) number() (int, error) {
	return s.getOrCreate("number", &excelize.Style{
		Font:      &excelize.Font{Family: fontFamily, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    thinBorder(),
	})
}

func (s *styles) getOrCreate(key string, style *excelize.Style) (int, error) {
	if id, ok := s.cache[key]; ok {
		return id, nil
	}

	id, err := s.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	s.cache[key] = id
	return id, nil
}

const fontFamily = "Calibri"

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "A6A6A6", Style: 1},
		{Type: "right", Color: "A6A6A6", Style: 1},
		{Type: "top", Color: "A6A6A6", Style: 1},
		{Type: "bottom", Color: "A6A6A6", Style: 1},
	}
}
