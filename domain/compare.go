package domain

import (
	"cmp"
	"math"
	"strconv"
	"strings"
)

// TextCompare orders two non-numeric cell values.
type TextCompare func(a, b string) int

// CompareCells orders two cell values: blank before numeric before text.
// Numeric cells compare by value; text cells use text, or strings.Compare
// when text is nil.
func CompareCells(a, b string, text TextCompare) int {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)

	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankBlank:
		return 0
	case rankNumber:
		fa, _ := parseNumber(a)
		fb, _ := parseNumber(b)
		return cmp.Compare(fa, fb)
	}

	if text == nil {
		return strings.Compare(a, b)
	}
	return text(a, b)
}

// CompareRows compares two rows column by column over cols.
func CompareRows(a, b Row, cols []int, text TextCompare) int {
	for _, c := range cols {
		if r := CompareCells(a.Cell(c), b.Cell(c), text); r != 0 {
			return r
		}
	}
	return 0
}

const (
	rankBlank = iota
	rankNumber
	rankText
)

func rank(v string) int {
	if v == "" {
		return rankBlank
	}
	if _, ok := parseNumber(v); ok {
		return rankNumber
	}
	return rankText
}

// parseNumber accepts finite decimal numbers only. ParseFloat alone would
// also take "Inf", "NaN" and hex floats such as "0x1p3", which are text here.
func parseNumber(v string) (float64, bool) {
	if !decimalSyntax(v) {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func decimalSyntax(v string) bool {
	digits := strings.TrimLeft(v, "+-")
	if len(v)-len(digits) > 1 || digits == "" {
		return false
	}
	if c := digits[0]; c != '.' && (c < '0' || c > '9') {
		return false
	}
	return !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X")
}
