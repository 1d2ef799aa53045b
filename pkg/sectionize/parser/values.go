package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// placeholders are tokens that stand for "no value" in the source sheets.
var placeholders = map[string]struct{}{
	"-":   {},
	"--":  {},
	"NA":  {},
	"N/A": {},
}

// Classify converts a raw loader value into a Cell. Missing values, NaN and
// whitespace-only strings become empty cells.
func Classify(v any) models.Cell {
	switch x := v.(type) {
	case nil:
		return models.EmptyCell()
	case models.Cell:
		if x.IsBlank() {
			return models.EmptyCell()
		}
		return x
	case float64:
		if math.IsNaN(x) {
			return models.EmptyCell()
		}
		return models.NumberCell(x)
	case float32:
		return Classify(float64(x))
	case int:
		return models.NumberCell(float64(x))
	case int64:
		return models.NumberCell(float64(x))
	case string:
		if strings.TrimSpace(x) == "" {
			return models.EmptyCell()
		}
		return models.TextCell(x)
	case bool:
		if x {
			return models.TextCell("True")
		}
		return models.TextCell("False")
	default:
		return models.EmptyCell()
	}
}

// ToNumber normalizes a cell that may hold a number written as text.
// Placeholder tokens become empty; thousands separators and one trailing
// percent sign (with any space before it) are stripped. Percentages are not rescaled. When the text does
// not parse the original cell is returned unchanged.
func ToNumber(c models.Cell) models.Cell {
	switch c.Kind {
	case models.CellNumber:
		if math.IsNaN(c.Num) {
			return models.EmptyCell()
		}
		return c
	case models.CellText:
		f, ok, empty := parseNumeric(c.Text)
		if empty {
			return models.EmptyCell()
		}
		if !ok {
			return c
		}
		return models.NumberCell(f)
	default:
		return models.EmptyCell()
	}
}

func parseNumeric(raw string) (f float64, ok bool, empty bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false, true
	}
	if _, isPlaceholder := placeholders[s]; isPlaceholder {
		return 0, false, true
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, false
	}
	return f, true, false
}

// Fold returns the comparison form of a label: NFKC-normalized, trimmed and
// case-folded.
func Fold(s string) string {
	return cases.Fold().String(norm.NFKC.String(strings.TrimSpace(s)))
}
