// Package models defines data structures for sheet section extraction.
package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CellKind identifies what a Cell holds.
type CellKind uint8

const (
	// CellEmpty is a missing or blank cell.
	CellEmpty CellKind = iota
	// CellNumber is a numeric cell.
	CellNumber
	// CellText is a textual cell.
	CellText
)

// Cell is one grid value: absent, a number, or text.
type Cell struct {
	// Kind tells which of Num and Text is meaningful.
	Kind CellKind
	// Num is the numeric value when Kind is CellNumber.
	Num float64
	// Text is the raw text when Kind is CellText.
	Text string
}

// EmptyCell returns an absent cell.
func EmptyCell() Cell { return Cell{} }

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell { return Cell{Kind: CellNumber, Num: v} }

// TextCell returns a text cell holding s verbatim.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// IsBlank reports whether the cell is absent, NaN or whitespace-only text.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case CellNumber:
		return math.IsNaN(c.Num)
	case CellText:
		return strings.TrimSpace(c.Text) == ""
	default:
		return true
	}
}

// String renders the cell as text. Numbers use the shortest exact form.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// Trimmed is String with surrounding whitespace removed.
func (c Cell) Trimmed() string {
	return strings.TrimSpace(c.String())
}

// Value converts the cell to nil, float64 or string.
func (c Cell) Value() any {
	switch c.Kind {
	case CellNumber:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return nil
		}
		return c.Num
	case CellText:
		return c.Text
	default:
		return nil
	}
}

// MarshalJSON encodes the cell as null, a number or a string.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}

// UnmarshalJSON decodes null, numbers, strings and booleans.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*c = EmptyCell()
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			*c = TextCell(v.String())
			return nil
		}
		*c = NumberCell(f)
	case string:
		*c = TextCell(v)
	case bool:
		if v {
			*c = TextCell("True")
		} else {
			*c = TextCell("False")
		}
	default:
		*c = TextCell(strings.TrimSpace(string(data)))
	}
	return nil
}
