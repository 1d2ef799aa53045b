package strategy

import (
	"strings"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
)

// Parsed is what a strategy recovers from one block.
type Parsed struct {
	// Title is the inferred section title; may be empty.
	Title string
	// Records holds at least one record, in source row order.
	Records []*models.Record
}

// Strategy converts one block into records.
//
// Extract returns nil when the strategy does not apply to the block. The
// returned context is the one the next block (or the next strategy tried on
// this block) should see. headerFound tells the caller to open a new section
// rather than continue the previous one.
type Strategy interface {
	Name() string
	Extract(block models.Block, prior models.Context) (parsed *Parsed, next models.Context, headerFound bool)
}

// miss is the common "does not apply" result.
func miss(prior models.Context) (*Parsed, models.Context, bool) {
	return nil, prior, false
}

// nonBlankRows returns the trimmed non-blank texts of every row that has any.
func nonBlankRows(g models.Grid) [][]string {
	var out [][]string
	for _, row := range g {
		if texts := models.RowTexts(row); len(texts) > 0 {
			out = append(out, texts)
		}
	}
	return out
}

// FirstText returns the non-blank cells of the first populated row joined by a
// single space.
func FirstText(g models.Grid) (string, bool) {
	_, text, ok := firstTextRow(g, 0)
	return text, ok
}

// firstTextRow finds the first populated row at or after from.
func firstTextRow(g models.Grid, from int) (int, string, bool) {
	for i := from; i < len(g); i++ {
		if texts := models.RowTexts(g[i]); len(texts) > 0 {
			return i, joinTexts(texts), true
		}
	}
	return -1, "", false
}

func joinTexts(texts []string) string {
	return strings.Join(texts, " ")
}

// cellText returns the trimmed text at row[col] and whether it is non-blank.
func cellText(row []models.Cell, col int) (string, bool) {
	c := models.CellAt(row, col)
	if c.IsBlank() {
		return "", false
	}
	return c.Trimmed(), true
}
