package strategy

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
)

// Index extracts the table-of-contents block: one {table_code, table_title,
// description} record per coded row.
type Index struct {
	vocab Vocabulary
}

// NewIndex returns the index/catalog strategy.
func NewIndex(v Vocabulary) *Index {
	return &Index{vocab: v}
}

// Name implements Strategy.
func (x *Index) Name() string { return "index" }

// Extract implements Strategy.
func (x *Index) Extract(block models.Block, prior models.Context) (*Parsed, models.Context, bool) {
	g := block.Data
	title, ok := FirstText(g)
	if !ok {
		title = x.vocab.IndexTitle
	}

	var records []*models.Record
	for _, r := range g {
		code, ok := x.code(models.CellAt(r, 0))
		if !ok {
			continue
		}
		rec := models.NewRecord().Set("table_code", code)
		rec.Set("table_title", optionalText(r, 1))
		rec.Set("description", optionalText(r, 2))
		records = append(records, rec)
	}
	if len(records) == 0 {
		return miss(prior)
	}
	return &Parsed{Title: title, Records: records}, prior.WithoutColumns(), true
}

// code returns the display code of an index row, rejecting banners and
// cells without any digit.
func (x *Index) code(c models.Cell) (string, bool) {
	if c.IsBlank() {
		return "", false
	}
	text := c.Trimmed()
	if containsAny(text, x.vocab.IndexBanners) || !strings.ContainsFunc(text, unicode.IsDigit) {
		return "", false
	}
	if c.Kind == models.CellNumber {
		text = FormatCode(c.Num)
	}
	return text, true
}

// FormatCode renders a numeric index code with at most two decimals and no
// trailing zeros: 2 -> "2", 1.10 -> "1.1".
func FormatCode(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func optionalText(row []models.Cell, col int) any {
	if text, ok := cellText(row, col); ok {
		return text
	}
	return nil
}
