package strategy

import (
	"strings"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"github.com/VivekMane57/sectionize/pkg/sectionize/parser"
)

// Details extracts the customer/supplier master table whose header row is
// introduced by a tax identifier column.
type Details struct {
	vocab Vocabulary
}

// NewDetails returns the party master details strategy.
func NewDetails(v Vocabulary) *Details {
	return &Details{vocab: v}
}

// Name implements Strategy.
func (d *Details) Name() string { return "details" }

// Extract implements Strategy.
func (d *Details) Extract(block models.Block, prior models.Context) (*Parsed, models.Context, bool) {
	g := block.Data
	titleIdx, title, ok := firstTextRow(g, 0)
	if !ok {
		return miss(prior)
	}

	headerIdx := -1
	for i := titleIdx + 1; i < len(g); i++ {
		if first, ok := cellText(g[i], 0); ok && containsAny(first, d.vocab.DetailsHeaderMarkers) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return miss(prior)
	}

	header := g[headerIdx]
	keys := make([]string, len(header))
	for j, c := range header {
		if !c.IsBlank() {
			keys[j] = detailsKey(c.Trimmed())
		}
	}

	var records []*models.Record
	for _, r := range g[headerIdx+1:] {
		if models.IsBlankRow(r) {
			break
		}
		rec := models.NewRecord()
		for j, key := range keys {
			if key == "" {
				continue
			}
			if v, ok := cellText(r, j); ok {
				rec.Set(key, v)
			} else {
				rec.Set(key, nil)
			}
		}
		if rec.Len() > 0 {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return miss(prior)
	}
	return &Parsed{Title: title, Records: records}, prior.WithoutColumns(), true
}

// detailsKey names a details column; party tax identifier columns get a
// canonical name regardless of their spelling.
func detailsKey(text string) string {
	folded := parser.Fold(text)
	if strings.Contains(folded, "gst") {
		switch {
		case strings.Contains(folded, "customer"):
			return "Customer GSTN"
		case strings.Contains(folded, "supplier"):
			return "Supplier GSTN"
		}
	}
	return text
}
