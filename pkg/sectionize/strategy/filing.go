package strategy

import (
	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
)

// Filing extracts a titled history table: title row, header row, then one
// record per row keyed by the slugified header cells.
type Filing struct{}

// NewFiling returns the filing-history strategy.
func NewFiling() *Filing { return &Filing{} }

// Name implements Strategy.
func (f *Filing) Name() string { return "filing" }

// Extract implements Strategy.
func (f *Filing) Extract(block models.Block, prior models.Context) (*Parsed, models.Context, bool) {
	g := block.Data
	titleIdx, title, ok := firstTextRow(g, 0)
	if !ok {
		return miss(prior)
	}
	headerIdx, _, ok := firstTextRow(g, titleIdx+1)
	if !ok {
		return miss(prior)
	}

	header := g[headerIdx]
	keys := make([]string, len(header))
	for j, c := range header {
		if !c.IsBlank() {
			keys[j] = Slug(c.String())
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
			c := models.CellAt(r, j)
			if c.IsBlank() {
				rec.Set(key, nil)
			} else {
				rec.Set(key, c.Value())
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
