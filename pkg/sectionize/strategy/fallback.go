package strategy

import (
	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
)

// Fallback turns any block with text into a section: the first populated row
// is the title and every later populated row one {metric} record. It only
// misses on blocks without a single non-blank cell.
type Fallback struct{}

// NewFallback returns the unstructured fallback strategy.
func NewFallback() *Fallback { return &Fallback{} }

// Name implements Strategy.
func (f *Fallback) Name() string { return "fallback" }

// Extract implements Strategy.
func (f *Fallback) Extract(block models.Block, prior models.Context) (*Parsed, models.Context, bool) {
	rows := nonBlankRows(block.Data)
	if len(rows) == 0 {
		return miss(prior)
	}
	title := joinTexts(rows[0])
	var records []*models.Record
	for _, texts := range rows[1:] {
		records = append(records, models.NewRecord().Set("metric", joinTexts(texts)))
	}
	if len(records) == 0 {
		records = append(records, models.NewRecord().Set("metric", title))
	}
	return &Parsed{Title: title, Records: records}, prior.WithoutColumns(), true
}
