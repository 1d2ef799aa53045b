package strategy

import (
	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
)

// Bifurcation is the sheet-level strategy for sheets split into banner-led
// parts. Each part runs from its banner block up to the next banner; its
// blocks are stacked into one grid and read once as a period table.
type Bifurcation struct {
	vocab  Vocabulary
	period *PeriodTable
}

// NewBifurcation returns the bifurcated-sheet strategy.
func NewBifurcation(v Vocabulary) *Bifurcation {
	return &Bifurcation{vocab: v, period: NewPeriodTable(v)}
}

// Name returns the strategy name used in logs.
func (b *Bifurcation) Name() string { return "bifurcation" }

// Sections returns at most one section per configured banner, in banner
// order. Provenance is taken from the first table of each part; RowCount is
// the number of records.
func (b *Bifurcation) Sections(sheet string, tables []models.Table) []*models.Section {
	starts := make([]int, len(b.vocab.Bifurcation))
	for i, banner := range b.vocab.Bifurcation {
		starts[i] = -1
		for idx, t := range tables {
			text, ok := FirstText(t.Data)
			if ok && containsAny(text, []string{banner.Marker}) {
				starts[i] = idx
				break
			}
		}
	}

	var sections []*models.Section
	for i, banner := range b.vocab.Bifurcation {
		start := starts[i]
		if start < 0 {
			continue
		}
		end := len(tables)
		for j, other := range starts {
			if j != i && other > start && other < end {
				end = other
			}
		}
		if s := b.merge(sheet, banner.Title, tables[start:end]); s != nil {
			sections = append(sections, s)
		}
	}
	return sections
}

func (b *Bifurcation) merge(sheet, title string, part []models.Table) *models.Section {
	var combined models.Grid
	for _, t := range part {
		combined = append(combined, t.Data...)
	}
	if len(combined) == 0 {
		return nil
	}
	parsed, _, headerFound := b.period.Extract(models.Block{Data: combined}, models.Context{})
	if parsed == nil || !headerFound {
		return nil
	}
	first := part[0]
	return &models.Section{
		Sheet:        sheet,
		SectionTitle: title,
		StartRow:     first.StartRow,
		StartCol:     first.StartCol,
		RowCount:     len(parsed.Records),
		ColumnCount:  first.ColumnCount,
		Metrics:      parsed.Records,
	}
}
