package strategy

import (
	"strings"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"github.com/VivekMane57/sectionize/pkg/sectionize/parser"
)

// Monthly extracts month-wise particulars pivoted wide: a marker cell
// followed by month labels, then one metric row per particular.
type Monthly struct {
	vocab Vocabulary
}

// NewMonthly returns the monthly particulars strategy.
func NewMonthly(v Vocabulary) *Monthly {
	return &Monthly{vocab: v}
}

// Name implements Strategy.
func (m *Monthly) Name() string { return "monthly" }

// Extract implements Strategy.
func (m *Monthly) Extract(block models.Block, prior models.Context) (*Parsed, models.Context, bool) {
	g := block.Data
	row, col, found := m.findMarker(g)
	if !found {
		if len(prior.Months) == 0 {
			return miss(prior)
		}
		return m.continuation(g, prior)
	}

	months := monthLabels(g[row], col)
	if len(months) == 0 {
		return miss(prior)
	}
	title, _ := m.vocab.ResolveTitle(g, row)

	marker := parser.Fold(m.vocab.MonthlyMarker)
	var records []*models.Record
	for _, r := range g[row+1:] {
		if models.IsBlankRow(r) {
			break
		}
		label, ok := cellText(r, col)
		if !ok || strings.HasPrefix(parser.Fold(label), marker) {
			continue
		}
		records = append(records, monthlyRecord(label, r, col+1, months))
	}

	if len(records) == 0 {
		return miss(prior)
	}
	next := prior
	next.Months = months
	return &Parsed{Title: title, Records: records}, next, true
}

// continuation reads a headerless block against the inherited month list.
// Column 0 is the label; the first label doubles as the section title.
func (m *Monthly) continuation(g models.Grid, prior models.Context) (*Parsed, models.Context, bool) {
	var (
		title   string
		records []*models.Record
	)
	for _, r := range g {
		label, ok := cellText(r, 0)
		if !ok {
			continue
		}
		if title == "" {
			title = label
		}
		records = append(records, monthlyRecord(label, r, 1, prior.Months))
	}
	if len(records) == 0 {
		return miss(prior)
	}
	return &Parsed{Title: title, Records: records}, prior, true
}

// findMarker returns the first cell whose text contains the monthly marker.
func (m *Monthly) findMarker(g models.Grid) (row, col int, ok bool) {
	marker := parser.Fold(m.vocab.MonthlyMarker)
	if marker == "" {
		return 0, 0, false
	}
	for i, r := range g {
		for j, c := range r {
			if c.IsBlank() {
				continue
			}
			if strings.Contains(parser.Fold(c.String()), marker) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// monthLabels collects the labels to the right of col up to the first blank.
func monthLabels(header []models.Cell, col int) []string {
	var months []string
	for j := col + 1; j < len(header); j++ {
		if header[j].IsBlank() {
			break
		}
		months = append(months, header[j].Trimmed())
	}
	return months
}

func monthlyRecord(label string, row []models.Cell, first int, months []string) *models.Record {
	values := models.NewRecord()
	for i, month := range months {
		values.Set(month, parser.ToNumber(models.CellAt(row, first+i)).Value())
	}
	return models.NewRecord().Set("metric", label).Set("monthly_values", values)
}
