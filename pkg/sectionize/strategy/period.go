package strategy

import (
	"strings"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"github.com/VivekMane57/sectionize/pkg/sectionize/parser"
)

// PeriodTable extracts period-keyed metric tables: one label column (plus an
// optional identifier column) followed by values under period headers.
// Blocks without a header continue the period mapping of the prior context.
type PeriodTable struct {
	vocab        Vocabulary
	name         string
	labelKey     string
	secondaryKey string
	isEcho       func(label string) bool
}

// NewPeriodTable returns the generic metric table strategy.
func NewPeriodTable(v Vocabulary) *PeriodTable {
	return &PeriodTable{
		vocab:    v,
		name:     "period_table",
		labelKey: "metric",
		isEcho:   func(label string) bool { return v.isStructural(label) },
	}
}

// NewRegionTable returns the geography strategy: entity name plus a short
// region code carried through verbatim.
func NewRegionTable(v Vocabulary) *PeriodTable {
	t := NewPeriodTable(v)
	t.name = "region_table"
	t.secondaryKey = "state_code"
	return t
}

// NewCatalogTable returns the product strategy: product code plus a
// descriptive name.
func NewCatalogTable(v Vocabulary) *PeriodTable {
	return &PeriodTable{
		vocab:        v,
		name:         "catalog_table",
		labelKey:     "product_hsn",
		secondaryKey: "hsn_name",
		isEcho:       func(label string) bool { return equalsAny(label, v.CatalogEchoes) },
	}
}

// NewPartyTable returns the party strategy for role ("customer" or
// "supplier"): party name plus its tax identifier.
func NewPartyTable(v Vocabulary, role string) *PeriodTable {
	return &PeriodTable{
		vocab:        v,
		name:         role + "_table",
		labelKey:     role + "_name",
		secondaryKey: role + "_gstin",
		isEcho:       func(label string) bool { return strings.Contains(parser.Fold(label), parser.Fold(role)) },
	}
}

// Name implements Strategy.
func (t *PeriodTable) Name() string { return t.name }

// Extract implements Strategy.
func (t *PeriodTable) Extract(block models.Block, prior models.Context) (*Parsed, models.Context, bool) {
	g := block.Data
	headerIdx := t.vocab.DetectHeaderRow(g)
	headerFound := headerIdx >= 0

	var (
		next  models.Context
		start int
	)
	if headerFound {
		cols := t.vocab.PeriodColumns(g[headerIdx])
		if cols.IsEmpty() {
			return miss(prior)
		}
		title, _ := t.vocab.ResolveTitle(g, headerIdx)
		next = models.Context{Columns: cols, Title: title, Months: prior.Months}
		start = headerIdx + 1
	} else {
		if !prior.HasColumns() {
			return miss(prior)
		}
		next = prior
	}

	records := t.records(g[start:], next.Columns)
	if len(records) == 0 {
		return nil, prior, headerFound
	}
	return &Parsed{Title: next.Title, Records: records}, next, headerFound
}

func (t *PeriodTable) records(rows models.Grid, cols models.PeriodColumnMap) []*models.Record {
	var records []*models.Record
	for _, row := range rows {
		label, ok := cellText(row, 0)
		if !ok || t.isEcho(label) {
			continue
		}
		rec := models.NewRecord().Set(t.labelKey, label)
		if t.secondaryKey != "" {
			if code, ok := cellText(row, 1); ok {
				rec.Set(t.secondaryKey, code)
			}
		}
		for _, key := range cols.Keys() {
			rec.Set(key, periodValue(row, cols.Columns(key)))
		}
		records = append(records, rec)
	}
	return records
}

// periodValue reads the mapped columns of row: a scalar for one column, an
// ordered list for several.
func periodValue(row []models.Cell, cols []int) any {
	values := make([]any, len(cols))
	for i, col := range cols {
		values[i] = parser.ToNumber(models.CellAt(row, col)).Value()
	}
	switch len(values) {
	case 0:
		return nil
	case 1:
		return values[0]
	default:
		return values
	}
}
