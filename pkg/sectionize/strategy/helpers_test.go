package strategy

import (
	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"github.com/VivekMane57/sectionize/pkg/sectionize/parser"
)

// grid builds a grid from loader values; nil and "" are empty cells.
func grid(rows ...[]any) models.Grid {
	g := make(models.Grid, len(rows))
	for i, row := range rows {
		cells := make([]models.Cell, len(row))
		for j, v := range row {
			cells[j] = parser.Classify(v)
		}
		g[i] = cells
	}
	return g
}

func block(rows ...[]any) models.Block {
	g := grid(rows...)
	return models.Block{EndRow: len(g) - 1, EndCol: g.Width() - 1, Data: g}
}

// plain flattens a record (and nested records) into a map for comparison.
func plain(r *models.Record) map[string]any {
	out := make(map[string]any, r.Len())
	for _, k := range r.Keys() {
		v, _ := r.Get(k)
		if nested, ok := v.(*models.Record); ok {
			v = plain(nested)
		}
		out[k] = v
	}
	return out
}

func plainAll(records []*models.Record) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, r := range records {
		out[i] = plain(r)
	}
	return out
}
