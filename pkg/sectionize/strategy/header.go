package strategy

import (
	"strings"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"github.com/VivekMane57/sectionize/pkg/sectionize/parser"
)

// DetectHeaderRow returns the index of the first row whose cells, joined,
// contain a recognized period marker. It returns -1 when no row does.
func (v Vocabulary) DetectHeaderRow(g models.Grid) int {
	for i, row := range g {
		if len(row) == 0 {
			continue
		}
		parts := make([]string, len(row))
		for j, c := range row {
			if !c.IsBlank() {
				parts[j] = c.String()
			}
		}
		if v.hasPeriodMarker(strings.Join(parts, " ")) {
			return i
		}
	}
	return -1
}

func (v Vocabulary) hasPeriodMarker(text string) bool {
	folded := parser.Fold(text)
	for _, m := range v.PeriodMarkers {
		if label := parser.Fold(m.Label); label != "" && strings.Contains(folded, label) {
			return true
		}
	}
	return false
}

// SpreadLabels gives every header cell an effective label: its own text when
// non-blank, otherwise the nearest non-blank label to its left. Cells before
// the first label get "".
func SpreadLabels(row []models.Cell) []string {
	labels := make([]string, len(row))
	current := ""
	for i, c := range row {
		if !c.IsBlank() {
			current = c.Trimmed()
		}
		labels[i] = current
	}
	return labels
}

// PeriodColumns maps each period key to the columns whose effective label
// contains its marker. A column matching several markers is registered under
// each of them.
func (v Vocabulary) PeriodColumns(header []models.Cell) models.PeriodColumnMap {
	var cols models.PeriodColumnMap
	for idx, label := range SpreadLabels(header) {
		if label == "" {
			continue
		}
		folded := parser.Fold(label)
		for _, m := range v.PeriodMarkers {
			marker := parser.Fold(m.Label)
			if marker != "" && strings.Contains(folded, marker) {
				cols.Add(m.RecordKey(), idx)
			}
		}
	}
	return cols
}
