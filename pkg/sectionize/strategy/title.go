package strategy

import (
	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
)

// ResolveTitle infers a block title for a header at headerIdx. Rows above the
// header are scanned upward; the first populated row that is not a bare
// structural label wins. Otherwise the first non-blank header cell is used.
func (v Vocabulary) ResolveTitle(g models.Grid, headerIdx int) (string, bool) {
	for i := min(headerIdx, len(g)) - 1; i >= 0; i-- {
		texts := models.RowTexts(g[i])
		if len(texts) == 0 {
			continue
		}
		text := joinTexts(texts)
		if v.isStructural(text) {
			continue
		}
		return text, true
	}
	if headerIdx >= 0 && headerIdx < len(g) {
		for _, c := range g[headerIdx] {
			if !c.IsBlank() {
				return c.Trimmed(), true
			}
		}
	}
	return "", false
}
