package strategy

import (
	"strings"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"github.com/VivekMane57/sectionize/pkg/sectionize/parser"
)

// Profile extracts key-value blocks introduced by a row starting with the
// profile marker. The section is always titled Vocabulary.ProfileTitle.
type Profile struct {
	vocab Vocabulary
}

// NewProfile returns the key-value profile strategy.
func NewProfile(v Vocabulary) *Profile {
	return &Profile{vocab: v}
}

// Name implements Strategy.
func (p *Profile) Name() string { return "profile" }

// Extract implements Strategy.
func (p *Profile) Extract(block models.Block, prior models.Context) (*Parsed, models.Context, bool) {
	g := block.Data
	marker := parser.Fold(p.vocab.ProfileMarker)
	if marker == "" {
		return miss(prior)
	}

	start := -1
	for i, r := range g {
		if first, ok := cellText(r, 0); ok && strings.HasPrefix(parser.Fold(first), marker) {
			start = i
			break
		}
	}
	if start < 0 {
		return miss(prior)
	}

	var records []*models.Record
	for _, r := range g[start+1:] {
		if models.IsBlankRow(r) {
			break
		}
		key, keyOK := cellText(r, 0)
		value, valueOK := cellText(r, 1)
		if !keyOK && !valueOK {
			continue
		}
		rec := models.NewRecord().Set("metric", key)
		if valueOK {
			rec.Set("value", value)
		} else {
			rec.Set("value", nil)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return miss(prior)
	}
	return &Parsed{Title: p.vocab.ProfileTitle, Records: records}, prior.WithoutColumns(), true
}
