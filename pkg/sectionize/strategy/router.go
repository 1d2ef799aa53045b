package strategy

import (
	"strings"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"github.com/VivekMane57/sectionize/pkg/sectionize/parser"
)

// LeadingTextRouter picks a strategy from the block's own leading text:
// profile blocks start with the profile marker, filing blocks mention one of
// the filing markers. Anything else is a miss.
type LeadingTextRouter struct {
	vocab   Vocabulary
	profile Strategy
	filing  Strategy
}

// NewLeadingTextRouter returns the profile-and-filings dispatcher.
func NewLeadingTextRouter(v Vocabulary) *LeadingTextRouter {
	return &LeadingTextRouter{vocab: v, profile: NewProfile(v), filing: NewFiling()}
}

// Name implements Strategy.
func (r *LeadingTextRouter) Name() string { return "profile_filing" }

// Extract implements Strategy.
func (r *LeadingTextRouter) Extract(block models.Block, prior models.Context) (*Parsed, models.Context, bool) {
	text, ok := FirstText(block.Data)
	if !ok {
		return miss(prior)
	}
	folded := parser.Fold(text)
	switch {
	case r.vocab.ProfileMarker != "" && strings.HasPrefix(folded, parser.Fold(r.vocab.ProfileMarker)):
		return r.profile.Extract(block, prior)
	case containsAny(text, r.vocab.FilingMarkers):
		return r.filing.Extract(block, prior)
	}
	return miss(prior)
}
