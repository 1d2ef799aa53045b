package sectionize

import (
	"strings"

	"github.com/VivekMane57/sectionize/pkg/sectionize/parser"
	"github.com/VivekMane57/sectionize/pkg/sectionize/strategy"
)

// Classifier maps sheet names to identities and identities to the ordered
// strategies tried on each block.
type Classifier struct {
	rules       []SheetRule
	routes      map[Identity][]strategy.Strategy
	bifurcation *strategy.Bifurcation
}

// NewClassifier builds the strategy registry for opts.
func NewClassifier(opts Options) *Classifier {
	v := opts.Vocabulary
	period := strategy.NewPeriodTable(v)
	fallback := strategy.NewFallback()

	return &Classifier{
		rules: opts.Sheets,
		routes: map[Identity][]strategy.Strategy{
			IdentityGeneric:       {period, fallback},
			IdentityMonthly:       {strategy.NewMonthly(v), period, fallback},
			IdentityRegion:        {strategy.NewRegionTable(v), fallback},
			IdentityCatalog:       {strategy.NewCatalogTable(v), fallback},
			IdentityCustomer:      {strategy.NewPartyTable(v, "customer"), period, fallback},
			IdentitySupplier:      {strategy.NewPartyTable(v, "supplier"), period, fallback},
			IdentityProfileFiling: {strategy.NewLeadingTextRouter(v), fallback},
			IdentityPartyDetails:  {strategy.NewDetails(v), fallback},
			IdentityIndex:         {strategy.NewIndex(v), fallback},
		},
		bifurcation: strategy.NewBifurcation(v),
	}
}

// Identify returns the identity of the first rule matching sheetName, or
// IdentityGeneric.
func (c *Classifier) Identify(sheetName string) Identity {
	name := parser.Fold(sheetName)
	for _, rule := range c.rules {
		want := parser.Fold(rule.Name)
		var ok bool
		switch rule.Match {
		case MatchPrefix:
			ok = strings.HasPrefix(name, want)
		default:
			ok = name == want
		}
		if ok {
			return rule.Identity
		}
	}
	return IdentityGeneric
}

// Strategies returns the strategies tried, in order, on blocks of a sheet
// with identity id. Unknown identities get the generic route.
func (c *Classifier) Strategies(id Identity) []strategy.Strategy {
	if s, ok := c.routes[id]; ok {
		return s
	}
	return c.routes[IdentityGeneric]
}

// Bifurcation returns the sheet-level strategy for IdentityBifurcation.
func (c *Classifier) Bifurcation() *strategy.Bifurcation {
	return c.bifurcation
}
