// Package sectionize recovers named, normalized metric sections from
// semi-structured spreadsheet sheets.
package sectionize

import (
	"github.com/VivekMane57/sectionize/pkg/sectionize/strategy"
)

// Identity names the extraction route a sheet takes.
type Identity string

const (
	// IdentityGeneric reads period tables, falling back to free text.
	IdentityGeneric Identity = "generic"
	// IdentityMonthly reads month-wise particulars before period tables.
	IdentityMonthly Identity = "monthly"
	// IdentityRegion reads period tables with a region code column.
	IdentityRegion Identity = "region"
	// IdentityCatalog reads period tables keyed by product code.
	IdentityCatalog Identity = "catalog"
	// IdentityCustomer reads customer tables with a tax identifier column.
	IdentityCustomer Identity = "customer"
	// IdentitySupplier reads supplier tables with a tax identifier column.
	IdentitySupplier Identity = "supplier"
	// IdentityProfileFiling routes each block by its leading text.
	IdentityProfileFiling Identity = "profile_filing"
	// IdentityPartyDetails reads the customer/supplier master table.
	IdentityPartyDetails Identity = "party_details"
	// IdentityIndex reads the table of contents.
	IdentityIndex Identity = "index"
	// IdentityBifurcation merges banner-led parts at sheet level.
	IdentityBifurcation Identity = "bifurcation"
)

// MatchKind selects how a SheetRule compares sheet names.
type MatchKind string

const (
	// MatchExact requires the folded names to be equal.
	MatchExact MatchKind = "exact"
	// MatchPrefix requires the folded sheet name to start with the rule name.
	MatchPrefix MatchKind = "prefix"
)

// SheetRule binds sheet names to an identity.
type SheetRule struct {
	Name     string    `toml:"name" yaml:"name"`
	Match    MatchKind `toml:"match" yaml:"match"`
	Identity Identity  `toml:"identity" yaml:"identity"`
}

// Options configures extraction behavior.
type Options struct {
	// Vocabulary holds the markers the strategies recognize.
	Vocabulary strategy.Vocabulary `toml:"vocabulary" yaml:"vocabulary"`
	// Sheets maps sheet names to identities; first match wins. Sheets no
	// rule matches are generic.
	Sheets []SheetRule `toml:"sheets" yaml:"sheets"`
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Vocabulary: strategy.DefaultVocabulary(),
		Sheets:     DefaultSheetRules(),
	}
}

// DefaultSheetRules returns the sheet identities of GST analytics workbooks.
func DefaultSheetRules() []SheetRule {
	return []SheetRule{
		{Name: "gstr 3b", Match: MatchExact, Identity: IdentityMonthly},
		{Name: "tax", Match: MatchExact, Identity: IdentityMonthly},
		{Name: "summary", Match: MatchExact, Identity: IdentityMonthly},
		{Name: "state wise", Match: MatchExact, Identity: IdentityRegion},
		{Name: "product wise", Match: MatchExact, Identity: IdentityCatalog},
		{Name: "customer wise", Match: MatchExact, Identity: IdentityCustomer},
		{Name: "supplier wise", Match: MatchExact, Identity: IdentitySupplier},
		{Name: "profile & filing", Match: MatchPrefix, Identity: IdentityProfileFiling},
		{Name: "details of customers and supp.", Match: MatchExact, Identity: IdentityPartyDetails},
		{Name: "index", Match: MatchExact, Identity: IdentityIndex},
		{Name: "adjusted amounts", Match: MatchExact, Identity: IdentityBifurcation},
	}
}
