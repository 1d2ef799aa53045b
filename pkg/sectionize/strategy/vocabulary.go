// Package strategy holds the header detection, title resolution and block
// extraction strategies that turn one block into metric records.
package strategy

import (
	"strings"

	"github.com/VivekMane57/sectionize/pkg/sectionize/parser"
)

// PeriodMarker is a recognized period label and the record key it maps to.
type PeriodMarker struct {
	// Label is matched case-insensitively as a substring of header cells.
	Label string `toml:"label" yaml:"label" json:"label"`
	// Key is the record key; defaults to Slug(Label).
	Key string `toml:"key" yaml:"key" json:"key,omitempty"`
}

// RecordKey returns the key values of this period are stored under.
func (m PeriodMarker) RecordKey() string {
	if m.Key != "" {
		return m.Key
	}
	return Slug(m.Label)
}

// Banner names one part of a bifurcated sheet.
type Banner struct {
	// Marker is searched (case-insensitively) in the leading text of blocks.
	Marker string `toml:"marker" yaml:"marker" json:"marker"`
	// Title is the section title given to the merged part.
	Title string `toml:"title" yaml:"title" json:"title"`
}

// Vocabulary is the marker vocabulary the strategies match against.
type Vocabulary struct {
	PeriodMarkers        []PeriodMarker `toml:"period_markers" yaml:"period_markers"`
	StructuralLabels     []string       `toml:"structural_labels" yaml:"structural_labels"`
	MonthlyMarker        string         `toml:"monthly_marker" yaml:"monthly_marker"`
	ProfileMarker        string         `toml:"profile_marker" yaml:"profile_marker"`
	ProfileTitle         string         `toml:"profile_title" yaml:"profile_title"`
	FilingMarkers        []string       `toml:"filing_markers" yaml:"filing_markers"`
	CatalogEchoes        []string       `toml:"catalog_echoes" yaml:"catalog_echoes"`
	DetailsHeaderMarkers []string       `toml:"details_header_markers" yaml:"details_header_markers"`
	IndexTitle           string         `toml:"index_title" yaml:"index_title"`
	IndexBanners         []string       `toml:"index_banners" yaml:"index_banners"`
	Bifurcation          []Banner       `toml:"bifurcation" yaml:"bifurcation"`
}

// DefaultVocabulary returns the vocabulary of GST analytics workbooks.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		PeriodMarkers: []PeriodMarker{
			{Label: "FY 2023-24", Key: "fy_2023_24"},
			{Label: "FY 2024-25", Key: "fy_2024_25"},
			{Label: "FY 2025-26", Key: "fy_2025_26"},
			{Label: "TTM", Key: "ttm"},
		},
		StructuralLabels:     []string{"PARTICULARS", "MONTH"},
		MonthlyMarker:        "PARTICULARS",
		ProfileMarker:        "profile",
		ProfileTitle:         "Profile",
		FilingMarkers:        []string{"filing details - gstr3b", "filing details - gstr1"},
		CatalogEchoes:        []string{"PRODUCT (HSN)", "PRODUCT HSN"},
		DetailsHeaderMarkers: []string{"GSTN", "GSTIN"},
		IndexTitle:           "Index",
		IndexBanners:         []string{"INDEX", "GST ANALYTICS", "GST DATA TABLES"},
		Bifurcation: []Banner{
			{Marker: "BIFURCATION OF REVENUE", Title: "Bifurcation of Revenue (in INR)"},
			{Marker: "BIFURCATION OF PURCHASE AND EXPENSES", Title: "Bifurcation of Purchase and Expenses (in INR)"},
		},
	}
}

// isStructural reports whether text is exactly one of the structural labels.
func (v Vocabulary) isStructural(text string) bool {
	return equalsAny(text, v.StructuralLabels)
}

// equalsAny compares folded text against each candidate.
func equalsAny(text string, candidates []string) bool {
	folded := parser.Fold(text)
	for _, c := range candidates {
		if folded == parser.Fold(c) {
			return true
		}
	}
	return false
}

// containsAny reports whether folded text contains any folded candidate.
func containsAny(text string, candidates []string) bool {
	folded := parser.Fold(text)
	for _, c := range candidates {
		if c = parser.Fold(c); c != "" && strings.Contains(folded, c) {
			return true
		}
	}
	return false
}
