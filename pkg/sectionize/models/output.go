package models

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Section is a named, ordered collection of metric records recovered from one
// or more consecutive blocks of a sheet.
type Section struct {
	// Sheet is the worksheet the section came from.
	Sheet string `json:"sheet"`
	// SectionTitle is the inferred title.
	SectionTitle string `json:"section_title"`
	// StartRow is the 1-based source row of the originating block.
	StartRow int `json:"start_row"`
	// StartCol is the 1-based source column of the originating block.
	StartCol int `json:"start_col"`
	// RowCount is the row count of the originating block.
	RowCount int `json:"row_count"`
	// ColumnCount is the column count of the originating block.
	ColumnCount int `json:"column_count"`
	// Metrics lists the records in source row order.
	Metrics []*Record `json:"metrics"`
}

// Output is the structured result for one document: sections keyed by a
// document-unique key, in the order they were produced.
type Output struct {
	// DocumentName is the source document name.
	DocumentName string
	tables       *orderedmap.OrderedMap[string, *Section]
}

// NewOutput returns an empty output for the named document.
func NewOutput(documentName string) *Output {
	return &Output{DocumentName: documentName, tables: orderedmap.New[string, *Section]()}
}

// Add stores s under key, replacing any section already stored there.
func (o *Output) Add(key string, s *Section) {
	o.tables.Set(key, s)
}

// Has reports whether key is taken.
func (o *Output) Has(key string) bool {
	_, ok := o.tables.Get(key)
	return ok
}

// Get returns the section stored under key.
func (o *Output) Get(key string) (*Section, bool) {
	return o.tables.Get(key)
}

// Keys returns the section keys in production order.
func (o *Output) Keys() []string {
	out := make([]string, 0, o.tables.Len())
	for pair := o.tables.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Len returns the number of sections.
func (o *Output) Len() int { return o.tables.Len() }

// outputBody is the wire shape of an Output.
type outputBody struct {
	DocumentName string                                   `json:"document_name"`
	Tables       *orderedmap.OrderedMap[string, *Section] `json:"tables"`
}

// MarshalJSON encodes {"document_name": ..., "tables": {...}} with ordered keys.
func (o *Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(outputBody{DocumentName: o.DocumentName, Tables: o.tables})
}

// UnmarshalJSON decodes an output, keeping the order of the tables object.
func (o *Output) UnmarshalJSON(data []byte) error {
	body := outputBody{Tables: orderedmap.New[string, *Section]()}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	o.DocumentName = body.DocumentName
	o.tables = body.Tables
	if o.tables == nil {
		o.tables = orderedmap.New[string, *Section]()
	}
	return nil
}
