package models

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Document is a loaded workbook: a name plus its sheets in workbook order.
type Document struct {
	// DocumentName is the source file name (no path).
	DocumentName string
	// Sheets lists the worksheets in workbook order.
	Sheets []Sheet
}

// documentBody is the wire shape of a Document.
// file_name is accepted as an alias of document_name on input.
type documentBody struct {
	DocumentName string                                    `json:"document_name"`
	FileName     string                                    `json:"file_name,omitempty"`
	Sheets       *orderedmap.OrderedMap[string, sheetBody] `json:"sheets"`
}

// UnmarshalJSON decodes a document, preserving the order of the sheets object.
func (d *Document) UnmarshalJSON(data []byte) error {
	var body documentBody
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	d.DocumentName = body.DocumentName
	if d.DocumentName == "" {
		d.DocumentName = body.FileName
	}
	d.Sheets = nil
	if body.Sheets == nil {
		return nil
	}
	for pair := body.Sheets.Oldest(); pair != nil; pair = pair.Next() {
		d.Sheets = append(d.Sheets, pair.Value.sheet(pair.Key))
	}
	return nil
}

// MarshalJSON encodes the document with sheets in workbook order.
func (d Document) MarshalJSON() ([]byte, error) {
	sheets := orderedmap.New[string, sheetBody](orderedmap.WithCapacity[string, sheetBody](len(d.Sheets)))
	for _, s := range d.Sheets {
		sheets.Set(s.Name, sheetBody{TableCount: len(s.Tables), Tables: s.Tables})
	}
	return json.Marshal(documentBody{DocumentName: d.DocumentName, Sheets: sheets})
}
