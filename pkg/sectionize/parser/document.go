package parser

import (
	"encoding/json"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/rotisserie/eris"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
)

// DecodeDocument decodes a workbook JSON document. Hand-edited files with
// trailing commas, comments or truncated brackets are repaired before giving up.
// fallbackName is used when the document carries no name.
func DecodeDocument(data []byte, fallbackName string) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		repaired, rerr := jsonrepair.RepairJSON(string(data))
		if rerr != nil {
			return nil, eris.Wrap(err, "decode workbook json")
		}
		doc = models.Document{}
		if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
			return nil, eris.Wrap(err, "decode repaired workbook json")
		}
	}
	if doc.DocumentName == "" {
		doc.DocumentName = fallbackName
	}
	return &doc, nil
}
