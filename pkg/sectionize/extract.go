package sectionize

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"github.com/VivekMane57/sectionize/pkg/sectionize/parser"
)

// Extract loads the workbook or workbook JSON at path and transforms it.
// found is false when the document holds no extractable section; that is a
// normal outcome, not an error.
func Extract(path string, opts Options, log *zap.Logger) (out *models.Output, found bool, err error) {
	doc, err := Load(path, log)
	if err != nil {
		return nil, false, err
	}
	out, found = NewPipeline(opts, log).Transform(doc)
	return out, found, nil
}

// Load reads an .xlsx/.xlsm workbook or a workbook JSON document into its
// segmented form.
func Load(path string, log *zap.Logger) (*models.Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, eris.Wrapf(ErrFileNotFound, "%s", path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return LoadReader(filepath.Base(path), f, log)
}

// LoadReader is Load for an already opened input; name selects the loader
// by extension and names the document.
func LoadReader(name string, r io.Reader, log *zap.Logger) (*models.Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, eris.Wrapf(ErrInvalidFormat, "%s: %v", name, err)
		}
		defer f.Close()
		return readWorkbook(f, name, log), nil
	case ".json":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, eris.Wrapf(err, "read %s", name)
		}
		doc, err := parser.DecodeDocument(data, name)
		if err != nil {
			return nil, eris.Wrapf(ErrInvalidFormat, "%s: %v", name, err)
		}
		return doc, nil
	default:
		return nil, eris.Wrapf(ErrUnsupportedInput, "%s", name)
	}
}

// readWorkbook segments every sheet of f. A sheet that cannot be read is
// logged and kept with no tables.
func readWorkbook(f *excelize.File, name string, log *zap.Logger) *models.Document {
	doc, sheetErrs := readSheets(f, name, f.GetSheetList())
	for _, err := range sheetErrs {
		log.Warn("sheet skipped", zap.String("document", name), zap.String("sheet", err.Sheet), zap.Error(err))
	}
	return doc
}

// readSheets segments the named sheets of f in order. Sheets that fail keep
// their place in the document with no tables.
func readSheets(f *excelize.File, name string, sheets []string) (*models.Document, []*SheetError) {
	doc := &models.Document{DocumentName: name}
	var errs []*SheetError
	for _, sheetName := range sheets {
		grid, err := parser.ExtractGrid(f, sheetName)
		if err != nil {
			errs = append(errs, NewSheetError(name, sheetName, StageReadCells, err))
			grid = nil
		}
		doc.Sheets = append(doc.Sheets, models.NewSheet(sheetName, parser.SplitBlocks(grid)))
	}
	return doc, errs
}
