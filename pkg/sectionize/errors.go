package sectionize

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound reports a missing input or config file.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidFormat reports an input that is neither a readable workbook
	// nor workbook JSON.
	ErrInvalidFormat = errors.New("not a workbook or workbook JSON")
	// ErrUnsupportedInput reports an extension no loader or config reader
	// accepts.
	ErrUnsupportedInput = errors.New("unsupported file type")
)

// SheetStage names the loading step a sheet failed in.
type SheetStage string

// StageReadCells is reading the sheet grid from the workbook.
const StageReadCells SheetStage = "read cells"

// SheetError is a failure confined to one sheet of a document. The sheet is
// kept with no tables and the rest of the document still loads.
type SheetError struct {
	Document string
	Sheet    string
	Stage    SheetStage
	Err      error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s: sheet %q: %s: %v", e.Document, e.Sheet, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error { return e.Err }

// NewSheetError returns a SheetError for sheet of document.
func NewSheetError(document, sheet string, stage SheetStage, err error) *SheetError {
	return &SheetError{Document: document, Sheet: sheet, Stage: stage, Err: err}
}
