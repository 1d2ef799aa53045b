package models

// Table is one segmented block as exchanged with the grid loader.
// Coordinates are 1-based source positions.
type Table struct {
	// TableIndex is the 1-based position of the block in its sheet.
	TableIndex int `json:"table_index,omitempty"`
	// StartRow is the source row of the top-left corner.
	StartRow int `json:"start_row"`
	// StartCol is the source column of the top-left corner.
	StartCol int `json:"start_col"`
	// EndRow is the source row of the bottom edge (optional).
	EndRow int `json:"end_row,omitempty"`
	// EndCol is the source column of the right edge (optional).
	EndCol int `json:"end_col,omitempty"`
	// RowCount is the number of rows in Data.
	RowCount int `json:"row_count"`
	// ColumnCount is the number of columns in Data.
	ColumnCount int `json:"column_count"`
	// Data is the block grid.
	Data Grid `json:"data"`
}

// TableFromBlock converts a zero-based Block into a 1-based Table.
func TableFromBlock(index int, b Block) Table {
	return Table{
		TableIndex:  index,
		StartRow:    b.StartRow + 1,
		StartCol:    b.StartCol + 1,
		EndRow:      b.EndRow + 1,
		EndCol:      b.EndCol + 1,
		RowCount:    b.RowCount(),
		ColumnCount: b.ColumnCount(),
		Data:        b.Data,
	}
}

// Block converts the table back into zero-based block coordinates.
func (t Table) Block() Block {
	startRow := max(t.StartRow-1, 0)
	startCol := max(t.StartCol-1, 0)
	endRow := t.EndRow - 1
	if t.EndRow <= 0 {
		endRow = startRow + max(len(t.Data), 1) - 1
	}
	endCol := t.EndCol - 1
	if t.EndCol <= 0 {
		endCol = startCol + max(t.Data.Width(), 1) - 1
	}
	return Block{
		StartRow: startRow,
		StartCol: startCol,
		EndRow:   endRow,
		EndCol:   endCol,
		Data:     t.Data,
	}
}

// Sheet holds the blocks of one worksheet in source order.
type Sheet struct {
	// Name is the worksheet name as it appears in the workbook.
	Name string `json:"-"`
	// TableCount is the number of tables (informational).
	TableCount int `json:"table_count"`
	// Tables lists the blocks top to bottom.
	Tables []Table `json:"tables"`
}

// NewSheet builds a Sheet from segmented blocks.
func NewSheet(name string, blocks []Block) Sheet {
	tables := make([]Table, 0, len(blocks))
	for i, b := range blocks {
		tables = append(tables, TableFromBlock(i+1, b))
	}
	return Sheet{Name: name, TableCount: len(tables), Tables: tables}
}

// sheetBody is the wire shape of a sheet entry.
type sheetBody struct {
	TableCount int     `json:"table_count,omitempty"`
	Tables     []Table `json:"tables"`
}

func (b sheetBody) sheet(name string) Sheet {
	s := Sheet{Name: name, TableCount: b.TableCount, Tables: b.Tables}
	if s.TableCount == 0 {
		s.TableCount = len(b.Tables)
	}
	return s
}
