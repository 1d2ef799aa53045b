package models

// Grid is an ordered sequence of rows. Rows may be ragged; reads past the end
// of a row yield an empty cell.
type Grid [][]Cell

// At returns the cell at (row, col) or an empty cell when out of range.
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g) {
		return EmptyCell()
	}
	return CellAt(g[row], col)
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// CellAt returns row[col] or an empty cell when out of range.
func CellAt(row []Cell, col int) Cell {
	if col < 0 || col >= len(row) {
		return EmptyCell()
	}
	return row[col]
}

// IsBlankRow reports whether every cell of row is blank.
func IsBlankRow(row []Cell) bool {
	for _, c := range row {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

// RowTexts returns the trimmed text of every non-blank cell in row.
func RowTexts(row []Cell) []string {
	var out []string
	for _, c := range row {
		if c.IsBlank() {
			continue
		}
		out = append(out, c.Trimmed())
	}
	return out
}

// Block is a rectangular region of a sheet bounded by blank rows.
type Block struct {
	// StartRow is the zero-based source row of the first block row.
	StartRow int
	// StartCol is the zero-based source column of the first kept column.
	StartCol int
	// EndRow is the zero-based source row of the last block row (inclusive).
	EndRow int
	// EndCol is the zero-based source column of the last kept column (inclusive).
	EndCol int
	// Data holds the block cells with fully blank columns removed.
	Data Grid
}

// RowCount returns the number of rows in the block.
func (b Block) RowCount() int { return len(b.Data) }

// ColumnCount returns the number of kept columns in the block.
func (b Block) ColumnCount() int { return b.Data.Width() }
