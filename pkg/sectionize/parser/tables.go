package parser

import (
	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
)

// SplitBlocks splits a sheet grid into blocks separated by blank rows.
// Columns that are blank across every row of a block are dropped; a block that
// ends up with no columns is discarded. The result is in top-to-bottom order.
func SplitBlocks(grid models.Grid) []models.Block {
	var blocks []models.Block
	start := -1
	for rowIdx, row := range grid {
		if models.IsBlankRow(row) {
			if start >= 0 {
				if b, ok := cutBlock(grid, start, rowIdx-1); ok {
					blocks = append(blocks, b)
				}
				start = -1
			}
			continue
		}
		if start < 0 {
			start = rowIdx
		}
	}
	if start >= 0 {
		if b, ok := cutBlock(grid, start, len(grid)-1); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// cutBlock builds the block for grid rows [startRow, endRow].
func cutBlock(grid models.Grid, startRow, endRow int) (models.Block, bool) {
	cols := usedColumns(grid, startRow, endRow)
	if len(cols) == 0 {
		return models.Block{}, false
	}

	data := make(models.Grid, 0, endRow-startRow+1)
	for rowIdx := startRow; rowIdx <= endRow; rowIdx++ {
		src := grid[rowIdx]
		row := make([]models.Cell, len(cols))
		for i, colIdx := range cols {
			c := models.CellAt(src, colIdx)
			if c.IsBlank() {
				c = models.EmptyCell()
			}
			row[i] = c
		}
		data = append(data, row)
	}

	return models.Block{
		StartRow: startRow,
		StartCol: cols[0],
		EndRow:   endRow,
		EndCol:   cols[len(cols)-1],
		Data:     data,
	}, true
}

// usedColumns lists, in order, the columns holding at least one non-blank cell
// within rows [startRow, endRow].
func usedColumns(grid models.Grid, startRow, endRow int) []int {
	width := 0
	for rowIdx := startRow; rowIdx <= endRow && rowIdx < len(grid); rowIdx++ {
		width = max(width, len(grid[rowIdx]))
	}

	var cols []int
	for colIdx := 0; colIdx < width; colIdx++ {
		for rowIdx := startRow; rowIdx <= endRow && rowIdx < len(grid); rowIdx++ {
			if !models.CellAt(grid[rowIdx], colIdx).IsBlank() {
				cols = append(cols, colIdx)
				break
			}
		}
	}
	return cols
}
