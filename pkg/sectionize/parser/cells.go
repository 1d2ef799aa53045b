// Package parser turns raw sheet contents into normalized grids and blocks.
package parser

import (
	"strconv"
	"strings"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads every row of a sheet as displayed in the workbook.
// Row and column positions are preserved, so grid coordinates match the
// source sheet (zero-based).
func ExtractGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, cellValue := range row {
			cells[colIdx] = parseValue(cellValue)
		}
		grid[rowIdx] = cells
	}
	return grid, nil
}

// parseValue turns a displayed cell value into a Cell. Plain integers and
// decimals become numbers; anything else, including "1,200" or "12%", stays
// text for ToNumber to deal with.
func parseValue(s string) models.Cell {
	if strings.TrimSpace(s) == "" {
		return models.EmptyCell()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.NumberCell(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Classify(f)
	}
	return models.TextCell(s)
}
