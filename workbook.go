package fundlens

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WorkbookGrid decodes the first sheet of an xlsx workbook into a grid.
//
// Cells come back as the text excelize renders for them, so numeric cells
// keep whatever separators the export used and go through the same lenient
// coercion as CSV cells.
func WorkbookGrid(r io.Reader) (Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheets[0], err)
	}

	grid := make(Grid, 0, len(rows))
	for _, row := range rows {
		cells := make([]Cell, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
