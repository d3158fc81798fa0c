package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/leadmapr/leadmapr/internal/entity"
)

const sheetName = "Leads"

// Column widths tuned for the fixed column order: URLs and summaries get
// the wide cells.
var columnWidths = []float64{30, 40, 20, 30, 8, 10, 50, 50}

func generateExcel(leads []entity.Lead) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &columns); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, lead := range leads {
		row := leadRow(lead)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
