// Package statsexport renders usage statistics as an XLSX workbook for the
// admin export endpoint.
package statsexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheetName = "AI Usage"

// columns defines the header row.
var columns = []string{"Date", "Prompt Type", "Invocations"}

// UsageRow is one daily aggregate for one prompt type.
type UsageRow struct {
	Day        time.Time `json:"day"`
	PromptType string    `json:"prompt_type"`
	Count      int       `json:"count"`
}

// WriteUsageWorkbook renders rows as a single-sheet workbook, one row per
// day/prompt-type aggregate in the order given, with a totals row at the end.
func WriteUsageWorkbook(rows []UsageRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("naming header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	total := 0
	for i, row := range rows {
		rowNum := i + 2
		if err := setRow(f, rowNum, row.Day.Format("2006-01-02"), row.PromptType, row.Count); err != nil {
			return nil, err
		}
		total += row.Count
	}

	if err := setRow(f, len(rows)+2, "Total", "", total); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheetName, "A", "B", 18); err != nil {
		return nil, fmt.Errorf("setting column width: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, rowNum int, date, promptType string, count int) error {
	values := []any{date, promptType, count}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("naming cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("writing row %d: %w", rowNum, err)
		}
	}
	return nil
}

// BuildFilename returns the Content-Disposition filename for an export.
// Format: ai_usage_{YYYY-MM-DD}.xlsx
func BuildFilename() string {
	return fmt.Sprintf("ai_usage_%s.xlsx", time.Now().Format("2006-01-02"))
}
