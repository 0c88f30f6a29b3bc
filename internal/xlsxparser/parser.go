// =============================================================================
// AGF Roster Generator - XLSX Parser
// =============================================================================
//
// This module reads the employee spreadsheet (.xlsx) into a types.Table.
//
// SHEET LAYOUT:
//   Row 1 holds the column headers. Every following row is one employee.
//
//   | CPF         | Nome      | RG           | Matricula | Cargo    | Sindicato | Data de Desligamento |
//   |-------------|-----------|--------------|-----------|----------|-----------|----------------------|
//   | 52998224725 | Ana Silva | 12.345.678-9 | 0007      | Analista | SP        |                      |
//
// CELL VALUES:
//   Cells are read as their stored value, not their display format, so an
//   identifier kept as text ("0007") keeps its leading zeros. Empty cells
//   become types.Null().
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/agf-roster/internal/types"
)

// Parse reads one worksheet of an XLSX file.
//
// PARAMETERS:
//   - path: The path to the XLSX file.
//   - sheetName: The worksheet to read. Empty selects the first sheet.
//
// RETURNS:
//   - A pointer to the Table. Row.Line holds the spreadsheet row number.
//   - An error if the file cannot be opened, the sheet does not exist, or
//     the sheet has no header row.
func Parse(path, sheetName string) (*types.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return buildTable(path, rows)
}

// buildTable turns raw rows into a Table. The first non-blank row is the
// header; blank rows after it are skipped but still advance the line count.
func buildTable(path string, rows [][]string) (*types.Table, error) {
	headerAt := -1
	for i, row := range rows {
		if !isRowEmpty(row) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, fmt.Errorf("sheet has no header row")
	}

	table := &types.Table{
		Headers:    append([]string(nil), rows[headerAt]...),
		SourceFile: path,
	}

	for i := headerAt + 1; i < len(rows); i++ {
		row := rows[i]
		if isRowEmpty(row) {
			continue
		}

		cells := make([]types.Cell, len(row))
		for j, value := range row {
			if value == "" {
				cells[j] = types.Null()
			} else {
				cells[j] = types.Text(value)
			}
		}

		table.Rows = append(table.Rows, types.Row{
			Line:  i + 1, // spreadsheet rows are 1-based
			Cells: cells,
		})
	}

	return table, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
