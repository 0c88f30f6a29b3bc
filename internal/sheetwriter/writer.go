// =============================================================================
// AGF Roster Generator - Sheet Writer Module
// =============================================================================
//
// This module writes AGF output records to disk.
//
// OUTPUT LAYOUT:
//   One header row with the AGF column names, in this order:
//
//   | CPF | NOME | RG | RE | FUNCAO | MUNICIPIO_PRESTACAO_SERVICO | CNPJ_EMPREGADOR |
//
//   followed by one row per record. Every value is written as text so that
//   identifiers keep their leading zeros.
//
// FORMATS:
//   - XLSX: a single worksheet (default name "AGF")
//   - CSV: semicolon separated with CRLF line endings, the layout Excel
//     expects for Brazilian locales
//
// =============================================================================

package sheetwriter

import (
	"encoding/csv"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/agf-roster/internal/types"
)

// columnWidth is applied to every output column.
const columnWidth = 22

// =============================================================================
// XLSX OUTPUT
// =============================================================================

// WriteXLSX writes the records to a new workbook at path.
//
// PARAMETERS:
//   - path: The destination file. An existing file is overwritten.
//   - sheetName: The name of the single worksheet.
//   - records: The rows to write, in order.
//
// RETURNS:
//   - An error if the workbook cannot be built or saved.
func WriteXLSX(path, sheetName string, records []types.OutputRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(types.OutputColumns))
	for i, col := range types.OutputColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(types.OutputColumns))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", lastCol, columnWidth); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	for i, record := range records {
		row := i + 2
		for j, value := range record.Values() {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// =============================================================================
// CSV OUTPUT
// =============================================================================

// WriteCSV writes the records to a CSV file at path.
//
// PARAMETERS:
//   - path: The destination file. An existing file is overwritten.
//   - delimiter: The field separator; only its first character is used.
//   - records: The rows to write, in order.
//
// RETURNS:
//   - An error if the file cannot be created or written. No partial file is
//     left at path on failure.
func WriteCSV(path, delimiter string, records []types.OutputRecord) (err error) {
	comma, _ := utf8.DecodeRuneInString(delimiter)
	if comma == utf8.RuneError {
		return fmt.Errorf("invalid CSV delimiter %q", delimiter)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file(%s): %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close CSV file: %w", closeErr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	csvWriter := csv.NewWriter(f)
	csvWriter.Comma = comma
	csvWriter.UseCRLF = true

	if err := gocsv.MarshalCSV(&records, csvWriter); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	return nil
}
