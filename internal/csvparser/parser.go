// =============================================================================
// AGF Roster Generator - CSV Parser Module
// =============================================================================
//
// This module reads employee exports saved as CSV into a types.Table. It
// handles:
//   - Different delimiters (comma, semicolon, pipe, tab)
//   - Legacy encodings (ISO-8859-1, Windows-1252) as well as UTF-8
//   - A UTF-8 byte order mark, as written by Excel's "CSV UTF-8" export
//   - Quoted fields spanning several lines
//
// The first non-blank record is the header row. Field values are kept
// verbatim; empty fields become types.Null().
//
// =============================================================================

package csvparser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/agf-roster/internal/config"
	"github.com/ginjaninja78/agf-roster/internal/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the parsed table.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings from the configuration.
//
// RETURNS:
//   - A pointer to the Table. Row.Line holds the file line on which each
//     record starts.
//   - An error if the file cannot be read, is not valid CSV, or is empty.
func Parse(filePath string, settings config.CSVSettings) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return parse(file, filePath, settings)
}

// parse does the work of Parse on an open reader.
func parse(r io.Reader, source string, settings config.CSVSettings) (*types.Table, error) {
	decoded, err := decode(r, settings.Encoding)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(decoded)
	configureReader(csvReader, settings)

	table := &types.Table{SourceFile: source}
	haveHeader := false

	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		if isRowEmpty(record) {
			continue
		}

		if !haveHeader {
			table.Headers = record
			haveHeader = true
			continue
		}

		line, _ := csvReader.FieldPos(0)
		table.Rows = append(table.Rows, types.Row{
			Line:  line,
			Cells: toCells(record),
		})
	}

	if !haveHeader {
		return nil, fmt.Errorf("CSV file is empty")
	}

	return table, nil
}

// decode wraps r so that it yields UTF-8, dropping a leading byte order mark.
//
// CUSTOMIZATION: Add support for additional encodings here and in the
// validate tag of config.CSVSettings.Encoding.
func decode(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToUpper(strings.TrimSpace(encoding)) {
	case "", "UTF-8", "UTF8":
		br := bufio.NewReader(r)
		if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
			_, _ = br.Discard(len(utf8BOM))
		}
		return br, nil
	case "ISO-8859-1", "LATIN1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	// Handle special cases for common delimiters.
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Rows may be shorter than the header; missing trailing cells read as null.
	reader.FieldsPerRecord = -1

	// Allow lazy quotes (quotes that don't follow strict CSV rules).
	reader.LazyQuotes = true
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func toCells(record []string) []types.Cell {
	cells := make([]types.Cell, len(record))
	for i, value := range record {
		if value == "" {
			cells[i] = types.Null()
		} else {
			cells[i] = types.Text(value)
		}
	}
	return cells
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
