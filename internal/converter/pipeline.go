// =============================================================================
// AGF Roster Generator - Table Filter / Transform
// =============================================================================
//
// This module turns a loaded employee table into AGF output records.
//
// PIPELINE:
//   1. Normalize column headers and check that every required column exists
//   2. Exclude terminated employees (unless IncludeTerminated is set)
//   3. Validate each remaining row and set aside the invalid ones
//   4. Project the surviving rows into the AGF layout
//   5. Assemble the processing summary
//
// Transform is pure: it reads the table, never mutates it, and holds no state
// between calls.
//
// =============================================================================

package converter

import (
	"strings"

	"github.com/ginjaninja78/agf-roster/internal/config"
	"github.com/ginjaninja78/agf-roster/internal/report"
	"github.com/ginjaninja78/agf-roster/internal/transform"
	"github.com/ginjaninja78/agf-roster/internal/types"
	"github.com/ginjaninja78/agf-roster/internal/validation"
)

// DefaultEmployerTaxID is the CNPJ stamped on every row when none is configured.
const DefaultEmployerTaxID = config.DefaultEmployerTaxID

// Options controls a single Transform call.
type Options struct {
	// EmployerTaxID is written to CNPJ_EMPREGADOR on every output row.
	EmployerTaxID string

	// IncludeTerminated keeps rows that have a termination date.
	IncludeTerminated bool

	// ChecksumEnabled verifies CPF check digits in addition to presence.
	ChecksumEnabled bool
}

// DefaultOptions returns the options used when the caller configures nothing.
func DefaultOptions() Options {
	return Options{
		EmployerTaxID:     DefaultEmployerTaxID,
		IncludeTerminated: false,
		ChecksumEnabled:   true,
	}
}

// Outcome is the result of transforming one table.
type Outcome struct {
	// Records are the output rows in input order.
	Records []types.OutputRecord

	// Rejections are the rows excluded by validation, in input order.
	Rejections []types.Rejection

	// Summary aggregates counts and rejection messages.
	Summary report.Summary
}

// =============================================================================
// TRANSFORM
// =============================================================================

// Transform filters, validates and projects a table.
//
// PARAMETERS:
//   - table: The loaded input table.
//   - opts: Run configuration.
//
// RETURNS:
//   - The outcome. It is nil only for a *MissingColumnsError.
//   - A *MissingColumnsError when required columns are absent; nothing is
//     processed in that case.
//   - ErrNoValidRecords when no row survives. The outcome is still returned
//     so the caller can show every exclusion.
func Transform(table *types.Table, opts Options) (*Outcome, error) {
	index, err := columnIndex(table.Headers)
	if err != nil {
		return nil, err
	}

	counts := report.Counts{
		Loaded:            len(table.Rows),
		IncludeTerminated: opts.IncludeTerminated,
	}
	outcome := &Outcome{}

	for i, row := range table.Rows {
		record := buildRecord(row, index)

		if !opts.IncludeTerminated && types.IsPresent(record.Get(types.ColumnDesligamento)) {
			counts.Terminated++
			continue
		}

		if defects := validation.ValidateRecord(record, opts.ChecksumEnabled); len(defects) > 0 {
			outcome.Rejections = append(outcome.Rejections, types.Rejection{
				Line:    lineNumber(row, i),
				Name:    displayName(record),
				Defects: defects,
			})
			continue
		}

		outcome.Records = append(outcome.Records, Project(record, opts.EmployerTaxID))
	}

	outcome.Summary = report.Build(counts, outcome.Rejections)

	if len(outcome.Records) == 0 {
		return outcome, ErrNoValidRecords
	}

	return outcome, nil
}

// Project maps a validated record into the AGF layout.
func Project(record types.RawRecord, employerTaxID string) types.OutputRecord {
	return types.OutputRecord{
		CPF:                       transform.FormatCPF(record.Get(types.ColumnCPF)),
		Nome:                      transform.NormalizeName(record.Get(types.ColumnNome).String()),
		RG:                        transform.CleanRG(record.Get(types.ColumnRG)),
		RE:                        record.Get(types.ColumnMatricula).String(),
		Funcao:                    record.Get(types.ColumnCargo).String(),
		MunicipioPrestacaoServico: record.Get(types.ColumnSindicato).String(),
		CNPJEmpregador:            employerTaxID,
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// columnIndex maps each normalized header to its position. When two headers
// normalize to the same name the first one wins.
func columnIndex(headers []string) (map[string]int, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		name := types.NormalizeHeader(h)
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range types.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	return index, nil
}

// buildRecord keys a row's cells by normalized column name.
func buildRecord(row types.Row, index map[string]int) types.RawRecord {
	record := make(types.RawRecord, len(index))
	for name, i := range index {
		record[name] = row.Cell(i)
	}
	return record
}

func lineNumber(row types.Row, i int) int {
	if row.Line > 0 {
		return row.Line
	}
	return i + types.HeaderOffset
}

func displayName(record types.RawRecord) string {
	name := record.Get(types.ColumnNome)
	if !types.IsPresent(name) {
		return types.MissingNamePlaceholder
	}
	return strings.TrimSpace(name.String())
}
