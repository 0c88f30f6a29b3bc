// =============================================================================
// AGF Roster Generator - Shared Types
// =============================================================================
//
// This package contains the data model shared by the loaders, the validation
// engine, the converter and the writers. Keeping it in a leaf package avoids
// import cycles between:
//   - xlsxparser / csvparser (produce Tables)
//   - validation            (inspects RawRecords)
//   - converter             (produces OutputRecords and Rejections)
//   - report / sheetwriter  (consume them)
//
// =============================================================================

package types

import (
	"strconv"
	"strings"
)

// =============================================================================
// COLUMN NAMES
// =============================================================================

// Normalized input column names. Headers are trimmed and lower-cased before
// they are compared against these.
const (
	ColumnCPF          = "cpf"
	ColumnNome         = "nome"
	ColumnRG           = "rg"
	ColumnMatricula    = "matricula"
	ColumnCargo        = "cargo"
	ColumnSindicato    = "sindicato"
	ColumnDesligamento = "data de desligamento"
)

// RequiredColumns lists every input column the pipeline needs, in the order
// they are reported when missing.
var RequiredColumns = []string{
	ColumnCPF,
	ColumnNome,
	ColumnRG,
	ColumnMatricula,
	ColumnCargo,
	ColumnSindicato,
	ColumnDesligamento,
}

// HeaderOffset converts a 0-based data row index into the 1-based line number
// shown to users: one for the header row, one for 1-based numbering.
const HeaderOffset = 2

// NormalizeHeader trims and lower-cases a column header.
func NormalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

// =============================================================================
// CELL
// =============================================================================

// Cell is a single spreadsheet value. It is either Null (the cell was missing
// or empty in the source) or carries the cell's text.
//
// The zero value is Null.
type Cell struct {
	text  string
	valid bool
}

// Null returns the missing-value marker.
func Null() Cell {
	return Cell{}
}

// Text returns a cell holding s. An empty string is still a non-null cell;
// loaders decide whether empty source cells become Null.
func Text(s string) Cell {
	return Cell{text: s, valid: true}
}

// IsNull reports whether the cell is the missing-value marker.
func (c Cell) IsNull() bool {
	return !c.valid
}

// String returns the cell text, or "" for Null.
func (c Cell) String() string {
	return c.text
}

// IsPresent reports whether a value counts as filled in: it is not Null and
// its trimmed text is non-empty.
func IsPresent(c Cell) bool {
	return !c.IsNull() && strings.TrimSpace(c.text) != ""
}

// =============================================================================
// TABLE
// =============================================================================

// Table is a loaded spreadsheet: the header row as read and the data rows.
type Table struct {
	// Headers are the column names exactly as they appear in the source.
	Headers []string

	// Rows holds the data rows in source order.
	Rows []Row

	// SourceFile is the path the table was read from, if any.
	SourceFile string
}

// Row is one data row. Cells are positional and line up with Table.Headers;
// a row may be shorter than the header (trailing cells are then Null).
type Row struct {
	// Line is the 1-based line number of the row in the source file.
	// Zero means unknown; the converter then derives it from the row index.
	Line int

	Cells []Cell
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow appends a row whose line number is derived from its position.
func (t *Table) AddRow(cells ...Cell) *Table {
	t.Rows = append(t.Rows, Row{Line: len(t.Rows) + HeaderOffset, Cells: cells})
	return t
}

// Cell returns the cell at column index i, or Null when the row is short.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r.Cells) {
		return Null()
	}
	return r.Cells[i]
}

// =============================================================================
// RECORDS
// =============================================================================

// RawRecord maps a normalized column name to the cell read for it.
type RawRecord map[string]Cell

// Get returns the cell for column, or Null if the record has no such column.
func (r RawRecord) Get(column string) Cell {
	return r[column]
}

// OutputRecord is one line of the AGF layout. Field order is the column order
// of the generated file.
type OutputRecord struct {
	CPF                       string `csv:"CPF"`
	Nome                      string `csv:"NOME"`
	RG                        string `csv:"RG"`
	RE                        string `csv:"RE"`
	Funcao                    string `csv:"FUNCAO"`
	MunicipioPrestacaoServico string `csv:"MUNICIPIO_PRESTACAO_SERVICO"`
	CNPJEmpregador            string `csv:"CNPJ_EMPREGADOR"`
}

// OutputColumns are the AGF column headers in order.
var OutputColumns = []string{
	"CPF",
	"NOME",
	"RG",
	"RE",
	"FUNCAO",
	"MUNICIPIO_PRESTACAO_SERVICO",
	"CNPJ_EMPREGADOR",
}

// Values returns the record's cells in OutputColumns order.
func (o OutputRecord) Values() []string {
	return []string{
		o.CPF,
		o.Nome,
		o.RG,
		o.RE,
		o.Funcao,
		o.MunicipioPrestacaoServico,
		o.CNPJEmpregador,
	}
}

// =============================================================================
// DEFECTS AND REJECTIONS
// =============================================================================

// DefectKind classifies a row-level problem.
type DefectKind int

const (
	// DefectEmptyField means a required field is missing or blank.
	DefectEmptyField DefectKind = iota + 1

	// DefectInvalidChecksum means the CPF failed check-digit validation.
	DefectInvalidChecksum
)

func (k DefectKind) String() string {
	switch k {
	case DefectEmptyField:
		return "EmptyField"
	case DefectInvalidChecksum:
		return "InvalidChecksum"
	default:
		return "Unknown"
	}
}

// Defect is one reason a row was rejected.
type Defect struct {
	Kind DefectKind

	// Field is the normalized column name the defect refers to.
	Field string

	// Message is the fixed user-facing text, e.g. "CPF vazio".
	Message string
}

// MissingNamePlaceholder is shown instead of the employee name when the name
// itself is missing.
const MissingNamePlaceholder = "Nome não informado"

// Rejection records a row excluded by validation.
type Rejection struct {
	// Line is the 1-based line number of the row in the input file.
	Line int

	// Name is the employee name, or MissingNamePlaceholder.
	Name string

	// Defects are the problems found, in check order.
	Defects []Defect
}

// String renders the rejection as "Linha 3: Ana Silva - CPF vazio, RG vazio".
func (r Rejection) String() string {
	messages := make([]string, len(r.Defects))
	for i, d := range r.Defects {
		messages[i] = d.Message
	}
	return "Linha " + strconv.Itoa(r.Line) + ": " + r.Name + " - " + strings.Join(messages, ", ")
}
