package converter

import (
	"errors"
	"strings"
)

// Run-level failures. Row-level problems are never returned as errors; they
// are reported as types.Rejection values.
var (
	// ErrMissingColumns matches a *MissingColumnsError.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrNoValidRecords means every row was excluded.
	ErrNoValidRecords = errors.New("nenhum registro válido para processar")

	// ErrMalformedInput means the input could not be read as a table at all.
	ErrMalformedInput = errors.New("erro ao processar o arquivo: verifique se o arquivo está no formato correto (.xlsx) e não está corrompido")
)

// MissingColumnsError names every required column absent from the input.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "as seguintes colunas estão faltando na planilha: " + strings.Join(e.Columns, ", ")
}

// Is lets errors.Is(err, ErrMissingColumns) match.
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}
