// =============================================================================
// AGF Roster Generator - Validation Engine
// =============================================================================
//
// This module validates one employee record at a time. It covers:
//   - CPF presence and check-digit validation (optional per run)
//   - Required field checks for nome, rg, matricula, cargo and sindicato
//
// VALIDATION STRATEGY:
//   Checks run in a fixed order so the resulting messages are deterministic:
//   1. CPF presence, then CPF checksum (only when present and enabled)
//   2. Nome presence
//   3. RG presence
//   4. Matricula presence
//   5. Cargo presence
//   6. Sindicato presence
//
// ERROR HANDLING:
//   - Defects are collected, not returned as errors
//   - A record may accumulate several defects
//   - Only the CPF checksum depends on an earlier check (CPF presence)
//
// =============================================================================

package validation

import (
	"errors"

	"github.com/ginjaninja78/agf-roster/internal/transform"
	"github.com/ginjaninja78/agf-roster/internal/types"
)

// =============================================================================
// CPF ERRORS
// =============================================================================

var (
	// ErrEmptyField is returned when a required value is missing or blank.
	ErrEmptyField = errors.New("field is empty")

	// ErrInvalidChecksum is returned when a CPF fails check-digit validation.
	ErrInvalidChecksum = errors.New("invalid CPF checksum")
)

// =============================================================================
// DEFECT MESSAGES
// =============================================================================

// Fixed user-facing defect messages.
const (
	MsgCPFEmpty       = "CPF vazio"
	MsgCPFInvalid     = "CPF inválido"
	MsgNomeEmpty      = "Nome vazio"
	MsgRGEmpty        = "RG vazio"
	MsgMatriculaEmpty = "Matrícula vazia"
	MsgCargoEmpty     = "Cargo vazio"
	MsgSindicatoEmpty = "Sindicato vazio"
)

// requiredFields are the presence checks that follow the CPF check, in order.
var requiredFields = []struct {
	column  string
	message string
}{
	{types.ColumnNome, MsgNomeEmpty},
	{types.ColumnRG, MsgRGEmpty},
	{types.ColumnMatricula, MsgMatriculaEmpty},
	{types.ColumnCargo, MsgCargoEmpty},
	{types.ColumnSindicato, MsgSindicatoEmpty},
}

// =============================================================================
// CPF VALIDATION
// =============================================================================

// ValidateCPF checks a CPF cell.
//
// RETURNS:
//   - nil if the CPF is valid.
//   - ErrEmptyField if the cell is Null or blank.
//   - ErrInvalidChecksum if the value has more than eleven digits, all
//     eleven digits are equal, or either check digit does not match.
//
// ALGORITHM:
//   Non-digits are stripped and the result is left-padded with zeros to
//   eleven digits. Then:
//     d1 = ((sum(digit[i] * (10-i)), i=0..8) * 10 mod 11) mod 10 == digit[9]
//     d2 = ((sum(digit[i] * (11-i)), i=0..9) * 10 mod 11) mod 10 == digit[10]
func ValidateCPF(cell types.Cell) error {
	if !types.IsPresent(cell) {
		return ErrEmptyField
	}

	canonical, ok := transform.CanonicalCPF(cell)
	if !ok {
		return ErrInvalidChecksum
	}

	var digits [transform.CPFLength]int
	for i := range canonical {
		digits[i] = int(canonical[i] - '0')
	}

	if allEqual(digits[:]) {
		return ErrInvalidChecksum
	}

	if checkDigit(digits[:9], 10) != digits[9] {
		return ErrInvalidChecksum
	}
	if checkDigit(digits[:10], 11) != digits[10] {
		return ErrInvalidChecksum
	}

	return nil
}

// checkDigit computes one CPF check digit over digits using weights that
// start at firstWeight and decrease by one.
func checkDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (firstWeight - i)
	}
	return (sum * 10 % 11) % 10
}

func allEqual(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// =============================================================================
// RECORD VALIDATION
// =============================================================================

// ValidateRecord applies all record checks and returns the defects found in
// check order. An empty result means the record is valid.
//
// PARAMETERS:
//   - record: The record to validate, keyed by normalized column name.
//   - checksumEnabled: Whether the CPF check digits are verified.
func ValidateRecord(record types.RawRecord, checksumEnabled bool) []types.Defect {
	var defects []types.Defect

	cpf := record.Get(types.ColumnCPF)
	if !types.IsPresent(cpf) {
		defects = append(defects, emptyField(types.ColumnCPF, MsgCPFEmpty))
	} else if checksumEnabled && ValidateCPF(cpf) != nil {
		defects = append(defects, types.Defect{
			Kind:    types.DefectInvalidChecksum,
			Field:   types.ColumnCPF,
			Message: MsgCPFInvalid,
		})
	}

	for _, f := range requiredFields {
		if !types.IsPresent(record.Get(f.column)) {
			defects = append(defects, emptyField(f.column, f.message))
		}
	}

	return defects
}

func emptyField(column, message string) types.Defect {
	return types.Defect{
		Kind:    types.DefectEmptyField,
		Field:   column,
		Message: message,
	}
}
