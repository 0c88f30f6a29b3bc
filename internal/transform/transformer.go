// =============================================================================
// AGF Roster Generator - Field Normalizers
// =============================================================================
//
// This module provides the pure functions that turn raw cell values into the
// canonical forms required by the AGF layout.
//
// NORMALIZERS:
//   - FormatCPF     : digits only, zero-padded to 11, grouped as ###.###.###-##
//   - CanonicalCPF  : digits only, zero-padded to 11 (no grouping)
//   - CleanRG       : digits only, no padding
//   - NormalizeName : trimmed and upper-cased (Brazilian Portuguese rules)
//
// None of these functions fail. Missing values become empty strings; the
// validation engine is responsible for deciding whether a value is acceptable.
//
// =============================================================================

package transform

import (
	"strings"
	"unicode"

	"github.com/ginjaninja78/agf-roster/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CPFLength is the number of digits in a canonical CPF.
const CPFLength = 11

// =============================================================================
// CPF
// =============================================================================

// CanonicalCPF returns the digits of a CPF cell left-padded with zeros to
// eleven characters.
//
// RETURNS:
//   - The padded digit string.
//   - false if the cell is Null or holds more than eleven digits.
func CanonicalCPF(cell types.Cell) (string, bool) {
	if cell.IsNull() {
		return "", false
	}

	digits := PadLeft(ExtractDigits(cell.String()), CPFLength, '0')
	if len(digits) != CPFLength {
		return digits, false
	}

	return digits, true
}

// FormatCPF renders a CPF as ###.###.###-##.
//
// EXAMPLE:
//   Input:  "123"
//   Output: "000.000.001-23"
//
// A Null cell yields "". A value with more than eleven digits cannot be
// grouped and is returned as read.
func FormatCPF(cell types.Cell) string {
	if cell.IsNull() {
		return ""
	}

	digits, ok := CanonicalCPF(cell)
	if !ok {
		return cell.String()
	}

	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// =============================================================================
// RG
// =============================================================================

// CleanRG strips every non-digit character from an RG. No padding is applied.
//
// EXAMPLE:
//   Input:  "12.345.678-9"
//   Output: "123456789"
func CleanRG(cell types.Cell) string {
	if cell.IsNull() {
		return ""
	}
	return ExtractDigits(cell.String())
}

// =============================================================================
// NAME
// =============================================================================

// NormalizeName trims surrounding whitespace and upper-cases the name using
// Brazilian Portuguese casing rules.
func NormalizeName(name string) string {
	// A Caser keeps state, so each call gets its own.
	return cases.Upper(language.BrazilianPortuguese).String(strings.TrimSpace(name))
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// ExtractDigits keeps only the ASCII digits of s.
//
// EXAMPLE:
//   Input:  "ABC-123-DEF-456"
//   Output: "123456"
func ExtractDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PadLeft pads a string with a character on the left to reach the target length.
// Strings already at or beyond the target length are returned unchanged.
func PadLeft(s string, length int, padChar rune) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat(string(padChar), length-len(s)) + s
}
