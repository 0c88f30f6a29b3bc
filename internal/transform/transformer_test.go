package transform

import (
	"testing"

	"github.com/ginjaninja78/agf-roster/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestFormatCPF(t *testing.T) {
	tests := []struct {
		name string
		in   types.Cell
		want string
	}{
		{"short value is zero padded", types.Text("123"), "000.000.001-23"},
		{"plain digits", types.Text("52998224725"), "529.982.247-25"},
		{"already formatted", types.Text("529.982.247-25"), "529.982.247-25"},
		{"numeric cell lost leading zeros", types.Text("1234567890"), "012.345.678-90"},
		{"null", types.Null(), ""},
		{"blank text", types.Text(""), "000.000.000-00"},
		{"too many digits kept as read", types.Text("123456789012"), "123456789012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCPF(tt.in))
		})
	}
}

func TestFormatCPF_Idempotent(t *testing.T) {
	for _, raw := range []string{"1", "123", "52998224725", "00000000191", "111.444.777-35"} {
		first := FormatCPF(types.Text(raw))
		second := FormatCPF(types.Text(ExtractDigits(first)))
		assert.Equal(t, first, second, "input %q", raw)
		assert.Equal(t, first, FormatCPF(types.Text(first)), "input %q", raw)
	}
}

func TestCanonicalCPF(t *testing.T) {
	digits, ok := CanonicalCPF(types.Text("1.2"))
	assert.True(t, ok)
	assert.Equal(t, "00000000012", digits)

	_, ok = CanonicalCPF(types.Text("123456789012"))
	assert.False(t, ok)

	_, ok = CanonicalCPF(types.Null())
	assert.False(t, ok)
}

func TestCleanRG(t *testing.T) {
	assert.Equal(t, "123456789", CleanRG(types.Text("12.345.678-9")))
	assert.Equal(t, "0012345", CleanRG(types.Text(" 00.123-45 ")))
	assert.Equal(t, "", CleanRG(types.Text("SSP/SP")))
	assert.Equal(t, "", CleanRG(types.Null()))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "ANA SILVA", NormalizeName("  Ana Silva "))
	assert.Equal(t, "JOÃO CONCEIÇÃO", NormalizeName("João Conceição"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestExtractDigits(t *testing.T) {
	assert.Equal(t, "123456", ExtractDigits("ABC-123-DEF-456"))
	assert.Equal(t, "", ExtractDigits("nan"))
	assert.Equal(t, "3", ExtractDigits("١٢3"))
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "00123", PadLeft("123", 5, '0'))
	assert.Equal(t, "123456", PadLeft("123456", 5, '0'))
	assert.Equal(t, "00000", PadLeft("", 5, '0'))
}
