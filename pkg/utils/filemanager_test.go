package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/agf-roster/internal/types"
)

func TestGenerateOutputFileName(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		params  map[string]string
		ext     string
		pattern string
	}{
		{"plain", "relacao_nominal_AGF", nil, ".xlsx", `^relacao_nominal_AGF\.xlsx$`},
		{"extension kept", "saida.CSV", nil, ".csv", `^saida\.CSV$`},
		{"date", "agf_{date}", nil, ".csv", `^agf_\d{8}\.csv$`},
		{"timestamp", "agf_{timestamp}", nil, ".xlsx", `^agf_\d{8}_\d{6}\.xlsx$`},
		{"uuid", "{uuid}", nil, ".xlsx", `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.xlsx$`},
		{"original", "{original}_AGF", map[string]string{"original": "funcionarios"}, ".xlsx", `^funcionarios_AGF\.xlsx$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateOutputFileName(tt.format, tt.params, tt.ext)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), got)
		})
	}
}

func TestRejectionEntries(t *testing.T) {
	at := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	rejections := []types.Rejection{
		{
			Line: 3,
			Name: "Bruno",
			Defects: []types.Defect{
				{Kind: types.DefectInvalidChecksum, Field: types.ColumnCPF, Message: "CPF inválido"},
				{Kind: types.DefectEmptyField, Field: types.ColumnRG, Message: "RG vazio"},
			},
		},
		{
			Line:    7,
			Name:    types.MissingNamePlaceholder,
			Defects: []types.Defect{{Kind: types.DefectEmptyField, Field: types.ColumnNome, Message: "Nome vazio"}},
		},
	}

	entries := RejectionEntries("funcionarios.xlsx", rejections, at)
	require.Len(t, entries, 3)
	assert.Equal(t, ErrorLogEntry{
		Timestamp:    at,
		FileName:     "funcionarios.xlsx",
		ErrorType:    "InvalidChecksum",
		ErrorMessage: "CPF inválido",
		RowNumber:    3,
		FieldName:    types.ColumnCPF,
		EmployeeName: "Bruno",
	}, entries[0])
	assert.Equal(t, "RG vazio", entries[1].ErrorMessage)
	assert.Equal(t, 7, entries[2].RowNumber)
	assert.Equal(t, types.MissingNamePlaceholder, entries[2].EmployeeName)
}

func TestWriteErrorLog(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteErrorLog(nil, dir)
	require.NoError(t, err)
	assert.Empty(t, path)

	entries := []ErrorLogEntry{{
		Timestamp:    time.Now(),
		FileName:     "funcionarios.xlsx",
		ErrorType:    "EmptyField",
		ErrorMessage: "RG vazio",
		RowNumber:    4,
		FieldName:    types.ColumnRG,
		EmployeeName: "Ana",
	}}

	path, err = WriteErrorLog(entries, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Regexp(t, `error_log_\d{8}_\d{6}\.txt$`, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Total Errors: 1")
	assert.Contains(t, content, "Message:        RG vazio")
	assert.Contains(t, content, "Row Number:     4")
	assert.Contains(t, content, "Employee:       Ana")
	assert.Contains(t, content, "End of Error Log")
}

func TestWriteSummaryLog(t *testing.T) {
	dir := t.TempDir()
	start := time.Now().Add(-2 * time.Second)

	path, err := WriteSummaryLog(RunSummary{
		StartTime: start,
		EndTime:   start.Add(1500 * time.Millisecond),
		InputFile: "funcionarios.xlsx",
		Lines:     []string{"Total de registros carregados: 3", "Registros Válidos: 2"},
	}, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Input File:     funcionarios.xlsx")
	assert.Contains(t, content, "Duration:       1.5s")
	assert.Contains(t, content, "Total de registros carregados: 3\nRegistros Válidos: 2\n")
}

func TestWriteSummaryLog_MissingDir(t *testing.T) {
	_, err := WriteSummaryLog(RunSummary{}, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "failed to create summary file")
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, nil, 0644))
	assert.True(t, FileExists(path))
}
