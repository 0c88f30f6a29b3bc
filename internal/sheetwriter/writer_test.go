package sheetwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/agf-roster/internal/types"
)

var sample = []types.OutputRecord{
	{
		CPF:                       "529.982.247-25",
		Nome:                      "ANA SILVA",
		RG:                        "0123456789",
		RE:                        "0007",
		Funcao:                    "Analista",
		MunicipioPrestacaoServico: "SP",
		CNPJEmpregador:            "65.035.552/0001-80",
	},
	{
		CPF:                       "111.444.777-35",
		Nome:                      "JOÃO CONCEIÇÃO",
		RG:                        "987",
		RE:                        "12",
		Funcao:                    "Gerente; Regional",
		MunicipioPrestacaoServico: "RJ",
		CNPJEmpregador:            "65.035.552/0001-80",
	},
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relacao_nominal_AGF.xlsx")
	require.NoError(t, WriteXLSX(path, "AGF", sample))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"AGF"}, f.GetSheetList())

	rows, err := f.GetRows("AGF")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, types.OutputColumns, rows[0])
	assert.Equal(t, sample[0].Values(), rows[1])
	assert.Equal(t, sample[1].Values(), rows[2])

	// Identifiers are stored as text, not numbers.
	cellType, err := f.GetCellType("AGF", "D2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeNumber, cellType)
}

func TestWriteXLSX_NoRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vazio.xlsx")
	require.NoError(t, WriteXLSX(path, "AGF", nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("AGF")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, types.OutputColumns, rows[0])
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relacao_nominal_AGF.csv")
	require.NoError(t, WriteCSV(path, ";", sample))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := "CPF;NOME;RG;RE;FUNCAO;MUNICIPIO_PRESTACAO_SERVICO;CNPJ_EMPREGADOR\r\n" +
		"529.982.247-25;ANA SILVA;0123456789;0007;Analista;SP;65.035.552/0001-80\r\n" +
		"111.444.777-35;JOÃO CONCEIÇÃO;987;12;\"Gerente; Regional\";RJ;65.035.552/0001-80\r\n"
	assert.Equal(t, expected, string(data))
}

func TestWriteCSV_Errors(t *testing.T) {
	assert.ErrorContains(t, WriteCSV(filepath.Join(t.TempDir(), "x.csv"), "", sample), "invalid CSV delimiter")
	assert.ErrorContains(t, WriteCSV(filepath.Join(t.TempDir(), "missing", "x.csv"), ";", sample), "error creating CSV file")
}

func TestWriteCSV_FailedWriteLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relacao_nominal_AGF.csv")

	// encoding/csv rejects a quote as the field separator.
	err := WriteCSV(path, `"`, sample)
	require.ErrorContains(t, err, "failed to write CSV")
	assert.NoFileExists(t, path)
}
