package csvparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/agf-roster/internal/config"
)

func utf8Settings(delimiter string) config.CSVSettings {
	return config.CSVSettings{Delimiter: delimiter, Encoding: "UTF-8"}
}

func TestParse_SemicolonWithBOM(t *testing.T) {
	content := "\xEF\xBB\xBFCPF;Nome;RG;Matricula;Cargo;Sindicato;Data de Desligamento\r\n" +
		"52998224725;Ana Silva;12.345.678-9;0007;Analista;SP;\r\n" +
		"\r\n" +
		";;;;;;\r\n" +
		"111.444.777-35;\"Bia\nSouza\";1;8;Gerente;RJ;2024-01-31\r\n" +
		"123;Caio\r\n"

	path := filepath.Join(t.TempDir(), "funcionarios.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	table, err := Parse(path, utf8Settings(";"))
	require.NoError(t, err)

	assert.Equal(t, "CPF", table.Headers[0], "BOM must be stripped")
	assert.Len(t, table.Headers, 7)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, 2, table.Rows[0].Line)
	assert.Equal(t, "0007", table.Rows[0].Cell(3).String())
	assert.True(t, table.Rows[0].Cell(6).IsNull())

	assert.Equal(t, 5, table.Rows[1].Line)
	assert.Equal(t, "Bia\nSouza", table.Rows[1].Cell(1).String())

	assert.Equal(t, 7, table.Rows[2].Line)
	assert.True(t, table.Rows[2].Cell(4).IsNull(), "short row reads as null")
}

func TestParse_Latin1(t *testing.T) {
	content := "cpf,nome\n52998224725,Jo\xe3o Concei\xe7\xe3o\n"

	table, err := parse(strings.NewReader(content), "mem", config.CSVSettings{Delimiter: ",", Encoding: "ISO-8859-1"})
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "João Conceição", table.Rows[0].Cell(1).String())
}

func TestParse_Windows1252(t *testing.T) {
	content := "cpf|nome\n1|Andr\xe9 \x93Z\x94\n"

	table, err := parse(strings.NewReader(content), "mem", config.CSVSettings{Delimiter: "pipe", Encoding: "Windows-1252"})
	require.NoError(t, err)
	assert.Equal(t, "André “Z”", table.Rows[0].Cell(1).String())
}

func TestParse_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := parse(strings.NewReader("\n\n"), "mem", utf8Settings(","))
		assert.ErrorContains(t, err, "CSV file is empty")
	})

	t.Run("unsupported encoding", func(t *testing.T) {
		_, err := parse(strings.NewReader("a\n"), "mem", config.CSVSettings{Delimiter: ",", Encoding: "EBCDIC"})
		assert.ErrorContains(t, err, "unsupported encoding")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Parse(filepath.Join(t.TempDir(), "nope.csv"), utf8Settings(","))
		assert.ErrorContains(t, err, "failed to open file")
	})
}

func TestConfigureReaderDelimiters(t *testing.T) {
	tests := []struct {
		delimiter string
		content   string
	}{
		{"tab", "a\tb\n1\t2\n"},
		{"\\t", "a\tb\n1\t2\n"},
		{";", "a;b\n1;2\n"},
		{"", "a,b\n1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.delimiter, func(t *testing.T) {
			table, err := parse(strings.NewReader(tt.content), "mem", utf8Settings(tt.delimiter))
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, table.Headers)
			assert.Equal(t, "2", table.Rows[0].Cell(1).String())
		})
	}
}
