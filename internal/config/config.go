// =============================================================================
// AGF Roster Generator - Configuration Module
// =============================================================================
//
// This module loads the application configuration.
//
// LOADING ORDER (later steps win):
//   1. Built-in defaults (Default)
//   2. The YAML configuration file, if one is given
//   3. Environment variables prefixed with AGF_ (e.g. AGF_EMPLOYER_TAX_ID,
//      AGF_OUTPUT_DIR, AGF_INPUT_CSV_ENCODING). Unprefixed names are ignored.
//   4. Command line flags (applied by the cmd package)
//
// The result is validated before it is returned.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "AGF"

// Output formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// DefaultEmployerTaxID is the CNPJ used when none is configured.
const DefaultEmployerTaxID = "65.035.552/0001-80"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// PIPELINE SETTINGS
	// =========================================================================

	// EmployerTaxID is the CNPJ written to CNPJ_EMPREGADOR on every row.
	// Default: "65.035.552/0001-80"
	EmployerTaxID string `yaml:"employer_tax_id" split_words:"true" validate:"required"`

	// IncludeTerminated keeps employees with a termination date.
	// Default: false
	IncludeTerminated bool `yaml:"include_terminated" split_words:"true"`

	// ChecksumEnabled verifies CPF check digits.
	// Default: true
	ChecksumEnabled bool `yaml:"checksum_enabled" split_words:"true"`

	// =========================================================================
	// INPUT / OUTPUT
	// =========================================================================

	Input InputSettings `yaml:"input"`

	Output OutputSettings `yaml:"output"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level" split_words:"true" validate:"oneof=debug info warn error"`

	// LogFormat selects the log handler: "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format" split_words:"true" validate:"oneof=text json"`
}

// InputSettings controls how the employee file is read.
type InputSettings struct {
	// SheetName is the worksheet to read from .xlsx files.
	// Empty means the first sheet.
	SheetName string `yaml:"sheet_name" split_words:"true"`

	// CSV contains settings for .csv input.
	CSV CSVSettings `yaml:"csv"`
}

// CSVSettings contains settings for parsing CSV input.
type CSVSettings struct {
	// Delimiter is the field separator. Common values: ",", ";", "|", "tab".
	// Default: ","
	Delimiter string `yaml:"delimiter" split_words:"true" validate:"required"`

	// Encoding is the character encoding of the file.
	// Valid values: "UTF-8", "ISO-8859-1", "Windows-1252"
	// Default: "UTF-8"
	Encoding string `yaml:"encoding" split_words:"true" validate:"oneof=UTF-8 ISO-8859-1 Windows-1252"`
}

// OutputSettings controls the generated AGF file.
type OutputSettings struct {
	// Dir is the directory where the AGF file and logs are written.
	// Default: "./output"
	Dir string `yaml:"dir" split_words:"true" validate:"required"`

	// FileNameFormat defines the output file name (without extension).
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYYMMDD)
	//   {time}      - Current time (HHMMSS)
	//   {original}  - Input file name without extension
	// Default: "relacao_nominal_AGF"
	FileNameFormat string `yaml:"file_name_format" split_words:"true" validate:"required"`

	// Format is "xlsx" or "csv".
	// Default: "xlsx"
	Format string `yaml:"format" split_words:"true" validate:"oneof=xlsx csv"`

	// SheetName is the worksheet name in .xlsx output. Excel limits sheet
	// names to 31 characters.
	// Default: "AGF"
	SheetName string `yaml:"sheet_name" split_words:"true" validate:"required,max=31"`

	// CSVDelimiter is the separator for .csv output.
	// Default: ";"
	CSVDelimiter string `yaml:"csv_delimiter" split_words:"true" validate:"required"`

	// WriteErrorLog writes a text file listing every rejected row.
	// Default: true
	WriteErrorLog bool `yaml:"write_error_log" split_words:"true"`

	// WriteSummaryLog writes a text file with the processing summary.
	// Default: false
	WriteSummaryLog bool `yaml:"write_summary_log" split_words:"true"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		EmployerTaxID:     DefaultEmployerTaxID,
		IncludeTerminated: false,
		ChecksumEnabled:   true,
		Input: InputSettings{
			CSV: CSVSettings{
				Delimiter: ",",
				Encoding:  "UTF-8",
			},
		},
		Output: OutputSettings{
			Dir:            "./output",
			FileNameFormat: "relacao_nominal_AGF",
			Format:         FormatXLSX,
			SheetName:      "AGF",
			CSVDelimiter:   ";",
			WriteErrorLog:  true,
		},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds the configuration from defaults, the YAML file at configPath
// and the environment.
//
// PARAMETERS:
//   - configPath: The path to the YAML file. Empty skips the file.
//
// RETURNS:
//   - A pointer to the validated Config.
//   - An error if the file cannot be read or parsed, or validation fails.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Unmarshal over the defaults so absent keys keep their default value.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadOptional is Load, except that a missing file at configPath falls back
// to defaults plus environment. It is used for the default config location,
// which need not exist.
func LoadOptional(configPath string) (*Config, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			configPath = ""
		}
	}
	return Load(configPath)
}

// validate is shared; validator.Validate caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]error, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return errors.Join(msgs...)
		}
		return err
	}
	return nil
}
