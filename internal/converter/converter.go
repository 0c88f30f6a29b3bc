// =============================================================================
// AGF Roster Generator - Converter Module
// =============================================================================
//
// This module orchestrates the processing of a single employee spreadsheet,
// from loading the file to writing the AGF output.
//
// CONVERSION PIPELINE:
//   1. Load the input table (.xlsx via xlsxparser, .csv via csvparser)
//   2. Filter, validate and project the rows (see pipeline.go)
//   3. Write the AGF output file (.xlsx or .csv via sheetwriter)
//   4. Write the rejection log and the processing summary, if enabled
//
// A Converter processes exactly one file and is not reused.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/agf-roster/internal/config"
	"github.com/ginjaninja78/agf-roster/internal/csvparser"
	"github.com/ginjaninja78/agf-roster/internal/sheetwriter"
	"github.com/ginjaninja78/agf-roster/internal/types"
	"github.com/ginjaninja78/agf-roster/internal/xlsxparser"
	"github.com/ginjaninja78/agf-roster/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFile is the path to the generated AGF file.
	// This is empty if processing failed or was a dry run.
	OutputFile string

	// ErrorLogFile is the path to the rejection log, if one was written.
	ErrorLogFile string

	// SummaryFile is the path to the summary log, if one was written.
	SummaryFile string

	// Success indicates whether an output file was produced (or would have
	// been, for a dry run).
	Success bool

	// Error contains the fatal error, if any.
	Error error

	// Outcome holds the records, rejections and summary. It is set whenever
	// the table was processed, including when Error is ErrNoValidRecords.
	Outcome *Outcome

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the conversion of a single employee file.
type Converter struct {
	// inputPath is the path to the input spreadsheet.
	inputPath string

	// cfg is the application configuration.
	cfg *config.Config

	// dryRun skips writing any file.
	dryRun bool

	logger *slog.Logger
}

// New creates a new Converter instance.
//
// PARAMETERS:
//   - inputPath: The path to the input .xlsx or .csv file.
//   - cfg: The application configuration.
//   - logger: Destination for progress logs. nil uses slog.Default().
func New(inputPath string, cfg *config.Config, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		inputPath: inputPath,
		cfg:       cfg,
		logger:    logger.With("file", filepath.Base(inputPath)),
	}
}

// WithDryRun makes Run process the file without writing anything.
func (c *Converter) WithDryRun(dryRun bool) *Converter {
	c.dryRun = dryRun
	return c
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline for the file.
func (c *Converter) Run() (result Result) {
	startTime := time.Now()
	result.FilePath = c.inputPath
	defer func() { result.ProcessingTime = time.Since(startTime) }()

	// =========================================================================
	// STEP 1: LOAD INPUT
	// =========================================================================

	c.logger.Info("processing file", "path", c.inputPath)

	table, err := c.load()
	if err != nil {
		result.Error = err
		return result
	}

	c.logger.Info("loaded records", "rows", len(table.Rows), "columns", len(table.Headers))

	// =========================================================================
	// STEP 2: FILTER, VALIDATE AND PROJECT
	// =========================================================================

	opts := OptionsFromConfig(c.cfg)
	if opts.IncludeTerminated {
		c.logger.Warn("including terminated employees")
	}

	outcome, err := Transform(table, opts)
	result.Outcome = outcome
	if outcome != nil {
		c.logOutcome(outcome)
		c.writeLogs(&result, startTime)
	}
	if err != nil {
		result.Error = err
		return result
	}

	// =========================================================================
	// STEP 3: WRITE OUTPUT
	// =========================================================================

	if c.dryRun {
		c.logger.Info("dry run, output not written", "records", len(outcome.Records))
		result.Success = true
		return result
	}

	outputPath, err := c.writeOutput(outcome.Records)
	if err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}

	result.OutputFile = outputPath
	result.Success = true
	c.logger.Info("wrote output", "path", outputPath, "records", len(outcome.Records))

	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// load reads the input table, choosing the parser by file extension.
//
// Any parse failure is reported as ErrMalformedInput; a file that does not
// exist is reported as is.
func (c *Converter) load() (*types.Table, error) {
	if _, err := os.Stat(c.inputPath); err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	var (
		table *types.Table
		err   error
	)
	switch strings.ToLower(filepath.Ext(c.inputPath)) {
	case ".csv", ".txt":
		table, err = csvparser.Parse(c.inputPath, c.cfg.Input.CSV)
	default:
		table, err = xlsxparser.Parse(c.inputPath, c.cfg.Input.SheetName)
	}
	if err != nil {
		c.logger.Error("failed to parse input", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return table, nil
}

// logOutcome reports exclusions the same way the summary does.
func (c *Converter) logOutcome(outcome *Outcome) {
	s := outcome.Summary
	if s.ExcludedTerminated > 0 {
		c.logger.Warn("excluded terminated employees", "count", s.ExcludedTerminated)
	}
	for _, r := range outcome.Rejections {
		c.logger.Warn("rejected row", "line", r.Line, "name", r.Name, "reasons", r.String())
	}
	c.logger.Info("validation complete",
		"loaded", s.TotalLoaded,
		"terminated", s.ExcludedTerminated,
		"invalid", s.ExcludedInvalid,
		"valid", s.FinalValid,
	)
}

// writeOutput writes the AGF records to the output directory.
//
// FILE NAMING:
//   The output file is named according to Output.FileNameFormat. Placeholders
//   are replaced by utils.GenerateOutputFileName ({uuid}, {timestamp}, {date},
//   {time}, {original}).
func (c *Converter) writeOutput(records []types.OutputRecord) (string, error) {
	out := c.cfg.Output

	if err := os.MkdirAll(out.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	original := strings.TrimSuffix(filepath.Base(c.inputPath), filepath.Ext(c.inputPath))
	fileName := utils.GenerateOutputFileName(out.FileNameFormat, map[string]string{"original": original}, "."+out.Format)
	outputPath := filepath.Join(out.Dir, fileName)

	var err error
	switch out.Format {
	case config.FormatCSV:
		err = sheetwriter.WriteCSV(outputPath, out.CSVDelimiter, records)
	default:
		err = sheetwriter.WriteXLSX(outputPath, out.SheetName, records)
	}
	if err != nil {
		return "", err
	}

	return outputPath, nil
}

// writeLogs writes the rejection log and the summary file when enabled.
// Failures are logged but never fail the run.
func (c *Converter) writeLogs(result *Result, startTime time.Time) {
	if c.dryRun {
		return
	}
	out := c.cfg.Output
	outcome := result.Outcome

	if err := os.MkdirAll(out.Dir, 0755); err != nil {
		c.logger.Warn("failed to create output directory for logs", "error", err)
		return
	}

	if out.WriteErrorLog && len(outcome.Rejections) > 0 {
		entries := utils.RejectionEntries(filepath.Base(c.inputPath), outcome.Rejections, time.Now())
		path, err := utils.WriteErrorLog(entries, out.Dir)
		if err != nil {
			c.logger.Warn("failed to write error log", "error", err)
		} else {
			result.ErrorLogFile = path
		}
	}

	if out.WriteSummaryLog {
		path, err := utils.WriteSummaryLog(utils.RunSummary{
			StartTime: startTime,
			EndTime:   time.Now(),
			InputFile: c.inputPath,
			Lines:     outcome.Summary.Lines(),
		}, out.Dir)
		if err != nil {
			c.logger.Warn("failed to write summary log", "error", err)
		} else {
			result.SummaryFile = path
		}
	}
}

// OptionsFromConfig extracts the pipeline options from the configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		EmployerTaxID:     cfg.EmployerTaxID,
		IncludeTerminated: cfg.IncludeTerminated,
		ChecksumEnabled:   cfg.ChecksumEnabled,
	}
}

// IsFatalInput reports whether err means the input itself was unusable
// (missing columns or unreadable file), as opposed to all rows being invalid.
func IsFatalInput(err error) bool {
	return errors.Is(err, ErrMissingColumns) || errors.Is(err, ErrMalformedInput)
}
