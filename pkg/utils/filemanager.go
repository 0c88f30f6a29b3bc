// =============================================================================
// AGF Roster Generator - File Manager Utility
// =============================================================================
//
// This module provides file utilities for the generator, including:
//   - Output file naming
//   - Rejection (error) log generation
//   - Processing summary generation
//
// Logs are plain text files written next to the AGF output. Their names carry
// a timestamp so that successive runs do not overwrite each other.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/agf-roster/internal/types"
)

const (
	separator    = "================================================================================\n"
	subSeparator = "--------------------------------------------------------------------------------\n"
)

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName generates an output file name.
//
// PARAMETERS:
//   - format: The format string for the file name.
//     Placeholders:
//     {uuid}      - A random UUID
//     {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//     {date}      - Current date (YYYYMMDD)
//     {time}      - Current time (HHMMSS)
//     {original}  - Original file name (without extension), via params
//   - params: A map of additional placeholder values.
//   - ext: The extension to ensure, including the dot (e.g. ".xlsx").
//
// RETURNS:
//   - The generated file name.
//
// EXAMPLE:
//
//	format: "relacao_nominal_AGF_{date}"
//	ext:    ".xlsx"
//	output: "relacao_nominal_AGF_20240115.xlsx"
func GenerateOutputFileName(format string, params map[string]string, ext string) string {
	now := time.Now()

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}
	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if ext != "" && !strings.HasSuffix(strings.ToLower(result), strings.ToLower(ext)) {
		result += ext
	}

	return result
}

// =============================================================================
// ERROR LOG GENERATION
// =============================================================================

// ErrorLogEntry represents a single error log entry.
type ErrorLogEntry struct {
	Timestamp    time.Time
	FileName     string
	ErrorType    string
	ErrorMessage string
	RowNumber    int
	FieldName    string
	EmployeeName string
}

// RejectionEntries flattens rejected rows into log entries, one per defect.
func RejectionEntries(fileName string, rejections []types.Rejection, at time.Time) []ErrorLogEntry {
	var entries []ErrorLogEntry
	for _, r := range rejections {
		for _, d := range r.Defects {
			entries = append(entries, ErrorLogEntry{
				Timestamp:    at,
				FileName:     fileName,
				ErrorType:    d.Kind.String(),
				ErrorMessage: d.Message,
				RowNumber:    r.Line,
				FieldName:    d.Field,
				EmployeeName: r.Name,
			})
		}
	}
	return entries
}

// WriteErrorLog writes error entries to a log file.
//
// PARAMETERS:
//   - entries: The error entries to write.
//   - outputDir: The directory to write the log file.
//
// RETURNS:
//   - The path to the error log file, or "" when there are no entries.
//   - An error if writing fails.
func WriteErrorLog(entries []ErrorLogEntry, outputDir string) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	logPath := filepath.Join(outputDir, fmt.Sprintf("error_log_%s.txt", time.Now().Format("20060102_150405")))

	file, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create error log: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	fmt.Fprintf(w, "AGF Roster Generator - Error Log\n"+
		"Generated: %s\n"+
		"Total Errors: %d\n"+
		separator+"\n",
		time.Now().Format("2006-01-02 15:04:05"),
		len(entries))

	for i, entry := range entries {
		fmt.Fprintf(w, "Error #%d\n"+
			"  Timestamp:      %s\n"+
			"  File:           %s\n"+
			"  Error Type:     %s\n"+
			"  Message:        %s\n",
			i+1,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.FileName,
			entry.ErrorType,
			entry.ErrorMessage)

		if entry.RowNumber > 0 {
			fmt.Fprintf(w, "  Row Number:     %d\n", entry.RowNumber)
		}
		if entry.FieldName != "" {
			fmt.Fprintf(w, "  Field:          %s\n", entry.FieldName)
		}
		if entry.EmployeeName != "" {
			fmt.Fprintf(w, "  Employee:       %s\n", entry.EmployeeName)
		}
		fmt.Fprint(w, "\n")
	}

	fmt.Fprint(w, separator+"End of Error Log\n")

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush error log: %w", err)
	}

	return logPath, nil
}

// =============================================================================
// PROCESSING SUMMARY
// =============================================================================

// RunSummary contains summary information about a processing run.
type RunSummary struct {
	StartTime time.Time
	EndTime   time.Time
	InputFile string

	// Lines are the rendered summary lines, as shown on the console.
	Lines []string
}

// WriteSummaryLog writes a processing summary to a log file.
//
// PARAMETERS:
//   - summary: The processing summary.
//   - outputDir: The directory to write the summary file.
//
// RETURNS:
//   - The path to the summary file.
//   - An error if writing fails.
func WriteSummaryLog(summary RunSummary, outputDir string) (string, error) {
	summaryPath := filepath.Join(outputDir, fmt.Sprintf("processing_summary_%s.txt", time.Now().Format("20060102_150405")))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	fmt.Fprintf(w, "AGF Roster Generator - Processing Summary\n"+
		separator+"\n"+
		"Run Information:\n"+
		"  Input File:     %s\n"+
		"  Start Time:     %s\n"+
		"  End Time:       %s\n"+
		"  Duration:       %s\n\n",
		summary.InputFile,
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Sub(summary.StartTime).String())

	fmt.Fprint(w, "Summary:\n"+subSeparator)
	for _, line := range summary.Lines {
		fmt.Fprintln(w, line)
	}
	fmt.Fprint(w, "\n"+separator+"End of Summary\n")

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}

	return summaryPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
