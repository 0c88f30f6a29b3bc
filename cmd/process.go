// =============================================================================
// AGF Roster Generator - Process Command
// =============================================================================
//
// This file defines the 'process' command, which is the main command for
// generating the AGF roster. It orchestrates the entire pipeline for one
// input file.
//
// COMMAND USAGE:
//   agf process --file <input> [flags]
//
// FLAGS:
//   --file                : Path to the employee spreadsheet (.xlsx or .csv)
//   --output-dir          : Directory for the roster and the logs
//   --cnpj                : Employer CNPJ written on every row
//   --include-terminated  : Keep employees with a termination date
//   --checksum            : Verify CPF check digits (default true)
//   --format              : Output format, "xlsx" or "csv"
//   --dry-run             : Report problems without writing any file
//
// Flags override the configuration file and the environment.
//
// PROCESSING PIPELINE:
//   1. Apply flag overrides to the configuration
//   2. Load the input table
//   3. Exclude terminated employees, validate and project the rows
//   4. Write the roster and the logs
//   5. Print the summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/agf-roster/internal/config"
	"github.com/ginjaninja78/agf-roster/internal/converter"
	"github.com/ginjaninja78/agf-roster/internal/logging"
	"github.com/ginjaninja78/agf-roster/pkg/utils"
)

// processFlags holds the local flags of the process command.
type processFlags struct {
	filePath          string
	outputDir         string
	cnpj              string
	includeTerminated bool
	checksum          bool
	format            string
	dryRun            bool
}

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

func newProcessCmd(a *app) *cobra.Command {
	flags := &processFlags{}

	processCmd := &cobra.Command{
		Use:   "process",
		Short: "Generate the AGF roster from an employee spreadsheet",
		Long: `The process command reads one employee spreadsheet and writes the AGF roster.

Required columns (matched case-insensitively, surrounding spaces ignored):
  cpf, nome, rg, matricula, cargo, sindicato, data de desligamento

Employees with a termination date are excluded unless --include-terminated is
set. Rows with an empty required field or an invalid CPF are listed with their
line number and left out of the roster.

The command fails (exit code 1) when a required column is missing, when the
file cannot be read, or when no row is valid.`,

		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}
			return runProcess(cmd.OutOrStdout(), a, flags)
		},
	}

	// ==========================================================================
	// LOCAL FLAGS
	// ==========================================================================

	processCmd.Flags().StringVarP(&flags.filePath, "file", "f", "", "Path to the employee spreadsheet (.xlsx or .csv)")
	processCmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "Directory for the roster and the logs")
	processCmd.Flags().StringVar(&flags.cnpj, "cnpj", "", "Employer CNPJ written on every row")
	processCmd.Flags().BoolVar(&flags.includeTerminated, "include-terminated", false, "Keep employees with a termination date")
	processCmd.Flags().BoolVar(&flags.checksum, "checksum", true, "Verify CPF check digits")
	processCmd.Flags().StringVar(&flags.format, "format", "", `Output format: "xlsx" or "csv"`)
	processCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Report problems without writing any file")

	_ = processCmd.MarkFlagRequired("file")

	return processCmd
}

// apply copies the flags that were set onto the configuration.
func (f *processFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed

	if changed("output-dir") {
		cfg.Output.Dir = f.outputDir
	}
	if changed("cnpj") {
		cfg.EmployerTaxID = f.cnpj
	}
	if changed("include-terminated") {
		cfg.IncludeTerminated = f.includeTerminated
	}
	if changed("checksum") {
		cfg.ChecksumEnabled = f.checksum
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess converts the input file and prints the summary to out.
func runProcess(out io.Writer, a *app, flags *processFlags) error {
	if !utils.FileExists(flags.filePath) {
		return fmt.Errorf("arquivo não encontrado: %s", flags.filePath)
	}

	fmt.Fprintln(out, "=== AGF Roster Generator ===")
	fmt.Fprintf(out, "Processando: %s\n", flags.filePath)
	if a.cfg.IncludeTerminated {
		fmt.Fprintln(out, "Atenção: funcionários desligados serão incluídos na relação.")
	}

	result := converter.New(flags.filePath, a.cfg, logging.WithRun(a.logger)).
		WithDryRun(flags.dryRun).
		Run()

	// =========================================================================
	// PRINT SUMMARY
	// =========================================================================
	// The summary is shown whenever the rows were processed, including when
	// none of them was valid.

	if result.Outcome != nil {
		fmt.Fprintln(out)
		for _, line := range result.Outcome.Summary.Lines() {
			fmt.Fprintln(out, line)
		}
	}

	if result.Error != nil {
		if converter.IsFatalInput(result.Error) {
			fmt.Fprintln(out, "Nenhum registro foi processado. Corrija a planilha e execute novamente.")
		}
		return result.Error
	}

	fmt.Fprintln(out)
	if flags.dryRun {
		fmt.Fprintln(out, "Simulação: nenhum arquivo foi gravado.")
	} else {
		fmt.Fprintf(out, "Arquivo gerado: %s\n", result.OutputFile)
	}
	if result.ErrorLogFile != "" {
		fmt.Fprintf(out, "Log de erros: %s\n", result.ErrorLogFile)
	}
	if result.SummaryFile != "" {
		fmt.Fprintf(out, "Resumo: %s\n", result.SummaryFile)
	}
	fmt.Fprintf(out, "Tempo de processamento: %s\n", result.ProcessingTime)

	return nil
}
