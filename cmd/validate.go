// =============================================================================
// AGF Roster Generator - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which loads the configuration
// (file, environment and defaults) and reports the effective values without
// processing any file.
//
// COMMAND USAGE:
//   agf validate [--config path]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration without processing",
		Long: `Load the configuration file, apply AGF_* environment overrides and check
every value. Exits with code 1 when the configuration is invalid.`,

		// Loading and validation already happened in the root command.
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Configuração válida.")
			fmt.Fprintf(out, "  CNPJ do empregador:     %s\n", cfg.EmployerTaxID)
			fmt.Fprintf(out, "  Incluir desligados:     %t\n", cfg.IncludeTerminated)
			fmt.Fprintf(out, "  Validar dígitos do CPF: %t\n", cfg.ChecksumEnabled)
			fmt.Fprintf(out, "  Diretório de saída:     %s\n", cfg.Output.Dir)
			fmt.Fprintf(out, "  Formato de saída:       %s\n", cfg.Output.Format)
			fmt.Fprintf(out, "  Nível de log:           %s (%s)\n", cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}
}
