// =============================================================================
// AGF Roster Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'process', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (agf)
//   ├── processCmd (agf process)
//   ├── validateCmd (agf validate)
//   └── versionCmd (agf version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose, --log-format)
//   2. Loading the configuration (file, then AGF_* environment variables)
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/agf-roster/internal/config"
	"github.com/ginjaninja78/agf-roster/internal/logging"
)

// defaultConfigFile is read when --config is not given. It need not exist.
const defaultConfigFile = "config.yaml"

// =============================================================================
// GLOBAL STATE
// =============================================================================

// app holds what the root command prepares for its subcommands.
type app struct {
	// cfgFile holds the path to the configuration file (--config).
	cfgFile string

	// verbose enables debug logging (--verbose).
	verbose bool

	// logFormat overrides the configured log format (--log-format).
	logFormat string

	cfg    *config.Config
	logger *slog.Logger
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// NewRootCmd builds the command tree. Each call returns independent commands
// and flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "agf",
		Short: "AGF Roster Generator - Build the AGF employee roster from an HR spreadsheet",
		Long: `AGF Roster Generator reads an employee spreadsheet (.xlsx or .csv),
excludes terminated employees, validates every row and writes the AGF roster
("relação nominal") with the columns:

  CPF, NOME, RG, RE, FUNCAO, MUNICIPIO_PRESTACAO_SERVICO, CNPJ_EMPREGADOR

Rows with problems are listed by line number and left out of the output.

Example Usage:
  agf process --file funcionarios.xlsx              # Generate the roster
  agf process --file funcionarios.xlsx --dry-run    # Only report problems
  agf validate --config ./agf.yaml                  # Check the configuration`,

		// Errors are printed once by Execute.
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},

		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================

	rootCmd.PersistentFlags().StringVar(
		&a.cfgFile,
		"config",
		defaultConfigFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&a.verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.PersistentFlags().StringVar(
		&a.logFormat,
		"log-format",
		"",
		`Log format: "text" or "json" (overrides the configuration)`,
	)

	rootCmd.AddCommand(
		newProcessCmd(a),
		newValidateCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// init loads the configuration and sets up logging.
//
// The default config file is optional; a file named explicitly with --config
// must exist.
func (a *app) init(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(a.cfgFile)
	} else {
		cfg, err = config.LoadOptional(a.cfgFile)
	}
	if err != nil {
		return err
	}

	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.logger = logging.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	return nil
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI. This is called by main.main().
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree with the given arguments and returns the
// process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Erro: %v\n", err)
		return 1
	}
	return 0
}
