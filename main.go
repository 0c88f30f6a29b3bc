// =============================================================================
// AGF Roster Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the AGF Roster Generator CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   agf process --file <input>  - Generate the AGF roster from a spreadsheet
//   agf validate                - Validate the configuration without processing
//   agf version                 - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core logic (types, transform, validation, converter,
//                      report, parsers, sheet writer, config, logging)
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/agf-roster/cmd"
)

func main() {
	cmd.Execute()
}
