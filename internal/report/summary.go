// =============================================================================
// AGF Roster Generator - Report Assembler
// =============================================================================
//
// This module aggregates the counts and per-row rejections produced by the
// converter into a ProcessingSummary for presentation. It applies no business
// rules of its own.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/ginjaninja78/agf-roster/internal/types"
)

// Counts are the raw tallies gathered while a table is processed.
type Counts struct {
	// Loaded is the number of data rows read from the input.
	Loaded int

	// Terminated is the number of rows excluded for having a termination date.
	Terminated int

	// IncludeTerminated records whether termination filtering was disabled.
	IncludeTerminated bool
}

// Summary describes one processing run.
type Summary struct {
	TotalLoaded        int
	ExcludedTerminated int
	ExcludedInvalid    int
	FinalValid         int

	// IncludeTerminated is true when terminated employees were kept.
	IncludeTerminated bool

	// Problems are the rejection messages in input order.
	Problems []string
}

// Build assembles a Summary from the run counts and the rejected rows.
// The final valid count is whatever is left after both exclusions.
func Build(counts Counts, rejections []types.Rejection) Summary {
	problems := make([]string, len(rejections))
	for i, r := range rejections {
		problems[i] = r.String()
	}

	return Summary{
		TotalLoaded:        counts.Loaded,
		ExcludedTerminated: counts.Terminated,
		ExcludedInvalid:    len(rejections),
		FinalValid:         counts.Loaded - counts.Terminated - len(rejections),
		IncludeTerminated:  counts.IncludeTerminated,
		Problems:           problems,
	}
}

// Excluded returns the total number of rows left out of the output.
func (s Summary) Excluded() int {
	return s.TotalLoaded - s.FinalValid
}

// Lines renders the summary as user-facing text, one entry per line.
func (s Summary) Lines() []string {
	lines := []string{
		fmt.Sprintf("Total de registros carregados: %d", s.TotalLoaded),
	}

	if s.IncludeTerminated {
		lines = append(lines, "Incluindo todos os funcionários (ativos e desligados)")
	} else if s.ExcludedTerminated > 0 {
		lines = append(lines, fmt.Sprintf("%d funcionário(s) desligado(s) foram excluídos", s.ExcludedTerminated))
	}

	if s.ExcludedInvalid > 0 {
		lines = append(lines, fmt.Sprintf("%d registro(s) com problemas foram identificados:", s.ExcludedInvalid))
		for _, p := range s.Problems {
			lines = append(lines, "  - "+p)
		}
	}

	lines = append(lines,
		fmt.Sprintf("Registros Carregados: %d", s.TotalLoaded),
		fmt.Sprintf("Registros Excluídos: %d", s.Excluded()),
		fmt.Sprintf("Registros Válidos: %d", s.FinalValid),
	)

	return lines
}
