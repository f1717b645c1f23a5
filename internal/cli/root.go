// Package cli implements the ventureplan command line tool. Commands run the
// analytics engine locally and need no server or database.
package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the ventureplan command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ventureplan",
		Short: "VenturePlan - profit projections and business idea screening",
		Long: `VenturePlan runs the profit projection engine and the idea filter
from the terminal, with the same results the API returns.

Examples:
  ventureplan forecast --investment 10000 --revenue 2000 --expenses 1000 --growth 5 --months 12
  ventureplan forecast --months 24 --json
  ventureplan ideas --max 20000
  ventureplan ideas --category FinTech --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newForecastCmd())
	root.AddCommand(newIdeasCmd())
	return root
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
