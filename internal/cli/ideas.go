package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ventureplan/backend/internal/analytics"
	"github.com/ventureplan/backend/internal/model"
)

func newIdeasCmd() *cobra.Command {
	var (
		minInvestment float64
		maxInvestment float64
		category      string
		jsonMode      bool
	)
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Filter the business idea catalog",
		Long: `List catalog ideas whose investment lies within --min and --max
(inclusive) and whose category matches --category exactly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var criteria model.IdeaCriteria
			if cmd.Flags().Changed("min") {
				criteria.MinInvestment = &minInvestment
			}
			if cmd.Flags().Changed("max") {
				criteria.MaxInvestment = &maxInvestment
			}
			criteria.Category = category

			ideas := analytics.FilterIdeas(model.DefaultBusinessIdeas(), criteria)
			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), ideas)
			}
			printIdeas(cmd.OutOrStdout(), ideas)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&minInvestment, "min", 0, "Minimum investment")
	flags.Float64Var(&maxInvestment, "max", 0, "Maximum investment")
	flags.StringVarP(&category, "category", "c", "", "Category to match exactly")
	flags.BoolVarP(&jsonMode, "json", "j", false, "Output as JSON")
	return cmd
}

func printIdeas(w io.Writer, ideas []model.BusinessIdea) {
	if len(ideas) == 0 {
		fmt.Fprintln(w, color.YellowString("No ideas match the given criteria."))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Category", "Investment", "ROI %", "Feasibility"})
	table.SetBorder(false)
	for _, idea := range ideas {
		table.Append([]string{
			strconv.Itoa(idea.ID),
			idea.Title,
			idea.Category,
			formatMoney(idea.Investment),
			strconv.FormatFloat(idea.ProjectedROI, 'f', -1, 64),
			strconv.Itoa(idea.Feasibility),
		})
	}
	table.Render()
	fmt.Fprintf(w, "\n%d of %d ideas\n", len(ideas), len(model.DefaultBusinessIdeas()))
}
