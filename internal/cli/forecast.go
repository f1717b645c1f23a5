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

func newForecastCmd() *cobra.Command {
	var (
		in       model.ProjectionInput
		jsonMode bool
	)
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project monthly revenue, expenses and break-even",
		Long: `Project revenue growing at --growth percent per month and expenses
growing at a fixed 5% per month, and report when the initial investment
is recovered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projection, err := analytics.Project(in)
			if err != nil {
				return err
			}
			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), projection)
			}
			printForecast(cmd.OutOrStdout(), projection)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&in.InitialInvestment, "investment", 10000, "Initial investment")
	flags.Float64Var(&in.MonthlyRevenue, "revenue", 2000, "Revenue in the first month")
	flags.Float64Var(&in.MonthlyExpenses, "expenses", 1000, "Expenses in the first month")
	flags.Float64Var(&in.GrowthRate, "growth", 5, "Monthly revenue growth in percent")
	flags.IntVar(&in.Months, "months", 12, "Number of months to project")
	flags.BoolVarP(&jsonMode, "json", "j", false, "Output as JSON")
	return cmd
}

func printForecast(w io.Writer, p *model.Projection) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Month", "Revenue", "Expenses", "Profit", "Cumulative", "Break-even"})
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, rec := range p.Calculations {
		mark := ""
		if rec.BreakEven {
			mark = "yes"
		}
		table.Append([]string{
			strconv.Itoa(rec.Month),
			formatMoney(rec.Revenue),
			formatMoney(rec.Expenses),
			formatMoney(rec.Profit),
			formatMoney(rec.CumulativeProfit),
			mark,
		})
	}
	table.Render()

	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	s := p.Summary
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", bold("Total revenue: "), formatMoney(s.TotalRevenue))
	fmt.Fprintf(w, "%s %s\n", bold("Total expenses:"), formatMoney(s.TotalExpenses))

	profit := formatMoney(s.TotalProfit)
	if s.TotalProfit >= 0 {
		profit = green(profit)
	} else {
		profit = red(profit)
	}
	fmt.Fprintf(w, "%s %s\n", bold("Total profit:  "), profit)

	roi := "n/a (no investment)"
	if s.ROI != nil {
		roi = fmt.Sprintf("%.2f%%", *s.ROI)
	}
	fmt.Fprintf(w, "%s %s\n", bold("ROI:           "), roi)

	if s.BreakEvenMonth != nil {
		fmt.Fprintf(w, "%s %s\n", bold("Break-even:    "), green(fmt.Sprintf("month %d", *s.BreakEvenMonth)))
	} else {
		fmt.Fprintf(w, "%s %s\n", bold("Break-even:    "), red("not within horizon"))
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
