package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/aggregate"
	"github.com/HuyTapCode05/quanlythuchi/internal/format"
	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).TabWidth(lipgloss.NoTabConversion)
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report USER_ID",
		Short: "Print a summary of the finances of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			months, _ := cmd.Flags().GetInt("months")
			top, _ := cmd.Flags().GetInt("top")
			recent, _ := cmd.Flags().GetInt("recent")

			closeDB, err := connectDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			return report(cmd.OutOrStdout(), args[0], time.Now(), months, top, recent)
		},
	}

	cmd.Flags().Int("months", aggregate.DefaultMonths, "number of months to show")
	cmd.Flags().Int("top", 5, "number of categories to show")
	cmd.Flags().Int("recent", 5, "number of recent transactions to show")

	return cmd
}

func report(out io.Writer, userID string, now time.Time, months, top, recent int) error {
	transactions, err := models.List[models.Transaction](userID)
	if err != nil {
		return err
	}

	categories, err := models.ListCategories(userID)
	if err != nil {
		return err
	}

	budgets, err := models.List[models.Budget](userID)
	if err != nil {
		return err
	}

	goals, err := models.List[models.SavingsGoal](userID)
	if err != nil {
		return err
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Icon + " " + c.Name
	}
	name := func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return id
	}

	f := format.Default
	stats := aggregate.Compute(transactions, now, months, 0)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, headerStyle.Render("Tổng quan"))
	fmt.Fprintf(w, "Thu\t%s\n", f.Currency(stats.TotalIncome))
	fmt.Fprintf(w, "Chi\t%s\n", f.Currency(stats.TotalExpense))
	fmt.Fprintf(w, "Số dư\t%s\n\n", f.Currency(stats.Balance))

	fmt.Fprintln(w, headerStyle.Render("Theo tháng"))
	for _, m := range stats.Monthly {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Label, f.Currency(m.Income), f.Currency(m.Expense))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, headerStyle.Render("Chi nhiều nhất"))
	for _, c := range aggregate.TopN(stats.Expenses, top) {
		fmt.Fprintf(w, "%s\t%s\n", name(c.CategoryID), f.Currency(c.Total))
	}

	if len(transactions) > 0 && recent > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Gần đây"))

		// Transactions are listed newest first
		for _, t := range transactions[:min(recent, len(transactions))] {
			amount := f.Currency(t.Amount)
			if t.Type == models.Expense {
				amount = "-" + amount
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", format.Relative(t.CreatedAt, now), name(t.Category), t.Note, amount)
		}
	}

	if len(budgets) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Ngân sách"))
		for _, b := range budgets {
			s := aggregate.BudgetStatus(b, transactions, now)
			line := fmt.Sprintf("%s (%s)\t%s / %s\t%s", name(b.CategoryID), b.Period, f.Currency(s.Spending), f.Currency(b.Amount), f.Percent(s.Percentage))
			if s.IsOverBudget {
				line = overStyle.Render(line)
			}
			fmt.Fprintln(w, line)
		}
	}

	if len(goals) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Tiết kiệm"))
		for _, g := range goals {
			p := aggregate.SavingsProgress(g, now)
			due := ""
			if g.TargetDate != nil {
				due = "đến " + format.DateShort(*g.TargetDate)
			}
			fmt.Fprintf(w, "%s\t%s / %s\t%s\t%s\n", g.Name, f.Currency(g.CurrentAmount), f.Currency(g.TargetAmount), f.Percent(p.Percentage), due)
		}
	}

	return w.Flush()
}
