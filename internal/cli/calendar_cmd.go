package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrisyafri/facilops/internal/cli/formatter"
)

func newCalendarCmd(app *App) *cobra.Command {
	var employee string
	var year, month int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show an employee's month calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			employeeID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month %d", month)
			}

			resp, err := app.Calendar.MonthCalendar(ctx, employeeID, year, time.Month(month), now)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatCalendar(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Employee (name, ID, or ID prefix)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (defaults to current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (defaults to current)")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}
