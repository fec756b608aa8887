package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrisyafri/facilops/internal/cli/formatter"
)

func newActiveCmd(app *App) *cobra.Command {
	var employee string

	cmd := &cobra.Command{
		Use:   "active",
		Short: "Show the jobs currently due or in progress for an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			employeeID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}

			resp, err := app.ActiveJobs.ActiveJobs(ctx, employeeID, time.Now().UTC())
			if err != nil {
				return err
			}
			resp.CurrentDate = resp.CurrentDate.In(app.location())
			fmt.Printf("%s", formatter.FormatActiveJobs(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Employee (name, ID, or ID prefix)")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}
