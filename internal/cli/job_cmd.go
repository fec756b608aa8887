package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrisyafri/facilops/internal/cli/formatter"
)

func newJobCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Start and stop work on service objects",
	}

	cmd.AddCommand(
		newJobStartCmd(app),
		newJobStopCmd(app),
		newJobRunningCmd(app),
	)

	return cmd
}

func newJobStartCmd(app *App) *cobra.Command {
	var employee, company, object string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start working on a service object",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			employeeID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}
			companyID, err := resolveCompanyID(ctx, app, company)
			if err != nil {
				return err
			}

			log, err := app.Jobs.StartJob(ctx, employeeID, companyID, object, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Printf("Started job on object %s at %s\n", object, log.StartTime.In(app.location()).Format("15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Employee (name, ID, or ID prefix)")
	cmd.Flags().StringVar(&company, "company", "", "Company (name, ID, or ID prefix)")
	cmd.Flags().StringVar(&object, "object", "", "Service object ID")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("object")

	return cmd
}

func newJobStopCmd(app *App) *cobra.Command {
	var employee, company, object string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop a running job and record the completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			employeeID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}
			companyID, err := resolveCompanyID(ctx, app, company)
			if err != nil {
				return err
			}

			completed, err := app.Jobs.StopJob(ctx, employeeID, companyID, object, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Printf("Completed %s in %s — worked %s\n",
				completed.ObjectName, completed.AreaName, completed.HoursWorked)
			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Employee (name, ID, or ID prefix)")
	cmd.Flags().StringVar(&company, "company", "", "Company (name, ID, or ID prefix)")
	cmd.Flags().StringVar(&object, "object", "", "Service object ID")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("object")

	return cmd
}

func newJobRunningCmd(app *App) *cobra.Command {
	var employee string

	cmd := &cobra.Command{
		Use:   "running",
		Short: "List an employee's running jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			employeeID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}
			logs, err := app.Jobs.ListOpen(ctx, employeeID)
			if err != nil {
				return err
			}
			for _, l := range logs {
				l.StartTime = l.StartTime.In(app.location())
			}
			fmt.Printf("%s", formatter.FormatOpenLogs(logs))
			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Employee (name, ID, or ID prefix)")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}
