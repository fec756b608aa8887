package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrisyafri/facilops/internal/cli/formatter"
	"github.com/andrisyafri/facilops/internal/domain"
)

func resolveEmployeeID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("employee ID is required")
	}

	employees, err := app.Employees.List(ctx)
	if err != nil {
		return "", err
	}

	for _, e := range employees {
		if strings.EqualFold(e.Name, input) {
			return e.ID, nil
		}
	}
	for _, e := range employees {
		if e.ID == input {
			return e.ID, nil
		}
	}

	var matches []string
	for _, e := range employees {
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("employee not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("employee ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newEmployeeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees",
	}

	cmd.AddCommand(
		newEmployeeAddCmd(app),
		newEmployeeListCmd(app),
		newEmployeeRemoveCmd(app),
	)

	return cmd
}

func newEmployeeAddCmd(app *App) *cobra.Command {
	var name, mobile, email, address, role, gender, joining string
	var talents []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := &domain.Employee{
				Name:         name,
				MobileNumber: mobile,
				Email:        email,
				Address:      address,
				Role:         role,
				Gender:       gender,
				JoiningDate:  joining,
				Talents:      talents,
			}
			if err := app.Employees.Create(context.Background(), e); err != nil {
				return err
			}
			fmt.Printf("Created employee %s\n", e.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Employee name")
	cmd.Flags().StringVar(&mobile, "mobile", "", "Mobile number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&address, "address", "", "Home address")
	cmd.Flags().StringVar(&role, "role", "", "Role (e.g. cleaner, supervisor)")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&joining, "joining", "", "Joining date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&talents, "talent", nil, "Talent tag (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newEmployeeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Employees.List(context.Background())
			if err != nil {
				return err
			}
			if len(employees) == 0 {
				fmt.Println("No employees found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatEmployeeList(employees))
			return nil
		},
	}
}

func newEmployeeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			employeeID, err := resolveEmployeeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Employees.Delete(ctx, employeeID); err != nil {
				return err
			}
			fmt.Printf("Removed employee %s\n", employeeID)
			return nil
		},
	}
}
