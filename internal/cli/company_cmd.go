package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrisyafri/facilops/internal/cli/formatter"
	"github.com/andrisyafri/facilops/internal/importer"
)

func resolveCompanyID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("company ID is required")
	}

	companies, err := app.Companies.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact name match (case-insensitive)
	for _, c := range companies {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}

	// 2. Exact UUID match
	for _, c := range companies {
		if c.ID == input {
			return c.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, c := range companies {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("company not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("company ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newCompanyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Manage companies and their service hierarchy",
	}

	cmd.AddCommand(
		newCompanyAddCmd(app),
		newCompanyListCmd(app),
		newCompanyInspectCmd(app),
		newCompanyRemoveCmd(app),
	)

	return cmd
}

func newCompanyAddCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a company from a YAML definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := importer.LoadCompanyDef(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}
			if errs := importer.ValidateCompanyDef(def); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", e)
				}
				return fmt.Errorf("%s: %d validation error(s)", file, len(errs))
			}

			c, err := importer.ConvertCompanyDef(def)
			if err != nil {
				return err
			}
			if err := app.Companies.Create(context.Background(), c); err != nil {
				return err
			}

			objects := 0
			for _, a := range c.Areas {
				objects += len(a.Objects)
			}
			fmt.Printf("Created company %s — %d areas, %d objects\n", c.Name, len(c.Areas), objects)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Company definition file (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newCompanyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			companies, err := app.Companies.List(context.Background())
			if err != nil {
				return err
			}
			if len(companies) == 0 {
				fmt.Println("No companies found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatCompanyList(companies, time.Now().UTC()))
			return nil
		},
	}
}

func newCompanyInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show company details and service hierarchy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			companyID, err := resolveCompanyID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Companies.GetByID(ctx, companyID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatCompanyDetail(c, time.Now().UTC()))
			return nil
		},
	}
}

func newCompanyRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			companyID, err := resolveCompanyID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Companies.Delete(ctx, companyID); err != nil {
				return err
			}
			fmt.Printf("Removed company %s\n", companyID)
			return nil
		},
	}
}
