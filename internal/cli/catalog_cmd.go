package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrisyafri/facilops/internal/cli/formatter"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage lookup data: frequencies, shifts, talents, property and service types",
	}

	cmd.AddCommand(
		newFrequencyCmd(app),
		newShiftCmd(app),
		newTalentCmd(app),
		newPropertyTypeCmd(app),
		newServiceTypeCmd(app),
	)

	return cmd
}

func newFrequencyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frequency",
		Short: "Manage frequency labels",
	}

	var code string
	add := &cobra.Command{
		Use:   "add LABEL",
		Short: "Add a frequency label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.Catalog.CreateFrequency(context.Background(), args[0], code)
			if err != nil {
				return err
			}
			fmt.Printf("Added frequency %q\n", f.Label)
			return nil
		},
	}
	add.Flags().StringVar(&code, "code", "", "Optional short code")

	list := &cobra.Command{
		Use:   "list",
		Short: "List frequency labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			freqs, err := app.Catalog.ListFrequencies(context.Background())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(freqs))
			for _, f := range freqs {
				rows = append(rows, []string{formatter.TruncID(f.ID), f.Label, f.Code})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "Label", "Code"}, rows))
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func newShiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Manage shifts",
	}

	var start, end string
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Catalog.CreateShift(context.Background(), args[0], start, end)
			if err != nil {
				return err
			}
			fmt.Printf("Added shift %q\n", s.Name)
			return nil
		},
	}
	add.Flags().StringVar(&start, "start", "", "Shift start (HH:MM)")
	add.Flags().StringVar(&end, "end", "", "Shift end (HH:MM)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List shifts",
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts, err := app.Catalog.ListShifts(context.Background())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(shifts))
			for _, s := range shifts {
				rows = append(rows, []string{formatter.TruncID(s.ID), s.Name, s.StartTime, s.EndTime})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "Name", "Start", "End"}, rows))
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func newTalentCmd(app *App) *cobra.Command {
	return newNamedCatalogCmd("talent", "Manage talent tags",
		func(ctx context.Context, name string) (string, error) {
			t, err := app.Catalog.CreateTalent(ctx, name)
			if err != nil {
				return "", err
			}
			return t.Name, nil
		},
		func(ctx context.Context) ([][2]string, error) {
			talents, err := app.Catalog.ListTalents(ctx)
			if err != nil {
				return nil, err
			}
			out := make([][2]string, 0, len(talents))
			for _, t := range talents {
				out = append(out, [2]string{t.ID, t.Name})
			}
			return out, nil
		})
}

func newPropertyTypeCmd(app *App) *cobra.Command {
	return newNamedCatalogCmd("property-type", "Manage property types",
		func(ctx context.Context, name string) (string, error) {
			p, err := app.Catalog.CreatePropertyType(ctx, name)
			if err != nil {
				return "", err
			}
			return p.Name, nil
		},
		func(ctx context.Context) ([][2]string, error) {
			props, err := app.Catalog.ListPropertyTypes(ctx)
			if err != nil {
				return nil, err
			}
			out := make([][2]string, 0, len(props))
			for _, p := range props {
				out = append(out, [2]string{p.ID, p.Name})
			}
			return out, nil
		})
}

func newServiceTypeCmd(app *App) *cobra.Command {
	return newNamedCatalogCmd("service-type", "Manage service types",
		func(ctx context.Context, name string) (string, error) {
			s, err := app.Catalog.CreateServiceType(ctx, name)
			if err != nil {
				return "", err
			}
			return s.Name, nil
		},
		func(ctx context.Context) ([][2]string, error) {
			types, err := app.Catalog.ListServiceTypes(ctx)
			if err != nil {
				return nil, err
			}
			out := make([][2]string, 0, len(types))
			for _, s := range types {
				out = append(out, [2]string{s.ID, s.Name})
			}
			return out, nil
		})
}

func newNamedCatalogCmd(use, short string, create func(context.Context, string) (string, error), list func(context.Context) ([][2]string, error)) *cobra.Command {
	cmd := &cobra.Command{Use: use, Short: short}

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Add a " + use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := create(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Added %s %q\n", use, name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List " + use + "s",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := list(context.Background())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{formatter.TruncID(e[0]), e[1]})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "Name"}, rows))
			return nil
		},
	})

	return cmd
}
