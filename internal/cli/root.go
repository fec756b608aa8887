package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/andrisyafri/facilops/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Companies  service.CompanyService
	Employees  service.EmployeeService
	Catalog    service.CatalogService
	Jobs       service.JobService
	Calendar   service.CalendarService
	ActiveJobs service.ActiveJobsService

	// Loc is the timezone timestamps are displayed in. Scheduling math
	// stays in UTC; only rendering converts.
	Loc *time.Location
}

func (a *App) location() *time.Location {
	if a.Loc != nil {
		return a.Loc
	}
	return time.UTC
}

// NewRootCmd creates the top-level "facilops" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "facilops",
		Short: "Facility service scheduling and job tracking",
	}

	root.AddCommand(
		newCompanyCmd(app),
		newEmployeeCmd(app),
		newCatalogCmd(app),
		newJobCmd(app),
		newCalendarCmd(app),
		newActiveCmd(app),
	)

	return root
}
