package cli

import (
	"github.com/Hacnine/BestaTechnology-sub001/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans    service.PlanService
	Bookings service.BookingService
	Status   service.StatusService
}

// NewRootCmd creates the top-level "tna" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tna",
		Short: "Garment time & action plan tracker",
	}

	root.AddCommand(
		newPlanCmd(app),
		newBookingCmd(app),
		newStatusCmd(app),
		newHomeCmd(app),
	)

	return root
}
