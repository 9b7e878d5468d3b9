package cli

import (
	"context"
	"fmt"

	"github.com/Hacnine/BestaTechnology-sub001/internal/cli/formatter"
	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
	"github.com/Hacnine/BestaTechnology-sub001/internal/repository"
	"github.com/Hacnine/BestaTechnology-sub001/internal/service"
	"github.com/spf13/cobra"
)

// newHomeCmd renders the landing view for a role: merchandisers see their
// board, fabric staff the booking pool, everyone else the overview.
func newHomeCmd(app *App) *cobra.Command {
	var role, actor string

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show the default view for a role",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			switch domain.HomeSection(domain.Role(role)) {
			case domain.SectionPlans:
				views, err := app.Status.Board(ctx, service.BoardFilter{MerchandiserID: actor})
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatBoard(views))

			case domain.SectionBookings:
				if actor != "" {
					mine, err := app.Bookings.ListMine(ctx, actor, repository.BookingFilter{})
					if err != nil {
						return err
					}
					fmt.Fprint(out, formatter.FormatBookings("My Bookings", mine))
				}
				free, err := app.Bookings.ListUnclaimed(ctx, repository.BookingFilter{})
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatBookings("Unclaimed Bookings", free))

			default:
				// CAD, sample and management roles all land on the full board.
				views, err := app.Status.Board(ctx, service.BoardFilter{})
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatBoard(views))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role (merchandiser, cad_designer, fabric_staff, sample_staff, management)")
	cmd.Flags().StringVar(&actor, "actor", "", "Acting user ID")

	return cmd
}
