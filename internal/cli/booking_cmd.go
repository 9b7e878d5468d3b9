package cli

import (
	"context"
	"fmt"

	"github.com/Hacnine/BestaTechnology-sub001/internal/cli/formatter"
	"github.com/Hacnine/BestaTechnology-sub001/internal/dateutil"
	"github.com/Hacnine/BestaTechnology-sub001/internal/repository"
	"github.com/spf13/cobra"
)

func newBookingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Work the fabric booking pool",
	}

	cmd.AddCommand(
		newBookingListCmd(app),
		newBookingAcceptCmd(app),
		newBookingCompleteCmd(app),
	)

	return cmd
}

// bookingListFlags holds the shared pool filter flags.
type bookingListFlags struct {
	search   string
	from, to string
	offset   int
	limit    int
}

func bookingFilterFlags(cmd *cobra.Command, f *bookingListFlags) {
	cmd.Flags().StringVar(&f.search, "search", "", "Filter by style name substring")
	cmd.Flags().StringVar(&f.from, "from", "", "Planned date lower bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "Planned date upper bound (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "Skip this many bookings")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "Show at most this many bookings (0 = all)")
}

func buildBookingFilter(f *bookingListFlags) (repository.BookingFilter, error) {
	out := repository.BookingFilter{
		Search: f.search,
		Offset: f.offset,
		Limit:  f.limit,
	}
	if f.from != "" {
		d, err := dateutil.ParseDate(f.from)
		if err != nil {
			return out, fmt.Errorf("invalid --from date %q: %w", f.from, err)
		}
		out.PlannedFrom = &d
	}
	if f.to != "" {
		d, err := dateutil.ParseDate(f.to)
		if err != nil {
			return out, fmt.Errorf("invalid --to date %q: %w", f.to, err)
		}
		out.PlannedTo = &d
	}
	return out, nil
}

func newBookingListCmd(app *App) *cobra.Command {
	var actor string
	var mine bool
	var filterFlags bookingListFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List unclaimed bookings, or your claimed ones with --mine",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			filter, err := buildBookingFilter(&filterFlags)
			if err != nil {
				return err
			}

			if mine {
				if actor == "" {
					return fmt.Errorf("--mine requires --actor")
				}
				bookings, err := app.Bookings.ListMine(ctx, actor, filter)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBookings("My Bookings", bookings))
				return nil
			}

			bookings, err := app.Bookings.ListUnclaimed(ctx, filter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBookings("Unclaimed Bookings", bookings))
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "Acting fabric staff ID")
	cmd.Flags().BoolVar(&mine, "mine", false, "Show my claimed bookings instead of the pool")
	bookingFilterFlags(cmd, &filterFlags)

	return cmd
}

func newBookingAcceptCmd(app *App) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "accept <booking-id>",
		Short: "Claim an unclaimed booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookingID(ctx, app, args[0], actor)
			if err != nil {
				return err
			}

			b, err := app.Bookings.Accept(ctx, id, actor)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Accepted booking for style %q\n", b.StyleName)
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "Acting fabric staff ID")
	_ = cmd.MarkFlagRequired("actor")

	return cmd
}

func newBookingCompleteCmd(app *App) *cobra.Command {
	var actor, date string

	cmd := &cobra.Command{
		Use:   "complete <booking-id>",
		Short: "Record the actual completion of a booking you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookingID(ctx, app, args[0], actor)
			if err != nil {
				return err
			}
			actual, err := completionDate(date)
			if err != nil {
				return err
			}

			if err := app.Bookings.Complete(ctx, id, actor, actual); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Completed booking on %s\n", actual.Format(dateutil.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "Acting fabric staff ID")
	cmd.Flags().StringVar(&date, "date", "", "Completion date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("actor")

	return cmd
}
