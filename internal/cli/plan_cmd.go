package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/cli/formatter"
	"github.com/Hacnine/BestaTechnology-sub001/internal/dateutil"
	"github.com/Hacnine/BestaTechnology-sub001/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage time & action plans",
	}

	cmd.AddCommand(
		newPlanAddCmd(app),
		newPlanListCmd(app),
		newPlanInspectCmd(app),
		newPlanSetDateCmd(app),
		newPlanCompleteCmd(app),
		newPlanTrackCmd(app),
	)

	return cmd
}

func newPlanAddCmd(app *App) *cobra.Command {
	var style, merchandiser, sending string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Open a new plan with its three upstream stages",
		RunE: func(cmd *cobra.Command, args []string) error {
			sendingDate, err := dateutil.ParseDate(sending)
			if err != nil {
				return fmt.Errorf("invalid sample sending date %q: %w", sending, err)
			}

			p, err := app.Plans.Create(context.Background(), service.CreatePlanInput{
				StyleName:         style,
				MerchandiserID:    merchandiser,
				SampleSendingDate: sendingDate,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created plan %s for style %q (ship %s)\n",
				p.DisplayID(), p.StyleName, p.SampleSendingDate.Format(dateutil.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "Style name")
	cmd.Flags().StringVar(&merchandiser, "merchandiser", "", "Merchandiser ID")
	cmd.Flags().StringVar(&sending, "sending", "", "Sample sending date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("style")
	_ = cmd.MarkFlagRequired("merchandiser")
	_ = cmd.MarkFlagRequired("sending")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	var merchandiser string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Status.Board(context.Background(), service.BoardFilter{MerchandiserID: merchandiser})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBoard(views))
			return nil
		},
	}

	cmd.Flags().StringVar(&merchandiser, "merchandiser", "", "Only plans of this merchandiser")

	return cmd
}

func newPlanInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <plan-id>",
		Short: "Show one plan with per-stage schedule status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			v, err := app.Status.PlanStatus(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanStatus(v))
			return nil
		},
	}
	return cmd
}

func newPlanSetDateCmd(app *App) *cobra.Command {
	var stage, date string

	cmd := &cobra.Command{
		Use:   "set-date <plan-id>",
		Short: "Set a planned date on a plan or one of its stages",
		Long: `Set a planned date. Stages:
  cad       planned CAD completion
  booking   planned fabric booking completion
  sample    planned sample completion
  receive   fabric receive date
  sending   the plan's sample sending (shipment) date`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := dateutil.ParseDate(date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}

			switch stage {
			case "cad":
				err = app.Plans.SetCadPlanned(ctx, id, d)
			case "booking":
				err = app.Plans.SetBookingPlanned(ctx, id, d)
			case "sample":
				err = app.Plans.SetSamplePlanned(ctx, id, d)
			case "receive":
				err = app.Plans.SetBookingReceiveDate(ctx, id, d)
			case "sending":
				err = app.Plans.SetSampleSendingDate(ctx, id, d)
			default:
				return fmt.Errorf("unknown stage %q (cad, booking, sample, receive, sending)", stage)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s date to %s\n", stage, d.Format(dateutil.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Which date to set (cad, booking, sample, receive, sending)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("stage")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newPlanCompleteCmd(app *App) *cobra.Command {
	var stage, date string

	cmd := &cobra.Command{
		Use:   "complete <plan-id>",
		Short: "Record the actual completion of the CAD or sample stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			actual, err := completionDate(date)
			if err != nil {
				return err
			}

			switch stage {
			case "cad":
				err = app.Plans.CompleteCad(ctx, id, actual)
			case "sample":
				err = app.Plans.CompleteSample(ctx, id, actual)
			default:
				return fmt.Errorf("unknown stage %q (cad, sample; bookings complete via 'tna booking complete')", stage)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s on %s\n", stage, actual.Format(dateutil.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Stage to complete (cad, sample)")
	cmd.Flags().StringVar(&date, "date", "", "Completion date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("stage")

	return cmd
}

func newPlanTrackCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "track <plan-id>",
		Short: "Create the DHL tracking stage (requires all upstream stages complete)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := completionDate(date)
			if err != nil {
				return err
			}

			tr, err := app.Plans.CreateTracking(ctx, id, d)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created DHL tracking on %s\n", tr.Date.Format(dateutil.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Tracking date (YYYY-MM-DD, default today)")

	return cmd
}

// completionDate parses an optional date flag, defaulting to today (UTC).
func completionDate(flag string) (time.Time, error) {
	if flag == "" {
		return dateutil.Normalize(time.Now().UTC()), nil
	}
	d, err := dateutil.ParseDate(flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", flag, err)
	}
	return d, nil
}
