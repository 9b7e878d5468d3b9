package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Hacnine/BestaTechnology-sub001/internal/cli/formatter"
	"github.com/Hacnine/BestaTechnology-sub001/internal/service"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var merchandiser, export string

	cmd := &cobra.Command{
		Use:   "status [plan-id]",
		Short: "Show the dashboard, or one plan's schedule detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 1 {
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
			}

			views, err := app.Status.Board(ctx, service.BoardFilter{MerchandiserID: merchandiser})
			if err != nil {
				return err
			}

			if export != "" {
				return exportBoard(cmd, export, views)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBoard(views))
			return nil
		},
	}

	cmd.Flags().StringVar(&merchandiser, "merchandiser", "", "Only plans of this merchandiser")
	cmd.Flags().StringVar(&export, "export", "", "Write the board as CSV to a file, or - for stdout")

	return cmd
}

func exportBoard(cmd *cobra.Command, target string, views []service.PlanStatusView) error {
	if target == "-" {
		return formatter.WriteBoardCSV(cmd.OutOrStdout(), views)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := formatter.WriteBoardCSV(f, views); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d plans to %s\n", len(views), target)
	return nil
}
