package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itinerolabs/itinero/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the planning service and saved trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			reach := formatter.StyleRed.Render("unreachable")
			if app.Plans.PlannerAvailable(ctx) {
				reach = formatter.StyleGreen.Render("ok")
			}

			sessions, err := app.Sessions.List(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("planning service  %s\n", reach)
			fmt.Printf("saved trips       %d\n", len(sessions))
			return nil
		},
	}
}
