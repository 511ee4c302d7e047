package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itinerolabs/itinero/internal/cli/formatter"
)

func newTripsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Manage saved trips",
	}

	cmd.AddCommand(
		newTripsListCmd(app),
		newTripsShowCmd(app),
		newTripsBrowseCmd(app),
		newTripsEndCmd(app),
	)

	return cmd
}

func newTripsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.List(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No saved trips.")
				return nil
			}

			headers, rows := formatter.FormatSessionRows(sessions)
			fmt.Print(formatter.RenderBox("Trips", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newTripsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [TRIP_ID]",
		Short: "Show a trip's itinerary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var ref string
			if len(args) == 1 {
				ref = args[0]
			}

			session, err := resolveSession(ctx, app, ref)
			if err != nil {
				return err
			}

			if app.interactive() {
				state := &SharedState{App: app, ActiveSession: session}
				return runTUI(state, newItineraryView(state))
			}

			days, err := app.Sessions.DayPlans(session)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTripHeader(session))
			fmt.Println(formatter.FormatDayPlans(days))
			return nil
		},
	}
}

func newTripsBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse trips interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse needs an interactive terminal")
			}

			sessions, err := app.Sessions.List(context.Background())
			if err != nil {
				return err
			}

			state := &SharedState{App: app}
			return runTUI(state, newSessionListView(state, sessions))
		},
	}
}

func newTripsEndCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "end TRIP_ID",
		Short: "End a trip's planning session",
		Long: "End the planning session for a trip and delete it locally. " +
			"The upstream planner is told to release its session state.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			session, err := resolveSession(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.EndSession(ctx, session.ID); err != nil {
				return err
			}
			fmt.Printf("Ended trip %s (%s)\n", session.DisplayID(), session.Destination)
			return nil
		},
	}
}
