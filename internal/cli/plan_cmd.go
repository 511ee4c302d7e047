package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itinerolabs/itinero/internal/cli/formatter"
)

func newPlanCmd(app *App) *cobra.Command {
	draft := newPlanDraft()

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a new trip",
		Long: "Plan a new trip. With no flags this opens the interactive " +
			"setup; pass --to, --start, --end, and --budget to plan directly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			flagged := cmd.Flags().Changed("to") &&
				cmd.Flags().Changed("start") &&
				cmd.Flags().Changed("end") &&
				cmd.Flags().Changed("budget")

			if flagged || !app.interactive() {
				return runPlanDirect(app, draft)
			}
			state := &SharedState{App: app}
			return runTUI(state, newTripSetupView(state, draft))
		},
	}

	cmd.Flags().StringVar(&draft.Origin, "from", "", "Origin city")
	cmd.Flags().StringVar(&draft.Destination, "to", "", "Destination city")
	cmd.Flags().StringVar(&draft.StartDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&draft.EndDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&draft.Budget, "budget", "", "Total budget in USD")
	cmd.Flags().StringVar(&draft.Style, "style", draft.Style, "Travel style (affordable, standard, premium, luxury)")
	cmd.Flags().StringVar(&draft.Preferences, "preferences", "", "Comma-separated interests")
	cmd.Flags().StringVar(&draft.Dislikes, "dislikes", "", "Comma-separated things to avoid")

	return cmd
}

// runPlanDirect performs a non-interactive plan fetch and prints the result.
func runPlanDirect(app *App, draft *planDraft) error {
	req, err := draft.toRequest()
	if err != nil {
		return err
	}

	stop := formatter.StartSpinner("Building your itinerary...")
	session, err := app.Plans.CreatePlan(context.Background(), req)
	stop()
	if err != nil {
		return err
	}

	days, err := app.Sessions.DayPlans(session)
	if err != nil {
		return err
	}

	fmt.Println(formatter.FormatTripHeader(session))
	fmt.Println(formatter.FormatDayPlans(days))
	fmt.Printf("Saved as trip %s. Run \"itinero chat %s\" to refine it.\n",
		session.DisplayID(), session.DisplayID())
	return nil
}
