package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itinerolabs/itinero/internal/domain"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [TRIP_ID]",
		Short: "Refine a trip in conversation",
		Long: "Open a chat with the planner for the given trip. Without an " +
			"argument the most recently updated trip is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("chat needs an interactive terminal")
			}

			ctx := context.Background()
			var ref string
			if len(args) == 1 {
				ref = args[0]
			}

			session, err := resolveSession(ctx, app, ref)
			if err != nil {
				return err
			}

			state := &SharedState{App: app, ActiveSession: session}
			return runTUI(state, newChatView(state))
		},
	}
}

// resolveSession finds a session by ID or unique ID prefix. An empty ref
// resolves to the most recently updated session.
func resolveSession(ctx context.Context, app *App, ref string) (*domain.Session, error) {
	sessions, err := app.Sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no saved trips; run \"itinero plan\" first")
	}

	if ref == "" {
		return app.Sessions.GetByID(ctx, sessions[0].ID)
	}

	var match *domain.Session
	for _, s := range sessions {
		if !strings.HasPrefix(s.ID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("trip ID %q is ambiguous", ref)
		}
		match = s
	}
	if match == nil {
		return nil, fmt.Errorf("no trip matches %q", ref)
	}
	return app.Sessions.GetByID(ctx, match.ID)
}
