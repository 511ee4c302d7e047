package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/itinerolabs/itinero/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Plans    service.PlanService

	// IsInteractive reports whether stdout is a terminal; TUI surfaces are
	// only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "itinero" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "itinero",
		Short: "Travel itinerary planner",
	}

	root.AddCommand(
		newPlanCmd(app),
		newTripsCmd(app),
		newChatCmd(app),
		newSearchCmd(app),
		newStatusCmd(app),
	)

	return root
}

// runTUI starts a fullscreen program rooted at the given view. The state
// must be the same one the root view was built with.
func runTUI(state *SharedState, root View) error {
	p := tea.NewProgram(
		newAppModel(state, root),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
