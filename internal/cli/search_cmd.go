package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itinerolabs/itinero/internal/cli/formatter"
	"github.com/itinerolabs/itinero/internal/places"
)

func newSearchCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search the destination catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			results := places.Search(query, limit)
			if len(results) == 0 {
				fmt.Printf("No places match %q.\n", query)
				return nil
			}

			headers := []string{"CITY", "AIRPORT", "CODE", "REGION"}
			rows := make([][]string, 0, len(results))
			for _, p := range results {
				rows = append(rows, []string{
					p.City,
					p.Airport,
					formatter.Bold(p.Code),
					formatter.Dim(p.Region),
				})
			}

			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")

	return cmd
}
