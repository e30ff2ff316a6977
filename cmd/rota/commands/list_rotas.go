package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/postgres"
)

// WeekLister lists the live rota weeks on record.
type WeekLister interface {
	ListRotaWeeks(ctx context.Context) ([]postgres.RotaWeek, error)
}

// ListRotasCmd creates the listRotas command
func ListRotasCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRotas",
		Short: "List the rota weeks on record, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, err := app.Weeks.ListRotaWeeks(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list rotas: %w", err)
			}

			if len(weeks) == 0 {
				fmt.Println("\nNo rotas on record yet. Create one with createRota <week_start>.")
				fmt.Println()
				return nil
			}

			fmt.Printf("\n%s%-12s %-11s %-9s %s%s\n", colorBold, "Week start", "Status", "Version", "Rota ID", colorReset)
			for _, week := range weeks {
				status := week.Status
				if status == "Published" {
					status = colorGreen + status + colorReset
				}
				fmt.Printf("%-12s %-20s %-9d %s\n", week.WeekStart, status, week.Version, week.ID)
			}
			fmt.Println()
			return nil
		},
	}
}
