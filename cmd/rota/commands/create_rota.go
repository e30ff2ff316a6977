package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
)

// CreateRotaCmd creates the createRota command
func CreateRotaCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "createRota <week_start>",
		Short: "Create a draft rota for the week, laid out from the shift templates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := args[0]
			app.Logger.Debug("createRota command", zap.String("week_start", weekStart))

			result, err := services.CreateRota(app.Ctx, app.Store, app.Notifier, app.Cfg, app.Logger, app.Actor, weekStart)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Rota created\n\n")
			fmt.Printf("Rota ID:    %s\n", result.Rota.ID)
			fmt.Printf("Site:       %s\n", result.Rota.Site)
			fmt.Printf("Week:       %s to %s\n", result.Rota.WeekStart, result.Rota.WeekEnd)
			fmt.Printf("Status:     %s\n", result.Rota.Status)
			fmt.Printf("Shifts:     %d laid out from templates\n\n", result.ShiftsAdded)

			for _, shift := range result.Rota.SortedShifts() {
				fmt.Printf("  %s  %-8s  needs %d", shift.Date, shift.Slot, shift.Required)
				for _, req := range shift.Requirements {
					fmt.Printf("  [%s x%d]", req.Role, req.Count)
				}
				fmt.Println()
			}
			fmt.Println()
			return nil
		},
	}
}
