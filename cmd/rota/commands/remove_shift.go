package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
)

// RemoveShiftCmd creates the removeShift command
func RemoveShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeShift <week_start> <shift_id>",
		Short: "Remove a shift from a draft rota",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, shiftID := args[0], args[1]

			if err := services.RemoveShift(app.Ctx, app.Store, app.Notifier, app.Logger, app.Actor, weekStart, shiftID); err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift %s removed from week %s\n\n", shiftID, weekStart)
			return nil
		},
	}
}
