package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <week_start> <shift_id> <staff_id> <role>",
		Short: "Assign a staff member to a shift (allowed on published rotas for cover)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, shiftID, staffID, role := args[0], args[1], args[2], args[3]

			app.Logger.Debug("assign command",
				zap.String("week_start", weekStart),
				zap.String("shift_id", shiftID),
				zap.String("staff_id", staffID),
				zap.String("role", role))

			result, err := services.AssignStaff(app.Ctx, app.Store, app.Staff, app.Notifier, app.Cfg, app.Logger,
				app.Actor, weekStart, shiftID, staffID, model.Role(role))
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %s assigned to shift %s as %s\n", staffID, shiftID, role)
			fmt.Printf("Shift is now %s (%d/%d)\n\n", result.Shift.Status(), result.Shift.AssignedCount(), result.Shift.Required)
			printViolations(result.Violations)
			return nil
		},
	}
}

// UnassignCmd creates the unassign command
func UnassignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <week_start> <shift_id> <staff_id>",
		Short: "Take a staff member off a shift",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, shiftID, staffID := args[0], args[1], args[2]

			removed, err := services.UnassignStaff(app.Ctx, app.Store, app.Notifier, app.Logger,
				app.Actor, weekStart, shiftID, staffID)
			if err != nil {
				return err
			}

			if removed {
				fmt.Printf("\n✓ %s removed from shift %s\n\n", staffID, shiftID)
			} else {
				fmt.Printf("\n%s was not on shift %s - nothing to do\n\n", staffID, shiftID)
			}
			return nil
		},
	}
}
