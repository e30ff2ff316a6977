package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
)

// GenerateRotaCmd creates the generateRota command
func GenerateRotaCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateRota <week_start>",
		Short: "Auto-fill a draft rota's open slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := args[0]
			opts := suggestOptions(cmd)

			app.Logger.Debug("generateRota command",
				zap.String("week_start", weekStart),
				zap.Bool("respect_preferences", opts.RespectPreferences),
				zap.Bool("prioritize_fairness", opts.PrioritizeFairness),
				zap.Bool("allow_overtime", opts.AllowOvertimeStaff))

			result, err := services.GenerateRota(app.Ctx, app.Store, app.Staff, app.Notifier, app.Cfg, app.Logger,
				app.Actor, weekStart, opts)
			if err != nil {
				return err
			}

			outcome := result.Outcome
			fmt.Printf("\n🗓  Generation results for week %s\n\n", weekStart)
			fmt.Printf("Assignments committed: %d\n", outcome.Assigned)
			if outcome.Complete {
				fmt.Printf("Status:                %s✓ fully staffed%s\n\n", colorGreen, colorReset)
			} else {
				fmt.Printf("Status:                %s⚠ ran to completion with %d open slots%s\n\n",
					colorYellow, len(outcome.Unfilled), colorReset)
				for _, gap := range outcome.Unfilled {
					fmt.Printf("  ⚠ %s %-8s needs %d x %-12s (%s)\n",
						gap.Date, gap.Slot, gap.Remaining, gap.Role, gap.Reason)
				}
				fmt.Println()
			}

			if len(outcome.Violations) > 0 {
				fmt.Printf("Validation findings on the generated week:\n\n")
				printViolations(outcome.Violations)
			}

			for _, shift := range result.Rota.SortedShifts() {
				glyph := colorGreen + "✓" + colorReset
				if shift.Status() != model.StatusFullyStaffed {
					glyph = colorYellow + "○" + colorReset
				}
				fmt.Printf("  %s %s %-8s %d/%d\n", glyph, shift.Date, shift.Slot, shift.AssignedCount(), shift.Required)
			}
			fmt.Println()
			return nil
		},
	}
	addScoringFlags(cmd)
	return cmd
}
