package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/suggest"
)

// suggestOptions builds scoring options from the shared scoring flags.
func suggestOptions(cmd *cobra.Command) suggest.Options {
	opts := suggest.DefaultOptions()
	if ignore, _ := cmd.Flags().GetBool("ignore-preferences"); ignore {
		opts.RespectPreferences = false
	}
	if noFairness, _ := cmd.Flags().GetBool("no-fairness"); noFairness {
		opts.PrioritizeFairness = false
	}
	if overtime, _ := cmd.Flags().GetBool("allow-overtime"); overtime {
		opts.AllowOvertimeStaff = true
	}
	return opts
}

// addScoringFlags registers the scoring flags shared by suggest and
// generateRota.
func addScoringFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("ignore-preferences", false, "Score without shift-type and site preferences")
	cmd.Flags().Bool("no-fairness", false, "Score without the under-scheduled-hours bonus")
	cmd.Flags().Bool("allow-overtime", false, "Let staff be scheduled past their contracted hours")
}

// SuggestCmd creates the suggest command
func SuggestCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <week_start> <shift_id> [role]",
		Short: "Rank staff for an open shift slot (defaults to the first unfilled role)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, shiftID := args[0], args[1]
			var role model.Role
			if len(args) > 2 {
				role = model.Role(args[2])
			}

			suggestion, err := services.SuggestStaff(app.Ctx, app.Store, app.Staff, app.Cfg, app.Logger,
				weekStart, shiftID, role, suggestOptions(cmd))
			if err != nil {
				return err
			}

			fmt.Printf("\n🎯 Suggestions for shift %s (%s)\n\n", suggestion.ShiftID, suggestion.Role)

			if len(suggestion.Candidates) == 0 {
				fmt.Println("No eligible candidates hold this role.")
				fmt.Println()
				return nil
			}

			fmt.Printf("Confidence: %.2f\n\n", suggestion.Confidence)
			fmt.Printf("%s%-4s %-24s %-7s %s%s\n", colorBold, "Rank", "Candidate", "Score", "Reasoning", colorReset)
			for i, candidate := range suggestion.Candidates {
				reasons := strings.Join(candidate.Reasons, "; ")
				line := fmt.Sprintf("%-4d %-24s %.3f   %s", i+1, candidate.Name, candidate.Score, reasons)
				if i == 0 {
					line = colorGreen + line + colorReset
				}
				fmt.Println(line)
			}
			fmt.Println()
			return nil
		},
	}
	addScoringFlags(cmd)
	return cmd
}
