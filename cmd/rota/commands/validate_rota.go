package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/validator"
)

// ANSI color codes shared by the table-printing commands
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorBold   = "\033[1m"
)

// ValidateRotaCmd creates the validateRota command
func ValidateRotaCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validateRota <week_start>",
		Short: "Check a week against the staffing rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := args[0]

			violations, err := services.ValidateRota(app.Ctx, app.Store, app.Staff, app.Cfg, app.Logger, weekStart)
			if err != nil {
				return err
			}

			if len(violations) == 0 {
				fmt.Printf("\n%s✓ Week %s validates cleanly%s\n\n", colorGreen, weekStart, colorReset)
				return nil
			}

			fmt.Printf("\nWeek %s has %d findings:\n\n", weekStart, len(violations))
			printViolations(violations)
			return nil
		},
	}
}

// printViolations writes an itemized validation report. Blocking errors get
// a red cross, overridable warnings a yellow triangle.
func printViolations(violations []validator.Violation) {
	if len(violations) == 0 {
		return
	}
	for _, violation := range violations {
		glyph := colorRed + "✗" + colorReset
		if violation.Severity == validator.SeverityWarning {
			glyph = colorYellow + "⚠" + colorReset
		}
		fmt.Printf("  %s [%s] %s\n", glyph, violation.Kind, violation.Description)
	}
	fmt.Println()
}
