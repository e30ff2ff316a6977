package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
)

// AddShiftCmd creates the addShift command
func AddShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addShift <week_start> <date> <slot> <requirements>",
		Short: "Add a shift to a draft rota",
		Long: `Add a shift to a draft rota.

Requirements take the form "Role=count,Role=count", for example:
  addShift 2026-01-05 2026-01-07 Morning "Shift Leader=1,Care Staff=2"`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, date, slot := args[0], args[1], args[2]

			requirements, err := parseRequirements(args[3])
			if err != nil {
				return err
			}

			app.Logger.Debug("addShift command",
				zap.String("week_start", weekStart),
				zap.String("date", date),
				zap.String("slot", slot))

			shift, err := services.AddShift(app.Ctx, app.Store, app.Notifier, app.Logger, app.Actor,
				weekStart, date, model.Slot(slot), requirements)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift added\n\n")
			fmt.Printf("Shift ID:   %s\n", shift.ID)
			fmt.Printf("Date:       %s (%s)\n", shift.Date, shift.Slot)
			fmt.Printf("Window:     %s - %s\n", shift.StartTime().Format("15:04"), shift.EndTime().Format("15:04"))
			fmt.Printf("Headcount:  %d\n", shift.Required)
			for _, req := range shift.Requirements {
				fmt.Printf("  - %s x%d\n", req.Role, req.Count)
			}
			fmt.Println()
			return nil
		},
	}
}

// parseRequirements parses a "Role=count,Role=count" argument into an
// ordered requirement list.
func parseRequirements(raw string) ([]model.RoleCount, error) {
	var requirements []model.RoleCount
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		role, countStr, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("requirement %q must take the form Role=count", part)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return nil, fmt.Errorf("requirement %q has a non-numeric count", part)
		}
		requirements = append(requirements, model.RoleCount{
			Role:  model.Role(strings.TrimSpace(role)),
			Count: count,
		})
	}
	if len(requirements) == 0 {
		return nil, fmt.Errorf("no requirements given")
	}
	return requirements, nil
}
