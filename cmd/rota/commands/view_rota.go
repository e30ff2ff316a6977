package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
)

// ViewRotaCmd creates the viewRota command
func ViewRotaCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewRota <week_start>",
		Short: "Show a week's shifts, staffing, and gaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := args[0]

			view, err := services.ViewRota(app.Ctx, app.Store, app.Staff, app.Cfg, app.Logger, weekStart)
			if err != nil {
				return err
			}

			fmt.Printf("\n📋 %s - week %s to %s (%s, v%d)\n\n", view.Site, view.WeekStart, view.WeekEnd, view.Status, view.Version)
			fmt.Printf("%s%-12s %-8s %-14s %-18s %s%s\n", colorBold, "Date", "Slot", "Window", "Status", "Staffing", colorReset)
			fmt.Println(strings.Repeat("-", 78))

			for _, row := range view.Rows {
				staffing := "—"
				if len(row.Assignments) > 0 {
					names := make([]string, 0, len(row.Assignments))
					for _, assignment := range row.Assignments {
						names = append(names, fmt.Sprintf("%s (%s)", assignment.Name, assignment.Role))
					}
					staffing = strings.Join(names, ", ")
				}

				status := string(row.Status)
				switch row.Status {
				case model.StatusFullyStaffed:
					status = colorGreen + status + colorReset
				case model.StatusPartiallyStaffed:
					status = colorYellow + status + colorReset
				case model.StatusUnfilled:
					status = colorRed + status + colorReset
				}

				fmt.Printf("%-12s %-8s %-14s %-28s %s\n", row.Date, row.Slot, row.Window, status, staffing)
				if len(row.Missing) > 0 {
					fmt.Printf("%-36s %sstill needs: %s%s\n", "", colorYellow, strings.Join(row.Missing, ", "), colorReset)
				}
			}
			fmt.Println()
			return nil
		},
	}
}
