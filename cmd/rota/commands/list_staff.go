package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List the care team from the staff directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := app.Staff.ListStaff(app.Cfg)
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			app.Logger.Info("Staff fetched successfully", zap.Int("count", len(staff)))

			fmt.Printf("\nFound %d staff members:\n\n", len(staff))
			for _, member := range staff {
				roles := make([]string, 0, len(member.Roles))
				for _, role := range member.Roles {
					roles = append(roles, string(role))
				}
				fmt.Printf("- %s (%s) - %s - %.0fh contracted - %s\n",
					member.FullName(),
					member.ID,
					member.Status,
					member.ContractedHours,
					strings.Join(roles, ", "),
				)
			}
			fmt.Println()
			return nil
		},
	}
}
