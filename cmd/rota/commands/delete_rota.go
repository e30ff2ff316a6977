package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
)

// DeleteRotaCmd creates the deleteRota command
func DeleteRotaCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteRota <week_start>",
		Short: "Soft-delete a draft week (the document stays on record)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := args[0]

			if err := services.DeleteRota(app.Ctx, app.Store, app.Notifier, app.Logger, app.Actor, weekStart); err != nil {
				return err
			}

			fmt.Printf("\n✓ Week %s deleted - the week is free for a fresh rota\n\n", weekStart)
			return nil
		},
	}
}
