package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
)

// PublishRotaCmd creates the publishRota command
func PublishRotaCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishRota <week_start>",
		Short: "Validate and publish a draft week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := args[0]
			force, _ := cmd.Flags().GetBool("force")

			result, err := services.PublishRota(app.Ctx, app.Store, app.Staff, app.Notifier, app.Cfg, app.Logger,
				app.Actor, weekStart, force)
			if err != nil {
				return err
			}

			if !result.Published {
				fmt.Printf("\n%s✗ Week %s was not published%s - it has blocking findings:\n\n", colorRed, weekStart, colorReset)
				printViolations(result.Violations)
				fmt.Println("💡 Fix the findings, or publish anyway with --force.")
				return nil
			}

			fmt.Printf("\n%s✓ Week %s published%s\n\n", colorGreen, weekStart, colorReset)
			if len(result.Violations) > 0 {
				fmt.Println("Published with the following findings on record:")
				fmt.Println()
				printViolations(result.Violations)
			}
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Publish despite blocking validation errors")
	return cmd
}

// UnpublishRotaCmd creates the unpublishRota command
func UnpublishRotaCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unpublishRota <week_start>",
		Short: "Return a published week to draft for bulk edits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := args[0]

			rota, err := services.UnpublishRota(app.Ctx, app.Store, app.Notifier, app.Logger, app.Actor, weekStart)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Week %s is back in draft (version %d)\n\n", weekStart, rota.Version)
			return nil
		},
	}
}
