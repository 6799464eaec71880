// ABOUTME: CLI command for wiping all data and restarting progress.
// ABOUTME: The only operation that ever rewinds gamification state.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and start over",
	Long: `Delete every condition and activity entry and reinitialize progress:
points, levels, streaks, and badges all return to zero, and the join date
is set to today.

This is permanent. Pass --force to confirm.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("refusing to wipe all data without --force")
		}

		if err := app.ResetAll(); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}

		color.Yellow("✗ All entries deleted, progress reset")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm the wipe")
	rootCmd.AddCommand(resetCmd)
}
