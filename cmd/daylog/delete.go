// ABOUTME: CLI command for deleting entries by ID or ID prefix.
// ABOUTME: Deleting a record never reverses points, streaks, or badges.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/storage"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an entry",
	Long: `Delete a condition or activity entry by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'daylog list' output. Both
kinds are searched; the prefix must be unique across them.

Progress is a forward-only ratchet: deleting an entry does not take back
points, streaks, or badges it earned.

EXAMPLES:

  daylog delete abc12345
  daylog rm abc1

CAUTION:

  This permanently deletes the entry. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		if rec, err := repo.GetCondition(idOrPrefix); err == nil {
			if err := repo.DeleteCondition(idOrPrefix); err != nil {
				return fmt.Errorf("failed to delete entry: %w", err)
			}
			color.Yellow("✗ Deleted condition entry")
			fmt.Printf("  %s %s\n",
				color.New(color.Faint).Sprint(rec.ID.String()[:8]), rec.Date)
			return nil
		} else if errors.Is(err, storage.ErrAmbiguous) {
			return fmt.Errorf("ambiguous id prefix: %s", idOrPrefix)
		}

		if rec, err := repo.GetActivity(idOrPrefix); err == nil {
			if err := repo.DeleteActivity(idOrPrefix); err != nil {
				return fmt.Errorf("failed to delete entry: %w", err)
			}
			color.Yellow("✗ Deleted activity entry")
			fmt.Printf("  %s %s\n",
				color.New(color.Faint).Sprint(rec.ID.String()[:8]), rec.Date)
			return nil
		} else if errors.Is(err, storage.ErrAmbiguous) {
			return fmt.Errorf("ambiguous id prefix: %s", idOrPrefix)
		}

		return fmt.Errorf("entry not found: %s", idOrPrefix)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
