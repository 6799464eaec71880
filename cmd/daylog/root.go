// ABOUTME: Root Cobra command for daylog CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/daylog/internal/config"
	"github.com/harperreed/daylog/internal/storage"
	"github.com/harperreed/daylog/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	repo   storage.Repository
	app    *tracker.Tracker
	dbPath string
)

var rootCmd = &cobra.Command{
	Use:   "daylog",
	Short: "Daily condition and activity tracker",
	Long: `Daylog tracks how you feel and how much you move, one day at a time.

WHAT IT TRACKS:

  Condition  overall score (1-5), symptoms, mood (1-5), meals, notes
  Activity   walking minutes, distance, other light activities, notes

CONSISTENT LOGGING EARNS PROGRESS:

  Points for the first entry of each kind per day, streaks for consecutive
  days, levels derived from total points, and badges for milestones.

QUICK START:

  $ daylog condition 4 --mood 5            # Log how you feel today
  $ daylog condition 3 --symptoms pain     # Log with symptoms
  $ daylog activity 40 --distance 2500     # Log a 40-minute walk
  $ daylog report                          # Today's timeline
  $ daylog report --week                   # Last 7 days
  $ daylog progress                        # Points, level, streak, badges

DATA STORAGE:

  Entries are stored on this device only, in Charm KV by default
  (~/.local/share/charm/kv/daylog). Set "backend": "sqlite" in
  ~/.config/daylog/config.json to use a local SQLite file instead.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// --db forces a SQLite file, bypassing config
		if dbPath != "" {
			db, err := storage.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			repo = db
			app = tracker.New(repo)
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		app = tracker.New(repo)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides configured backend)")
}
