// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/daylog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to read and write your daylog data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "daylog": {
        "command": "daylog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_condition    Save a condition entry for today
  log_activity     Save an activity entry for today
  list_records     List recent entries by kind
  delete_record    Delete an entry by ID or prefix
  get_progress     Points, level, streaks, badges
  daily_report     Timeline for one date
  weekly_report    7-day aggregation ending today

AVAILABLE RESOURCES:

  daylog://report/today    Today's timeline
  daylog://report/week     This week's aggregation
  daylog://progress        Current progress summary`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
