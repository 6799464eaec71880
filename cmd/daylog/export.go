// ABOUTME: CLI commands for exporting and importing all data as JSON.
// ABOUTME: Export writes to stdout or a file; import restores a dump.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	Long: `Export every condition entry, activity entry, and your progress as a
single JSON document.

EXAMPLES:

  daylog export                      # Write JSON to stdout
  daylog export --output backup.json # Write JSON to a file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := storage.Export(repo)
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}

		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported %d condition and %d activity entries to %s",
			len(data.Conditions), len(data.Activities), exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON export",
	Long: `Import a JSON document previously produced by 'daylog export'.

Entries already present (same id) are left untouched; the progress
singleton is replaced by the imported one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var data storage.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to parse export: %w", err)
		}

		if err := storage.Import(repo, &data); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}
		color.Green("✓ Imported %d condition and %d activity entries",
			len(data.Conditions), len(data.Activities))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
