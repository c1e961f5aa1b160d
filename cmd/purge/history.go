package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jamesainslie/purge/pkg/purge/config"
	"github.com/jamesainslie/purge/pkg/purge/manifest"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View run history",
	Long: `View the history of delete and preview runs.

The manifest stores a record of every run performed by purge, including
how many files and directories were removed and how much space was freed.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details of a specific run",
	Long:  `Display detailed information about a specific run by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean up old history entries",
	Long:  `Remove history entries older than the retention period.`,
	RunE:  runHistoryClean,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of entries to show")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyCleanCmd)
	rootCmd.AddCommand(historyCmd)
}

// getManifest returns a manifest instance with the configured directory.
func getManifest() (*manifest.Manifest, error) {
	cfg, err := config.Load()
	if err != nil {
		// Use default manifest path if config fails to load
		manifestDir, dirErr := config.ManifestDir()
		if dirErr != nil {
			return nil, fmt.Errorf("failed to get manifest directory: %w", dirErr)
		}
		return manifest.New(manifestDir)
	}

	return manifest.New(cfg.Manifest.Path)
}

// runHistory lists recent runs.
func runHistory(cmd *cobra.Command, args []string) error {
	m, err := getManifest()
	if err != nil {
		return fmt.Errorf("failed to initialize manifest: %w", err)
	}

	entries, err := m.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		printInfo("No history entries found.")
		printInfo("Run 'purge <path>' to delete a directory tree.")
		return nil
	}

	// Print header
	fmt.Printf("\n%-40s  %-8s  %-8s  %-8s  %-10s\n", "ID", "TYPE", "FILES", "DIRS", "FREED")
	fmt.Println(strings.Repeat("-", 84))

	for _, entry := range entries {
		fmt.Printf("%-40s  %-8s  %-8d  %-8d  %-10s\n",
			truncateString(entry.ID, 40),
			entry.Operation,
			entry.Summary.FilesDeleted,
			entry.Summary.DirsDeleted,
			humanize.IBytes(uint64(entry.Summary.BytesFreed)),
		)
	}

	fmt.Println(strings.Repeat("-", 84))
	fmt.Printf("\nShowing %d entries. Use --limit to see more.\n", len(entries))
	fmt.Println("Use 'purge history show <id>' for details on a specific entry.")

	return nil
}

// runHistoryShow displays details of a specific run.
func runHistoryShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	m, err := getManifest()
	if err != nil {
		return fmt.Errorf("failed to initialize manifest: %w", err)
	}

	entry, err := m.Get(id)
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	fmt.Println("\nRun Details")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("ID:          %s\n", entry.ID)
	fmt.Printf("Timestamp:   %s\n", entry.Timestamp.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Operation:   %s\n", entry.Operation)
	fmt.Printf("Root:        %s\n", entry.Root)
	fmt.Printf("Files:       %d\n", entry.Summary.FilesDeleted)
	fmt.Printf("Directories: %d\n", entry.Summary.DirsDeleted)
	fmt.Printf("Errors:      %d\n", entry.Summary.Errors)
	fmt.Printf("Freed:       %s\n", humanize.IBytes(uint64(entry.Summary.BytesFreed)))
	fmt.Printf("Duration:    %s\n", entry.Summary.Duration)

	return nil
}

// runHistoryClean removes old history entries.
func runHistoryClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	m, err := manifest.New(cfg.Manifest.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize manifest: %w", err)
	}

	retentionDays := cfg.Manifest.RetentionDays
	if retentionDays <= 0 {
		retentionDays = config.DefaultRetentionDays
	}

	printInfo("Cleaning history entries older than %d days...", retentionDays)

	if err := m.Cleanup(retentionDays); err != nil {
		return fmt.Errorf("failed to clean history: %w", err)
	}

	printInfo("History cleanup complete.")
	return nil
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
