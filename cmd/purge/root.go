package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/purge/pkg/purge/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "purge <path>",
		Short: "Delete a directory tree, fast",
		Long: `Purge recursively deletes a directory tree, children before parents,
and reports what was removed: files, directories, bytes freed, and any
entries it could not delete.

Failures on individual entries never stop the run; they are counted and
reported in the summary. Only an invalid target aborts.

Examples:
  purge ./node_modules          # Delete after confirming
  purge -y /tmp/build           # Delete without confirmation
  purge -d ~/Downloads/old      # Dry run: tally without deleting
  purge -o json -y ./cache      # Machine-readable summary
  purge history                 # View past runs`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: initializeLogging,
		RunE:              runDelete,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/purge/config.yaml)")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "skip the confirmation prompt")
	rootCmd.PersistentFlags().BoolP("dry-run", "d", false, "tally what would be deleted without deleting")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (pretty, plain, json, yaml)")
	rootCmd.PersistentFlags().Bool("no-progress", false, "disable the live progress view")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("yes", rootCmd.PersistentFlags().Lookup("yes"))
	_ = viper.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("no_progress", rootCmd.PersistentFlags().Lookup("no-progress"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Set config name and type
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// Add config paths in order of precedence
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "purge"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "purge"))
		}
	}

	// Set environment variable prefix and enable auto env binding
	viper.SetEnvPrefix("PURGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Set defaults from config package
	viper.SetDefault("output", config.DefaultOutput)
	viper.SetDefault("confirm", true)
	viper.SetDefault("manifest.enabled", true)
	viper.SetDefault("manifest.retention_days", config.DefaultRetentionDays)

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}
