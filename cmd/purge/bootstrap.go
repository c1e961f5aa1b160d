package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jamesainslie/purge/pkg/purge/config"
	"github.com/jamesainslie/purge/pkg/purge/logging"
	"github.com/spf13/cobra"
)

// initializeLogging is the PersistentPreRunE hook for all commands. It
// creates the config, manifest, and state directories and initializes
// the logging system from the loaded configuration.
func initializeLogging(_ *cobra.Command, _ []string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.EnsureManifestDir(); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}
	if err := config.EnsureStateDir(); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		// Fall back to default logging so the run still produces a log
		// file even with a broken config.
		printVerbose("Failed to load config, using default logging: %v", err)
		return logging.Init(logging.DefaultConfig())
	}

	logCfg := logging.Config{
		Level:      cfg.Logging.Level,
		Path:       cfg.Logging.Path,
		Rotation:   parseRotationConfig(cfg.Logging.Rotation),
		Components: cfg.Logging.Components,
	}

	// Verbose mode raises everything to debug and mirrors logs to the
	// console.
	if getVerbose() {
		logCfg.Level = "debug"
		logCfg.Components = nil
		logCfg.ConsoleLevel = "debug"
	}

	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	return nil
}

// parseRotationConfig converts the config package's rotation settings
// (human-readable sizes) to the logging package's representation.
func parseRotationConfig(cfg config.RotationConfig) logging.RotationConfig {
	maxSize := parseSize(cfg.MaxSize)
	if maxSize <= 0 {
		maxSize = logging.DefaultRotationConfig().MaxSize
	}

	return logging.RotationConfig{
		MaxSize:    maxSize,
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
		Daily:      cfg.Daily,
	}
}

// parseSize parses a size string like "10MB" or "1G" into bytes.
// Units are binary (1K = 1024). Returns 0 for empty or invalid input.
func parseSize(s string) int64 {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0
	}

	multiplier := int64(1)
	for _, unit := range []struct {
		suffix string
		factor int64
	}{
		{"KIB", 1 << 10}, {"KB", 1 << 10}, {"K", 1 << 10},
		{"MIB", 1 << 20}, {"MB", 1 << 20}, {"M", 1 << 20},
		{"GIB", 1 << 30}, {"GB", 1 << 30}, {"G", 1 << 30},
		{"B", 1},
	} {
		if strings.HasSuffix(s, unit.suffix) {
			multiplier = unit.factor
			s = strings.TrimSuffix(s, unit.suffix)
			break
		}
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}

	return n * multiplier
}
