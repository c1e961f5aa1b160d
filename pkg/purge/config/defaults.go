// Package config provides configuration management for the purge CLI.
package config

// Default configuration values for purge.
const (
	// DefaultOutput is the default summary output format.
	DefaultOutput = "pretty"

	// DefaultConfigDir is the default configuration directory path.
	DefaultConfigDir = "~/.config/purge"

	// DefaultManifestDir is the default directory for manifest files.
	DefaultManifestDir = "~/.config/purge/.manifest"

	// DefaultRetentionDays is the default number of days to retain manifests.
	DefaultRetentionDays = 30
)
