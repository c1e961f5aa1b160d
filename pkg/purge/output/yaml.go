package output

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// yamlOutput represents the full YAML output structure.
type yamlOutput struct {
	Root    string      `yaml:"root"`
	DryRun  bool        `yaml:"dry_run"`
	Summary yamlSummary `yaml:"summary"`
	Meta    yamlMeta    `yaml:"meta"`
}

// yamlSummary represents run statistics in YAML output.
type yamlSummary struct {
	FilesDeleted int64  `yaml:"files_deleted"`
	DirsDeleted  int64  `yaml:"dirs_deleted"`
	Errors       int64  `yaml:"errors"`
	BytesFreed   int64  `yaml:"bytes_freed"`
	BytesHuman   string `yaml:"bytes_human"`
	Duration     string `yaml:"duration"`
}

// yamlMeta represents metadata in YAML output.
type yamlMeta struct {
	Warnings []string `yaml:"warnings,omitempty"`
}

// YAMLFormatter formats output as YAML.
// It produces the same structure as JSONFormatter but in YAML format.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Result) error {
	out := yamlOutput{
		Root:   r.Root,
		DryRun: r.DryRun,
		Summary: yamlSummary{
			FilesDeleted: r.Summary.FilesDeleted,
			DirsDeleted:  r.Summary.DirsDeleted,
			Errors:       r.Summary.Errors,
			BytesFreed:   r.Summary.BytesFreed,
			BytesHuman:   r.Summary.BytesHuman(),
			Duration:     r.Summary.Duration.String(),
		},
		Meta: yamlMeta{
			Warnings: r.Warnings,
		},
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(out); err != nil {
		return err
	}
	return encoder.Close()
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
