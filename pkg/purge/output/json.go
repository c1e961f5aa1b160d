package output

import (
	"bytes"
	"encoding/json"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Root    string      `json:"root"`
	DryRun  bool        `json:"dry_run"`
	Summary jsonSummary `json:"summary"`
	Meta    jsonMeta    `json:"meta"`
}

// jsonSummary represents run statistics in JSON output.
type jsonSummary struct {
	FilesDeleted int64  `json:"files_deleted"`
	DirsDeleted  int64  `json:"dirs_deleted"`
	Errors       int64  `json:"errors"`
	BytesFreed   int64  `json:"bytes_freed"`
	BytesHuman   string `json:"bytes_human"`
	Duration     string `json:"duration"`
}

// jsonMeta represents metadata in JSON output.
type jsonMeta struct {
	Warnings []string `json:"warnings,omitempty"`
}

// JSONFormatter formats output as a single indented JSON object.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	out := jsonOutput{
		Root:   r.Root,
		DryRun: r.DryRun,
		Summary: jsonSummary{
			FilesDeleted: r.Summary.FilesDeleted,
			DirsDeleted:  r.Summary.DirsDeleted,
			Errors:       r.Summary.Errors,
			BytesFreed:   r.Summary.BytesFreed,
			BytesHuman:   r.Summary.BytesHuman(),
			Duration:     r.Summary.Duration.String(),
		},
		Meta: jsonMeta{
			Warnings: r.Warnings,
		},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
