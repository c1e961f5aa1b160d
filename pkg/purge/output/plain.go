package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// PlainFormatter formats output as a simple aligned key/value listing.
// It produces plain text output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	// Use tabwriter for aligned columns
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	rows := [][2]string{
		{"target", r.Root},
		{"files_deleted", fmt.Sprintf("%d", r.Summary.FilesDeleted)},
		{"dirs_deleted", fmt.Sprintf("%d", r.Summary.DirsDeleted)},
		{"bytes_freed", fmt.Sprintf("%d", r.Summary.BytesFreed)},
		{"errors", fmt.Sprintf("%d", r.Summary.Errors)},
		{"duration", r.Summary.Duration.String()},
	}
	if r.DryRun {
		rows = append(rows, [2]string{"dry_run", "true"})
	}

	for _, row := range rows {
		if _, err := tw.Write([]byte(row[0] + "\t" + row[1] + "\n")); err != nil {
			return err
		}
	}

	// Flush tabwriter to buffer
	return tw.Flush()
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
