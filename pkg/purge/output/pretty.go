package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// PrettyFormatter formats output with colors and styling using lipgloss.
// It produces a visually appealing output suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	header := f.formatHeader(r)
	w.WriteString(header)
	w.WriteString("\n")

	summary := f.formatSummary(r)
	w.WriteString(summary)
	w.WriteString("\n")

	if len(r.Warnings) > 0 {
		warnings := f.formatWarnings(r.Warnings)
		w.WriteString("\n")
		w.WriteString(warnings)
	}

	return nil
}

// formatHeader builds the header box with run metadata.
func (f *PrettyFormatter) formatHeader(r *Result) string {
	var lines []string

	targetLabel := LabelStyle.Render("Target:")
	targetValue := ValueStyle.Render(r.Root)
	lines = append(lines, fmt.Sprintf("%s %s", targetLabel, targetValue))

	var status string
	switch {
	case r.DryRun:
		status = WarningStyle.Render("dry run, nothing was removed")
	case r.Summary.Errors > 0:
		status = WarningStyle.Render(fmt.Sprintf("completed with %d errors", r.Summary.Errors))
	default:
		status = SuccessStyle.Render("deletion completed")
	}
	lines = append(lines, status)

	content := strings.Join(lines, "\n")
	return HeaderBox.Render(content)
}

// formatSummary builds the summary box with run counters.
func (f *PrettyFormatter) formatSummary(r *Result) string {
	var parts []string

	filesLabel := LabelStyle.Render("Files:")
	filesValue := ValueStyle.Render(humanize.Comma(r.Summary.FilesDeleted))
	parts = append(parts, fmt.Sprintf("%s %s", filesLabel, filesValue))

	dirsLabel := LabelStyle.Render("Dirs:")
	dirsValue := ValueStyle.Render(humanize.Comma(r.Summary.DirsDeleted))
	parts = append(parts, fmt.Sprintf("%s %s", dirsLabel, dirsValue))

	freedLabel := LabelStyle.Render("Freed:")
	freedValue := SizeStyle.Render(r.Summary.BytesHuman())
	parts = append(parts, fmt.Sprintf("%s %s", freedLabel, freedValue))

	timeLabel := LabelStyle.Render("Time:")
	timeValue := ValueStyle.Render(formatDuration(r.Summary.Duration))
	parts = append(parts, fmt.Sprintf("%s %s", timeLabel, timeValue))

	if r.Summary.Errors > 0 {
		errorsLabel := LabelStyle.Render("Errors:")
		errorsValue := ErrorStyle.Render(humanize.Comma(r.Summary.Errors))
		parts = append(parts, fmt.Sprintf("%s %s", errorsLabel, errorsValue))
	}

	content := strings.Join(parts, "  ")
	return SummaryBox.Render(content)
}

// formatWarnings builds a warning block.
func (f *PrettyFormatter) formatWarnings(warnings []string) string {
	var sb strings.Builder

	titleStyle := WarningStyle.Bold(true)
	sb.WriteString(titleStyle.Render("Warnings:"))
	sb.WriteString("\n")

	for _, warning := range warnings {
		sb.WriteString(WarningStyle.Render("  " + warning))
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatDuration formats a time.Duration as a human-friendly string.
func formatDuration(d time.Duration) string {
	sec := d.Seconds()
	if sec < 1 {
		return fmt.Sprintf("%.0fms", sec*1000)
	}
	if sec < 60 {
		return fmt.Sprintf("%.1fs", sec)
	}
	minutes := int(sec) / 60
	seconds := int(sec) % 60
	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
