package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Mode selects the verb shown while the run is in flight.
type Mode int

// Progress view modes.
const (
	// ModeDelete shows a live deletion.
	ModeDelete Mode = iota
	// ModePreview shows a dry-run tally.
	ModePreview
)

// ProgressMsg carries a counter snapshot from the running operation.
type ProgressMsg struct {
	Files       int64
	Dirs        int64
	Errors      int64
	Bytes       int64
	CurrentPath string
}

// CompleteMsg signals that the operation finished. Err carries a fatal
// validation error, nil on success.
type CompleteMsg struct {
	Err error
}

// Model renders live progress for a deletion or preview run.
type Model struct {
	mode        Mode
	root        string
	spinner     spinner.Model
	progress    ProgressMsg
	startTime   time.Time
	width       int
	height      int
	done        bool
	interrupted bool
	err         error
}

// NewModel creates a progress model for the given root path.
func NewModel(mode Mode, root string) Model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return Model{
		mode:      mode,
		root:      root,
		spinner:   s,
		startTime: time.Now(),
		width:     80,
		height:    24,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the progress model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil

	case ProgressMsg:
		m.progress = msg
		return m, nil

	case CompleteMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the progress model.
func (m Model) View() string {
	var b strings.Builder

	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	b.WriteString("\n")
	b.WriteString(m.renderHeader(contentWidth))
	b.WriteString("\n")
	b.WriteString(renderDivider(contentWidth))
	b.WriteString("\n\n")

	switch {
	case m.done && m.err != nil:
		b.WriteString(errorTextStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
	case m.done:
		b.WriteString(successTextStyle.Render("  " + m.doneLabel()))
	default:
		status := fmt.Sprintf("  %s %s: %s",
			m.spinner.View(),
			m.verb(),
			pathTextStyle.Render(truncatePath(m.progress.CurrentPath, contentWidth-20)))
		b.WriteString(status)
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderStats(contentWidth))
	b.WriteString("\n")

	return b.String()
}

// verb returns the in-flight status verb for the current mode.
func (m Model) verb() string {
	if m.mode == ModePreview {
		return "Previewing"
	}
	return "Deleting"
}

// doneLabel returns the completion message for the current mode.
func (m Model) doneLabel() string {
	if m.mode == ModePreview {
		return "Preview complete."
	}
	return "Deletion complete."
}

// renderHeader renders the title row with the target path and key hint.
func (m Model) renderHeader(width int) string {
	title := titleStyle.Render("  purge") + " " + mutedTextStyle.Render(m.root)
	hint := mutedTextStyle.Render("[Ctrl+C to detach]")

	spacing := width - lipgloss.Width(title) - lipgloss.Width(hint)
	if spacing < 1 {
		spacing = 1
	}

	return title + strings.Repeat(" ", spacing) + hint
}

// renderStats renders the counter boxes.
func (m Model) renderStats(totalWidth int) string {
	boxWidth := (totalWidth - 12) / 5
	if boxWidth < 10 {
		boxWidth = 10
	}

	filesVal := humanize.Comma(m.progress.Files)
	dirsVal := humanize.Comma(m.progress.Dirs)
	freedVal := humanize.IBytes(uint64(m.progress.Bytes))
	errorsVal := humanize.Comma(m.progress.Errors)
	elapsedVal := formatElapsed(time.Since(m.startTime))

	filesBox := renderStatBox("Files", filesVal, boxWidth)
	dirsBox := renderStatBox("Dirs", dirsVal, boxWidth)
	freedBox := renderStatBox("Freed", freedVal, boxWidth)
	errorsBox := renderStatBox("Errors", errorsVal, boxWidth)
	elapsedBox := renderStatBox("Time", elapsedVal, boxWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		"  ", filesBox, " ", dirsBox, " ", freedBox, " ", errorsBox, " ", elapsedBox)
}

// renderStatBox renders a single counter box.
func renderStatBox(label, value string, width int) string {
	labelStr := statsLabelStyle.Render(label)
	valueStr := statsValueStyle.Render(value)

	content := lipgloss.JoinVertical(lipgloss.Center,
		center(labelStr, width-4),
		center(valueStr, width-4))

	return statsBoxStyle.Width(width).Render(content)
}

// formatElapsed formats a duration as M:SS.
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	min := d / time.Minute
	sec := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d", min, sec)
}

// Done reports whether the operation completed before the view exited.
func (m Model) Done() bool {
	return m.done
}

// Interrupted reports whether the user detached with Ctrl+C.
func (m Model) Interrupted() bool {
	return m.interrupted
}

// Err returns any fatal error reported by the operation.
func (m Model) Err() error {
	return m.err
}
