package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	confirmWarnStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	confirmPathStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("196"))
)

// promptConfirm asks the user to confirm deletion of path. It returns
// true only on an explicit yes.
func promptConfirm(path string) (bool, error) {
	return promptConfirmFrom(os.Stdin, os.Stderr, path)
}

// promptConfirmFrom is the testable core of promptConfirm.
func promptConfirmFrom(in io.Reader, out io.Writer, path string) (bool, error) {
	fmt.Fprintf(out, "%s %s\n",
		confirmWarnStyle.Render("This will permanently delete everything under"),
		confirmPathStyle.Render(path))
	fmt.Fprint(out, "Continue? [y/N] ")

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
