package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(ModeDelete, "/tmp/target")

	if m.Done() {
		t.Error("new model should not be done")
	}
	if m.Interrupted() {
		t.Error("new model should not be interrupted")
	}
	if m.Err() != nil {
		t.Errorf("new model Err() = %v, want nil", m.Err())
	}
}

func TestModel_UpdateProgress(t *testing.T) {
	m := NewModel(ModeDelete, "/tmp/target")

	updated, _ := m.Update(ProgressMsg{
		Files:       42,
		Dirs:        7,
		Bytes:       1024,
		CurrentPath: "/tmp/target/sub/file.txt",
	})

	got := updated.(Model)
	if got.progress.Files != 42 {
		t.Errorf("progress.Files = %d, want 42", got.progress.Files)
	}
	if got.progress.CurrentPath != "/tmp/target/sub/file.txt" {
		t.Errorf("progress.CurrentPath = %q", got.progress.CurrentPath)
	}
}

func TestModel_CompleteQuits(t *testing.T) {
	m := NewModel(ModePreview, "/tmp/target")

	updated, cmd := m.Update(CompleteMsg{})
	got := updated.(Model)

	if !got.Done() {
		t.Error("model should be done after CompleteMsg")
	}
	if cmd == nil {
		t.Fatal("CompleteMsg should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("CompleteMsg should quit the program")
	}
}

func TestModel_CompleteCarriesError(t *testing.T) {
	m := NewModel(ModeDelete, "/tmp/target")

	wantErr := errors.New("not a directory")
	updated, _ := m.Update(CompleteMsg{Err: wantErr})
	got := updated.(Model)

	if !errors.Is(got.Err(), wantErr) {
		t.Errorf("Err() = %v, want %v", got.Err(), wantErr)
	}
}

func TestModel_CtrlCInterrupts(t *testing.T) {
	m := NewModel(ModeDelete, "/tmp/target")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	got := updated.(Model)

	if !got.Interrupted() {
		t.Error("model should be interrupted after ctrl+c")
	}
	if got.Done() {
		t.Error("ctrl+c should not mark the model done")
	}
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
}

func TestModel_ViewShowsCounters(t *testing.T) {
	m := NewModel(ModeDelete, "/tmp/target")

	updated, _ := m.Update(ProgressMsg{Files: 1234, Dirs: 56})
	got := updated.(Model)

	view := got.View()
	if !strings.Contains(view, "1,234") {
		t.Errorf("view missing file count:\n%s", view)
	}
	if !strings.Contains(view, "56") {
		t.Errorf("view missing dir count:\n%s", view)
	}
}

func TestModel_ViewDone(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want string
	}{
		{"delete", ModeDelete, "Deletion complete."},
		{"preview", ModePreview, "Preview complete."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(tt.mode, "/tmp/target")
			updated, _ := m.Update(CompleteMsg{})
			view := updated.(Model).View()

			if !strings.Contains(view, tt.want) {
				t.Errorf("view missing %q:\n%s", tt.want, view)
			}
		})
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path   string
		maxLen int
	}{
		{"/short", 20},
		{"/a/very/long/path/to/file.txt", 15},
		{"/abc", 2},
	}

	for _, tt := range tests {
		got := truncatePath(tt.path, tt.maxLen)
		if len(tt.path) <= tt.maxLen && got != tt.path {
			t.Errorf("truncatePath(%q, %d) = %q, want unchanged", tt.path, tt.maxLen, got)
		}
		if len(tt.path) > tt.maxLen && tt.maxLen > 3 && !strings.HasPrefix(got, "...") {
			t.Errorf("truncatePath(%q, %d) = %q, want ... prefix", tt.path, tt.maxLen, got)
		}
	}
}
