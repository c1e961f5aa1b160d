package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jamesainslie/purge/pkg/purge/logging"
)

// TestInit tests the Init function with various configurations.
// Note: This test cannot run in parallel with other tests that use global state.
func TestInit(t *testing.T) {
	validDir := t.TempDir()
	debugDir := t.TempDir()
	componentsDir := t.TempDir()
	invalidDir := t.TempDir()

	tests := []struct {
		name    string
		cfg     logging.Config
		wantErr bool
	}{
		{
			name: "valid config with defaults",
			cfg: logging.Config{
				Level: "info",
				Path:  filepath.Join(validDir, "test.log"),
			},
			wantErr: false,
		},
		{
			name: "valid config with debug level",
			cfg: logging.Config{
				Level: "debug",
				Path:  filepath.Join(debugDir, "debug.log"),
			},
			wantErr: false,
		},
		{
			name: "valid config with component overrides",
			cfg: logging.Config{
				Level: "info",
				Path:  filepath.Join(componentsDir, "components.log"),
				Components: map[string]string{
					"engine":  "debug",
					"preview": "warn",
				},
			},
			wantErr: false,
		},
		{
			name: "invalid log level",
			cfg: logging.Config{
				Level: "invalid",
				Path:  filepath.Join(invalidDir, "invalid.log"),
			},
			wantErr: true,
		},
		{
			name: "invalid console level",
			cfg: logging.Config{
				Level:        "info",
				Path:         filepath.Join(invalidDir, "console.log"),
				ConsoleLevel: "nope",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Note: No t.Parallel() - these tests modify global state

			err := logging.Init(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Init() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if err == nil {
				if closeErr := logging.Close(); closeErr != nil {
					t.Errorf("Close() error = %v", closeErr)
				}
			}
		})
	}
}

func TestGet_WritesToFile(t *testing.T) {
	// No t.Parallel() - uses global state

	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "test.log")

	if err := logging.Init(logging.Config{Level: "info", Path: logPath}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer func() { _ = logging.Close() }()

	logger := logging.Get("engine")
	logger.Info("deletion started", "root", "/tmp/x")
	logger.Debug("should be filtered at info level")

	if err := logging.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "deletion started") {
		t.Errorf("log file missing info line, got: %q", content)
	}
	if strings.Contains(content, "should be filtered") {
		t.Errorf("debug line should be filtered at info level, got: %q", content)
	}
}

func TestGet_ComponentLevelOverride(t *testing.T) {
	// No t.Parallel() - uses global state

	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "test.log")

	cfg := logging.Config{
		Level: "error",
		Path:  logPath,
		Components: map[string]string{
			"engine": "debug",
		},
	}
	if err := logging.Init(cfg); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer func() { _ = logging.Close() }()

	logging.Get("engine").Debug("engine debug line")
	logging.Get("other").Info("other info line")

	if err := logging.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "engine debug line") {
		t.Error("engine debug line should pass with component override")
	}
	if strings.Contains(content, "other info line") {
		t.Error("other info line should be filtered at error level")
	}
}

func TestGet_SameInstanceForComponent(t *testing.T) {
	// No t.Parallel() - uses global state

	a := logging.Get("engine")
	b := logging.Get("engine")
	if a != b {
		t.Error("Get() should return the same logger for one component")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    logging.Level
		wantErr bool
	}{
		{"debug", logging.LevelDebug, false},
		{"info", logging.LevelInfo, false},
		{"warn", logging.LevelWarn, false},
		{"warning", logging.LevelWarn, false},
		{"error", logging.LevelError, false},
		{"ERROR", logging.LevelError, false},
		{"bogus", logging.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := logging.ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level logging.Level
		want  string
	}{
		{logging.LevelDebug, "debug"},
		{logging.LevelInfo, "info"},
		{logging.LevelWarn, "warn"},
		{logging.LevelError, "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
