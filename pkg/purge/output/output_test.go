package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *Result {
	return &Result{
		Root: "/home/user/project/node_modules",
		Summary: Summary{
			FilesDeleted: 12345,
			DirsDeleted:  678,
			Errors:       2,
			BytesFreed:   1536 * 1024 * 1024,
			Duration:     3200 * time.Millisecond,
		},
		Warnings: []string{
			"/home/user/project/node_modules/locked.txt: permission denied",
		},
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register("test", func() Formatter { return &PlainFormatter{} })

	f, err := r.Get("test")
	require.NoError(t, err)
	assert.NotNil(t, f)

	_, err = r.Get("missing")
	assert.Error(t, err)
}

func TestRegistry_Available(t *testing.T) {
	r := NewRegistry()
	r.Register("b", func() Formatter { return &PlainFormatter{} })
	r.Register("a", func() Formatter { return &PlainFormatter{} })

	assert.Equal(t, []string{"a", "b"}, r.Available())
}

func TestDefaultRegistry_HasAllFormatters(t *testing.T) {
	for _, name := range []string{"pretty", "plain", "json", "yaml"} {
		f, err := Get(name)
		require.NoError(t, err, "formatter %q should be registered", name)
		assert.NotNil(t, f)
	}
}

func TestSummary_BytesHuman(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"one kib", 1024, "1.0 KiB"},
		{"fractional mib", 1536 * 1024, "1.5 MiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summary{BytesFreed: tt.bytes}
			assert.Equal(t, tt.want, s.BytesHuman())
		})
	}
}

func TestPlainFormatter_Format(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, testResult())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "files_deleted 12345")
	assert.Contains(t, out, "dirs_deleted")
	assert.Contains(t, out, "errors")
	assert.Contains(t, out, "/home/user/project/node_modules")
	assert.NotContains(t, out, "dry_run")
}

func TestPlainFormatter_Format_DryRun(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	r := testResult()
	r.DryRun = true

	err := formatter.Format(&buf, r)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dry_run true")
}

func TestPrettyFormatter_Format(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, testResult())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "node_modules")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "1.5 GiB")
	assert.Contains(t, out, "Warnings:")
	assert.Contains(t, out, "completed with 2 errors")
}

func TestPrettyFormatter_Format_CleanRun(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	r := testResult()
	r.Summary.Errors = 0
	r.Warnings = nil

	err := formatter.Format(&buf, r)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "deletion completed")
	assert.NotContains(t, out, "Warnings:")
	assert.NotContains(t, out, "Errors:")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"milliseconds", 250 * time.Millisecond, "250ms"},
		{"seconds", 3200 * time.Millisecond, "3.2s"},
		{"minutes", 90 * time.Second, "1m 30s"},
		{"hours", 3*time.Hour + 5*time.Minute, "3h 5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}
