package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONFormatter_Format(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, testResult())
	require.NoError(t, err)

	// Should be valid JSON
	var parsed map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	assert.Equal(t, "/home/user/project/node_modules", parsed["root"])
	assert.Equal(t, false, parsed["dry_run"])

	summary := parsed["summary"].(map[string]interface{})
	assert.Equal(t, float64(12345), summary["files_deleted"])
	assert.Equal(t, float64(678), summary["dirs_deleted"])
	assert.Equal(t, float64(2), summary["errors"])
	assert.Equal(t, "1.5 GiB", summary["bytes_human"])

	meta := parsed["meta"].(map[string]interface{})
	warnings := meta["warnings"].([]interface{})
	assert.Len(t, warnings, 1)
}

func TestJSONFormatter_Format_NoWarnings(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	r := testResult()
	r.Warnings = nil

	err := formatter.Format(&buf, r)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "warnings")
}

func TestYAMLFormatter_Format(t *testing.T) {
	formatter := &YAMLFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, testResult())
	require.NoError(t, err)

	var parsed map[string]interface{}
	err = yaml.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	assert.Equal(t, "/home/user/project/node_modules", parsed["root"])

	summary := parsed["summary"].(map[string]interface{})
	assert.Equal(t, 12345, summary["files_deleted"])
	assert.Equal(t, "3.2s", summary["duration"])
}
