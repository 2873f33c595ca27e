package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_url": "https://api.edufunds.example",
		"database_path": "/var/lib/edufunds.db",
		"request_timeout": "30s",
		"search_debounce": "250ms"
	}`), 0o600))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://api.edufunds.example", c.BaseURL)
	assert.Equal(t, "/var/lib/edufunds.db", c.DatabasePath)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, c.SearchDebounce)
	// Not present in the file, so the default survives.
	assert.Equal(t, 3*time.Minute, c.GenerateTimeout)
}

func TestParseJson_NoFileGiven(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://127.0.0.1:8000", c.BaseURL)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-c", filepath.Join(t.TempDir(), "missing.json")}

	var c Config
	c.LoadDefaults()
	require.Panics(t, func() { parseJson(&c) })
}
