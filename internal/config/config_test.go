package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 10, cfg.GridPageSize)
	assert.Equal(t, 1000, cfg.Styling.MaxTokens)
	assert.Equal(t, "https://api.anthropic.com/v1", cfg.Styling.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.Styling.Timeout())
}

func TestLoadAppliesDefaultsToOmittedFields(t *testing.T) {
	path := writeConfig(t, "listen_addr: \":9090\"\nstyling:\n  max_tokens: 500\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 500, cfg.Styling.MaxTokens)
	assert.Equal(t, 10, cfg.GridPageSize)
	assert.Equal(t, Default().Styling.Model, cfg.Styling.Model)
	assert.Equal(t, "420px", cfg.Charts.Height)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":7000"
grid_page_size: 25
charts:
  width: "900px"
  height: "300px"
styling:
  model: some-model
  max_tokens: 1000
  base_url: http://localhost:9999/v1
  timeout_seconds: 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.GridPageSize)
	assert.Equal(t, "900px", cfg.Charts.Width)
	assert.Equal(t, "some-model", cfg.Styling.Model)
	assert.Equal(t, "http://localhost:9999/v1", cfg.Styling.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Styling.Timeout())
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "listen_addr: \":9090\"\napi_key: secret\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantSub string
	}{
		{"negative page size", "grid_page_size: -1\n", "grid_page_size"},
		{"negative max tokens", "styling:\n  max_tokens: -5\n", "max_tokens"},
		{"bad base url", "styling:\n  base_url: ftp://example.com\n", "base_url"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
