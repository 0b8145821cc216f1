package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	content := `
site_name: Residencial Jardim das Acácias
service_types:
  - Elétrica
  - Gesso
poll_interval_seconds: 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Residencial Jardim das Acácias", cfg.SiteName)
	assert.Equal(t, []string{"Elétrica", "Gesso"}, cfg.ServiceTypes)
	assert.Equal(t, 30, cfg.PollIntervalSeconds)
	// Unset field keeps its default.
	assert.Equal(t, Default().MaxPhotoBytes, cfg.MaxPhotoBytes)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site_name: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
