package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	WebListen   *string `yaml:"webListen" validate:"required"`
	ProjectRoot *string `yaml:"projectRoot" validate:"required"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew(t *testing.T) {
	path := writeConfig(t, "webListen: 0.0.0.0:3000\nprojectRoot: /data/projects\n")

	conf, err := New[testConfig](path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:3000", *conf.WebListen)
	assert.Equal(t, "/data/projects", *conf.ProjectRoot)
}

func TestNewTemplatesEnv(t *testing.T) {
	t.Setenv("CPROJECT_LISTEN", "127.0.0.1:8080")
	path := writeConfig(t, "webListen: \"{{ env.CPROJECT_LISTEN }}\"\nprojectRoot: /data\n")

	conf, err := New[testConfig](path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", *conf.WebListen)
}

func TestNewTemplateFallback(t *testing.T) {
	path := writeConfig(t, "webListen: \"{{ env.CPROJECT_UNSET_LISTEN || \\\"0.0.0.0:3000\\\" }}\"\nprojectRoot: /data\n")

	conf, err := New[testConfig](path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:3000", *conf.WebListen)
}

func TestNewInvalid(t *testing.T) {
	path := writeConfig(t, "webListen: 0.0.0.0:3000\n")

	_, err := New[testConfig](path)
	assert.Error(t, err)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New[testConfig](filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
