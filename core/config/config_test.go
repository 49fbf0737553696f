package config_test

import (
	"testing"

	"launchpad/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "python:3.11-slim", cfg.Build.BaseImage)
	assert.Equal(t, "requirements.txt", cfg.Build.Manifest)
	assert.Equal(t, "app.py", cfg.Build.AppFile)
	assert.Equal(t, "docker", cfg.Build.Tool)

	assert.Equal(t, "uvicorn", cfg.Launch.Program)
	assert.Equal(t, "app:app", cfg.Launch.App)
	assert.Equal(t, "0.0.0.0", cfg.Launch.Host)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BUILD_TAG", "lemmatizer:v3")
	t.Setenv("LAUNCH_PROGRAM", "gunicorn")
	t.Setenv("STORAGE_BUCKET", "release-images")
	t.Setenv("DATABASE_DRIVER", "mysql")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "lemmatizer:v3", cfg.Build.Tag)
	assert.Equal(t, "gunicorn", cfg.Launch.Program)
	assert.Equal(t, "release-images", cfg.Storage.Bucket)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}
