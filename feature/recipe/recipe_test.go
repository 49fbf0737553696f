package recipe_test

import (
	"strings"
	"testing"

	"launchpad/feature/launch"
	"launchpad/feature/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecipe() recipe.Recipe {
	return recipe.Recipe{
		BaseImage: "python:3.11-slim",
		Manifest:  "requirements.txt",
		Install:   "pip install --no-cache-dir -r requirements.txt",
		AppFile:   "app.py",
		Port:      launch.DefaultPort,
		Command:   launch.Config{Program: "uvicorn", App: "app:app", Host: "0.0.0.0"}.ShellCommand(),
	}
}

func TestRecipe_Render(t *testing.T) {
	rendered := testRecipe().Render()

	t.Run("DependencyLayerBeforeApplicationLayer", func(t *testing.T) {
		install := strings.Index(rendered, "RUN pip install")
		appCopy := strings.Index(rendered, "COPY app.py")
		require.NotEqual(t, -1, install)
		require.NotEqual(t, -1, appCopy)
		assert.Less(t, install, appCopy,
			"the manifest must be installed before the application file is added")
	})

	t.Run("ManifestCopiedBeforeInstall", func(t *testing.T) {
		manifestCopy := strings.Index(rendered, "COPY requirements.txt")
		install := strings.Index(rendered, "RUN pip install")
		require.NotEqual(t, -1, manifestCopy)
		assert.Less(t, manifestCopy, install)
	})

	t.Run("BaseImage", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(rendered, "FROM python:3.11-slim\n"))
	})

	t.Run("DeclaredPort", func(t *testing.T) {
		assert.Contains(t, rendered, "EXPOSE "+launch.DefaultPort+"\n")
	})

	t.Run("ShellFormStartCommand", func(t *testing.T) {
		assert.Contains(t, rendered,
			"CMD uvicorn app:app --host 0.0.0.0 --port ${PORT:-"+launch.DefaultPort+"}\n")
		// Exec form would skip the shell and break the PORT fallback.
		assert.NotContains(t, rendered, "CMD [")
	})
}

func TestRecipe_Validate(t *testing.T) {
	t.Run("Complete", func(t *testing.T) {
		assert.NoError(t, testRecipe().Validate())
	})

	mutations := []struct {
		name   string
		mutate func(*recipe.Recipe)
	}{
		{"MissingBaseImage", func(r *recipe.Recipe) { r.BaseImage = "" }},
		{"MissingManifest", func(r *recipe.Recipe) { r.Manifest = "" }},
		{"MissingInstall", func(r *recipe.Recipe) { r.Install = "" }},
		{"MissingAppFile", func(r *recipe.Recipe) { r.AppFile = "" }},
		{"MissingPort", func(r *recipe.Recipe) { r.Port = "" }},
		{"MissingCommand", func(r *recipe.Recipe) { r.Command = "" }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			r := testRecipe()
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}
