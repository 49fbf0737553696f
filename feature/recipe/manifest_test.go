package recipe_test

import (
	"os"
	"path/filepath"
	"testing"

	"launchpad/feature/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadManifest(t *testing.T) {
	t.Run("PackagesParsed", func(t *testing.T) {
		path := writeManifest(t, "fastapi\nuvicorn[standard]\npydantic>=2\n")

		m, err := recipe.LoadManifest(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"fastapi", "uvicorn[standard]", "pydantic>=2"}, m.Packages)
		assert.Len(t, m.Digest, 64)
	})

	t.Run("CommentsAndBlanksSkipped", func(t *testing.T) {
		path := writeManifest(t, "# web framework\nfastapi\n\n  # server\nuvicorn\n\n")

		m, err := recipe.LoadManifest(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"fastapi", "uvicorn"}, m.Packages)
	})

	t.Run("DigestTracksContent", func(t *testing.T) {
		a, err := recipe.LoadManifest(writeManifest(t, "fastapi\n"))
		require.NoError(t, err)
		b, err := recipe.LoadManifest(writeManifest(t, "fastapi\nuvicorn\n"))
		require.NoError(t, err)

		assert.NotEqual(t, a.Digest, b.Digest)
	})

	t.Run("MissingFile", func(t *testing.T) {
		m, err := recipe.LoadManifest(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
		assert.Nil(t, m)
	})

	t.Run("EmptyManifest", func(t *testing.T) {
		m, err := recipe.LoadManifest(writeManifest(t, "# nothing declared\n\n"))
		assert.Error(t, err)
		assert.Nil(t, m)
	})
}
