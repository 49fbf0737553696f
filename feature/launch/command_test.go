package launch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultConfig() Config {
	return Config{
		Program: "uvicorn",
		App:     "app:app",
		Host:    "0.0.0.0",
	}
}

func TestConfig_Args(t *testing.T) {
	cfg := defaultConfig()

	t.Run("ResolvedPort", func(t *testing.T) {
		assert.Equal(t,
			[]string{"app:app", "--host", "0.0.0.0", "--port", "8080"},
			cfg.Args("8080"))
	})

	t.Run("VerbatimMalformedPort", func(t *testing.T) {
		// No sanitization between resolution and the server's argv.
		assert.Equal(t,
			[]string{"app:app", "--host", "0.0.0.0", "--port", "abc"},
			cfg.Args("abc"))
	})
}

func TestConfig_ShellCommand(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t,
		"uvicorn app:app --host 0.0.0.0 --port ${PORT:-10000}",
		cfg.ShellCommand())
}
