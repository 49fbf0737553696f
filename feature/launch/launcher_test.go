package launch_test

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"launchpad/feature/launch"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// freePort asks the kernel for an unused TCP port.
func freePort(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return strconv.Itoa(port)
}

func TestResolvedPortReachable(t *testing.T) {
	port := freePort(t)
	t.Setenv(launch.PortVar, port)

	resolved := launch.ResolvePort()
	require.Equal(t, port, resolved)

	// A stand-in for the external application object: any HTTP server bound
	// to the resolved port.
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	go func() {
		_ = app.Listen("0.0.0.0:" + resolved)
	}()
	defer func() {
		_ = app.Shutdown()
	}()

	var resp *http.Response
	var err error
	for i := 0; i < 100; i++ {
		resp, err = http.Get("http://127.0.0.1:" + resolved + "/")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLauncher_Run(t *testing.T) {
	logger := zap.NewNop()
	t.Setenv(launch.PortVar, "12000")

	t.Run("CleanExit", func(t *testing.T) {
		// "true" ignores its arguments and exits 0, standing in for a server
		// that shut down cleanly.
		l := launch.New(launch.Config{Program: "true", App: "app:app", Host: "0.0.0.0"}, logger)
		code, err := l.Run(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, code)
	})

	t.Run("FailureExitCodePropagated", func(t *testing.T) {
		l := launch.New(launch.Config{Program: "false", App: "app:app", Host: "0.0.0.0"}, logger)
		code, err := l.Run(context.Background())
		assert.Error(t, err)
		assert.NotEqual(t, 0, code)
	})

	t.Run("MissingProgram", func(t *testing.T) {
		l := launch.New(launch.Config{Program: "definitely-not-installed-anywhere", App: "app:app", Host: "0.0.0.0"}, logger)
		code, err := l.Run(context.Background())
		assert.Error(t, err)
		assert.Equal(t, 1, code)
	})
}
