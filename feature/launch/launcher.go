package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// Launcher starts the server process as the container's foreground process.
type Launcher struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a new launcher.
func New(cfg Config, logger *zap.Logger) *Launcher {
	return &Launcher{
		cfg:    cfg,
		logger: logger,
	}
}

// Run resolves the listen port, starts exactly one server process and waits
// for it. Stop signals are forwarded to the server process; its exit code is
// returned and becomes the launcher's own. There is no retry, restart or
// health check here: supervision belongs to the orchestrator.
func (l *Launcher) Run(ctx context.Context) (int, error) {
	port := ResolvePort()

	l.logger.Info("Starting server process",
		zap.String("program", l.cfg.Program),
		zap.String("app", l.cfg.App),
		zap.String("host", l.cfg.Host),
		zap.String("port", port),
	)

	cmd := exec.CommandContext(ctx, l.cfg.Program, l.cfg.Args(port)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("failed to start server process: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	for {
		select {
		case sig := <-sigCh:
			// The container lifecycle is the server's lifecycle; pass the
			// stop signal through and keep waiting for the process to exit.
			_ = cmd.Process.Signal(sig)
		case err := <-done:
			if err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					return exitErr.ExitCode(), fmt.Errorf("server process exited with code %d", exitErr.ExitCode())
				}
				return 1, fmt.Errorf("server process failed: %w", err)
			}
			return 0, nil
		}
	}
}
