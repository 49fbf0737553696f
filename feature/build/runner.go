package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Runner executes a container-tool command, streaming combined output to the
// given writer. Implementations return an error on any non-zero exit.
type Runner interface {
	Run(ctx context.Context, output io.Writer, name string, args ...string) error
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, output io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = output
	cmd.Stderr = output

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with code %d", name, exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}
