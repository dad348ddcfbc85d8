package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/mattn/go-shellwords"
)

// ViewerCommand parses a viewer command line and appends path as its last
// argument.
func ViewerCommand(cmdline, path string) ([]string, error) {
	args, err := shellwords.Parse(cmdline)
	if err != nil {
		return nil, fmt.Errorf("parsing viewer command %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("viewer command %q is empty", cmdline)
	}

	return append(args, path), nil
}

// LaunchViewer runs the viewer command line on path and waits for it to
// exit. An empty command line does nothing.
func LaunchViewer(ctx context.Context, cmdline, path string) error {
	if cmdline == "" {
		return nil
	}

	args, err := ViewerCommand(cmdline, path)
	if err != nil {
		return err
	}

	slog.Info("launching viewer", "cmd", args)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("viewer %s: %w", args[0], err)
	}

	return nil
}
