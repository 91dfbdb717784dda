// Package runner wraps the external binaries invoked after generation:
// git for repository init and the package manager for dependency installs.
// All invocations are best-effort from the caller's point of view; a failure
// here never undoes generated files.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	ferrors "github.com/expressforge/cli/internal/errors"
)

// ErrBinaryNotFound is returned when the external binary is not in PATH.
var ErrBinaryNotFound = errors.New("binary not found in PATH")

// Git wraps calls to the external git binary.
type Git struct {
	// Path is the path to the git binary. If empty, "git" is used from PATH.
	Path string

	// Stdout for git command output. If nil, os.Stdout is used.
	Stdout io.Writer

	// Stderr for git command errors. If nil, os.Stderr is used.
	Stderr io.Writer
}

// NewGit creates a new Git wrapper using "git" from PATH.
func NewGit() *Git {
	return &Git{Path: "git"}
}

// Init runs `git init` rooted at dir.
func (g *Git) Init(ctx context.Context, dir string) error {
	return run(ctx, g.path(), dir, g.stdout(), g.stderr(), "init")
}

func (g *Git) path() string {
	if g.Path != "" {
		return g.Path
	}
	return "git"
}

func (g *Git) stdout() io.Writer {
	if g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}

func (g *Git) stderr() io.Writer {
	if g.Stderr != nil {
		return g.Stderr
	}
	return os.Stderr
}

// run executes a command in dir, mapping failures to ErrExternalAction so
// callers can treat the whole category as a warning.
func run(ctx context.Context, bin, dir string, stdout, stderr io.Writer, args ...string) error {
	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("%s: %w: %w", bin, ErrBinaryNotFound, ferrors.ErrExternalAction)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s %s failed with exit code %d: %w",
				bin, strings.Join(args, " "), exitErr.ExitCode(), ferrors.ErrExternalAction)
		}
		return fmt.Errorf("%s %s: %w: %w", bin, strings.Join(args, " "), err, ferrors.ErrExternalAction)
	}

	return nil
}
