package runner

import (
	"context"
	"fmt"
	"io"
	"os"
)

// PackageManager wraps calls to an external Node package manager.
type PackageManager struct {
	// Name is the binary name: npm, yarn or pnpm. Defaults to npm.
	Name string

	// Stdout for install output. If nil, os.Stdout is used.
	Stdout io.Writer

	// Stderr for install errors. If nil, os.Stderr is used.
	Stderr io.Writer
}

// NewPackageManager creates a wrapper for the named package manager.
// An empty name selects npm.
func NewPackageManager(name string) *PackageManager {
	if name == "" {
		name = "npm"
	}
	return &PackageManager{Name: name}
}

// InstallArgs builds the install invocation for a package manager. npm uses
// `install`, yarn and pnpm use `add`; the dev flag differs per manager.
func InstallArgs(name string, packages []string, dev bool) []string {
	verb := "install"
	devFlag := "--save-dev"
	switch name {
	case "yarn":
		verb = "add"
		devFlag = "--dev"
	case "pnpm":
		verb = "add"
	}

	args := []string{verb}
	args = append(args, packages...)
	if dev {
		args = append(args, devFlag)
	}
	return args
}

// Install runs one install phase in dir. Runtime and development installs
// are separate calls; the caller sequences them so a failure is attributable
// to the right phase.
func (p *PackageManager) Install(ctx context.Context, dir string, packages []string, dev bool) error {
	if len(packages) == 0 {
		return nil
	}

	args := InstallArgs(p.name(), packages, dev)
	if err := run(ctx, p.name(), dir, p.stdout(), p.stderr(), args...); err != nil {
		phase := "runtime"
		if dev {
			phase = "development"
		}
		return fmt.Errorf("%s dependency install: %w", phase, err)
	}

	return nil
}

func (p *PackageManager) name() string {
	if p.Name != "" {
		return p.Name
	}
	return "npm"
}

func (p *PackageManager) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}

func (p *PackageManager) stderr() io.Writer {
	if p.Stderr != nil {
		return p.Stderr
	}
	return os.Stderr
}
