package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	ferrors "github.com/expressforge/cli/internal/errors"
	"github.com/expressforge/cli/internal/output"
)

// Materialize realizes a plan on disk: target directory, then every planned
// directory, then every planned file, strictly in plan order.
//
// The target must be absent or an empty directory. On failure mid-sequence
// the partial output is left in place and the returned error says so; there
// is no rollback.
func Materialize(plan *Plan) error {
	if err := checkTarget(plan.TargetDir); err != nil {
		return err
	}

	if err := os.MkdirAll(plan.TargetDir, 0o755); err != nil {
		return ferrors.NewWriteError(
			fmt.Sprintf("creating target directory: %v", err),
			plan.TargetDir, err)
	}

	for _, dir := range plan.Dirs {
		path := filepath.Join(plan.TargetDir, dir)
		if err := os.Mkdir(path, 0o755); err != nil && !os.IsExist(err) {
			return ferrors.NewWriteError(
				fmt.Sprintf("creating directory %s: %v", dir, err),
				plan.TargetDir, err)
		}
		output.Debug("created directory", "path", dir)
	}

	for _, f := range plan.Files {
		path := filepath.Join(plan.TargetDir, f.Path)
		if err := writeFileAtomic(path, f.Content); err != nil {
			return ferrors.NewWriteError(
				fmt.Sprintf("writing %s: %v", f.Path, err),
				plan.TargetDir, err)
		}
		output.Debug("created file", "path", f.Path)
	}

	return nil
}

// checkTarget rejects a pre-existing, non-empty target directory. An absent
// or empty directory is acceptable. This is a precondition check, not a
// lock: concurrent runs against the same path are not supported.
func checkTarget(targetDir string) error {
	info, err := os.Stat(targetDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return ferrors.NewWriteError(
			fmt.Sprintf("checking target directory: %v", err),
			targetDir, err)
	}

	if !info.IsDir() {
		return ferrors.NewTargetExistsError(
			fmt.Sprintf("%s exists and is not a directory", targetDir),
			targetDir,
			"Choose a different project name.")
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return ferrors.NewWriteError(
			fmt.Sprintf("reading target directory: %v", err),
			targetDir, err)
	}

	if len(entries) > 0 {
		return ferrors.NewTargetExistsError(
			fmt.Sprintf("directory already contains %d entries", len(entries)),
			targetDir,
			"Choose a different project name or remove the existing directory.")
	}

	return nil
}

// writeFileAtomic writes content to path via a temp file in the same
// directory followed by a rename, so a failed write never leaves a partial
// file at the final path.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}
