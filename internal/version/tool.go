package version

import (
	"bytes"
	"os/exec"
	"regexp"
	"strings"
)

// toolVersionRegex matches version output like "v22.11.0" or "git version 2.47.0".
var toolVersionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// BinaryInfo describes an external tool the CLI may invoke.
type BinaryInfo struct {
	// Name is the binary name (node, git, npm).
	Name string

	// Path is the resolved path in PATH.
	Path string

	// Version is the detected version (with "v" prefix), if found.
	Version string

	// Found reports whether the binary is in PATH.
	Found bool
}

// DetectBinary finds a binary in PATH and extracts its version from
// `<binary> --version` output.
func DetectBinary(name string) BinaryInfo {
	path, err := exec.LookPath(name)
	if err != nil {
		return BinaryInfo{Name: name, Found: false}
	}

	info := BinaryInfo{Name: name, Path: path, Found: true}

	version, err := getToolVersion(path)
	if err == nil {
		info.Version = version
	}

	return info
}

// getToolVersion executes '<tool> --version' and extracts the version string.
func getToolVersion(path string) (string, error) {
	cmd := exec.Command(path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractVersion(out.String())
}

// extractVersion extracts the version number from tool output.
func extractVersion(output string) (string, error) {
	match := toolVersionRegex.FindString(output)
	if match == "" {
		lines := strings.Split(output, "\n")
		if len(lines) > 0 {
			match = toolVersionRegex.FindString(lines[0])
		}
	}

	if match == "" {
		return "", &versionParseError{output: output}
	}

	if !strings.HasPrefix(match, "v") {
		match = "v" + match
	}

	return match, nil
}

// versionParseError indicates failure to parse tool version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse version from output: " + e.output
}
