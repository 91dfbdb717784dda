package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/expressforge/cli/internal/scaffold"
)

// Answers is a non-interactive answers file for `expressforge new`.
// It covers everything the prompts would ask.
type Answers struct {
	Language        string `yaml:"language"`
	Architecture    string `yaml:"architecture"`
	DevReload       bool   `yaml:"devReload"`
	StarterResource bool   `yaml:"starterResource"`
	GitInit         bool   `yaml:"gitInit"`
	InstallDeps     bool   `yaml:"installDeps"`
}

// LoadAnswers reads and validates an answers file.
func LoadAnswers(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}

	var a Answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing answers file %s: %w", path, err)
	}

	if a.Language != "" && !scaffold.Language(a.Language).Valid() {
		return nil, fmt.Errorf("answers file %s: unknown language %q (want typed or untyped)", path, a.Language)
	}
	if a.Architecture != "" && !scaffold.Architecture(a.Architecture).Valid() {
		return nil, fmt.Errorf("answers file %s: unknown architecture %q (want simple or layered)", path, a.Architecture)
	}

	return &a, nil
}

// Apply copies the answers onto a request, leaving unset enum fields alone.
func (a *Answers) Apply(req *scaffold.Request) {
	if a.Language != "" {
		req.Language = scaffold.Language(a.Language)
	}
	if a.Architecture != "" {
		req.Architecture = scaffold.Architecture(a.Architecture)
	}
	req.DevReload = a.DevReload
	req.StarterResource = a.StarterResource
	req.GitInit = a.GitInit
	req.InstallDeps = a.InstallDeps
}
