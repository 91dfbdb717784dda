package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/expressforge/cli/internal/config"
	ferrors "github.com/expressforge/cli/internal/errors"
	"github.com/expressforge/cli/internal/output"
	"github.com/expressforge/cli/internal/prompt"
	"github.com/expressforge/cli/internal/runner"
	"github.com/expressforge/cli/internal/scaffold"
	"github.com/expressforge/cli/internal/version"
)

var (
	newLanguage string
	newArch     string
	newAnswers  string
	newYes      bool
)

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Scaffold a new Express project",
		Long: `Scaffold a new Express project in the current directory.

The project name becomes the target directory. Everything else is gathered
interactively, or from flags, an answers file, or your config defaults.

Examples:
  # Create a project, answering prompts interactively
  expressforge new my-app

  # Create a TypeScript project with the layered architecture, no prompts
  expressforge new my-app --language typed --arch layered --yes

  # Create a project from an answers file (CI friendly)
  expressforge new my-app --answers answers.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runNew,
	}

	cmd.Flags().StringVarP(&newLanguage, "language", "l", "", "language variant (typed, untyped)")
	cmd.Flags().StringVarP(&newArch, "arch", "a", "", "architecture style (simple, layered)")
	cmd.Flags().StringVar(&newAnswers, "answers", "", "path to a YAML answers file (skips prompts)")
	cmd.Flags().BoolVarP(&newYes, "yes", "y", false, "accept defaults, skip prompts")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig
	if cfg == nil {
		cfg = &config.Config{}
		cfg.ApplyDefaults()
	}

	req := scaffold.Request{
		ProjectName:  args[0],
		Language:     scaffold.Language(cfg.DefaultLanguage),
		Architecture: scaffold.Architecture(cfg.DefaultArchitecture),
		GitInit:      cfg.GitInit,
	}

	if newLanguage != "" {
		req.Language = scaffold.Language(newLanguage)
	}
	if newArch != "" {
		req.Architecture = scaffold.Architecture(newArch)
	}

	switch {
	case newAnswers != "":
		a, err := config.LoadAnswers(newAnswers)
		if err != nil {
			return err
		}
		a.Apply(&req)
	case newYes || !output.IsTTY():
		// keep defaults
	default:
		if err := prompt.Ask(&req); err != nil {
			return ferrors.NewExitError(err, ExitGeneralError)
		}
	}

	if !req.Language.Valid() {
		return fmt.Errorf("unknown language %q (valid: typed, untyped)", req.Language)
	}
	if !req.Architecture.Valid() {
		return fmt.Errorf("unknown architecture %q (valid: simple, layered)", req.Architecture)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	plan, err := scaffold.Resolve(req, cwd)
	if err != nil {
		return err
	}

	output.Debug("resolved plan",
		"target", plan.TargetDir,
		"dirs", len(plan.Dirs),
		"files", len(plan.Files))

	if err := scaffold.Materialize(plan); err != nil {
		return err
	}

	printResult(req, plan)
	runPostActions(cmd.Context(), req, plan, cfg)

	return nil
}

// printResult prints the success checkmark and the created file tree.
func printResult(req scaffold.Request, plan *scaffold.Plan) {
	output.Println("")
	output.Println(output.FormatCheckmark(
		fmt.Sprintf("Created project %s in %s", req.ProjectName, plan.TargetDir)))
	output.Println("")

	entries := make([]output.TreeEntry, 0, len(plan.Dirs)+len(plan.Files))
	for _, f := range plan.Files {
		entries = append(entries, output.TreeEntry{
			Path:        f.Path,
			Description: fileDescription(f.Path),
		})
	}
	for _, d := range plan.Dirs {
		entries = append(entries, output.TreeEntry{Path: d, IsDir: true})
	}

	output.Print(output.RenderFileTree(req.ProjectName, entries))
}

// runPostActions performs the optional git init and dependency installs.
// Failures here are warnings: generation has already succeeded.
func runPostActions(ctx context.Context, req scaffold.Request, plan *scaffold.Plan, cfg *config.Config) {
	if req.GitInit {
		git := runner.NewGit()
		err := output.RunWithSpinner(ctx, func() error {
			return git.Init(ctx, plan.TargetDir)
		}, output.WithTitle("Initializing git repository..."))
		if err != nil {
			output.Warn("git init failed; generated files are intact", "error", err)
		} else {
			output.Println(output.FormatCheckmark("Initialized git repository"))
		}
	}

	if !req.InstallDeps {
		output.Println("")
		output.Println("To install dependencies later:")
		output.Println(output.FormatCommand(scaffold.InstallHint(req, cfg.PackageManager)))
		return
	}

	if node := version.DetectBinary("node"); !node.Found {
		output.Warn("node not found in PATH; installs may fail")
	}

	pm := runner.NewPackageManager(cfg.PackageManager)

	err := output.RunWithSpinner(ctx, func() error {
		return pm.Install(ctx, plan.TargetDir, scaffold.RuntimeDependencies(), false)
	}, output.WithTitle("Installing dependencies..."))
	if err != nil {
		output.Warn("dependency install failed; generated files are intact",
			"error", err,
			"hint", scaffold.InstallHint(req, cfg.PackageManager))
	} else {
		output.Println(output.FormatCheckmark("Installed dependencies"))
	}

	devDeps := scaffold.DevDependencies(req)
	if len(devDeps) == 0 {
		return
	}

	err = output.RunWithSpinner(ctx, func() error {
		return pm.Install(ctx, plan.TargetDir, devDeps, true)
	}, output.WithTitle("Installing dev dependencies..."))
	if err != nil {
		output.Warn("dev dependency install failed; generated files are intact", "error", err)
	} else {
		output.Println(output.FormatCheckmark("Installed dev dependencies"))
	}
}

// fileDescription returns a short description for a generated file.
func fileDescription(path string) string {
	descriptions := map[string]string{
		".gitignore":    "Ignore rules",
		".env":          "Environment defaults",
		"package.json":  "Package descriptor",
		"tsconfig.json": "TypeScript config",
		"nodemon.json":  "Dev reload config",
		"README.md":     "Project readme",
	}

	if desc, ok := descriptions[path]; ok {
		return desc
	}

	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, "app."):
		return "Application entry point"
	case strings.HasPrefix(base, "user.model."):
		return "User data access"
	case strings.HasPrefix(base, "user.controller."):
		return "User request handlers"
	case strings.HasPrefix(base, "user.routes."):
		return "User routes"
	}

	return ""
}
