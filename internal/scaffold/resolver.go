package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	ferrors "github.com/expressforge/cli/internal/errors"
)

// ValidateProjectName checks that a name is usable as a directory name
// directly under the working directory.
func ValidateProjectName(name string) error {
	if name == "" {
		return ferrors.NewInvalidNameError(
			"project name cannot be empty",
			"Pass a project name: expressforge new <name>",
		)
	}

	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return ferrors.NewInvalidNameError(
			fmt.Sprintf("project name %q contains a path separator", name),
			"Use a plain directory name without slashes.",
		)
	}

	if name == "." || name == ".." {
		return ferrors.NewInvalidNameError(
			fmt.Sprintf("project name %q is a relative path segment", name),
			"Use a plain directory name.",
		)
	}

	return nil
}

// Resolve validates a request and assembles the full generation plan.
// It is pure: no filesystem access beyond joining baseDir, and it either
// returns a complete plan or an error, never a partial one.
func Resolve(req Request, baseDir string) (*Plan, error) {
	if err := ValidateProjectName(req.ProjectName); err != nil {
		return nil, err
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolving base directory: %w", err)
	}

	plan := &Plan{
		ProjectName: req.ProjectName,
		TargetDir:   filepath.Join(absBase, req.ProjectName),
	}

	data := dataFor(req)
	useSrc := req.UseSrcRoot()

	// Directories first: the optional src root, then the architecture
	// folders, so every later file has its parent in place.
	codePrefix := ""
	if useSrc {
		codePrefix = "src/"
		plan.Dirs = append(plan.Dirs, "src")
	}
	for _, folder := range Folders(req.Architecture) {
		plan.Dirs = append(plan.Dirs, codePrefix+folder)
	}

	// Metadata files at the project root.
	plan.Files = append(plan.Files,
		File{Path: ".gitignore", Content: []byte(gitignoreContent)},
		File{Path: ".env", Content: []byte(envContent)},
	)

	pkg, err := packageJSON(req)
	if err != nil {
		return nil, err
	}
	plan.Files = append(plan.Files, File{Path: "package.json", Content: pkg})

	if req.Language == LangTyped {
		ts, err := tsconfigJSON()
		if err != nil {
			return nil, err
		}
		plan.Files = append(plan.Files, File{Path: "tsconfig.json", Content: ts})
	}

	if req.DevReload {
		nd, err := nodemonJSON(req)
		if err != nil {
			return nil, err
		}
		plan.Files = append(plan.Files, File{Path: "nodemon.json", Content: nd})
	}

	readme, err := renderAsset("assets/common/README.md.tmpl", data)
	if err != nil {
		return nil, err
	}
	plan.Files = append(plan.Files, File{Path: "README.md", Content: readme})

	// Code files under the code root, in registry order.
	entries := coreEntries(req)
	if req.StarterResource {
		entries = append(entries, starterEntries(req)...)
	}
	for _, e := range entries {
		content, err := renderAsset(e.asset, data)
		if err != nil {
			return nil, err
		}
		plan.Files = append(plan.Files, File{Path: codePrefix + e.relPath, Content: content})
	}

	if err := checkPlan(plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// checkPlan verifies the plan invariants: no path escapes the target and
// every file parent is created before the file.
func checkPlan(plan *Plan) error {
	created := map[string]bool{".": true}
	for _, d := range plan.Dirs {
		clean := filepath.ToSlash(filepath.Clean(d))
		if escapesTarget(clean) {
			return fmt.Errorf("plan directory %q escapes the target directory", d)
		}
		parent := parentDir(clean)
		if !created[parent] {
			return fmt.Errorf("plan directory %q is ordered before its parent %q", d, parent)
		}
		created[clean] = true
	}

	for _, f := range plan.Files {
		clean := filepath.ToSlash(filepath.Clean(f.Path))
		if escapesTarget(clean) {
			return fmt.Errorf("plan file %q escapes the target directory", f.Path)
		}
		if parent := parentDir(clean); !created[parent] {
			return fmt.Errorf("plan file %q has no created parent directory %q", f.Path, parent)
		}
	}

	return nil
}

func escapesTarget(clean string) bool {
	return clean == ".." || strings.HasPrefix(clean, "../") || filepath.IsAbs(clean)
}

func parentDir(clean string) string {
	return filepath.ToSlash(filepath.Dir(clean))
}
