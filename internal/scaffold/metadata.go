package scaffold

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Fixed contents of the environment pair. The build-output directory is
// ignored even for the untyped variant, where it is simply never created.
const (
	gitignoreContent = "node_modules\ndist\n.env\n"
	envContent       = "PORT=5000\n"
)

// packageScripts is the scripts block of the package descriptor. Build is
// present only for the typed variant.
type packageScripts struct {
	Dev   string `json:"dev"`
	Build string `json:"build,omitempty"`
	Start string `json:"start"`
}

// packageDescriptor models package.json. Field order is the emitted key
// order. Type is "module" only for the untyped (ESM) variant; typed output
// compiles to CommonJS via tsc.
type packageDescriptor struct {
	Name    string         `json:"name"`
	Version string         `json:"version"`
	Type    string         `json:"type,omitempty"`
	Scripts packageScripts `json:"scripts"`
}

// nodemonConfig models nodemon.json, generated only when dev-reload is on.
// Exec is the command the dev script effectively runs.
type nodemonConfig struct {
	Watch  []string `json:"watch"`
	Ext    string   `json:"ext"`
	Ignore []string `json:"ignore"`
	Exec   string   `json:"exec"`
}

// tsconfigOptions models the compilerOptions block of tsconfig.json.
type tsconfigOptions struct {
	Target          string `json:"target"`
	Module          string `json:"module"`
	ModuleResolution string `json:"moduleResolution"`
	RootDir         string `json:"rootDir"`
	OutDir          string `json:"outDir"`
	Strict          bool   `json:"strict"`
	EsModuleInterop bool   `json:"esModuleInterop"`
	SkipLibCheck    bool   `json:"skipLibCheck"`
}

type tsconfig struct {
	CompilerOptions tsconfigOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
}

// entryPath returns the app entry point relative to the project root.
func entryPath(req Request) string {
	name := "app." + req.Language.Ext()
	if req.UseSrcRoot() {
		return "src/" + name
	}
	return name
}

// codeRoot returns the directory nodemon watches: src when in use, otherwise
// the project root.
func codeRoot(req Request) string {
	if req.UseSrcRoot() {
		return "src"
	}
	return "."
}

// runCommand is what executes the app in development without reload; it is
// also the nodemon exec command when reload is enabled.
func runCommand(req Request) string {
	if req.Language == LangTyped {
		return "ts-node " + entryPath(req)
	}
	return "node " + entryPath(req)
}

// packageJSON renders the package descriptor for a request.
func packageJSON(req Request) ([]byte, error) {
	scripts := packageScripts{
		Dev:   runCommand(req),
		Start: "node " + entryPath(req),
	}

	if req.DevReload {
		scripts.Dev = "nodemon"
	}

	if req.Language == LangTyped {
		scripts.Build = "tsc"
		scripts.Start = "node dist/app.js"
	}

	desc := packageDescriptor{
		Name:    req.ProjectName,
		Version: "1.0.0",
		Scripts: scripts,
	}
	if req.Language == LangUntyped {
		desc.Type = "module"
	}

	return marshalIndented(desc)
}

// nodemonJSON renders nodemon.json. Restart extensions follow the language
// variant; the build-output directory is never watched.
func nodemonJSON(req Request) ([]byte, error) {
	ext := "js,json"
	if req.Language == LangTyped {
		ext = "ts,js,json"
	}

	cfg := nodemonConfig{
		Watch:  []string{codeRoot(req)},
		Ext:    ext,
		Ignore: []string{"dist"},
		Exec:   runCommand(req),
	}

	return marshalIndented(cfg)
}

// tsconfigJSON renders tsconfig.json for the typed variant.
func tsconfigJSON() ([]byte, error) {
	cfg := tsconfig{
		CompilerOptions: tsconfigOptions{
			Target:           "ES2022",
			Module:           "CommonJS",
			ModuleResolution: "Node",
			RootDir:          "src",
			OutDir:           "dist",
			Strict:           true,
			EsModuleInterop:  true,
			SkipLibCheck:     true,
		},
		Include: []string{"src"},
	}

	return marshalIndented(cfg)
}

// marshalIndented marshals v as two-space-indented JSON with a trailing
// newline, the convention for generated Node config files.
func marshalIndented(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling metadata: %w", err)
	}
	return append(data, '\n'), nil
}

// InstallHint returns the manual command to run when dependency installation
// was skipped.
func InstallHint(req Request, packageManager string) string {
	if packageManager == "" {
		packageManager = "npm"
	}

	cmds := []string{fmt.Sprintf("cd %s", req.ProjectName), packageManager + " install"}
	return strings.Join(cmds, " && ")
}
