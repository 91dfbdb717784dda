package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed assets
var assetFS embed.FS

// simpleFolders and layeredFolders are the folder sets per architecture.
// The order is fixed by design and surfaced in tooling output; tests assert
// it exactly.
var (
	simpleFolders = []string{"controllers", "models", "routes", "views"}

	layeredFolders = []string{
		"controllers",
		"services",
		"models",
		"routes",
		"config",
		"validation",
		"utils",
		"templates",
	}
)

// Folders returns the code folders for an architecture, in creation order.
// An unknown architecture is a programming error.
func Folders(arch Architecture) []string {
	switch arch {
	case ArchSimple:
		return append([]string(nil), simpleFolders...)
	case ArchLayered:
		return append([]string(nil), layeredFolders...)
	default:
		panic(fmt.Sprintf("scaffold: unknown architecture %q", arch))
	}
}

// templateData is the substitution data passed to asset templates. It is
// derived from the Request alone so rendering stays deterministic.
type templateData struct {
	ProjectName string
	Typed       bool
	Starter     bool
	DevReload   bool
}

func dataFor(req Request) templateData {
	return templateData{
		ProjectName: req.ProjectName,
		Typed:       req.Language == LangTyped,
		Starter:     req.StarterResource,
		DevReload:   req.DevReload,
	}
}

// entry pairs a code-relative output path with its embedded asset.
type entry struct {
	relPath string
	asset   string
}

// coreEntries returns the always-generated code files, in write order.
// Paths are relative to the code root (src/ or the project root).
func coreEntries(req Request) []entry {
	ext := req.Language.Ext()
	lang := string(req.Language)
	if !req.Language.Valid() {
		panic(fmt.Sprintf("scaffold: unknown language %q", req.Language))
	}

	return []entry{
		{relPath: "app." + ext, asset: fmt.Sprintf("assets/%s/app.%s.tmpl", lang, ext)},
	}
}

// starterEntries returns the user resource slice, in write order: model,
// controller, routes.
func starterEntries(req Request) []entry {
	ext := req.Language.Ext()
	lang := string(req.Language)

	return []entry{
		{relPath: "models/user.model." + ext, asset: fmt.Sprintf("assets/%s/user.model.%s.tmpl", lang, ext)},
		{relPath: "controllers/user.controller." + ext, asset: fmt.Sprintf("assets/%s/user.controller.%s.tmpl", lang, ext)},
		{relPath: "routes/user.routes." + ext, asset: fmt.Sprintf("assets/%s/user.routes.%s.tmpl", lang, ext)},
	}
}

// renderAsset renders an embedded asset template with the request data.
func renderAsset(asset string, data templateData) ([]byte, error) {
	content, err := assetFS.ReadFile(asset)
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", asset, err)
	}

	tmpl, err := template.New(asset).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing asset %s: %w", asset, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering asset %s: %w", asset, err)
	}

	return buf.Bytes(), nil
}

// RuntimeDependencies is the fixed runtime dependency set installed for every
// generated project.
func RuntimeDependencies() []string {
	return []string{"express", "dotenv", "bcrypt", "cors", "morgan"}
}

// DevDependencies returns the development dependency set for a request.
// Empty when nothing needs installing.
func DevDependencies(req Request) []string {
	var deps []string

	if req.Language == LangTyped {
		deps = append(deps,
			"typescript",
			"ts-node",
			"@types/node",
			"@types/express",
			"@types/cors",
			"@types/morgan",
		)
	}

	if req.DevReload {
		deps = append(deps, "nodemon")
	}

	return deps
}
