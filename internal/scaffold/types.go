// Package scaffold provides the project generation engine for expressforge new.
package scaffold

// Language selects the generated source language.
type Language string

const (
	// LangTyped generates TypeScript sources.
	LangTyped Language = "typed"

	// LangUntyped generates plain JavaScript sources.
	LangUntyped Language = "untyped"
)

// Ext returns the source file extension for the language.
func (l Language) Ext() string {
	if l == LangTyped {
		return "ts"
	}
	return "js"
}

// Valid reports whether the language is a known variant.
func (l Language) Valid() bool {
	return l == LangTyped || l == LangUntyped
}

// Architecture selects the folder layout of the generated project.
type Architecture string

const (
	// ArchSimple generates a flat controllers/models/routes/views layout.
	ArchSimple Architecture = "simple"

	// ArchLayered generates a service-layer layout with config, validation,
	// utils and templates folders.
	ArchLayered Architecture = "layered"
)

// Valid reports whether the architecture is a known style.
func (a Architecture) Valid() bool {
	return a == ArchSimple || a == ArchLayered
}

// Request is the immutable input to plan resolution. It is built once from
// CLI arguments, prompts or an answers file, and never mutated afterwards.
type Request struct {
	// ProjectName is the target directory name. Must be non-empty and free of
	// path separators and traversal segments.
	ProjectName string

	// Language is the source language variant.
	Language Language

	// Architecture is the folder layout style.
	Architecture Architecture

	// DevReload generates a nodemon config and wires the dev script to it.
	DevReload bool

	// StarterResource generates the user model/controller/routes slice.
	StarterResource bool

	// GitInit runs `git init` in the target directory after generation.
	GitInit bool

	// InstallDeps runs the package manager after generation.
	InstallDeps bool
}

// UseSrcRoot reports whether generated code lives under a src/ root.
// The layered layout, the starter resource and the typed variant all get a
// src root; tsconfig pins rootDir to src, so typed output must use it.
func (r Request) UseSrcRoot() bool {
	return r.Architecture == ArchLayered || r.StarterResource || r.Language == LangTyped
}

// File is a single planned file: a path relative to the target directory and
// its full content.
type File struct {
	Path    string
	Content []byte
}

// Plan is the fully resolved, ready-to-write description of the project.
// It is derived once from a Request and consumed read-only by Materialize.
//
// Invariants: every file path stays inside TargetDir, and every directory a
// file lives in appears in Dirs before that file is written.
type Plan struct {
	// ProjectName is carried over from the request for reporting.
	ProjectName string

	// TargetDir is the absolute path of the directory to create.
	TargetDir string

	// Dirs are the directories to create, relative to TargetDir, in creation
	// order.
	Dirs []string

	// Files are the files to write, relative to TargetDir, in write order.
	Files []File
}
