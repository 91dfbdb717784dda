package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/expressforge/cli/internal/errors"
)

func TestMaterialize_AbsentTarget(t *testing.T) {
	tmpDir := t.TempDir()

	plan, err := Resolve(baseRequest(), tmpDir)
	require.NoError(t, err)

	require.NoError(t, Materialize(plan))
	assert.DirExists(t, plan.TargetDir)
}

func TestMaterialize_EmptyTargetAccepted(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "demo"), 0o755))

	plan, err := Resolve(baseRequest(), tmpDir)
	require.NoError(t, err)

	assert.NoError(t, Materialize(plan))
}

func TestMaterialize_NonEmptyTargetRejected(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "demo")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "existing.txt"), []byte("x"), 0o644))

	plan, err := Resolve(baseRequest(), tmpDir)
	require.NoError(t, err)

	err = Materialize(plan)
	assert.ErrorIs(t, err, ferrors.ErrTargetExists)
	assert.Contains(t, err.Error(), target)

	// The unrelated content is untouched.
	assert.FileExists(t, filepath.Join(target, "existing.txt"))
}

func TestMaterialize_FileTargetRejected(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "demo"), []byte("x"), 0o644))

	plan, err := Resolve(baseRequest(), tmpDir)
	require.NoError(t, err)

	assert.ErrorIs(t, Materialize(plan), ferrors.ErrTargetExists)
}

func TestMaterialize_WritesPlannedContent(t *testing.T) {
	tmpDir := t.TempDir()

	req := Request{
		ProjectName:     "demo",
		Language:        LangTyped,
		Architecture:    ArchLayered,
		DevReload:       true,
		StarterResource: true,
	}
	plan, err := Resolve(req, tmpDir)
	require.NoError(t, err)
	require.NoError(t, Materialize(plan))

	for _, d := range plan.Dirs {
		assert.DirExists(t, filepath.Join(plan.TargetDir, d))
	}
	for _, f := range plan.Files {
		got, err := os.ReadFile(filepath.Join(plan.TargetDir, f.Path))
		require.NoError(t, err)
		assert.Equal(t, f.Content, got, "content mismatch for %s", f.Path)
	}

	// No leftover temp files from the atomic writes.
	entries, err := os.ReadDir(plan.TargetDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-")
	}
}

// Mirrors the untyped/simple/dev-reload end-to-end scenario: the full file
// set lands on disk and nothing else.
func TestMaterialize_UntypedSimpleDevReload(t *testing.T) {
	tmpDir := t.TempDir()

	req := Request{
		ProjectName:  "demo",
		Language:     LangUntyped,
		Architecture: ArchSimple,
		DevReload:    true,
	}
	plan, err := Resolve(req, tmpDir)
	require.NoError(t, err)
	require.NoError(t, Materialize(plan))

	target := plan.TargetDir
	for _, f := range []string{".gitignore", ".env", "package.json", "nodemon.json", "README.md", "app.js"} {
		assert.FileExists(t, filepath.Join(target, f))
	}
	for _, d := range []string{"controllers", "models", "routes", "views"} {
		assert.DirExists(t, filepath.Join(target, d))

		entries, err := os.ReadDir(filepath.Join(target, d))
		require.NoError(t, err)
		assert.Empty(t, entries, "folder %s should be empty", d)
	}

	assert.NoFileExists(t, filepath.Join(target, "tsconfig.json"))

	var pkg map[string]any
	data, err := os.ReadFile(filepath.Join(target, "package.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &pkg))
	assert.Equal(t, "module", pkg["type"])

	// The generated .env parses with the same loader the generated app uses.
	env, err := godotenv.Read(filepath.Join(target, ".env"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"PORT": "5000"}, env)
}

func TestWriteFileAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.txt")

	require.NoError(t, writeFileAtomic(path, []byte("hello")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}
