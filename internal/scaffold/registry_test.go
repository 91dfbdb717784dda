package scaffold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolders_Simple(t *testing.T) {
	assert.Equal(t, []string{"controllers", "models", "routes", "views"}, Folders(ArchSimple))
}

func TestFolders_Layered(t *testing.T) {
	assert.Equal(t, []string{
		"controllers",
		"services",
		"models",
		"routes",
		"config",
		"validation",
		"utils",
		"templates",
	}, Folders(ArchLayered))
}

func TestFolders_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() {
		Folders(Architecture("hexagonal"))
	})
}

func TestFolders_ReturnsCopy(t *testing.T) {
	a := Folders(ArchSimple)
	a[0] = "mutated"
	assert.Equal(t, "controllers", Folders(ArchSimple)[0])
}

func renderApp(t *testing.T, req Request) string {
	t.Helper()
	entries := coreEntries(req)
	require.Len(t, entries, 1)

	content, err := renderAsset(entries[0].asset, dataFor(req))
	require.NoError(t, err)
	return string(content)
}

func TestAppTemplate_UntypedImportsCarryExtension(t *testing.T) {
	req := baseRequest()
	req.StarterResource = true

	app := renderApp(t, req)
	assert.Contains(t, app, "./models/user.model.js")
	assert.Contains(t, app, "./routes/user.routes.js")
}

func TestAppTemplate_TypedImportsExtensionless(t *testing.T) {
	req := Request{ProjectName: "demo", Language: LangTyped, Architecture: ArchSimple, StarterResource: true}

	app := renderApp(t, req)
	assert.Contains(t, app, "./models/user.model'")
	assert.Contains(t, app, "./routes/user.routes'")
	assert.NotContains(t, app, "user.model.js")
}

func TestAppTemplate_NoStarterNoRouterWiring(t *testing.T) {
	app := renderApp(t, baseRequest())
	assert.NotContains(t, app, "createUserRouter")
	assert.NotContains(t, app, "user.model")
}

func TestAppTemplate_ProjectNameSubstituted(t *testing.T) {
	req := baseRequest()
	req.ProjectName = "my-shop"

	app := renderApp(t, req)
	assert.Contains(t, app, "my-shop listening on port")
}

func TestStarterRoutes_BindFiveRoutes(t *testing.T) {
	for _, lang := range []Language{LangTyped, LangUntyped} {
		req := Request{ProjectName: "demo", Language: lang, Architecture: ArchSimple, StarterResource: true}

		entries := starterEntries(req)
		require.Len(t, entries, 3)

		routes, err := renderAsset(entries[2].asset, dataFor(req))
		require.NoError(t, err)

		content := string(routes)
		assert.Contains(t, content, "router.get('/', controller.list)")
		assert.Contains(t, content, "router.get('/:id', controller.getById)")
		assert.Contains(t, content, "router.post('/', controller.create)")
		assert.Contains(t, content, "router.put('/:id', controller.update)")
		assert.Contains(t, content, "router.delete('/:id', controller.remove)")
		assert.Equal(t, 5, strings.Count(content, "router."), "exactly five routes for %s", lang)
	}
}

func TestStarterController_StatusSemantics(t *testing.T) {
	for _, lang := range []Language{LangTyped, LangUntyped} {
		req := Request{ProjectName: "demo", Language: lang, Architecture: ArchSimple, StarterResource: true}

		controller, err := renderAsset(starterEntries(req)[1].asset, dataFor(req))
		require.NoError(t, err)

		content := string(controller)
		// Missing records map to 404, successful deletion to an empty 204.
		assert.Contains(t, content, "sendStatus(404)")
		assert.Contains(t, content, "sendStatus(204)")
		assert.Contains(t, content, "status(201)")
	}
}

func TestStarterModel_GeneratedIDAndNoGlobalState(t *testing.T) {
	for _, lang := range []Language{LangTyped, LangUntyped} {
		req := Request{ProjectName: "demo", Language: lang, Architecture: ArchSimple, StarterResource: true}

		model, err := renderAsset(starterEntries(req)[0].asset, dataFor(req))
		require.NoError(t, err)

		content := string(model)
		assert.Contains(t, content, "randomUUID().slice(0, 8)")
		assert.Contains(t, content, "export function createUserStore")
		// The record list lives inside the factory, not at module level.
		factoryStart := strings.Index(content, "createUserStore")
		listDecl := strings.Index(content, "const users")
		assert.Greater(t, listDecl, factoryStart, "record list must be scoped to the store factory")
	}
}

func TestRuntimeDependencies(t *testing.T) {
	assert.Equal(t, []string{"express", "dotenv", "bcrypt", "cors", "morgan"}, RuntimeDependencies())
}

func TestDevDependencies(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{
			"untyped without reload",
			Request{Language: LangUntyped},
			nil,
		},
		{
			"untyped with reload",
			Request{Language: LangUntyped, DevReload: true},
			[]string{"nodemon"},
		},
		{
			"typed without reload",
			Request{Language: LangTyped},
			[]string{"typescript", "ts-node", "@types/node", "@types/express", "@types/cors", "@types/morgan"},
		},
		{
			"typed with reload",
			Request{Language: LangTyped, DevReload: true},
			[]string{"typescript", "ts-node", "@types/node", "@types/express", "@types/cors", "@types/morgan", "nodemon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DevDependencies(tt.req))
		})
	}
}
