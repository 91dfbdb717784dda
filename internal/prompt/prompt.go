// Package prompt gathers generation answers interactively.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/expressforge/cli/internal/scaffold"
)

// ErrCancelled is returned when the user aborts the form.
var ErrCancelled = errors.New("prompt cancelled")

// Ask fills the request's interactive fields with a sequential form.
// The request's Language, Architecture and GitInit fields are used as the
// preselected defaults.
func Ask(req *scaffold.Request) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[scaffold.Language]().
				Title("Language").
				Options(
					huh.NewOption("TypeScript", scaffold.LangTyped),
					huh.NewOption("JavaScript", scaffold.LangUntyped),
				).
				Value(&req.Language),

			huh.NewSelect[scaffold.Architecture]().
				Title("Architecture").
				Options(
					huh.NewOption("Simple (controllers, models, routes, views)", scaffold.ArchSimple),
					huh.NewOption("Layered (adds services, config, validation, utils, templates)", scaffold.ArchLayered),
				).
				Value(&req.Architecture),

			huh.NewConfirm().
				Title("Enable auto-reload during development (nodemon)?").
				Value(&req.DevReload),

			huh.NewConfirm().
				Title("Generate a starter user resource?").
				Value(&req.StarterResource),

			huh.NewConfirm().
				Title("Initialize a git repository?").
				Value(&req.GitInit),

			huh.NewConfirm().
				Title("Install dependencies now?").
				Value(&req.InstallDeps),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return err
	}

	return nil
}
