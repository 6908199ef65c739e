// Package dashboard serves the app pages wrapped in the navigation shell and
// the shell's toggle and feedback endpoints.
package dashboard

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/taskflow/internal/services/web/module"
	"github.com/louisbranch/taskflow/internal/services/web/routepath"
)

// Module provides dashboard routes.
type Module struct {
	deps module.Dependencies
}

// New returns a dashboard module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Navigation.Len() == 0 {
		return module.Mount{}, errors.New("navigation entries are required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.AppPrefix, Handler: mux}, nil
}
