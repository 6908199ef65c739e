// Package landing serves the public marketing page and health probe.
package landing

import (
	"net/http"
	"time"

	module "github.com/louisbranch/taskflow/internal/services/web/module"
	"github.com/louisbranch/taskflow/internal/services/web/routepath"
)

// Module provides the unauthenticated root routes.
type Module struct {
	now func() time.Time
}

// New returns the landing module.
func New() Module {
	return Module{now: time.Now}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "landing" }

// Mount wires landing routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.now))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
