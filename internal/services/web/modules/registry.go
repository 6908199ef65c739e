package modules

import (
	"github.com/louisbranch/taskflow/internal/services/web/modules/dashboard"
	"github.com/louisbranch/taskflow/internal/services/web/modules/landing"
)

// DefaultPublicModules returns the modules served outside /app/.
func DefaultPublicModules() []Module {
	return []Module{
		landing.New(),
	}
}

// DefaultAppModules returns the modules served under /app/.
func DefaultAppModules(deps Dependencies) []Module {
	return []Module{
		dashboard.New(deps),
	}
}
