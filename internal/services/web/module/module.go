// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/taskflow/internal/platform/metrics"
	"github.com/louisbranch/taskflow/internal/services/web/feedback"
	"github.com/louisbranch/taskflow/internal/services/web/navshell"
	"github.com/louisbranch/taskflow/internal/services/web/platform/requestmeta"
	"go.uber.org/zap"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies carries the shared collaborators handed to modules at
// construction. Zero values are valid: modules fall back to defaults.
type Dependencies struct {
	// Navigation is the sidebar entry set for dashboard pages.
	Navigation navshell.Config
	// FeedbackSources names the audio played per feedback event.
	FeedbackSources feedback.Sources
	// FeedbackEnabled mounts shells with audio feedback handles.
	FeedbackEnabled     bool
	Logger              *zap.Logger
	Metrics             *metrics.Metrics
	RequestSchemePolicy requestmeta.SchemePolicy
}
