package dashboard

import (
	"net/http"

	"github.com/louisbranch/taskflow/internal/services/web/platform/httpx"
	"github.com/louisbranch/taskflow/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppRoot, h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPrefix+"{$}", h.handleAppSlash)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPrefix+"{rest...}", h.handlePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.ShellToggle, h.handleToggle)
	mux.HandleFunc(http.MethodPost+" "+routepath.ShellFeedback, h.handleFeedback)
	// Shell actions would otherwise fall through to the section lookup.
	mux.Handle(http.MethodGet+" "+routepath.ShellToggle, httpx.MethodNotAllowed(http.MethodPost))
	mux.Handle(http.MethodGet+" "+routepath.ShellFeedback, httpx.MethodNotAllowed(http.MethodPost))
}
