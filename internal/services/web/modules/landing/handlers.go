package landing

import (
	"net/http"
	"time"

	"github.com/louisbranch/taskflow/internal/platform/branding"
	webi18n "github.com/louisbranch/taskflow/internal/services/web/platform/i18n"
	"github.com/louisbranch/taskflow/internal/services/web/platform/pagerender"
	"github.com/louisbranch/taskflow/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/taskflow/internal/services/web/templates"
)

type handlers struct {
	now func() time.Time
}

func newHandlers(now func() time.Time) handlers {
	if now == nil {
		now = time.Now
	}
	return handlers{now: now}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	pagerender.WritePublicPage(w, r, pagerender.PublicPage{
		Title:       branding.AppName,
		Description: webtemplates.T(loc, pageDescription),
		Body:        webtemplates.LandingPage(content(h.now().Year()), loc),
		Lang:        lang,
	})
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WritePublicError(w, r, http.StatusNotFound)
}
