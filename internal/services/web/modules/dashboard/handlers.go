package dashboard

import (
	"bytes"
	"context"
	"net/http"

	"github.com/louisbranch/taskflow/internal/platform/logging"
	"github.com/louisbranch/taskflow/internal/platform/metrics"
	"github.com/louisbranch/taskflow/internal/platform/timeouts"
	"github.com/louisbranch/taskflow/internal/services/web/feedback"
	module "github.com/louisbranch/taskflow/internal/services/web/module"
	"github.com/louisbranch/taskflow/internal/services/web/navshell"
	apperrors "github.com/louisbranch/taskflow/internal/services/web/platform/errors"
	"github.com/louisbranch/taskflow/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/taskflow/internal/services/web/platform/i18n"
	"github.com/louisbranch/taskflow/internal/services/web/platform/pagerender"
	"github.com/louisbranch/taskflow/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/taskflow/internal/services/web/platform/shellcookie"
	"github.com/louisbranch/taskflow/internal/services/web/platform/weberror"
	"github.com/louisbranch/taskflow/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/taskflow/internal/services/web/templates"
	"go.uber.org/zap"
)

// shellWidthEvent carries the sidebar width transition to the browser.
const shellWidthEvent = "taskflow:shell-width"

type handlers struct {
	nav             navshell.Config
	sources         feedback.Sources
	feedbackEnabled bool
	logger          *zap.Logger
	metrics         *metrics.Metrics
	policy          requestmeta.SchemePolicy
	settle          func(context.Context) (context.Context, context.CancelFunc)
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{
		nav:             deps.Navigation,
		sources:         deps.FeedbackSources,
		feedbackEnabled: deps.FeedbackEnabled,
		logger:          logging.OrNop(deps.Logger),
		metrics:         deps.Metrics,
		policy:          deps.RequestSchemePolicy,
		settle: func(ctx context.Context) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, timeouts.FeedbackSettle)
		},
	}
}

// widthRecorder is the rendering surface of a server-side shell. The browser
// replays the recorded transition.
type widthRecorder struct {
	transition navshell.Transition
	animated   bool
}

func (w *widthRecorder) AnimateWidth(t navshell.Transition) {
	w.transition = t
	w.animated = true
}

// shellRequest is one mounted shell with the collaborators that observed it.
type shellRequest struct {
	shell *navshell.Shell
	cues  *feedback.Recorder
	width *widthRecorder
}

// mountShell mounts a shell for r in the display mode stored in its cookie.
// Callers must release it with unmount.
func (h handlers) mountShell(r *http.Request) shellRequest {
	req := shellRequest{cues: &feedback.Recorder{}, width: &widthRecorder{}}
	logger := h.logger.With(zap.String("request_id", httpx.RequestIDFrom(r)))
	opts := []navshell.Option{
		navshell.WithMode(shellcookie.ReadMode(r)),
		navshell.WithLogger(logger),
		navshell.WithObserver(navshell.ObserverFunc(func(mode navshell.DisplayMode) {
			h.metrics.ObserveShellToggle(mode.String())
		})),
		navshell.WithSurface(req.width),
	}
	if h.feedbackEnabled {
		opts = append(opts, navshell.WithFeedback(
			feedback.CueAcquirer{Sink: req.cues},
			h.sources,
			feedback.WithObserver(feedback.ObserverFunc(func(event feedback.Event, outcome feedback.Outcome) {
				h.metrics.ObserveFeedback(event.String(), string(outcome))
			})),
		))
	}
	req.shell = navshell.Mount(httpx.RequestContext(r), h.nav, opts...)
	return req
}

// unmount waits a bounded time for in-flight playback, then releases the
// shell's handles.
func (h handlers) unmount(r *http.Request, req shellRequest) {
	ctx, cancel := h.settle(httpx.RequestContext(r))
	defer cancel()
	if err := req.shell.Settle(ctx); err != nil {
		h.logger.Debug("feedback settle incomplete", zap.String("shell_id", req.shell.ID()), zap.Error(err))
	}
	req.shell.Close()
}

// feedbackTriggers returns the playback cues the shell produced. The browser
// plays them as soon as the response arrives.
func (req shellRequest) feedbackTriggers() map[string]any {
	events := map[string]any{}
	if cues := req.cues.Cues(); len(cues) > 0 {
		events[feedback.TriggerEvent] = map[string]any{"cues": cues}
	}
	return events
}

// widthTriggers returns the recorded width transition. It must reach the
// browser after the swapped sidebar settles, or it would animate the element
// being replaced.
func (req shellRequest) widthTriggers() map[string]any {
	events := map[string]any{}
	if req.width.animated {
		events[shellWidthEvent] = req.width.transition
	}
	return events
}

func (handlers) handleAppSlash(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.AppRoot, http.StatusMovedPermanently)
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	req := h.mountShell(r)
	defer h.unmount(r, req)

	view := req.shell.View(navshell.Path(r.URL.Path))
	if !view.HasActive {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindNotFound, "no navigation entry for path"), view)
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	active := view.Active
	err := pagerender.WriteShellPage(w, r, pagerender.ShellPage{
		Title: active.Label,
		View:  view,
		Fragment: webtemplates.SectionPage(webtemplates.SectionData{
			Title: active.Label,
			Icon:  active.Icon,
			Path:  active.TargetPath,
		}, loc),
		Loc:  loc,
		Lang: lang,
	})
	if err != nil {
		h.logger.Error("render dashboard page", zap.String("path", r.URL.Path), zap.Error(err))
		weberror.WriteModuleError(w, r, err, view)
	}
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	req := h.mountShell(r)
	fromWidth := navshell.TransitionTo(req.shell.Mode()).TargetWidth
	mode := req.shell.Toggle()
	h.unmount(r, req)

	shellcookie.WriteMode(w, r, mode, h.policy)
	if !httpx.IsHTMXRequest(r) {
		target := routepath.AppRoot
		if referer, ok := requestmeta.SameOriginReferer(r, h.policy); ok {
			target = referer
		}
		httpx.WriteRedirect(w, r, target)
		return
	}

	if err := httpx.SetHXTrigger(w, req.feedbackTriggers()); err != nil {
		h.logger.Warn("encode feedback triggers", zap.Error(err))
	}
	if err := httpx.SetHXTriggerAfterSettle(w, req.widthTriggers()); err != nil {
		h.logger.Warn("encode width triggers", zap.Error(err))
	}
	currentPath, ok := httpx.HTMXCurrentPath(r)
	if !ok {
		currentPath = routepath.AppRoot
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	var buf bytes.Buffer
	if err := webtemplates.SidebarFrom(req.shell.View(navshell.Path(currentPath)), fromWidth, loc).Render(httpx.RequestContext(r), &buf); err != nil {
		h.logger.Error("render sidebar", zap.Error(err))
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteHTML(w, http.StatusOK, buf.String())
}

func (h handlers) handleFeedback(w http.ResponseWriter, r *http.Request) {
	event, ok := feedback.ParseEvent(r.URL.Query().Get(routepath.FeedbackEventParam))
	if !ok {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "unknown feedback event"))
		return
	}
	req := h.mountShell(r)
	switch event {
	case feedback.EventHover:
		req.shell.Hover()
	case feedback.EventClick:
		req.shell.Click()
	}
	h.unmount(r, req)

	if err := httpx.SetHXTrigger(w, req.feedbackTriggers()); err != nil {
		h.logger.Warn("encode feedback triggers", zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}
