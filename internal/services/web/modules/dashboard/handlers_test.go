package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/taskflow/internal/platform/metrics"
	"github.com/louisbranch/taskflow/internal/services/web/feedback"
	"github.com/louisbranch/taskflow/internal/services/web/navshell"
	"github.com/louisbranch/taskflow/internal/services/web/platform/shellcookie"
	"github.com/louisbranch/taskflow/internal/services/web/routepath"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"
)

type hxTriggers struct {
	Feedback *struct {
		Cues []feedback.Cue `json:"cues"`
	} `json:"taskflow:feedback"`
	Width *navshell.Transition `json:"taskflow:shell-width"`
}

func decodeTriggers(t *testing.T, rr *httptest.ResponseRecorder) hxTriggers {
	t.Helper()
	return decodeTriggerHeader(t, rr, "HX-Trigger")
}

func decodeTriggerHeader(t *testing.T, rr *httptest.ResponseRecorder, header string) hxTriggers {
	t.Helper()
	var got hxTriggers
	raw := rr.Header().Get(header)
	if raw == "" {
		return got
	}
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("decode %s %q: %v", header, raw, err)
	}
	return got
}

func shellCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == shellcookie.Name {
			return cookie
		}
	}
	t.Fatalf("response missing %s cookie", shellcookie.Name)
	return nil
}

func serve(h handlers, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	registerRoutes(mux, h)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func htmxToggleRequest(currentURL string, mode navshell.DisplayMode) *http.Request {
	req := httptest.NewRequest(http.MethodPost, routepath.ShellToggle, nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Current-URL", currentURL)
	req.AddCookie(&http.Cookie{Name: shellcookie.Name, Value: mode.String()})
	return req
}

func TestHandlePageHighlightsActiveEntry(t *testing.T) {
	t.Parallel()

	rr := serve(newHandlers(testDependencies()), httptest.NewRequest(http.MethodGet, "/app/tasks", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if got := strings.Count(body, `aria-current="page"`); got != 1 {
		t.Fatalf("active entries = %d, want 1", got)
	}
	for _, marker := range []string{
		`class="shell-link is-active" href="/app/tasks"`,
		`data-section-path="/app/tasks"`,
		`<title>Tasks | TaskFlow</title>`,
		`data-mode="expanded"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestHandlePageRendersCollapsedFromCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.AppRoot, nil)
	req.AddCookie(&http.Cookie{Name: shellcookie.Name, Value: "collapsed"})
	rr := serve(newHandlers(testDependencies()), req)

	body := rr.Body.String()
	if !strings.Contains(body, `data-mode="collapsed"`) {
		t.Fatalf("body missing collapsed mode")
	}
	if !strings.Contains(body, `class="shell-link-label is-hidden"></span>`) {
		t.Fatalf("collapsed entries must render empty labels")
	}
	if strings.Contains(body, `class="shell-link-label">`) {
		t.Fatalf("collapsed shell rendered a visible label")
	}
}

func TestHandlePageUnknownPathRendersNotFoundInShell(t *testing.T) {
	t.Parallel()

	rr := serve(newHandlers(testDependencies()), httptest.NewRequest(http.MethodGet, "/app/unknown", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="shell-sidebar"`) || !strings.Contains(body, `data-status="404"`) {
		t.Fatalf("body missing shell or 404 state: %q", body)
	}
	if strings.Contains(body, `aria-current="page"`) {
		t.Fatalf("unknown path must not highlight an entry")
	}
}

func TestHandleToggleHTMXRendersCollapsedSidebar(t *testing.T) {
	t.Parallel()

	reg := metrics.NewRegistry()
	m := metrics.New(reg)
	deps := testDependencies()
	deps.Metrics = m
	rr := serve(newHandlers(deps), htmxToggleRequest("http://example.com/app/tasks", navshell.Expanded))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if cookie := shellCookie(t, rr); cookie.Value != "collapsed" || !cookie.HttpOnly {
		t.Fatalf("cookie = %+v, want http-only collapsed", cookie)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatalf("htmx toggle must answer with the sidebar fragment only")
	}
	for _, marker := range []string{`id="shell-sidebar"`, `data-mode="collapsed"`, `shell-sidebar w-16`, `aria-current="page"`, `aria-label="Expand sidebar"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %q", marker, body)
		}
	}

	if !strings.Contains(body, `style="width:256px;transition:width 200ms ease-in-out"`) {
		t.Fatalf("swapped sidebar must start from the expanded width: %q", body)
	}

	settled := decodeTriggerHeader(t, rr, "HX-Trigger-After-Settle")
	if settled.Width == nil || settled.Width.TargetWidth != navshell.CollapsedWidth || settled.Width.Easing != "ease-in-out" || settled.Width.DurationMS != 200 {
		t.Fatalf("width trigger = %+v", settled.Width)
	}
	if settled.Feedback != nil {
		t.Fatalf("feedback cues must not wait for the swap: %+v", settled.Feedback)
	}
	triggers := decodeTriggers(t, rr)
	if triggers.Width != nil {
		t.Fatalf("width transition sent before the swap: %+v", triggers.Width)
	}
	if triggers.Feedback == nil || len(triggers.Feedback.Cues) != 1 {
		t.Fatalf("feedback trigger = %+v, want one cue", triggers.Feedback)
	}
	cue := triggers.Feedback.Cues[0]
	if cue.Event != feedback.EventClick || cue.Source != feedback.DefaultClickSource || !cue.Restart {
		t.Fatalf("cue = %+v", cue)
	}

	if got := testutil.ToFloat64(m.ShellToggles.WithLabelValues("collapsed")); got != 1 {
		t.Fatalf("shell toggles = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.FeedbackPlayback.WithLabelValues("click", "played")); got != 1 {
		t.Fatalf("click played = %v, want 1", got)
	}
}

func TestHandleToggleParity(t *testing.T) {
	t.Parallel()

	h := newHandlers(testDependencies())
	mode := navshell.Expanded
	for i := 1; i <= 5; i++ {
		rr := serve(h, htmxToggleRequest("http://example.com/app", mode))
		mode = navshell.ParseDisplayMode(shellCookie(t, rr).Value)
		want := navshell.Expanded
		if i%2 == 1 {
			want = navshell.Collapsed
		}
		if mode != want {
			t.Fatalf("after %d toggles mode = %v, want %v", i, mode, want)
		}
	}
}

func TestHandleToggleRedirectsToSameOriginReferer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{name: "same origin", referer: "http://example.com/app/goals?tab=open", want: "/app/goals?tab=open"},
		{name: "cross origin", referer: "http://evil.example/app/goals", want: routepath.AppRoot},
		{name: "missing", referer: "", want: routepath.AppRoot},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, routepath.ShellToggle, nil)
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			rr := serve(newHandlers(testDependencies()), req)
			if rr.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
			}
			if got := rr.Header().Get("Location"); got != tc.want {
				t.Fatalf("Location = %q, want %q", got, tc.want)
			}
			if shellCookie(t, rr).Value != "collapsed" {
				t.Fatalf("toggle did not persist collapsed mode")
			}
		})
	}
}

func TestHandleToggleWithFailedClickAcquisitionStillToggles(t *testing.T) {
	t.Parallel()

	core, logs := zapobserver.New(zapcore.WarnLevel)
	deps := testDependencies()
	deps.FeedbackSources = feedback.Sources{Click: "ftp://sounds.example/click.mp3"}
	deps.Logger = zap.New(core)
	rr := serve(newHandlers(deps), htmxToggleRequest("http://example.com/app", navshell.Expanded))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if shellCookie(t, rr).Value != "collapsed" {
		t.Fatalf("toggle must complete when click feedback is unavailable")
	}
	triggers := decodeTriggers(t, rr)
	if triggers.Feedback != nil {
		t.Fatalf("feedback trigger = %+v, want none", triggers.Feedback)
	}
	if decodeTriggerHeader(t, rr, "HX-Trigger-After-Settle").Width == nil {
		t.Fatalf("width trigger missing")
	}
	if logs.FilterMessage("audio acquire failed").Len() != 1 {
		t.Fatalf("acquire failure logs = %d, want 1", logs.FilterMessage("audio acquire failed").Len())
	}
}

func TestHandleFeedback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		event    string
		enabled  bool
		wantCues int
	}{
		{name: "click plays", event: "click", enabled: true, wantCues: 1},
		{name: "hover is silent by default", event: "hover", enabled: true, wantCues: 0},
		{name: "click with feedback disabled", event: "click", enabled: false, wantCues: 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			deps := testDependencies()
			deps.FeedbackEnabled = tc.enabled
			rr := serve(newHandlers(deps), httptest.NewRequest(http.MethodPost, routepath.ShellFeedbackFor(tc.event), nil))
			if rr.Code != http.StatusNoContent {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
			}
			triggers := decodeTriggers(t, rr)
			got := 0
			if triggers.Feedback != nil {
				got = len(triggers.Feedback.Cues)
			}
			if got != tc.wantCues {
				t.Fatalf("cues = %d, want %d", got, tc.wantCues)
			}
			if rr.Header().Get("HX-Trigger-After-Settle") != "" {
				t.Fatalf("feedback must not animate the sidebar")
			}
		})
	}
}

func TestHandleFeedbackHoverWithSource(t *testing.T) {
	t.Parallel()

	deps := testDependencies()
	deps.FeedbackSources.Hover = "/static/hover.mp3"
	rr := serve(newHandlers(deps), httptest.NewRequest(http.MethodPost, routepath.ShellFeedbackFor("hover"), nil))

	triggers := decodeTriggers(t, rr)
	if triggers.Feedback == nil || len(triggers.Feedback.Cues) != 1 {
		t.Fatalf("feedback trigger = %+v, want one cue", triggers.Feedback)
	}
	if cue := triggers.Feedback.Cues[0]; cue.Event != feedback.EventHover || cue.Source != "/static/hover.mp3" {
		t.Fatalf("cue = %+v", cue)
	}
}

func TestHandlePageExposesOnlyAudibleFeedbackURLs(t *testing.T) {
	t.Parallel()

	rr := serve(newHandlers(testDependencies()), httptest.NewRequest(http.MethodGet, "/app/tasks", nil))
	body := rr.Body.String()
	if !strings.Contains(body, `data-feedback-click-url="/app/shell/feedback?event=click"`) {
		t.Fatalf("body missing click feedback url: %q", body)
	}
	if strings.Contains(body, "data-feedback-hover-url") {
		t.Fatalf("silent hover must not trigger feedback requests")
	}

	deps := testDependencies()
	deps.FeedbackEnabled = false
	rr = serve(newHandlers(deps), httptest.NewRequest(http.MethodGet, "/app/tasks", nil))
	if strings.Contains(rr.Body.String(), "data-feedback-click-url") {
		t.Fatalf("disabled feedback must not expose feedback urls")
	}
}
