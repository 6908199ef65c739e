// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/taskflow/internal/services/web/navshell"
	"github.com/louisbranch/taskflow/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/taskflow/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/taskflow/internal/services/web/templates"
)

// ShellPage describes a dashboard page for both full-page and HTMX flows.
type ShellPage struct {
	Title      string
	StatusCode int
	View       navshell.View
	Fragment   templ.Component
	Loc        webi18n.Localizer
	Lang       string
}

// WriteShellPage writes page inside the navigation shell. HTMX requests get
// only the main content so the sidebar keeps its client state.
func WriteShellPage(w http.ResponseWriter, r *http.Request, page ShellPage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
		return httpx.WriteHTML(w, statusCode, buf.String())
	}

	shell := webtemplates.AppShell(webtemplates.AppShellData{View: page.View, Loc: page.Loc})
	document := webtemplates.Document(webtemplates.DocumentData{
		Title:     webtemplates.T(page.Loc, page.Title),
		Lang:      page.Lang,
		BodyClass: "app-body",
	})
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return shell.Render(templ.WithChildren(ctx, fragment), w)
	})
	if err := document.Render(templ.WithChildren(ctx, body), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}

// PublicPage describes a page rendered outside the shell.
type PublicPage struct {
	Title       string
	Description string
	StatusCode  int
	Body        templ.Component
	Lang        string
}

// WritePublicPage writes a public page in the bare document layout.
func WritePublicPage(w http.ResponseWriter, r *http.Request, page PublicPage) {
	if w == nil {
		return
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	var rendered bytes.Buffer
	document := webtemplates.Document(webtemplates.DocumentData{
		Title:       page.Title,
		Lang:        page.Lang,
		Description: page.Description,
		BodyClass:   "public-body",
	})
	if err := document.Render(ctx, &rendered); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	_ = httpx.WriteHTML(w, statusCode, rendered.String())
}
