package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/taskflow/internal/platform/branding"
	"github.com/louisbranch/taskflow/internal/platform/icons"
)

// HTMXScriptURL is the htmx build loaded by every page.
const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// DocumentData describes the outer HTML document.
type DocumentData struct {
	Title       string
	Lang        string
	Description string
	BodyClass   string
}

// ComposePageTitle suffixes title with the product name.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == branding.AppName {
		return branding.AppName
	}
	return title + " | " + branding.AppName
}

// Document wraps its children in the full HTML document.
func Document(data DocumentData) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		body, ctx := children(ctx)
		lang := strings.TrimSpace(data.Lang)
		if lang == "" {
			lang = "en-US"
		}
		h.raw(`<!doctype html><html`)
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(ComposePageTitle(data.Title))
		h.raw(`</title>`)
		if description := strings.TrimSpace(data.Description); description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", description)
			h.raw(`>`)
		}
		h.raw(`<link rel="stylesheet" href="/static/app.css"><script`)
		h.attr("src", HTMXScriptURL)
		h.raw(` defer></script><script src="/static/app.js" defer></script></head><body`)
		if class := strings.TrimSpace(data.BodyClass); class != "" {
			h.attr("class", class)
		}
		h.raw(`>`)
		h.raw(icons.LucideSprite())
		h.render(ctx, body)
		h.raw(`</body></html>`)
	})
}
