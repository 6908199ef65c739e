package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/taskflow/internal/platform/icons"
)

// SectionData describes a dashboard section placeholder.
type SectionData struct {
	Title string
	Icon  icons.ID
	Path  string
}

// SectionPage renders the placeholder body of a dashboard section.
func SectionPage(data SectionData, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="section-page"`)
		h.attr("data-section-path", data.Path)
		h.raw(`><header class="section-header">`)
		h.render(ctx, Icon(data.Icon, "section-icon"))
		h.raw(`<h1>`)
		h.text(T(loc, data.Title))
		h.raw(`</h1></header><p class="section-empty">`)
		h.text(T(loc, "This section has no content yet."))
		h.raw(`</p></section>`)
	})
}
