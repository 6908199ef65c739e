package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/taskflow/internal/platform/icons"
)

// Icon renders a sprite reference for id.
func Icon(id icons.ID, class string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<svg`)
		h.attr("class", "icon "+class)
		h.attr("data-icon", string(id))
		h.raw(` aria-hidden="true" focusable="false"><use`)
		h.attr("href", "#"+icons.LucideSymbolID(icons.LucideNameOrDefault(id)))
		h.raw(`></use></svg>`)
	})
}
