package templates

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/taskflow/internal/services/web/navshell"
	"github.com/louisbranch/taskflow/internal/services/web/routepath"
)

// SidebarID is the DOM id the toggle swaps.
const SidebarID = "shell-sidebar"

// Sidebar renders the navigation shell for view.
func Sidebar(view navshell.View, loc Localizer) templ.Component {
	return SidebarFrom(view, view.Transition.TargetWidth, loc)
}

// SidebarFrom renders the navigation shell for view at fromWidth pixels. The
// browser then animates the swapped sidebar to the view's target width.
func SidebarFrom(view navshell.View, fromWidth int, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		transition := view.Transition
		h.raw(`<aside`)
		h.attr("id", SidebarID)
		h.attr("class", "shell-sidebar "+transition.WidthClass)
		h.attr("data-mode", view.Mode.String())
		h.attr("data-shell-id", view.ShellID)
		for _, event := range view.Feedback {
			h.attr("data-feedback-"+event.String()+"-url", routepath.ShellFeedbackFor(event.String()))
		}
		h.intAttr("data-width", transition.TargetWidth)
		h.attr("style", fmt.Sprintf("width:%dpx;transition:width %dms %s", fromWidth, transition.DurationMS, transition.Easing))
		h.raw(`>`)

		h.raw(`<div class="shell-header"><a class="shell-brand"`)
		h.attr("href", routepath.AppRoot)
		h.raw(`>`)
		h.render(ctx, Icon(view.BrandIcon, "shell-brand-icon"))
		h.raw(`<span`)
		h.attr("class", hiddenClass("shell-brand-name", view.Collapsed))
		if view.Collapsed {
			h.raw(` aria-hidden="true"`)
		}
		h.raw(`>`)
		h.text(view.Brand)
		h.raw(`</span></a>`)

		toggleLabel := T(loc, view.ToggleLabel)
		h.raw(`<button type="button" class="shell-toggle" data-feedback="hover"`)
		h.attr("hx-post", routepath.ShellToggle)
		h.attr("hx-target", "#"+SidebarID)
		h.attr("hx-swap", "outerHTML")
		h.attr("aria-label", toggleLabel)
		h.attr("title", toggleLabel)
		h.attr("aria-controls", SidebarID)
		h.attr("aria-expanded", strconv.FormatBool(!view.Collapsed))
		h.raw(`>`)
		h.render(ctx, Icon(view.ToggleIcon, "shell-toggle-icon"))
		h.raw(`</button></div>`)

		h.raw(`<nav class="shell-nav"`)
		h.attr("aria-label", T(loc, "Main navigation"))
		h.raw(`><ul class="shell-links">`)
		for _, entry := range view.Entries {
			renderSidebarEntry(ctx, h, entry, loc)
		}
		h.raw(`</ul></nav>`)

		renderUserMenu(ctx, h, view, loc)
		h.raw(`</aside>`)
	})
}

func renderSidebarEntry(ctx context.Context, h *htmlWriter, entry navshell.EntryView, loc Localizer) {
	name := T(loc, entry.Entry.Label)
	class := "shell-link"
	if entry.Active {
		class += " is-active"
	}
	h.raw(`<li><a`)
	h.attr("class", class)
	h.attr("href", entry.Entry.TargetPath)
	h.attr("data-feedback", "hover click")
	if entry.Active {
		h.raw(` aria-current="page"`)
	}
	if entry.LabelHidden {
		h.attr("aria-label", name)
		h.attr("title", name)
	}
	h.raw(`>`)
	h.render(ctx, Icon(entry.Icon, "shell-link-icon"))
	h.raw(`<span`)
	h.attr("class", hiddenClass("shell-link-label", entry.LabelHidden))
	h.raw(`>`)
	if entry.Label != "" {
		h.text(T(loc, entry.Label))
	}
	h.raw(`</span></a></li>`)
}

func renderUserMenu(ctx context.Context, h *htmlWriter, view navshell.View, loc Localizer) {
	user := view.User
	if user.Name == "" {
		return
	}
	h.raw(`<div class="shell-user"><details class="shell-user-menu"><summary class="shell-user-trigger" data-feedback="hover">`)
	h.raw(`<span class="avatar">`)
	if user.AvatarURL != "" {
		h.raw(`<img class="avatar-image"`)
		h.attr("src", user.AvatarURL)
		h.attr("alt", user.Name)
		h.raw(`>`)
	}
	h.raw(`<span class="avatar-fallback">`)
	h.text(user.Initials)
	h.raw(`</span></span>`)
	if !user.DetailsHidden {
		h.raw(`<span class="shell-user-details"><span class="shell-user-name">`)
		h.text(user.Name)
		h.raw(`</span><span class="shell-user-email">`)
		h.text(user.Email)
		h.raw(`</span></span>`)
	}
	h.raw(`</summary><div class="shell-user-dropdown" role="menu"><p class="menu-label">`)
	h.text(T(loc, "My Account"))
	h.raw(`</p>`)
	for _, item := range view.Menu {
		class := "menu-item"
		if item.Destructive {
			class += " is-destructive"
		}
		h.raw(`<a role="menuitem"`)
		h.attr("class", class)
		h.attr("href", item.Href)
		h.raw(`>`)
		h.render(ctx, Icon(item.Icon, "menu-item-icon"))
		h.raw(`<span>`)
		h.text(T(loc, item.Label))
		h.raw(`</span></a>`)
	}
	h.raw(`</div></details></div>`)
}

func hiddenClass(base string, hidden bool) string {
	if hidden {
		return base + " is-hidden"
	}
	return base
}

// AppShellData describes the dashboard frame around a page.
type AppShellData struct {
	View navshell.View
	Loc  Localizer
}

// AppShell renders the sidebar and its children as the main content.
func AppShell(data AppShellData) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		body, ctx := children(ctx)
		h.raw(`<div class="app-shell"`)
		h.attr("data-mode", data.View.Mode.String())
		h.raw(`>`)
		h.render(ctx, Sidebar(data.View, data.Loc))
		h.raw(`<main id="main-content" class="app-main">`)
		h.render(ctx, body)
		h.raw(`</main></div>`)
	})
}
