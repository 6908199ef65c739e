package templates

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/taskflow/internal/platform/icons"
	"github.com/louisbranch/taskflow/internal/services/web/feedback"
	"github.com/louisbranch/taskflow/internal/services/web/navshell"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	_ "github.com/louisbranch/taskflow/internal/platform/i18n/catalog"
)

func renderComponent(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func parseHTML(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && match(node) {
			out = append(out, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		value, _ := attrValue(n, "class")
		for _, field := range strings.Fields(value) {
			if field == class {
				return true
			}
		}
		return false
	}
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func mountView(t *testing.T, mode navshell.DisplayMode, path string) navshell.View {
	t.Helper()
	shell := navshell.Mount(context.Background(), navshell.DefaultConfig(), navshell.WithMode(mode))
	t.Cleanup(shell.Close)
	return shell.View(navshell.Path(path))
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Tasks":    "Tasks | TaskFlow",
		"":         "TaskFlow",
		"TaskFlow": "TaskFlow",
	}
	for input, want := range tests {
		if got := ComposePageTitle(input); got != want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDocumentWrapsChildren(t *testing.T) {
	t.Parallel()

	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="child">hello</p>`)
		return err
	})
	ctx := templ.WithChildren(context.Background(), body)
	markup := renderComponent(t, ctx, Document(DocumentData{Title: "Tasks", Lang: "pt-BR", Description: "a & b"}))

	doc := parseHTML(t, markup)
	if titles := findAll(doc, func(n *html.Node) bool { return n.Data == "title" }); len(titles) != 1 || textContent(titles[0]) != "Tasks | TaskFlow" {
		t.Fatalf("title missing or wrong in %q", markup)
	}
	htmlNodes := findAll(doc, func(n *html.Node) bool { return n.Data == "html" })
	if lang, _ := attrValue(htmlNodes[0], "lang"); lang != "pt-BR" {
		t.Fatalf("lang = %q", lang)
	}
	if len(findAll(doc, func(n *html.Node) bool { id, _ := attrValue(n, "id"); return id == "child" })) != 1 {
		t.Fatal("children not rendered")
	}
	if !strings.Contains(markup, `content="a &amp; b"`) {
		t.Fatalf("description not escaped: %q", markup)
	}
	if !strings.Contains(markup, "lucide-layout-dashboard") || !strings.Contains(markup, HTMXScriptURL) {
		t.Fatal("document missing sprite or htmx")
	}
}

func TestSidebarExpandedRendersLabelsAndActiveEntry(t *testing.T) {
	t.Parallel()

	view := mountView(t, navshell.Expanded, "/app/tasks")
	doc := parseHTML(t, renderComponent(t, context.Background(), Sidebar(view, nil)))

	aside := findAll(doc, func(n *html.Node) bool { return n.Data == "aside" })
	if len(aside) != 1 {
		t.Fatalf("aside count = %d", len(aside))
	}
	if mode, _ := attrValue(aside[0], "data-mode"); mode != "expanded" {
		t.Fatalf("data-mode = %q", mode)
	}
	if !hasClass("w-64")(aside[0]) {
		t.Fatal("expanded sidebar missing w-64")
	}

	links := findAll(doc, hasClass("shell-link"))
	if len(links) != 10 {
		t.Fatalf("links = %d, want 10", len(links))
	}
	active := findAll(doc, func(n *html.Node) bool { v, ok := attrValue(n, "aria-current"); return ok && v == "page" })
	if len(active) != 1 || textContent(active[0]) != "Tasks" {
		t.Fatalf("active links = %d", len(active))
	}
	labels := findAll(doc, hasClass("shell-link-label"))
	if textContent(labels[0]) != "Dashboard" {
		t.Fatalf("first label = %q", textContent(labels[0]))
	}
	if len(findAll(doc, hasClass("shell-user-details"))) != 1 {
		t.Fatal("expanded sidebar should show user details")
	}
	toggle := findAll(doc, hasClass("shell-toggle"))
	if post, _ := attrValue(toggle[0], "hx-post"); post != "/app/shell/toggle" {
		t.Fatalf("toggle hx-post = %q", post)
	}
}

func TestSidebarCollapsedHidesLabelsKeepsIcons(t *testing.T) {
	t.Parallel()

	view := mountView(t, navshell.Collapsed, "/app")
	doc := parseHTML(t, renderComponent(t, context.Background(), Sidebar(view, nil)))

	aside := findAll(doc, func(n *html.Node) bool { return n.Data == "aside" })
	if !hasClass("w-16")(aside[0]) {
		t.Fatal("collapsed sidebar missing w-16")
	}
	if style, _ := attrValue(aside[0], "style"); !strings.Contains(style, "width:64px") || !strings.Contains(style, "200ms ease-in-out") {
		t.Fatalf("style = %q", style)
	}
	for _, link := range findAll(doc, hasClass("shell-link")) {
		if len(findAll(link, func(n *html.Node) bool { return n.Data == "svg" })) != 1 {
			t.Fatal("collapsed link lost its icon")
		}
		label := findAll(link, hasClass("shell-link-label"))
		if len(label) != 1 || textContent(label[0]) != "" {
			t.Fatalf("collapsed label = %q", textContent(label[0]))
		}
		if name, _ := attrValue(link, "aria-label"); name == "" {
			t.Fatal("collapsed link missing accessible name")
		}
	}
	if len(findAll(doc, hasClass("shell-user-details"))) != 0 {
		t.Fatal("collapsed sidebar should hide user details")
	}
	if len(findAll(doc, hasClass("avatar-fallback"))) != 1 {
		t.Fatal("collapsed sidebar should keep the avatar")
	}
}

func TestSidebarLocalizesLabels(t *testing.T) {
	t.Parallel()

	view := mountView(t, navshell.Expanded, "/app")
	loc := message.NewPrinter(language.BrazilianPortuguese)
	doc := parseHTML(t, renderComponent(t, context.Background(), Sidebar(view, loc)))

	labels := findAll(doc, hasClass("shell-link-label"))
	if textContent(labels[0]) != "Painel" {
		t.Fatalf("first label = %q, want Painel", textContent(labels[0]))
	}
	toggle := findAll(doc, hasClass("shell-toggle"))
	if name, _ := attrValue(toggle[0], "aria-label"); name != "Recolher barra lateral" {
		t.Fatalf("toggle label = %q", name)
	}
}

func TestAppShellPlacesChildrenInMain(t *testing.T) {
	t.Parallel()

	view := mountView(t, navshell.Expanded, "/app/goals")
	ctx := templ.WithChildren(context.Background(), SectionPage(SectionData{Title: "Goals", Icon: icons.Goals, Path: "/app/goals"}, nil))
	doc := parseHTML(t, renderComponent(t, ctx, AppShell(AppShellData{View: view})))

	mains := findAll(doc, func(n *html.Node) bool { return n.Data == "main" })
	if len(mains) != 1 {
		t.Fatalf("main count = %d", len(mains))
	}
	if len(findAll(mains[0], hasClass("section-page"))) != 1 {
		t.Fatal("section not rendered inside main")
	}
	if len(findAll(doc, hasClass("section-page"))) != 1 {
		t.Fatal("children rendered more than once")
	}
}

func TestAppErrorState(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderComponent(t, context.Background(), AppErrorState(404, nil)))
	section := findAll(doc, hasClass("app-error"))
	if len(section) != 1 {
		t.Fatal("error section missing")
	}
	if status, _ := attrValue(section[0], "data-status"); status != "404" {
		t.Fatalf("status = %q", status)
	}
	if !strings.Contains(textContent(section[0]), "Page not found") {
		t.Fatalf("heading = %q", textContent(section[0]))
	}

	doc = parseHTML(t, renderComponent(t, context.Background(), AppErrorState(503, nil)))
	if status, _ := attrValue(findAll(doc, hasClass("app-error"))[0], "data-status"); status != "500" {
		t.Fatalf("5xx status folded to %q", status)
	}
	if got := AppErrorPageTitle(404, message.NewPrinter(language.BrazilianPortuguese)); got != "Página não encontrada" {
		t.Fatalf("pt-BR title = %q", got)
	}
}

func TestLandingPageSections(t *testing.T) {
	t.Parallel()

	view := LandingView{
		HeadlineLead:   "Automate Your Tasks,",
		HeadlineAccent: "Amplify Your Productivity",
		HeroPrimary:    LandingLink{Label: "Get Started", Href: "/app/tasks"},
		Features: []LandingFeature{
			{Icon: icons.Automations, Title: "Smart Automation", Description: "Rules."},
			{Icon: icons.Analytics, Title: "Analytics Dashboard", Description: "Reports."},
		},
		Benefits:     []string{"Improve team collaboration"},
		Testimonials: []LandingTestimonial{{Quote: "Great <tool>", Author: "Sarah Johnson", Role: "PM"}},
		FooterGroups: []LandingLinkGroup{{Title: "Legal", Links: []LandingLink{{Label: "Privacy", Href: "#"}}}},
		Year:         2026,
	}
	markup := renderComponent(t, context.Background(), LandingPage(view, nil))
	doc := parseHTML(t, markup)

	if got := len(findAll(doc, hasClass("feature-card"))); got != 2 {
		t.Fatalf("feature cards = %d", got)
	}
	if got := len(findAll(doc, hasClass("testimonial-card"))); got != 1 {
		t.Fatalf("testimonials = %d", got)
	}
	if !strings.Contains(markup, "Great &lt;tool&gt;") {
		t.Fatal("testimonial quote not escaped")
	}
	footer := findAll(doc, hasClass("footer-copyright"))
	if len(footer) != 1 || textContent(footer[0]) != "© 2026 TaskFlow. All rights reserved." {
		t.Fatalf("footer = %q", textContent(footer[0]))
	}
	hero := findAll(doc, hasClass("landing-hero"))
	anchors := findAll(hero[0], func(n *html.Node) bool { return n.Data == "a" })
	if href, _ := attrValue(anchors[0], "href"); href != "/app/tasks" {
		t.Fatalf("hero href = %q", href)
	}
}

func TestSidebarFromRendersStartingWidth(t *testing.T) {
	t.Parallel()

	view := mountView(t, navshell.Collapsed, "/app")
	doc := parseHTML(t, renderComponent(t, context.Background(), SidebarFrom(view, navshell.ExpandedWidth, nil)))

	aside := findAll(doc, func(n *html.Node) bool { return n.Data == "aside" })
	if len(aside) != 1 {
		t.Fatalf("asides = %d, want 1", len(aside))
	}
	if style, _ := attrValue(aside[0], "style"); !strings.HasPrefix(style, "width:256px;") {
		t.Fatalf("style = %q, want starting width 256px", style)
	}
	if width, _ := attrValue(aside[0], "data-width"); width != "64" {
		t.Fatalf("data-width = %q, want target 64", width)
	}
	if !hasClass("w-16")(aside[0]) {
		t.Fatal("swapped sidebar should carry the target width class")
	}
}

func TestSidebarFeedbackURLsFollowAudibleEvents(t *testing.T) {
	t.Parallel()

	view := mountView(t, navshell.Expanded, "/app")
	view.Feedback = []feedback.Event{feedback.EventClick}
	doc := parseHTML(t, renderComponent(t, context.Background(), Sidebar(view, nil)))

	aside := findAll(doc, func(n *html.Node) bool { return n.Data == "aside" })
	if url, ok := attrValue(aside[0], "data-feedback-click-url"); !ok || url != "/app/shell/feedback?event=click" {
		t.Fatalf("click url = %q, %v", url, ok)
	}
	if _, ok := attrValue(aside[0], "data-feedback-hover-url"); ok {
		t.Fatal("silent hover must not expose a feedback url")
	}

	view.Feedback = nil
	doc = parseHTML(t, renderComponent(t, context.Background(), Sidebar(view, nil)))
	aside = findAll(doc, func(n *html.Node) bool { return n.Data == "aside" })
	for _, attr := range aside[0].Attr {
		if strings.HasPrefix(attr.Key, "data-feedback-") {
			t.Fatalf("unexpected %s without audible feedback", attr.Key)
		}
	}
}
