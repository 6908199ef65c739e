// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root          = "/"
	RootPattern   = "/{$}"
	Health        = "/up"
	Metrics       = "/metrics"
	StaticPrefix  = "/static/"
	AppPrefix     = "/app/"
	AppRoot       = "/app"
	ShellPrefix   = AppPrefix + "shell/"
	ShellToggle   = ShellPrefix + "toggle"
	ShellFeedback = ShellPrefix + "feedback"
)

// FeedbackEventParam is the query parameter naming the feedback event.
const FeedbackEventParam = "event"

// AppSectionPath returns the dashboard route for a section slug.
func AppSectionPath(section string) string {
	section = strings.Trim(strings.TrimSpace(section), "/")
	if section == "" {
		return AppRoot
	}
	return AppPrefix + url.PathEscape(section)
}

// ShellFeedbackFor returns the feedback route for an event name.
func ShellFeedbackFor(event string) string {
	return ShellFeedback + "?" + url.Values{FeedbackEventParam: {strings.TrimSpace(event)}}.Encode()
}

// IsApp reports whether path belongs to the dashboard surface.
func IsApp(path string) bool {
	return path == AppRoot || strings.HasPrefix(path, AppPrefix)
}
