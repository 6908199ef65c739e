// Package shellcookie persists the navigation shell display mode.
package shellcookie

import (
	"net/http"
	"time"

	"github.com/louisbranch/taskflow/internal/services/web/navshell"
	"github.com/louisbranch/taskflow/internal/services/web/platform/requestmeta"
)

// Name is the display mode cookie name.
const Name = "taskflow_shell"

const maxAge = 365 * 24 * time.Hour

// ReadMode returns the persisted mode, Expanded when absent or unreadable.
func ReadMode(r *http.Request) navshell.DisplayMode {
	if r == nil {
		return navshell.Expanded
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return navshell.Expanded
	}
	return navshell.ParseDisplayMode(cookie.Value)
}

// WriteMode persists mode for later requests.
func WriteMode(w http.ResponseWriter, r *http.Request, mode navshell.DisplayMode, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    mode.String(),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}
