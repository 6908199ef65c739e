package templates

import (
	"context"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/taskflow/internal/services/web/routepath"
)

const (
	appErrorHeadingNotFound  = "Page not found"
	appErrorHeadingServerErr = "Something went wrong"
	appErrorMessageNotFound  = "The page you requested does not exist."
	appErrorMessageServerErr = "An unexpected error occurred. Please try again."
	appErrorBackToDashboard  = "Back to dashboard"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	return appErrorHeading(statusCode, loc)
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if NormalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFound)
	}
	return T(loc, appErrorHeadingServerErr)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if NormalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFound)
	}
	return T(loc, appErrorMessageServerErr)
}

// NormalizeAppErrorStatus folds every status into 404 or 500.
func NormalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// AppErrorState renders the error body shown inside the shell.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		status := NormalizeAppErrorStatus(statusCode)
		h.raw(`<section class="app-error"`)
		h.attr("data-status", strconv.Itoa(status))
		h.raw(`><p class="app-error-code">`)
		h.text(strconv.Itoa(status))
		h.raw(`</p><h1>`)
		h.text(appErrorHeading(status, loc))
		h.raw(`</h1><p>`)
		h.text(appErrorMessage(status, loc))
		h.raw(`</p><a class="button"`)
		h.attr("href", routepath.AppRoot)
		h.raw(`>`)
		h.text(T(loc, appErrorBackToDashboard))
		h.raw(`</a></section>`)
	})
}
