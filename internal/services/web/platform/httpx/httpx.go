// Package httpx provides HTTP middleware and response helpers used by web
// modules.
package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	apperrors "github.com/louisbranch/taskflow/internal/services/web/platform/errors"
	"go.uber.org/zap"
)

const (
	htmxHeader           = "HX-Request"
	htmxCurrentURLHeader = "HX-Current-URL"
	htmxTriggerHeader    = "HX-Trigger"
	htmxAfterSettle      = "HX-Trigger-After-Settle"
	htmxRedirectHeader   = "HX-Redirect"
	requestIDHeader      = "X-Request-ID"
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in declaration order.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	wrapped := handler
	for idx := len(middleware) - 1; idx >= 0; idx-- {
		if middleware[idx] == nil {
			continue
		}
		wrapped = middleware[idx](wrapped)
	}
	return wrapped
}

// MethodNotAllowed writes a 405 response with an Allow header.
func MethodNotAllowed(allow string) http.HandlerFunc {
	allow = strings.TrimSpace(allow)
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", allow)
		WriteError(w, apperrors.E(apperrors.KindMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed)))
	}
}

// RequestID injects and echoes a request id for correlation.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if requestID == "" {
				requestID = "web-" + uuid.NewString()
				r.Header.Set(requestIDHeader, requestID)
			}
			w.Header().Set(requestIDHeader, requestID)
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDFrom returns the correlation id set by RequestID, or "-".
func RequestIDFrom(r *http.Request) string {
	if r == nil {
		return "-"
	}
	if id := strings.TrimSpace(r.Header.Get(requestIDHeader)); id != "" {
		return id
	}
	return "-"
}

// RecoverPanic converts panics into HTTP 500 responses and logs the stack.
func RecoverPanic(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}
				logger.Error("panic recovered",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("request_id", RequestIDFrom(r)),
					zap.Any("panic", recovered),
					zap.StackSkip("stack", 1),
				)
				w.WriteHeader(http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestContext returns r.Context() with a nil-safe fallback.
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// IsHTMXRequest reports whether the current request came from HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return r.Header.Get(htmxHeader) == "true"
}

// HTMXCurrentPath returns the path of the page that issued an HTMX request.
func HTMXCurrentPath(r *http.Request) (string, bool) {
	if !IsHTMXRequest(r) {
		return "", false
	}
	raw := strings.TrimSpace(r.Header.Get(htmxCurrentURLHeader))
	if raw == "" {
		return "", false
	}
	if idx := strings.Index(raw, "://"); idx >= 0 {
		rest := raw[idx+3:]
		slash := strings.Index(rest, "/")
		if slash < 0 {
			return "/", true
		}
		raw = rest[slash:]
	}
	if cut := strings.IndexAny(raw, "?#"); cut >= 0 {
		raw = raw[:cut]
	}
	if !strings.HasPrefix(raw, "/") {
		return "", false
	}
	return raw, true
}

// WriteHTML writes an HTML payload with the provided status code.
func WriteHTML(w http.ResponseWriter, status int, payload string) error {
	if w == nil {
		return fmt.Errorf("response writer is required")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, payload)
	return err
}

// WriteError writes a plain error response using typed status mapping.
func WriteError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Error(w, err.Error(), apperrors.HTTPStatus(err))
}

// SetHXTrigger encodes events as the HX-Trigger header. htmx dispatches them
// before swapping the response in. It must be called before the status is
// written.
func SetHXTrigger(w http.ResponseWriter, events map[string]any) error {
	return setTrigger(w, htmxTriggerHeader, events)
}

// SetHXTriggerAfterSettle encodes events dispatched once the swapped content
// has settled, so handlers see the new elements with their final attributes.
func SetHXTriggerAfterSettle(w http.ResponseWriter, events map[string]any) error {
	return setTrigger(w, htmxAfterSettle, events)
}

func setTrigger(w http.ResponseWriter, header string, events map[string]any) error {
	if w == nil || len(events) == 0 {
		return nil
	}
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode %s: %w", strings.ToLower(header), err)
	}
	w.Header().Set(header, string(payload))
	return nil
}

// WriteRedirect writes an HTMX-aware redirect response.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	if w == nil {
		return
	}
	if IsHTMXRequest(r) {
		w.Header().Set(htmxRedirectHeader, location)
		w.WriteHeader(http.StatusOK)
		return
	}
	if r == nil {
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
