package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/taskflow/internal/platform/logging"
	"github.com/louisbranch/taskflow/internal/platform/metrics"
	"github.com/louisbranch/taskflow/internal/platform/timeouts"
	webapp "github.com/louisbranch/taskflow/internal/services/web/app"
	"github.com/louisbranch/taskflow/internal/services/web/feedback"
	module "github.com/louisbranch/taskflow/internal/services/web/module"
	"github.com/louisbranch/taskflow/internal/services/web/modules"
	"github.com/louisbranch/taskflow/internal/services/web/navshell"
	"github.com/louisbranch/taskflow/internal/services/web/platform/httpx"
	"github.com/louisbranch/taskflow/internal/services/web/platform/observability"
	"github.com/louisbranch/taskflow/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/taskflow/internal/services/web/routepath"
	webstatic "github.com/louisbranch/taskflow/internal/services/web/static"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// Navigation is the sidebar entry set. Empty uses navshell.DefaultConfig.
	Navigation      navshell.Config
	FeedbackSources feedback.Sources
	FeedbackEnabled bool
	Logger          *zap.Logger
	// Registry receives the service metrics and backs /metrics. Nil creates
	// a fresh registry.
	Registry            *prometheus.Registry
	TracerProvider      trace.TracerProvider
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := logging.OrNop(cfg.Logger)
	registry := cfg.Registry
	if registry == nil {
		registry = metrics.NewRegistry()
	}
	instruments := metrics.New(registry)
	navigation := cfg.Navigation
	if navigation.Len() == 0 {
		navigation = navshell.DefaultConfig()
	}

	deps := module.Dependencies{
		Navigation:          navigation,
		FeedbackSources:     cfg.FeedbackSources,
		FeedbackEnabled:     cfg.FeedbackEnabled,
		Logger:              logger,
		Metrics:             instruments,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	}
	h, err := webapp.Compose(webapp.ComposeInput{
		PublicModules:       modules.DefaultPublicModules(),
		AppModules:          modules.DefaultAppModules(deps),
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle(http.MethodGet+" "+routepath.Metrics, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.Tracing(cfg.TracerProvider),
		observability.RequestMetrics(instruments),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logging.OrNop(cfg.Logger),
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("web server listening", zap.String("addr", s.httpAddr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
