// Package web parses web command configuration and launches the TaskFlow web
// service.
package web

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	entrypoint "github.com/louisbranch/taskflow/internal/platform/cmd"
	"github.com/louisbranch/taskflow/internal/platform/logging"
	"github.com/louisbranch/taskflow/internal/services/web"
	"github.com/louisbranch/taskflow/internal/services/web/feedback"
	"github.com/louisbranch/taskflow/internal/services/web/navshell"
	"github.com/louisbranch/taskflow/internal/services/web/platform/requestmeta"
	"go.uber.org/zap"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"TASKFLOW_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	// NavConfig is an optional YAML file replacing the default sidebar entries.
	NavConfig           string `env:"TASKFLOW_WEB_NAV_CONFIG"`
	HoverSound          string `env:"TASKFLOW_WEB_HOVER_SOUND"`
	ClickSound          string `env:"TASKFLOW_WEB_CLICK_SOUND"`
	DisableFeedback     bool   `env:"TASKFLOW_WEB_DISABLE_FEEDBACK"`
	TrustForwardedProto bool   `env:"TASKFLOW_WEB_TRUST_FORWARDED_PROTO"`
	LogLevel            string `env:"TASKFLOW_LOG_LEVEL" envDefault:"info"`
	LogDevelopment      bool   `env:"TASKFLOW_LOG_DEVELOPMENT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{ClickSound: feedback.DefaultClickSource}
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.NavConfig, "nav-config", cfg.NavConfig, "YAML file with sidebar entries")
	fs.StringVar(&cfg.HoverSound, "hover-sound", cfg.HoverSound, "Audio played when hovering sidebar entries (empty is silent)")
	fs.StringVar(&cfg.ClickSound, "click-sound", cfg.ClickSound, "Audio played when clicking sidebar entries (empty is silent)")
	fs.BoolVar(&cfg.DisableFeedback, "disable-feedback", cfg.DisableFeedback, "Disable hover and click audio feedback")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto when deciding cookie security")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	navigation, err := loadNavigation(cfg.NavConfig)
	if err != nil {
		return err
	}
	sources := feedbackSources(cfg, logger)

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return serve(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			Navigation:          navigation,
			FeedbackSources:     sources,
			FeedbackEnabled:     !cfg.DisableFeedback,
			Logger:              logger,
			RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		})
	})
}

func serve(ctx context.Context, cfg web.Config) error {
	server, err := web.NewServer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

// loadNavigation reads the sidebar entries from path, or returns the default
// entries when path is blank.
func loadNavigation(path string) (navshell.Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return navshell.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return navshell.Config{}, fmt.Errorf("open nav config: %w", err)
	}
	defer f.Close()

	nav, err := navshell.LoadConfig(f)
	if err != nil {
		return navshell.Config{}, fmt.Errorf("load nav config %s: %w", path, err)
	}
	return nav, nil
}

// feedbackSources trims the configured sounds. An unusable source silences
// its event instead of failing startup.
func feedbackSources(cfg Config, logger *zap.Logger) feedback.Sources {
	logger = logging.OrNop(logger)
	sources := feedback.Sources{
		Hover: strings.TrimSpace(cfg.HoverSound),
		Click: strings.TrimSpace(cfg.ClickSound),
	}
	for _, event := range feedback.Events() {
		source := sources.For(event)
		if source == "" {
			continue
		}
		if err := feedback.ValidateSource(source); err != nil {
			logger.Warn("audio feedback disabled",
				zap.String("event", event.String()),
				zap.String("source", source),
				zap.Error(err),
			)
			sources = sources.Without(event)
		}
	}
	return sources
}
