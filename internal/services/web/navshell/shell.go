package navshell

import (
	"context"
	"iter"

	"github.com/google/uuid"
	"github.com/louisbranch/taskflow/internal/platform/branding"
	"github.com/louisbranch/taskflow/internal/platform/icons"
	"github.com/louisbranch/taskflow/internal/services/web/feedback"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Observer is notified after every toggle.
type Observer interface {
	ShellToggled(mode DisplayMode)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(mode DisplayMode)

// ShellToggled calls f.
func (f ObserverFunc) ShellToggled(mode DisplayMode) {
	f(mode)
}

type mountOptions struct {
	mode         DisplayMode
	surface      Surface
	acquirer     feedback.Acquirer
	sources      feedback.Sources
	feedbackOpts []feedback.Option
	logger       *zap.Logger
	observer     Observer
}

// Option configures Mount.
type Option func(*mountOptions)

// WithMode sets the initial display mode.
func WithMode(mode DisplayMode) Option {
	return func(o *mountOptions) {
		o.mode = mode
	}
}

// WithSurface sets the surface receiving width transitions.
func WithSurface(surface Surface) Option {
	return func(o *mountOptions) {
		o.surface = surface
	}
}

// WithFeedback enables audio feedback using acquirer for sources.
func WithFeedback(acquirer feedback.Acquirer, sources feedback.Sources, opts ...feedback.Option) Option {
	return func(o *mountOptions) {
		o.acquirer = acquirer
		o.sources = sources
		o.feedbackOpts = append(o.feedbackOpts, opts...)
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *mountOptions) {
		o.logger = logger
	}
}

// WithObserver sets the toggle observer.
func WithObserver(observer Observer) Option {
	return func(o *mountOptions) {
		o.observer = observer
	}
}

// Shell is a mounted navigation sidebar.
type Shell struct {
	id       string
	cfg      Config
	mode     DisplayMode
	surface  Surface
	sources  feedback.Sources
	feedback *feedback.Set
	logger   *zap.Logger
	observer Observer
	span     trace.Span
	closed   bool
}

// Mount builds a shell for cfg and acquires its feedback handles. The span in
// ctx, if any, receives toggle events.
func Mount(ctx context.Context, cfg Config, opts ...Option) *Shell {
	if ctx == nil {
		ctx = context.Background()
	}
	options := mountOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Shell{
		id:       uuid.NewString(),
		cfg:      cfg,
		mode:     options.mode,
		surface:  options.surface,
		observer: options.observer,
		span:     trace.SpanFromContext(ctx),
	}
	s.logger = logger.With(zap.String("shell_id", s.id))
	if options.acquirer != nil {
		s.sources = options.sources
		feedbackOpts := append([]feedback.Option{feedback.WithLogger(s.logger)}, options.feedbackOpts...)
		s.feedback = feedback.Mount(ctx, options.acquirer, options.sources, feedbackOpts...)
	}
	return s
}

// ID returns the per-mount instance id.
func (s *Shell) ID() string {
	return s.id
}

// Mode returns the current display mode.
func (s *Shell) Mode() DisplayMode {
	return s.mode
}

// Config returns the entry set the shell was mounted with.
func (s *Shell) Config() Config {
	return s.cfg
}

// Toggle triggers click feedback, flips the display mode and asks the surface
// to animate to the new width. It never waits for playback.
func (s *Shell) Toggle() DisplayMode {
	s.feedback.Trigger(feedback.EventClick)
	s.mode = s.mode.Toggled()
	transition := TransitionTo(s.mode)
	if s.surface != nil {
		s.surface.AnimateWidth(transition)
	}
	s.span.AddEvent("navshell.toggle", trace.WithAttributes(
		attribute.String("navshell.mode", s.mode.String()),
		attribute.Int("navshell.width_px", transition.TargetWidth),
		attribute.String("navshell.id", s.id),
	))
	if s.observer != nil {
		s.observer.ShellToggled(s.mode)
	}
	s.logger.Debug("shell toggled", zap.Stringer("mode", s.mode))
	return s.mode
}

// Hover plays the hover cue.
func (s *Shell) Hover() {
	s.feedback.Trigger(feedback.EventHover)
}

// Click plays the click cue.
func (s *Shell) Click() {
	s.feedback.Trigger(feedback.EventClick)
}

// audibleEvents returns the events with an acquired handle and a non-silent
// source.
func (s *Shell) audibleEvents() []feedback.Event {
	var events []feedback.Event
	for _, event := range feedback.Events() {
		if s.feedback.Enabled(event) && s.sources.For(event) != "" {
			events = append(events, event)
		}
	}
	return events
}

// ResolveActive returns the entry whose target equals currentPath exactly.
// With duplicate targets the first configured entry wins.
func (s *Shell) ResolveActive(currentPath string) (Entry, bool) {
	return s.cfg.Resolve(currentPath)
}

// Active resolves the entry for the path loc reports.
func (s *Shell) Active(loc Location) (Entry, bool) {
	if loc == nil {
		return Entry{}, false
	}
	return s.ResolveActive(loc.CurrentPath())
}

// EntryView is an entry as rendered in the current mode.
type EntryView struct {
	Entry       Entry
	Label       string
	LabelHidden bool
	Icon        icons.ID
	Active      bool
}

// Entries yields every entry in order as rendered in the current mode. The
// sequence reads the mode when iteration starts and may be ranged again.
func (s *Shell) Entries() iter.Seq[EntryView] {
	return s.entries(-1)
}

func (s *Shell) entries(activeIdx int) iter.Seq[EntryView] {
	return func(yield func(EntryView) bool) {
		collapsed := s.mode == Collapsed
		for idx, entry := range s.cfg.entries {
			view := EntryView{
				Entry:       entry,
				Label:       entry.Label,
				LabelHidden: collapsed,
				Icon:        entry.Icon,
				Active:      idx == activeIdx,
			}
			if collapsed {
				view.Label = ""
			}
			if !yield(view) {
				return
			}
		}
	}
}

// Settle waits for in-flight playback until ctx ends.
func (s *Shell) Settle(ctx context.Context) error {
	return s.feedback.Wait(ctx)
}

// Close unmounts the shell, stopping and rewinding its feedback handles.
// Later calls do nothing.
func (s *Shell) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.feedback.Close()
}

// View is a render snapshot of the shell.
type View struct {
	ShellID     string
	Mode        DisplayMode
	Collapsed   bool
	Transition  Transition
	Brand       string
	BrandIcon   icons.ID
	Entries     []EntryView
	Active      Entry
	HasActive   bool
	User        UserView
	Menu        []MenuItem
	ToggleLabel string
	ToggleIcon  icons.ID
	// Feedback lists the events that play a sound on this mount.
	Feedback []feedback.Event
}

// UserView is the user badge as rendered in the current mode.
type UserView struct {
	Name          string
	Email         string
	AvatarURL     string
	Initials      string
	DetailsHidden bool
}

// View snapshots the shell for rendering at loc.
func (s *Shell) View(loc Location) View {
	collapsed := s.mode == Collapsed
	activeIdx := -1
	if loc != nil {
		activeIdx = s.cfg.index(loc.CurrentPath())
	}

	view := View{
		ShellID:    s.id,
		Mode:       s.mode,
		Collapsed:  collapsed,
		Transition: TransitionTo(s.mode),
		Brand:      branding.AppName,
		BrandIcon:  icons.Brand,
		Entries:    make([]EntryView, 0, s.cfg.Len()),
		Menu:       s.cfg.Menu(),
		Feedback:   s.audibleEvents(),
	}
	view.ToggleLabel, view.ToggleIcon = "Collapse sidebar", icons.CollapseShell
	if collapsed {
		view.ToggleLabel = "Expand sidebar"
		view.ToggleIcon = icons.ExpandShell
	}
	for entry := range s.entries(activeIdx) {
		view.Entries = append(view.Entries, entry)
	}
	if activeIdx >= 0 {
		view.Active = s.cfg.entries[activeIdx]
		view.HasActive = true
	}
	user := s.cfg.User()
	view.User = UserView{
		Name:          user.Name,
		Email:         user.Email,
		AvatarURL:     user.AvatarURL,
		Initials:      user.Initials(),
		DetailsHidden: collapsed,
	}
	return view
}
