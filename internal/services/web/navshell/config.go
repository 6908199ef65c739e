package navshell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/taskflow/internal/platform/icons"
	"gopkg.in/yaml.v3"
)

// Entry is one navigation destination.
type Entry struct {
	Label      string
	TargetPath string
	Icon       icons.ID
}

// MenuItem is one action in the account menu.
type MenuItem struct {
	Label       string
	Icon        icons.ID
	Href        string
	Destructive bool
}

// UserBadge is the account summary shown at the foot of the sidebar.
type UserBadge struct {
	Name      string
	Email     string
	AvatarURL string
}

// Initials returns up to two uppercase initials from Name.
func (u UserBadge) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(u.Name) {
		for _, r := range part {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// Config is the immutable entry set a shell renders. The zero value has no
// entries and no user badge.
type Config struct {
	entries []Entry
	user    UserBadge
	menu    []MenuItem
}

// NewConfig returns a Config holding a copy of entries in order.
func NewConfig(entries ...Entry) Config {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return Config{entries: copied}
}

// WithUser returns a copy of c carrying user and its account menu.
func (c Config) WithUser(user UserBadge, menu ...MenuItem) Config {
	copiedMenu := make([]MenuItem, len(menu))
	copy(copiedMenu, menu)
	return Config{entries: c.entries, user: user, menu: copiedMenu}
}

// Len returns the number of entries.
func (c Config) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in configured order.
func (c Config) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// User returns the user badge.
func (c Config) User() UserBadge {
	return c.user
}

// Menu returns a copy of the account menu.
func (c Config) Menu() []MenuItem {
	out := make([]MenuItem, len(c.menu))
	copy(out, c.menu)
	return out
}

// Resolve returns the first entry whose TargetPath equals path exactly.
func (c Config) Resolve(path string) (Entry, bool) {
	idx := c.index(path)
	if idx < 0 {
		return Entry{}, false
	}
	return c.entries[idx], true
}

func (c Config) index(path string) int {
	for idx, entry := range c.entries {
		if entry.TargetPath == path {
			return idx
		}
	}
	return -1
}

// DefaultConfig returns the product sidebar: ten sections under /app plus
// the demo account badge.
func DefaultConfig() Config {
	return NewConfig(
		Entry{Label: "Dashboard", TargetPath: "/app", Icon: icons.Dashboard},
		Entry{Label: "Projects", TargetPath: "/app/projects", Icon: icons.Projects},
		Entry{Label: "Goals", TargetPath: "/app/goals", Icon: icons.Goals},
		Entry{Label: "Tasks", TargetPath: "/app/tasks", Icon: icons.Tasks},
		Entry{Label: "Upcoming", TargetPath: "/app/upcoming", Icon: icons.Upcoming},
		Entry{Label: "Focus", TargetPath: "/app/focus", Icon: icons.Focus},
		Entry{Label: "Docs", TargetPath: "/app/docs", Icon: icons.Docs},
		Entry{Label: "Tags", TargetPath: "/app/tags", Icon: icons.Tags},
		Entry{Label: "Automations", TargetPath: "/app/automations", Icon: icons.Automations},
		Entry{Label: "Settings", TargetPath: "/app/settings", Icon: icons.Settings},
	).WithUser(DefaultUser(), DefaultMenu()...)
}

// DefaultUser returns the demo account badge.
func DefaultUser() UserBadge {
	return UserBadge{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		AvatarURL: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg",
	}
}

// DefaultMenu returns the account menu actions.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Label: "Account", Icon: icons.Account, Href: "#"},
		{Label: "Billing", Icon: icons.Billing, Href: "#"},
		{Label: "Upgrade to Pro", Icon: icons.Upgrade, Href: "#"},
		{Label: "Log out", Icon: icons.LogOut, Href: "#", Destructive: true},
	}
}

type fileConfig struct {
	Entries []fileEntry    `yaml:"entries"`
	User    *fileUser      `yaml:"user"`
	Menu    []fileMenuItem `yaml:"menu"`
}

type fileEntry struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
	Icon  string `yaml:"icon"`
}

type fileUser struct {
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Avatar string `yaml:"avatar"`
}

type fileMenuItem struct {
	Label       string `yaml:"label"`
	Icon        string `yaml:"icon"`
	Href        string `yaml:"href"`
	Destructive bool   `yaml:"destructive"`
}

// LoadConfig decodes a YAML entry set. Omitted user and menu sections fall
// back to DefaultUser and DefaultMenu.
func LoadConfig(r io.Reader) (Config, error) {
	if r == nil {
		return Config{}, errors.New("nav config reader is required")
	}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var file fileConfig
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, errors.New("nav config is empty")
		}
		return Config{}, fmt.Errorf("decode nav config: %w", err)
	}
	if len(file.Entries) == 0 {
		return Config{}, errors.New("nav config: at least one entry is required")
	}

	entries := make([]Entry, 0, len(file.Entries))
	for idx, raw := range file.Entries {
		entry, err := raw.entry()
		if err != nil {
			return Config{}, fmt.Errorf("nav config entry %d: %w", idx, err)
		}
		entries = append(entries, entry)
	}

	user := DefaultUser()
	if file.User != nil {
		user = UserBadge{
			Name:      strings.TrimSpace(file.User.Name),
			Email:     strings.TrimSpace(file.User.Email),
			AvatarURL: strings.TrimSpace(file.User.Avatar),
		}
		if user.Name == "" {
			return Config{}, errors.New("nav config user: name is required")
		}
	}

	menu := DefaultMenu()
	if file.Menu != nil {
		menu = make([]MenuItem, 0, len(file.Menu))
		for idx, raw := range file.Menu {
			label := strings.TrimSpace(raw.Label)
			if label == "" {
				return Config{}, fmt.Errorf("nav config menu item %d: label is required", idx)
			}
			icon, err := parseIcon(raw.Icon)
			if err != nil {
				return Config{}, fmt.Errorf("nav config menu item %d: %w", idx, err)
			}
			href := strings.TrimSpace(raw.Href)
			if href == "" {
				href = "#"
			}
			menu = append(menu, MenuItem{Label: label, Icon: icon, Href: href, Destructive: raw.Destructive})
		}
	}

	return NewConfig(entries...).WithUser(user, menu...), nil
}

func (f fileEntry) entry() (Entry, error) {
	label := strings.TrimSpace(f.Label)
	if label == "" {
		return Entry{}, errors.New("label is required")
	}
	path := strings.TrimSpace(f.Path)
	if !strings.HasPrefix(path, "/") {
		return Entry{}, fmt.Errorf("path %q must start with /", path)
	}
	icon, err := parseIcon(f.Icon)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Label: label, TargetPath: path, Icon: icon}, nil
}

func parseIcon(raw string) (icons.ID, error) {
	id := icons.ID(strings.TrimSpace(raw))
	if !icons.Known(id) {
		return "", fmt.Errorf("unknown icon %q", raw)
	}
	return id, nil
}
