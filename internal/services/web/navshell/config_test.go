package navshell

import (
	"strings"
	"testing"

	"github.com/louisbranch/taskflow/internal/platform/icons"
)

func TestDefaultConfigEntries(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	want := []string{"Dashboard", "Projects", "Goals", "Tasks", "Upcoming", "Focus", "Docs", "Tags", "Automations", "Settings"}
	entries := cfg.Entries()
	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(entries), len(want))
	}
	for idx, entry := range entries {
		if entry.Label != want[idx] {
			t.Fatalf("entry %d = %q, want %q", idx, entry.Label, want[idx])
		}
		if !strings.HasPrefix(entry.TargetPath, "/app") {
			t.Fatalf("entry %q target %q outside /app", entry.Label, entry.TargetPath)
		}
		if !icons.Known(entry.Icon) {
			t.Fatalf("entry %q has unknown icon %q", entry.Label, entry.Icon)
		}
	}
	if cfg.User().Name != "Jane Doe" {
		t.Fatalf("user = %+v", cfg.User())
	}
	if menu := cfg.Menu(); len(menu) != 4 || !menu[3].Destructive {
		t.Fatalf("menu = %+v", menu)
	}
}

func TestNewConfigCopiesEntries(t *testing.T) {
	t.Parallel()

	source := []Entry{{Label: "Tasks", TargetPath: "/tasks", Icon: icons.Tasks}}
	cfg := NewConfig(source...)
	source[0].Label = "Mutated"
	if got := cfg.Entries()[0].Label; got != "Tasks" {
		t.Fatalf("config entry changed to %q", got)
	}
	returned := cfg.Entries()
	returned[0].Label = "Mutated"
	if got := cfg.Entries()[0].Label; got != "Tasks" {
		t.Fatalf("Entries exposed internal slice: %q", got)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(strings.NewReader(`
entries:
  - label: Inbox
    path: /app/inbox
    icon: tasks
  - label: Settings
    path: /app/settings
    icon: settings
user:
  name: Ada Lovelace
  email: ada@example.com
menu:
  - label: Sign out
    icon: log-out
    destructive: true
`))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Len() != 2 {
		t.Fatalf("entries = %d, want 2", cfg.Len())
	}
	entry, ok := cfg.Resolve("/app/inbox")
	if !ok || entry.Icon != icons.Tasks {
		t.Fatalf("Resolve(/app/inbox) = %+v, %v", entry, ok)
	}
	if cfg.User().Initials() != "AL" {
		t.Fatalf("initials = %q", cfg.User().Initials())
	}
	menu := cfg.Menu()
	if len(menu) != 1 || menu[0].Href != "#" || !menu[0].Destructive {
		t.Fatalf("menu = %+v", menu)
	}
}

func TestLoadConfigDefaultsUserAndMenu(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(strings.NewReader("entries:\n  - {label: Home, path: /, icon: dashboard}\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.User() != DefaultUser() {
		t.Fatalf("user = %+v, want default", cfg.User())
	}
	if len(cfg.Menu()) != len(DefaultMenu()) {
		t.Fatalf("menu = %+v, want default", cfg.Menu())
	}
}

func TestLoadConfigRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"empty":         "",
		"no entries":    "entries: []\n",
		"blank label":   "entries:\n  - {label: ' ', path: /a, icon: tasks}\n",
		"relative path": "entries:\n  - {label: A, path: tasks, icon: tasks}\n",
		"unknown icon":  "entries:\n  - {label: A, path: /a, icon: rocket}\n",
		"unknown field": "entries:\n  - {label: A, path: /a, icon: tasks, color: red}\n",
		"blank user":    "entries:\n  - {label: A, path: /a, icon: tasks}\nuser: {email: a@example.com}\n",
		"menu no label": "entries:\n  - {label: A, path: /a, icon: tasks}\nmenu:\n  - {icon: user}\n",
		"malformed":     "entries: [\n",
	}
	for name, input := range tests {
		if _, err := LoadConfig(strings.NewReader(input)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := LoadConfig(nil); err == nil {
		t.Fatal("nil reader: expected error")
	}
}

func TestUserBadgeInitials(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Jane Doe":       "JD",
		"cher":           "C",
		"Mary Ann Evans": "MA",
		"  ":             "",
	}
	for name, want := range tests {
		if got := (UserBadge{Name: name}).Initials(); got != want {
			t.Fatalf("Initials(%q) = %q, want %q", name, got, want)
		}
	}
}
