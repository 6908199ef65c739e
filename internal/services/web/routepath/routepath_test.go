package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if AppRoot != "/app" || AppPrefix != "/app/" {
		t.Fatalf("app routes = %q %q", AppRoot, AppPrefix)
	}
	if ShellToggle != "/app/shell/toggle" {
		t.Fatalf("ShellToggle = %q", ShellToggle)
	}
	if ShellFeedback != "/app/shell/feedback" {
		t.Fatalf("ShellFeedback = %q", ShellFeedback)
	}
}

func TestAppSectionPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"tasks":     "/app/tasks",
		" /goals/ ": "/app/goals",
		"":          "/app",
		"a b":       "/app/a%20b",
	}
	for input, want := range tests {
		if got := AppSectionPath(input); got != want {
			t.Fatalf("AppSectionPath(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestShellFeedbackFor(t *testing.T) {
	t.Parallel()

	if got := ShellFeedbackFor("hover"); got != "/app/shell/feedback?event=hover" {
		t.Fatalf("ShellFeedbackFor(hover) = %q", got)
	}
}

func TestIsApp(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]bool{"/app": true, "/app/tasks": true, "/apple": false, "/": false} {
		if got := IsApp(path); got != want {
			t.Fatalf("IsApp(%q) = %v, want %v", path, got, want)
		}
	}
}
