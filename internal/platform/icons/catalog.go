package icons

import "strings"

// ID identifies an icon independently of how it is drawn.
type ID string

const (
	Dashboard     ID = "dashboard"
	Projects      ID = "projects"
	Goals         ID = "goals"
	Tasks         ID = "tasks"
	Upcoming      ID = "upcoming"
	Focus         ID = "focus"
	Docs          ID = "docs"
	Tags          ID = "tags"
	Automations   ID = "automations"
	Settings      ID = "settings"
	Brand         ID = "brand"
	ExpandShell   ID = "expand-shell"
	CollapseShell ID = "collapse-shell"
	Account       ID = "account"
	Billing       ID = "billing"
	Upgrade       ID = "upgrade"
	LogOut        ID = "log-out"
	Analytics     ID = "analytics"
	Calendar      ID = "calendar"
	Customize     ID = "customize"
	Benefit       ID = "benefit"
	ArrowRight    ID = "arrow-right"
)

// Definition describes a catalog entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: Dashboard, Name: "Dashboard", Description: "Dashboard overview."},
	{ID: Projects, Name: "Projects", Description: "Project boards."},
	{ID: Goals, Name: "Goals", Description: "Goals and milestones."},
	{ID: Tasks, Name: "Tasks", Description: "Task lists."},
	{ID: Upcoming, Name: "Upcoming", Description: "Upcoming due dates."},
	{ID: Focus, Name: "Focus", Description: "Focus timer."},
	{ID: Docs, Name: "Docs", Description: "Documents and notes."},
	{ID: Tags, Name: "Tags", Description: "Custom tags."},
	{ID: Automations, Name: "Automations", Description: "Automation rules."},
	{ID: Settings, Name: "Settings", Description: "Application settings."},
	{ID: Brand, Name: "Brand", Description: "Product mark."},
	{ID: ExpandShell, Name: "Expand", Description: "Expand the navigation shell."},
	{ID: CollapseShell, Name: "Collapse", Description: "Collapse the navigation shell."},
	{ID: Account, Name: "Account", Description: "Account profile."},
	{ID: Billing, Name: "Billing", Description: "Billing and plans."},
	{ID: Upgrade, Name: "Upgrade", Description: "Plan upgrade prompt."},
	{ID: LogOut, Name: "Log Out", Description: "Sign out."},
	{ID: Analytics, Name: "Analytics", Description: "Reports and charts."},
	{ID: Calendar, Name: "Calendar", Description: "Scheduling."},
	{ID: Customize, Name: "Customize", Description: "Workflow customization."},
	{ID: Benefit, Name: "Benefit", Description: "Checked benefit bullet."},
	{ID: ArrowRight, Name: "Arrow Right", Description: "Call to action arrow."},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	id = ID(strings.TrimSpace(string(id)))
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// Known reports whether id is part of the catalog.
func Known(id ID) bool {
	_, ok := Lookup(id)
	return ok
}
