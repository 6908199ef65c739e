// Package branding holds product naming shared by every rendered surface.
package branding

// AppName is the product name shown in titles, the sidebar and the footer.
const AppName = "TaskFlow"
