// Package icons defines the icon identifiers used by TaskFlow surfaces.
//
// Navigation entries and page sections reference icons by stable ID so the
// configuration never carries markup. The rendering layer maps each ID to a
// Lucide sprite symbol.
package icons
