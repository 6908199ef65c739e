// Package navshell owns the dashboard sidebar: its navigation entries, its
// Expanded or Collapsed display mode, the highlighted entry for the current
// path and the audio feedback played on hover and click.
//
// A Shell is mounted per render with Mount and unmounted with Close. It is
// meant for use from one goroutine; only feedback playback runs in the
// background.
package navshell
