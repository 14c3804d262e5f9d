// Package tui hosts the rating control in a Bubble Tea program.
//
// Allowed here:
// - terminal geometry (star cells, hit testing, the framing pane)
// - key bindings, focus movement, lipgloss styling
// - the root App model (quit keys, status line, logging of changes)
//
// Not allowed here:
// - rating rules (glyph resolution, activation, labels); those live in internal/rating
package tui
