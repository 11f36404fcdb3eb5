// Package ui holds steamtail's terminal presentation: the color themes used
// for status labels and the optional bubbletea live view.
//
// The live view runs the same monitor.Driver cycles as plain output. Each
// cycle's line is printed above the view with tea.Println, so the scrollback
// matches what the plain mode would have written; the view itself shows the
// latest status badge, a progress bar and the current rate.
//
// Keys: q, esc or ctrl+c quit early.
package ui
