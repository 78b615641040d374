// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the reservation TUI.
type KeyMap struct {
	// List navigation.
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Tab switching.
	TabAvailability key.Binding
	TabMine         key.Binding
	TabAdmin        key.Binding
	TabUsers        key.Binding

	// Actions on the selected row.
	Reserve    key.Binding
	Cancel     key.Binding
	Delete     key.Binding
	DeleteUser key.Binding

	// Admin inventory generation.
	Generate key.Binding

	// Filter and refresh.
	Filter      key.Binding
	ClearFilter key.Binding
	Refresh     key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
		Bottom: key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom")),

		TabAvailability: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "availability")),
		TabMine:         key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "my reservations")),
		TabAdmin:        key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "admin")),
		TabUsers:        key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "users")),

		Reserve:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reserve")),
		Cancel:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel reservation")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete booking")),
		DeleteUser: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete user")),

		Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate inventory")),

		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		ClearFilter: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Refresh:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),

		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
