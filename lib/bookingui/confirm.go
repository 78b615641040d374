// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/labreserve/labreserve/lib/bookingstore"
)

// confirmState is the pending confirmation for a destructive action.
// The gate is not engaged while the prompt is open; declining costs
// nothing and issues no network call.
type confirmState struct {
	kind   bookingstore.ActionKind
	target string
}

// prompt returns the confirmation question.
func (state *confirmState) prompt() string {
	switch state.kind {
	case bookingstore.ActionCancel:
		return fmt.Sprintf("Cancel reservation %s?", state.target)
	case bookingstore.ActionDelete:
		return fmt.Sprintf("Delete booking %s?", state.target)
	case bookingstore.ActionDeleteUser:
		return fmt.Sprintf("Delete user %s?", state.target)
	}
	return fmt.Sprintf("Proceed with %s?", state.target)
}

// updateConfirm handles input while the confirmation prompt is open.
// y/enter confirms and dispatches; n/esc declines.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		kind, target := m.confirm.kind, m.confirm.target
		m.confirm = nil
		m.focus = focusList
		return m.dispatchAction(kind, target)
	case "n", "N", "esc", "q":
		m.confirm = nil
		m.focus = focusList
		return m, nil
	}
	return m, nil
}

// renderConfirm renders the confirmation prompt box.
func (m *Model) renderConfirm() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(1, 2)
	question := lipgloss.NewStyle().
		Foreground(m.theme.NormalText).
		Bold(true).
		Render(m.confirm.prompt())
	hint := lipgloss.NewStyle().
		Foreground(m.theme.FaintText).
		Render("y confirm · n cancel")
	return boxStyle.Render(question + "\n\n" + hint)
}
