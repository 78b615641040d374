// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/labreserve/labreserve/lib/booking"
)

// chromeLines is the vertical space taken by the tab bar, the filter
// indicator, the column header, and the status bar.
const chromeLines = 4

// View renders the full screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderTabs())
	sections = append(sections, m.renderFilterLine())

	body := m.renderBody()
	if overlay := m.renderOverlay(); overlay != "" {
		bodyHeight := max(1, m.height-chromeLines)
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, overlay)
	}
	sections = append(sections, body)
	sections = append(sections, m.renderStatusBar())

	return strings.Join(sections, "\n")
}

// renderOverlay returns the active modal, or "" when the list has
// focus.
func (m Model) renderOverlay() string {
	switch m.focus {
	case focusConfirm:
		return m.renderConfirm()
	case focusFilter:
		return m.renderForm("Filter bookings",
			[]string{"Date", "Classroom", "Priority"},
			m.filterForm.inputs[:], m.filterForm.errText)
	case focusGenerate:
		return m.renderForm("Generate inventory",
			[]string{"Min", "Max"},
			m.generateForm.inputs[:], m.generateForm.errText)
	}
	return ""
}

// renderTabs renders the tab bar with the session indicator on the
// right.
func (m Model) renderTabs() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(m.theme.SelectedFg).
		Background(m.theme.SelectedBg).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(m.theme.FaintText).
		Padding(0, 1)

	var labels []string
	for tab := TabAvailability; tab <= TabUsers; tab++ {
		label := fmt.Sprintf("%d %s", int(tab)+1, tab.title())
		if tab == m.activeTab {
			labels = append(labels, activeStyle.Render(label))
		} else {
			labels = append(labels, inactiveStyle.Render(label))
		}
	}
	left := strings.Join(labels, " ")

	sessionText := "not logged in"
	if m.loggedIn {
		sessionText = "user: " + m.userID
	}
	right := lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(sessionText)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left, m.width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderFilterLine shows the active filter criteria, or an empty line
// when no filter is set.
func (m Model) renderFilterLine() string {
	if m.filter.Empty() || m.activeTab == TabUsers {
		return ""
	}

	var parts []string
	if m.filter.Date != "" {
		parts = append(parts, "date="+m.filter.Date)
	}
	if m.filter.ClassRoom != "" {
		parts = append(parts, "room="+m.filter.ClassRoom)
	}
	if m.filter.Priority != 0 {
		parts = append(parts, fmt.Sprintf("priority=%d", m.filter.Priority))
	}
	return lipgloss.NewStyle().
		Foreground(m.theme.FaintText).
		Render(" filter: " + strings.Join(parts, " "))
}

// renderBody renders the active tab's list, or its loading/error/empty
// state.
func (m Model) renderBody() string {
	if m.activeTab == TabUsers {
		return m.renderUsers()
	}
	return m.renderBookings()
}

// renderBookings renders the booking table for the active tab.
func (m Model) renderBookings() string {
	store := m.bookingStoreFor(m.activeTab.target())

	if store.Loading() {
		return m.centeredFaint("Loading bookings...")
	}
	if message := store.ErrorMessage(); message != "" {
		return m.centeredError(message)
	}

	rows := m.visibleBookings()
	if len(rows) == 0 {
		if m.activeTab == TabMine {
			return m.centeredFaint("You have no reservations")
		}
		if len(store.Snapshot()) > 0 {
			return m.centeredFaint("No bookings match the filter")
		}
		return m.centeredFaint("No bookings available")
	}

	header := fmt.Sprintf("  %-14s %-12s %-8s %-16s %-4s %s",
		"ID", "DATE", "TIME", "ROOM", "PRI", "STATUS")
	lines := []string{lipgloss.NewStyle().
		Foreground(m.theme.HeaderForeground).
		Bold(true).
		Render(ansi.Truncate(header, m.width, ""))}

	cursor := m.cursors[m.activeTab]
	start, end := m.windowBounds(len(rows), cursor)
	for index := start; index < end; index++ {
		lines = append(lines, m.renderBookingRow(rows[index], index == cursor))
	}
	return strings.Join(lines, "\n")
}

// renderBookingRow renders one booking line.
func (m Model) renderBookingRow(entry booking.Booking, selected bool) string {
	status := "reserved"
	statusColor := m.theme.ReservedText
	if entry.Available() {
		status = "available"
		statusColor = m.theme.AvailableText
	} else if entry.ReservedBy != "" {
		status = "reserved by " + entry.ReservedBy
	}

	text := fmt.Sprintf("  %-14s %-12s %-8s %-16s %-4d %s",
		entry.ID, entry.Date, entry.Time, entry.ClassRoom, entry.Priority, status)
	text = ansi.Truncate(text, m.width, "…")

	if selected {
		return lipgloss.NewStyle().
			Foreground(m.theme.SelectedFg).
			Background(m.theme.SelectedBg).
			Width(m.width).
			Render(text)
	}
	return lipgloss.NewStyle().Foreground(statusColor).Render(text)
}

// renderUsers renders the admin user table.
func (m Model) renderUsers() string {
	if m.users.Loading() {
		return m.centeredFaint("Loading users...")
	}
	if message := m.users.ErrorMessage(); message != "" {
		return m.centeredError(message)
	}

	users := m.users.Snapshot()
	if len(users) == 0 {
		return m.centeredFaint("No users")
	}

	header := fmt.Sprintf("  %-24s %s", "USER", "EMAIL")
	lines := []string{lipgloss.NewStyle().
		Foreground(m.theme.HeaderForeground).
		Bold(true).
		Render(ansi.Truncate(header, m.width, ""))}

	cursor := m.cursors[m.activeTab]
	start, end := m.windowBounds(len(users), cursor)
	for index := start; index < end; index++ {
		text := fmt.Sprintf("  %-24s %s", users[index].UserID, users[index].Email)
		text = ansi.Truncate(text, m.width, "…")
		if index == cursor {
			text = lipgloss.NewStyle().
				Foreground(m.theme.SelectedFg).
				Background(m.theme.SelectedBg).
				Width(m.width).
				Render(text)
		} else {
			text = lipgloss.NewStyle().Foreground(m.theme.NormalText).Render(text)
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

// windowBounds computes the visible slice of rows so the cursor stays
// on screen. Stateless windowing: the window follows the cursor.
func (m Model) windowBounds(count, cursor int) (start, end int) {
	visible := max(1, m.height-chromeLines-1)
	start = 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end = min(count, start+visible)
	return start, end
}

// renderStatusBar renders the transient notice, or the key hints for
// the active tab. Action hints disappear when there is nothing to act
// on.
func (m Model) renderStatusBar() string {
	if m.notice != "" {
		color := m.theme.SuccessText
		if m.noticeErr {
			color = m.theme.ErrorText
		}
		return lipgloss.NewStyle().
			Foreground(color).
			Bold(true).
			Render(" " + ansi.Truncate(m.notice, m.width-1, "…"))
	}

	if m.gate.Pending() || m.generating {
		return lipgloss.NewStyle().
			Foreground(m.theme.FaintText).
			Render(" working...")
	}

	hints := []string{"1-4 tabs", "R refresh", "q quit"}
	if m.rowCount() > 0 {
		switch m.activeTab {
		case TabAvailability:
			hints = append([]string{"r reserve", "/ filter"}, hints...)
		case TabMine:
			hints = append([]string{"c cancel", "/ filter"}, hints...)
		case TabAdmin:
			hints = append([]string{"d delete", "g generate", "/ filter"}, hints...)
		case TabUsers:
			hints = append([]string{"d delete user"}, hints...)
		}
	} else if m.activeTab == TabAdmin {
		hints = append([]string{"g generate"}, hints...)
	}

	return lipgloss.NewStyle().
		Foreground(m.theme.FaintText).
		Render(" " + ansi.Truncate(strings.Join(hints, " · "), m.width-1, "…"))
}

// centeredFaint renders a dim centered message in the body area.
func (m Model) centeredFaint(text string) string {
	return lipgloss.Place(m.width, max(1, m.height-chromeLines),
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(text))
}

// centeredError renders a centered error message in the body area.
func (m Model) centeredError(text string) string {
	return lipgloss.Place(m.width, max(1, m.height-chromeLines),
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(m.theme.ErrorText).Render(text))
}
