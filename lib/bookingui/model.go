// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/labreserve/labreserve/lib/booking"
	"github.com/labreserve/labreserve/lib/bookingstore"
)

// Tab identifies which screen is active.
type Tab int

const (
	// TabAvailability lists the full inventory; reserving happens here.
	TabAvailability Tab = iota
	// TabMine lists the caller's own reservations; cancelling happens
	// here. Requires a session.
	TabMine
	// TabAdmin lists the full inventory with delete and generate
	// controls. Requires a session.
	TabAdmin
	// TabUsers lists accounts with a delete control. Requires a
	// session.
	TabUsers
)

// title returns the tab bar label.
func (tab Tab) title() string {
	switch tab {
	case TabAvailability:
		return "Availability"
	case TabMine:
		return "My Reservations"
	case TabAdmin:
		return "Admin"
	case TabUsers:
		return "Users"
	}
	return "?"
}

// listTarget identifies which store a fetch result belongs to. The
// availability and admin tabs render the same inventory endpoint and
// share one store.
type listTarget int

const (
	targetAll listTarget = iota
	targetMine
	targetUsers
)

// target maps a tab to the store its fetch fills.
func (tab Tab) target() listTarget {
	switch tab {
	case TabMine:
		return targetMine
	case TabUsers:
		return targetUsers
	}
	return targetAll
}

// focusRegion identifies where keyboard input routes.
type focusRegion int

const (
	// focusList means keys navigate the active tab's list.
	focusList focusRegion = iota
	// focusConfirm means a destructive-action confirmation prompt is
	// open and owns all input.
	focusConfirm
	// focusFilter means the filter form owns all input.
	focusFilter
	// focusGenerate means the generate-inventory form owns all input.
	focusGenerate
)

// noticeFadeDelay is how long a status notice stays visible.
const noticeFadeDelay = 4 * time.Second

// bookingsFetchedMsg delivers a booking list fetch result into the
// event loop. seq is the store sequence assigned when the fetch was
// issued; the store discards the result if it has been superseded.
type bookingsFetchedMsg struct {
	target   listTarget
	seq      uint64
	bookings []booking.Booking
	err      error
}

// usersFetchedMsg delivers a user list fetch result.
type usersFetchedMsg struct {
	seq   uint64
	users []booking.User
	err   error
}

// actionDoneMsg delivers the transport result of a gated mutating
// action (reserve, cancel, delete).
type actionDoneMsg struct {
	err error
}

// generateDoneMsg delivers the result of a bulk inventory generation
// request.
type generateDoneMsg struct {
	result *booking.GenerateResult
	err    error
}

// noticeFadeMsg clears the status notice after its display delay. The
// id guards against clearing a newer notice.
type noticeFadeMsg struct {
	id int
}

// Params configures a new Model.
type Params struct {
	// Client is the reservation backend client. Required.
	Client *booking.Client

	// UserID is the logged-in account, empty when logged out.
	UserID string

	// LoggedIn gates the protected tabs and actions.
	LoggedIn bool

	// ClearSession tears down the persisted session. Called when the
	// backend rejects the credential (401). Optional.
	ClearSession func() error

	// Logger receives background log records. Defaults to a discard
	// handler; the TUI owns the terminal, so nothing may write to
	// stderr.
	Logger *slog.Logger
}

// Model is the top-level bubbletea model for the reservation TUI.
type Model struct {
	client       *booking.Client
	logger       *slog.Logger
	keys         KeyMap
	theme        Theme
	loggedIn     bool
	userID       string
	clearSession func() error

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	activeTab Tab
	focus     focusRegion

	// Stores: one per remote list. Mutated only through Begin/Resolve
	// on the fetch path; the view reads them, never writes.
	all   *bookingstore.ListStore[booking.Booking]
	mine  *bookingstore.ListStore[booking.Booking]
	users *bookingstore.ListStore[booking.User]

	gate   bookingstore.ActionGate
	filter bookingstore.Filter

	// cursors holds the selected row per tab, clamped to the visible
	// row count after every snapshot or filter change.
	cursors [4]int

	notice    string
	noticeErr bool
	noticeID  int

	confirm      *confirmState
	filterForm   *filterForm
	generateForm *generateForm
	generating   bool
}

// NewModel creates the TUI model.
func NewModel(params Params) Model {
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return Model{
		client:       params.Client,
		logger:       logger,
		keys:         DefaultKeyMap(),
		theme:        DefaultTheme(),
		loggedIn:     params.LoggedIn,
		userID:       params.UserID,
		clearSession: params.ClearSession,
		all:          bookingstore.NewListStore[booking.Booking]("failed to load bookings"),
		mine:         bookingstore.NewListStore[booking.Booking]("failed to load your reservations"),
		users:        bookingstore.NewListStore[booking.User]("failed to load users"),
	}
}

// Init triggers the initial availability fetch (mount semantics).
func (m Model) Init() tea.Cmd {
	return m.refreshCmd(TabAvailability)
}

// refreshCmd begins a fetch for the given tab's store and returns the
// command that performs the network call. The sequence number captured
// here is what lets a stale response be recognized on arrival.
func (m *Model) refreshCmd(tab Tab) tea.Cmd {
	client := m.client
	switch tab.target() {
	case targetMine:
		seq := m.mine.Begin()
		return func() tea.Msg {
			bookings, err := client.MyReservations(context.Background())
			return bookingsFetchedMsg{target: targetMine, seq: seq, bookings: bookings, err: err}
		}
	case targetUsers:
		seq := m.users.Begin()
		return func() tea.Msg {
			users, err := client.ListUsers(context.Background())
			return usersFetchedMsg{seq: seq, users: users, err: err}
		}
	default:
		seq := m.all.Begin()
		return func() tea.Msg {
			bookings, err := client.ListBookings(context.Background())
			return bookingsFetchedMsg{target: targetAll, seq: seq, bookings: bookings, err: err}
		}
	}
}

// bookingStoreFor returns the booking store for a fetch target.
func (m *Model) bookingStoreFor(target listTarget) *bookingstore.ListStore[booking.Booking] {
	if target == targetMine {
		return m.mine
	}
	return m.all
}

// Update is the single thread of state mutation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case bookingsFetchedMsg:
		store := m.bookingStoreFor(msg.target)
		if !store.Resolve(msg.seq, msg.bookings, msg.err) {
			// Superseded fetch; a newer one owns the store.
			return m, nil
		}
		if booking.IsUnauthorized(msg.err) {
			return m, m.sessionExpired()
		}
		m.clampCursor()
		return m, nil

	case usersFetchedMsg:
		if !m.users.Resolve(msg.seq, msg.users, msg.err) {
			return m, nil
		}
		if booking.IsUnauthorized(msg.err) {
			return m, m.sessionExpired()
		}
		m.clampCursor()
		return m, nil

	case actionDoneMsg:
		outcome := m.gate.Resolve(msg.err)
		var cmds []tea.Cmd
		if outcome.Unauthorized {
			cmds = append(cmds, m.sessionExpired())
		} else if outcome.Notice != "" {
			cmds = append(cmds, m.setNotice(outcome.Notice, !outcome.Success))
		}
		if outcome.Refresh {
			cmds = append(cmds, m.refreshCmd(m.activeTab))
		}
		return m, tea.Batch(cmds...)

	case generateDoneMsg:
		m.generating = false
		if msg.err != nil {
			if booking.IsUnauthorized(msg.err) {
				return m, m.sessionExpired()
			}
			notice := booking.ServerMessage(msg.err)
			if notice == "" {
				notice = "Failed to generate inventory."
			}
			return m, m.setNotice(notice, true)
		}
		cmd := m.setNotice(generateNotice(msg.result), false)
		return m, tea.Batch(cmd, m.refreshCmd(m.activeTab))

	case noticeFadeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes keyboard input. Modal focus owns all input until
// dismissed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusConfirm:
		return m.updateConfirm(msg)
	case focusFilter:
		return m.updateFilterForm(msg)
	case focusGenerate:
		return m.updateGenerateForm(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.cursors[m.activeTab] = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursors[m.activeTab] = max(0, m.rowCount()-1)

	case key.Matches(msg, m.keys.TabAvailability):
		return m.switchTab(TabAvailability)
	case key.Matches(msg, m.keys.TabMine):
		return m.switchTab(TabMine)
	case key.Matches(msg, m.keys.TabAdmin):
		return m.switchTab(TabAdmin)
	case key.Matches(msg, m.keys.TabUsers):
		return m.switchTab(TabUsers)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd(m.activeTab)

	case key.Matches(msg, m.keys.Filter) && m.activeTab != TabUsers:
		m.filterForm = newFilterForm(m.filter)
		m.focus = focusFilter
	case key.Matches(msg, m.keys.ClearFilter) && !m.filter.Empty():
		m.filter = bookingstore.Filter{}
		m.clampCursor()

	case key.Matches(msg, m.keys.Reserve) && m.activeTab == TabAvailability:
		return m.requestAction(bookingstore.ActionReserve)
	case key.Matches(msg, m.keys.Cancel) && m.activeTab == TabMine:
		return m.requestAction(bookingstore.ActionCancel)
	case key.Matches(msg, m.keys.Delete) && m.activeTab == TabAdmin:
		return m.requestAction(bookingstore.ActionDelete)
	case key.Matches(msg, m.keys.DeleteUser) && m.activeTab == TabUsers:
		return m.requestAction(bookingstore.ActionDeleteUser)

	case key.Matches(msg, m.keys.Generate) && m.activeTab == TabAdmin:
		if m.generating {
			return m, m.setNotice("Generation already in progress.", true)
		}
		m.generateForm = newGenerateForm()
		m.focus = focusGenerate
	}

	return m, nil
}

// switchTab activates a tab and triggers its fetch. Protected tabs
// require a session; the guard is a notice, not a navigation.
func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	if tab != TabAvailability && !m.loggedIn {
		return m, m.setNotice("Log in first with 'labreserve --login'.", true)
	}
	if m.activeTab == tab {
		return m, nil
	}
	m.activeTab = tab
	return m, m.refreshCmd(tab)
}

// requestAction starts a gated mutating action on the selected row.
// Validation failures (nothing selected, action in flight, logged out)
// never issue a network call. Destructive kinds detour through the
// confirmation prompt.
func (m Model) requestAction(kind bookingstore.ActionKind) (tea.Model, tea.Cmd) {
	if !m.loggedIn {
		return m, m.setNotice("Log in first with 'labreserve --login'.", true)
	}

	target := m.selectedID()
	if target == "" {
		return m, m.setNotice(noTargetNotice(m.activeTab), true)
	}
	if m.gate.Pending() {
		return m, m.setNotice("Another action is still in progress.", true)
	}

	if kind.RequiresConfirmation() {
		m.confirm = &confirmState{kind: kind, target: target}
		m.focus = focusConfirm
		return m, nil
	}
	return m.dispatchAction(kind, target)
}

// dispatchAction admits the action through the gate and issues the
// transport call as a command.
func (m Model) dispatchAction(kind bookingstore.ActionKind, target string) (tea.Model, tea.Cmd) {
	if err := m.gate.Begin(kind, target); err != nil {
		return m, m.setNotice(gateNotice(err, m.activeTab), true)
	}

	client := m.client
	return m, func() tea.Msg {
		ctx := context.Background()
		var err error
		switch kind {
		case bookingstore.ActionReserve:
			err = client.MakeReservation(ctx, target)
		case bookingstore.ActionCancel:
			err = client.CancelReservation(ctx, target)
		case bookingstore.ActionDelete:
			err = client.DeleteBooking(ctx, target)
		case bookingstore.ActionDeleteUser:
			err = client.DeleteUser(ctx, target)
		}
		return actionDoneMsg{err: err}
	}
}

// sessionExpired tears down the injected session after a 401 and flips
// the UI to logged-out.
func (m *Model) sessionExpired() tea.Cmd {
	m.loggedIn = false
	m.userID = ""
	if m.clearSession != nil {
		if err := m.clearSession(); err != nil {
			m.logger.Error("clearing session", "error", err)
		}
	}
	if m.activeTab != TabAvailability {
		m.activeTab = TabAvailability
	}
	return m.setNotice("Session expired. Log in again with 'labreserve --login'.", true)
}

// setNotice shows a transient status notice and schedules its fade.
func (m *Model) setNotice(text string, isError bool) tea.Cmd {
	m.notice = text
	m.noticeErr = isError
	m.noticeID++
	id := m.noticeID
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{id: id}
	})
}

// visibleBookings returns the active tab's booking rows after
// filtering. Nil on the users tab.
func (m *Model) visibleBookings() []booking.Booking {
	switch m.activeTab {
	case TabAvailability, TabAdmin:
		return m.filter.Apply(m.all.Snapshot())
	case TabMine:
		return m.filter.Apply(m.mine.Snapshot())
	}
	return nil
}

// rowCount returns the number of selectable rows on the active tab.
func (m *Model) rowCount() int {
	if m.activeTab == TabUsers {
		return len(m.users.Snapshot())
	}
	return len(m.visibleBookings())
}

// selectedID returns the reconciliation key of the row under the
// cursor: the bookingId on booking tabs, the userId on the users tab.
// Empty when the list is empty.
func (m *Model) selectedID() string {
	cursor := m.cursors[m.activeTab]
	if m.activeTab == TabUsers {
		users := m.users.Snapshot()
		if cursor >= 0 && cursor < len(users) {
			return users[cursor].UserID
		}
		return ""
	}
	rows := m.visibleBookings()
	if cursor >= 0 && cursor < len(rows) {
		return rows[cursor].ID
	}
	return ""
}

// moveCursor moves the selection on the active tab, clamped to the
// visible rows.
func (m *Model) moveCursor(delta int) {
	m.cursors[m.activeTab] += delta
	m.clampCursor()
}

// clampCursor keeps the cursor inside the visible rows after snapshot
// or filter changes.
func (m *Model) clampCursor() {
	count := m.rowCount()
	cursor := m.cursors[m.activeTab]
	if cursor >= count {
		cursor = count - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	m.cursors[m.activeTab] = cursor
}

// noTargetNotice is the validation message for an action with nothing
// selected.
func noTargetNotice(tab Tab) string {
	if tab == TabUsers {
		return "No user selected."
	}
	return "No booking selected."
}

// gateNotice maps gate admission errors to user-visible text.
func gateNotice(err error, tab Tab) string {
	switch err {
	case bookingstore.ErrNoTarget:
		return noTargetNotice(tab)
	case bookingstore.ErrBusy:
		return "Another action is still in progress."
	}
	return err.Error()
}

// generateNotice formats a successful generation result.
func generateNotice(result *booking.GenerateResult) string {
	if result == nil {
		return "Inventory generated."
	}
	if result.Message == "" {
		return fmt.Sprintf("Inventory generated (%d slots).", result.TotalGenerated)
	}
	return fmt.Sprintf("%s (%d generated)", result.Message, result.TotalGenerated)
}
