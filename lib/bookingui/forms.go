// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/labreserve/labreserve/lib/bookingstore"
)

// filterForm edits the three filter criteria: date, classroom,
// priority. Applying the form replaces the model's filter wholesale;
// filtering itself is pure and happens in bookingstore.
type filterForm struct {
	inputs  [3]textinput.Model
	focused int
	errText string
}

const (
	filterFieldDate = iota
	filterFieldClassRoom
	filterFieldPriority
)

// newFilterForm creates the filter form prefilled with the current
// criteria.
func newFilterForm(current bookingstore.Filter) *filterForm {
	form := &filterForm{}

	date := textinput.New()
	date.Placeholder = "2026-03-15"
	date.SetValue(current.Date)
	date.CharLimit = 32
	form.inputs[filterFieldDate] = date

	classRoom := textinput.New()
	classRoom.Placeholder = "lab"
	classRoom.SetValue(current.ClassRoom)
	classRoom.CharLimit = 64
	form.inputs[filterFieldClassRoom] = classRoom

	priority := textinput.New()
	priority.Placeholder = "1-5"
	if current.Priority != 0 {
		priority.SetValue(strconv.Itoa(current.Priority))
	}
	priority.CharLimit = 2
	form.inputs[filterFieldPriority] = priority

	form.inputs[0].Focus()
	return form
}

// cycle moves input focus by delta, wrapping.
func (form *filterForm) cycle(delta int) {
	form.inputs[form.focused].Blur()
	form.focused = (form.focused + delta + len(form.inputs)) % len(form.inputs)
	form.inputs[form.focused].Focus()
}

// parse builds a Filter from the form fields. Returns an error string
// for a non-numeric priority.
func (form *filterForm) parse() (bookingstore.Filter, string) {
	var filter bookingstore.Filter
	filter.Date = strings.TrimSpace(form.inputs[filterFieldDate].Value())
	filter.ClassRoom = strings.TrimSpace(form.inputs[filterFieldClassRoom].Value())

	priorityText := strings.TrimSpace(form.inputs[filterFieldPriority].Value())
	if priorityText != "" {
		priority, err := strconv.Atoi(priorityText)
		if err != nil || priority < 1 {
			return filter, "priority must be a positive number"
		}
		filter.Priority = priority
	}
	return filter, ""
}

// updateFilterForm handles input while the filter form is open. Enter
// applies, esc cancels without changing the filter.
func (m Model) updateFilterForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterForm = nil
		m.focus = focusList
		return m, nil
	case "tab", "down":
		m.filterForm.cycle(1)
		return m, nil
	case "shift+tab", "up":
		m.filterForm.cycle(-1)
		return m, nil
	case "enter":
		filter, errText := m.filterForm.parse()
		if errText != "" {
			m.filterForm.errText = errText
			return m, nil
		}
		m.filter = filter
		m.filterForm = nil
		m.focus = focusList
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterForm.inputs[m.filterForm.focused], cmd =
		m.filterForm.inputs[m.filterForm.focused].Update(msg)
	return m, cmd
}

// generateForm edits the min/max bounds for bulk inventory creation.
// Defaults mirror the admin screen of the reservation system: 100 to
// 1000 slots.
type generateForm struct {
	inputs  [2]textinput.Model
	focused int
	errText string
}

const (
	generateFieldMin = iota
	generateFieldMax
)

// newGenerateForm creates the generation form with default bounds.
func newGenerateForm() *generateForm {
	form := &generateForm{}

	minInput := textinput.New()
	minInput.SetValue("100")
	minInput.CharLimit = 6
	form.inputs[generateFieldMin] = minInput

	maxInput := textinput.New()
	maxInput.SetValue("1000")
	maxInput.CharLimit = 6
	form.inputs[generateFieldMax] = maxInput

	form.inputs[0].Focus()
	return form
}

// cycle moves input focus by delta, wrapping.
func (form *generateForm) cycle(delta int) {
	form.inputs[form.focused].Blur()
	form.focused = (form.focused + delta + len(form.inputs)) % len(form.inputs)
	form.inputs[form.focused].Focus()
}

// parse validates the bounds. Returns an error string on bad input.
func (form *generateForm) parse() (minCount, maxCount int, errText string) {
	minCount, errMin := strconv.Atoi(strings.TrimSpace(form.inputs[generateFieldMin].Value()))
	maxCount, errMax := strconv.Atoi(strings.TrimSpace(form.inputs[generateFieldMax].Value()))
	if errMin != nil || errMax != nil {
		return 0, 0, "min and max must be numbers"
	}
	if minCount < 1 {
		return 0, 0, "min must be at least 1"
	}
	if maxCount < minCount {
		return 0, 0, "max must not be below min"
	}
	return minCount, maxCount, ""
}

// updateGenerateForm handles input while the generation form is open.
func (m Model) updateGenerateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.generateForm = nil
		m.focus = focusList
		return m, nil
	case "tab", "down":
		m.generateForm.cycle(1)
		return m, nil
	case "shift+tab", "up":
		m.generateForm.cycle(-1)
		return m, nil
	case "enter":
		minCount, maxCount, errText := m.generateForm.parse()
		if errText != "" {
			m.generateForm.errText = errText
			return m, nil
		}
		m.generateForm = nil
		m.focus = focusList
		m.generating = true
		client := m.client
		return m, func() tea.Msg {
			result, err := client.GenerateBookings(context.Background(), minCount, maxCount)
			return generateDoneMsg{result: result, err: err}
		}
	}

	var cmd tea.Cmd
	m.generateForm.inputs[m.generateForm.focused], cmd =
		m.generateForm.inputs[m.generateForm.focused].Update(msg)
	return m, cmd
}

// renderForm renders a labeled input form box shared by the filter and
// generate overlays.
func (m *Model) renderForm(title string, labels []string, inputs []textinput.Model, errText string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(m.theme.HeaderForeground).
		Bold(true)
	labelStyle := lipgloss.NewStyle().
		Foreground(m.theme.FaintText).
		Width(12)

	var builder strings.Builder
	builder.WriteString(titleStyle.Render(title))
	builder.WriteString("\n\n")
	for index, input := range inputs {
		builder.WriteString(labelStyle.Render(labels[index]))
		builder.WriteString(input.View())
		builder.WriteString("\n")
	}
	if errText != "" {
		builder.WriteString("\n")
		builder.WriteString(lipgloss.NewStyle().Foreground(m.theme.ErrorText).Render(errText))
	}
	builder.WriteString("\n")
	builder.WriteString(lipgloss.NewStyle().
		Foreground(m.theme.FaintText).
		Render("enter apply · esc cancel · tab next field"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(1, 2).
		Render(builder.String())
}
