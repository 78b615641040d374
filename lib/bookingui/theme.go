// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the colors used across the TUI.
type Theme struct {
	HeaderForeground lipgloss.Color
	NormalText       lipgloss.Color
	FaintText        lipgloss.Color
	SelectedBg       lipgloss.Color
	SelectedFg       lipgloss.Color
	ErrorText        lipgloss.Color
	SuccessText      lipgloss.Color
	AvailableText    lipgloss.Color
	ReservedText     lipgloss.Color
	BorderColor      lipgloss.Color
}

// DefaultTheme returns a theme adapted to the terminal background.
func DefaultTheme() Theme {
	if termenv.HasDarkBackground() {
		return Theme{
			HeaderForeground: lipgloss.Color("81"),
			NormalText:       lipgloss.Color("252"),
			FaintText:        lipgloss.Color("243"),
			SelectedBg:       lipgloss.Color("24"),
			SelectedFg:       lipgloss.Color("231"),
			ErrorText:        lipgloss.Color("203"),
			SuccessText:      lipgloss.Color("114"),
			AvailableText:    lipgloss.Color("114"),
			ReservedText:     lipgloss.Color("179"),
			BorderColor:      lipgloss.Color("240"),
		}
	}
	return Theme{
		HeaderForeground: lipgloss.Color("25"),
		NormalText:       lipgloss.Color("235"),
		FaintText:        lipgloss.Color("245"),
		SelectedBg:       lipgloss.Color("153"),
		SelectedFg:       lipgloss.Color("16"),
		ErrorText:        lipgloss.Color("160"),
		SuccessText:      lipgloss.Color("28"),
		AvailableText:    lipgloss.Color("28"),
		ReservedText:     lipgloss.Color("130"),
		BorderColor:      lipgloss.Color("250"),
	}
}
