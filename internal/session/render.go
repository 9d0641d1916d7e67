// SPDX-License-Identifier: MIT

package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	heading lipgloss.Style
	absent  lipgloss.Style
	warn    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true).Underline(true),
		absent:  r.NewStyle().Faint(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}
