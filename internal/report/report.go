// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report renders the result blocks printed after a check run.
package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Renderer formats key lists for terminal output. With styled disabled
// (--plain, or stdout not a terminal) it emits bare text.
type Renderer struct {
	styled bool
}

// NewRenderer returns a Renderer; styled enables lipgloss decoration.
func NewRenderer(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

// KeyList renders a titled list of keys, one per line.
func (r *Renderer) KeyList(title string, keys []string) string {
	var b strings.Builder
	if r.styled {
		b.WriteString(titleStyle.Render(title))
	} else {
		b.WriteString(title)
	}
	b.WriteString("\n")
	for _, key := range keys {
		if r.styled {
			b.WriteString("  " + keyStyle.Render(key))
		} else {
			b.WriteString("  - " + key)
		}
		b.WriteString("\n")
	}
	return b.String()
}
