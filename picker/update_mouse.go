package picker

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rangepick/mask"
)

// updateMouse snaps the highlight to the section under a left click.
// Coordinates are relative to the component's first cell.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y != 0 {
		return m, nil
	}

	col := msg.X - m.labelWidth()
	if col < 0 || col >= mask.LayoutWidth(m.useAMPM) {
		return m, nil
	}
	sp, ok := mask.SnapToSection(col, m.useAMPM)
	if !ok || sp == m.highlight {
		return m, nil
	}
	m.highlight = sp
	m.emitChange()
	return m, nil
}

// labelWidth is the number of cells rendered before the mask.
func (m Model) labelWidth() int {
	if m.cfg.Label == "" {
		return 0
	}
	return lipgloss.Width(m.renderLabel())
}
