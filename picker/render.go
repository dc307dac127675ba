package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rangepick/mask"
)

func (m Model) render() string {
	var sb strings.Builder
	if m.cfg.Label != "" {
		sb.WriteString(m.renderLabel())
	}
	sb.WriteString(m.renderMask())
	return sb.String()
}

func (m Model) renderLabel() string {
	return m.cfg.Style.Label.Render(m.cfg.Label) + " "
}

func (m Model) renderMask() string {
	st := m.cfg.Style
	var sb strings.Builder
	pos := 0
	for _, s := range mask.Sections {
		if !s.InLayout(m.useAMPM) {
			continue
		}
		sp := s.Span()
		if sp.Start > pos {
			sb.WriteString(st.Separator.Render(m.buf[pos:sp.Start]))
		}
		sb.WriteString(m.sectionStyle(s).Render(m.buf[sp.Start:sp.End]))
		pos = sp.End
	}
	return sb.String()
}

func (m Model) sectionStyle(s mask.Section) lipgloss.Style {
	st := m.cfg.Style
	if m.focused && s.Span() == m.highlight {
		return st.Highlight
	}
	if m.orderInvalid || m.halfInvalid(s) {
		return st.Invalid
	}
	if mask.ReadSection(m.buf, s) == s.Label() {
		return st.Placeholder
	}
	return st.Text
}

func (m Model) halfInvalid(s mask.Section) bool {
	switch s {
	case mask.Month, mask.Day, mask.Year:
		return m.dateState == mask.StateInvalid
	default:
		return m.timeState == mask.StateInvalid
	}
}
