package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	graphemeutil "github.com/iw2rmb/rangepick/internal/grapheme"
	"github.com/iw2rmb/rangepick/mask"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Bracketed paste carries a whole value; fall back to per-key dispatch
	// when it does not parse.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if m.pasteText(string(msg.Runes)) {
			m.emitChange()
			return m, nil
		}
	}

	km := m.cfg.KeyMap
	changed := false

	switch {
	case key.Matches(msg, km.Left):
		changed = m.applyKey(mask.Key{Kind: mask.KeyLeft})
	case key.Matches(msg, km.Right):
		changed = m.applyKey(mask.Key{Kind: mask.KeyRight})
	case key.Matches(msg, km.Up):
		changed = m.applyKey(mask.Key{Kind: mask.KeyUp})
	case key.Matches(msg, km.Down):
		changed = m.applyKey(mask.Key{Kind: mask.KeyDown})
	case key.Matches(msg, km.Backspace):
		changed = m.applyKey(mask.Key{Kind: mask.KeyBackspace})

	case key.Matches(msg, km.Copy):
		m.copyText()
	case key.Matches(msg, km.Paste):
		changed = m.pasteClipboard()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			// Fast typing can deliver several keystrokes in one message.
			for _, r := range graphemeutil.Keystrokes(string(msg.Runes)) {
				if m.applyKey(mask.RuneKey(r)) {
					changed = true
				}
			}
		}
	}

	if changed {
		m.emitChange()
	}
	return m, nil
}

func (m Model) copyText() {
	if m.cfg.Clipboard == nil {
		return
	}
	_ = m.cfg.Clipboard.WriteText(m.buf)
}

func (m *Model) pasteClipboard() bool {
	if m.cfg.Clipboard == nil {
		return false
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return false
	}
	return m.pasteText(s)
}

// pasteText applies the halves of s that decode and leaves the others
// untouched.
func (m *Model) pasteText(s string) bool {
	d, t := mask.ParseText(strings.TrimSpace(s))
	if d == nil && t == nil {
		return false
	}
	before := m.buf
	if d != nil {
		m.buf = mask.InboundDate(m.buf, d, false)
	}
	if t != nil {
		m.buf = mask.InboundTime(m.buf, t, m.useAMPM, false)
	}
	if m.buf == before {
		return false
	}
	m.syncOutbound()
	return true
}
