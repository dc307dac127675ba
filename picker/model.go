package picker

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rangepick/mask"
)

// Model is a Bubble Tea component editing one masked date-time value.
type Model struct {
	cfg Config

	buf       string
	highlight mask.Span
	useAMPM   bool

	date      *mask.Date
	time      *mask.Time
	dateState mask.HalfState
	timeState mask.HalfState

	orderInvalid bool
	focused      bool

	version uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:       cfg,
		buf:       mask.LayoutPlaceholder(cfg.UseAMPM),
		highlight: mask.Month.Span(),
		useAMPM:   cfg.UseAMPM,
		focused:   true,
	}
	m.syncInbound(cfg.Date, cfg.Time)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetValue pushes an external selection into the buffer. A nil half restores
// its placeholder unless the half currently holds invalid text.
func (m Model) SetValue(d *mask.Date, t *mask.Time) Model {
	m.syncInbound(d, t)
	return m
}

// SetAMPM switches between the 12-hour and 24-hour layouts.
func (m Model) SetAMPM(useAMPM bool) Model {
	if m.useAMPM == useAMPM {
		return m
	}
	m.buf = mask.Relayout(m.buf, m.useAMPM, useAMPM)
	m.useAMPM = useAMPM
	m.highlight = mask.KeepHighlight(m.highlight, useAMPM)
	m.syncOutbound()
	return m
}

// SetOrderInvalid marks the whole value as invalid for display, independent
// of its own decoding.
func (m Model) SetOrderInvalid(invalid bool) Model {
	m.orderInvalid = invalid
	return m
}

func (m Model) OrderInvalid() bool { return m.orderInvalid }

// Value returns copies of the decoded halves.
func (m Model) Value() (*mask.Date, *mask.Time) {
	return copyDate(m.date), copyTime(m.time)
}

// Complete reports whether both halves decode, and returns the combined
// instant in loc.
func (m Model) Complete(loc *time.Location) (time.Time, bool) {
	if m.date == nil || m.time == nil {
		return time.Time{}, false
	}
	return mask.Combine(*m.date, *m.time, loc), true
}

func (m Model) Text() string         { return m.buf }
func (m Model) Highlight() mask.Span { return m.highlight }
func (m Model) UseAMPM() bool        { return m.useAMPM }
func (m Model) DateInvalid() bool    { return m.dateState == mask.StateInvalid }
func (m Model) TimeInvalid() bool    { return m.timeState == mask.StateInvalid }
func (m Model) Version() uint64      { return m.version }
func (m Model) KeyMap() KeyMap       { return m.cfg.KeyMap }

// Section returns the highlighted section.
func (m Model) Section() mask.Section {
	s, _ := mask.ResolveByOffset(m.highlight.Start, m.useAMPM)
	return s
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) View() string { return m.render() }

func (m *Model) syncInbound(d *mask.Date, t *mask.Time) {
	m.buf = mask.InboundDate(m.buf, d, m.dateState == mask.StateInvalid)
	m.buf = mask.InboundTime(m.buf, t, m.useAMPM, m.timeState == mask.StateInvalid)
	m.highlight = mask.KeepHighlight(m.highlight, m.useAMPM)
	m.syncOutbound()
}

func (m *Model) syncOutbound() {
	out := mask.Outbound(m.buf, m.useAMPM)
	m.date, m.time = out.Date, out.Time
	m.dateState, m.timeState = out.DateState, out.TimeState
}

// applyKey runs one keystroke through the mask and reports whether anything
// changed. Text and highlight are committed together.
func (m *Model) applyKey(k mask.Key) bool {
	e, ok := mask.Apply(k, m.buf, m.highlight, m.useAMPM)
	if !ok {
		return false
	}
	m.buf = e.TextAfter
	m.highlight = e.HighlightAfter
	if e.TextChanged() {
		m.syncOutbound()
	}
	return true
}

func (m *Model) emitChange() {
	m.version++
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(*m))
	}
}
