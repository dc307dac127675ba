package picker

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rangepick/mask"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func typeRunes(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m Model, t tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: t})
	return m
}

func TestUpdate_TypeFullValue12h(t *testing.T) {
	m := New(Config{UseAMPM: true})
	for _, r := range "05152023" {
		m = typeRunes(m, string(r))
	}
	if got := m.Section(); got != mask.Hour {
		t.Fatalf("section after date: got %v, want hour", got)
	}
	m = typeRunes(m, "7")
	m = typeRunes(m, "3")
	m = typeRunes(m, "0")
	if got := m.Section(); got != mask.AmPm {
		t.Fatalf("section after time: got %v, want ampm", got)
	}
	m = typeRunes(m, "p")

	if got, want := m.Text(), "05/15/2023 07:30 PM"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	d, tm := m.Value()
	if d == nil || *d != (mask.Date{Year: 2023, Month: 5, Day: 15}) {
		t.Fatalf("date: got %v", d)
	}
	if tm == nil || *tm != (mask.Time{Hours: 7, Minutes: 30, Meridiem: mask.PM}) {
		t.Fatalf("time: got %v", tm)
	}
	if m.DateInvalid() || m.TimeInvalid() {
		t.Fatalf("unexpected invalid flags")
	}
}

func TestUpdate_MultiRuneMessageIsSplit(t *testing.T) {
	m := New(Config{})
	m = typeRunes(m, "12312024")
	if got, want := m.Text(), "12/31/2024 hh:mm"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := m.Section(); got != mask.Hour {
		t.Fatalf("section: got %v, want hour", got)
	}
}

func TestUpdate_IgnoresOtherRunes(t *testing.T) {
	m := New(Config{UseAMPM: true})
	before := m.Text()
	m = typeRunes(m, "x/ -é")
	if got := m.Text(); got != before {
		t.Fatalf("text after junk: got %q, want %q", got, before)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5"), Alt: true})
	if got := m.Text(); got != before {
		t.Fatalf("text after alt+5: got %q, want %q", got, before)
	}
}

func TestUpdate_ArrowsAndBackspace(t *testing.T) {
	m := New(Config{})
	m = press(m, tea.KeyUp)
	if got := mask.ReadSection(m.Text(), mask.Month); got != "01" {
		t.Fatalf("month after up: got %q, want %q", got, "01")
	}
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyDown)
	if got := mask.ReadSection(m.Text(), mask.Day); got != "31" {
		t.Fatalf("day after down: got %q, want %q", got, "31")
	}
	if !m.DateInvalid() {
		t.Fatalf("partial date should be invalid")
	}
	m = press(m, tea.KeyBackspace)
	m = press(m, tea.KeyLeft)
	m = press(m, tea.KeyBackspace)
	if got, want := m.Text(), "MM/dd/yyyy hh:mm"; got != want {
		t.Fatalf("text after erase: got %q, want %q", got, want)
	}
	if m.DateInvalid() {
		t.Fatalf("placeholder date must not be invalid")
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{}).Blur()
	m = typeRunes(m, "1")
	if got, want := m.Text(), "MM/dd/yyyy hh:mm"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdate_CopyAndPaste(t *testing.T) {
	cb := &memClipboard{}
	d := mask.Date{Year: 2021, Month: 3, Day: 9}
	m := New(Config{UseAMPM: true, Date: &d, Clipboard: cb})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c"), Alt: true})
	if got, want := cb.s, "03/09/2021 hh:mm aa"; got != want {
		t.Fatalf("clipboard after copy: got %q, want %q", got, want)
	}

	cb.s = "  12/25/2022 18:05\n"
	m = press(m, tea.KeyCtrlV)
	if got, want := m.Text(), "12/25/2022 06:05 PM"; got != want {
		t.Fatalf("text after paste: got %q, want %q", got, want)
	}

	cb.s = "01/02/2020"
	m = press(m, tea.KeyCtrlV)
	if got, want := m.Text(), "01/02/2020 06:05 PM"; got != want {
		t.Fatalf("text after date-only paste: got %q, want %q", got, want)
	}

	cb.s, cb.err = "", errors.New("no clipboard")
	m = press(m, tea.KeyCtrlV)
	if got, want := m.Text(), "01/02/2020 06:05 PM"; got != want {
		t.Fatalf("text after failed paste: got %q, want %q", got, want)
	}
}

func TestUpdate_BracketedPaste(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("07/04/1999 09:15"), Paste: true})
	if got, want := m.Text(), "07/04/1999 09:15"; got != want {
		t.Fatalf("text after paste: got %q, want %q", got, want)
	}

	m = New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("04"), Paste: true})
	if got, want := m.Text(), "04/dd/yyyy hh:mm"; got != want {
		t.Fatalf("text after digit paste: got %q, want %q", got, want)
	}
}

func TestUpdate_MouseSnapsToSection(t *testing.T) {
	m := New(Config{UseAMPM: true, Label: "From"})
	// "From " occupies cells 0-4; the year starts at 5+6.
	m, _ = m.Update(tea.MouseMsg{X: 13, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Section(); got != mask.Year {
		t.Fatalf("section after click: got %v, want year", got)
	}
	m, _ = m.Update(tea.MouseMsg{X: 23, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Section(); got != mask.AmPm {
		t.Fatalf("section after click: got %v, want ampm", got)
	}
	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Section(); got != mask.AmPm {
		t.Fatalf("click on label moved highlight to %v", got)
	}
	m, _ = m.Update(tea.MouseMsg{X: 6, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if got := m.Section(); got != mask.AmPm {
		t.Fatalf("right click moved highlight to %v", got)
	}
}

func TestSetValue_OutOfRangeHostValue(t *testing.T) {
	wide := mask.Date{Year: 10000, Month: 1, Day: 1}
	m := New(Config{UseAMPM: true, Date: &wide})
	if got, want := m.Text(), "MM/dd/yyyy hh:mm aa"; got != want {
		t.Fatalf("initial: got %q, want %q", got, want)
	}

	d := mask.Date{Year: 2023, Month: 5, Day: 15}
	tm := mask.Time{Hours: 9, Minutes: 0, Meridiem: mask.AM}
	m = m.SetValue(&d, &tm)
	m = m.SetValue(&wide, &mask.Time{Hours: 7, Minutes: 100, Meridiem: mask.AM})
	if got, want := m.Text(), "MM/dd/yyyy hh:mm aa"; got != want {
		t.Fatalf("after wide values: got %q, want %q", got, want)
	}
	if date, tm := m.Value(); date != nil || tm != nil {
		t.Fatalf("value: got %v %v", date, tm)
	}
}
