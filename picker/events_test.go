package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rangepick/mask"
)

func TestOnChange_FiresOnEffectiveChangesOnly(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		UseAMPM: true,
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m = press(m, tea.KeyLeft) // no-op at the first section
	if len(events) != 0 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 0)
	}

	m = typeRunes(m, "0") // ignored on a placeholder month
	if len(events) != 0 {
		t.Fatalf("events after ignored digit: got %d, want %d", len(events), 0)
	}

	m = press(m, tea.KeyRight)
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Highlight; got != mask.Day.Span() {
		t.Fatalf("event highlight: got %v, want %v", got, mask.Day.Span())
	}

	m = typeRunes(m, "9")
	if len(events) != 2 {
		t.Fatalf("events after digit: got %d, want %d", len(events), 2)
	}
	ev := events[1]
	if ev.Version != 2 {
		t.Fatalf("event version: got %d, want %d", ev.Version, 2)
	}
	if got, want := ev.Text, "MM/09/yyyy hh:mm aa"; got != want {
		t.Fatalf("event text: got %q, want %q", got, want)
	}
	if !ev.DateInvalid || ev.TimeInvalid || ev.Date != nil {
		t.Fatalf("unexpected event state: %+v", ev)
	}

	m = m.SetValue(&mask.Date{Year: 2020, Month: 1, Day: 1}, nil)
	if len(events) != 2 {
		t.Fatalf("SetValue must not fire OnChange")
	}
	if got, want := m.Text(), "01/01/2020 hh:mm aa"; got != want {
		t.Fatalf("text after SetValue: got %q, want %q", got, want)
	}
}

func TestSetValue_KeepsInvalidHalf(t *testing.T) {
	m := New(Config{UseAMPM: true})
	m = typeRunes(m, "5")
	if !m.DateInvalid() {
		t.Fatalf("expected invalid date")
	}

	m = m.SetValue(nil, nil)
	if got, want := m.Text(), "05/dd/yyyy hh:mm aa"; got != want {
		t.Fatalf("nil SetValue over invalid date: got %q, want %q", got, want)
	}

	tm := mask.Time{Hours: 12, Minutes: 0, Meridiem: mask.AM}
	m = m.SetValue(nil, &tm)
	if got, want := m.Text(), "05/dd/yyyy 12:00 AM"; got != want {
		t.Fatalf("time SetValue: got %q, want %q", got, want)
	}
	if got := m.Section(); got != mask.Day {
		t.Fatalf("highlight after SetValue: got %v, want day", got)
	}
}

func TestSetValue_Idempotent(t *testing.T) {
	d := mask.Date{Year: 2024, Month: 2, Day: 29}
	tm := mask.Time{Hours: 11, Minutes: 59, Meridiem: mask.PM}
	m := New(Config{Date: &d, Time: &tm})
	text := m.Text()

	gd, gt := m.Value()
	m = m.SetValue(gd, gt)
	if got := m.Text(); got != text {
		t.Fatalf("second SetValue changed text: %q -> %q", text, got)
	}
	if got, want := text, "02/29/2024 23:59"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestSetAMPM_ConvertsTimeAndClampsHighlight(t *testing.T) {
	tm := mask.Time{Hours: 9, Minutes: 45, Meridiem: mask.PM}
	m := New(Config{UseAMPM: true, Time: &tm})
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyRight)
	if got := m.Section(); got != mask.AmPm {
		t.Fatalf("section: got %v, want ampm", got)
	}

	m = m.SetAMPM(false)
	if got, want := m.Text(), "MM/dd/yyyy 21:45"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := m.Section(); got != mask.Month {
		t.Fatalf("section after relayout: got %v, want month", got)
	}
	_, gt := m.Value()
	if gt == nil || !gt.Equal(tm) {
		t.Fatalf("time after relayout: got %v, want %v", gt, tm)
	}
}
