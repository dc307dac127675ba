package main

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rangepick/internal/store"
	"github.com/iw2rmb/rangepick/picker"
)

type appKeyMap struct {
	Apply      key.Binding
	ToggleMode key.Binding
	Help       key.Binding
	Quit       key.Binding

	Range picker.RangeKeyMap
}

func defaultAppKeyMap(r picker.RangeKeyMap) appKeyMap {
	return appKeyMap{
		Apply:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		ToggleMode: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "12/24h")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		Range:      r,
	}
}

func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Range.Next, k.ToggleMode, k.Help, k.Quit}
}

func (k appKeyMap) FullHelp() [][]key.Binding {
	return append(k.Range.FullHelp(), []key.Binding{k.Apply, k.ToggleMode, k.Help, k.Quit})
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

type app struct {
	rng  picker.Range
	keys appKeyMap
	help help.Model

	status string
	result *store.Range
}

func newApp(r picker.Range) app {
	return app{
		rng:  r,
		keys: defaultAppKeyMap(r.KeyMap()),
		help: help.New(),
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		case key.Matches(msg, a.keys.ToggleMode):
			a.rng = a.rng.SetAMPM(!a.rng.Start().UseAMPM())
			return a, nil
		case key.Matches(msg, a.keys.Apply):
			return a.apply()
		}
	}

	var cmd tea.Cmd
	a.rng, cmd = a.rng.Update(msg)
	a.status = ""
	return a, cmd
}

// apply records the range for the caller and quits. The history write
// happens after the program exits.
func (a app) apply() (tea.Model, tea.Cmd) {
	start, end, err := a.rng.Value()
	switch {
	case errors.Is(err, picker.ErrIncomplete):
		a.status = "Fill in both dates and times"
		return a, nil
	case err != nil:
		a.status = "Start is after end"
		return a, nil
	}
	a.result = &store.Range{Start: start, End: end, UseAMPM: a.rng.Start().UseAMPM()}
	slog.Info("applied range", "start", start, "end", end)
	return a, tea.Quit
}

func (a app) View() string {
	parts := []string{a.rng.View()}
	if a.status != "" {
		parts = append(parts, statusStyle.Render(a.status))
	}
	parts = append(parts, "", a.help.View(a.keys))
	return strings.Join(parts, "\n")
}
