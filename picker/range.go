package picker

import (
	"errors"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/rangepick/mask"
)

var (
	ErrIncomplete = errors.New("range is incomplete")
	ErrOrder      = errors.New("start is after end")
)

// Endpoint identifies one side of a Range.
type Endpoint int

const (
	EndpointStart Endpoint = iota
	EndpointEnd
)

func (e Endpoint) String() string {
	if e == EndpointEnd {
		return "end"
	}
	return "start"
}

// RangeKeyMap adds focus cycling on top of the endpoint bindings.
type RangeKeyMap struct {
	Next, Prev key.Binding
	Picker     KeyMap
}

func DefaultRangeKeyMap() RangeKeyMap {
	return RangeKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Picker: DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k RangeKeyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Next}, k.Picker.ShortHelp()...)
}

// FullHelp implements help.KeyMap.
func (k RangeKeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Next, k.Prev}}, k.Picker.FullHelp()...)
}

// RangeConfig configures a Range.
type RangeConfig struct {
	StartDate *mask.Date
	StartTime *mask.Time
	EndDate   *mask.Date
	EndTime   *mask.Time

	UseAMPM bool

	// Labels default to "Start" and "End" and are padded to equal width.
	StartLabel string
	EndLabel   string

	KeyMap    RangeKeyMap
	Style     Style
	Clipboard Clipboard

	// Location is used to combine date and time for the ordering check.
	// Nil means time.Local.
	Location *time.Location

	OnChange func(RangeChangeEvent)
}

// RangeChangeEvent reports both endpoints after any effective change.
type RangeChangeEvent struct {
	Focus        Endpoint
	Start, End   ChangeEvent
	OrderInvalid bool
}

// Range is a start/end pair of pickers. Only the focused endpoint receives
// keys; the ordering check runs after every change on either side.
type Range struct {
	cfg RangeConfig

	start, end Model
	focus      Endpoint

	orderInvalid bool
}

func NewRange(cfg RangeConfig) Range {
	if cfg.StartLabel == "" {
		cfg.StartLabel = "Start"
	}
	if cfg.EndLabel == "" {
		cfg.EndLabel = "End"
	}
	if reflect.ValueOf(cfg.KeyMap).IsZero() {
		cfg.KeyMap = DefaultRangeKeyMap()
	}
	if reflect.ValueOf(cfg.Style).IsZero() {
		cfg.Style = DefaultStyle()
	}
	w := runewidth.StringWidth(cfg.StartLabel)
	if ew := runewidth.StringWidth(cfg.EndLabel); ew > w {
		w = ew
	}

	endpoint := func(label string, d *mask.Date, t *mask.Time) Model {
		return New(Config{
			Date:      d,
			Time:      t,
			UseAMPM:   cfg.UseAMPM,
			Label:     runewidth.FillRight(label, w),
			KeyMap:    cfg.KeyMap.Picker,
			Style:     cfg.Style,
			Clipboard: cfg.Clipboard,
		})
	}
	r := Range{
		cfg:   cfg,
		start: endpoint(cfg.StartLabel, cfg.StartDate, cfg.StartTime),
		end:   endpoint(cfg.EndLabel, cfg.EndDate, cfg.EndTime).Blur(),
		focus: EndpointStart,
	}
	r.checkOrder()
	return r
}

func (r Range) Init() tea.Cmd { return nil }

func (r Range) Start() Model              { return r.start }
func (r Range) End() Model                { return r.end }
func (r Range) FocusedEndpoint() Endpoint { return r.focus }
func (r Range) OrderInvalid() bool        { return r.orderInvalid }
func (r Range) KeyMap() RangeKeyMap       { return r.cfg.KeyMap }

// SetFocus moves keyboard focus to e.
func (r Range) SetFocus(e Endpoint) Range {
	r.focus = e
	if e == EndpointEnd {
		r.start, r.end = r.start.Blur(), r.end.Focus()
	} else {
		r.start, r.end = r.start.Focus(), r.end.Blur()
	}
	return r
}

// Blur removes focus from both endpoints. No validation runs on blur.
func (r Range) Blur() Range {
	r.start, r.end = r.start.Blur(), r.end.Blur()
	return r
}

// SetValues pushes external selections into both endpoints.
func (r Range) SetValues(startDate *mask.Date, startTime *mask.Time, endDate *mask.Date, endTime *mask.Time) Range {
	r.start = r.start.SetValue(startDate, startTime)
	r.end = r.end.SetValue(endDate, endTime)
	r.checkOrder()
	return r
}

func (r Range) SetAMPM(useAMPM bool) Range {
	r.cfg.UseAMPM = useAMPM
	r.start = r.start.SetAMPM(useAMPM)
	r.end = r.end.SetAMPM(useAMPM)
	r.checkOrder()
	return r
}

// Value returns the combined instants, or ErrIncomplete / ErrOrder.
func (r Range) Value() (start, end time.Time, err error) {
	s, okS := r.start.Complete(r.cfg.Location)
	e, okE := r.end.Complete(r.cfg.Location)
	if !okS || !okE {
		return time.Time{}, time.Time{}, ErrIncomplete
	}
	if !s.Before(e) {
		return time.Time{}, time.Time{}, ErrOrder
	}
	return s, e, nil
}

func (r Range) Update(msg tea.Msg) (Range, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		km := r.cfg.KeyMap
		switch {
		case key.Matches(msg, km.Next), key.Matches(msg, km.Prev):
			// Two endpoints: forward and backward both toggle.
			return r.SetFocus(1 - r.focus), nil
		}
		return r.forward(msg)

	case tea.MouseMsg:
		if msg.Y < 0 || msg.Y > 1 {
			return r, nil
		}
		target := Endpoint(msg.Y)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && target != r.focus {
			r = r.SetFocus(target)
		}
		if target != r.focus {
			return r, nil
		}
		msg.Y = 0
		return r.forward(msg)
	}
	return r, nil
}

func (r Range) forward(msg tea.Msg) (Range, tea.Cmd) {
	var cmd tea.Cmd
	if r.focus == EndpointEnd {
		before := r.end.Version()
		r.end, cmd = r.end.Update(msg)
		if r.end.Version() != before {
			r.changed()
		}
		return r, cmd
	}
	before := r.start.Version()
	r.start, cmd = r.start.Update(msg)
	if r.start.Version() != before {
		r.changed()
	}
	return r, cmd
}

func (r *Range) changed() {
	r.checkOrder()
	if r.cfg.OnChange != nil {
		r.cfg.OnChange(RangeChangeEvent{
			Focus:        r.focus,
			Start:        buildChangeEvent(r.start),
			End:          buildChangeEvent(r.end),
			OrderInvalid: r.orderInvalid,
		})
	}
}

// checkOrder flags both endpoints when both are complete and start is not
// strictly before end.
func (r *Range) checkOrder() {
	_, _, err := r.Value()
	r.orderInvalid = errors.Is(err, ErrOrder)
	r.start = r.start.SetOrderInvalid(r.orderInvalid)
	r.end = r.end.SetOrderInvalid(r.orderInvalid)
}

func (r Range) View() string {
	v := r.start.View() + "\n" + r.end.View()
	if r.orderInvalid {
		v += "\n" + r.cfg.Style.Error.Render(ErrOrder.Error())
	}
	return v
}
