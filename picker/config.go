package picker

import (
	"reflect"

	"github.com/iw2rmb/rangepick/mask"
)

// Config configures a picker Model.
type Config struct {
	// Initial value. Either half may be nil.
	Date *mask.Date
	Time *mask.Time

	// UseAMPM selects the 12-hour layout with an AM/PM section.
	UseAMPM bool

	// Label is rendered before the mask, separated by a space.
	Label string

	// Zero values are replaced with DefaultKeyMap and DefaultStyle.
	KeyMap KeyMap
	Style  Style

	// OnChange fires after every keystroke or click that changed the buffer
	// or the highlighted section. Host calls (SetValue, SetAMPM) do not fire.
	OnChange func(ChangeEvent)

	// Clipboard is optional; copy and paste are no-ops without it.
	Clipboard Clipboard
}

func normalizeConfig(cfg Config) Config {
	if reflect.ValueOf(cfg.KeyMap).IsZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if reflect.ValueOf(cfg.Style).IsZero() {
		cfg.Style = DefaultStyle()
	}
	return cfg
}
