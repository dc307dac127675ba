package picker

import "github.com/iw2rmb/rangepick/mask"

// ChangeEvent reports the picker state after an effective change.
type ChangeEvent struct {
	Version uint64

	// Decoded halves; nil when still a placeholder or invalid.
	Date *mask.Date
	Time *mask.Time

	DateInvalid bool
	TimeInvalid bool

	Text      string
	Highlight mask.Span
}

func buildChangeEvent(m Model) ChangeEvent {
	return ChangeEvent{
		Version:     m.version,
		Date:        copyDate(m.date),
		Time:        copyTime(m.time),
		DateInvalid: m.dateState == mask.StateInvalid,
		TimeInvalid: m.timeState == mask.StateInvalid,
		Text:        m.buf,
		Highlight:   m.highlight,
	}
}

func copyDate(d *mask.Date) *mask.Date {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func copyTime(t *mask.Time) *mask.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
