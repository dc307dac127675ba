package mask

import "fmt"

// HalfState is the reconciliation state of the date half or the time half.
type HalfState uint8

const (
	StatePlaceholder HalfState = iota
	StateValid
	StateInvalid
)

func (s HalfState) String() string {
	switch s {
	case StatePlaceholder:
		return "placeholder"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("HalfState(%d)", uint8(s))
	}
}

// Outcome is the value a buffer decodes to, pushed outward after each change.
type Outcome struct {
	Date      *Date
	Time      *Time
	DateState HalfState
	TimeState HalfState
	Text      string
}

func (o Outcome) DateInvalid() bool { return o.DateState == StateInvalid }
func (o Outcome) TimeInvalid() bool { return o.TimeState == StateInvalid }

// Outbound decodes the date and time groups independently. A group that
// fails to decode yields nil and is flagged invalid unless it is still the
// untouched placeholder.
func Outbound(buf string, useAMPM bool) Outcome {
	out := Outcome{Text: buf}

	dateRaw := ReadGroup(buf, GroupDate)
	if d, ok := DecodeDate(dateRaw); ok {
		out.Date = &d
		out.DateState = StateValid
	} else if dateRaw != GroupDate.Placeholder() {
		out.DateState = StateInvalid
	}

	g := TimeGroup(useAMPM)
	timeRaw := ReadGroup(buf, g)
	if t, ok := DecodeTime(timeRaw); ok {
		out.Time = &t
		out.TimeState = StateValid
	} else if timeRaw != g.Placeholder() {
		out.TimeState = StateInvalid
	}
	return out
}

// InboundDate writes an external date into buf. A nil date restores the
// placeholder unless the half is invalid, so a rejected entry stays visible.
// A date whose encoding does not fit the group (e.g. year 10000) is handled
// like nil. One that fits but does not decode is written as is and flagged by
// Outbound.
func InboundDate(buf string, d *Date, invalid bool) string {
	if d != nil {
		if text := EncodeDate(*d); len(text) == GroupDate.Span().Len() {
			return ReplaceGroup(buf, GroupDate, text)
		}
	}
	if invalid {
		return buf
	}
	return ReplaceGroup(buf, GroupDate, GroupDate.Placeholder())
}

// InboundTime is the time-half counterpart of InboundDate.
func InboundTime(buf string, t *Time, useAMPM, invalid bool) string {
	g := TimeGroup(useAMPM)
	if t != nil {
		if text := EncodeTime(*t, useAMPM); len(text) == g.Span().Len() {
			return ReplaceGroup(buf, g, text)
		}
	}
	if invalid {
		return buf
	}
	return ReplaceGroup(buf, g, g.Placeholder())
}

// KeepHighlight reuses the previous highlight when it still lies on a section
// of the layout and falls back to the month section otherwise.
func KeepHighlight(hl Span, useAMPM bool) Span {
	if hl.Fits(LayoutWidth(useAMPM)) {
		if _, ok := ResolveByOffset(hl.Start, useAMPM); ok {
			return hl
		}
	}
	return Month.Span()
}

// Relayout converts buf between the 12-hour and 24-hour layouts. The raw date
// text is kept; a valid time is re-encoded for the new mode, otherwise the raw
// hour and minute digits are carried over.
func Relayout(buf string, fromAMPM, toAMPM bool) string {
	if fromAMPM == toAMPM {
		return buf
	}
	out := LayoutPlaceholder(toAMPM)
	out = ReplaceGroup(out, GroupDate, ReadGroup(buf, GroupDate))
	if t, ok := DecodeTime(ReadGroup(buf, TimeGroup(fromAMPM))); ok {
		return ReplaceGroup(out, TimeGroup(toAMPM), EncodeTime(t, toAMPM))
	}
	out = ReplaceSection(out, Hour, ReadSection(buf, Hour))
	return ReplaceSection(out, Minute, ReadSection(buf, Minute))
}

// ParseText decodes pasted text. It accepts a full "MM/dd/yyyy hh:mm[ AA]"
// value or a date alone; the returned pointers are nil for halves that are
// absent or invalid.
func ParseText(s string) (*Date, *Time) {
	dateWidth := GroupDate.Span().Len()
	if len(s) < dateWidth {
		return nil, nil
	}
	var dp *Date
	if d, ok := DecodeDate(s[:dateWidth]); ok {
		dp = &d
	}
	rest := s[dateWidth:]
	if len(rest) < 2 || rest[0] != ' ' {
		return dp, nil
	}
	var tp *Time
	if t, ok := DecodeTime(rest[1:]); ok {
		tp = &t
	}
	return dp, tp
}
