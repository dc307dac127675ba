package mask

import (
	"fmt"
	"strconv"
)

type opInput struct {
	key     Key
	section Section
	buf     string
	useAMPM bool
}

// opResult is a handler's proposal; ok=false means the key is swallowed
// without effect.
type opResult struct {
	text      string
	highlight Span
}

type rule struct {
	op    Op
	match func(in opInput) bool
	apply func(in opInput) (opResult, bool)
}

// rules is evaluated in order; the first matching predicate owns the key even
// when its handler declines to change anything.
var rules = []rule{
	{
		op:    OpNavigate,
		match: func(in opInput) bool { return in.key.Kind == KeyLeft || in.key.Kind == KeyRight },
		apply: navigate,
	},
	{
		op:    OpAdjustArrow,
		match: func(in opInput) bool { return in.key.Kind == KeyUp || in.key.Kind == KeyDown },
		apply: adjustByArrow,
	},
	{
		op:    OpAdjustDigit,
		match: func(in opInput) bool { return in.key.isDigit() && in.section != AmPm },
		apply: adjustByDigit,
	},
	{
		op:    OpSwitchAmPm,
		match: func(in opInput) bool { return in.key.isAmPmLetter() && in.section == AmPm },
		apply: switchAmPm,
	},
	{
		op:    OpErase,
		match: func(in opInput) bool { return in.key.Kind == KeyBackspace },
		apply: erase,
	},
}

// Match returns the operation that owns k while s is highlighted.
func Match(k Key, s Section) (Op, bool) {
	in := opInput{key: k, section: s}
	for _, r := range rules {
		if r.match(in) {
			return r.op, true
		}
	}
	return 0, false
}

// Apply runs one keystroke against buf with highlight marking the active
// section. It returns false when the key is not handled or changes nothing.
func Apply(k Key, buf string, highlight Span, useAMPM bool) (Edit, bool) {
	if len(buf) != LayoutWidth(useAMPM) {
		return Edit{}, false
	}
	sec, ok := ResolveByOffset(highlight.Start, useAMPM)
	if !ok {
		return Edit{}, false
	}

	in := opInput{key: k, section: sec, buf: buf, useAMPM: useAMPM}
	for _, r := range rules {
		if !r.match(in) {
			continue
		}
		res, ok := r.apply(in)
		if !ok {
			return Edit{}, false
		}
		if res.text == buf && res.highlight == highlight {
			return Edit{}, false
		}
		return Edit{
			Op:              r.op,
			Section:         sec,
			TextBefore:      buf,
			TextAfter:       res.text,
			HighlightBefore: highlight,
			HighlightAfter:  res.highlight,
		}, true
	}
	return Edit{}, false
}

func navigate(in opInput) (opResult, bool) {
	dir := Forward
	if in.key.Kind == KeyLeft {
		dir = Backward
	}
	sp, ok := Navigate(in.section, dir, in.useAMPM)
	if !ok {
		return opResult{}, false
	}
	return opResult{text: in.buf, highlight: sp}, true
}

func adjustByArrow(in opInput) (opResult, bool) {
	s := in.section
	cur := ReadSection(in.buf, s)

	if s == AmPm {
		next := "AM"
		if cur == "AM" {
			next = "PM"
		}
		return opResult{text: ReplaceSection(in.buf, s, next), highlight: s.Span()}, true
	}

	n, ok := parseDigits(cur)
	if !ok {
		n = 0
	}
	if in.key.Kind == KeyUp {
		n++
	} else {
		n--
	}
	max, min := s.Max(in.useAMPM), s.Min(in.useAMPM)
	if n > max {
		n = min
	}
	if n < min {
		n = max
	}
	return opResult{text: ReplaceSection(in.buf, s, pad(n, s.Width())), highlight: s.Span()}, true
}

func adjustByDigit(in opInput) (opResult, bool) {
	s := in.section
	cur := ReadSection(in.buf, s)
	d := byte(in.key.Rune)

	var next string
	var complete bool
	if s == Year {
		next = cascadeYear(cur, d)
		complete = next[0] != '0'
	} else {
		var ok bool
		next, ok = cascadeTwoDigit(cur, d, s, in.useAMPM)
		if !ok {
			return opResult{}, false
		}
		complete = twoDigitComplete(next, s.Max(in.useAMPM))
	}

	hl := s.Span()
	if complete {
		if sp, ok := Navigate(s, Forward, in.useAMPM); ok {
			hl = sp
		}
	}
	return opResult{text: ReplaceSection(in.buf, s, next), highlight: hl}, true
}

// cascadeYear shifts digits in from the right while the year still has a
// leading zero, and restarts the run once it is full.
func cascadeYear(cur string, d byte) string {
	if cur[0] == '0' && allDigits(cur) {
		return cur[1:] + string(d)
	}
	return "000" + string(d)
}

// cascadeTwoDigit combines a pending single digit with d. A 0 typed over a
// full value is ignored except in the minute section, where it restarts as
// "00".
func cascadeTwoDigit(cur string, d byte, s Section, useAMPM bool) (string, bool) {
	if cur[0] == '0' && allDigits(cur) {
		cand := string([]byte{cur[1], d})
		n, _ := strconv.Atoi(cand)
		if n > s.Max(useAMPM) {
			return "0" + string(d), true
		}
		return cand, true
	}
	if d == '0' {
		if s == Minute {
			return "00", true
		}
		return "", false
	}
	return "0" + string(d), true
}

// twoDigitComplete reports whether no further digit could extend v without
// exceeding max.
func twoDigitComplete(v string, max int) bool {
	n, ok := parseDigits(v)
	if !ok || n == 0 {
		return false
	}
	lead := strconv.Itoa(max)[0]
	if v[0] == '0' && v[1] <= lead {
		return false
	}
	return true
}

func switchAmPm(in opInput) (opResult, bool) {
	next := "AM"
	if in.key.Rune == 'p' || in.key.Rune == 'P' {
		next = "PM"
	}
	return opResult{text: ReplaceSection(in.buf, AmPm, next), highlight: AmPm.Span()}, true
}

func erase(in opInput) (opResult, bool) {
	s := in.section
	return opResult{text: ReplaceSection(in.buf, s, s.Label()), highlight: s.Span()}, true
}

func pad(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

func allDigits(s string) bool {
	_, ok := parseDigits(s)
	return ok
}
