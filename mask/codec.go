package mask

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date without a time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string { return EncodeDate(d) }

// Meridiem marks how Time.Hours is interpreted.
type Meridiem uint8

const (
	AM Meridiem = iota
	PM
	// H24 marks Hours as an hour of a 24-hour clock.
	H24
)

func (m Meridiem) String() string {
	switch m {
	case AM:
		return "AM"
	case PM:
		return "PM"
	case H24:
		return "24"
	default:
		return fmt.Sprintf("Meridiem(%d)", uint8(m))
	}
}

// Time is a wall-clock time of day with minute precision.
type Time struct {
	Hours    int
	Minutes  int
	Meridiem Meridiem
}

// Clock returns the hour (0-23) and minute on a 24-hour clock.
func (t Time) Clock() (hour, min int) {
	h := t.Hours
	switch t.Meridiem {
	case AM:
		if h == 12 {
			h = 0
		}
	case PM:
		if h < 12 {
			h += 12
		}
	}
	return h, t.Minutes
}

// Equal reports whether t and u denote the same time of day, whatever their
// meridiem representation.
func (t Time) Equal(u Time) bool {
	th, tm := t.Clock()
	uh, um := u.Clock()
	return th == uh && tm == um
}

func (t Time) String() string { return EncodeTime(t, t.Meridiem != H24) }

// ValidTime applies the range rules for decoded times. Hour 0 is rejected in
// every mode.
func ValidTime(t Time) bool {
	if t.Minutes < 0 || t.Minutes > 59 {
		return false
	}
	switch t.Meridiem {
	case AM, PM:
		return t.Hours >= 1 && t.Hours <= 12
	case H24:
		return t.Hours >= 1 && t.Hours <= 23
	default:
		return false
	}
}

// EncodeDate renders d as "MM/dd/yyyy".
func EncodeDate(d Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", int(d.Month), d.Day, d.Year)
}

// DecodeDate parses "MM/dd/yyyy" text. Dates that time.Date would normalize
// into another day (e.g. 02/30) are rejected.
func DecodeDate(s string) (Date, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, false
	}
	var n [3]int
	for i, p := range parts {
		v, ok := parseDigits(p)
		if !ok {
			return Date{}, false
		}
		n[i] = v
	}
	month, day, year := n[0], n[1], n[2]
	if year < 1 {
		return Date{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Date{}, false
	}
	return Date{Year: year, Month: time.Month(month), Day: day}, true
}

// EncodeTime renders t as "hh:mm" followed by " AM" or " PM" when useAMPM is
// set. The rendition follows t's time of day, so a PM value encodes as 13-23 in
// 24-hour mode.
func EncodeTime(t Time, useAMPM bool) string {
	h, m := t.Clock()
	if !useAMPM {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, suffix)
}

// DecodeTime parses "hh:mm" or "hh:mm AA". Without a suffix the hour is read
// on a 24-hour clock and re-expressed as AM or PM.
func DecodeTime(s string) (Time, bool) {
	clock, suffix, _ := strings.Cut(s, " ")
	hs, ms, ok := strings.Cut(clock, ":")
	if !ok {
		return Time{}, false
	}
	h, ok := parseDigits(hs)
	if !ok {
		return Time{}, false
	}
	m, ok := parseDigits(ms)
	if !ok {
		return Time{}, false
	}

	var t Time
	switch strings.ToUpper(suffix) {
	case "AM":
		t = Time{Hours: h, Minutes: m, Meridiem: AM}
	case "PM":
		t = Time{Hours: h, Minutes: m, Meridiem: PM}
	case "":
		switch {
		case h < 12:
			t = Time{Hours: h, Minutes: m, Meridiem: AM}
		case h == 12:
			t = Time{Hours: h, Minutes: m, Meridiem: PM}
		case h > 23:
			return Time{}, false
		default:
			t = Time{Hours: h - 12, Minutes: m, Meridiem: PM}
		}
	default:
		return Time{}, false
	}
	if !ValidTime(t) {
		return Time{}, false
	}
	return t, true
}

// TimeOf returns the time of day of t as an AM/PM value, truncated to the
// minute.
func TimeOf(t time.Time) Time {
	h := t.Hour()
	switch {
	case h == 0:
		return Time{Hours: 12, Minutes: t.Minute(), Meridiem: AM}
	case h < 12:
		return Time{Hours: h, Minutes: t.Minute(), Meridiem: AM}
	case h == 12:
		return Time{Hours: 12, Minutes: t.Minute(), Meridiem: PM}
	default:
		return Time{Hours: h - 12, Minutes: t.Minute(), Meridiem: PM}
	}
}

// Combine joins a date and a time of day in loc.
func Combine(d Date, t Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	h, m := t.Clock()
	return time.Date(d.Year, d.Month, d.Day, h, m, 0, 0, loc)
}

// parseDigits accepts a non-empty run of ASCII digits only; signs and spaces
// are rejected.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
