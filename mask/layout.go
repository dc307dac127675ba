package mask

import "fmt"

// Section identifies one fixed-width editable field of the buffer.
type Section uint8

const (
	Month Section = iota
	Day
	Year
	Hour
	Minute
	AmPm
)

// Sections lists every section in layout order.
var Sections = []Section{Month, Day, Year, Hour, Minute, AmPm}

type sectionMeta struct {
	span  Span
	max   int
	min   int
	label string
	name  string
}

var sectionTable = [...]sectionMeta{
	Month:  {span: Span{0, 2}, max: 12, min: 1, label: "MM", name: "month"},
	Day:    {span: Span{3, 5}, max: 31, min: 1, label: "dd", name: "day"},
	Year:   {span: Span{6, 10}, max: 9999, min: 1, label: "yyyy", name: "year"},
	Hour:   {span: Span{11, 13}, max: 12, min: 1, label: "hh", name: "hour"},
	Minute: {span: Span{14, 16}, max: 59, min: 0, label: "mm", name: "minute"},
	AmPm:   {span: Span{17, 19}, label: "aa", name: "ampm"},
}

func (s Section) meta() sectionMeta {
	if int(s) >= len(sectionTable) {
		panic(fmt.Sprintf("mask: unknown section %d", s))
	}
	return sectionTable[s]
}

// Valid reports whether s is one of the six defined sections.
func (s Section) Valid() bool { return int(s) < len(sectionTable) }

func (s Section) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Section(%d)", uint8(s))
	}
	return sectionTable[s].name
}

// Span returns the section's offsets in the buffer.
func (s Section) Span() Span { return s.meta().span }

// Width is the number of characters the section occupies.
func (s Section) Width() int { return s.meta().span.Len() }

// Label is the placeholder text shown while the section is unset.
func (s Section) Label() string { return s.meta().label }

// Numeric reports whether the section holds digits.
func (s Section) Numeric() bool { return s != AmPm }

// Max returns the largest accepted value. The hour bound depends on the mode.
func (s Section) Max(useAMPM bool) int {
	if s == Hour && !useAMPM {
		return 23
	}
	return s.meta().max
}

// Min returns the smallest value arrow keys wrap to.
//
// Hour never wraps to 0: an hour of 0 does not decode in either mode.
func (s Section) Min(useAMPM bool) int {
	return s.meta().min
}

// InLayout reports whether the section is present in the given mode.
func (s Section) InLayout(useAMPM bool) bool {
	if s == AmPm {
		return useAMPM
	}
	return s.Valid()
}

// Group is a contiguous run of sections handled as one unit.
type Group uint8

const (
	GroupDate Group = iota
	GroupTime24
	GroupTimeAmPm
)

var groupTable = [...]struct {
	first, last Section
	name        string
}{
	GroupDate:     {first: Month, last: Year, name: "date"},
	GroupTime24:   {first: Hour, last: Minute, name: "time24"},
	GroupTimeAmPm: {first: Hour, last: AmPm, name: "time-ampm"},
}

func (g Group) String() string {
	if int(g) >= len(groupTable) {
		return fmt.Sprintf("Group(%d)", uint8(g))
	}
	return groupTable[g].name
}

// Span covers the first section's start through the last section's end,
// separators included.
func (g Group) Span() Span {
	if int(g) >= len(groupTable) {
		panic(fmt.Sprintf("mask: unknown group %d", g))
	}
	e := groupTable[g]
	return Span{Start: e.first.Span().Start, End: e.last.Span().End}
}

// Placeholder returns the group's all-label text, e.g. "MM/dd/yyyy".
func (g Group) Placeholder() string {
	s := g.Span()
	return LayoutPlaceholder(true)[s.Start:s.End]
}

// TimeGroup returns the time group used by the given mode.
func TimeGroup(useAMPM bool) Group {
	if useAMPM {
		return GroupTimeAmPm
	}
	return GroupTime24
}

const fullPlaceholder = "MM/dd/yyyy hh:mm aa"

// LayoutPlaceholder returns the initial buffer for the mode.
func LayoutPlaceholder(useAMPM bool) string {
	if useAMPM {
		return fullPlaceholder
	}
	return fullPlaceholder[:Minute.Span().End]
}

// LayoutWidth is the fixed buffer length for the mode.
func LayoutWidth(useAMPM bool) int { return len(LayoutPlaceholder(useAMPM)) }

// SpanOf returns the span of a Section or a Group. Any other value is a
// programmer error.
func SpanOf(v any) Span {
	switch x := v.(type) {
	case Section:
		return x.Span()
	case Group:
		return x.Span()
	default:
		panic(fmt.Sprintf("mask: SpanOf(%T) is not a section or group", v))
	}
}

// ResolveByOffset returns the section whose inclusive [start, end] contains
// pos. Separators resolve to the section they follow.
func ResolveByOffset(pos int, useAMPM bool) (Section, bool) {
	for _, s := range Sections {
		if !s.InLayout(useAMPM) {
			continue
		}
		if s.Span().Contains(pos) {
			return s, true
		}
	}
	return 0, false
}

// Direction is a navigation direction between sections.
type Direction int8

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Adjacent returns the neighbouring section in layout order. Moving forward
// from Minute yields AmPm only in 12-hour mode.
func Adjacent(s Section, dir Direction, useAMPM bool) (Section, bool) {
	if !s.Valid() {
		panic(fmt.Sprintf("mask: unknown section %d", s))
	}
	next := int(s) + int(dir)
	if next < 0 || next >= len(Sections) {
		return 0, false
	}
	n := Section(next)
	if !n.InLayout(useAMPM) {
		return 0, false
	}
	return n, true
}
