package mask

import "fmt"

// ReplaceSection splices text into the section's span. text must be exactly
// as wide as the section.
func ReplaceSection(buf string, s Section, text string) string {
	return replaceSpan(buf, s.Span(), text)
}

// ReplaceGroup splices text into the group's span, separators included.
func ReplaceGroup(buf string, g Group, text string) string {
	return replaceSpan(buf, g.Span(), text)
}

// ReadSection returns the section's current text.
func ReadSection(buf string, s Section) string {
	return readSpan(buf, s.Span())
}

// ReadGroup returns the group's current text.
func ReadGroup(buf string, g Group) string {
	return readSpan(buf, g.Span())
}

func replaceSpan(buf string, sp Span, text string) string {
	if !sp.Fits(len(buf)) {
		panic(fmt.Sprintf("mask: span [%d,%d) outside buffer of length %d", sp.Start, sp.End, len(buf)))
	}
	if len(text) != sp.Len() {
		panic(fmt.Sprintf("mask: replacement %q does not fit span [%d,%d)", text, sp.Start, sp.End))
	}
	return buf[:sp.Start] + text + buf[sp.End:]
}

func readSpan(buf string, sp Span) string {
	if !sp.Fits(len(buf)) {
		panic(fmt.Sprintf("mask: span [%d,%d) outside buffer of length %d", sp.Start, sp.End, len(buf)))
	}
	return buf[sp.Start:sp.End]
}
