package mask

// Navigate resolves an arrow-key move from s. A false result means the
// highlight must stay where it is.
func Navigate(s Section, dir Direction, useAMPM bool) (Span, bool) {
	next, ok := Adjacent(s, dir, useAMPM)
	if !ok {
		return Span{}, false
	}
	return next.Span(), true
}

// SnapToSection returns the span of the section at pos, used to turn a caret
// position (e.g. a mouse click) into a section highlight.
func SnapToSection(pos int, useAMPM bool) (Span, bool) {
	s, ok := ResolveByOffset(pos, useAMPM)
	if !ok {
		return Span{}, false
	}
	return s.Span(), true
}
