package mask

// Span is a half-open offset range into the buffer: [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters covered by s.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Contains reports whether pos lies inside s, treating End as inclusive so that
// a caret sitting right after a section still belongs to it.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos <= s.End
}

// Fits reports whether s lies within a buffer of length n.
func (s Span) Fits(n int) bool {
	return s.Start >= 0 && s.End <= n && s.Start <= s.End
}
