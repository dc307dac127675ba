// Package mask implements the pure, fixed-width date-time text mask used by
// rangepick inputs.
//
// The buffer is a single line laid out as "MM/dd/yyyy hh:mm aa" (12-hour mode)
// or "MM/dd/yyyy hh:mm" (24-hour mode). Offsets are 0-based byte offsets into
// that line; every character of the layout is ASCII. Spans are half-open:
// [Start, End).
//
// Every function in this package is pure: callers pass the current buffer text
// and highlight span and receive the next ones.
package mask
