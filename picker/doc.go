// Package picker provides Bubble Tea components for masked date-time entry.
//
// Model edits one "MM/dd/yyyy hh:mm aa" endpoint (or "MM/dd/yyyy hh:mm" in
// 24-hour mode). Keystrokes never insert raw text; they are mapped onto the
// section operations of package mask, and every effective change is reported
// through Config.OnChange.
//
// Range composes two Models into a start/end pair with focus cycling and an
// ordering check.
package picker
