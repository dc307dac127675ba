package mask

import "testing"

func TestReplaceAndReadSection(t *testing.T) {
	buf := LayoutPlaceholder(true)

	buf = ReplaceSection(buf, Day, "15")
	if got, want := buf, "MM/15/yyyy hh:mm aa"; got != want {
		t.Fatalf("after day: got %q, want %q", got, want)
	}
	buf = ReplaceSection(buf, AmPm, "PM")
	if got, want := ReadSection(buf, AmPm), "PM"; got != want {
		t.Fatalf("read ampm: got %q, want %q", got, want)
	}
	if got, want := len(buf), LayoutWidth(true); got != want {
		t.Fatalf("length: got %d, want %d", got, want)
	}
}

func TestReplaceAndReadGroup(t *testing.T) {
	buf := LayoutPlaceholder(false)
	buf = ReplaceGroup(buf, GroupDate, "05/15/2023")
	buf = ReplaceGroup(buf, GroupTime24, "13:05")
	if got, want := buf, "05/15/2023 13:05"; got != want {
		t.Fatalf("buffer: got %q, want %q", got, want)
	}
	if got, want := ReadGroup(buf, GroupTime24), "13:05"; got != want {
		t.Fatalf("read time: got %q, want %q", got, want)
	}
}

func TestReplaceSection_PanicsOnMisuse(t *testing.T) {
	assertPanics(t, "short replacement", func() {
		ReplaceSection(LayoutPlaceholder(true), Year, "23")
	})
	assertPanics(t, "ampm in 24h buffer", func() {
		ReplaceSection(LayoutPlaceholder(false), AmPm, "AM")
	})
	assertPanics(t, "read group past end", func() {
		ReadGroup(LayoutPlaceholder(false), GroupTimeAmPm)
	})
}
