package mask

import (
	"reflect"
	"testing"
)

var fuzzKeys = []Key{
	{Kind: KeyLeft},
	{Kind: KeyRight},
	{Kind: KeyUp},
	{Kind: KeyDown},
	{Kind: KeyBackspace},
	RuneKey('0'), RuneKey('1'), RuneKey('2'), RuneKey('3'), RuneKey('4'),
	RuneKey('5'), RuneKey('6'), RuneKey('7'), RuneKey('8'), RuneKey('9'),
	RuneKey('a'), RuneKey('P'), RuneKey('x'), RuneKey(':'),
}

func FuzzApply_KeySequencesKeepLayout(f *testing.F) {
	f.Add([]byte{}, true)
	f.Add([]byte{5, 6, 1, 7, 7, 1, 6, 6, 8, 8}, true)
	f.Add([]byte{2, 2, 2, 3, 3, 3, 4, 1, 1, 1, 1}, false)
	f.Add([]byte("mixed-seed-0123456789"), true)

	f.Fuzz(func(t *testing.T, data []byte, useAMPM bool) {
		buf := LayoutPlaceholder(useAMPM)
		hl := Month.Span()
		for _, b := range data {
			k := fuzzKeys[int(b)%len(fuzzKeys)]
			e, ok := Apply(k, buf, hl, useAMPM)
			if !ok {
				continue
			}
			if e.TextBefore != buf || e.HighlightBefore != hl {
				t.Fatalf("edit before-state mismatch: %+v", e)
			}
			buf, hl = e.TextAfter, e.HighlightAfter

			if len(buf) != LayoutWidth(useAMPM) {
				t.Fatalf("length changed to %d: %q", len(buf), buf)
			}
			ph := LayoutPlaceholder(useAMPM)
			seps := []int{2, 5, 10, 13}
			if useAMPM {
				seps = append(seps, 16)
			}
			for _, i := range seps {
				if buf[i] != ph[i] {
					t.Fatalf("separator %d overwritten: %q", i, buf)
				}
			}
			if _, ok := ResolveByOffset(hl.Start, useAMPM); !ok {
				t.Fatalf("highlight %v left the layout", hl)
			}

			out1 := Outbound(buf, useAMPM)
			out2 := Outbound(buf, useAMPM)
			if !reflect.DeepEqual(out1, out2) {
				t.Fatalf("outbound not idempotent for %q", buf)
			}
		}
	})
}
