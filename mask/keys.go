package mask

import "fmt"

// KeyKind identifies a keystroke the mask understands.
type KeyKind uint8

const (
	KeyNone KeyKind = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyBackspace
	KeyRune
)

// Key is a single keystroke fed to Apply.
type Key struct {
	Kind KeyKind
	Rune rune // set for KeyRune
}

// RuneKey returns the key for a printable character.
func RuneKey(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

func (k Key) String() string {
	switch k.Kind {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyBackspace:
		return "backspace"
	case KeyRune:
		return string(k.Rune)
	default:
		return fmt.Sprintf("Key(%d)", uint8(k.Kind))
	}
}

func (k Key) isDigit() bool {
	return k.Kind == KeyRune && k.Rune >= '0' && k.Rune <= '9'
}

func (k Key) isAmPmLetter() bool {
	if k.Kind != KeyRune {
		return false
	}
	switch k.Rune {
	case 'a', 'A', 'p', 'P':
		return true
	}
	return false
}

// Op names the edit operation a keystroke resolved to.
type Op uint8

const (
	OpNavigate Op = iota
	OpAdjustArrow
	OpAdjustDigit
	OpSwitchAmPm
	OpErase
)

func (o Op) String() string {
	switch o {
	case OpNavigate:
		return "navigate"
	case OpAdjustArrow:
		return "adjust-arrow"
	case OpAdjustDigit:
		return "adjust-digit"
	case OpSwitchAmPm:
		return "switch-ampm"
	case OpErase:
		return "erase"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Edit is the effect of one keystroke: the buffer and highlight before and
// after. Hosts must apply TextAfter and HighlightAfter together.
type Edit struct {
	Op      Op
	Section Section

	TextBefore string
	TextAfter  string

	HighlightBefore Span
	HighlightAfter  Span
}

// TextChanged reports whether the edit mutated the buffer.
func (e Edit) TextChanged() bool { return e.TextBefore != e.TextAfter }
