package symbol

import (
	"strconv"
	"strings"
)

// Notation selects how exponents are rendered.
type Notation int

const (
	// Unicode renders exponents with superscript runes: m¹s⁻².
	Unicode Notation = iota

	// ASCII renders exponents with carets and joins terms with '*': m^1*s^-2.
	ASCII
)

// mode is the process-wide notation, read at format time.
// Set it before concurrent use; it is not guarded by a lock.
var mode = Unicode

// SetNotation selects the process-wide notation mode.
func SetNotation(n Notation) { mode = n }

// CurrentNotation reports the active notation mode.
func CurrentNotation() Notation { return mode }

// superscripts maps decimal digits and '-' to their superscript runes.
var superscripts = map[rune]rune{
	'0': '⁰',
	'1': '¹',
	'2': '²',
	'3': '³',
	'4': '⁴',
	'5': '⁵',
	'6': '⁶',
	'7': '⁷',
	'8': '⁸',
	'9': '⁹',
	'-': '⁻',
}

// Exponent formats a single integer exponent per the active notation:
// "⁻²" in Unicode mode, "^-2" in ASCII mode.
func Exponent(exp int) string {
	if mode == ASCII {
		return "^" + strconv.Itoa(exp)
	}

	var b strings.Builder
	for _, c := range strconv.Itoa(exp) {
		b.WriteRune(superscripts[c])
	}

	return b.String()
}

// Term is one (symbol, exponent) pair of a rendered unit string.
type Term struct {
	Symbol string
	Exp    int
}

// Format renders an ordered sequence of terms as a single unit string.
//
// Unicode mode concatenates symbol+exponent for each term ("m¹s⁻¹");
// ASCII mode joins "symbol^exp" terms with '*' ("m^1*s^-1").
func Format(terms []Term) string {
	var b strings.Builder
	for i, t := range terms {
		if mode == ASCII && i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(t.Symbol)
		b.WriteString(Exponent(t.Exp))
	}

	return b.String()
}
