// Package locale renders fixed-point numbers with the negative sign and
// decimal separator of a language.
//
// Only the sign and the separator are localized.
// Digits are never grouped, and the number of fractional digits is the same
// as in [fixed.Fixed.String].
package locale

import (
	"strings"

	"github.com/govalues/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbols holds the characters used to render numbers in a locale.
type Symbols struct {
	Minus   string
	Decimal string
}

// Canonical symbols are the ones used by [fixed.Fixed.String].
var Canonical = Symbols{Minus: "-", Decimal: "."}

// probe is formatted by the locale printer to find out its symbols.
const probe = -1.5

// Lookup returns the symbols used by the locale.
// If the locale does not render numbers with ASCII digits, Lookup returns
// [Canonical] and false.
func Lookup(tag language.Tag) (Symbols, bool) {
	s := message.NewPrinter(tag).Sprintf("%.1f", probe)
	i := strings.IndexByte(s, '1')
	j := strings.LastIndexByte(s, '5')
	if i < 0 || j < i+1 {
		return Canonical, false
	}
	sym := Symbols{
		Minus:   s[:i],
		Decimal: s[i+1 : j],
	}
	if sym.Minus == "" || sym.Decimal == "" {
		return Canonical, false
	}
	return sym, true
}

// Format returns the string representation of d in the locale.
// See also function [Lookup].
func Format(d fixed.Fixed, tag language.Tag) string {
	sym, _ := Lookup(tag)
	return sym.Format(d)
}

// Format returns the string representation of d using symbols s.
func (s Symbols) Format(d fixed.Fixed) string {
	text := d.String()
	if s == Canonical {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(s.Minus) + len(s.Decimal))
	if text[0] == '-' {
		b.WriteString(s.Minus)
		text = text[1:]
	}
	if pos := strings.IndexByte(text, '.'); pos >= 0 {
		b.WriteString(text[:pos])
		b.WriteString(s.Decimal)
		b.WriteString(text[pos+1:])
	} else {
		b.WriteString(text)
	}
	return b.String()
}
