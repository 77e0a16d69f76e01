package morastr

import "golang.org/x/text/width"

// DisplayWidth returns the fixed-grid column count self would occupy in a
// monospace terminal, treating every full-width katakana rune (including
// the chōonpu) as two columns per golang.org/x/text/width's East Asian
// Width classification. This mirrors how the corpus's CLI-adjacent tooling
// reasons about alignment when printing mixed Japanese/Latin text.
func (m MoraStr) DisplayWidth() int {
	w := 0
	for _, c := range m.s {
		w += runeDisplayWidth(c)
	}
	return w
}

func runeDisplayWidth(c rune) int {
	switch width.LookupRune(c).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
