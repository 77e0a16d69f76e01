package morastr

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Normalise folds a, possibly mixed, user string into an all-full-width
// katakana string. When validate is true, any character that is not
// full-width katakana, convertible hiragana, or matched by the registered
// hankaku pair map fails with InvalidCharacter; otherwise it is skipped.
func (ctx *Context) Normalise(s string, validate bool) (string, error) {
	if conv := ctx.getConverter(); conv != nil {
		converted, err := conv(s)
		if err != nil {
			return "", fmt.Errorf("morastr: converter: %w", err)
		}
		s = converted
	}

	// Bail before any per-rune work if the input is already too long in
	// user-perceived characters. This check counts input grapheme
	// clusters, not output runes, so it can also reject an input whose
	// normalised output (after skipped characters and pair rules) would
	// have fit within maxLength.
	if uniseg.GraphemeClusterCount(s) > maxLength {
		return "", errTooLong
	}

	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	extraLen := ctx.extraLength()

	i := 0
	for i < len(runes) {
		// Fast path: a run already in U+30A1..U+30FE needs no lookups.
		// Four-at-a-time is an optimisation in the reference C source; a
		// single branch per rune here is observably identical and keeps
		// the Go source legible without unsafe word tricks.
		if start := i; IsFullwidthKatakana(runes[i]) {
			for i < len(runes) && IsFullwidthKatakana(runes[i]) {
				i++
			}
			out = append(out, runes[start:i]...)
			continue
		}

		c := runes[i]
		if isHiraganaConvertible(c) {
			out = append(out, c+0x60)
			i++
			continue
		}

		if extraLen > 0 && i+1 < len(runes) {
			if v, ok := ctx.lookupPair(c, runes[i+1]); ok {
				out = append(out, v)
				logger.Trace().Int("offset", i).Msg("hankaku pair rule matched")
				i += 2
				continue
			}
		}
		if v, ok := ctx.lookupSingle(c); ok {
			out = append(out, v)
			logger.Trace().Int("offset", i).Msg("hankaku single rule matched")
			i++
			continue
		}

		if validate {
			return "", newInvalidCharacter(c, i)
		}
		logger.Trace().Int("offset", i).Str("char", string(c)).Msg("skipped unmapped character")
		i++
	}

	if len(out) > maxLength {
		return "", errTooLong
	}
	return string(out), nil
}

// Normalise runs the default Context's normaliser.
func Normalise(s string, validate bool) (string, error) {
	return defaultContext.Normalise(s, validate)
}
