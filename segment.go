package morastr

// Segment walks a normalised full-width katakana sequence and produces its
// mora boundaries (C3). strict controls whether a leading small kana
// escalates from a warning (logged and tolerated) to a hard error, mirroring
// the `ignore` flag threaded in from the MoraStr constructor.
//
// The reference implementation tracks a 4-bit shift register to catch the
// max-3-characters-per-mora rule; a plain run-length counter is the
// behaviourally equivalent (and spec-sanctioned, §4.2 "Equivalently...")
// substitute used here.
func Segment(v []rune, strict bool) (Boundaries, error) {
	L := len(v)
	if L > maxLength {
		return Boundaries{}, errTooLong
	}
	if L == 0 {
		return Boundaries{}, nil
	}

	if smallVowel(v[0]) != 0 {
		if strict {
			return Boundaries{}, errLeadingSmallKanaWarning
		}
		logger.Warn().Msg("leading small kana")
	}

	boundaries := make([]int32, 0, L)
	prevRime := column(v[0])
	moraLen := 1
	for i := 1; i < L; i++ {
		small := smallVowel(v[i])
		if small != 0 && small == prevRime {
			moraLen++
			if moraLen > 3 {
				return Boundaries{}, errMoraTooLong
			}
		} else {
			boundaries = append(boundaries, int32(i))
			moraLen = 1
		}
		prevRime = column(v[i])
	}
	boundaries = append(boundaries, int32(L))

	if len(boundaries) == L {
		return Boundaries{}, nil
	}
	return Boundaries{sparse: boundaries}, nil
}
