package morastr

// normalizeSliceRange clamps a, c against a Python/PEP-357-style slice of
// length n, honouring negative indices.
func normalizeSliceRange(a, c, n int) (int, int) {
	if a < 0 {
		a += n
	}
	if a < 0 {
		a = 0
	}
	if a > n {
		a = n
	}
	if c < 0 {
		c += n
	}
	if c < 0 {
		c = 0
	}
	if c > n {
		c = n
	}
	return a, c
}

// Slice implements self[a:c:step] (§4.3). step == 1 takes the fast
// character-range path; any other step materialises morae one at a time,
// validating the small-kana boundary rule against the last character of
// the previously emitted mora.
func (m MoraStr) Slice(a, c, step int) (MoraStr, error) {
	n := m.Len()
	if step == 0 {
		return MoraStr{}, newTypeMismatch("slice step must not be zero")
	}
	if step == 1 {
		a, c = normalizeSliceRange(a, c, n)
		if c <= a {
			return emptyMoraStr, nil
		}
		startOff := m.charOffset(a)
		endOff := m.charOffset(c)
		sub, subB := sliceByChar(m.s, m.b, startOff, endOff)
		return MoraStr{s: sub, b: subB}, nil
	}

	var idxs []int
	if step > 0 {
		a, c = normalizeSliceRange(a, c, n)
		for i := a; i < c; i += step {
			idxs = append(idxs, i)
		}
	} else {
		// Negative-step slicing: a == 0 && c == 0 selects the default
		// bounds n-1 and "before the start". c == -1 also means "before
		// the start" (unlike Python, where -1 is the last element); c < -1
		// and a < 0 count from the end.
		if a == 0 && c == 0 {
			a, c = n-1, -1
		}
		a, c = normalizeSliceRangeNeg(a, c, n)
		for i := a; i > c; i += step {
			idxs = append(idxs, i)
		}
	}

	var buf []rune
	var bounds []int32
	var prevCol byte
	for pos, i := range idxs {
		if i < 0 || i >= n {
			return MoraStr{}, newIndexOutOfRange(i)
		}
		start, end := m.moraRange(i)
		span := m.s[start:end]
		if pos == 0 {
			if step < 0 && smallVowel(span[0]) != 0 {
				return MoraStr{}, errIllFormedMoraString
			}
		} else if rime := smallVowel(span[0]); rime != 0 && rime != prevCol {
			return MoraStr{}, errIllFormedMoraString
		}
		buf = append(buf, span...)
		bounds = append(bounds, int32(len(buf)))
		prevCol = column(span[len(span)-1])
	}

	if len(bounds) == len(buf) {
		return MoraStr{s: buf}, nil
	}
	return MoraStr{s: buf, b: Boundaries{sparse: bounds}}, nil
}

func normalizeSliceRangeNeg(a, c, n int) (int, int) {
	if a < 0 {
		a += n
	}
	if a >= n {
		a = n - 1
	}
	if c < -1 {
		c += n
		if c < -1 {
			c = -1
		}
	}
	return a, c
}
