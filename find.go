package morastr

// normalizeRange clamps a (start, end) mora range against self, following
// the same negative-index convention as Slice.
func (m MoraStr) normalizeRange(start, end int) (int, int) {
	n := m.Len()
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if start > n {
		start = n
	}
	if end < 0 {
		end += n
		if end < 0 {
			end = 0
		}
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}

// findCoreBounded runs a single forward search for p inside self, confined
// to the mora range [startMora, endMora), re-scanning past any character
// hit that does not land on a mora boundary on both ends. That uniform
// post-filter is what keeps every algorithm's reported first match
// identical (search law #13) without weaving boundary bookkeeping into
// each algorithm's internal skip logic.
func (m MoraStr) findCoreBounded(p MoraStr, startMora, endMora int) (int, bool) {
	if p.Len() == 0 {
		return startMora, true
	}
	fromChar := m.charOffset(startMora)
	limitChar := m.charOffset(endMora)
	if fromChar > limitChar {
		return -1, false
	}
	haystack := m.s[:limitChar]
	algo := SelectAlgorithm(limitChar-fromChar, len(p.s), true)
	pos := searchOnce(algo, haystack, p.s, fromChar)
	for pos != -1 {
		if pos+len(p.s) > limitChar {
			return -1, false
		}
		if m.isBoundaryAt(pos) && m.isBoundaryAt(pos+len(p.s)) {
			return m.moraIndexAt(pos), true
		}
		pos = naiveFind(haystack, p.s, pos+1)
	}
	return -1, false
}

// Find returns the mora index of the first occurrence of p within
// [start, end), or -1.
func (m MoraStr) Find(p MoraStr, start, end int) int {
	start, end = m.normalizeRange(start, end)
	idx, ok := m.findCoreBounded(p, start, end)
	if !ok {
		return -1
	}
	return idx
}

// RFind returns the mora index of the last occurrence of p within
// [start, end), or -1.
func (m MoraStr) RFind(p MoraStr, start, end int) int {
	start, end = m.normalizeRange(start, end)
	if p.Len() == 0 {
		return end
	}
	fromChar := m.charOffset(start)
	limitChar := m.charOffset(end)
	upTo := limitChar - len(p.s)
	for upTo >= fromChar {
		pos := reverseFind(m.s[:limitChar], p.s, upTo)
		if pos == -1 || pos < fromChar {
			return -1
		}
		if m.isBoundaryAt(pos) && m.isBoundaryAt(pos+len(p.s)) {
			return m.moraIndexAt(pos)
		}
		upTo = pos - 1
	}
	return -1
}

// Contains reports whether p occurs anywhere in self.
func (m MoraStr) Contains(p MoraStr) bool {
	return m.Find(p, 0, m.Len()) != -1
}

// IndexOf is Find but returns NotFound instead of -1.
func (m MoraStr) IndexOf(p MoraStr, start, end int) (int, error) {
	idx := m.Find(p, start, end)
	if idx == -1 {
		return -1, errNotFound
	}
	return idx, nil
}

// RIndexOf is RFind but returns NotFound instead of -1.
func (m MoraStr) RIndexOf(p MoraStr, start, end int) (int, error) {
	idx := m.RFind(p, start, end)
	if idx == -1 {
		return -1, errNotFound
	}
	return idx, nil
}

// Count returns the number of non-overlapping occurrences of p within
// [start, end). An empty p counts every possible insertion point.
func (m MoraStr) Count(p MoraStr, start, end int) int {
	start, end = m.normalizeRange(start, end)
	if p.Len() == 0 {
		return end - start + 1
	}
	n := 0
	for {
		idx, ok := m.findCoreBounded(p, start, end)
		if !ok {
			break
		}
		n++
		start = idx + p.Len()
	}
	return n
}

// CountAll normalises and segments s, returning only the mora count
// without materialising a boundaries array — the "without materialising
// indices" fast path §6 calls out for bulk counting.
func CountAll(ctx *Context, s string, ignore bool) (int, error) {
	norm, err := ctx.Normalise(s, !ignore)
	if err != nil {
		return 0, err
	}
	v := []rune(norm)
	if len(v) == 0 {
		return 0, nil
	}
	if !ignore && smallVowel(v[0]) != 0 {
		return 0, errLeadingSmallKanaWarning
	}
	count := 1
	moraLen := 1
	prevRime := column(v[0])
	for i := 1; i < len(v); i++ {
		small := smallVowel(v[i])
		if small != 0 && small == prevRime {
			moraLen++
			if moraLen > 3 {
				return 0, errMoraTooLong
			}
		} else {
			count++
			moraLen = 1
		}
		prevRime = column(v[i])
	}
	return count, nil
}
