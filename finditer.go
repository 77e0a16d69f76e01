package morastr

// ringCapacity bounds how many matches a single internal refill computes
// ahead of consumption (§4.7: "a ring of up to 32 pre-computed indices").
const ringCapacity = 32

// FindIter is a resumable, single-threaded iterator over non-overlapping
// matches. Its cached Two-Way needle, when present, is an owned buffer
// scoped to the iterator's lifetime rather than a process-global (§9).
type FindIter struct {
	haystack MoraStr
	needle   MoraStr
	algo     Algorithm
	charwise bool
	swapped  bool

	pos        int // next mora index to search from
	limitMora  int
	done       bool
	emptyNeedl bool

	ring    [ringCapacity]int
	ringLen int
	ringPos int

	twNeedle *twoWayNeedle
}

// FindIter constructs a resumable iterator over p's occurrences in self
// within mora range [start, end). If p is longer than self, the roles are
// swapped so the shorter operand is always the needle (§4.7 "Needle longer
// than haystack").
func (m MoraStr) FindIter(p MoraStr, start, end int, charwise bool) *FindIter {
	haystack, needle, swapped := m, p, false
	if p.Len() > m.Len() {
		haystack, needle = p, m
		swapped = true
	}
	start, end = haystack.normalizeRange(start, end)
	it := &FindIter{
		haystack:   haystack,
		needle:     needle,
		charwise:   charwise,
		swapped:    swapped,
		pos:        start,
		limitMora:  end,
		emptyNeedl: needle.Len() == 0,
	}
	if !it.emptyNeedl {
		it.algo = SelectAlgorithm(haystack.Len(), needle.Len(), true)
	}
	return it
}

// Next returns the next match's mora index (or character offset when
// charwise is set) and true, or (0, false) once exhausted.
func (it *FindIter) Next() (int, bool) {
	if it.ringPos < it.ringLen {
		v := it.ring[it.ringPos]
		it.ringPos++
		return it.translate(v), true
	}
	if it.done {
		return 0, false
	}
	it.refill()
	if it.ringLen == 0 {
		it.done = true
		return 0, false
	}
	v := it.ring[0]
	it.ringPos = 1
	return it.translate(v), true
}

func (it *FindIter) translate(moraIdx int) int {
	if !it.charwise {
		return moraIdx
	}
	return it.haystack.charOffset(moraIdx)
}

func (it *FindIter) refill() {
	it.ringLen = 0
	it.ringPos = 0

	if it.emptyNeedl {
		for it.pos <= it.limitMora && it.ringLen < ringCapacity {
			it.ring[it.ringLen] = it.pos
			it.ringLen++
			it.pos++
		}
		if it.pos > it.limitMora {
			it.done = true
		}
		return
	}

	if it.pos >= it.limitMora {
		it.done = true
		return
	}

	limitChar := it.haystack.charOffset(it.limitMora)
	fromChar := it.haystack.charOffset(it.pos)
	needleLen := len(it.needle.s)

	if it.algo == AlgoTwoWay && it.twNeedle == nil && needleLen != 2 {
		it.twNeedle = prepareTwoWay(it.needle.s)
	}

	for it.ringLen < ringCapacity {
		cap := 2*needleLen + fromChar + 2048
		if cap > limitChar {
			cap = limitChar
		}
		if fromChar >= cap {
			it.done = true
			break
		}

		var pos int
		switch it.algo {
		case AlgoBitap32, AlgoBitap64:
			pos = bitapFind(it.haystack.s[:cap], it.needle.s, fromChar)
		case AlgoTwoWay:
			if needleLen == 2 {
				pos = twoWayRepetitionSearch(it.haystack.s[:cap], it.needle.s, fromChar)
			} else {
				pos = twoWayFindPrepared(it.haystack.s[:cap], it.needle.s, fromChar, it.twNeedle)
			}
		default:
			pos = naiveFind(it.haystack.s[:cap], it.needle.s, fromChar)
		}

		if pos == -1 {
			if cap >= limitChar {
				it.done = true
				break
			}
			// A match straddling this window's right edge reports no hit
			// here (the scan only sees haystack[:cap]), but its start
			// offset up to needleLen-1 runes before cap is still
			// unexamined. Re-scan that overlap in the next window instead
			// of skipping past it.
			fromChar = cap - (needleLen - 1)
			continue
		}
		if pos+needleLen > limitChar {
			it.done = true
			break
		}
		if !it.haystack.isBoundaryAt(pos) || !it.haystack.isBoundaryAt(pos+needleLen) {
			fromChar = pos + 1
			continue
		}

		moraIdx := it.haystack.moraIndexAt(pos)
		it.ring[it.ringLen] = moraIdx
		it.ringLen++
		fromChar = pos + needleLen
		it.pos = moraIdx + 1
		if it.pos >= it.limitMora {
			it.done = true
			break
		}
	}
}
