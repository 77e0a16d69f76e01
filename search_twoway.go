package morastr

// twoWayNeedle is the preprocessed state for a Two-Way search against one
// fixed needle: the critical factorisation point, the period derived from
// it, and whether the needle is periodic around that factorisation. C9's
// find iterator owns one of these as an explicit per-iterator handle
// (§9, §12.3) rather than the reference implementation's process-global
// cache.
type twoWayNeedle struct {
	ell      int
	period   int
	periodic bool
}

// maximalSuffix computes the Crochemore-Perrin maximal suffix of x under
// the given order, returning the suffix's starting position minus one and
// the associated period.
func maximalSuffix(x []rune, less func(a, b rune) bool) (int, int) {
	n := len(x)
	i, j, k, p := -1, 0, 1, 1
	for j+k < n {
		a, b := x[i+k], x[j+k]
		switch {
		case less(a, b):
			j += k
			k = 1
			p = j - i
		case a == b:
			if k != p {
				k++
			} else {
				j += p
				k = 1
			}
		default:
			i = j
			j = i + 1
			k, p = 1, 1
		}
	}
	return i, p
}

func criticalFactorization(x []rune) (int, int) {
	i1, p1 := maximalSuffix(x, func(a, b rune) bool { return a < b })
	i2, p2 := maximalSuffix(x, func(a, b rune) bool { return a > b })
	if i1 > i2 {
		return i1 + 1, p1
	}
	return i2 + 1, p2
}

func runeEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func prepareTwoWay(pattern []rune) *twoWayNeedle {
	m := len(pattern)
	ell, p := criticalFactorization(pattern)
	periodic := p+ell <= m && runeEqual(pattern[:ell], pattern[p:p+ell])
	return &twoWayNeedle{ell: ell, period: p, periodic: periodic}
}

// twoWayRepetitionSearch is the dedicated scan for two-character needles
// (after cmorastr_twoway.c's two_way_repetition): a direct pairwise compare
// beats running the general critical-factorisation machinery for m == 2.
// Only pattern[0] and pattern[1] are compared; longer needles, periodic or
// not, go through twoWayFindPrepared.
func twoWayRepetitionSearch(text, pattern []rune, from int) int {
	a, b := pattern[0], pattern[1]
	for j := from; j+2 <= len(text); j++ {
		if text[j] == a && text[j+1] == b {
			return j
		}
	}
	return -1
}

// twoWayFind runs Two-Way string matching for a single lookup, computing
// the critical factorisation fresh each call.
func twoWayFind(text, pattern []rune, from int) int {
	if len(pattern) == 2 {
		return twoWayRepetitionSearch(text, pattern, from)
	}
	return twoWayFindPrepared(text, pattern, from, prepareTwoWay(pattern))
}

// twoWayFindPrepared runs Two-Way string matching reusing a preprocessed
// needle (the find iterator's cached path, §4.7/§9).
func twoWayFindPrepared(text, pattern []rune, from int, tw *twoWayNeedle) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		if from <= n {
			return from
		}
		return -1
	}
	if from < 0 {
		from = 0
	}
	ell := tw.ell

	if tw.periodic {
		memory := 0
		j := from
		for j <= n-m {
			i := ell
			if memory > i {
				i = memory
			}
			for i < m && pattern[i] == text[j+i] {
				i++
			}
			if i < m {
				j += i - ell + 1
				memory = 0
				continue
			}
			i = ell - 1
			for i >= memory && pattern[i] == text[j+i] {
				i--
			}
			if i < memory {
				return j
			}
			j += tw.period
			memory = m - tw.period
		}
		return -1
	}

	period := ell
	if m-ell > period {
		period = m - ell
	}
	period++
	j := from
	for j <= n-m {
		i := ell
		for i < m && pattern[i] == text[j+i] {
			i++
		}
		if i < m {
			j += i - ell + 1
			continue
		}
		i = ell - 1
		for i >= 0 && pattern[i] == text[j+i] {
			i--
		}
		if i < 0 {
			return j
		}
		j += period
	}
	return -1
}
