package morastr

// Algorithm identifies which of the four interchangeable search engines a
// call was routed through. It exists as a plain enum, not an interface,
// since the selector is a pure function and every algorithm is a plain
// function (§9: "no runtime subclassing").
type Algorithm int

const (
	AlgoNaive Algorithm = iota
	AlgoBitap32
	AlgoBitap64
	AlgoTwoWay
)

func (a Algorithm) String() string {
	switch a {
	case AlgoNaive:
		return "naive"
	case AlgoBitap32:
		return "bitap32"
	case AlgoBitap64:
		return "bitap64"
	case AlgoTwoWay:
		return "twoway"
	default:
		return "unknown"
	}
}

// bitsPerWord is 64 on every platform this module targets; Go has no
// 32-bit-only int, so Bitap-32 and Bitap-64 share one implementation and
// differ only in which needle lengths route to them (kept distinct in the
// selector purely to mirror the reference implementation's two code paths).
const bitsPerWord = 64

// SelectAlgorithm picks the search algorithm for a (haystack length, needle
// length) pair, per the §4.4 selector table. moraAligned widens the "small
// haystack" and "short needle" thresholds from the character-search values
// (16, 2) to the mora-search values (24, 3).
func SelectAlgorithm(haystackLen, needleLen int, moraAligned bool) Algorithm {
	smallHaystack := 16
	shortNeedle := 2
	if moraAligned {
		smallHaystack = 24
		shortNeedle = 3
	}
	if haystackLen <= smallHaystack || needleLen <= shortNeedle {
		return AlgoNaive
	}
	if needleLen <= 32 {
		return AlgoBitap32
	}
	if needleLen <= bitsPerWord {
		return AlgoBitap64
	}
	if haystackLen-needleLen > 3 {
		return AlgoTwoWay
	}
	return AlgoNaive
}

// searchOnce dispatches a single "first occurrence at or after from"
// query through the chosen algorithm.
func searchOnce(algo Algorithm, haystack, needle []rune, from int) int {
	logger.Trace().Str("algo", algo.String()).Int("needle_len", len(needle)).Msg("search dispatch")
	switch algo {
	case AlgoBitap32, AlgoBitap64:
		return bitapFind(haystack, needle, from)
	case AlgoTwoWay:
		return twoWayFind(haystack, needle, from)
	default:
		return naiveFind(haystack, needle, from)
	}
}
