package morastr

import "sort"

// Boundaries is the tagged-union "dense vs sparse" representation from
// §9: sparse == nil means every mora is exactly one character long
// (the common case for plain kana text), so the mora count is simply the
// character count and no allocation is carried. Otherwise sparse holds the
// strictly increasing cumulative end-offsets of each mora span.
type Boundaries struct {
	sparse []int32
}

// count returns the mora count given the total character length of the
// string this Boundaries value describes.
func (b Boundaries) count(charLen int) int {
	if b.sparse == nil {
		return charLen
	}
	return len(b.sparse)
}

// end returns the end offset (exclusive) of mora i.
func (b Boundaries) end(i int) int {
	if b.sparse == nil {
		return i + 1
	}
	return int(b.sparse[i])
}

// start returns the start offset of mora i.
func (b Boundaries) start(i int) int {
	if i == 0 {
		return 0
	}
	return b.end(i - 1)
}

// isBoundaryAt reports whether offset falls exactly on a mora boundary
// (including both 0 and charLen).
func (b Boundaries) isBoundaryAt(offset, charLen int) bool {
	if offset == 0 || offset == charLen {
		return true
	}
	if b.sparse == nil {
		return true
	}
	idx := sort.Search(len(b.sparse), func(i int) bool { return int(b.sparse[i]) >= offset })
	return idx < len(b.sparse) && int(b.sparse[idx]) == offset
}

// moraIndexAt returns the index of the mora whose span starts at offset.
// offset must be a valid boundary (checked by the caller).
func (b Boundaries) moraIndexAt(offset, charLen int) int {
	if offset == charLen {
		return b.count(charLen)
	}
	if b.sparse == nil {
		return offset
	}
	idx := sort.Search(len(b.sparse), func(i int) bool { return int(b.sparse[i]) > offset })
	return idx
}

// charOffset converts a mora index (0..count inclusive) to a character
// offset.
func (b Boundaries) charOffset(moraIdx, charLen int) int {
	n := b.count(charLen)
	if moraIdx <= 0 {
		return 0
	}
	if moraIdx >= n {
		return charLen
	}
	return b.start(moraIdx)
}

// spanBoundaries builds the Boundaries value for a freshly materialised
// single-mora MoraStr of the given character length.
func spanBoundaries(length int) Boundaries {
	if length == 1 {
		return Boundaries{}
	}
	return Boundaries{sparse: []int32{int32(length)}}
}

// sliceByChar extracts s[start:end] together with the boundaries relative
// to the new slice, eliding them back to dense form if the cut happens to
// be mora-aligned-1 throughout.
func sliceByChar(s []rune, b Boundaries, start, end int) ([]rune, Boundaries) {
	sub := append([]rune(nil), s[start:end]...)
	if b.sparse == nil {
		return sub, Boundaries{}
	}
	lo := sort.Search(len(b.sparse), func(i int) bool { return int(b.sparse[i]) > start })
	var newB []int32
	for i := lo; i < len(b.sparse) && int(b.sparse[i]) <= end; i++ {
		newB = append(newB, b.sparse[i]-int32(start))
	}
	if len(newB) == 0 || int(newB[len(newB)-1]) != len(sub) {
		newB = append(newB, int32(len(sub)))
	}
	if len(newB) == len(sub) {
		return sub, Boundaries{}
	}
	return sub, Boundaries{sparse: newB}
}
