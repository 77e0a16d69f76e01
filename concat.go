package morastr

// Concat implements a || b (§4.3). When b does not begin with a small
// kana, the boundaries are a straight O(m) concatenation; otherwise the
// combined string must be re-segmented, since the junction itself may form
// or dissolve a mora.
func (a MoraStr) Concat(b MoraStr) (MoraStr, error) {
	if a.Len() == 0 {
		return b, nil
	}
	if b.Len() == 0 {
		return a, nil
	}

	combined := make([]rune, 0, len(a.s)+len(b.s))
	combined = append(combined, a.s...)
	combined = append(combined, b.s...)

	if smallVowel(b.s[0]) == 0 {
		shift := int32(len(a.s))
		newB := make([]int32, 0, a.Len()+b.Len())
		for i := 0; i < a.Len(); i++ {
			newB = append(newB, int32(a.b.end(i)))
		}
		for i := 0; i < b.Len(); i++ {
			newB = append(newB, int32(b.b.end(i))+shift)
		}
		if len(newB) == len(combined) {
			return MoraStr{s: combined}, nil
		}
		return MoraStr{s: combined, b: Boundaries{sparse: newB}}, nil
	}

	boundaries, err := Segment(combined, false)
	if err != nil {
		return MoraStr{}, err
	}
	if boundaries.count(len(combined)) != a.Len()+b.Len() {
		return MoraStr{}, errMoraLengthInconsistency
	}
	return MoraStr{s: combined, b: boundaries}, nil
}

// Repeat implements a * n (§4.3).
func (a MoraStr) Repeat(n int) (MoraStr, error) {
	if n <= 0 || a.Len() == 0 {
		return emptyMoraStr, nil
	}
	if n == 1 {
		return a, nil
	}

	total := make([]rune, 0, len(a.s)*n)
	for i := 0; i < n; i++ {
		total = append(total, a.s...)
	}

	if smallVowel(a.s[0]) == 0 {
		m := a.Len()
		newB := make([]int32, 0, m*n)
		for i := 0; i < n; i++ {
			shift := int32(i * len(a.s))
			for k := 0; k < m; k++ {
				newB = append(newB, int32(a.b.end(k))+shift)
			}
		}
		if len(newB) == len(total) {
			return MoraStr{s: total}, nil
		}
		return MoraStr{s: total, b: Boundaries{sparse: newB}}, nil
	}

	boundaries, err := Segment(total, false)
	if err != nil {
		return MoraStr{}, err
	}
	if boundaries.count(len(total)) != a.Len()*n {
		return MoraStr{}, errMoraLengthInconsistency
	}
	return MoraStr{s: total, b: boundaries}, nil
}

func (m MoraStr) hasPrefixRunes(p []rune) bool {
	if len(p) > len(m.s) {
		return false
	}
	for i, r := range p {
		if m.s[i] != r {
			return false
		}
	}
	return true
}

func (m MoraStr) hasSuffixRunes(p []rune) bool {
	if len(p) > len(m.s) {
		return false
	}
	off := len(m.s) - len(p)
	for i, r := range p {
		if m.s[off+i] != r {
			return false
		}
	}
	return true
}

// StartsWith reports whether self begins with any of the given needles,
// honouring mora-boundary alignment.
func (m MoraStr) StartsWith(needles ...MoraStr) bool {
	for _, p := range needles {
		if p.Len() == 0 {
			return true
		}
		if m.hasPrefixRunes(p.s) && (len(p.s) == len(m.s) || m.isBoundaryAt(len(p.s))) {
			return true
		}
	}
	return false
}

// EndsWith reports whether self ends with any of the given needles,
// honouring mora-boundary alignment.
func (m MoraStr) EndsWith(needles ...MoraStr) bool {
	for _, p := range needles {
		if p.Len() == 0 {
			return true
		}
		if m.hasSuffixRunes(p.s) && (len(p.s) == len(m.s) || m.isBoundaryAt(len(m.s)-len(p.s))) {
			return true
		}
	}
	return false
}

// RemovePrefix strips p from the front of self if, and only if, self
// begins with p on a mora boundary; otherwise self is returned unchanged.
func (m MoraStr) RemovePrefix(p MoraStr) MoraStr {
	if p.Len() == 0 || !m.StartsWith(p) {
		return m
	}
	sub, subB := sliceByChar(m.s, m.b, len(p.s), len(m.s))
	return MoraStr{s: sub, b: subB}
}

// RemoveSuffix strips p from the back of self if, and only if, self ends
// with p on a mora boundary; otherwise self is returned unchanged.
func (m MoraStr) RemoveSuffix(p MoraStr) MoraStr {
	if p.Len() == 0 || !m.EndsWith(p) {
		return m
	}
	sub, subB := sliceByChar(m.s, m.b, 0, len(m.s)-len(p.s))
	return MoraStr{s: sub, b: subB}
}
