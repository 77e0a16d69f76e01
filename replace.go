package morastr

// replaceOutput accumulates the spliced result of a replace pass, tracking
// boundaries incrementally and enforcing the small-kana junction rule at
// every splice point (§4.5 step 5: "validate the boundary against the last
// emitted vowel").
type replaceOutput struct {
	out    []rune
	bounds []int32
}

func (r *replaceOutput) append(seg []rune, segB Boundaries) error {
	if len(seg) == 0 {
		return nil
	}
	if len(r.out) > 0 {
		if rime := smallVowel(seg[0]); rime != 0 && rime != column(r.out[len(r.out)-1]) {
			return errIllFormedMoraString
		}
	}
	base := int32(len(r.out))
	r.out = append(r.out, seg...)
	if segB.sparse == nil {
		for i := 1; i <= len(seg); i++ {
			r.bounds = append(r.bounds, base+int32(i))
		}
		return nil
	}
	for _, v := range segB.sparse {
		r.bounds = append(r.bounds, base+v)
	}
	return nil
}

func (r *replaceOutput) result() MoraStr {
	if len(r.bounds) == len(r.out) {
		return MoraStr{s: r.out}
	}
	return MoraStr{s: r.out, b: Boundaries{sparse: r.bounds}}
}

// Replace implements the C7 replace engine. maxcount < 0 means unbounded.
func (m MoraStr) Replace(old, new MoraStr, maxcount int) (MoraStr, error) {
	if old.Equal(new) {
		return m, nil
	}
	if old.Len() == 0 {
		return m.replaceEmptyOld(new, maxcount)
	}
	if new.Len() > 0 && smallVowel(new.s[0]) != 0 {
		return MoraStr{}, errIllFormedReplacement
	}
	if len(m.s) < len(old.s) {
		return m, nil
	}

	var matches []int
	algo := SelectAlgorithm(len(m.s), len(old.s), true)
	fromChar := 0
	for maxcount < 0 || len(matches) < maxcount {
		pos := searchOnce(algo, m.s, old.s, fromChar)
		for pos != -1 && (!m.isBoundaryAt(pos) || !m.isBoundaryAt(pos+len(old.s))) {
			pos = naiveFind(m.s, old.s, pos+1)
		}
		if pos == -1 {
			break
		}
		matches = append(matches, pos)
		fromChar = pos + len(old.s)
	}
	if len(matches) == 0 {
		return m, nil
	}

	out := &replaceOutput{
		out:    make([]rune, 0, len(m.s)+len(matches)*(len(new.s)-len(old.s))),
		bounds: make([]int32, 0, m.Len()+len(matches)*(new.Len()-old.Len())),
	}
	cursor := 0
	for _, pos := range matches {
		_, segB := sliceByChar(m.s, m.b, cursor, pos)
		if err := out.append(m.s[cursor:pos], segB); err != nil {
			return MoraStr{}, err
		}
		if err := out.append(new.s, new.b); err != nil {
			return MoraStr{}, err
		}
		cursor = pos + len(old.s)
	}
	_, tailB := sliceByChar(m.s, m.b, cursor, len(m.s))
	if err := out.append(m.s[cursor:], tailB); err != nil {
		return MoraStr{}, err
	}
	return out.result(), nil
}

// replaceEmptyOld inserts new between every adjacent pair of morae
// (and at both ends), bounded by maxcount insertions.
func (m MoraStr) replaceEmptyOld(new MoraStr, maxcount int) (MoraStr, error) {
	if new.Len() > 0 && smallVowel(new.s[0]) != 0 {
		return MoraStr{}, errIllFormedReplacement
	}
	n := m.Len()
	insertions := n + 1
	if maxcount >= 0 && maxcount < insertions {
		insertions = maxcount
	}
	out := &replaceOutput{
		out:    make([]rune, 0, len(m.s)+insertions*len(new.s)),
		bounds: make([]int32, 0, n+insertions*new.Len()),
	}
	done := 0
	for i := 0; i < n; i++ {
		if done < insertions {
			if err := out.append(new.s, new.b); err != nil {
				return MoraStr{}, err
			}
			done++
		}
		start, end := m.moraRange(i)
		_, segB := sliceByChar(m.s, m.b, start, end)
		if err := out.append(m.s[start:end], segB); err != nil {
			return MoraStr{}, err
		}
	}
	if done < insertions {
		if err := out.append(new.s, new.b); err != nil {
			return MoraStr{}, err
		}
	}
	return out.result(), nil
}
