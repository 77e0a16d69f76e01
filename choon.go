package morastr

// ChoonOptions configures vowel_to_choon (§4.6). MaxRep caps the number of
// consecutive characters one long-vowel rule may fold into ー; -1 means
// unbounded. The Ei and Ou rules are specified to cap at exactly one
// replacement regardless of MaxRep (§9's open-question note: "those rules
// cap at one repetition. Preserve that cap.").
type ChoonOptions struct {
	MaxRep int
	Clean  bool
	OU     bool
	EI     bool
	NN     bool
}

// DefaultChoonOptions mirrors the free function defaults from §6:
// vowel_to_choon(s, maxrep=1, clean=False, ou=False, ei=False, nn=True).
func DefaultChoonOptions() ChoonOptions {
	return ChoonOptions{MaxRep: 1, NN: true}
}

var longVowelChars = map[rune]bool{
	kanaSmallA: true, kanaA: true,
	kanaSmallI: true, kanaI: true,
	kanaSmallU: true, kanaU: true,
	kanaSmallE: true, kanaE: true,
	kanaSmallO: true, kanaO: true,
}

var vowelForColumn = map[byte]rune{
	columnA: kanaA, columnI: kanaI, columnU: kanaU, columnE: kanaE, columnO: kanaO,
}

func cleanNonKatakana(s []rune) []rune {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if IsFullwidthKatakana(c) {
			out = append(out, c)
		}
	}
	return out
}

// VowelToChoon runs the raw rune-level long-vowel-to-chōonpu fold (C8).
func VowelToChoon(s []rune, opts ChoonOptions) []rune {
	out := append([]rune(nil), s...)
	i := 1
	for i < len(out) {
		prevCh := out[i-1]
		prevCol := column(prevCh)
		cur := out[i]

		replace := false
		capOne := false
		anchorCol := prevCol

		switch {
		case prevCol != columnNone && longVowelChars[cur] && column(cur) == prevCol:
			replace = true
		case opts.NN && cur == kanaN && prevCh == kanaN:
			replace = true
			anchorCol = columnN
		case opts.EI && prevCol == columnE && (cur == kanaSmallI || cur == kanaI):
			replace = true
			capOne = true
		case opts.OU && prevCol == columnO && (cur == kanaSmallU || cur == kanaU):
			replace = true
			capOne = true
		}

		if !replace {
			i++
			continue
		}

		out[i] = kanaChoon
		i++
		if capOne || opts.MaxRep == 1 {
			continue
		}
		rep := 1
		for i < len(out) && (opts.MaxRep < 0 || rep < opts.MaxRep) {
			c2 := out[i]
			if longVowelChars[c2] && column(c2) == anchorCol {
				out[i] = kanaChoon
				i++
				rep++
				continue
			}
			break
		}
	}
	if opts.Clean {
		out = cleanNonKatakana(out)
	}
	return out
}

// ChoonToVowel runs the raw rune-level chōonpu-to-vowel unfold (C8). In
// strict mode, a run of ー with no preceding katakana to draw a vowel from
// fails with DanglingProlongedMark; otherwise the run is left untouched.
func ChoonToVowel(s []rune, strict, clean bool) ([]rune, error) {
	out := make([]rune, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] != kanaChoon {
			out = append(out, s[i])
			i++
			continue
		}
		runStart := i
		for i < len(s) && s[i] == kanaChoon {
			i++
		}
		runLen := i - runStart

		var baseCol byte
		if runStart > 0 {
			baseCol = column(s[runStart-1])
		}
		v, ok := vowelForColumn[baseCol]
		if !ok {
			if strict {
				return nil, errDanglingProlongedMark
			}
			for k := 0; k < runLen; k++ {
				out = append(out, kanaChoon)
			}
			continue
		}
		for k := 0; k < runLen; k++ {
			out = append(out, v)
		}
	}
	if clean {
		out = cleanNonKatakana(out)
	}
	return out, nil
}

// VowelToChoon transforms a MoraStr, failing with MoraLengthInconsistency
// if the fold changes the mora count.
func (m MoraStr) VowelToChoon(opts ChoonOptions) (MoraStr, error) {
	out := VowelToChoon(m.s, opts)
	b, err := Segment(out, false)
	if err != nil {
		return MoraStr{}, err
	}
	result := MoraStr{s: out, b: b}
	if result.Len() != m.Len() {
		return MoraStr{}, errMoraLengthInconsistency
	}
	return result, nil
}

// ChoonToVowel transforms a MoraStr, failing with MoraLengthInconsistency
// if the unfold changes the mora count.
func (m MoraStr) ChoonToVowel(strict, clean bool) (MoraStr, error) {
	out, err := ChoonToVowel(m.s, strict, clean)
	if err != nil {
		return MoraStr{}, err
	}
	b, err := Segment(out, false)
	if err != nil {
		return MoraStr{}, err
	}
	result := MoraStr{s: out, b: b}
	if result.Len() != m.Len() {
		return MoraStr{}, errMoraLengthInconsistency
	}
	return result, nil
}

// VowelToChoonString runs the fold over a plain string, normalising first.
func VowelToChoonString(ctx *Context, s string, opts ChoonOptions) (string, error) {
	norm, err := ctx.Normalise(s, true)
	if err != nil {
		return "", err
	}
	return string(VowelToChoon([]rune(norm), opts)), nil
}

// ChoonToVowelString runs the unfold over a plain string, normalising
// first.
func ChoonToVowelString(ctx *Context, s string, strict, clean bool) (string, error) {
	norm, err := ctx.Normalise(s, true)
	if err != nil {
		return "", err
	}
	out, err := ChoonToVowel([]rune(norm), strict, clean)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
