package morastr

import "iter"

// MoraStr is an immutable, value-typed partition of a full-width katakana
// string into morae. Its backing rune slice is never modified after
// construction, so values may share it: New returns a MoraStr argument
// as-is, and operations such as Concat with an empty operand, Repeat(1),
// RemovePrefix/RemoveSuffix without a match, and Replace without a match
// return an operand unchanged.
type MoraStr struct {
	s []rune
	b Boundaries
}

var emptyMoraStr = MoraStr{s: []rune{}}

// Empty returns the shared empty MoraStr singleton.
func Empty() MoraStr {
	return emptyMoraStr
}

// New constructs a MoraStr from a string or another MoraStr. Strings are
// normalised with validate = !ignore and then segmented with the same
// strictness; a MoraStr input is returned as-is, since MoraStr values are
// immutable and safe to share.
func New(ctx *Context, x interface{}, ignore bool) (MoraStr, error) {
	switch v := x.(type) {
	case MoraStr:
		return v, nil
	case string:
		norm, err := ctx.Normalise(v, !ignore)
		if err != nil {
			return MoraStr{}, err
		}
		runes := []rune(norm)
		if len(runes) == 0 {
			return emptyMoraStr, nil
		}
		b, err := Segment(runes, !ignore)
		if err != nil {
			return MoraStr{}, err
		}
		return MoraStr{s: runes, b: b}, nil
	default:
		return MoraStr{}, newTypeMismatch("expected string or MoraStr")
	}
}

// NewMoraStr constructs a MoraStr against the default Context.
func NewMoraStr(x interface{}, ignore bool) (MoraStr, error) {
	return New(defaultContext, x, ignore)
}

// FromStrs concatenates parts and constructs a single MoraStr from the
// result.
func FromStrs(ctx *Context, ignore bool, parts ...string) (MoraStr, error) {
	joined := ""
	for _, p := range parts {
		joined += p
	}
	return New(ctx, joined, ignore)
}

// Len returns the mora count.
func (m MoraStr) Len() int {
	return m.b.count(len(m.s))
}

// RuneLen returns the character (code point) count, which may exceed Len
// when multi-character morae are present.
func (m MoraStr) RuneLen() int {
	return len(m.s)
}

// ToStr renders the MoraStr back to a plain string.
func (m MoraStr) ToStr() string {
	return string(m.s)
}

// Equal reports whether two MoraStr values hold the same underlying string.
// Per §6, ordering is intentionally left undefined.
func (m MoraStr) Equal(other MoraStr) bool {
	if len(m.s) != len(other.s) {
		return false
	}
	for i := range m.s {
		if m.s[i] != other.s[i] {
			return false
		}
	}
	return true
}

func (m MoraStr) resolveIndex(i int) (int, error) {
	n := m.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, newIndexOutOfRange(i)
	}
	return i, nil
}

// moraRange returns the character offsets [start, end) of mora i.
func (m MoraStr) moraRange(i int) (int, int) {
	return m.b.start(i), m.b.end(i)
}

// Index extracts the mora at position i (negative indices wrap) as its own
// MoraStr.
func (m MoraStr) Index(i int) (MoraStr, error) {
	i, err := m.resolveIndex(i)
	if err != nil {
		return MoraStr{}, err
	}
	start, end := m.moraRange(i)
	seg := append([]rune(nil), m.s[start:end]...)
	return MoraStr{s: seg, b: spanBoundaries(len(seg))}, nil
}

// CharIndices returns the cumulative boundary offsets. With zero set, 0 is
// prefixed to the result.
func (m MoraStr) CharIndices(zero bool) []int {
	n := m.Len()
	ends := make([]int, n)
	for i := 0; i < n; i++ {
		ends[i] = m.b.end(i)
	}
	if zero {
		return append([]int{0}, ends...)
	}
	return ends
}

func (m MoraStr) isBoundaryAt(offset int) bool {
	return m.b.isBoundaryAt(offset, len(m.s))
}

func (m MoraStr) moraIndexAt(offset int) int {
	return m.b.moraIndexAt(offset, len(m.s))
}

func (m MoraStr) charOffset(moraIdx int) int {
	return m.b.charOffset(moraIdx, len(m.s))
}

// Morae returns a Go 1.23 range-over-func iterator yielding each mora's
// index and its one-mora MoraStr value, left to right.
func (m MoraStr) Morae() iter.Seq2[int, MoraStr] {
	return func(yield func(int, MoraStr) bool) {
		n := m.Len()
		for i := 0; i < n; i++ {
			start, end := m.moraRange(i)
			seg := append([]rune(nil), m.s[start:end]...)
			if !yield(i, MoraStr{s: seg, b: spanBoundaries(len(seg))}) {
				return
			}
		}
	}
}
