package morastr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatFastPath(t *testing.T) {
	a, _ := NewMoraStr("トウ", false)
	b, _ := NewMoraStr("キョウ", false)
	got, err := a.Concat(b)
	require.NoError(t, err)
	assert.Equal(t, "トウキョウ", got.ToStr())
	assert.Equal(t, []string{"ト", "ウ", "キョ", "ウ"}, moraStrings(t, got))
}

func TestConcatJunctionReSegments(t *testing.T) {
	a, err := NewMoraStr("ア", false)
	require.NoError(t, err)
	b, err := NewMoraStr("ャ", true)
	require.NoError(t, err)

	got, err := a.Concat(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"ア", "ャ"}, moraStrings(t, got))
}

func TestConcatJunctionMergeCausesLengthInconsistency(t *testing.T) {
	a, err := NewMoraStr("キ", false)
	require.NoError(t, err)
	b, err := NewMoraStr("ャ", true)
	require.NoError(t, err)

	_, err = a.Concat(b)
	require.Error(t, err)
	var me *Error
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrMoraLengthInconsistency, me.Kind)
}

func TestConcatWithEmptyIsIdentity(t *testing.T) {
	a, _ := NewMoraStr("トウキョウ", false)
	got, err := a.Concat(Empty())
	require.NoError(t, err)
	assert.True(t, got.Equal(a))

	got, err = Empty().Concat(a)
	require.NoError(t, err)
	assert.True(t, got.Equal(a))
}

func TestRepeat(t *testing.T) {
	a, _ := NewMoraStr("アイ", false)
	got, err := a.Repeat(3)
	require.NoError(t, err)
	assert.Equal(t, "アイアイアイ", got.ToStr())
	assert.Equal(t, 6, got.Len())
}

func TestRepeatZeroOrNegativeIsEmpty(t *testing.T) {
	a, _ := NewMoraStr("アイ", false)
	got, err := a.Repeat(0)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())

	got, err = a.Repeat(-1)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestStartsWithEndsWithRespectBoundaries(t *testing.T) {
	m, _ := NewMoraStr("キャッキャ", false)
	good, _ := NewMoraStr("キャ", false)
	assert.True(t, m.StartsWith(good))
	assert.True(t, m.EndsWith(good))

	bad, _ := NewMoraStr("ャ", true)
	assert.False(t, m.StartsWith(bad))
}

func TestRemovePrefixSuffixNoOpWhenMisaligned(t *testing.T) {
	m, _ := NewMoraStr("キャッキャ", false)
	misaligned, _ := NewMoraStr("キ", false)
	assert.True(t, m.RemovePrefix(misaligned).Equal(m))

	prefix, _ := NewMoraStr("キャ", false)
	rest := m.RemovePrefix(prefix)
	assert.Equal(t, []string{"ッ", "キャ"}, moraStrings(t, rest))

	suffix, _ := NewMoraStr("キャ", false)
	front := m.RemoveSuffix(suffix)
	assert.Equal(t, []string{"キャ", "ッ"}, moraStrings(t, front))
}
