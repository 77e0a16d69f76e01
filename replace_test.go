package morastr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceRepeatedNonOverlapping(t *testing.T) {
	m, err := NewMoraStr("アイアイアイ", false)
	require.NoError(t, err)
	old, _ := NewMoraStr("アイ", false)
	repl, _ := NewMoraStr("ウ", false)

	got, err := m.Replace(old, repl, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ウ", "ウ", "ウ"}, moraStrings(t, got))
}

func TestReplaceRespectsMaxcount(t *testing.T) {
	m, _ := NewMoraStr("アイアイアイ", false)
	old, _ := NewMoraStr("アイ", false)
	repl, _ := NewMoraStr("ウ", false)

	got, err := m.Replace(old, repl, 1)
	require.NoError(t, err)
	assert.Equal(t, "ウアイアイ", got.ToStr())
}

func TestReplaceSkipsMisalignedOccurrence(t *testing.T) {
	m, _ := NewMoraStr("キャッキャ", false)
	old, _ := NewMoraStr("ャッ", true)
	repl, _ := NewMoraStr("ア", false)

	got, err := m.Replace(old, repl, -1)
	require.NoError(t, err)
	assert.True(t, got.Equal(m))
}

func TestReplaceIdentityLaws(t *testing.T) {
	m, _ := NewMoraStr("トウキョウ", false)
	p, _ := NewMoraStr("キョウ", false)

	same, err := m.Replace(p, p, -1)
	require.NoError(t, err)
	assert.True(t, same.Equal(m))

	noop, err := m.Replace(p, Empty(), 0)
	require.NoError(t, err)
	assert.True(t, noop.Equal(m))
}

func TestReplaceEmptyOldInsertsBetweenEveryMora(t *testing.T) {
	m, _ := NewMoraStr("アイ", false)
	sep, _ := NewMoraStr("ン", false)

	got, err := m.Replace(Empty(), sep, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ン", "ア", "ン", "イ", "ン"}, moraStrings(t, got))
}

func TestReplaceEmptyOldBoundedByMaxcount(t *testing.T) {
	m, _ := NewMoraStr("アイ", false)
	sep, _ := NewMoraStr("ン", false)

	got, err := m.Replace(Empty(), sep, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ン", "ア", "イ"}, moraStrings(t, got))
}

func TestReplaceRejectsIllFormedReplacement(t *testing.T) {
	m, _ := NewMoraStr("アイ", false)
	old, _ := NewMoraStr("ア", false)
	badNew, err := NewMoraStr("ャ", true)
	require.NoError(t, err)

	_, err = m.Replace(old, badNew, -1)
	require.Error(t, err)
	var me *Error
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrIllFormedReplacement, me.Kind)
}
