package morastr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceFastPathStepOne(t *testing.T) {
	m, err := NewMoraStr("トウキョウ", false)
	require.NoError(t, err)

	sub, err := m.Slice(0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "トウ", sub.ToStr())

	sub, err = m.Slice(-2, m.Len(), 1)
	require.NoError(t, err)
	assert.Equal(t, "キョウ", sub.ToStr())
}

func TestSliceRoundTripLaw(t *testing.T) {
	m, err := NewMoraStr("キャッキャトウキョウ", false)
	require.NoError(t, err)

	i, j, k, l := 1, 5, 1, 3
	outer, err := m.Slice(i, j, 1)
	require.NoError(t, err)
	inner, err := outer.Slice(k, l, 1)
	require.NoError(t, err)

	direct, err := m.Slice(i+k, i+l, 1)
	require.NoError(t, err)
	assert.True(t, inner.Equal(direct))
}

func TestSliceStepTwoMaterialisesMorae(t *testing.T) {
	m, err := NewMoraStr("アイウエオ", false)
	require.NoError(t, err)

	got, err := m.Slice(0, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"ア", "ウ", "オ"}, moraStrings(t, got))
}

func TestSliceNegativeStepReversesMorae(t *testing.T) {
	m, err := NewMoraStr("アキャウ", false)
	require.NoError(t, err)

	got, err := m.Slice(m.Len()-1, -1, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ウ", "キャ", "ア"}, moraStrings(t, got))
}

func TestSliceZeroStepIsRejected(t *testing.T) {
	m, _ := NewMoraStr("アイウ", false)
	_, err := m.Slice(0, 1, 0)
	require.Error(t, err)
}
