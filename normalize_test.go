package morastr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormaliseHiraganaToKatakana(t *testing.T) {
	ctx := NewContext()
	got, err := ctx.Normalise("がっこう", true)
	require.NoError(t, err)
	assert.Equal(t, "ガッコウ", got)
}

func TestNormalisePassesThroughKatakana(t *testing.T) {
	ctx := NewContext()
	got, err := ctx.Normalise("トウキョウ", true)
	require.NoError(t, err)
	assert.Equal(t, "トウキョウ", got)
}

func TestNormaliseHalfwidthViaRegisteredPairMap(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.Register(map[string]string{
		"ｶ": "カ", "ﾀ": "タ", "ﾅ": "ナ",
	})
	require.NoError(t, err)
	got, err := ctx.Normalise("ｶﾀｶﾅ", true)
	require.NoError(t, err)
	assert.Equal(t, "カタカナ", got)
}

func TestNormaliseInvalidCharacter(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.Normalise("ガ1コウ", true)
	require.Error(t, err)
	var me *Error
	require.True(t, errors.As(err, &me))
	assert.Equal(t, ErrInvalidCharacter, me.Kind)
	assert.Equal(t, '1', me.Char)
	assert.Equal(t, 1, me.Offset)
}

func TestNormaliseSkipsInvalidWhenNotValidating(t *testing.T) {
	ctx := NewContext()
	got, err := ctx.Normalise("ガ1コウ", false)
	require.NoError(t, err)
	assert.Equal(t, "ガコウ", got)
}

func TestNormaliseWithConverter(t *testing.T) {
	ctx := NewContext()
	ctx.SetConverter(func(s string) (string, error) {
		return "がっこう", nil
	})
	got, err := ctx.Normalise("anything", true)
	require.NoError(t, err)
	assert.Equal(t, "ガッコウ", got)
}

func TestRegisterRejectsKatakanaKey(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.Register(map[string]string{"ア": "カ"})
	require.Error(t, err)
	var me *Error
	require.True(t, errors.As(err, &me))
	assert.Equal(t, ErrTypeMismatch, me.Kind)
}

func TestRegisterResidueForLongKeys(t *testing.T) {
	ctx := NewContext()
	residue, err := ctx.Register(map[string]string{"abc": "カ", "ｶ": "カ"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"abc": "カ"}, residue)
}
