package morastr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnAndRime(t *testing.T) {
	cases := []struct {
		name   string
		c      rune
		column byte
		rime   byte
	}{
		{"ga", 'ガ', columnA, 0},
		{"ki", 'キ', columnI, 0},
		{"small ya binds after I", 'ャ', columnA, columnI},
		{"small wa binds after U", 'ヮ', columnA, columnU},
		{"sokuon has no rime", 'ッ', 0, 0},
		{"n", 'ン', columnN, 0},
		{"choonpu has no column", 'ー', 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.column, column(tc.c))
			assert.Equal(t, tc.rime, smallVowel(tc.c))
		})
	}
}

func TestIsFullwidthKatakana(t *testing.T) {
	assert.True(t, IsFullwidthKatakana('ア'))
	assert.True(t, IsFullwidthKatakana('ー'))
	assert.False(t, IsFullwidthKatakana('あ'))
	assert.False(t, IsFullwidthKatakana('a'))
}

func TestIsHiragana(t *testing.T) {
	assert.True(t, IsHiragana('あ'))
	assert.True(t, IsHiragana('ゝ'))
	assert.False(t, IsHiragana('ア'))
}
