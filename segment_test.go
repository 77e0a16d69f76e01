package morastr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentDenseWhenAllSingleChar(t *testing.T) {
	b, err := Segment([]rune("ガッコウ"), true)
	require.NoError(t, err)
	assert.Nil(t, b.sparse)
	assert.Equal(t, 4, b.count(len([]rune("ガッコウ"))))
}

func TestSegmentSparseForYoonAndSokuon(t *testing.T) {
	v := []rune("キャッキャ")
	b, err := Segment(v, true)
	require.NoError(t, err)
	require.NotNil(t, b.sparse)
	assert.Equal(t, []int32{2, 3, 5}, b.sparse)
}

func TestSegmentLeadingSmallKanaWarning(t *testing.T) {
	_, err := Segment([]rune("ァア"), true)
	require.Error(t, err)
	var me *Error
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrLeadingSmallKanaWarning, me.Kind)

	_, err = Segment([]rune("ァア"), false)
	assert.NoError(t, err)
}

func TestSegmentMoraTooLong(t *testing.T) {
	// コ + three continuing small-O kana would overflow the 3-char cap.
	_, err := Segment([]rune("コォォォ"), true)
	require.Error(t, err)
	var me *Error
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrMoraTooLong, me.Kind)
}

func TestSegmentEmpty(t *testing.T) {
	b, err := Segment(nil, true)
	require.NoError(t, err)
	assert.Equal(t, 0, b.count(0))
}
