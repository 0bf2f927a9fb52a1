package ssss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareMarshalBinary(t *testing.T) {
	s := Share{Threshold: 3, Index: 7, Value: []byte{0xDE, 0xAD}}
	data, err := s.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 7, 0xDE, 0xAD}, data)

	var back Share
	require.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, s, back)

	// the parsed value must not alias the input
	data[2] = 0x00
	assert.Equal(t, byte(0xDE), back.Value[0])
}

func TestShareMarshalRejectsZeroIndex(t *testing.T) {
	s := Share{Threshold: 2, Index: 0, Value: []byte{0x01}}
	_, err := s.MarshalBinary()
	assert.ErrorIs(t, err, ErrInvalidShare)
}

func TestShareUnmarshalRejectsTruncated(t *testing.T) {
	var s Share
	assert.ErrorIs(t, s.UnmarshalBinary(nil), ErrInvalidShare)
	assert.ErrorIs(t, s.UnmarshalBinary([]byte{2}), ErrInvalidShare)
	assert.ErrorIs(t, s.UnmarshalBinary([]byte{2, 1}), ErrInvalidShare)
}

func TestSplitOutputSurvivesCodec(t *testing.T) {
	shares, err := Split([]byte("codec"), Config{Threshold: 2, Shares: 3})
	require.NoError(t, err)

	parsed := make([]Share, 0, 2)
	for _, s := range shares[:2] {
		data, err := s.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, data, ShareOverhead+5)
		var back Share
		require.NoError(t, back.UnmarshalBinary(data))
		parsed = append(parsed, back)
	}

	secret, err := Combine(parsed, Config{Threshold: 2})
	require.NoError(t, err)
	assert.Equal(t, []byte("codec"), secret)
}
