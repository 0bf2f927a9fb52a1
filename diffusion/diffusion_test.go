package diffusion

import (
	"bytes"
	"testing"

	"github.com/getssss/ssss/cprng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	lengths := []int{8, 9, 10, 11, 15, 16, 17, 31, 32, 64, 127, 128}
	for _, n := range lengths {
		buf := make([]byte, n)
		_, err := cprng.Stream([]byte("diffusion")).Read(buf)
		require.NoError(t, err)
		orig := append([]byte(nil), buf...)

		Encode(buf)
		assert.NotEqual(t, orig, buf, "length %d: permutation left the buffer unchanged", n)

		Decode(buf)
		assert.Equal(t, orig, buf, "length %d", n)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	a := bytes.Repeat([]byte{0xA5}, 24)
	b := bytes.Repeat([]byte{0xA5}, 24)
	Encode(a)
	Encode(b)
	assert.Equal(t, a, b)
}

func TestShortBuffersAreLeftAlone(t *testing.T) {
	for n := 0; n < MinLength; n++ {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(i + 1)
		}
		orig := append([]byte{}, buf...)
		Encode(buf)
		assert.Equal(t, orig, buf, "length %d", n)
		Decode(buf)
		assert.Equal(t, orig, buf, "length %d", n)
	}
}

func TestEncodeSpreadsSingleBitChange(t *testing.T) {
	a := make([]byte, 16)
	b := make([]byte, 16)
	b[15] = 0x01

	Encode(a)
	Encode(b)

	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}
	// a one-bit difference must not stay local after the full pass schedule
	assert.Greater(t, diff, 8)
}
