package ssss

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/getssss/ssss/cprng"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroReader hands out an endless stream of zero bytes, turning every
// random coefficient into zero.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// failReader simulates a broken entropy device.
type failReader struct{}

func (failReader) Read(p []byte) (int, error) {
	return 0, errors.New("device gone")
}

func combinations(n, k int) [][]int {
	var out [][]int
	pick := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(pick) == k {
			out = append(out, append([]int(nil), pick...))
			return
		}
		for i := start; i < n; i++ {
			pick = append(pick, i)
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)
	return out
}

func subset(shares []Share, idx []int) []Share {
	out := make([]Share, len(idx))
	for i, j := range idx {
		out[i] = shares[j]
	}
	return out
}

func TestSplitCombineRoundTrip(t *testing.T) {
	cases := []struct {
		threshold, shares, length int
	}{
		{2, 2, 1},
		{2, 3, 1},
		{3, 5, 2},
		{5, 8, 8},
		{4, 6, 16},
		{3, 4, 64},
		{2, 32, 8},
		{2, 3, 128},
	}
	for _, diffuse := range []bool{false, true} {
		for _, tc := range cases {
			name := fmt.Sprintf("t=%d/n=%d/l=%d/diffusion=%v", tc.threshold, tc.shares, tc.length, diffuse)
			t.Run(name, func(t *testing.T) {
				secret := make([]byte, tc.length)
				_, err := cprng.Stream([]byte(name)).Read(secret)
				require.NoError(t, err)

				shares, err := Split(secret, Config{
					Threshold: tc.threshold,
					Shares:    tc.shares,
					Diffusion: diffuse,
				})
				require.NoError(t, err)
				require.Len(t, shares, tc.shares)
				for i, s := range shares {
					assert.Equal(t, uint8(tc.threshold), s.Threshold)
					assert.Equal(t, uint8(i+1), s.Index)
					assert.Len(t, s.Value, tc.length)
				}

				// first and last threshold-sized windows
				got, err := Combine(shares[:tc.threshold], Config{Threshold: tc.threshold, Diffusion: diffuse})
				require.NoError(t, err)
				assert.Equal(t, secret, got)

				got, err = Combine(shares[len(shares)-tc.threshold:], Config{Threshold: tc.threshold, Diffusion: diffuse})
				require.NoError(t, err)
				assert.Equal(t, secret, got)
			})
		}
	}
}

func TestSubsetIndependence(t *testing.T) {
	secret := []byte{0xAB, 0xCD}
	shares, err := Split(secret, Config{Threshold: 3, Shares: 5, Rand: cprng.Stream([]byte("subset"))})
	require.NoError(t, err)

	combos := combinations(5, 3)
	require.Len(t, combos, 10)
	for _, idx := range combos {
		got, err := Combine(subset(shares, idx), Config{Threshold: 3})
		require.NoError(t, err, "subset %v", idx)
		assert.Equal(t, secret, got, "subset %v", idx)
	}
}

func TestSharePermutationInvariance(t *testing.T) {
	secret := []byte("permutation test")
	shares, err := Split(secret, Config{Threshold: 4, Shares: 6})
	require.NoError(t, err)

	picked := subset(shares, []int{0, 2, 3, 5})
	perms := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}
	for _, p := range perms {
		got, err := Combine(subset(picked, p), Config{Threshold: 4})
		require.NoError(t, err)
		assert.Equal(t, secret, got, "order %v", p)
	}
}

func TestSplitDeterministicGivenRNG(t *testing.T) {
	secret := []byte("reproducible split")
	first, err := Split(secret, Config{Threshold: 3, Shares: 5, Rand: cprng.Stream([]byte("seed"))})
	require.NoError(t, err)
	second, err := Split(secret, Config{Threshold: 3, Shares: 5, Rand: cprng.Stream([]byte("seed"))})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(first, second))

	other, err := Split(secret, Config{Threshold: 3, Shares: 5, Rand: cprng.Stream([]byte("other seed"))})
	require.NoError(t, err)
	assert.NotEmpty(t, cmp.Diff(first, other))
}

// With an all-zero random stream every higher coefficient vanishes, so the
// polynomial collapses to y = x^t + a[0] and the shares can be checked by
// hand against the degree-8 reducing polynomial x^8+x^4+x^3+x+1.
func TestKnownSharesSingleByte(t *testing.T) {
	secret := []byte{0x42}
	shares, err := Split(secret, Config{Threshold: 2, Shares: 3, Rand: zeroReader{}})
	require.NoError(t, err)

	want := []Share{
		{Threshold: 2, Index: 1, Value: []byte{0x43}}, // 1^2 + 0x42
		{Threshold: 2, Index: 2, Value: []byte{0x46}}, // x^2 = 0x04
		{Threshold: 2, Index: 3, Value: []byte{0x47}}, // (x+1)^2 = x^2+1
	}
	assert.Empty(t, cmp.Diff(want, shares))

	for _, idx := range combinations(3, 2) {
		got, err := Combine(subset(shares, idx), Config{Threshold: 2})
		require.NoError(t, err)
		assert.Equal(t, secret, got, "pair %v", idx)
	}
}

func TestAllOnesWithDiffusion(t *testing.T) {
	secret := bytes.Repeat([]byte{0xFF}, 8)
	shares, err := Split(secret, Config{Threshold: 2, Shares: 2, Diffusion: true})
	require.NoError(t, err)
	got, err := Combine(shares, Config{Threshold: 2, Diffusion: true})
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestCombineDuplicateShare(t *testing.T) {
	shares, err := Split([]byte("duplicate"), Config{Threshold: 2, Shares: 3})
	require.NoError(t, err)

	_, err = Combine([]Share{shares[0], shares[0]}, Config{Threshold: 2})
	assert.ErrorIs(t, err, ErrLinearDependence)

	// same index with different payloads is just as dependent
	forged := shares[0]
	forged.Value = append([]byte(nil), shares[1].Value...)
	forged.Index = shares[0].Index
	_, err = Combine([]Share{shares[0], forged}, Config{Threshold: 2})
	assert.ErrorIs(t, err, ErrLinearDependence)
}

func TestSplitParameterValidation(t *testing.T) {
	secret := []byte("x")
	_, err := Split(secret, Config{Threshold: 1, Shares: 3})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = Split(secret, Config{Threshold: 3, Shares: 2})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = Split(secret, Config{Threshold: 2, Shares: 256})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = Split(nil, Config{Threshold: 2, Shares: 3})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = Split(make([]byte, MaxSecretLen+1), Config{Threshold: 2, Shares: 3})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSplitEntropyFailure(t *testing.T) {
	_, err := Split([]byte("entropy"), Config{Threshold: 2, Shares: 3, Rand: failReader{}})
	assert.ErrorIs(t, err, ErrIO)
}

func TestCombineShareValidation(t *testing.T) {
	shares, err := Split([]byte("validate"), Config{Threshold: 3, Shares: 4})
	require.NoError(t, err)

	// fewer shares than the threshold requires
	_, err = Combine(shares[:2], Config{Threshold: 3})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	// zero abscissa
	bad := subset(shares, []int{0, 1, 2})
	bad[1].Index = 0
	_, err = Combine(bad, Config{Threshold: 3})
	assert.ErrorIs(t, err, ErrInvalidShare)

	// embedded threshold disagrees with the requested one
	bad = subset(shares, []int{0, 1, 2})
	bad[0].Threshold = 2
	_, err = Combine(bad, Config{Threshold: 3})
	assert.ErrorIs(t, err, ErrInvalidShare)

	// payload lengths differ within the batch
	bad = subset(shares, []int{0, 1, 2})
	bad[2].Value = bad[2].Value[:len(bad[2].Value)-1]
	_, err = Combine(bad, Config{Threshold: 3})
	assert.ErrorIs(t, err, ErrInvalidShare)
}

func TestSplitDoesNotMutateSecret(t *testing.T) {
	secret := []byte("stays intact....")
	kept := append([]byte(nil), secret...)
	_, err := Split(secret, Config{Threshold: 2, Shares: 2, Diffusion: true})
	require.NoError(t, err)
	assert.Equal(t, kept, secret)
}
