/*
Package ssss implements Shamir's Secret Sharing Scheme over binary
extension fields GF(2^m).

A secret of L bytes is interpreted as an element of GF(2^(8L)) and hidden
in the constant term of a random polynomial of degree threshold-1. Shares
are evaluations of that polynomial at the abscissas 1..n; any threshold of
them recover the secret by solving the resulting linear system, while
fewer reveal nothing beyond the secret's length.

Before splitting, an XTEA-based permutation can be run over the plaintext
(and inverted after combining) so that structured plaintext does not
survive recognizably in partial reconstructions. The permutation adds no
confidentiality; secrecy rests entirely on the sharing step.
*/
package ssss

import (
	"fmt"
	"io"
	"math/big"

	"github.com/getssss/ssss/cprng"
	"github.com/getssss/ssss/diffusion"
	"github.com/getssss/ssss/gf"
	"github.com/getssss/ssss/logging"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logging.NewLogger("SSSS")
}

// MaxShares bounds the threshold and the share count; thresholds and
// share indices travel in one byte each.
const MaxShares = 255

// MaxSecretLen is the widest secret that fits the largest supported field.
const MaxSecretLen = gf.MaxDegree / 8

// Config carries the options threaded through Split and Combine. The zero
// value is not usable; at least Threshold (and Shares, for Split) must be
// set.
type Config struct {
	// Threshold is the number of shares required to reconstruct.
	Threshold int
	// Shares is the number of shares Split emits. Ignored by Combine.
	Shares int
	// Diffusion runs the plaintext permutation before splitting and the
	// inverse after combining. Skipped with a warning for secrets shorter
	// than eight bytes.
	Diffusion bool
	// Rand is the entropy source for the random coefficients. A nil
	// reader selects the operating-system CPRNG.
	Rand io.Reader
}

// Share is one fragment of a split secret: the threshold recorded at split
// time, the nonzero evaluation abscissa, and the big-endian field element
// the polynomial evaluated to.
type Share struct {
	Threshold uint8
	Index     uint8
	Value     []byte
}

// Split shares secret into cfg.Shares fragments, cfg.Threshold of which
// reconstruct it. The secret is copied internally; the copy and the
// polynomial coefficients are zeroized before Split returns, on success
// and on error alike.
func Split(secret []byte, cfg Config) ([]Share, error) {
	t, n := cfg.Threshold, cfg.Shares
	if t < 2 || t > MaxShares {
		return nil, fmt.Errorf("%w: threshold %d out of range [2,%d]", ErrInvalidParameter, t, MaxShares)
	}
	if n < t || n > MaxShares {
		return nil, fmt.Errorf("%w: share count %d out of range [%d,%d]", ErrInvalidParameter, n, t, MaxShares)
	}
	l := len(secret)
	if l < 1 || l > MaxSecretLen {
		return nil, fmt.Errorf("%w: secret length %d out of range [1,%d]", ErrInvalidParameter, l, MaxSecretLen)
	}

	field, err := gf.New(8 * l)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	plain := make([]byte, l)
	copy(plain, secret)
	defer Wipe(plain)

	if cfg.Diffusion {
		if l >= diffusion.MinLength {
			diffusion.Encode(plain)
		} else {
			log.Warn("security level too small for the diffusion layer")
		}
	}

	rng := cfg.Rand
	if rng == nil {
		rng = cprng.System()
	}

	coeff := make([]*big.Int, t)
	defer wipeInts(coeff)
	coeff[0] = new(big.Int).SetBytes(plain)
	for k := 1; k < t; k++ {
		c, err := field.Random(rng)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		coeff[k] = c
	}

	shares := make([]Share, n)
	x := new(big.Int)
	for i := 1; i <= n; i++ {
		y := horner(field, x.SetInt64(int64(i)), coeff)
		shares[i-1] = Share{
			Threshold: uint8(t),
			Index:     uint8(i),
			Value:     field.Bytes(y),
		}
		wipeInt(y)
	}
	return shares, nil
}

// Combine reconstructs the secret from exactly cfg.Threshold shares. The
// shares may arrive in any order; any threshold-sized subset of a split
// yields the same secret. Duplicated or otherwise dependent shares are
// reported as ErrLinearDependence.
func Combine(shares []Share, cfg Config) ([]byte, error) {
	t := cfg.Threshold
	if t < 2 || t > MaxShares {
		return nil, fmt.Errorf("%w: threshold %d out of range [2,%d]", ErrInvalidParameter, t, MaxShares)
	}
	if len(shares) != t {
		return nil, fmt.Errorf("%w: got %d shares, threshold %d requires exactly that many", ErrInvalidParameter, len(shares), t)
	}
	l := len(shares[0].Value)
	if l < 1 || l > MaxSecretLen {
		return nil, fmt.Errorf("%w: payload length %d out of range [1,%d]", ErrInvalidShare, l, MaxSecretLen)
	}
	for _, s := range shares {
		if len(s.Value) != l {
			return nil, fmt.Errorf("%w: payload lengths differ within the batch", ErrInvalidShare)
		}
		if s.Index == 0 {
			return nil, fmt.Errorf("%w: share index 0", ErrInvalidShare)
		}
		if int(s.Threshold) != t {
			return nil, fmt.Errorf("%w: embedded threshold %d disagrees with requested %d", ErrInvalidShare, s.Threshold, t)
		}
	}

	field, err := gf.New(8 * l)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShare, err)
	}

	// Column s of A holds the powers of share s's abscissa, highest power
	// in row 0. The legacy x^t term is folded into b during assembly:
	// b[s] = y_s + x * A[0*t+s] = y_s + x^t.
	A := make([]*big.Int, t*t)
	b := make([]*big.Int, t)
	defer wipeInts(b)
	x := new(big.Int)
	for s, sh := range shares {
		x.SetInt64(int64(sh.Index))
		A[(t-1)*t+s] = big.NewInt(1)
		for k := t - 2; k >= 0; k-- {
			A[k*t+s] = field.Mul(A[(k+1)*t+s], x)
		}
		y := new(big.Int).SetBytes(sh.Value)
		b[s] = y.Xor(y, field.Mul(A[s], x))
	}

	if err := restoreSecret(field, t, A, b); err != nil {
		return nil, newCombineError(err, shares)
	}

	secret := make([]byte, l)
	b[t-1].FillBytes(secret)
	if cfg.Diffusion {
		if l >= diffusion.MinLength {
			diffusion.Decode(secret)
		} else {
			log.Warn("security level too small for the diffusion layer")
		}
	}
	return secret, nil
}
