package ssss

import (
	"math/big"

	"github.com/getssss/ssss/gf"
)

// horner evaluates the share polynomial at x:
//
//	y = x^t + a[t-1]*x^(t-1) + ... + a[1]*x + a[0]
//
// The leading x^t term carries no information and no security; it is kept
// for compatibility with existing shares and is subtracted off again during
// reconstruction.
func horner(f *gf.Field, x *big.Int, coeff []*big.Int) *big.Int {
	y := new(big.Int).Set(x)
	for k := len(coeff) - 1; k >= 1; k-- {
		y = f.Mul(gf.Add(y, coeff[k]), x)
	}
	return y.Xor(y, coeff[0])
}

// restoreSecret solves the t x t linear system (A, b) in place by Gaussian
// elimination over the field. A is a flat row-major buffer: A[k*t+s] holds
// the (t-1-k)-th power of share s's abscissa, so the second index is the share
// axis and is the axis swapped when pivoting. Rows are never normalized;
// the single inversion happens at the very end, after which b[t-1] holds
// the polynomial's constant term.
func restoreSecret(f *gf.Field, t int, A, b []*big.Int) error {
	for i := 0; i < t; i++ {
		if A[i*t+i].Sign() == 0 {
			found := -1
			for j := i + 1; j < t; j++ {
				if A[i*t+j].Sign() != 0 {
					found = j
					break
				}
			}
			if found < 0 {
				return ErrLinearDependence
			}
			// rows above i are already zero in both columns
			for k := i; k < t; k++ {
				A[k*t+i], A[k*t+found] = A[k*t+found], A[k*t+i]
			}
			b[i], b[found] = b[found], b[i]
		}
		for j := i + 1; j < t; j++ {
			if A[i*t+j].Sign() == 0 {
				continue
			}
			for k := i + 1; k < t; k++ {
				h := f.Mul(A[k*t+i], A[i*t+j])
				A[k*t+j] = gf.Add(f.Mul(A[k*t+j], A[i*t+i]), h)
			}
			b[j] = gf.Add(f.Mul(b[j], A[i*t+i]), f.Mul(b[i], A[i*t+j]))
		}
	}
	inv, err := f.Invert(A[(t-1)*t+t-1])
	if err != nil {
		// unreachable: the pivot search guarantees a nonzero entry
		return ErrLinearDependence
	}
	b[t-1] = f.Mul(b[t-1], inv)
	return nil
}
